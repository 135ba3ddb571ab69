package modekit

import (
	"testing"

	"github.com/dshills/vimcore/internal/key"
	"github.com/dshills/vimcore/internal/mode"
)

func rune_(r rune) key.Event { return key.NewRuneEvent(r, key.ModNone) }

type recordingDispatcher struct {
	cmds []Command
}

func (d *recordingDispatcher) Dispatch(cmd Command) { d.cmds = append(d.cmds, cmd) }

func TestNormalModeMotion(t *testing.T) {
	d := &recordingDispatcher{}
	m := NewNormalMode(d)
	m.OnEnter(nil)

	result := m.Process(rune_('j'))
	if result.Kind != mode.ResultHandled {
		t.Fatalf("expected Handled, got %v", result.Kind)
	}
	if len(d.cmds) != 1 || d.cmds[0].Action != "cursor.down" {
		t.Fatalf("expected cursor.down, got %+v", d.cmds)
	}
	if d.cmds[0].Count != 1 {
		t.Errorf("expected default count 1, got %d", d.cmds[0].Count)
	}
}

func TestNormalModeCountedMotion(t *testing.T) {
	d := &recordingDispatcher{}
	m := NewNormalMode(d)
	m.OnEnter(nil)

	m.Process(rune_('5'))
	m.Process(rune_('j'))

	if len(d.cmds) != 1 || d.cmds[0].Count != 5 {
		t.Fatalf("expected count 5, got %+v", d.cmds)
	}
}

func TestNormalModeRegisterPrefix(t *testing.T) {
	d := &recordingDispatcher{}
	m := NewNormalMode(d)
	m.OnEnter(nil)

	m.Process(rune_('"'))
	m.Process(rune_('a'))
	m.Process(rune_('x'))

	if len(d.cmds) != 1 || d.cmds[0].Register != 'a' {
		t.Fatalf("expected register 'a', got %+v", d.cmds)
	}
}

func TestNormalModeOperatorSwitchesToOperatorPending(t *testing.T) {
	d := &recordingDispatcher{}
	m := NewNormalMode(d)
	m.OnEnter(nil)

	result := m.Process(rune_('d'))
	if result.Kind != mode.ResultHandled || result.Switch.Kind != mode.SwitchToModeWithArgument {
		t.Fatalf("expected switch to operator-pending, got %+v", result)
	}
	if result.Switch.To != mode.OperatorPending {
		t.Fatalf("expected OperatorPending, got %v", result.Switch.To)
	}
	arg, ok := result.Switch.Arg.(PendingOperatorArgument)
	if !ok || arg.Operator.Key != 'd' {
		t.Fatalf("expected pending delete operator, got %+v", result.Switch.Arg)
	}
}

func TestNormalModeInsertSwitchesMode(t *testing.T) {
	m := NewNormalMode(nil)
	m.OnEnter(nil)

	result := m.Process(rune_('i'))
	if result.Switch.Kind != mode.SwitchToMode || result.Switch.To != mode.Insert {
		t.Fatalf("expected switch to Insert, got %+v", result)
	}
}

func TestNormalModeAppendCarriesPositionArgument(t *testing.T) {
	m := NewNormalMode(nil)
	m.OnEnter(nil)

	result := m.Process(rune_('A'))
	arg, ok := result.Switch.Arg.(map[string]any)
	if !ok || arg["position"] != "line_end" {
		t.Fatalf("expected line_end position argument, got %+v", result.Switch.Arg)
	}
}

func TestNormalModeEscapeResetsCount(t *testing.T) {
	d := &recordingDispatcher{}
	m := NewNormalMode(d)
	m.OnEnter(nil)

	m.Process(rune_('5'))
	m.Process(key.NewSpecialEvent(key.KeyEscape, key.ModNone))
	m.Process(rune_('j'))

	if len(d.cmds) != 1 || d.cmds[0].Count != 1 {
		t.Fatalf("expected count reset to 1 after Escape, got %+v", d.cmds)
	}
}

func TestNormalModeReplaceChar(t *testing.T) {
	d := &recordingDispatcher{}
	m := NewNormalMode(d)
	m.OnEnter(nil)

	result := m.Process(rune_('r'))
	if result.Kind != mode.ResultHandledNeedMoreInput {
		t.Fatalf("expected HandledNeedMoreInput after 'r', got %v", result.Kind)
	}
	m.Process(rune_('z'))
	if len(d.cmds) != 1 || d.cmds[0].Action != "editor.replaceChar" || d.cmds[0].Args["char"] != "z" {
		t.Fatalf("expected replaceChar 'z', got %+v", d.cmds)
	}
}
