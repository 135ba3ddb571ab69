package modekit

import (
	"testing"

	"github.com/dshills/vimcore/internal/key"
	"github.com/dshills/vimcore/internal/mode"
)

func TestInsertModeTypesText(t *testing.T) {
	d := &recordingDispatcher{}
	m := NewInsertMode(d)

	result := m.Process(rune_('x'))
	if result.Kind != mode.ResultHandled {
		t.Fatalf("expected Handled, got %v", result.Kind)
	}
	if len(d.cmds) != 1 || d.cmds[0].Args["text"] != "x" {
		t.Fatalf("expected inserted 'x', got %+v", d.cmds)
	}
}

func TestInsertModeEscapeReturnsToNormal(t *testing.T) {
	m := NewInsertMode(nil)
	result := m.Process(key.NewSpecialEvent(key.KeyEscape, key.ModNone))
	if result.Switch.To != mode.Normal {
		t.Fatalf("expected Escape to return to Normal, got %+v", result.Switch)
	}
}

func TestInsertModeCtrlOEntersOneTimeCommand(t *testing.T) {
	m := NewInsertMode(nil)
	result := m.Process(key.NewRuneEvent('o', key.ModCtrl))
	if result.Switch.Kind != mode.SwitchOneTimeCommand {
		t.Fatalf("expected Ctrl-o to enter one-time-command, got %+v", result.Switch)
	}
}

func TestReplaceModeKind(t *testing.T) {
	m := NewReplaceMode(nil)
	if m.Kind() != mode.Replace {
		t.Fatalf("expected Replace kind, got %v", m.Kind())
	}
	d := &recordingDispatcher{}
	m2 := NewReplaceMode(d)
	m2.Process(rune_('q'))
	if len(d.cmds) != 1 || d.cmds[0].Action != "editor.overwriteText" {
		t.Fatalf("expected overwriteText action, got %+v", d.cmds)
	}
}
