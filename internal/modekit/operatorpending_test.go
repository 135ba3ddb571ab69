package modekit

import (
	"testing"

	"github.com/dshills/vimcore/internal/mode"
	"github.com/dshills/vimcore/internal/vim"
)

func TestOperatorPendingCompletesWithMotion(t *testing.T) {
	d := &recordingDispatcher{}
	m := NewOperatorPendingMode(d)
	m.OnEnter(PendingOperatorArgument{Operator: vim.GetOperator('d'), Count: 2, Register: 0})

	result := m.Process(rune_('w'))
	if result.Switch.Kind != mode.SwitchToMode || result.Switch.To != mode.Normal {
		t.Fatalf("expected switch back to Normal, got %+v", result)
	}
	if len(d.cmds) != 1 || d.cmds[0].Count != 2 {
		t.Fatalf("expected operator count 2, got %+v", d.cmds)
	}
}

func TestOperatorPendingDoubledFormIsLinewise(t *testing.T) {
	d := &recordingDispatcher{}
	m := NewOperatorPendingMode(d)
	m.OnEnter(PendingOperatorArgument{Operator: vim.GetOperator('d'), Count: 1})

	m.Process(rune_('d'))
	if len(d.cmds) != 1 || !d.cmds[0].Linewise {
		t.Fatalf("expected linewise dd, got %+v", d.cmds)
	}
}

func TestOperatorPendingTextObject(t *testing.T) {
	d := &recordingDispatcher{}
	m := NewOperatorPendingMode(d)
	m.OnEnter(PendingOperatorArgument{Operator: vim.GetOperator('d'), Count: 1})

	m.Process(rune_('i'))
	m.Process(rune_('w'))

	if len(d.cmds) != 1 || d.cmds[0].Args["textObject"] != "select.innerWord" {
		t.Fatalf("expected inner-word text object, got %+v", d.cmds)
	}
}

func TestOperatorPendingMultipliesCounts(t *testing.T) {
	d := &recordingDispatcher{}
	m := NewOperatorPendingMode(d)
	m.OnEnter(PendingOperatorArgument{Operator: vim.GetOperator('d'), Count: 2})

	m.Process(rune_('3'))
	m.Process(rune_('w'))

	if len(d.cmds) != 1 || d.cmds[0].Count != 6 {
		t.Fatalf("expected count 2*3=6, got %+v", d.cmds)
	}
}

func TestOperatorPendingCancelsOnInvalidKey(t *testing.T) {
	d := &recordingDispatcher{}
	m := NewOperatorPendingMode(d)
	m.OnEnter(PendingOperatorArgument{Operator: vim.GetOperator('d'), Count: 1})

	result := m.Process(rune_(':'))
	if result.Switch.To != mode.Normal || len(d.cmds) != 0 {
		t.Fatalf("expected cancel with no dispatch, got switch=%+v cmds=%+v", result.Switch, d.cmds)
	}
}

func TestOperatorPendingChangeEntersInsert(t *testing.T) {
	d := &recordingDispatcher{}
	m := NewOperatorPendingMode(d)
	m.OnEnter(PendingOperatorArgument{Operator: vim.GetOperator('c'), Count: 1})

	result := m.Process(rune_('w'))
	if result.Switch.To != mode.Insert {
		t.Fatalf("expected change operator to enter Insert, got %+v", result.Switch)
	}
}
