package modekit

import (
	"github.com/dshills/vimcore/internal/key"
	"github.com/dshills/vimcore/internal/mode"
	"github.com/dshills/vimcore/internal/vim"
)

// OperatorPendingMode awaits the motion or text object that completes the
// operator Normal mode switched into it with. It accumulates a second
// count (multiplied against the operator's own count per
// vim.CountState.Multiply) and recognizes the same register-reselection
// prefix Normal does.
type OperatorPendingMode struct {
	dispatch Dispatcher

	op       *vim.Operator
	count    int
	register rune

	extraCount       *vim.CountState
	hasRegister      bool
	textObjectPrefix vim.TextObjectPrefix
	pendingG         bool
	pendingFind      *vim.Motion
}

// NewOperatorPendingMode creates an operator-pending mode that reports
// completed commands to d.
func NewOperatorPendingMode(d Dispatcher) *OperatorPendingMode {
	return &OperatorPendingMode{dispatch: d, extraCount: vim.NewCountState()}
}

// Kind returns mode.OperatorPending.
func (m *OperatorPendingMode) Kind() mode.Kind { return mode.OperatorPending }

// CanProcess accepts every key.
func (m *OperatorPendingMode) CanProcess(key.Event) bool { return true }

// OnEnter records the pending operator and its count/register from arg,
// which must be a PendingOperatorArgument.
func (m *OperatorPendingMode) OnEnter(arg mode.Argument) {
	m.extraCount.Reset()
	m.hasRegister = false
	m.textObjectPrefix = vim.PrefixNone
	m.pendingG = false
	m.pendingFind = nil

	poa, ok := arg.(PendingOperatorArgument)
	if !ok {
		m.op = nil
		m.count = 1
		m.register = 0
		return
	}
	m.op = poa.Operator
	m.count = poa.Count
	m.register = poa.Register
}

// OnLeave clears the pending operator.
func (m *OperatorPendingMode) OnLeave() {
	m.op = nil
	m.count = 1
	m.register = 0
}

// OnClose is a no-op.
func (m *OperatorPendingMode) OnClose() {}

func (m *OperatorPendingMode) emit(action string, linewise bool, args map[string]any) {
	if m.dispatch == nil {
		return
	}
	m.dispatch.Dispatch(Command{
		Action:   action,
		Count:    m.extraCount.Multiply(m.count),
		Register: m.register,
		Linewise: linewise,
		Args:     args,
	})
}

// Process consumes an optional count, an optional register reselection,
// and the motion or text object that completes the pending operator. Any
// other key cancels back to Normal with no dispatch.
func (m *OperatorPendingMode) Process(ev key.Event) mode.ProcessResult {
	if m.op == nil {
		return mode.Handled(mode.SwitchMode(mode.Normal))
	}

	if ev.IsEscape() {
		return mode.Handled(mode.SwitchMode(mode.Normal))
	}

	if !ev.IsRune() || ev.IsModified() {
		return mode.Handled(mode.SwitchMode(mode.Normal))
	}
	r := ev.Rune

	if !m.hasRegister && m.register == 0 && r == '"' {
		m.hasRegister = true
		return mode.HandledNeedMoreInput()
	}
	if m.hasRegister {
		m.hasRegister = false
		if vim.IsValidRegister(r) {
			m.register = r
			return mode.HandledNeedMoreInput()
		}
	}

	if m.pendingFind != nil {
		mot := m.pendingFind
		m.pendingFind = nil
		m.emit(m.op.Action, mot.Type == vim.MotionLinewise, map[string]any{"motion": mot.Action, "char": string(r)})
		return m.finish()
	}

	if m.pendingG {
		m.pendingG = false
		if mot := vim.GetGMotion(r); mot != nil {
			m.emit(m.op.Action, mot.Type == vim.MotionLinewise, map[string]any{"motion": mot.Action})
			return m.finish()
		}
		return mode.Handled(mode.SwitchMode(mode.Normal))
	}

	if m.extraCount.AccumulateDigit(r) {
		return mode.HandledNeedMoreInput()
	}

	if r == 'g' {
		m.pendingG = true
		return mode.HandledNeedMoreInput()
	}

	if m.textObjectPrefix != vim.PrefixNone {
		to := vim.GetTextObject(r)
		if to == nil {
			return mode.Handled(mode.SwitchMode(mode.Normal))
		}
		action := to.InnerAction
		if m.textObjectPrefix == vim.PrefixAround {
			action = to.AroundAction
		}
		m.emit(m.op.Action, false, map[string]any{"textObject": action})
		return m.finish()
	}

	if r == m.op.Key {
		m.emit(m.op.LinewiseAction, true, nil)
		return m.finish()
	}

	if mot := vim.GetMotion(r); mot != nil {
		if vim.IsCharSearchMotion(r) {
			m.pendingFind = mot
			return mode.HandledNeedMoreInput()
		}
		m.emit(m.op.Action, mot.Type == vim.MotionLinewise, map[string]any{"motion": mot.Action})
		return m.finish()
	}

	if vim.IsTextObjectPrefix(r) {
		m.textObjectPrefix = vim.GetTextObjectPrefix(r)
		return mode.HandledNeedMoreInput()
	}

	return mode.Handled(mode.SwitchMode(mode.Normal))
}

func (m *OperatorPendingMode) finish() mode.ProcessResult {
	if m.op.EntersInsert {
		return mode.Handled(mode.SwitchMode(mode.Insert))
	}
	return mode.Handled(mode.SwitchMode(mode.Normal))
}
