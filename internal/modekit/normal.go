package modekit

import (
	"github.com/dshills/vimcore/internal/key"
	"github.com/dshills/vimcore/internal/mode"
	"github.com/dshills/vimcore/internal/vim"
)

// NormalMode recognizes Vim's normal-mode grammar: an optional register
// prefix, an optional count, an optional operator, and a motion or text
// object (or a bare command key). Completed commands are handed to its
// Dispatcher; mode-switch keys (i, a, o, v, V, :, ...) are reported as
// ModeSwitch directives rather than dispatched.
type NormalMode struct {
	dispatch Dispatcher

	count          *vim.CountState
	hasRegister    bool
	register       rune
	pendingReplace bool
	pendingG       bool
	pendingFind    *vim.Motion
}

// PendingOperatorArgument is carried to OperatorPendingMode.OnEnter when
// Normal mode switches into it.
type PendingOperatorArgument struct {
	Operator *vim.Operator
	Count    int
	Register rune
}

// NewNormalMode creates a normal mode that reports completed commands to d.
func NewNormalMode(d Dispatcher) *NormalMode {
	return &NormalMode{dispatch: d, count: vim.NewCountState()}
}

// Kind returns mode.Normal.
func (m *NormalMode) Kind() mode.Kind { return mode.Normal }

// CanProcess accepts every key; normal mode never refuses input outright
// (for an unrecognized key, Process resets pending state and reports
// NotHandled).
func (m *NormalMode) CanProcess(key.Event) bool { return true }

// OnEnter resets all pending state.
func (m *NormalMode) OnEnter(mode.Argument) { m.reset() }

// OnLeave resets all pending state.
func (m *NormalMode) OnLeave() { m.reset() }

// OnClose is a no-op.
func (m *NormalMode) OnClose() {}

func (m *NormalMode) reset() {
	m.count.Reset()
	m.hasRegister = false
	m.register = 0
	m.pendingReplace = false
	m.pendingG = false
	m.pendingFind = nil
}

func (m *NormalMode) emit(action string, linewise bool, args map[string]any) {
	cmd := Command{
		Action:   action,
		Count:    m.count.Get(),
		Register: m.register,
		Linewise: linewise,
		Args:     args,
	}
	m.reset()
	if m.dispatch != nil {
		m.dispatch.Dispatch(cmd)
	}
}

// Process implements the normal-mode grammar.
func (m *NormalMode) Process(ev key.Event) mode.ProcessResult {
	if ev.IsEscape() {
		m.reset()
		return mode.Handled(mode.NoSwitchDirective())
	}

	if ev.Key == key.KeyRune && ev.Rune == 'c' && ev.Modifiers.HasCtrl() {
		m.reset()
		return mode.Handled(mode.NoSwitchDirective())
	}

	if !ev.IsRune() || ev.IsModified() {
		return m.processSpecial(ev)
	}

	r := ev.Rune

	if m.pendingReplace {
		m.emit("editor.replaceChar", false, map[string]any{"char": string(r)})
		m.pendingReplace = false
		return mode.Handled(mode.NoSwitchDirective())
	}

	// Register prefix: " followed by a valid register name.
	if !m.hasRegister && m.register == 0 && r == '"' {
		m.hasRegister = true
		return mode.HandledNeedMoreInput()
	}
	if m.hasRegister && m.register == 0 {
		if vim.IsValidRegister(r) {
			m.register = r
			return mode.HandledNeedMoreInput()
		}
		m.hasRegister = false
	}

	// A pending f/F/t/T motion consumes the very next key as its target
	// character, whatever it is.
	if m.pendingFind != nil {
		mot := m.pendingFind
		m.pendingFind = nil
		m.emit(mot.Action, mot.Type == vim.MotionLinewise, map[string]any{"char": string(r)})
		return mode.Handled(mode.NoSwitchDirective())
	}

	// A pending g prefix resolves against the g-operator table (g~, gu,
	// gU, which still await a motion or text object) or the g-motion
	// table (gg, g0, g$, complete on their own); anything else cancels
	// back to a plain normal-mode key.
	if m.pendingG {
		m.pendingG = false
		if op := vim.GetGOperator(r); op != nil {
			arg := PendingOperatorArgument{Operator: op, Count: m.count.Get(), Register: m.register}
			m.reset()
			return mode.Handled(mode.SwitchModeWithArgument(mode.OperatorPending, arg))
		}
		if mot := vim.GetGMotion(r); mot != nil {
			m.emit(mot.Action, mot.Type == vim.MotionLinewise, nil)
			return mode.Handled(mode.NoSwitchDirective())
		}
		m.reset()
		return mode.NotHandled()
	}

	// Count accumulation.
	if m.count.AccumulateDigit(r) {
		return mode.HandledNeedMoreInput()
	}

	if vim.IsOperator(r) {
		op := vim.GetOperator(r)
		arg := PendingOperatorArgument{Operator: op, Count: m.count.Get(), Register: m.register}
		m.reset()
		return mode.Handled(mode.SwitchModeWithArgument(mode.OperatorPending, arg))
	}

	if r == 'g' {
		m.pendingG = true
		return mode.HandledNeedMoreInput()
	}

	if mot := vim.GetMotion(r); mot != nil {
		if vim.IsCharSearchMotion(r) {
			m.pendingFind = mot
			return mode.HandledNeedMoreInput()
		}
		m.emit(mot.Action, mot.Type == vim.MotionLinewise, nil)
		return mode.Handled(mode.NoSwitchDirective())
	}

	switch r {
	case 'i':
		m.reset()
		return mode.Handled(mode.SwitchMode(mode.Insert))
	case 'I':
		m.reset()
		return mode.Handled(mode.SwitchModeWithArgument(mode.Insert, map[string]any{"position": "line_start"}))
	case 'a':
		m.reset()
		return mode.Handled(mode.SwitchModeWithArgument(mode.Insert, map[string]any{"position": "after"}))
	case 'A':
		m.reset()
		return mode.Handled(mode.SwitchModeWithArgument(mode.Insert, map[string]any{"position": "line_end"}))
	case 'o':
		m.reset()
		return mode.Handled(mode.SwitchModeWithArgument(mode.Insert, map[string]any{"position": "new_line_below"}))
	case 'O':
		m.reset()
		return mode.Handled(mode.SwitchModeWithArgument(mode.Insert, map[string]any{"position": "new_line_above"}))
	case 'R':
		m.reset()
		return mode.Handled(mode.SwitchMode(mode.Replace))
	case 'v':
		m.reset()
		return mode.Handled(mode.SwitchMode(mode.VisualCharacter))
	case 'V':
		m.reset()
		return mode.Handled(mode.SwitchMode(mode.VisualLine))
	case ':':
		m.reset()
		return mode.Handled(mode.SwitchMode(mode.Command))
	case 'x':
		m.emit("editor.deleteChar", false, nil)
		return mode.Handled(mode.NoSwitchDirective())
	case 'X':
		m.emit("editor.deleteCharBefore", false, nil)
		return mode.Handled(mode.NoSwitchDirective())
	case 'u':
		m.emit("editor.undo", false, nil)
		return mode.Handled(mode.NoSwitchDirective())
	case 'r':
		m.pendingReplace = true
		return mode.HandledNeedMoreInput()
	case 'p':
		m.emit("editor.paste", false, map[string]any{"after": true})
		return mode.Handled(mode.NoSwitchDirective())
	case 'P':
		m.emit("editor.paste", false, map[string]any{"after": false})
		return mode.Handled(mode.NoSwitchDirective())
	}

	m.reset()
	return mode.NotHandled()
}

func (m *NormalMode) processSpecial(ev key.Event) mode.ProcessResult {
	switch ev.Key {
	case key.KeyLeft:
		m.emit("cursor.left", false, nil)
	case key.KeyRight:
		m.emit("cursor.right", false, nil)
	case key.KeyUp:
		m.emit("cursor.up", false, nil)
	case key.KeyDown:
		m.emit("cursor.down", false, nil)
	case key.KeyHome:
		m.emit("cursor.lineStart", false, nil)
	case key.KeyEnd:
		m.emit("cursor.lineEnd", false, nil)
	case key.KeyPageUp:
		m.emit("view.pageUp", false, nil)
	case key.KeyPageDown:
		m.emit("view.pageDown", false, nil)
	default:
		if ev.Modifiers.HasCtrl() && ev.IsRune() {
			switch ev.Rune {
			case 'r':
				m.emit("editor.redo", false, nil)
				return mode.Handled(mode.NoSwitchDirective())
			case 'f':
				m.emit("view.pageDown", false, nil)
				return mode.Handled(mode.NoSwitchDirective())
			case 'b':
				m.emit("view.pageUp", false, nil)
				return mode.Handled(mode.NoSwitchDirective())
			}
		}
		m.reset()
		return mode.NotHandled()
	}
	return mode.Handled(mode.NoSwitchDirective())
}
