package modekit

import (
	"github.com/dshills/vimcore/internal/key"
	"github.com/dshills/vimcore/internal/mode"
	"github.com/dshills/vimcore/internal/vim"
)

// VisualMode implements all three visual selection kinds. kind selects
// which mode.Kind this instance reports; the grammar (motions extend the
// selection, operators act on it and return to Normal) is identical across
// all three, only the dispatched action's Linewise/Args differ.
type VisualMode struct {
	dispatch Dispatcher
	kind     mode.Kind

	count       *vim.CountState
	pendingG    bool
	pendingFind *vim.Motion
}

// NewVisualMode creates a visual mode of the given kind, which must be one
// of mode.VisualCharacter, mode.VisualLine, mode.VisualBlock.
func NewVisualMode(d Dispatcher, kind mode.Kind) *VisualMode {
	return &VisualMode{dispatch: d, kind: kind, count: vim.NewCountState()}
}

// Kind returns this instance's visual kind.
func (m *VisualMode) Kind() mode.Kind { return m.kind }

// CanProcess accepts every key.
func (m *VisualMode) CanProcess(key.Event) bool { return true }

// OnEnter resets the count accumulator. The anchor itself is host state,
// carried in arg for the host's benefit; this mode does not track it.
func (m *VisualMode) OnEnter(mode.Argument) { m.reset() }

// OnLeave resets the count accumulator.
func (m *VisualMode) OnLeave() { m.reset() }

// OnClose is a no-op.
func (m *VisualMode) OnClose() {}

func (m *VisualMode) reset() {
	m.count.Reset()
	m.pendingG = false
	m.pendingFind = nil
}

func (m *VisualMode) linewiseDefault() bool { return m.kind == mode.VisualLine }

// Process implements the visual-mode grammar: counts accumulate, motions
// extend the selection, operators consume the selection and return to
// Normal, v/V toggle between the visual kinds, Escape cancels. Modified
// keys such as <C-v> are reported NotHandled.
func (m *VisualMode) Process(ev key.Event) mode.ProcessResult {
	if ev.IsEscape() {
		m.reset()
		return mode.Handled(mode.SwitchMode(mode.Normal))
	}

	if !ev.IsRune() || ev.IsModified() {
		return mode.NotHandled()
	}
	r := ev.Rune

	if m.pendingFind != nil {
		mot := m.pendingFind
		m.pendingFind = nil
		m.emit("selection.extend", false, map[string]any{"motion": mot.Action, "char": string(r)})
		return mode.Handled(mode.NoSwitchDirective())
	}

	if m.pendingG {
		m.pendingG = false
		if mot := vim.GetGMotion(r); mot != nil {
			m.emit("selection.extend", false, map[string]any{"motion": mot.Action})
			return mode.Handled(mode.NoSwitchDirective())
		}
		m.reset()
		return mode.NotHandled()
	}

	if m.count.AccumulateDigit(r) {
		return mode.HandledNeedMoreInput()
	}

	switch r {
	case 'v':
		if m.kind == mode.VisualCharacter {
			m.reset()
			return mode.Handled(mode.SwitchMode(mode.Normal))
		}
		m.reset()
		return mode.Handled(mode.SwitchMode(mode.VisualCharacter))
	case 'V':
		if m.kind == mode.VisualLine {
			m.reset()
			return mode.Handled(mode.SwitchMode(mode.Normal))
		}
		m.reset()
		return mode.Handled(mode.SwitchMode(mode.VisualLine))
	case 'o':
		m.emit("selection.swapAnchor", false, nil)
		return mode.Handled(mode.NoSwitchDirective())
	case 'g':
		m.pendingG = true
		return mode.HandledNeedMoreInput()
	}

	if mot := vim.GetMotion(r); mot != nil {
		if vim.IsCharSearchMotion(r) {
			m.pendingFind = mot
			return mode.HandledNeedMoreInput()
		}
		m.emit("selection.extend", false, map[string]any{"motion": mot.Action})
		return mode.Handled(mode.NoSwitchDirective())
	}

	if vim.IsOperator(r) {
		op := vim.GetOperator(r)
		m.emit(op.Action, m.linewiseDefault(), map[string]any{"selectionKind": m.kind.String()})
		if op.EntersInsert {
			return mode.Handled(mode.SwitchMode(mode.Insert))
		}
		return mode.Handled(mode.SwitchMode(mode.Normal))
	}

	m.reset()
	return mode.NotHandled()
}

func (m *VisualMode) emit(action string, linewise bool, args map[string]any) {
	cmd := Command{Action: action, Count: m.count.Get(), Linewise: linewise, Args: args}
	m.count.Reset()
	if m.dispatch != nil {
		m.dispatch.Dispatch(cmd)
	}
}
