package modekit

import (
	"github.com/dshills/vimcore/internal/key"
	"github.com/dshills/vimcore/internal/mode"
)

// SubstituteConfirmArgument carries the substitution prompt text an
// :s///c command wants displayed while SubstituteConfirmMode is active.
type SubstituteConfirmArgument struct {
	Prompt string
}

// SubstituteConfirmMode awaits a single-character reply to a :s///c
// confirmation prompt: y (substitute this one), n (skip it), a (substitute
// this and all remaining), q or Escape (quit), l (substitute this one and
// quit). Replies are dispatched as Commands; the mode itself always
// returns to Normal once it has a reply (the host re-enters it for the
// next match if there is one).
type SubstituteConfirmMode struct {
	dispatch Dispatcher
	prompt   string
}

// NewSubstituteConfirmMode creates a substitute-confirm mode that reports
// replies to d.
func NewSubstituteConfirmMode(d Dispatcher) *SubstituteConfirmMode {
	return &SubstituteConfirmMode{dispatch: d}
}

// Kind returns mode.SubstituteConfirm.
func (m *SubstituteConfirmMode) Kind() mode.Kind { return mode.SubstituteConfirm }

// CanProcess accepts every key.
func (m *SubstituteConfirmMode) CanProcess(key.Event) bool { return true }

// OnEnter records the prompt text from arg, if any.
func (m *SubstituteConfirmMode) OnEnter(arg mode.Argument) {
	if a, ok := arg.(SubstituteConfirmArgument); ok {
		m.prompt = a.Prompt
	}
}

// OnLeave is a no-op.
func (m *SubstituteConfirmMode) OnLeave() {}

// OnClose is a no-op.
func (m *SubstituteConfirmMode) OnClose() {}

// Prompt returns the current confirmation prompt text.
func (m *SubstituteConfirmMode) Prompt() string { return m.prompt }

// Process maps the reply character to a substitute.reply Command.
func (m *SubstituteConfirmMode) Process(ev key.Event) mode.ProcessResult {
	if ev.IsEscape() {
		m.reply("quit")
		return mode.Handled(mode.SwitchMode(mode.Normal))
	}
	if !ev.IsRune() || ev.IsModified() {
		return mode.NotHandled()
	}
	switch ev.Rune {
	case 'y':
		m.reply("yes")
	case 'n':
		m.reply("no")
	case 'a':
		m.reply("all")
	case 'q':
		m.reply("quit")
	case 'l':
		m.reply("last")
	case '^':
		m.reply("backup")
	default:
		return mode.NotHandled()
	}
	return mode.Handled(mode.SwitchMode(mode.Normal))
}

func (m *SubstituteConfirmMode) reply(decision string) {
	if m.dispatch == nil {
		return
	}
	m.dispatch.Dispatch(Command{
		Action: "substitute.reply",
		Count:  1,
		Args:   map[string]any{"decision": decision},
	})
}

// DisabledMode is the disable-command's terminal mode: it refuses every
// key, matching Vim's ":normal" sandbox lockout and the core's own
// "Disabled has no remap mode" rule.
type DisabledMode struct{}

// NewDisabledMode creates a disabled mode instance.
func NewDisabledMode() *DisabledMode { return &DisabledMode{} }

// Kind returns mode.Disabled.
func (DisabledMode) Kind() mode.Kind { return mode.Disabled }

// CanProcess always returns false.
func (DisabledMode) CanProcess(key.Event) bool { return false }

// Process always returns NotHandled.
func (DisabledMode) Process(key.Event) mode.ProcessResult { return mode.NotHandled() }

// OnEnter is a no-op.
func (DisabledMode) OnEnter(mode.Argument) {}

// OnLeave is a no-op.
func (DisabledMode) OnLeave() {}

// OnClose is a no-op.
func (DisabledMode) OnClose() {}

// ExternalEditMode indicates editing has been delegated to an external
// program (e.g. a filter invoked by :! or gq); the engine refuses input
// while this mode is current and the host switches away from it once the
// external program exits.
type ExternalEditMode struct{}

// NewExternalEditMode creates an external-edit mode instance.
func NewExternalEditMode() *ExternalEditMode { return &ExternalEditMode{} }

// Kind returns mode.ExternalEdit.
func (ExternalEditMode) Kind() mode.Kind { return mode.ExternalEdit }

// CanProcess always returns false.
func (ExternalEditMode) CanProcess(key.Event) bool { return false }

// Process always returns NotHandled.
func (ExternalEditMode) Process(key.Event) mode.ProcessResult { return mode.NotHandled() }

// OnEnter is a no-op.
func (ExternalEditMode) OnEnter(mode.Argument) {}

// OnLeave is a no-op.
func (ExternalEditMode) OnLeave() {}

// OnClose is a no-op.
func (ExternalEditMode) OnClose() {}
