package modekit

import (
	"unicode"

	"github.com/dshills/vimcore/internal/key"
	"github.com/dshills/vimcore/internal/mode"
)

// InsertMode implements both Insert and Replace: direct-insert modes that
// absorb printable keys as literal text. replace selects which mode.Kind
// this instance reports and dispatches under.
type InsertMode struct {
	dispatch Dispatcher
	replace  bool
}

// NewInsertMode creates direct-insert (overwrite-false) insert mode.
func NewInsertMode(d Dispatcher) *InsertMode {
	return &InsertMode{dispatch: d}
}

// NewReplaceMode creates direct-insert (overwrite-true) replace mode.
func NewReplaceMode(d Dispatcher) *InsertMode {
	return &InsertMode{dispatch: d, replace: true}
}

// Kind returns mode.Insert or mode.Replace.
func (m *InsertMode) Kind() mode.Kind {
	if m.replace {
		return mode.Replace
	}
	return mode.Insert
}

// CanProcess accepts every key.
func (m *InsertMode) CanProcess(key.Event) bool { return true }

// IsDirectInsert reports whether ev would be absorbed as literal text.
func (m *InsertMode) IsDirectInsert(ev key.Event) bool {
	if ev.IsEscape() || (ev.Modifiers.HasCtrl() && ev.IsRune()) {
		return false
	}
	if ev.Key == key.KeySpace {
		return true
	}
	return ev.IsRune() && !ev.IsModified() && (unicode.IsPrint(ev.Rune) || ev.Rune == '\t')
}

// OnEnter ignores the argument (an entry-point position hint); this mode
// needs no state from it.
func (m *InsertMode) OnEnter(mode.Argument) {}

// OnLeave is a no-op.
func (m *InsertMode) OnLeave() {}

// OnClose is a no-op.
func (m *InsertMode) OnClose() {}

// Process handles text entry and Escape.
func (m *InsertMode) Process(ev key.Event) mode.ProcessResult {
	if ev.IsEscape() {
		return mode.Handled(mode.SwitchMode(mode.Normal))
	}

	if ev.Modifiers.HasCtrl() && ev.IsRune() {
		switch ev.Rune {
		case 'c':
			return mode.Handled(mode.SwitchMode(mode.Normal))
		case 'w':
			m.dispatchText("editor.deleteWordBefore", "")
			return mode.Handled(mode.NoSwitchDirective())
		case 'o':
			return mode.Handled(mode.SwitchModeOneTimeCommand())
		}
	}

	if ev.IsBackspace() {
		m.dispatchText("editor.deleteCharBefore", "")
		return mode.Handled(mode.NoSwitchDirective())
	}

	if ev.IsEnter() {
		m.dispatchText("editor.insertNewline", "\n")
		return mode.Handled(mode.NoSwitchDirective())
	}

	if m.IsDirectInsert(ev) {
		text := " "
		if ev.IsRune() {
			text = string(ev.Rune)
		}
		action := "editor.insertText"
		if m.replace {
			action = "editor.overwriteText"
		}
		m.dispatchText(action, text)
		return mode.Handled(mode.NoSwitchDirective())
	}

	return mode.NotHandled()
}

func (m *InsertMode) dispatchText(action, text string) {
	if m.dispatch == nil {
		return
	}
	m.dispatch.Dispatch(Command{
		Action: action,
		Count:  1,
		Args:   map[string]any{"text": text},
	})
}
