package modekit

import (
	"unicode"

	"github.com/dshills/vimcore/internal/key"
	"github.com/dshills/vimcore/internal/mode"
)

// CommandMode implements Vim's command-line (ex) mode. It accumulates a
// line buffer with cursor-relative editing and history navigation; on
// Enter it dispatches the finished line for the excmd parser to resolve
// and returns to Normal, on Escape it discards the line and returns to
// Normal without dispatching.
type CommandMode struct {
	dispatch Dispatcher

	buffer    []rune
	cursorPos int

	history      []string
	historyIndex int
	savedBuffer  []rune

	prompt rune
}

// NewCommandMode creates a command-line mode that reports finished lines
// to d.
func NewCommandMode(d Dispatcher) *CommandMode {
	return &CommandMode{dispatch: d, historyIndex: -1, prompt: ':'}
}

// Kind returns mode.Command.
func (m *CommandMode) Kind() mode.Kind { return mode.Command }

// CanProcess accepts every key.
func (m *CommandMode) CanProcess(key.Event) bool { return true }

// OnEnter resets the line buffer. arg, if a rune, overrides the prompt
// (':' for ex commands, '/' or '?' for search).
func (m *CommandMode) OnEnter(arg mode.Argument) {
	m.buffer = m.buffer[:0]
	m.cursorPos = 0
	m.historyIndex = -1
	m.savedBuffer = nil
	if r, ok := arg.(rune); ok {
		m.prompt = r
	} else {
		m.prompt = ':'
	}
}

// OnLeave is a no-op; the buffer is cleared again on the next OnEnter.
func (m *CommandMode) OnLeave() {}

// OnClose is a no-op.
func (m *CommandMode) OnClose() {}

// Buffer returns the current line content.
func (m *CommandMode) Buffer() string { return string(m.buffer) }

// Prompt returns the current prompt character.
func (m *CommandMode) Prompt() rune { return m.prompt }

// Process edits the line buffer and handles Enter/Escape/history keys.
func (m *CommandMode) Process(ev key.Event) mode.ProcessResult {
	if ev.IsEscape() {
		return mode.Handled(mode.SwitchMode(mode.Normal))
	}

	if ev.IsEnter() {
		line := string(m.buffer)
		m.addToHistory(line)
		if m.dispatch != nil {
			m.dispatch.Dispatch(Command{
				Action: "excmd.execute",
				Count:  1,
				Args:   map[string]any{"line": line, "prompt": string(m.prompt)},
			})
		}
		return mode.Handled(mode.SwitchMode(mode.Normal))
	}

	if ev.IsBackspace() {
		if !m.backspace() {
			return mode.Handled(mode.SwitchMode(mode.Normal))
		}
		return mode.Handled(mode.NoSwitchDirective())
	}

	switch ev.Key {
	case key.KeyLeft:
		m.moveLeft()
		return mode.Handled(mode.NoSwitchDirective())
	case key.KeyRight:
		m.moveRight()
		return mode.Handled(mode.NoSwitchDirective())
	case key.KeyHome:
		m.cursorPos = 0
		return mode.Handled(mode.NoSwitchDirective())
	case key.KeyEnd:
		m.cursorPos = len(m.buffer)
		return mode.Handled(mode.NoSwitchDirective())
	case key.KeyUp:
		m.historyPrev()
		return mode.Handled(mode.NoSwitchDirective())
	case key.KeyDown:
		m.historyNext()
		return mode.Handled(mode.NoSwitchDirective())
	case key.KeyDelete:
		m.delete()
		return mode.Handled(mode.NoSwitchDirective())
	}

	if ev.Modifiers.HasCtrl() && ev.IsRune() && ev.Rune == 'u' {
		m.buffer = m.buffer[:0]
		m.cursorPos = 0
		return mode.Handled(mode.NoSwitchDirective())
	}

	if ev.IsRune() && !ev.IsModified() && (unicode.IsPrint(ev.Rune) || ev.Rune == '\t') {
		m.insertRune(ev.Rune)
		return mode.Handled(mode.NoSwitchDirective())
	}
	if ev.Key == key.KeySpace && !ev.IsModified() {
		m.insertRune(' ')
		return mode.Handled(mode.NoSwitchDirective())
	}

	return mode.NotHandled()
}

func (m *CommandMode) insertRune(r rune) {
	if m.cursorPos >= len(m.buffer) {
		m.buffer = append(m.buffer, r)
	} else {
		m.buffer = append(m.buffer[:m.cursorPos+1], m.buffer[m.cursorPos:]...)
		m.buffer[m.cursorPos] = r
	}
	m.cursorPos++
}

func (m *CommandMode) backspace() bool {
	if m.cursorPos == 0 {
		return false
	}
	m.buffer = append(m.buffer[:m.cursorPos-1], m.buffer[m.cursorPos:]...)
	m.cursorPos--
	return true
}

func (m *CommandMode) delete() bool {
	if m.cursorPos >= len(m.buffer) {
		return false
	}
	m.buffer = append(m.buffer[:m.cursorPos], m.buffer[m.cursorPos+1:]...)
	return true
}

func (m *CommandMode) moveLeft() bool {
	if m.cursorPos == 0 {
		return false
	}
	m.cursorPos--
	return true
}

func (m *CommandMode) moveRight() bool {
	if m.cursorPos >= len(m.buffer) {
		return false
	}
	m.cursorPos++
	return true
}

func (m *CommandMode) setBuffer(s string) {
	m.buffer = []rune(s)
	m.cursorPos = len(m.buffer)
}

func (m *CommandMode) addToHistory(cmd string) {
	if cmd == "" {
		return
	}
	if len(m.history) > 0 && m.history[len(m.history)-1] == cmd {
		return
	}
	m.history = append(m.history, cmd)
}

func (m *CommandMode) historyPrev() bool {
	if len(m.history) == 0 {
		return false
	}
	if m.historyIndex == -1 {
		m.savedBuffer = append([]rune(nil), m.buffer...)
		m.historyIndex = len(m.history) - 1
	} else if m.historyIndex > 0 {
		m.historyIndex--
	} else {
		return false
	}
	m.setBuffer(m.history[m.historyIndex])
	return true
}

func (m *CommandMode) historyNext() bool {
	if m.historyIndex == -1 {
		return false
	}
	m.historyIndex++
	if m.historyIndex >= len(m.history) {
		m.historyIndex = -1
		if m.savedBuffer != nil {
			m.buffer = m.savedBuffer
			m.cursorPos = len(m.buffer)
			m.savedBuffer = nil
		} else {
			m.buffer = m.buffer[:0]
			m.cursorPos = 0
		}
	} else {
		m.setBuffer(m.history[m.historyIndex])
	}
	return true
}
