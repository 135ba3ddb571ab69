package democlient

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vimcore/internal/key"
)

// convertKeyEvent converts a tcell key event into a key.Event, grounded on
// the teacher's backend.convertEvent/convertKey terminal-event translation.
// Unlike that backend, this module treats Control as a modifier on a rune
// rather than as its own family of Key constants, so tcell's KeyCtrlA..Z
// collapse to key.NewRuneEvent('a'..'z', key.ModCtrl).
func convertKeyEvent(ev *tcell.EventKey) key.Event {
	mods := convertModifiers(ev.Modifiers())

	if r := ctrlLetter(ev.Key()); r != 0 {
		return key.NewRuneEvent(r, mods.With(key.ModCtrl))
	}

	if ev.Key() == tcell.KeyRune {
		return key.NewRuneEvent(ev.Rune(), mods)
	}

	if k, ok := convertSpecialKey(ev.Key()); ok {
		return key.NewSpecialEvent(k, mods)
	}

	return key.NewSpecialEvent(key.KeyNone, mods)
}

func convertModifiers(m tcell.ModMask) key.Modifier {
	mods := key.ModNone
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}

// ctrlLetter returns the lowercase letter a tcell Ctrl-<letter> key
// constant represents, or 0 if k is not one of those.
func ctrlLetter(k tcell.Key) rune {
	switch k {
	case tcell.KeyCtrlA:
		return 'a'
	case tcell.KeyCtrlB:
		return 'b'
	case tcell.KeyCtrlC:
		return 'c'
	case tcell.KeyCtrlD:
		return 'd'
	case tcell.KeyCtrlE:
		return 'e'
	case tcell.KeyCtrlF:
		return 'f'
	case tcell.KeyCtrlG:
		return 'g'
	case tcell.KeyCtrlK:
		return 'k'
	case tcell.KeyCtrlL:
		return 'l'
	case tcell.KeyCtrlN:
		return 'n'
	case tcell.KeyCtrlO:
		return 'o'
	case tcell.KeyCtrlP:
		return 'p'
	case tcell.KeyCtrlQ:
		return 'q'
	case tcell.KeyCtrlR:
		return 'r'
	case tcell.KeyCtrlS:
		return 's'
	case tcell.KeyCtrlT:
		return 't'
	case tcell.KeyCtrlU:
		return 'u'
	case tcell.KeyCtrlV:
		return 'v'
	case tcell.KeyCtrlW:
		return 'w'
	case tcell.KeyCtrlX:
		return 'x'
	case tcell.KeyCtrlY:
		return 'y'
	case tcell.KeyCtrlZ:
		return 'z'
	default:
		// KeyCtrlH/I/J/M/etc. alias Backspace/Tab/Enter and are handled by
		// convertSpecialKey instead, since that is what the terminal
		// actually reports for those physical keys.
		return 0
	}
}

func convertSpecialKey(k tcell.Key) (key.Key, bool) {
	switch k {
	case tcell.KeyEscape:
		return key.KeyEscape, true
	case tcell.KeyEnter:
		return key.KeyEnter, true
	case tcell.KeyTab:
		return key.KeyTab, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace, true
	case tcell.KeyDelete:
		return key.KeyDelete, true
	case tcell.KeyInsert:
		return key.KeyInsert, true
	case tcell.KeyHome:
		return key.KeyHome, true
	case tcell.KeyEnd:
		return key.KeyEnd, true
	case tcell.KeyPgUp:
		return key.KeyPageUp, true
	case tcell.KeyPgDn:
		return key.KeyPageDown, true
	case tcell.KeyUp:
		return key.KeyUp, true
	case tcell.KeyDown:
		return key.KeyDown, true
	case tcell.KeyLeft:
		return key.KeyLeft, true
	case tcell.KeyRight:
		return key.KeyRight, true
	case tcell.KeyF1:
		return key.KeyF1, true
	case tcell.KeyF2:
		return key.KeyF2, true
	case tcell.KeyF3:
		return key.KeyF3, true
	case tcell.KeyF4:
		return key.KeyF4, true
	case tcell.KeyF5:
		return key.KeyF5, true
	case tcell.KeyF6:
		return key.KeyF6, true
	case tcell.KeyF7:
		return key.KeyF7, true
	case tcell.KeyF8:
		return key.KeyF8, true
	case tcell.KeyF9:
		return key.KeyF9, true
	case tcell.KeyF10:
		return key.KeyF10, true
	case tcell.KeyF11:
		return key.KeyF11, true
	case tcell.KeyF12:
		return key.KeyF12, true
	default:
		return key.KeyNone, false
	}
}
