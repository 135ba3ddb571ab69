package democlient

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vimcore/internal/mode"
)

// palette is a mode's status-line colors as ANSI-256 palette numbers, used
// to build the tcell style that paints the mode segment. The message
// segment is laid out with a lipgloss style that sets no colors and is
// drawn in a fixed tcell color.
type palette struct {
	fg, bg string
}

var modePalettes = map[mode.Kind]palette{
	mode.Normal:            {fg: "0", bg: "34"},
	mode.Insert:            {fg: "0", bg: "214"},
	mode.Replace:           {fg: "0", bg: "202"},
	mode.VisualCharacter:   {fg: "0", bg: "33"},
	mode.VisualLine:        {fg: "0", bg: "33"},
	mode.VisualBlock:       {fg: "0", bg: "33"},
	mode.Command:           {fg: "255", bg: "240"},
	mode.OperatorPending:   {fg: "0", bg: "178"},
	mode.SubstituteConfirm: {fg: "0", bg: "178"},
	mode.Disabled:          {fg: "250", bg: "238"},
	mode.ExternalEdit:      {fg: "250", bg: "238"},
}

var defaultPalette = palette{fg: "255", bg: "236"}

func modeLabel(k mode.Kind) string {
	switch k {
	case mode.VisualCharacter:
		return "VISUAL"
	case mode.VisualLine:
		return "V-LINE"
	case mode.VisualBlock:
		return "V-BLOCK"
	default:
		return strings.ToUpper(k.String())
	}
}

func tcellPaletteColor(s string) tcell.Color {
	n, err := strconv.Atoi(s)
	if err != nil {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(n)
}

// render draws the mode indicator and status/command line on the bottom
// row of the screen, then positions the cursor for whichever mode is
// current (the command line's prompt and buffer, or the status message).
func (c *Client) render() {
	width, height := c.screen.Size()
	if height == 0 {
		return
	}
	statusRow := height - 1

	for x := 0; x < width; x++ {
		c.screen.SetContent(x, statusRow, ' ', nil, tcell.StyleDefault)
	}

	current := c.registry.Current()
	pal, ok := modePalettes[current.Kind()]
	if !ok {
		pal = defaultPalette
	}
	label := " " + modeLabel(current.Kind()) + " "
	modeStyle := tcell.StyleDefault.
		Foreground(tcellPaletteColor(pal.fg)).
		Background(tcellPaletteColor(pal.bg)).
		Bold(true)
	x := drawText(c.screen, 0, statusRow, label, modeStyle)

	var text string
	if cmdMode, ok := current.(commandLineMode); ok {
		text = " " + string(cmdMode.Prompt()) + cmdMode.Buffer()
	} else if c.statusMsg != "" {
		text = " " + c.statusMsg
	} else {
		text = " " + c.statusLong
	}

	remaining := width - x
	if remaining > 0 {
		padded := lipgloss.NewStyle().MaxWidth(remaining).Width(remaining).Render(text)
		drawText(c.screen, x, statusRow, padded, tcell.StyleDefault.Foreground(tcell.ColorSilver))
	}

	if cmdMode, ok := current.(commandLineMode); ok {
		// CommandMode does not expose its cursor position; the cursor is
		// shown at the end of the line, which is where most edits land.
		c.screen.ShowCursor(x+2+len([]rune(cmdMode.Buffer())), statusRow)
	} else {
		c.screen.HideCursor()
	}

	c.screen.Show()
}

// commandLineMode is the subset of modekit.CommandMode render needs; kept
// as a local interface so render.go does not have to import the concrete
// type for a handful of read-only accessors.
type commandLineMode interface {
	Prompt() rune
	Buffer() string
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
