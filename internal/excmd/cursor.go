package excmd

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Cursor is the C4 lexical cursor: an immutable rune buffer with a mutable
// index bounded to [0, len(runes)].
type Cursor struct {
	runes []rune
	i     int
}

// NewCursor creates a cursor positioned at the start of line.
func NewCursor(line string) *Cursor {
	return &Cursor{runes: []rune(line)}
}

// Pos returns the current index, for save/restore around a speculative
// parse.
func (c *Cursor) Pos() int { return c.i }

// SetPos restores a previously saved index.
func (c *Cursor) SetPos(i int) { c.i = i }

// sliceFrom returns the text between start and the current index.
func (c *Cursor) sliceFrom(start int) string {
	return string(c.runes[start:c.i])
}

// fold normalizes fullwidth/halfwidth rune variants before classification,
// so a fullwidth space or digit in a command argument is treated the same
// as its halfwidth form.
func fold(r rune) rune {
	if f := width.LookupRune(r).Folded(); f != 0 {
		return f
	}
	return r
}

func isBlank(r rune) bool {
	r = fold(r)
	return r == ' ' || r == '\t'
}

// Peek returns the rune at the current index without advancing.
func (c *Cursor) Peek() (rune, bool) {
	if c.i >= len(c.runes) {
		return 0, false
	}
	return c.runes[c.i], true
}

// Advance moves the index forward by one, bounded by the buffer length.
func (c *Cursor) Advance() {
	if c.i < len(c.runes) {
		c.i++
	}
}

// SkipBlanks advances past a run of spaces and tabs.
func (c *Cursor) SkipBlanks() {
	for {
		r, ok := c.Peek()
		if !ok || !isBlank(r) {
			return
		}
		c.Advance()
	}
}

// ParseWord consumes the maximal run of non-blank characters starting at
// the current index. It reports false if no characters were consumed.
func (c *Cursor) ParseWord() (string, bool) {
	start := c.i
	for {
		r, ok := c.Peek()
		if !ok || isBlank(r) {
			break
		}
		c.Advance()
	}
	if c.i == start {
		return "", false
	}
	return string(c.runes[start:c.i]), true
}

// ParseNumber consumes the maximal run of decimal digits and interprets
// them as a base-10 unsigned integer, saturating at math.MaxUint32 on
// overflow rather than failing.
func (c *Cursor) ParseNumber() (uint32, bool) {
	start := c.i
	var n uint64
	for {
		r, ok := c.Peek()
		if !ok || !unicode.IsDigit(fold(r)) {
			break
		}
		if n < math.MaxUint32 {
			n = n*10 + uint64(fold(r)-'0')
			if n > math.MaxUint32 {
				n = math.MaxUint32
			}
		}
		c.Advance()
	}
	if c.i == start {
		return 0, false
	}
	return uint32(n), true
}

// TryParseWord attempts to consume exactly w; on mismatch it restores the
// index and reports false.
func (c *Cursor) TryParseWord(w string) bool {
	save := c.i
	got, ok := c.ParseWord()
	if ok && got == w {
		return true
	}
	c.i = save
	return false
}

// ParseBang consumes a trailing '!', reporting whether one was present.
func (c *Cursor) ParseBang() bool {
	r, ok := c.Peek()
	if !ok || r != '!' {
		return false
	}
	c.Advance()
	return true
}

// ParsePattern consumes characters up to an unescaped delim, which must
// already have been consumed by the caller as the opening delimiter. A
// backslash escapes the following character; both the backslash and the
// escaped character are included literally in the returned pattern. On
// reaching EOF without a closing delimiter, the index is reset to where it
// was when ParsePattern was called and false is returned.
func (c *Cursor) ParsePattern(delim rune) (string, bool) {
	start := c.i
	var b strings.Builder
	for {
		r, ok := c.Peek()
		if !ok {
			c.i = start
			return "", false
		}
		if r == delim {
			c.Advance()
			return b.String(), true
		}
		if r == '\\' {
			b.WriteRune(r)
			c.Advance()
			if r2, ok := c.Peek(); ok {
				b.WriteRune(r2)
				c.Advance()
			}
			continue
		}
		b.WriteRune(r)
		c.Advance()
	}
}

// ParseToEndOfLine returns everything from the current index to the end of
// the line and advances the index to the end.
func (c *Cursor) ParseToEndOfLine() string {
	s := string(c.runes[c.i:])
	c.i = len(c.runes)
	return s
}

// ParseChar consumes and returns a single rune.
func (c *Cursor) ParseChar() (rune, bool) {
	r, ok := c.Peek()
	if !ok {
		return 0, false
	}
	c.Advance()
	return r, true
}

// Remaining returns the text from the current index to the end, without
// advancing.
func (c *Cursor) Remaining() string {
	return string(c.runes[c.i:])
}

// AtEnd reports whether the cursor has consumed the whole line.
func (c *Cursor) AtEnd() bool {
	return c.i >= len(c.runes)
}
