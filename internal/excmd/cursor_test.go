package excmd

import "testing"

func TestCursorSkipBlanksAndParseWord(t *testing.T) {
	c := NewCursor("   hello world")
	c.SkipBlanks()
	w, ok := c.ParseWord()
	if !ok || w != "hello" {
		t.Fatalf("expected 'hello', got %q ok=%v", w, ok)
	}
}

func TestCursorParseNumberSaturates(t *testing.T) {
	c := NewCursor("99999999999999999999")
	n, ok := c.ParseNumber()
	if !ok {
		t.Fatal("expected a number")
	}
	if n != 4294967295 {
		t.Fatalf("expected saturation at uint32 max, got %d", n)
	}
}

func TestCursorTryParseWordRestoresOnMismatch(t *testing.T) {
	c := NewCursor("noremap lhs")
	if c.TryParseWord("nope") {
		t.Fatal("expected mismatch to fail")
	}
	w, ok := c.ParseWord()
	if !ok || w != "noremap" {
		t.Fatalf("expected position restored, got %q", w)
	}
}

func TestCursorParsePatternHandlesEscapes(t *testing.T) {
	c := NewCursor(`foo\/bar/rest`)
	pat, ok := c.ParsePattern('/')
	if !ok || pat != `foo\/bar` {
		t.Fatalf("expected escaped pattern, got %q ok=%v", pat, ok)
	}
	if c.Remaining() != "rest" {
		t.Fatalf("expected remaining 'rest', got %q", c.Remaining())
	}
}

func TestCursorParsePatternResetsOnUnterminated(t *testing.T) {
	c := NewCursor("foo bar")
	start := c.Pos()
	_, ok := c.ParsePattern('/')
	if ok {
		t.Fatal("expected unterminated pattern to fail")
	}
	if c.Pos() != start {
		t.Fatalf("expected index reset to %d, got %d", start, c.Pos())
	}
}

func TestCursorParseBang(t *testing.T) {
	c := NewCursor("!rest")
	if !c.ParseBang() {
		t.Fatal("expected bang")
	}
	if c.Remaining() != "rest" {
		t.Fatalf("expected 'rest', got %q", c.Remaining())
	}
}
