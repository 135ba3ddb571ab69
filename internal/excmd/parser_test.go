package excmd

import "testing"

func parseLine(t *testing.T, line string) *Command {
	t.Helper()
	c := NewCursor(line)
	cmd, ok := ParseSingleCommand(c)
	if !ok {
		t.Fatalf("expected %q to parse", line)
	}
	return cmd
}

func TestParseJumpToLine(t *testing.T) {
	cmd := parseLine(t, "42")
	if cmd.Kind != CmdJumpToLine || cmd.Args["line"] != 42 {
		t.Fatalf("expected JumpToLine(42), got %+v", cmd)
	}
}

func TestParseJumpToLastLine(t *testing.T) {
	cmd := parseLine(t, "$")
	if cmd.Kind != CmdJumpToLastLine {
		t.Fatalf("expected JumpToLastLine, got %+v", cmd)
	}
}

func TestParseDeleteWithRangeAndCount(t *testing.T) {
	cmd := parseLine(t, "1,5d 3")
	if cmd.Kind != CmdDelete || cmd.Range.Kind != Range {
		t.Fatalf("expected ranged Delete, got %+v", cmd)
	}
	if cmd.Args["hasCount"] != true || cmd.Args["count"] != 3 {
		t.Fatalf("expected count 3, got %+v", cmd.Args)
	}
}

func TestParseDeleteWithRegister(t *testing.T) {
	cmd := parseLine(t, "d a")
	if cmd.Kind != CmdDelete || cmd.Args["hasRegister"] != true || cmd.Args["register"] != 'a' {
		t.Fatalf("expected register 'a', got %+v", cmd.Args)
	}
}

func TestParseQuitBang(t *testing.T) {
	cmd := parseLine(t, "q!")
	if cmd.Kind != CmdQuit || !cmd.Bang {
		t.Fatalf("expected Quit(bang), got %+v", cmd)
	}
}

func TestParseQuitRejectsRange(t *testing.T) {
	c := NewCursor("1,2q")
	if _, ok := ParseSingleCommand(c); ok {
		t.Fatal("expected quit with a range to fail")
	}
}

func TestParseSubstitute(t *testing.T) {
	cmd := parseLine(t, `%s/foo/bar/g`)
	if cmd.Kind != CmdSubstitute || cmd.Range.Kind != EntireBuffer {
		t.Fatalf("expected ranged Substitute, got %+v", cmd)
	}
	if cmd.Args["pattern"] != "foo" || cmd.Args["replace"] != "bar" {
		t.Fatalf("expected pattern/replace foo/bar, got %+v", cmd.Args)
	}
	flags := cmd.Args["flags"].(SubstituteFlags)
	if !flags.ReplaceAll {
		t.Fatalf("expected ReplaceAll flag set, got %+v", flags)
	}
}

func TestParseSubstituteSmagicForcesMagic(t *testing.T) {
	cmd := parseLine(t, "smagic/a/b/")
	flags := cmd.Args["flags"].(SubstituteFlags)
	if !flags.Magic || flags.Nomagic {
		t.Fatalf("expected Magic forced on, got %+v", flags)
	}
}

func TestParseSet(t *testing.T) {
	cmd := parseLine(t, "set nohlsearch ignorecase! tabstop=4")
	if cmd.Kind != CmdSet {
		t.Fatalf("expected Set, got %+v", cmd)
	}
	items := cmd.Args["items"].([]SetItem)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %+v", items)
	}
	if items[0].Kind != SetToggleSetting || items[0].Name != "hlsearch" {
		t.Fatalf("expected ToggleSetting(hlsearch), got %+v", items[0])
	}
	if items[1].Kind != SetInvertSetting || items[1].Name != "ignorecase" {
		t.Fatalf("expected InvertSetting(ignorecase), got %+v", items[1])
	}
	if items[2].Kind != SetAssignSetting || items[2].Name != "tabstop" || items[2].Value != "4" {
		t.Fatalf("expected AssignSetting(tabstop, 4), got %+v", items[2])
	}
}

func TestParseNmapDisplayOneKey(t *testing.T) {
	cmd := parseLine(t, "nmap gg")
	if cmd.Kind != CmdDisplayKeyMap || cmd.Args["lhs"] != "gg" || cmd.Args["hasLhs"] != true {
		t.Fatalf("expected DisplayKeyMap(gg), got %+v", cmd)
	}
}

func TestParseNnoremapMapsKeys(t *testing.T) {
	cmd := parseLine(t, "nnoremap j gg")
	if cmd.Kind != CmdMapKeys || cmd.Args["lhs"] != "j" || cmd.Args["rhs"] != "gg" {
		t.Fatalf("expected MapKeys(j, gg), got %+v", cmd)
	}
	if cmd.Args["allowRemap"] != false {
		t.Fatalf("expected allowRemap false for nnoremap, got %+v", cmd.Args)
	}
}

func TestParseUnmapFamily(t *testing.T) {
	cmd := parseLine(t, "vunmap j")
	if cmd.Kind != CmdUnmapKeys || cmd.Args["lhs"] != "j" {
		t.Fatalf("expected UnmapKeys(j), got %+v", cmd)
	}
}

func TestParseUnmapWithoutKeyFails(t *testing.T) {
	c := NewCursor("nunmap")
	if _, ok := ParseSingleCommand(c); ok {
		t.Fatal("expected unmap with no key notation to fail, not display")
	}
}

func TestParseTrailingCharactersFail(t *testing.T) {
	c := NewCursor("q extra")
	if _, ok := ParseSingleCommand(c); ok {
		t.Fatal("expected trailing characters after quit to fail")
	}
}

func TestParseSearchForward(t *testing.T) {
	cmd := parseLine(t, "/needle")
	if cmd.Kind != CmdSearchForward || cmd.Args["pattern"] != "needle" {
		t.Fatalf("expected SearchForward(needle), got %+v", cmd)
	}
}

func TestParseShiftWithRange(t *testing.T) {
	cmd := parseLine(t, ".,$> 2")
	if cmd.Kind != CmdShiftRight || cmd.Range.Kind != Range {
		t.Fatalf("expected ranged ShiftRight, got %+v", cmd)
	}
	if cmd.Args["count"] != 2 {
		t.Fatalf("expected count 2, got %+v", cmd.Args)
	}
}

func TestParseMarksWithValidLetters(t *testing.T) {
	cmd := parseLine(t, "marks ab'")
	if cmd.Kind != CmdDisplayMarks {
		t.Fatalf("expected DisplayMarks, got %+v", cmd)
	}
	marks, _ := cmd.Args["marks"].([]rune)
	if string(marks) != "ab'" {
		t.Fatalf("expected marks [a b '], got %+v", marks)
	}
}

func TestParseMarksRejectsUnknownChar(t *testing.T) {
	c := NewCursor("marks a1")
	if _, ok := ParseSingleCommand(c); ok {
		t.Fatal("expected an unknown mark character to fail rather than parse")
	}
}
