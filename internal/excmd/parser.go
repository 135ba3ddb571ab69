package excmd

import (
	"fmt"
	"strings"

	"github.com/dshills/vimcore/internal/key"
	"github.com/dshills/vimcore/internal/vim"
)

// ParseSingleCommand implements §4.C7's parseSingleCommand. It consumes an
// entire ex command line and reports a parse error rather than a partial
// Command on any failure (invalid range, unknown trailing text, and so
// on).
func ParseSingleCommand(c *Cursor) (*Command, bool) {
	if r, ok := c.Peek(); ok && isDigit(r) {
		save := c.Pos()
		n, _ := c.ParseNumber()
		if skipTrailing(c) {
			return &Command{Kind: CmdJumpToLine, Args: map[string]any{"line": int(n)}}, true
		}
		c.SetPos(save)
	}
	if r, ok := c.Peek(); ok && r == '$' {
		save := c.Pos()
		c.Advance()
		if skipTrailing(c) {
			return &Command{Kind: CmdJumpToLastLine}, true
		}
		c.SetPos(save)
	}

	var rng *LineRange
	if r, ok := c.Peek(); ok && (isDigit(r) || isRangeStart(r)) {
		save := c.Pos()
		if parsed, ok := ParseLineRange(c); ok {
			rng = parsed
		} else {
			c.SetPos(save)
		}
	}

	name, ok := parseCommandName(c)
	if !ok {
		return nil, false
	}
	canon := Expand(name)

	parse, known := subParsers[canon]
	if !known {
		return nil, false
	}

	cmd, ok := parse(c, rng)
	if !ok {
		return nil, false
	}

	c.SkipBlanks()
	if !c.AtEnd() {
		return nil, false
	}
	return cmd, true
}

func skipTrailing(c *Cursor) bool {
	c.SkipBlanks()
	return c.AtEnd()
}

func isRangeStart(r rune) bool {
	switch r {
	case '%', '.', '\'', '$', '/', '?', '+', '-':
		return true
	default:
		return false
	}
}

// parseCommandName implements step 4 of parseSingleCommand: an alphabetic
// run expanded against the command table, or a single punctuation
// character, or empty.
func parseCommandName(c *Cursor) (string, bool) {
	r, has := c.Peek()
	if !has {
		return "", true
	}
	if isAlpha(r) {
		start := c.Pos()
		for {
			r, ok := c.Peek()
			if !ok || !isAlpha(r) {
				break
			}
			c.Advance()
		}
		if c.Pos() == start {
			return "", false
		}
		return c.sliceFrom(start), true
	}
	c.Advance()
	return string(r), true
}

// parseSettingName consumes the maximal run of alphabetic characters, used
// for a :set item's option name so that a trailing '!', ':', '=', '+', '^',
// or '-' operator is left for the caller rather than absorbed into the name.
func parseSettingName(c *Cursor) (string, bool) {
	start := c.Pos()
	for {
		r, ok := c.Peek()
		if !ok || !isAlpha(r) {
			break
		}
		c.Advance()
	}
	if c.Pos() == start {
		return "", false
	}
	return c.sliceFrom(start), true
}

func isAlpha(r rune) bool {
	r = fold(r)
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// commandParser parses one command's trailing arguments (the name has
// already been consumed) given the line range parsed ahead of it, if any.
type commandParser func(c *Cursor, rng *LineRange) (*Command, bool)

// noRange wraps a parser that rejects a supplied line range.
func noRange(p func(c *Cursor) (*Command, bool)) commandParser {
	return func(c *Cursor, rng *LineRange) (*Command, bool) {
		if rng != nil {
			return nil, false
		}
		return p(c)
	}
}

var subParsers map[string]commandParser

func init() {
	subParsers = map[string]commandParser{
		"close":       noRange(parseClose),
		"delete":      parseDelete,
		"edit":        noRange(parseEdit),
		"quit":        noRange(parseQuit(CmdQuit)),
		"qall":        noRange(parseQuit(CmdQuitAll)),
		"quitall":     noRange(parseQuit(CmdQuitAll)),
		"wq":          noRange(parseQuitWithWrite),
		"xit":         noRange(parseQuitWithWrite),
		"exit":        noRange(parseQuitWithWrite),
		"yank":        parseYank,
		"put":         parsePut,
		"join":        parseJoin,
		"make":        noRange(parseMake),
		"fold":        parseFold,
		"retab":       parseRetab,
		"source":      noRange(parseSource),
		"split":       noRange(parseSplit),
		"set":         noRange(parseSet),
		"registers":   noRange(parseDisplayRegisters),
		"display":     noRange(parseDisplayRegisters),
		"marks":       noRange(parseMarks),
		"tabnext":     noRange(parseTabCount(CmdGotoNextTab)),
		"tabprevious": noRange(parseTabCount(CmdGotoPreviousTab)),
		"tabNext":     noRange(parseTabCount(CmdGotoPreviousTab)),
		"tabfirst":    noRange(parseTabNoCount(CmdGotoFirstTab)),
		"tabrewind":   noRange(parseTabNoCount(CmdGotoFirstTab)),
		"tablast":     noRange(parseTabNoCount(CmdGotoLastTab)),
		"substitute":  parseSubstitute(false, false),
		"smagic":      parseSubstitute(true, false),
		"snomagic":    parseSubstitute(false, true),
		"&":           parseSubstituteRepeat(CmdSubstituteRepeatLast),
		"~":           parseSubstituteRepeat(CmdSubstituteRepeatLastWithSearch),
		"/":           noRange(parseSearch(Forward)),
		"?":           noRange(parseSearch(Backward)),
		"<":           parseShift(CmdShiftLeft),
		">":           parseShift(CmdShiftRight),
		"nohlsearch":  noRange(parseNoArgs(CmdNoHlSearch)),
		"redo":        noRange(parseNoArgs(CmdRedo)),
		"undo":        noRange(parseNoArgs(CmdUndo)),
	}
	for prefix, modes := range mapFamilyPrefixes {
		prefix, modes := prefix, modes
		subParsers[prefix] = noRange(parseMapFamily(prefix, modes))
	}
}

func parseNoArgs(kind CommandKind) func(c *Cursor) (*Command, bool) {
	return func(c *Cursor) (*Command, bool) {
		return &Command{Kind: kind}, true
	}
}

func parseClose(c *Cursor) (*Command, bool) {
	return &Command{Kind: CmdClose, Bang: c.ParseBang()}, true
}

func parseOptionalRegister(c *Cursor) (rune, bool) {
	save := c.Pos()
	r, ok := c.Peek()
	if !ok || isDigit(r) || isBlank(r) {
		return 0, false
	}
	if !vim.IsValidRegister(r) {
		c.SetPos(save)
		return 0, false
	}
	c.Advance()
	return r, true
}

func parseOptionalCount(c *Cursor) (int, bool) {
	n, ok := c.ParseNumber()
	if !ok {
		return 0, false
	}
	return int(n), true
}

func parseDelete(c *Cursor, rng *LineRange) (*Command, bool) {
	c.SkipBlanks()
	reg, hasReg := parseOptionalRegister(c)
	c.SkipBlanks()
	count, hasCount := parseOptionalCount(c)
	return &Command{Kind: CmdDelete, Range: rng, Args: map[string]any{
		"register": reg, "hasRegister": hasReg, "count": count, "hasCount": hasCount,
	}}, true
}

func parseYank(c *Cursor, rng *LineRange) (*Command, bool) {
	c.SkipBlanks()
	reg, hasReg := parseOptionalRegister(c)
	c.SkipBlanks()
	count, hasCount := parseOptionalCount(c)
	return &Command{Kind: CmdYank, Range: rng, Args: map[string]any{
		"register": reg, "hasRegister": hasReg, "count": count, "hasCount": hasCount,
	}}, true
}

func parseEdit(c *Cursor) (*Command, bool) {
	bang := c.ParseBang()
	c.SkipBlanks()
	opts := parseFileOptions(c)
	opt, _ := tryParseCommandOption(c)
	c.SkipBlanks()
	return &Command{Kind: CmdEdit, Bang: bang, Args: map[string]any{
		"fileOptions": opts, "commandOption": opt, "fileName": c.ParseToEndOfLine(),
	}}, true
}

func parseQuit(kind CommandKind) func(c *Cursor) (*Command, bool) {
	return func(c *Cursor) (*Command, bool) {
		return &Command{Kind: kind, Bang: c.ParseBang()}, true
	}
}

func parseQuitWithWrite(c *Cursor) (*Command, bool) {
	bang := c.ParseBang()
	c.SkipBlanks()
	opts := parseFileOptions(c)
	c.SkipBlanks()
	name, hasName := c.ParseWord()
	return &Command{Kind: CmdQuitWithWrite, Bang: bang, Args: map[string]any{
		"fileOptions": opts, "fileName": name, "hasFileName": hasName,
	}}, true
}

func parsePut(c *Cursor, rng *LineRange) (*Command, bool) {
	bang := c.ParseBang()
	c.SkipBlanks()
	reg, hasReg := parseOptionalRegister(c)
	kind := CmdPutAfter
	if bang {
		kind = CmdPutBefore
	}
	return &Command{Kind: kind, Range: rng, Args: map[string]any{
		"register": reg, "hasRegister": hasReg,
	}}, true
}

func parseJoin(c *Cursor, rng *LineRange) (*Command, bool) {
	c.SkipBlanks()
	count, hasCount := parseOptionalCount(c)
	return &Command{Kind: CmdJoin, Range: rng, Args: map[string]any{
		"count": count, "hasCount": hasCount,
	}}, true
}

func parseMake(c *Cursor) (*Command, bool) {
	bang := c.ParseBang()
	c.SkipBlanks()
	return &Command{Kind: CmdMake, Bang: bang, Args: map[string]any{"args": c.ParseToEndOfLine()}}, true
}

func parseFold(c *Cursor, rng *LineRange) (*Command, bool) {
	return &Command{Kind: CmdFold, Range: rng}, true
}

func parseRetab(c *Cursor, rng *LineRange) (*Command, bool) {
	bang := c.ParseBang()
	c.SkipBlanks()
	n, hasN := parseOptionalCount(c)
	return &Command{Kind: CmdRetab, Range: rng, Bang: bang, Args: map[string]any{
		"newTab": n, "hasNewTab": hasN,
	}}, true
}

func parseSource(c *Cursor) (*Command, bool) {
	bang := c.ParseBang()
	c.SkipBlanks()
	return &Command{Kind: CmdSource, Bang: bang, Args: map[string]any{"file": c.ParseToEndOfLine()}}, true
}

func parseSplit(c *Cursor) (*Command, bool) {
	c.SkipBlanks()
	opts := parseFileOptions(c)
	opt, _ := tryParseCommandOption(c)
	return &Command{Kind: CmdSplit, Args: map[string]any{
		"fileOptions": opts, "commandOption": opt,
	}}, true
}

func parseSet(c *Cursor) (*Command, bool) {
	var items []SetItem
	for {
		c.SkipBlanks()
		if c.AtEnd() {
			break
		}
		item, ok := parseSetItem(c)
		if !ok {
			return nil, false
		}
		items = append(items, item)
	}
	return &Command{Kind: CmdSet, Args: map[string]any{"items": items}}, true
}

func parseSetItem(c *Cursor) (SetItem, bool) {
	if c.TryParseWord("all&") {
		return SetItem{Kind: SetResetAllToDefault}, true
	}
	if c.TryParseWord("all") {
		return SetItem{Kind: SetDisplayAllButTerminal}, true
	}
	if c.TryParseWord("termcap") {
		return SetItem{Kind: SetDisplayAllTerminal}, true
	}

	w, ok := parseSettingName(c)
	if !ok {
		return SetItem{}, false
	}

	switch {
	case len(w) > 2 && w[:2] == "no":
		return SetItem{Kind: SetToggleSetting, Name: w[2:]}, true
	case len(w) > 3 && w[:3] == "inv":
		return SetItem{Kind: SetInvertSetting, Name: w[3:]}, true
	}

	r, has := c.Peek()
	if !has {
		return SetItem{Kind: SetDisplaySetting, Name: w}, true
	}
	switch r {
	case '!':
		c.Advance()
		return SetItem{Kind: SetInvertSetting, Name: w}, true
	case ':', '=':
		c.Advance()
		val, _ := c.ParseWord()
		return SetItem{Kind: SetAssignSetting, Name: w, Value: val}, true
	case '+', '^', '-':
		opKind := SetAddSetting
		switch r {
		case '^':
			opKind = SetMultiplySetting
		case '-':
			opKind = SetSubtractSetting
		}
		c.Advance()
		if r2, ok2 := c.Peek(); ok2 && r2 == '=' {
			c.Advance()
		}
		val, _ := c.ParseWord()
		return SetItem{Kind: opKind, Name: w, Value: val}, true
	default:
		return SetItem{Kind: SetDisplaySetting, Name: w}, true
	}
}

func parseDisplayRegisters(c *Cursor) (*Command, bool) {
	c.SkipBlanks()
	reg, hasReg := parseOptionalRegister(c)
	return &Command{Kind: CmdDisplayRegisters, Args: map[string]any{
		"register": reg, "hasRegister": hasReg,
	}}, true
}

// validMarkChars are the mark names §4.C7 recognizes in a "marks" argument
// word: the lowercase/uppercase letters a user can set with `m`, plus the
// special marks Vim maintains automatically (quote-jump, last-change,
// visual-selection and change/yank bounds).
const validMarkChars = "'`^.[]<>"

func isValidMarkChar(r rune) bool {
	return isAlpha(r) || strings.ContainsRune(validMarkChars, r)
}

func parseMarks(c *Cursor) (*Command, bool) {
	c.SkipBlanks()
	word, _ := c.ParseWord()
	var marks []rune
	for _, r := range word {
		if !isValidMarkChar(r) {
			return nil, false
		}
		marks = append(marks, r)
	}
	return &Command{Kind: CmdDisplayMarks, Args: map[string]any{"marks": marks}}, true
}

func parseTabCount(kind CommandKind) func(c *Cursor) (*Command, bool) {
	return func(c *Cursor) (*Command, bool) {
		c.SkipBlanks()
		n, hasN := parseOptionalCount(c)
		return &Command{Kind: kind, Args: map[string]any{"count": n, "hasCount": hasN}}, true
	}
}

func parseTabNoCount(kind CommandKind) func(c *Cursor) (*Command, bool) {
	return func(c *Cursor) (*Command, bool) {
		return &Command{Kind: kind}, true
	}
}

// validDelimiter reports whether r may open a substitute/search pattern:
// anything but alphanumeric, backslash, quote, or pipe.
func validDelimiter(r rune) bool {
	switch {
	case isAlpha(r) || isDigit(r):
		return false
	case r == '\\' || r == '"' || r == '|':
		return false
	default:
		return true
	}
}

func parseSubstitute(forceMagic, forceNomagic bool) commandParser {
	return func(c *Cursor, rng *LineRange) (*Command, bool) {
		r, has := c.Peek()
		if !has || !validDelimiter(r) {
			return nil, false
		}
		c.Advance()

		pattern, ok := c.ParsePattern(r)
		if !ok {
			return nil, false
		}
		replace, ok := c.ParsePattern(r)
		if !ok {
			return nil, false
		}
		flags := parseSubstituteFlags(c)
		if forceMagic {
			flags.Magic, flags.Nomagic = true, false
		}
		if forceNomagic {
			flags.Magic, flags.Nomagic = false, true
		}
		c.SkipBlanks()
		count, hasCount := parseOptionalCount(c)
		return &Command{Kind: CmdSubstitute, Range: rng, Args: map[string]any{
			"pattern": pattern, "replace": replace, "flags": flags,
			"count": count, "hasCount": hasCount,
		}}, true
	}
}

func parseSubstituteRepeat(kind CommandKind) commandParser {
	return func(c *Cursor, rng *LineRange) (*Command, bool) {
		flags := parseSubstituteFlags(c)
		c.SkipBlanks()
		count, hasCount := parseOptionalCount(c)
		return &Command{Kind: kind, Range: rng, Args: map[string]any{
			"flags": flags, "count": count, "hasCount": hasCount,
		}}, true
	}
}

func parseSearch(dir SearchDirection) func(c *Cursor) (*Command, bool) {
	kind := CmdSearchForward
	if dir == Backward {
		kind = CmdSearchBackward
	}
	return func(c *Cursor) (*Command, bool) {
		return &Command{Kind: kind, Args: map[string]any{"pattern": c.ParseToEndOfLine()}}, true
	}
}

func parseShift(kind CommandKind) commandParser {
	return func(c *Cursor, rng *LineRange) (*Command, bool) {
		c.SkipBlanks()
		n, hasN := parseOptionalCount(c)
		return &Command{Kind: kind, Range: rng, Args: map[string]any{"count": n, "hasCount": hasN}}, true
	}
}

// mapFamilyPrefixes maps each ":*map"/":*noremap" command prefix to the
// remap modes it targets, per the standard Vim table.
var mapFamilyPrefixes = map[string][]key.RemapMode{
	"map":      {key.RemapNormal, key.RemapVisual, key.RemapSelect, key.RemapOperatorPending},
	"noremap":  {key.RemapNormal, key.RemapVisual, key.RemapSelect, key.RemapOperatorPending},
	"unmap":    {key.RemapNormal, key.RemapVisual, key.RemapSelect, key.RemapOperatorPending},
	"mapclear": {key.RemapNormal, key.RemapVisual, key.RemapSelect, key.RemapOperatorPending},
	"nmap":       {key.RemapNormal},
	"nnoremap":   {key.RemapNormal},
	"nunmap":     {key.RemapNormal},
	"nmapclear":  {key.RemapNormal},
	"vmap":       {key.RemapVisual, key.RemapSelect},
	"vnoremap":   {key.RemapVisual, key.RemapSelect},
	"vunmap":     {key.RemapVisual, key.RemapSelect},
	"vmapclear":  {key.RemapVisual, key.RemapSelect},
	"xmap":       {key.RemapVisual},
	"xnoremap":   {key.RemapVisual},
	"xunmap":     {key.RemapVisual},
	"xmapclear":  {key.RemapVisual},
	"smap":       {key.RemapSelect},
	"snoremap":   {key.RemapSelect},
	"sunmap":     {key.RemapSelect},
	"smapclear":  {key.RemapSelect},
	"omap":       {key.RemapOperatorPending},
	"onoremap":   {key.RemapOperatorPending},
	"ounmap":     {key.RemapOperatorPending},
	"omapclear":  {key.RemapOperatorPending},
	"imap":       {key.RemapInsert},
	"inoremap":   {key.RemapInsert},
	"iunmap":     {key.RemapInsert},
	"imapclear":  {key.RemapInsert},
	"lmap":       {key.RemapLanguage},
	"lnoremap":   {key.RemapLanguage},
	"lunmap":     {key.RemapLanguage},
	"lmapclear":  {key.RemapLanguage},
	"cmap":       {key.RemapCommand},
	"cnoremap":   {key.RemapCommand},
	"cunmap":     {key.RemapCommand},
	"cmapclear":  {key.RemapCommand},
}

// bangAllowedPrefixes is the set of un-prefixed variants that accept a
// trailing '!' per §4.C7's map-family grammar.
var bangAllowedPrefixes = map[string]bool{
	"map": true, "noremap": true, "unmap": true, "mapclear": true,
}

func parseMapFamily(prefix string, modes []key.RemapMode) func(c *Cursor) (*Command, bool) {
	noremapPrefixes := map[string]bool{
		"noremap": true, "nnoremap": true, "vnoremap": true, "xnoremap": true,
		"snoremap": true, "onoremap": true, "inoremap": true, "lnoremap": true,
		"cnoremap": true,
	}
	isUnmap := len(prefix) >= 5 && prefix[len(prefix)-5:] == "unmap"
	isClear := len(prefix) >= 8 && prefix[len(prefix)-8:] == "mapclear"

	return func(c *Cursor) (*Command, bool) {
		bang := false
		if bangAllowedPrefixes[prefix] {
			bang = c.ParseBang()
		}
		c.SkipBlanks()

		if isClear {
			return &Command{Kind: CmdClearKeyMap, Bang: bang, Args: map[string]any{"modes": modes}}, true
		}

		if c.AtEnd() && !isUnmap {
			return &Command{Kind: CmdDisplayKeyMap, Bang: bang, Args: map[string]any{
				"modes": modes, "lhs": "", "hasLhs": false,
			}}, true
		}

		if c.AtEnd() {
			return nil, false
		}

		lhs, ok := c.ParseWord()
		if !ok {
			return nil, false
		}
		c.SkipBlanks()

		if isUnmap {
			return &Command{Kind: CmdUnmapKeys, Bang: bang, Args: map[string]any{
				"lhs": lhs, "modes": modes,
			}}, true
		}

		if c.AtEnd() {
			return &Command{Kind: CmdDisplayKeyMap, Bang: bang, Args: map[string]any{
				"modes": modes, "lhs": lhs, "hasLhs": true,
			}}, true
		}

		rhs := c.ParseToEndOfLine()
		return &Command{Kind: CmdMapKeys, Bang: bang, Args: map[string]any{
			"lhs": lhs, "rhs": rhs, "modes": modes, "allowRemap": !noremapPrefixes[prefix],
		}}, true
	}
}

// ParseError formats a failed parse for diagnostic display. ParseSingleCommand
// itself only reports success/failure; hosts wanting a message can call
// this with the original line.
func ParseError(line string) error {
	return fmt.Errorf("excmd: could not parse %q", line)
}
