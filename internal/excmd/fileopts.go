package excmd

// parseFileOptions parses the ++opt-style options some file commands
// accept before a file name. No such option grammar is specified anywhere
// in this grammar, so this always returns an empty list without consuming
// any input; it exists as the documented hook a future grammar extension
// would fill in.
func parseFileOptions(c *Cursor) []string {
	return nil
}

// parseCommandOption implements §4.C7's parseCommandOption: it runs only
// once a leading '+' has been recognized, producing a CommandOption that
// says where a newly opened buffer should land. On failure it restores c
// to the position it was given (immediately after the '+').
func parseCommandOption(c *Cursor) (*CommandOption, bool) {
	save := c.Pos()

	if c.AtEnd() {
		return &CommandOption{Kind: OptStartAtLastLine}, true
	}

	if r, ok := c.Peek(); ok && isDigit(r) {
		n, _ := c.ParseNumber()
		return &CommandOption{Kind: OptStartAtLine, Line: int(n)}, true
	}

	if r, ok := c.Peek(); ok && r == '/' {
		c.Advance()
		return &CommandOption{Kind: OptStartAtPattern, Pattern: c.ParseToEndOfLine()}, true
	}

	if cmd, ok := ParseSingleCommand(c); ok {
		return &CommandOption{Kind: OptExecuteLineCommand, Command: cmd}, true
	}

	c.SetPos(save)
	return nil, false
}

// tryParseCommandOption consumes a leading '+' and, on success, the
// CommandOption that follows it. If no '+' is present it returns ok=false
// without consuming anything.
func tryParseCommandOption(c *Cursor) (*CommandOption, bool) {
	r, ok := c.Peek()
	if !ok || r != '+' {
		return nil, false
	}
	plusPos := c.Pos()
	c.Advance()
	opt, ok := parseCommandOption(c)
	if !ok {
		c.SetPos(plusPos)
		return nil, false
	}
	return opt, true
}
