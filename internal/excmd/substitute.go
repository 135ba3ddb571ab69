package excmd

// SubstituteFlags holds the flag set parsed from the characters trailing a
// ":substitute" command's two patterns.
type SubstituteFlags struct {
	Confirm                  bool
	UsePreviousSearchPattern bool
	SuppressError            bool
	ReplaceAll               bool
	IgnoreCase               bool
	OrdinalCase              bool
	ReportOnly               bool
	PrintLast                bool
	PrintLastWithList        bool
	PrintLastWithNumber      bool
	UsePreviousFlags         bool
	Magic                    bool
	Nomagic                  bool
}

// parseSubstituteFlags consumes the flag-letter run following the
// replacement pattern of a ":substitute" command.
func parseSubstituteFlags(c *Cursor) SubstituteFlags {
	var f SubstituteFlags
	for {
		r, ok := c.Peek()
		if !ok {
			break
		}
		switch r {
		case 'c':
			f.Confirm = true
		case 'r':
			f.UsePreviousSearchPattern = true
		case 'e':
			f.SuppressError = true
		case 'g':
			f.ReplaceAll = true
		case 'i':
			f.IgnoreCase = true
		case 'I':
			f.OrdinalCase = true
		case 'n':
			f.ReportOnly = true
		case 'p':
			f.PrintLast = true
		case 'l':
			f.PrintLastWithList = true
		case '#':
			f.PrintLastWithNumber = true
		case '&':
			f.UsePreviousFlags = true
		default:
			return f
		}
		c.Advance()
	}
	return f
}
