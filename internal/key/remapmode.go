package key

// RemapMode indexes the key-remap table. It is coarser than ModeKind: several
// mode kinds (Insert and Replace, for instance) project onto the same remap
// mode, and Normal mode's remap mode can vary while an operator is pending.
type RemapMode int

const (
	// RemapInsert covers Insert and Replace mode direct-insert dispatch.
	RemapInsert RemapMode = iota
	// RemapCommand covers the command-line mode.
	RemapCommand
	// RemapNormal covers Normal mode outside an operator-pending sequence.
	RemapNormal
	// RemapVisual covers all three visual mode kinds.
	RemapVisual
	// RemapSelect covers select mode.
	RemapSelect
	// RemapOperatorPending covers Normal mode while an operator awaits its
	// motion.
	RemapOperatorPending
	// RemapLanguage covers language-mapping input (<C-^> toggled IME-style
	// input), carried for map-command argument parsing.
	RemapLanguage
)

// String returns the canonical lowercase name used in :map-family commands.
func (m RemapMode) String() string {
	switch m {
	case RemapInsert:
		return "insert"
	case RemapCommand:
		return "command"
	case RemapNormal:
		return "normal"
	case RemapVisual:
		return "visual"
	case RemapSelect:
		return "select"
	case RemapOperatorPending:
		return "operator-pending"
	case RemapLanguage:
		return "language"
	default:
		return "unknown"
	}
}
