package excmd

// CommandKind discriminates a parsed Command.
type CommandKind int

const (
	CmdClose CommandKind = iota
	CmdDelete
	CmdEdit
	CmdQuit
	CmdQuitAll
	CmdQuitWithWrite
	CmdYank
	CmdPutBefore
	CmdPutAfter
	CmdJoin
	CmdMake
	CmdFold
	CmdRetab
	CmdSource
	CmdSplit
	CmdSet
	CmdDisplayRegisters
	CmdDisplayMarks
	CmdGotoNextTab
	CmdGotoPreviousTab
	CmdGotoFirstTab
	CmdGotoLastTab
	CmdSubstitute
	CmdSubstituteRepeatLast
	CmdSubstituteRepeatLastWithSearch
	CmdSearchForward
	CmdSearchBackward
	CmdShiftLeft
	CmdShiftRight
	CmdNoHlSearch
	CmdRedo
	CmdUndo
	CmdDisplayKeyMap
	CmdMapKeys
	CmdUnmapKeys
	CmdClearKeyMap
	CmdJumpToLine
	CmdJumpToLastLine
)

// Command is the result of parsing one ex command line. Range is nil when
// the command never had one supplied. Args carries the per-kind fields
// set by the matching sub-parser in parser.go; a host switches on Kind and
// reads Args with the matching key set.
type Command struct {
	Kind  CommandKind
	Range *LineRange
	Bang  bool
	Args  map[string]any
}

// SetItemKind discriminates a SetItem, one whitespace-separated item
// parsed by the "set" command.
type SetItemKind int

const (
	SetDisplayAllButTerminal SetItemKind = iota
	SetResetAllToDefault
	SetDisplayAllTerminal
	SetToggleSetting
	SetInvertSetting
	SetAssignSetting
	SetAddSetting
	SetMultiplySetting
	SetSubtractSetting
	SetDisplaySetting
)

// SetItem is one parsed element of a ":set" argument chain.
type SetItem struct {
	Kind  SetItemKind
	Name  string
	Value string
}

// SearchDirection discriminates a "/" or "?" command.
type SearchDirection int

const (
	Forward SearchDirection = iota
	Backward
)

// CommandOptionKind discriminates a CommandOption ("+..." argument).
type CommandOptionKind int

const (
	OptStartAtLastLine CommandOptionKind = iota
	OptStartAtLine
	OptStartAtPattern
	OptExecuteLineCommand
)

// CommandOption is the parsed form of a "+arg" file-open option.
type CommandOption struct {
	Kind    CommandOptionKind
	Line    int
	Pattern string
	Command *Command
}
