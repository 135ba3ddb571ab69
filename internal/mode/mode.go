package mode

import (
	"github.com/dshills/vimcore/internal/key"
)

// Kind enumerates the mode kinds a registry can hold.
type Kind int

const (
	// Normal is Vim's normal (command) mode.
	Normal Kind = iota
	// Insert is direct-insert text entry.
	Insert
	// Replace is direct-insert overtype entry.
	Replace
	// VisualCharacter is character-wise visual selection.
	VisualCharacter
	// VisualLine is line-wise visual selection.
	VisualLine
	// VisualBlock is block-wise visual selection.
	VisualBlock
	// Command is the ex command-line mode.
	Command
	// OperatorPending awaits a motion or text object after an operator key.
	OperatorPending
	// SubstituteConfirm awaits a single-character confirm/skip/quit reply.
	SubstituteConfirm
	// Disabled is the disable-command's terminal mode.
	Disabled
	// ExternalEdit indicates editing delegated to an external program.
	ExternalEdit
	// Uninitialized is the registry's bootstrap mode before any real mode
	// has been entered.
	Uninitialized
)

// String returns a human-readable, lowercase-hyphenated name.
func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Insert:
		return "insert"
	case Replace:
		return "replace"
	case VisualCharacter:
		return "visual"
	case VisualLine:
		return "visual-line"
	case VisualBlock:
		return "visual-block"
	case Command:
		return "command"
	case OperatorPending:
		return "operator-pending"
	case SubstituteConfirm:
		return "substitute-confirm"
	case Disabled:
		return "disabled"
	case ExternalEdit:
		return "external-edit"
	case Uninitialized:
		return "uninitialized"
	default:
		return "unknown"
	}
}

// IsVisual reports whether k is one of the three visual mode kinds.
func (k Kind) IsVisual() bool {
	return k == VisualCharacter || k == VisualLine || k == VisualBlock
}

// Argument carries data a mode switch needs on entry (an initial visual
// anchor, a one-time-command source, a substitute prompt). It is opaque to
// the registry and the engine.
type Argument any

// Mode is the capability every concrete mode kind satisfies. canProcess/
// process/onEnter/onLeave/onClose use Go method names (CanProcess, Process,
// OnEnter, OnLeave, OnClose, Kind) per this module's export conventions.
type Mode interface {
	// Kind returns this mode's kind.
	Kind() Kind

	// CanProcess reports whether k would be accepted for processing.
	CanProcess(k key.Event) bool

	// Process handles k and reports the outcome.
	Process(k key.Event) ProcessResult

	// OnEnter is called when the registry switches into this mode.
	OnEnter(arg Argument)

	// OnLeave is called when the registry switches away from this mode.
	OnLeave()

	// OnClose is called once, on engine shutdown, for every registered mode.
	OnClose()
}

// DirectInsertMode is additionally satisfied by Insert and Replace: modes
// that absorb ordinary printable keys as literal text rather than as
// commands.
type DirectInsertMode interface {
	Mode
	// IsDirectInsert reports whether k would be absorbed as literal text.
	IsDirectInsert(k key.Event) bool
}

// ProcessResultKind discriminates a ProcessResult.
type ProcessResultKind int

const (
	// ResultHandled means the input was consumed; see Switch for the
	// accompanying transition directive.
	ResultHandled ProcessResultKind = iota
	// ResultHandledNeedMoreInput means the input was consumed and the mode
	// awaits more input before it can report a definite outcome.
	ResultHandledNeedMoreInput
	// ResultNotHandled means the mode refused the input.
	ResultNotHandled
	// ResultError means the input was consumed but failed semantically.
	ResultError
)

// ProcessResult is the outcome of Mode.Process.
type ProcessResult struct {
	Kind   ProcessResultKind
	Switch Switch
}

// Handled reports a consumed input with the given transition.
func Handled(s Switch) ProcessResult {
	return ProcessResult{Kind: ResultHandled, Switch: s}
}

// HandledNeedMoreInput reports a consumed input still awaiting more keys.
func HandledNeedMoreInput() ProcessResult {
	return ProcessResult{Kind: ResultHandledNeedMoreInput}
}

// NotHandled reports a refused input.
func NotHandled() ProcessResult {
	return ProcessResult{Kind: ResultNotHandled}
}

// Error reports a consumed input that failed semantically.
func Error() ProcessResult {
	return ProcessResult{Kind: ResultError}
}

// SwitchKind discriminates a Switch.
type SwitchKind int

const (
	// NoSwitch performs no transition.
	NoSwitch SwitchKind = iota
	// SwitchToMode transitions to the given kind with no argument.
	SwitchToMode
	// SwitchToModeWithArgument transitions to the given kind with an
	// argument.
	SwitchToModeWithArgument
	// SwitchToPreviousMode returns to the registry's previous mode.
	SwitchToPreviousMode
	// SwitchOneTimeCommand records the current mode as a one-time-command
	// source and switches to Normal.
	SwitchOneTimeCommand
)

// Switch is a ModeSwitch directive returned alongside ResultHandled.
type Switch struct {
	Kind SwitchKind
	To   Kind
	Arg  Argument
}

// NoSwitchDirective performs no transition.
func NoSwitchDirective() Switch { return Switch{Kind: NoSwitch} }

// SwitchMode transitions to kind with no argument.
func SwitchMode(kind Kind) Switch {
	return Switch{Kind: SwitchToMode, To: kind}
}

// SwitchModeWithArgument transitions to kind carrying arg.
func SwitchModeWithArgument(kind Kind, arg Argument) Switch {
	return Switch{Kind: SwitchToModeWithArgument, To: kind, Arg: arg}
}

// SwitchPreviousMode returns to the registry's previous mode.
func SwitchPreviousMode() Switch {
	return Switch{Kind: SwitchToPreviousMode}
}

// SwitchModeOneTimeCommand records the current mode as the one-time-command
// source and enters Normal for a single command.
func SwitchModeOneTimeCommand() Switch {
	return Switch{Kind: SwitchOneTimeCommand}
}

// UninitializedMode is the registry's bootstrap mode: it refuses every
// input and ignores every lifecycle callback.
type UninitializedMode struct{}

// Kind returns Uninitialized.
func (UninitializedMode) Kind() Kind { return Uninitialized }

// CanProcess always returns false.
func (UninitializedMode) CanProcess(key.Event) bool { return false }

// Process always returns NotHandled.
func (UninitializedMode) Process(key.Event) ProcessResult { return NotHandled() }

// OnEnter is a no-op.
func (UninitializedMode) OnEnter(Argument) {}

// OnLeave is a no-op.
func (UninitializedMode) OnLeave() {}

// OnClose is a no-op.
func (UninitializedMode) OnClose() {}
