// Package engine implements the input-processing engine that sits between
// a host application's raw keystrokes and the mode registry: it resolves
// each keystroke through the key-remap table, dispatches the result to the
// current mode, and applies the post-dispatch rules that govern one-time
// commands (the `i_CTRL-O` "one Normal command then back to Insert"
// bracket) and mode transitions.
package engine

import (
	"errors"
	"sync"

	"github.com/dshills/vimcore/internal/key"
	"github.com/dshills/vimcore/internal/mode"
	"github.com/dshills/vimcore/internal/remap"
)

// ErrAlreadyClosed is returned by Close on a second call.
var ErrAlreadyClosed = errors.New("engine: already closed")

// Engine coordinates remapping and mode dispatch for a single editor
// session. It owns no text buffer; buffer and cursor state live in the
// host application, which the engine reaches only through the callback
// fields below and through whatever Dispatcher the installed modes were
// constructed with.
type Engine struct {
	mu sync.Mutex

	registry *mode.Registry
	table    *remap.Table
	resolver *remap.Resolver

	processingDepth int
	bufferedInput   *key.Sequence

	inOneTimeCommand     bool
	oneTimeCommandSource mode.Kind

	disableKey    key.Event
	hasDisableKey bool

	closed bool

	// OnKeyInputStart fires at the very start of Process, before remapping.
	OnKeyInputStart func(k key.Event)
	// OnKeyInputEnd fires on every exit path from Process.
	OnKeyInputEnd func(k key.Event)
	// OnKeyInputBuffered fires when k extends a still-ambiguous mapping.
	OnKeyInputBuffered func(k key.Event)
	// OnKeyInputProcessed fires once per original input, after dispatch.
	OnKeyInputProcessed func(k key.Event, result mode.ProcessResult)
	// OnModeSwitched fires whenever the registry commits a mode switch.
	OnModeSwitched func(from, to mode.Kind)
	// OnErrorMessage reports a user-facing error (e.g. a recursive mapping).
	OnErrorMessage func(msg string)
	// OnWarningMessage reports a user-facing warning.
	OnWarningMessage func(msg string)
	// OnStatusMessage reports a transient status-line message.
	OnStatusMessage func(msg string)
	// OnStatusMessageLong reports a status-line message that should persist
	// until replaced (vs. OnStatusMessage's transient one).
	OnStatusMessageLong func(msg string)
	// OnClosed fires once, at the end of a successful Close.
	OnClosed func()
}

// New creates an engine dispatching through registry and remapping through
// table.
func New(registry *mode.Registry, table *remap.Table) *Engine {
	e := &Engine{
		registry: registry,
		table:    table,
		resolver: remap.NewResolver(table),
	}
	registry.OnChange(func(from, to mode.Kind) {
		if e.OnModeSwitched != nil {
			e.OnModeSwitched(from, to)
		}
	})
	return e
}

// SetDisableCommandKey sets the key that switches the engine into
// DisabledMode whenever it is dispatched in any other mode (§4.C3
// dispatchOne, step 1).
func (e *Engine) SetDisableCommandKey(k key.Event, enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.disableKey = k
	e.hasDisableKey = enabled
}

// remapModeFor projects a mode kind onto the key-remap table's coarser
// RemapMode index. Because OperatorPending is its own registered mode
// kind (rather than Normal-mode substate), this static table alone
// suffices: there is no need for Normal mode to additionally expose "its
// own current remap mode", since entering an operator-pending sequence
// already switches the registry's current kind.
func remapModeFor(kind mode.Kind) (key.RemapMode, bool) {
	switch kind {
	case mode.Insert, mode.Replace:
		return key.RemapInsert, true
	case mode.Command:
		return key.RemapCommand, true
	case mode.VisualCharacter, mode.VisualLine, mode.VisualBlock:
		return key.RemapVisual, true
	case mode.Normal:
		return key.RemapNormal, true
	case mode.OperatorPending:
		return key.RemapOperatorPending, true
	default:
		return 0, false
	}
}

// resolveWithBuffer implements §4.C3's ResolveWithBuffer: it folds any
// buffered remap input into seq before resolving, without mutating engine
// state (callers decide whether to commit the result).
func (e *Engine) resolveWithBuffer(k key.Event) (remap.Result, *key.Sequence) {
	var seq *key.Sequence
	if e.bufferedInput != nil {
		seq = e.bufferedInput.Clone()
		seq.Add(k)
	} else {
		seq = key.NewSequence()
		seq.Add(k)
	}

	rmode, ok := remapModeFor(e.registry.Current().Kind())
	if !ok {
		return remap.Result{Kind: remap.Mapped, Set: seq}, seq
	}
	return e.resolver.Resolve(seq, rmode, true), seq
}

// canProcessOne implements §4.C3's canProcessOne(k), shared by canProcess
// (allowDirectInsert=true) and canProcessAsCommand (allowDirectInsert=false).
func (e *Engine) canProcessOne(k key.Event, allowDirectInsert bool) bool {
	if e.hasDisableKey && k.Equals(e.disableKey) {
		return true
	}
	if k.Key == key.KeyNop {
		return true
	}
	if k.IsEscape() && e.inOneTimeCommand {
		return true
	}

	current := e.registry.Current()
	if !current.CanProcess(k) {
		return false
	}
	if allowDirectInsert {
		return true
	}

	di, ok := current.(mode.DirectInsertMode)
	if !ok {
		return true
	}
	return !di.IsDirectInsert(k)
}

// CanProcess reports whether k would be accepted for processing right now,
// including direct-insert keystrokes Insert/Replace would absorb as text.
func (e *Engine) CanProcess(k key.Event) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.canProcess(k)
}

func (e *Engine) canProcess(k key.Event) bool {
	result, set := e.resolveWithBuffer(k)
	switch result.Kind {
	case remap.NeedsMoreInput, remap.Recursive:
		return true
	default:
		first := set.First()
		if first == nil {
			return false
		}
		if result.Kind == remap.Mapped {
			first = result.Set.First()
		}
		return e.canProcessOne(*first, true)
	}
}

// CanProcessAsCommand reports whether k would be claimed by the engine as
// a command, as opposed to a direct-insert keystroke Insert/Replace would
// absorb as literal text.
func (e *Engine) CanProcessAsCommand(k key.Event) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	result, set := e.resolveWithBuffer(k)
	switch result.Kind {
	case remap.NeedsMoreInput, remap.Recursive:
		return true
	default:
		first := set.First()
		if first == nil {
			return false
		}
		if result.Kind == remap.Mapped {
			first = result.Set.First()
		}
		return e.canProcessOne(*first, false)
	}
}

func (e *Engine) emit(fn func(key.Event), k key.Event) {
	if fn != nil {
		fn(k)
	}
}

// Process resolves k through the remap table and dispatches the outcome to
// the current mode, applying the post-dispatch one-time-command rules. It
// implements §4.C3's normative process(k) algorithm.
func (e *Engine) Process(k key.Event) mode.ProcessResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.process(k)
}

func (e *Engine) process(k key.Event) mode.ProcessResult {
	e.processingDepth++
	e.emit(e.OnKeyInputStart, k)
	defer func() {
		e.emit(e.OnKeyInputEnd, k)
		e.processingDepth--
	}()

	if e.closed {
		return mode.Error()
	}

	result, set := e.resolveWithBuffer(k)
	e.bufferedInput = nil

	if result.Kind == remap.NeedsMoreInput {
		e.bufferedInput = set
		e.emit(e.OnKeyInputBuffered, k)
		return mode.Handled(mode.NoSwitchDirective())
	}

	var final mode.ProcessResult
	switch result.Kind {
	case remap.NoMapping:
		final = e.dispatchSet(set)
	case remap.Mapped:
		final = e.dispatchSet(result.Set)
	case remap.Recursive:
		if e.OnErrorMessage != nil {
			e.OnErrorMessage("recursive mapping")
		}
		final = mode.Error()
	}

	if e.OnKeyInputProcessed != nil {
		e.OnKeyInputProcessed(k, final)
	}
	return final
}

// dispatchSet dispatches every key in set via dispatchOne in order,
// reporting the result of the last one dispatched.
func (e *Engine) dispatchSet(set *key.Sequence) mode.ProcessResult {
	var last mode.ProcessResult
	for _, kd := range set.Events {
		last = e.dispatchOne(kd)
	}
	return last
}

// dispatchOne implements §4.C3's dispatchOne(kd).
func (e *Engine) dispatchOne(kd key.Event) mode.ProcessResult {
	if e.hasDisableKey && kd.Equals(e.disableKey) && e.registry.Current().Kind() != mode.Disabled {
		e.switchModeLocked(mode.Disabled, nil)
		return mode.Handled(mode.SwitchMode(mode.Disabled))
	}
	if kd.Key == key.KeyNop {
		return mode.Handled(mode.NoSwitchDirective())
	}

	current := e.registry.Current()
	r := current.Process(kd)
	e.applyPostDispatch(current.Kind(), r)
	return r
}

// maybeLeaveOneCommand implements the one-time-command bracket closure: if
// a one-time command is pending, it switches back to the mode it was
// entered from and clears the pending flag.
func (e *Engine) maybeLeaveOneCommand() {
	if !e.inOneTimeCommand {
		return
	}
	source := e.oneTimeCommandSource
	e.inOneTimeCommand = false
	e.switchModeLocked(source, nil)
}

func (e *Engine) applyPostDispatch(fromKind mode.Kind, r mode.ProcessResult) {
	switch r.Kind {
	case mode.ResultHandled:
		switch r.Switch.Kind {
		case mode.NoSwitch:
			if !fromKind.IsVisual() {
				e.maybeLeaveOneCommand()
			}
		case mode.SwitchToMode, mode.SwitchToModeWithArgument:
			e.switchModeLocked(r.Switch.To, r.Switch.Arg)
		case mode.SwitchToPreviousMode:
			if e.inOneTimeCommand {
				source := e.oneTimeCommandSource
				e.inOneTimeCommand = false
				e.switchModeLocked(source, nil)
			} else {
				e.switchToPreviousLocked()
			}
		case mode.SwitchOneTimeCommand:
			e.inOneTimeCommand = true
			e.oneTimeCommandSource = fromKind
			e.switchModeLocked(mode.Normal, nil)
		}
	case mode.ResultHandledNeedMoreInput:
		// no one-time-command change
	case mode.ResultNotHandled, mode.ResultError:
		e.maybeLeaveOneCommand()
	}
}

func (e *Engine) switchModeLocked(kind mode.Kind, arg mode.Argument) {
	if err := e.registry.Switch(kind, arg); err != nil && e.OnErrorMessage != nil {
		e.OnErrorMessage(err.Error())
	}
}

func (e *Engine) switchToPreviousLocked() {
	if err := e.registry.SwitchToPrevious(); err != nil && e.OnWarningMessage != nil {
		e.OnWarningMessage(err.Error())
	}
}

// SwitchMode switches the current mode directly, bypassing remap
// resolution and dispatch. Hosts use this to drive the engine from an
// external mode-switch signal (e.g. a text buffer's own modeSwitched
// event) without it looping back through Process.
func (e *Engine) SwitchMode(kind mode.Kind, arg mode.Argument) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Switch(kind, arg)
}

// SwitchPreviousMode switches to the registry's previous mode, if any.
func (e *Engine) SwitchPreviousMode() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.SwitchToPrevious()
}

// SimulateProcessed declares externally that k was already handled: it
// clears any buffered (ambiguous-mapping) input and emits the same
// start/processed/end event triple Process emits, without performing remap
// resolution or mode dispatch. Per §4.C3's simulateProcessed(k).
func (e *Engine) SimulateProcessed(k key.Event, result mode.ProcessResult) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bufferedInput = nil
	e.emit(e.OnKeyInputStart, k)
	if e.OnKeyInputProcessed != nil {
		e.OnKeyInputProcessed(k, result)
	}
	e.emit(e.OnKeyInputEnd, k)
}

// Close leaves the current mode, closes every registered mode, and emits
// OnClosed. A second Close returns ErrAlreadyClosed.
func (e *Engine) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrAlreadyClosed
	}
	e.closed = true
	current := e.registry.Current()
	e.mu.Unlock()

	current.OnLeave()
	e.registry.Close()
	if e.OnClosed != nil {
		e.OnClosed()
	}
	return nil
}
