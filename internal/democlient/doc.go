// Package democlient is a terminal front-end for the core engine: it owns a
// concrete mode set (internal/modekit), a register store, a settings table,
// and a persisted key-remap table, converts real keyboard events from a
// tcell screen into key.Event, and renders the current mode name and a
// status line with lipgloss-styled tcell cells.
//
// It also carries a minimal interpreter for the subset of ex commands
// (:set, :map/:unmap/:mapclear and their mode-prefixed variants, :q/:qa)
// needed to make the demo interactive, reached only through CommandMode's
// "excmd.execute" dispatch — this interpreter is not part of the engine and
// does not claim to implement the full ex command language.
//
// Settings-file watching runs on the settings watcher's own goroutine; it
// publishes each reloaded table back onto the Client's main loop over a
// channel rather than mutating engine state from another goroutine, so the
// engine's single-threaded Process contract is never violated. Key-map and
// history writes run synchronously on the main loop, from the interpreter.
package democlient
