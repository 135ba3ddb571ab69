// Package modekit provides the reference mode implementations the core
// ships as D1: Normal, Insert, Replace, the three Visual kinds,
// OperatorPending, Command, SubstituteConfirm, Disabled, and ExternalEdit.
// Each satisfies internal/mode.Mode; none of them touch a text buffer
// directly — a completed command is handed to a caller-supplied
// Dispatcher, leaving buffer and cursor semantics to the host application
// that wires these modes into an internal/mode.Registry and
// internal/engine.Engine.
package modekit
