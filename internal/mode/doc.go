// Package mode defines the mode-dispatch data model and the registry that
// tracks the current and previous installed mode.
//
// The package is built around the Mode interface, which every concrete
// mode (normal, insert, visual, command, operator-pending, ...) satisfies.
// Registry coordinates transitions between registered modes:
//
//   - Add installs a mode under its own Kind.
//   - Switch(kind, arg) leaves the current mode, enters the target, and
//     updates Previous per the skip-consecutive-visual rule.
//   - SwitchToPrevious returns to whatever mode was active before the
//     current one.
//   - OnChange subscribes to every committed switch.
//
// A mode never touches a text buffer directly. It resolves a completed
// editing command (an operator+motion, literal text, an ex command line,
// ...) and hands it to a caller-supplied dispatcher; see the modekit
// package for the reference mode set that does this.
package mode
