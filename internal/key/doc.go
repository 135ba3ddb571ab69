// Package key provides the keyboard input vocabulary the engine and its
// remap table share: the Event the host hands the engine per keystroke,
// and the Sequence multi-key mappings are matched against.
//
//   - Key: identifies a keyboard key (special keys, function keys, runes,
//     and KeyNop for a sequence deliberately mapped to do nothing).
//   - Modifier: Ctrl, Alt, Shift, Meta, composable with With/Has.
//   - Event: one key press, with its modifiers.
//   - Sequence: an ordered run of Events, the unit :map and the remap
//     resolver work in.
//
// # Key Specifications
//
// Parse and ParseSequence accept the same notations a Vim user already
// knows, so remap right-hand sides and left-hand sides can be written
// identically to a .vimrc:
//
//   - Simple keys: "a", "A", "1", "Enter", "Escape"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Vim-style: "<C-s>", "<A-f>", "<C-S-p>", "<CR>", "<Esc>", "<Nop>"
//
// # Key Sequences
//
// Multi-key sequences like "gg" or "diw" are Sequence values built from
// consecutive Events. The remap resolver matches sequences by longest
// prefix, so partial sequences report NeedMoreInput rather than failing
// outright.
package key
