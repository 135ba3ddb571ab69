// Package vim provides the lookup tables and accumulator types that back
// Vim-style normal-mode command grammar:
//   - Count prefixes: Numbers like "5" in "5j" (move down 5 lines)
//   - Registers: Register selection like `"a` in `"ayw` (yank to register a)
//   - Operators: Commands like d, c, y that require a motion or text object
//   - Motions: Cursor movements like w, e, b, j, k
//   - Text objects: Object selections like iw (inner word), a" (around quotes)
//
// # Vim Grammar
//
// The grammar for Vim normal mode commands is:
//
//	[count][register][operator][count][motion|text-object]
//	[count][register][operator][operator]  (line-wise: dd, yy, cc)
//	[count][motion]
//	[count][register][simple-command]
//
// Examples:
//   - "5j": count=5, motion=j (move down 5 lines)
//   - "d3w": operator=d, count=3, motion=w (delete 3 words)
//   - "diw": operator=d, text-object=iw (delete inner word)
//   - `"ayw`: register=a, operator=y, motion=w (yank word to register a)
//   - "dd": operator=d, line-wise (delete line)
//   - "5dd": count=5, operator=d, line-wise (delete 5 lines)
//
// This package supplies the tables (GetOperator, GetMotion, GetTextObject),
// the count accumulator (CountState), and the register store
// (RegisterStore). Sequencing those into a single keystroke grammar is the
// job of the concrete normal mode built on top of it.
package vim
