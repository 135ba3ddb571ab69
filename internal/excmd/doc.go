// Package excmd parses Vim-style ex command lines: a lexical cursor over
// the raw line, a line-range grammar (., $, 'a, /pat/, +N, ...), a
// command-name resolver that expands abbreviations against a canonical
// table, and a line-command parser that turns a range plus a command name
// and its trailing arguments into a typed Command value.
//
// Nothing in this package touches a text buffer or a mode; it only
// recognizes syntax. A host resolves the produced Command against its own
// buffer and cursor state.
package excmd
