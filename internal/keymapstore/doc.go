// Package keymapstore is the D4 on-disk persistence for user-issued
// ":map"/":noremap"/":unmap"/":mapclear" edits, so they survive a restart
// instead of living only in C1's in-memory remap table.
//
// Unlike a typical JSON-backed store, reads and writes target a single
// JSON path within the document (github.com/tidwall/gjson and
// github.com/tidwall/sjson) rather than decoding the whole document into a
// Go value, mutating it, and re-encoding it. A malformed or unexpectedly
// shaped entry for one mapping elsewhere in the file therefore never
// blocks loading or editing another.
package keymapstore
