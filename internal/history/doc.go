// Package history is the D5 durable store of executed ex-command lines,
// queryable by prefix for command-line history navigation. Unlike the
// teacher's in-memory command history, entries survive a process
// restart: they are written to a SQLite database via
// modernc.org/sqlite.
package history
