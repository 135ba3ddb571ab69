// Package settings is the D3 typed settings table: a handful of core
// fields core packages read directly (DisableCommand, Magic/Nomagic,
// HlSearch, IgnoreCase, Smartcase), plus an open string-keyed Extra map
// for the rest of the options C7's ":set" parser accepts generically.
//
// Settings load from a TOML file via internal/config/loader and can be
// hot-reloaded: Watch starts an fsnotify watch on the settings file and
// atomically swaps the table on each write, invoking OnChange with the new
// table so a host's status line (or anything else) can react.
package settings
