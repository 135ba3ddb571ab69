// Package register wires a system clipboard into the vim package's
// RegisterStore, so the "+ and "* registers documented by
// vim.GetRegisterType read and write the real OS clipboard instead of an
// in-process stand-in.
package register
