package register

import "testing"

// TestSystemClipboardImplementsProvider is a compile-time check, not a
// runtime one: most CI sandboxes have no clipboard utility installed, so
// round-tripping through the real OS clipboard here would be flaky rather
// than informative.
func TestSystemClipboardImplementsProvider(t *testing.T) {
	var _ interface {
		Get() (string, error)
		Set(content string) error
	} = SystemClipboard{}
}
