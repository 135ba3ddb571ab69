package register

import "github.com/atotto/clipboard"

// SystemClipboard implements vim.ClipboardProvider against the OS clipboard
// via github.com/atotto/clipboard. A zero value is ready to use.
type SystemClipboard struct{}

// Get returns the current clipboard content.
func (SystemClipboard) Get() (string, error) {
	return clipboard.ReadAll()
}

// Set replaces the clipboard content.
func (SystemClipboard) Set(content string) error {
	return clipboard.WriteAll(content)
}
