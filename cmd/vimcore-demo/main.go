// Command vimcore-demo is a minimal terminal front-end for vimcore's core
// engine: a tcell screen, a status line, and just enough of an ex-command
// interpreter to exercise :set and the :map family interactively.
package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
