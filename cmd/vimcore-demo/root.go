package main

import (
	"github.com/spf13/cobra"
)

// Version information, set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds every flag the demo command accepts.
type options struct {
	settingsPath string
	keymapPath   string
	historyPath  string
	initScript   string
	logLevel     string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "vimcore-demo",
		Short:   "A terminal demo of the vimcore editing engine",
		Long:    "vimcore-demo drives vimcore's modal input engine from a real terminal: it converts keystrokes to engine input, shows the active mode and a status line, and interprets a small subset of ex commands.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.settingsPath, "settings", "", "TOML settings file to load and watch for changes")
	cmd.Flags().StringVar(&opts.keymapPath, "keymap", "", "JSON file persisted key mappings are read from and saved to")
	cmd.Flags().StringVar(&opts.historyPath, "history", "", "SQLite database ex-command history is recorded to")
	cmd.Flags().StringVar(&opts.initScript, "init-script", "", "Lua init script to run before the demo starts")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	cmd.SetVersionTemplate("vimcore-demo {{.Version}}\ncommit: " + commit + "\nbuilt: " + date + "\n")

	return cmd
}
