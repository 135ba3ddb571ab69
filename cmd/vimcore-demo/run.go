package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/vimcore/internal/app"
	"github.com/dshills/vimcore/internal/democlient"
	"github.com/dshills/vimcore/internal/plugin"
)

func runDemo(cmd *cobra.Command, opts *options) error {
	logger := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(opts.logLevel),
		Output: logFile(),
		Prefix: "vimcore-demo",
	})
	app.SetLogger(logger)

	client, err := democlient.New(democlient.Config{
		SettingsPath: opts.settingsPath,
		KeymapPath:   opts.keymapPath,
		HistoryPath:  opts.historyPath,
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("vimcore-demo: %w", err)
	}
	defer client.Close()

	if opts.initScript != "" {
		script, err := loadInitScript(client, opts.initScript)
		if err != nil {
			return fmt.Errorf("vimcore-demo: %w", err)
		}
		defer script.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		cancel()
	}()

	return client.Run(ctx)
}

// logFile returns a per-run log file under the user's cache directory, so
// stderr stays free for the terminal the demo is drawing to.
func logFile() *os.File {
	dir, err := os.UserCacheDir()
	if err != nil {
		return os.Stderr
	}
	path := dir + "/vimcore-demo.log"
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return os.Stderr
	}
	return f
}

// loadInitScript runs the configuration script at path against client's
// mode registry, remap table, and settings, then applies whatever the
// script changed on those settings back onto client.
func loadInitScript(client *democlient.Client, path string) (*plugin.Script, error) {
	settings := client.Settings()
	api := &plugin.API{
		Remap:    client.RemapTable(),
		Settings: &settings,
		Modes:    client.Registry(),
	}

	script, err := plugin.Load(path, api)
	if err != nil {
		return nil, err
	}

	client.ApplySettings(settings)
	return script, nil
}
