package democlient

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/dshills/vimcore/internal/app"
	"github.com/dshills/vimcore/internal/engine"
	"github.com/dshills/vimcore/internal/history"
	"github.com/dshills/vimcore/internal/key"
	"github.com/dshills/vimcore/internal/keymapstore"
	"github.com/dshills/vimcore/internal/mode"
	"github.com/dshills/vimcore/internal/modekit"
	"github.com/dshills/vimcore/internal/register"
	"github.com/dshills/vimcore/internal/remap"
	"github.com/dshills/vimcore/internal/settings"
	"github.com/dshills/vimcore/internal/vim"
)

// Config configures a Client. Every path is optional; an empty path keeps
// the corresponding store in memory for the life of the process rather than
// persisting it.
type Config struct {
	// SettingsPath is a TOML file watched for changes while the client runs.
	// Empty means vimcore starts from settings.Default() with no file.
	SettingsPath string
	// KeymapPath is the JSON document key mappings are persisted to. Empty
	// means mappings made with :map live only for this process.
	KeymapPath string
	// HistoryPath is the SQLite database ex-command history is recorded
	// to. Empty means an in-memory history that does not survive restart.
	HistoryPath string
	// Logger receives engine and client diagnostics. Defaults to
	// app.GetLogger().
	Logger *app.Logger
	// Screen overrides the tcell screen the client drives. Tests supply a
	// tcell.NewSimulationScreen here; a real Run omits it and gets a real
	// terminal screen from tcell.NewScreen.
	Screen tcell.Screen
}

// Client is a terminal front-end for the engine: it owns a mode registry,
// a remap table, a settings table, a register store, and the persistence
// stores backing key mappings and ex-command history, and drives all of
// them from real keyboard events.
type Client struct {
	logger *app.Logger
	screen tcell.Screen

	registry  *mode.Registry
	table     *remap.Table
	settings  settings.Table
	watcher   *settings.Watcher
	registers *vim.RegisterStore
	keymaps   *keymapstore.Store
	history   *history.Store
	engine    *engine.Engine

	settingsCh chan settings.Table

	pendingID uuid.UUID

	statusMsg  string
	statusLong string
	quit       bool
}

// New constructs a Client from cfg. The returned Client owns cfg.Screen (or
// a freshly created tcell screen) and every store it opened; callers must
// call Close.
func New(cfg Config) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = app.GetLogger()
	}

	c := &Client{
		logger:     logger,
		registers:  vim.NewRegisterStore(),
		table:      remap.NewTable(),
		settingsCh: make(chan settings.Table, 1),
	}
	c.registers.SetClipboard(register.SystemClipboard{})

	c.registry = mode.NewRegistry()
	c.registry.Add(modekit.NewNormalMode(c))
	c.registry.Add(modekit.NewInsertMode(c))
	c.registry.Add(modekit.NewReplaceMode(c))
	c.registry.Add(modekit.NewVisualMode(c, mode.VisualCharacter))
	c.registry.Add(modekit.NewVisualMode(c, mode.VisualLine))
	c.registry.Add(modekit.NewVisualMode(c, mode.VisualBlock))
	c.registry.Add(modekit.NewOperatorPendingMode(c))
	c.registry.Add(modekit.NewCommandMode(c))
	c.registry.Add(modekit.NewSubstituteConfirmMode(c))
	c.registry.Add(modekit.NewDisabledMode())
	c.registry.Add(modekit.NewExternalEditMode())
	if err := c.registry.Switch(mode.Normal, nil); err != nil {
		return nil, fmt.Errorf("democlient: %w", err)
	}

	if cfg.KeymapPath != "" {
		c.keymaps = keymapstore.NewStore(cfg.KeymapPath)
		if err := loadPersistedKeymaps(c.table, c.keymaps); err != nil {
			return nil, fmt.Errorf("democlient: loading persisted keymaps: %w", err)
		}
	}

	if cfg.SettingsPath != "" {
		w, err := settings.NewWatcher(cfg.SettingsPath)
		if err != nil {
			return nil, fmt.Errorf("democlient: %w", err)
		}
		w.OnChange = func(t settings.Table) {
			select {
			case c.settingsCh <- t:
			default:
			}
		}
		c.watcher = w
		c.settings = w.Current()
	} else {
		c.settings = settings.Default()
	}

	hist, err := openHistory(cfg.HistoryPath)
	if err != nil {
		return nil, fmt.Errorf("democlient: %w", err)
	}
	c.history = hist

	screen := cfg.Screen
	if screen == nil {
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("democlient: %w", err)
		}
	}
	c.screen = screen

	c.engine = engine.New(c.registry, c.table)
	c.engine.SetDisableCommandKey(c.settings.DisableCommand, true)
	c.wireEngineHooks()

	return c, nil
}

func openHistory(path string) (*history.Store, error) {
	if path == "" {
		return history.OpenInMemory()
	}
	return history.Open(path)
}

func loadPersistedKeymaps(table *remap.Table, store *keymapstore.Store) error {
	for _, m := range allRemapModes {
		entries, err := store.All(m)
		if err != nil {
			return err
		}
		for lhs, entry := range entries {
			lhsSeq, err := key.ParseSequence(lhs)
			if err != nil {
				continue
			}
			rhsSeq, err := key.ParseSequence(entry.Rhs)
			if err != nil {
				continue
			}
			table.Map(m, lhsSeq, rhsSeq, entry.NoRemap)
		}
	}
	return nil
}

var allRemapModes = []key.RemapMode{
	key.RemapInsert,
	key.RemapCommand,
	key.RemapNormal,
	key.RemapVisual,
	key.RemapSelect,
	key.RemapOperatorPending,
	key.RemapLanguage,
}

// wireEngineHooks attaches UUID-correlated logging to every engine
// callback and routes user-facing messages to the status line. Because
// Process runs to completion on the same goroutine that called it,
// pendingID set in OnKeyInputStart is still valid when OnKeyInputProcessed
// fires for the same keystroke.
func (c *Client) wireEngineHooks() {
	log := c.logger.WithComponent("engine")

	c.engine.OnKeyInputStart = func(k key.Event) {
		c.pendingID = uuid.New()
		log.Debug("keyInputStart id=%s key=%s", c.pendingID, k.String())
	}
	c.engine.OnKeyInputBuffered = func(k key.Event) {
		log.Debug("keyInputBuffered id=%s key=%s", c.pendingID, k.String())
	}
	c.engine.OnKeyInputProcessed = func(k key.Event, result mode.ProcessResult) {
		log.Debug("keyInputProcessed id=%s key=%s result=%d", c.pendingID, k.String(), result.Kind)
	}
	c.engine.OnModeSwitched = func(from, to mode.Kind) {
		log.Debug("modeSwitched from=%s to=%s", from.String(), to.String())
	}
	c.engine.OnErrorMessage = func(msg string) {
		c.statusMsg = msg
		log.Warn("%s", msg)
	}
	c.engine.OnWarningMessage = func(msg string) {
		c.statusMsg = msg
		log.Warn("%s", msg)
	}
	c.engine.OnStatusMessage = func(msg string) {
		c.statusMsg = msg
	}
	c.engine.OnStatusMessageLong = func(msg string) {
		c.statusLong = msg
	}
	c.engine.OnClosed = func() {
		log.Info("engine closed")
	}
}

// Registry returns the mode registry driving this Client, for callers that
// wire plugin-contributed modes or commands in before Run starts.
func (c *Client) Registry() *mode.Registry { return c.registry }

// RemapTable returns the key-remap table backing :map, for callers that
// load plugin-contributed mappings before Run starts.
func (c *Client) RemapTable() *remap.Table { return c.table }

// Registers returns the client's register store, for callers that need to
// read yanked or deleted text (or, like executeLine, populate the
// host-owned read-only special registers).
func (c *Client) Registers() *vim.RegisterStore { return c.registers }

// Settings returns the client's current settings table.
func (c *Client) Settings() settings.Table { return c.settings }

// ApplySettings replaces the client's settings table and re-applies
// anything derived from it (currently, the disable-command key), for
// callers that mutate a settings.Table outside the client -- a plugin's
// configuration pass, for example -- and need the engine to pick up the
// result.
func (c *Client) ApplySettings(t settings.Table) {
	c.settings = t
	c.engine.SetDisableCommandKey(c.settings.DisableCommand, true)
}

// Dispatch implements modekit.Dispatcher. CommandMode is the only mode that
// currently reports a Command; every other mode's grammar resolves
// entirely within Process.
func (c *Client) Dispatch(cmd modekit.Command) {
	if cmd.Action != "excmd.execute" {
		return
	}
	line, _ := cmd.Args["line"].(string)
	c.executeLine(context.Background(), line)
}

// Close shuts down every store and the screen the Client owns.
func (c *Client) Close() error {
	if c.watcher != nil {
		_ = c.watcher.Close()
	}
	if c.history != nil {
		_ = c.history.Close()
	}
	if c.screen != nil {
		c.screen.Fini()
	}
	return c.engine.Close()
}
