package settings

import (
	"fmt"
	"strconv"

	"github.com/dshills/vimcore/internal/config/loader"
	"github.com/dshills/vimcore/internal/key"
)

// Table is the settings snapshot core packages read.
type Table struct {
	// DisableCommand is the key that switches the engine to Disabled mode
	// (§4.C3's "disable-command-key" check).
	DisableCommand key.Event

	Magic      bool
	Nomagic    bool
	HlSearch   bool
	IgnoreCase bool
	Smartcase  bool

	// Extra holds every other ":set"-able option by name, as its raw
	// string form; C7's generic set-item parser does not know the type of
	// an arbitrary option, so callers interpreting these parse on demand.
	Extra map[string]string
}

// Default returns the baseline table a host starts from before loading a
// file: Escape disables the engine, hlsearch and magic on, the rest off.
func Default() Table {
	return Table{
		DisableCommand: key.NewSpecialEvent(key.KeyEscape, key.ModNone),
		Magic:          true,
		HlSearch:       true,
		Extra:          map[string]string{},
	}
}

// knownKeys are the top-level TOML keys decoded into Table's typed fields
// rather than Extra.
var knownKeys = map[string]bool{
	"disableCommand": true,
	"magic":          true,
	"nomagic":        true,
	"hlsearch":       true,
	"ignorecase":     true,
	"smartcase":      true,
}

// Load reads a TOML settings file at path, returning Default() unchanged
// if the file does not exist.
func Load(path string) (Table, error) {
	raw, err := loader.NewTOMLLoader(path).Load()
	if err != nil {
		return Table{}, fmt.Errorf("settings: %w", err)
	}
	t := Default()
	if raw == nil {
		return t, nil
	}
	return decode(t, raw)
}

// SetString applies a single option by name, as a plugin's scripted
// configuration call would: known boolean keys parse "true"/"false",
// disableCommand parses Vim-style key notation via key.Parse, and
// anything else is recorded verbatim in Extra.
func (t Table) SetString(name, value string) (Table, error) {
	if name == "disableCommand" {
		ev, err := key.Parse(value)
		if err != nil {
			return Table{}, fmt.Errorf("settings: disableCommand: %w", err)
		}
		t.DisableCommand = ev
		return t, nil
	}
	if knownKeys[name] {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return Table{}, fmt.Errorf("settings: %s must be a boolean, got %q", name, value)
		}
		switch name {
		case "magic":
			t.Magic = b
		case "nomagic":
			t.Nomagic = b
		case "hlsearch":
			t.HlSearch = b
		case "ignorecase":
			t.IgnoreCase = b
		case "smartcase":
			t.Smartcase = b
		}
		return t, nil
	}
	extra := make(map[string]string, len(t.Extra)+1)
	for k, v := range t.Extra {
		extra[k] = v
	}
	extra[name] = value
	t.Extra = extra
	return t, nil
}

func decode(t Table, raw map[string]any) (Table, error) {
	if v, ok := raw["disableCommand"]; ok {
		s, ok := v.(string)
		if !ok {
			return Table{}, fmt.Errorf("settings: disableCommand must be a string, got %T", v)
		}
		ev, err := key.Parse(s)
		if err != nil {
			return Table{}, fmt.Errorf("settings: disableCommand: %w", err)
		}
		t.DisableCommand = ev
	}
	if v, ok := raw["magic"].(bool); ok {
		t.Magic = v
	}
	if v, ok := raw["nomagic"].(bool); ok {
		t.Nomagic = v
	}
	if v, ok := raw["hlsearch"].(bool); ok {
		t.HlSearch = v
	}
	if v, ok := raw["ignorecase"].(bool); ok {
		t.IgnoreCase = v
	}
	if v, ok := raw["smartcase"].(bool); ok {
		t.Smartcase = v
	}

	extra := make(map[string]string, len(raw))
	for k, v := range t.Extra {
		extra[k] = v
	}
	for k, v := range raw {
		if knownKeys[k] {
			continue
		}
		extra[k] = fmt.Sprint(v)
	}
	t.Extra = extra

	return t, nil
}
