package plugin

import (
	"fmt"

	plua "github.com/dshills/vimcore/internal/plugin/lua"
)

// Script is a loaded D6 configuration script: a single init.lua, run once
// before the engine starts, that called into the "vimcore" module to
// install remaps and settings. Its Lua state stays open until Close; the
// vimcore module offers no way to register callbacks, so nothing calls
// back into the state after Load returns.
type Script struct {
	state *plua.State
}

// Load creates a sandboxed Lua state, registers api's "vimcore" surface
// into it, and runs path. If the script defines a global activate
// function, Load calls it after the file finishes running — the one
// lifecycle hook D6 needs, narrowed from the teacher's full
// setup/activate/deactivate plugin lifecycle to the single step a
// configuration-time script has a use for.
func Load(path string, api *API) (*Script, error) {
	state, err := plua.NewState()
	if err != nil {
		return nil, err
	}

	api.Register(state)

	if err := state.DoFile(path); err != nil {
		state.Close()
		return nil, fmt.Errorf("plugin: load %s: %w", path, err)
	}
	if err := state.CallOptional("activate"); err != nil {
		state.Close()
		return nil, fmt.Errorf("plugin: activate %s: %w", path, err)
	}

	return &Script{state: state}, nil
}

// Close releases the script's Lua state.
func (s *Script) Close() error {
	return s.state.Close()
}
