// Package plugin runs the single D6 configuration script: a Lua file that
// configures the engine at startup by registering key remappings,
// adjusting settings, and choosing a starting mode. The script's Lua code
// runs only during this configuration window, never during key
// processing.
//
// # Quick Start
//
//	api := &plugin.API{Remap: remapTable, Settings: &settingsTable, Modes: modeRegistry}
//	script, err := plugin.Load("init.lua", api)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer script.Close()
//
// # The vimcore module
//
// A script configures the engine through the vimcore global table,
// injected before the script runs (no require() call is needed):
//
//	function activate()
//	    vimcore.map("normal", "j", "gj", true)
//	    vimcore.set("ignorecase", "true")
//	    vimcore.switch("insert")
//	end
//
// Available functions:
//   - vimcore.map(mode, lhs, rhs, noremap): install a key mapping
//   - vimcore.unmap(mode, lhs): remove a key mapping
//   - vimcore.clearmaps(mode): remove every mapping for a mode
//   - vimcore.set(name, value): assign a setting, as ":set name=value" would
//   - vimcore.get(name): read a setting's current value
//   - vimcore.modes(): list the names of every registered mode
//   - vimcore.switch(name): switch the engine's starting mode
//
// Load calls activate() automatically if the script defines it, once the
// file itself has finished running.
//
// # Security
//
// The script runs in a sandboxed Lua state (internal/plugin/lua) with
// dofile/loadfile/load/loadstring removed and require restricted to the
// builtin libraries the state already opened — there is no capability
// system to grant, since a configuration script has no legitimate use for
// the filesystem, network, or shell.
package plugin
