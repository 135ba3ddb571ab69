package plugin

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/vimcore/internal/key"
	"github.com/dshills/vimcore/internal/mode"
	plua "github.com/dshills/vimcore/internal/plugin/lua"
	"github.com/dshills/vimcore/internal/remap"
	"github.com/dshills/vimcore/internal/settings"
)

// API exposes vimcore's mode/remap/settings surface to a plugin's Lua
// state. Unlike the command/event/buffer surface the teacher's plugin
// doc described, this API runs strictly at configuration time: it is
// called while a host is setting up (from a script's top-level code or its
// activate function) and never during key processing, so it needs no
// synchronization with the engine's hot path beyond the locks the
// wrapped types already hold.
type API struct {
	Remap    *remap.Table
	Settings *settings.Table
	Modes    *mode.Registry
}

// Register installs the "vimcore" module into state, wiring its functions
// directly to the given remap table, settings table, and mode registry.
func (a *API) Register(state *plua.State) {
	state.RegisterModule("vimcore", map[string]lua.LGFunction{
		"map":       a.luaMap,
		"unmap":     a.luaUnmap,
		"clearmaps": a.luaClearMaps,
		"set":       a.luaSet,
		"get":       a.luaGet,
		"modes":     a.luaModes,
		"switch":    a.luaSwitch,
	})
}

func remapModeFromString(s string) (key.RemapMode, error) {
	switch s {
	case "normal":
		return key.RemapNormal, nil
	case "insert":
		return key.RemapInsert, nil
	case "visual":
		return key.RemapVisual, nil
	case "select":
		return key.RemapSelect, nil
	case "operator-pending":
		return key.RemapOperatorPending, nil
	case "command":
		return key.RemapCommand, nil
	case "language":
		return key.RemapLanguage, nil
	default:
		return 0, fmt.Errorf("vimcore: unknown remap mode %q", s)
	}
}

// luaMap implements vimcore.map(mode, lhs, rhs, noremap).
func (a *API) luaMap(L *lua.LState) int {
	rm, err := remapModeFromString(L.CheckString(1))
	if err != nil {
		L.RaiseError("%s", err)
		return 0
	}
	lhs, err := key.ParseSequence(L.CheckString(2))
	if err != nil {
		L.RaiseError("vimcore: invalid lhs: %s", err)
		return 0
	}
	rhs, err := key.ParseSequence(L.CheckString(3))
	if err != nil {
		L.RaiseError("vimcore: invalid rhs: %s", err)
		return 0
	}
	noremap := L.OptBool(4, false)
	a.Remap.Map(rm, lhs, rhs, noremap)
	return 0
}

// luaUnmap implements vimcore.unmap(mode, lhs).
func (a *API) luaUnmap(L *lua.LState) int {
	rm, err := remapModeFromString(L.CheckString(1))
	if err != nil {
		L.RaiseError("%s", err)
		return 0
	}
	lhs, err := key.ParseSequence(L.CheckString(2))
	if err != nil {
		L.RaiseError("vimcore: invalid lhs: %s", err)
		return 0
	}
	a.Remap.Unmap(rm, lhs)
	return 0
}

// luaClearMaps implements vimcore.clearmaps(mode).
func (a *API) luaClearMaps(L *lua.LState) int {
	rm, err := remapModeFromString(L.CheckString(1))
	if err != nil {
		L.RaiseError("%s", err)
		return 0
	}
	a.Remap.Clear(rm)
	return 0
}

// luaSet implements vimcore.set(name, value), matching a ":set name=value"
// option assignment.
func (a *API) luaSet(L *lua.LState) int {
	name := L.CheckString(1)
	value := L.CheckString(2)
	t, err := a.Settings.SetString(name, value)
	if err != nil {
		L.RaiseError("%s", err)
		return 0
	}
	*a.Settings = t
	return 0
}

// luaGet implements vimcore.get(name), returning the current value of a
// known setting (a boolean, or a string for disableCommand) or of an Extra
// entry (a string), and nil for an unset Extra name.
func (a *API) luaGet(L *lua.LState) int {
	name := L.CheckString(1)
	switch name {
	case "disableCommand":
		L.Push(lua.LString(a.Settings.DisableCommand.String()))
	case "magic":
		L.Push(lua.LBool(a.Settings.Magic))
	case "nomagic":
		L.Push(lua.LBool(a.Settings.Nomagic))
	case "hlsearch":
		L.Push(lua.LBool(a.Settings.HlSearch))
	case "ignorecase":
		L.Push(lua.LBool(a.Settings.IgnoreCase))
	case "smartcase":
		L.Push(lua.LBool(a.Settings.Smartcase))
	default:
		v, ok := a.Settings.Extra[name]
		if !ok {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(lua.LString(v))
	}
	return 1
}

// luaModes implements vimcore.modes(), returning the canonical names of
// every mode currently registered.
func (a *API) luaModes(L *lua.LState) int {
	all := a.Modes.All()
	names := L.NewTable()
	for i, m := range all {
		names.RawSetInt(i+1, lua.LString(m.Kind().String()))
	}
	L.Push(names)
	return 1
}

// luaSwitch implements vimcore.switch(name), used by a plugin that wants
// to start the host in a mode other than Normal.
func (a *API) luaSwitch(L *lua.LState) int {
	name := L.CheckString(1)
	for _, m := range a.Modes.All() {
		if m.Kind().String() == name {
			if err := a.Modes.Switch(m.Kind(), nil); err != nil {
				L.RaiseError("%s", err)
			}
			return 0
		}
	}
	L.RaiseError("vimcore: unknown mode %q", name)
	return 0
}
