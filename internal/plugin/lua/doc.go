// Package lua provides the sandboxed Lua runtime vimcore's configuration
// script (D6) runs in.
//
// This package wraps gopher-lua to provide:
//   - A sandboxed Lua state with only the base/table/string/math libraries opened
//   - A Go-Lua type conversion bridge
//   - Serialized access to a single LState from multiple goroutines
//
// # State
//
// The State type manages one sandboxed Lua runtime:
//
//	state, err := lua.NewState()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer state.Close()
//
//	if err := state.DoFile("init.lua"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Sandbox
//
// The Sandbox removes dofile/loadfile/load/loadstring and replaces require
// with a version that only resolves the builtin libraries State already
// opened. There is no capability-grant mechanism: a configuration script
// only ever needs the "vimcore" module, which is injected as a plain
// global table, and has no legitimate use for the filesystem, network, or
// shell.
//
// # Bridge
//
// The Bridge provides bidirectional type conversion:
//
//	bridge := lua.NewBridge(state.LuaState())
//
//	// Go to Lua
//	luaVal := bridge.ToLuaValue(map[string]interface{}{
//	    "name": "test",
//	    "count": 42,
//	})
//
//	// Lua to Go
//	goVal := bridge.ToGoValue(luaVal)
//
// # Executor
//
// Executor serializes calls into an LState from multiple goroutines. A
// configuration script itself runs once, synchronously, before the engine
// starts, through State rather than Executor; no other vimcore package
// uses Executor.
package lua
