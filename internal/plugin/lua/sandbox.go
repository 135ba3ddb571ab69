package lua

import (
	lua "github.com/yuin/gopher-lua"
)

// Sandbox strips a Lua state down to what a configuration script needs:
// table/string/math/bit32/utf8 plus the "vimcore" module, and nothing that
// reaches the filesystem, network, or host process. There is no capability
// escalation path, since init scripts never run past configuration time and
// have no use for one.
type Sandbox struct {
	L *lua.LState
}

// NewSandbox creates a sandbox over the given Lua state.
func NewSandbox(L *lua.LState) *Sandbox {
	return &Sandbox{L: L}
}

// Install removes the globals that could be used to escape the sandbox and
// replaces require with one that only resolves the already-safe builtin
// libraries. The "vimcore" surface is injected as a global table, not a
// module, so a script never needs to require it.
func (s *Sandbox) Install() {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		s.L.SetGlobal(name, lua.LNil)
	}
	s.installSafeRequire()
}

func (s *Sandbox) installSafeRequire() {
	safeModules := map[string]bool{
		"string": true, "table": true, "math": true, "bit32": true, "utf8": true,
	}

	pkg := s.L.GetGlobal("package")
	if pkgTable, ok := pkg.(*lua.LTable); ok {
		s.L.SetField(pkgTable, "path", lua.LString(""))
		s.L.SetField(pkgTable, "cpath", lua.LString(""))
	}

	originalRequire := s.L.GetGlobal("require")
	s.L.SetGlobal("require", s.L.NewFunction(func(L *lua.LState) int {
		modName := L.CheckString(1)
		if !safeModules[modName] {
			L.RaiseError("module %q is not available to a configuration script", modName)
			return 0
		}
		L.Push(originalRequire)
		L.Push(lua.LString(modName))
		L.Call(1, 1)
		return 1
	}))
}
