package lua

import lua "github.com/yuin/gopher-lua"

// removedGlobals can load or run code outside the plugin file, or reach
// into other function environments.
var removedGlobals = []string{
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"require",
	"module",
	"getfenv",
	"setfenv",
	"collectgarbage",
}

// openSafeLibraries opens only the libraries a plugin needs to build
// tables and strings. io, os, debug and package stay closed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

func installSandbox(L *lua.LState) {
	for _, name := range removedGlobals {
		L.SetGlobal(name, lua.LNil)
	}
}
