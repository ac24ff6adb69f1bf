// Package lua runs Lua plugins that contribute commands and menu items.
//
// A plugin script runs in a sandboxed State: only the base, table, string
// and math libraries are opened, and the functions that load code from
// disk or strings are removed. Host installs a global stormcmd table:
//
//	local dispose = stormcmd.add_command("text-editor", "core:upcase", function(node, args)
//	    if node.tag ~= "text-editor" then error("unexpected target") end
//	end, "Upcase the selection")
//
//	stormcmd.add_menu({
//	    { label = "Edit", submenu = { { label = "Upcase", command = "core:upcase" } } },
//	}, 100)
//
// Handlers receive the dispatch target as a table {tag = ..., parent = ...}
// and the dispatch arguments converted to Lua values. Raising an error
// rejects that handler's promise. Closing the Host disposes every binding
// and menu contribution its plugins made.
//
// gopher-lua states are not goroutine-safe. State serializes every call
// with a mutex, so handlers from one Host never run concurrently.
package lua
