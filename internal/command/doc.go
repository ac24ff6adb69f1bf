// Package command routes named commands issued against a node of the UI tree to
// the handlers registered for that node's tag and the tags of its ancestors.
//
// # Bindings
//
// A binding ties a selector (a node tag such as "workspace" or "text-editor")
// and a command name (namespaced as "<namespace>:<event>") to a Handler:
//
//	reg := command.NewRegistry(command.DefaultConfig())
//	d := reg.Add("workspace", "files:close-all", command.Sync(func(n command.Node, args any) error {
//	    return n.(*Workspace).CloseAllFiles()
//	}))
//	defer d.Dispose()
//
// Every binding receives a number from a Sequence when it is added. Registries
// built without an explicit Sequence share the process-wide one, so bindings
// from different registries interleave in a single total order.
//
// # Dispatch
//
// HandleCommand walks from the target node up to the attached root, inclusive
// of both ends. At each level the bindings whose selector equals the node's tag
// are invoked most-recently-added first. All handlers along the path are
// invoked before anything is awaited; each returns a Promise and the caller
// joins them through the returned Aggregate:
//
//	reg.Attach(workspace)
//	agg := reg.HandleCommand(editor, "files:close-all", nil)
//	if agg == nil {
//	    // nothing matched
//	}
//	if err := agg.Wait(ctx); err != nil {
//	    // first handler failure
//	}
//
// A node without a parent that is not the root continues the walk at the root.
package command
