package command

import "reflect"

// Node is a tagged element of the UI tree.
//
// Implementations must be comparable; pointer types are the norm. Parent
// returns nil for a node that has no parent.
type Node interface {
	Tag() string
	Parent() Node
}

// ParentOf returns n's parent, treating a typed nil pointer as no parent.
func ParentOf(n Node) Node {
	p := n.Parent()
	if isNil(p) {
		return nil
	}
	return p
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// ascend calls visit for target and each ancestor up to and including root.
// A node with no parent that is not root is followed by root. A node reached a
// second time is treated the same way, so cyclic parent chains terminate.
func ascend(target, root Node, visit func(Node)) {
	seen := make(map[Node]struct{})
	current := target
	for current != nil {
		seen[current] = struct{}{}
		visit(current)
		if current == root {
			return
		}

		next := ParentOf(current)
		if next == nil {
			next = root
		} else if _, ok := seen[next]; ok {
			next = root
		}
		current = next
	}
}
