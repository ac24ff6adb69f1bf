// Package widget provides a minimal tagged element tree that commands can be
// dispatched against.
package widget

import (
	"slices"
	"sync"

	"github.com/dshills/stormcmd/internal/command"
)

// Common element tags.
const (
	TagWorkspace  = "workspace"
	TagPane       = "pane"
	TagTextEditor = "text-editor"
)

// Element is a node of the widget tree.
type Element struct {
	mu       sync.RWMutex
	tag      string
	parent   *Element
	children []*Element
	state    map[string]any
}

// NewElement creates a detached element.
func NewElement(tag string) *Element {
	return &Element{tag: tag, state: make(map[string]any)}
}

// Tag implements command.Node.
func (e *Element) Tag() string {
	return e.tag
}

// Parent implements command.Node. It returns nil for a detached element.
func (e *Element) Parent() command.Node {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// Add appends child and sets its parent. Adding a child twice is ignored.
func (e *Element) Add(child *Element) {
	e.mu.Lock()
	if slices.Contains(e.children, child) {
		e.mu.Unlock()
		return
	}
	e.children = append(e.children, child)
	e.mu.Unlock()

	child.mu.Lock()
	child.parent = e
	child.mu.Unlock()
}

// Remove detaches child. Removing an element that is not a child is ignored.
func (e *Element) Remove(child *Element) {
	e.mu.Lock()
	i := slices.Index(e.children, child)
	if i < 0 {
		e.mu.Unlock()
		return
	}
	e.children = slices.Delete(e.children, i, i+1)
	e.mu.Unlock()

	child.mu.Lock()
	if child.parent == e {
		child.parent = nil
	}
	child.mu.Unlock()
}

// Children returns a copy of the element's children.
func (e *Element) Children() []*Element {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.children)
}

// Find returns the first element tagged tag in depth-first order, starting
// with e itself.
func (e *Element) Find(tag string) *Element {
	if e.tag == tag {
		return e
	}
	for _, c := range e.Children() {
		if found := c.Find(tag); found != nil {
			return found
		}
	}
	return nil
}

// Set stores a value in the element's state.
func (e *Element) Set(key string, value any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state[key] = value
}

// Get returns a value from the element's state.
func (e *Element) Get(key string) (any, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.state[key]
	return v, ok
}

// Chain builds a root-to-leaf chain of elements from tags and returns the
// root and the leaf. It returns nils when tags is empty.
func Chain(tags ...string) (root, leaf *Element) {
	for _, tag := range tags {
		e := NewElement(tag)
		if root == nil {
			root = e
		} else {
			leaf.Add(e)
		}
		leaf = e
	}
	return root, leaf
}
