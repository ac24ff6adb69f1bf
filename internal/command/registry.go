package command

import (
	"slices"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/dshills/stormcmd/internal/command/humanize"
)

// Registry stores bindings by command name and dispatches commands along the
// ancestry of a target node.
type Registry struct {
	mu       sync.RWMutex
	bindings map[string][]*Binding // command name -> live bindings, never empty
	root     Node

	seq    *Sequence
	logger *log.Logger
}

// CommandInfo describes a command reachable from a node.
type CommandInfo struct {
	Name        string
	Description string
}

// NewRegistry creates an empty registry.
func NewRegistry(config Config) *Registry {
	config = config.normalized()
	return &Registry{
		bindings: make(map[string][]*Binding),
		seq:      config.Sequence,
		logger:   config.Logger,
	}
}

// Add registers h for commandName on nodes tagged selector. The binding is
// visible to dispatch as soon as Add returns and until the returned
// Disposable is disposed.
func (r *Registry) Add(selector, commandName string, h Handler, opts ...BindingOption) *Disposable {
	if h == nil {
		panic(ErrNilHandler)
	}

	b := &Binding{
		selector:    selector,
		commandName: commandName,
		handler:     h,
	}
	for _, opt := range opts {
		opt(b)
	}

	r.mu.Lock()
	b.seq = r.seq.Next()
	r.bindings[commandName] = append(r.bindings[commandName], b)
	r.mu.Unlock()

	r.logger.Debug("command added", "selector", selector, "command", commandName, "seq", b.seq)

	return newDisposable(func() { r.remove(b) })
}

// remove deletes b by identity and drops the command entry once it is empty.
func (r *Registry) remove(b *Binding) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.bindings[b.commandName]
	i := slices.Index(list, b)
	if i < 0 {
		return
	}
	list = slices.Delete(list, i, i+1)
	if len(list) == 0 {
		delete(r.bindings, b.commandName)
	} else {
		r.bindings[b.commandName] = list
	}

	r.logger.Debug("command disposed", "selector", b.selector, "command", b.commandName, "seq", b.seq)
}

// Attach sets the node at which ascent stops. Existing bindings are kept.
func (r *Registry) Attach(root Node) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.root = root
}

// Root returns the attached root, or nil.
func (r *Registry) Root() Node {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.root
}

// HandleCommand invokes every binding for commandName found on target and its
// ancestors up to the root. Within one node, later bindings run first.
//
// All handlers are invoked before HandleCommand returns; their promises are
// joined by the returned Aggregate. HandleCommand returns nil when no binding
// matched.
func (r *Registry) HandleCommand(target Node, commandName string, args any) *Aggregate {
	if isNil(target) {
		r.logger.Debug("command not handled", "command", commandName)
		return nil
	}

	var promises []Promise

	ascend(target, r.Root(), func(n Node) {
		for _, b := range r.matching(commandName, n.Tag()) {
			p := b.handler(n, args)
			if p == nil {
				p = Resolve()
			}
			promises = append(promises, p)
		}
	})

	if len(promises) == 0 {
		r.logger.Debug("command not handled", "command", commandName, "target", target.Tag())
		return nil
	}

	r.logger.Debug("command dispatched", "command", commandName, "target", target.Tag(), "handlers", len(promises))
	return newAggregate(promises)
}

// matching returns the bindings for commandName whose selector is tag, in
// invocation order (highest sequence first).
func (r *Registry) matching(commandName, tag string) []*Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*Binding
	for _, b := range r.bindings[commandName] {
		if b.selector == tag {
			matched = append(matched, b)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].seq > matched[j].seq
	})
	return matched
}

// FindCommands lists the commands that HandleCommand would find from target,
// each name once, nearest node first. No handler is invoked.
func (r *Registry) FindCommands(target Node) []CommandInfo {
	var infos []CommandInfo
	seen := make(map[string]bool)

	ascend(target, r.Root(), func(n Node) {
		for _, b := range r.forTag(n.Tag()) {
			if seen[b.commandName] {
				continue
			}
			seen[b.commandName] = true

			desc := b.description
			if desc == "" {
				desc = humanize.EventName(b.commandName, "")
			}
			infos = append(infos, CommandInfo{Name: b.commandName, Description: desc})
		}
	})

	return infos
}

// forTag returns the bindings with selector tag ordered by command name, then
// by invocation order.
func (r *Registry) forTag(tag string) []*Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*Binding
	for _, list := range r.bindings {
		for _, b := range list {
			if b.selector == tag {
				matched = append(matched, b)
			}
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].commandName != matched[j].commandName {
			return matched[i].commandName < matched[j].commandName
		}
		return matched[i].seq > matched[j].seq
	})
	return matched
}

// Has returns true if at least one binding exists for commandName.
func (r *Registry) Has(commandName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.bindings[commandName]
	return ok
}

// CommandNames returns the names with at least one live binding, sorted.
func (r *Registry) CommandNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.bindings))
	for name := range r.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of live bindings.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, list := range r.bindings {
		n += len(list)
	}
	return n
}
