package command

import (
	"sync"
	"sync/atomic"
)

// Handler runs a command against the node whose tag matched the binding's
// selector. args is the payload given to HandleCommand, passed through
// unchanged.
type Handler func(target Node, args any) Promise

// Binding is one registered (selector, command name, handler) triple.
type Binding struct {
	selector    string
	commandName string
	handler     Handler
	description string
	seq         uint64
}

// Selector returns the tag the binding applies to.
func (b *Binding) Selector() string { return b.selector }

// CommandName returns the command the binding answers.
func (b *Binding) CommandName() string { return b.commandName }

// Description returns the description given at registration, if any.
func (b *Binding) Description() string { return b.description }

// Sequence returns the number assigned to the binding when it was added.
func (b *Binding) Sequence() uint64 { return b.seq }

// BindingOption configures a binding at registration.
type BindingOption func(*Binding)

// WithDescription sets the human readable description reported by
// FindCommands. Without it the command name is humanized.
func WithDescription(desc string) BindingOption {
	return func(b *Binding) {
		b.description = desc
	}
}

// Disposable detaches one binding from its registry.
type Disposable struct {
	once     sync.Once
	dispose  func()
	disposed atomic.Bool
}

func newDisposable(fn func()) *Disposable {
	return &Disposable{dispose: fn}
}

// Dispose detaches the binding. Only the first call has an effect.
func (d *Disposable) Dispose() {
	d.once.Do(func() {
		d.dispose()
		d.disposed.Store(true)
	})
}

// Disposed reports whether Dispose has been called.
func (d *Disposable) Disposed() bool {
	return d.disposed.Load()
}
