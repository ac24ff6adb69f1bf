package command

// Promise is the eventual outcome of one handler invocation.
//
// Done is closed once the outcome is known; Err then reports the failure, or
// nil on success.
type Promise interface {
	Done() <-chan struct{}
	Err() error
}

type promise struct {
	done chan struct{}
	err  error
}

func (p *promise) Done() <-chan struct{} { return p.done }

// Err returns nil until Done is closed.
func (p *promise) Err() error {
	select {
	case <-p.done:
		return p.err
	default:
		return nil
	}
}

func settled(err error) *promise {
	p := &promise{done: make(chan struct{}), err: err}
	close(p.done)
	return p
}

// Resolve returns a promise that has already succeeded.
func Resolve() Promise {
	return settled(nil)
}

// Reject returns a promise that has already failed with err.
func Reject(err error) Promise {
	return settled(err)
}

// Go runs fn on a new goroutine and returns a promise for its result.
func Go(fn func() error) Promise {
	p := &promise{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.err = fn()
	}()
	return p
}

// Sync adapts a synchronous function to a Handler. The returned promise is
// already settled with fn's error.
func Sync(fn func(target Node, args any) error) Handler {
	return func(target Node, args any) Promise {
		return settled(fn(target, args))
	}
}

// Async adapts fn to a Handler that runs fn on its own goroutine.
func Async(fn func(target Node, args any) error) Handler {
	return func(target Node, args any) Promise {
		return Go(func() error { return fn(target, args) })
	}
}
