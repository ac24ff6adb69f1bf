package watcher

import (
	"sync"
	"time"
)

// DefaultDelay is used when a Debouncer is created with a non-positive delay.
const DefaultDelay = 100 * time.Millisecond

// Debouncer wraps a Source and coalesces rapid events on the same path
// into one event carrying the union of their operations.
type Debouncer struct {
	inner Source
	delay time.Duration

	mu       sync.Mutex
	pending  map[string]*pendingEvent
	events   chan Event
	errors   chan error
	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

type pendingEvent struct {
	event Event
	timer *time.Timer
}

// NewDebouncer starts forwarding events from inner, each delayed until no
// further event for its path arrives within delay.
func NewDebouncer(inner Source, delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}

	d := &Debouncer{
		inner:   inner,
		delay:   delay,
		pending: make(map[string]*pendingEvent),
		events:  make(chan Event, defaultBufferSize),
		errors:  make(chan error, defaultBufferSize),
		closeCh: make(chan struct{}),
	}

	d.closedWg.Add(1)
	go d.processLoop()

	return d
}

// Events returns the debounced event channel.
func (d *Debouncer) Events() <-chan Event {
	return d.events
}

// Errors returns the error channel.
func (d *Debouncer) Errors() <-chan error {
	return d.errors
}

// Close drops pending events, closes both channels and closes the inner
// source.
func (d *Debouncer) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.closeCh)

	for path, p := range d.pending {
		p.timer.Stop()
		delete(d.pending, path)
	}
	d.mu.Unlock()

	d.closedWg.Wait()

	close(d.events)
	close(d.errors)

	return d.inner.Close()
}

// Flush fires every pending event immediately.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	paths := make([]string, 0, len(d.pending))
	for path, p := range d.pending {
		p.timer.Stop()
		paths = append(paths, path)
	}
	d.mu.Unlock()

	for _, path := range paths {
		d.fire(path)
	}
}

// Pending returns the number of events waiting for their delay to pass.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

func (d *Debouncer) processLoop() {
	defer d.closedWg.Done()

	events, errs := d.inner.Events(), d.inner.Errors()
	for {
		select {
		case <-d.closeCh:
			return

		case event, ok := <-events:
			if !ok {
				return
			}
			d.handleEvent(event)

		case err, ok := <-errs:
			if !ok {
				return
			}
			select {
			case d.errors <- err:
			case <-d.closeCh:
			default:
			}
		}
	}
}

func (d *Debouncer) handleEvent(event Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	if p, ok := d.pending[event.Path]; ok {
		p.event.Op |= event.Op
		p.event.Timestamp = event.Timestamp
		p.timer.Reset(d.delay)
		return
	}

	path := event.Path
	d.pending[path] = &pendingEvent{
		event: event,
		timer: time.AfterFunc(d.delay, func() { d.fire(path) }),
	}
}

func (d *Debouncer) fire(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.pending[path]
	if !ok || d.closed {
		return
	}
	delete(d.pending, path)

	// The send never blocks, so holding the lock keeps Close from closing
	// the channel underneath it.
	select {
	case d.events <- p.event:
	default:
		// Channel full, drop event
	}
}

var _ Source = (*Debouncer)(nil)
