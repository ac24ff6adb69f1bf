package watcher_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/stormcmd/internal/watcher"
)

type fakeSource struct {
	events chan watcher.Event
	errors chan error
	closed bool
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		events: make(chan watcher.Event, 16),
		errors: make(chan error, 16),
	}
}

func (f *fakeSource) Events() <-chan watcher.Event { return f.events }
func (f *fakeSource) Errors() <-chan error         { return f.errors }
func (f *fakeSource) Close() error {
	f.closed = true
	return nil
}

func receive(t *testing.T, ch <-chan watcher.Event) watcher.Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return watcher.Event{}
	}
}

func TestDebouncerCoalesces(t *testing.T) {
	src := newFakeSource()
	d := watcher.NewDebouncer(src, 50*time.Millisecond)
	defer d.Close()

	src.events <- watcher.Event{Path: "/m/core.toml", Op: watcher.OpCreate}
	src.events <- watcher.Event{Path: "/m/core.toml", Op: watcher.OpWrite}
	src.events <- watcher.Event{Path: "/m/core.toml", Op: watcher.OpWrite}

	ev := receive(t, d.Events())
	assert.Equal(t, "/m/core.toml", ev.Path)
	assert.True(t, ev.Op.Has(watcher.OpCreate))
	assert.True(t, ev.Op.Has(watcher.OpWrite))

	select {
	case extra := <-d.Events():
		t.Fatalf("unexpected second event %+v", extra)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestDebouncerSeparatePaths(t *testing.T) {
	src := newFakeSource()
	d := watcher.NewDebouncer(src, 20*time.Millisecond)
	defer d.Close()

	src.events <- watcher.Event{Path: "/a", Op: watcher.OpWrite}
	src.events <- watcher.Event{Path: "/b", Op: watcher.OpWrite}

	got := map[string]bool{}
	got[receive(t, d.Events()).Path] = true
	got[receive(t, d.Events()).Path] = true
	assert.Equal(t, map[string]bool{"/a": true, "/b": true}, got)
}

func TestDebouncerFlush(t *testing.T) {
	src := newFakeSource()
	d := watcher.NewDebouncer(src, time.Hour)
	defer d.Close()

	src.events <- watcher.Event{Path: "/a", Op: watcher.OpWrite}
	require.Eventually(t, func() bool { return d.Pending() == 1 }, time.Second, 5*time.Millisecond)

	d.Flush()
	assert.Equal(t, "/a", receive(t, d.Events()).Path)
	assert.Zero(t, d.Pending())
}

func TestDebouncerForwardsErrors(t *testing.T) {
	src := newFakeSource()
	d := watcher.NewDebouncer(src, 0)
	defer d.Close()

	src.errors <- assert.AnError
	select {
	case err := <-d.Errors():
		assert.ErrorIs(t, err, assert.AnError)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for error")
	}
}

func TestDebouncerClose(t *testing.T) {
	src := newFakeSource()
	d := watcher.NewDebouncer(src, time.Hour)

	src.events <- watcher.Event{Path: "/a", Op: watcher.OpWrite}
	require.Eventually(t, func() bool { return d.Pending() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, d.Close())
	require.NoError(t, d.Close())
	assert.True(t, src.closed)

	_, ok := <-d.Events()
	assert.False(t, ok, "events channel should be closed")
}
