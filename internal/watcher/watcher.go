// Package watcher reports changes to menu fragment files.
//
// Watcher wraps fsnotify and watches the parent directory of each file so
// editors that save through rename-and-replace keep producing events.
// Debouncer coalesces bursts of events per path before they reach the
// reload loop.
package watcher

import (
	"errors"
	"time"
)

// Common errors returned by watcher operations.
var (
	ErrWatcherClosed   = errors.New("watcher: closed")
	ErrAlreadyWatching = errors.New("watcher: path is already being watched")
	ErrPathNotExist    = errors.New("watcher: path does not exist")
)

// Op is a set of file system operations.
type Op uint32

const (
	// OpCreate indicates a file was created.
	OpCreate Op = 1 << iota
	// OpWrite indicates a file was written to.
	OpWrite
	// OpRemove indicates a file was removed.
	OpRemove
	// OpRename indicates a file was renamed away.
	OpRename
)

// String returns a human-readable representation of the operation.
func (op Op) String() string {
	switch op {
	case OpCreate:
		return "CREATE"
	case OpWrite:
		return "WRITE"
	case OpRemove:
		return "REMOVE"
	case OpRename:
		return "RENAME"
	default:
		return "UNKNOWN"
	}
}

// Has returns true if the operation includes o.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Event is a change to a watched file.
type Event struct {
	// Path is the absolute path of the file.
	Path string

	// Op is the operation, or the union of operations once debounced.
	Op Op

	// Timestamp is when the most recent operation was seen.
	Timestamp time.Time
}

// Source produces file events. Both Watcher and Debouncer implement it.
type Source interface {
	Events() <-chan Event
	Errors() <-chan error
	Close() error
}
