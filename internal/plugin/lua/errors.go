package lua

import "errors"

// Errors for Lua state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua: state is closed")

	// ErrHostClosed is returned when loading a plugin into a closed host.
	ErrHostClosed = errors.New("lua: host is closed")
)
