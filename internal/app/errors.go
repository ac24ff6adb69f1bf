package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrUnknownTarget indicates a tag that names no element of the tree.
	ErrUnknownTarget = errors.New("app: unknown target")

	// ErrMenuNotFound indicates a menu fragment file that does not exist.
	ErrMenuNotFound = errors.New("app: menu fragment not found")

	// ErrClosed indicates an operation on a closed application.
	ErrClosed = errors.New("app: closed")
)

// OperationError records the operation and file that failed.
type OperationError struct {
	Op   string // Operation name, e.g. "load menu"
	Path string // File the operation was working on
	Err  error  // Underlying error
}

func (e *OperationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
