package command

import "errors"

// ErrNilHandler is the panic value when Add is called without a handler.
var ErrNilHandler = errors.New("command: nil handler")
