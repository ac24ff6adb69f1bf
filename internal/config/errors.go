package config

import "errors"

// Errors returned by configuration operations.
var (
	// ErrInvalidLogLevel indicates an unknown log level.
	ErrInvalidLogLevel = errors.New("config: invalid log level")

	// ErrEmptyTree indicates a configuration without a widget tree.
	ErrEmptyTree = errors.New("config: empty tree")

	// ErrInvalidDebounce indicates a negative debounce delay.
	ErrInvalidDebounce = errors.New("config: invalid debounce")
)
