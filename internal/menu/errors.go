package menu

import (
	"errors"
	"fmt"
)

// Menu errors.
var (
	// ErrInvalidTemplate indicates a fragment without a usable menu list.
	ErrInvalidTemplate = errors.New("menu: invalid template")

	// ErrInvalidField indicates a field value of the wrong type.
	ErrInvalidField = errors.New("menu: invalid field")
)

// DecodeError reports a field that could not be decoded into an Item.
type DecodeError struct {
	// Path locates the field, e.g. "submenu[2].label".
	Path string
	// Want is the expected kind of value.
	Want string
	// Got is the value found.
	Got any
}

// Error implements error.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("menu: field %s: want %s, got %T", e.Path, e.Want, e.Got)
}

// Unwrap returns ErrInvalidField.
func (e *DecodeError) Unwrap() error {
	return ErrInvalidField
}
