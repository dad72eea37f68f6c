package variant

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownOption is matched by every *UnknownOptionError.
	ErrUnknownOption = errors.New("unknown variant option")
	// ErrUnknownAxis is matched by every *UnknownAxisError.
	ErrUnknownAxis = errors.New("unknown variant axis")
	// ErrMalformedSchema is matched by every *MalformedSchemaError.
	ErrMalformedSchema = errors.New("malformed variant schema")
)

// UnknownOptionError reports a selection naming an option the axis does not declare.
type UnknownOptionError struct {
	Schema string
	Axis   string
	Option string
	Known  []string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("%s: axis %q has no option %q (known: %s)", e.Schema, e.Axis, e.Option, strings.Join(e.Known, ", "))
}

func (e *UnknownOptionError) Unwrap() error { return ErrUnknownOption }

// UnknownAxisError reports a selection key that names no axis of the schema.
type UnknownAxisError struct {
	Schema string
	Axis   string
	Known  []string
}

func (e *UnknownAxisError) Error() string {
	return fmt.Sprintf("%s: no axis %q (known: %s)", e.Schema, e.Axis, strings.Join(e.Known, ", "))
}

func (e *UnknownAxisError) Unwrap() error { return ErrUnknownAxis }

// MalformedSchemaError is returned while constructing a schema that cannot be resolved.
type MalformedSchemaError struct {
	Schema string
	Axis   string
	Reason string
}

func (e *MalformedSchemaError) Error() string {
	if e.Axis == "" {
		return fmt.Sprintf("%s: %s", e.Schema, e.Reason)
	}
	return fmt.Sprintf("%s: axis %q: %s", e.Schema, e.Axis, e.Reason)
}

func (e *MalformedSchemaError) Unwrap() error { return ErrMalformedSchema }
