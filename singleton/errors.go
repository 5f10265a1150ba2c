package singleton

import (
	"errors"
	"strconv"
)

var (
	// ErrAlreadyRegistered matches every AlreadyRegisteredError via errors.Is.
	ErrAlreadyRegistered = errors.New("singleton: already registered")

	// ErrNotRegistered matches every NotRegisteredError via errors.Is.
	ErrNotRegistered = errors.New("singleton: not registered")

	// ErrNilRegistry is returned when a registry operation receives a nil *Registry.
	ErrNilRegistry = errors.New("singleton: nil registry")

	// ErrNilFactory is returned when RegisterLazy / RegisterLazyErr receive a nil
	// factory, or RegisterLazyHandle receives a nil or factory-less *Lazy.
	ErrNilFactory = errors.New("singleton: nil factory")

	// ErrNilInstance is returned when RegisterInstance receives a nil value
	// (nil pointer, map, slice, func, chan or interface).
	ErrNilInstance = errors.New("singleton: nil instance")

	// ErrFactoryPanic wraps a panic raised by a factory during construction.
	ErrFactoryPanic = errors.New("singleton: panic during construction")
)

// AlreadyRegisteredError is returned when a registration targets a type whose
// slot is already occupied (created or not).
type AlreadyRegisteredError struct{ Type string }

// Error implements the error interface.
func (e AlreadyRegisteredError) Error() string {
	// Example: singleton: type "*db.Pool" already registered
	return "singleton: type " + strconv.Quote(e.Type) + " already registered"
}

// Is reports whether target is ErrAlreadyRegistered.
func (e AlreadyRegisteredError) Is(target error) bool { return target == ErrAlreadyRegistered }

// NotRegisteredError is returned when unregister, dispose or resolve targets a
// type with an empty slot.
type NotRegisteredError struct{ Type string }

// Error implements the error interface.
func (e NotRegisteredError) Error() string {
	// Example: singleton: type "*db.Pool" not registered
	return "singleton: type " + strconv.Quote(e.Type) + " not registered"
}

// Is reports whether target is ErrNotRegistered.
func (e NotRegisteredError) Is(target error) bool { return target == ErrNotRegistered }

// DisposeError reports that the disposal capability of an instance failed.
//
// The slot is cleared regardless; Err carries the cause.
type DisposeError struct {
	Type string
	Err  error
}

// Error implements the error interface.
func (e DisposeError) Error() string {
	// Example: singleton: dispose "*db.Pool": connection reset
	msg := "singleton: dispose " + strconv.Quote(e.Type)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying disposal error.
func (e DisposeError) Unwrap() error { return e.Err }
