package event

import "errors"

// Sentinel errors for the event manager. None of them is fatal: every
// operation leaves the manager in a usable state.
var (
	// ErrInvalidType is returned when an event-type key is empty.
	ErrInvalidType = errors.New("invalid event type")

	// ErrTypeRegistered is returned by RegisterType for a type that is
	// already registered.
	ErrTypeRegistered = errors.New("event type already registered")

	// ErrUnknownType is returned by Attach for a type that was never
	// registered.
	ErrUnknownType = errors.New("unknown event type")

	// ErrListenerNotFound is returned by Detach when no listener
	// matches the given (callback, userData) pair.
	ErrListenerNotFound = errors.New("listener not found")

	// ErrNilCallback is returned when a nil callback is provided.
	ErrNilCallback = errors.New("callback cannot be nil")

	// ErrClosed is returned for operations on a closed manager.
	ErrClosed = errors.New("event manager is closed")
)
