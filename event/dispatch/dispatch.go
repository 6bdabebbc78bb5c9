package dispatch

import "time"

// Result describes the outcome of a single callback invocation.
type Result struct {
	// Panicked is true if the callback panicked.
	Panicked bool

	// PanicValue is the value passed to panic(), if Panicked is true.
	PanicValue any

	// PanicStack is the stack trace captured at the point of panic.
	PanicStack []byte

	// Duration is how long the callback ran.
	Duration time.Duration
}

// OK returns true if the callback completed without panicking.
func (r Result) OK() bool {
	return !r.Panicked
}

// PanicHandler is called when a callback panics during an invocation.
// It receives the event being dispatched, the panic value, and the
// stack trace.
type PanicHandler func(event any, panicValue any, stack []byte)

// defaultPanicHandler is a no-op. The manager installs its own handler
// that routes panics to the diagnostic reporter.
func defaultPanicHandler(event any, panicValue any, stack []byte) {}
