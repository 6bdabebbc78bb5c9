package dispatch

import (
	"runtime/debug"
	"time"
)

// Executor runs callbacks with panic recovery and timing.
type Executor struct {
	panicHandler PanicHandler
}

// NewExecutor creates an executor with the given options.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{
		panicHandler: defaultPanicHandler,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithPanicHandler sets the handler invoked when a callback panics.
func WithPanicHandler(h PanicHandler) ExecutorOption {
	return func(e *Executor) {
		if h != nil {
			e.panicHandler = h
		}
	}
}

// Invoke runs fn and returns the result. Panics raised by fn are
// recovered and reported through the panic handler; they never
// propagate to the caller.
func (e *Executor) Invoke(event any, fn func()) (result Result) {
	start := time.Now()

	defer func() {
		result.Duration = time.Since(start)

		if r := recover(); r != nil {
			stack := debug.Stack()

			result.Panicked = true
			result.PanicValue = r
			result.PanicStack = stack

			// The panic handler must not be able to crash the sender either.
			func() {
				defer func() {
					_ = recover()
				}()
				e.panicHandler(event, r, stack)
			}()
		}
	}()

	fn()
	return result
}
