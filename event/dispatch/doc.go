// Package dispatch executes event callbacks on behalf of the manager.
//
// Callbacks run synchronously in the sender's goroutine. The Executor
// isolates the manager from misbehaving callbacks: a panicking callback
// is recovered, its stack captured, and the failure reported through an
// optional PanicHandler instead of unwinding into the sender.
//
// There are no timeouts and no cancellation. Once a callback starts it
// runs to completion, and the sender waits for it before moving on.
package dispatch
