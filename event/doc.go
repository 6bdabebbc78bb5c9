// Package event provides an in-process publish/subscribe event manager.
//
// A Manager belongs to one owner. The owner registers the fixed set of
// event types it will ever emit, arbitrary listeners attach callbacks
// against those types, and the owner dispatches events with Send. Fan
// out is synchronous: Send invokes every listener of the event's type
// in attach order, in the sender's goroutine, and returns when the
// last callback has finished.
//
// # Basic Usage
//
//	mgr := event.New(owner, diag.NewZerolog(logger))
//	defer mgr.Close()
//
//	if err := mgr.RegisterType("item.changed"); err != nil {
//	    return err
//	}
//
//	err := mgr.Attach("item.changed", onItemChanged, ctx,
//	    event.WithLabel("inventory-view"))
//	if err != nil {
//	    return err
//	}
//
//	mgr.Send(&event.Event{Type: "item.changed", Payload: item})
//
// # Listener Identity
//
// A listener is the (callback, userData) pair given to Attach; Detach
// removes the first listener matching both. Attaching the same pair
// twice creates two independent listeners, each invoked once per
// dispatch.
//
// # Reentrancy
//
// The registry mutex is never held while a callback runs. Send takes a
// snapshot of the listener list under the lock and iterates the
// snapshot unlocked, so callbacks are free to attach, detach (even
// themselves), and send on the same manager. Concurrent mutation never
// changes who receives an in-flight dispatch.
//
// # Failure Semantics
//
// Attach to an unregistered type and Detach without a match are
// recoverable errors, reported through the diag.Reporter. Send to an
// unregistered type is deliberately not an error: it distinguishes
// "nobody is listening" from "you made a mistake". Callback panics are
// recovered, reported, and do not disturb the remaining listeners.
//
// # Subpackages
//
//   - dispatch: callback execution with panic recovery
//   - diag: diagnostic warn/error reporting (zerolog backend included)
//   - metrics: optional Prometheus collector over manager statistics
package event
