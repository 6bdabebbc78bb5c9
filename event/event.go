package event

// Type identifies a category of events. The manager treats it as an
// opaque key: it is only ever compared for equality.
type Type string

// String returns the type as a string.
func (t Type) String() string {
	return string(t)
}

// Event is a single notification dispatched by a Manager.
//
// Payload is owned entirely by the sender; the manager never inspects
// it. Source is overwritten by Send with the manager's owner
// immediately before dispatch, so listeners always see who emitted the
// event regardless of what the sender put there.
type Event struct {
	// Type selects which listener group receives the event.
	Type Type

	// Payload carries the event-specific data. Opaque to the manager.
	Payload any

	// Source is the manager's owner. Set by Send; any value assigned
	// by the caller is discarded.
	Source any
}

// Callback is invoked once per matching listener for each dispatched
// event. Callbacks run synchronously in the sender's goroutine and may
// call Attach, Detach, and Send on the same manager, including
// detaching themselves.
type Callback func(ev *Event, userData any)
