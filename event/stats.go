package event

// Stats contains manager counters. All counters are cumulative for the
// life of the manager and are updated without the registry lock, so a
// snapshot taken during concurrent dispatch may be slightly stale.
type Stats struct {
	// EventsSent is the number of Send calls accepted by the manager.
	EventsSent uint64

	// Deliveries is the number of callback invocations that completed
	// without panicking.
	Deliveries uint64

	// CallbackPanics is the number of callback invocations that
	// panicked and were recovered.
	CallbackPanics uint64

	// UnroutableSends is the number of Send calls whose event type had
	// no registered group. Such sends are silent no-ops, not errors.
	UnroutableSends uint64

	// ListenersAttached is the number of successful Attach calls.
	ListenersAttached uint64

	// ListenersDetached is the number of successful Detach calls.
	ListenersDetached uint64
}

// Stats returns a snapshot of the manager's counters.
func (m *Manager) Stats() Stats {
	return Stats{
		EventsSent:        m.eventsSent.Load(),
		Deliveries:        m.deliveries.Load(),
		CallbackPanics:    m.callbackPanics.Load(),
		UnroutableSends:   m.unroutableSends.Load(),
		ListenersAttached: m.listenersAttached.Load(),
		ListenersDetached: m.listenersDetached.Load(),
	}
}
