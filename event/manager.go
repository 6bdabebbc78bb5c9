package event

import (
	"sync"
	"sync/atomic"

	"github.com/veldtlabs/eventman/event/diag"
	"github.com/veldtlabs/eventman/event/dispatch"
)

// Manager routes events from one owner to attached listeners.
//
// An owner registers the fixed set of event types it will ever emit,
// listeners attach callbacks against those types, and Send fans one
// event out to every listener of its type, synchronously and in attach
// order. All methods are safe for concurrent use.
//
// The single registry mutex is held only for bookkeeping, never across
// a callback. Send copies the matching listener slice under the lock
// and invokes the copy with the lock released, so a callback may call
// Attach, Detach, or Send on the same manager (including detaching
// itself) without deadlocking. The flip side of the snapshot is that a
// listener detached while a dispatch is in flight can still receive
// that one event.
type Manager struct {
	owner    any
	reporter diag.Reporter
	exec     *dispatch.Executor

	panicHandler PanicHandler

	mu     sync.Mutex
	groups map[Type]*group
	order  []Type
	closed bool

	eventsSent        atomic.Uint64
	deliveries        atomic.Uint64
	callbackPanics    atomic.Uint64
	unroutableSends   atomic.Uint64
	listenersAttached atomic.Uint64
	listenersDetached atomic.Uint64
}

// New creates a manager for the given owner. The owner is opaque to
// the manager; it is stamped into the Source field of every event
// dispatched through Send. The reporter receives diagnostic warnings
// and errors; pass nil to discard them.
func New(owner any, reporter diag.Reporter, opts ...Option) *Manager {
	if reporter == nil {
		reporter = diag.Discard
	}
	m := &Manager{
		owner:    owner,
		reporter: reporter,
		exec:     dispatch.NewExecutor(),
		groups:   make(map[Type]*group),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Close shuts the manager down. Every group and listener is dropped,
// and all further operations fail with ErrClosed (Send becomes a
// reported no-op). Close never runs concurrently with bookkeeping, but
// callbacks already dispatched from a snapshot drain normally.
// Closing twice returns ErrClosed.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	m.closed = true
	m.groups = nil
	m.order = nil
	return nil
}

// RegisterType registers an event type the owner intends to emit.
// Types must be registered before listeners can attach to them, and
// once registered they live until Close. Registering a type twice
// fails with ErrTypeRegistered.
func (m *Manager) RegisterType(t Type) error {
	if t == "" {
		return ErrInvalidType
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	if _, dup := m.groups[t]; dup {
		return ErrTypeRegistered
	}

	m.groups[t] = &group{typ: t}
	m.order = append(m.order, t)
	return nil
}

// Attach registers a callback for an event type. The same
// (callback, userData) pair may be attached more than once; each
// attachment is an independent listener invoked once per dispatch.
// Attaching to a type that was never registered fails with
// ErrUnknownType and is reported to the diagnostic reporter.
func (m *Manager) Attach(t Type, cb Callback, userData any, opts ...AttachOption) error {
	if cb == nil {
		return ErrNilCallback
	}
	if t == "" {
		return ErrInvalidType
	}

	l := newListener(cb, userData, opts...)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	g, ok := m.groups[t]
	if !ok {
		m.mu.Unlock()
		m.reporter.Errorf("event: cannot attach %s: unknown event type %q", l.describe(), t)
		return ErrUnknownType
	}
	g.listeners = append(g.listeners, l)
	m.mu.Unlock()

	m.listenersAttached.Add(1)
	return nil
}

// Detach removes the first listener of the given type whose
// (callback, userData) pair matches the arguments. Callbacks are
// matched by function identity: distinct closures created from the
// same function literal compare equal, so use userData to tell such
// listeners apart. Detaching with no match fails with
// ErrListenerNotFound and is reported as a warning.
func (m *Manager) Detach(t Type, cb Callback, userData any) error {
	if cb == nil {
		return ErrNilCallback
	}
	if t == "" {
		return ErrInvalidType
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	if g, ok := m.groups[t]; ok && g.remove(cb, userData) {
		m.mu.Unlock()
		m.listenersDetached.Add(1)
		return nil
	}
	m.mu.Unlock()

	m.reporter.Warnf("event: cannot detach: no matching listener for event type %q", t)
	return ErrListenerNotFound
}

// Send dispatches one event to every listener attached to its type, in
// attach order. The event's Source field is overwritten with the
// manager's owner before dispatch. Sending a type with no registered
// group is a silent no-op: nobody listening is not a mistake.
//
// Each callback runs to completion before the next one starts. A
// panicking callback is recovered, reported, and does not stop the
// remaining listeners from being invoked.
func (m *Manager) Send(ev *Event) {
	if ev == nil {
		return
	}
	ev.Source = m.owner

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		m.reporter.Warnf("event: send %q on closed manager", ev.Type)
		return
	}
	g, ok := m.groups[ev.Type]
	if !ok {
		m.mu.Unlock()
		m.eventsSent.Add(1)
		m.unroutableSends.Add(1)
		return
	}
	snapshot := g.snapshot()
	m.mu.Unlock()

	m.eventsSent.Add(1)

	for _, l := range snapshot {
		m.invoke(ev, l)
	}
}

// invoke runs one callback through the executor and accounts for the
// outcome.
func (m *Manager) invoke(ev *Event, l *listener) {
	res := m.exec.Invoke(ev, func() {
		l.callback(ev, l.userData)
	})
	if res.Panicked {
		m.callbackPanics.Add(1)
		m.reporter.Errorf("event: %s panicked during %q dispatch: %v", l.describe(), ev.Type, res.PanicValue)
		if m.panicHandler != nil {
			m.panicHandler(ev, l.label, res.PanicValue, res.PanicStack)
		}
		return
	}
	m.deliveries.Add(1)
}

// Types returns the registered event types in registration order.
func (m *Manager) Types() []Type {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.order) == 0 {
		return nil
	}
	out := make([]Type, len(m.order))
	copy(out, m.order)
	return out
}

// ListenerCount returns the number of listeners currently attached to
// the given type. It returns 0 for unregistered types.
func (m *Manager) ListenerCount(t Type) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.groups[t]
	if !ok {
		return 0
	}
	return len(g.listeners)
}
