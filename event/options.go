package event

import "github.com/veldtlabs/eventman/event/dispatch"

// PanicHandler is called when a listener callback panics during
// dispatch. The panic has already been recovered and reported to the
// diagnostic reporter; the handler is for callers that want the stack
// or custom accounting.
type PanicHandler func(ev *Event, listenerLabel string, panicValue any, stack []byte)

// Option configures a Manager.
type Option func(*Manager)

// WithPanicHandler installs a handler invoked after a callback panic
// is recovered.
func WithPanicHandler(h PanicHandler) Option {
	return func(m *Manager) {
		m.panicHandler = h
	}
}

// WithExecutor replaces the dispatch executor. Mostly useful in tests.
func WithExecutor(e *dispatch.Executor) Option {
	return func(m *Manager) {
		if e != nil {
			m.exec = e
		}
	}
}

// AttachOption configures a single Attach call.
type AttachOption func(*listener)

// WithLabel attaches a diagnostic label to the listener. The label
// appears in warning and error reports involving this listener; it
// plays no part in matching.
func WithLabel(label string) AttachOption {
	return func(l *listener) {
		l.label = label
	}
}
