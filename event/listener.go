package event

import "reflect"

// listener is one attached (callback, userData) pair. A listener has
// no identity beyond that pair plus an optional debug label; two
// listeners with the same pair are indistinguishable and Detach
// removes whichever was attached first.
type listener struct {
	callback Callback
	userData any
	label    string
}

func newListener(cb Callback, userData any, opts ...AttachOption) *listener {
	l := &listener{
		callback: cb,
		userData: userData,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// matches reports whether this listener holds the given pair.
// Callbacks are compared by function identity, userData by equality.
func (l *listener) matches(cb Callback, userData any) bool {
	if callbackPointer(l.callback) != callbackPointer(cb) {
		return false
	}
	return sameUserData(l.userData, userData)
}

// describe returns the listener's label for diagnostics, or a generic
// placeholder when none was given at Attach time.
func (l *listener) describe() string {
	if l.label != "" {
		return l.label
	}
	return "unlabeled listener"
}

// callbackPointer returns the code pointer of a callback. Distinct
// closures created from the same function literal share a code
// pointer; callers that attach such closures must use userData to tell
// them apart.
func callbackPointer(cb Callback) uintptr {
	return reflect.ValueOf(cb).Pointer()
}

// sameUserData compares two opaque userData values. Values of
// uncomparable types never match; comparing them with == would panic.
func sameUserData(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// group holds every listener attached to one registered event type, in
// attach order. Groups are created by RegisterType and live until the
// manager is closed; the set of groups only grows.
type group struct {
	typ       Type
	listeners []*listener
}

// snapshot returns a copy of the listener slice. Send iterates the
// copy with the manager unlocked, so concurrent Attach/Detach calls
// never affect an in-flight dispatch.
func (g *group) snapshot() []*listener {
	if len(g.listeners) == 0 {
		return nil
	}
	out := make([]*listener, len(g.listeners))
	copy(out, g.listeners)
	return out
}

// remove deletes the first listener matching the pair, preserving the
// order of the rest. Returns false if nothing matched.
func (g *group) remove(cb Callback, userData any) bool {
	for i, l := range g.listeners {
		if l.matches(cb, userData) {
			g.listeners = append(g.listeners[:i], g.listeners[i+1:]...)
			return true
		}
	}
	return false
}
