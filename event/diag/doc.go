// Package diag is the diagnostic sink used by the event manager.
//
// The manager reports non-fatal conditions (attaching to an unknown
// event type, detaching a listener that is not there, callback panics)
// through a Reporter. Reporting is advisory: the manager's behavior
// never depends on a Reporter succeeding, and a nil reporter is
// replaced with Discard.
package diag
