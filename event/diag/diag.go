package diag

import "github.com/rs/zerolog"

// Reporter receives warnings and errors from the event manager.
type Reporter interface {
	// Warnf reports a recoverable oddity, such as detaching a listener
	// that was never attached.
	Warnf(format string, args ...any)

	// Errorf reports a caller mistake, such as attaching to an event
	// type that was never registered.
	Errorf(format string, args ...any)
}

// Discard is a Reporter that drops everything.
var Discard Reporter = discardReporter{}

type discardReporter struct{}

func (discardReporter) Warnf(format string, args ...any)  {}
func (discardReporter) Errorf(format string, args ...any) {}

// NewZerolog returns a Reporter backed by a zerolog logger. Warnings
// map to the warn level and errors to the error level.
func NewZerolog(l zerolog.Logger) Reporter {
	return &zerologReporter{l: l}
}

type zerologReporter struct {
	l zerolog.Logger
}

func (r *zerologReporter) Warnf(format string, args ...any) {
	r.l.Warn().Msgf(format, args...)
}

func (r *zerologReporter) Errorf(format string, args ...any) {
	r.l.Error().Msgf(format, args...)
}
