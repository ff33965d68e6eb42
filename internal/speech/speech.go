// Package speech abstracts live speech-to-text capture behind a small
// capability interface.
//
// The drill layer never talks to a concrete recognizer. It asks for a
// Capability at call time and degrades gracefully (ErrUnavailable) when the
// host has none registered, so the pronunciation drill stays usable as a
// listen-and-replay exercise. Implementations deliver events asynchronously;
// each Transcript event carries the full utterance so far, not a delta.
package speech

import (
	"context"
	"errors"
)

// ErrUnavailable is returned by Capability resolution or Start when no
// speech recognizer is usable on this host. Callers must treat it as a
// non-fatal, degraded-mode condition.
var ErrUnavailable = errors.New("speech capture unavailable on this host")

// EventKind discriminates capture session events.
type EventKind int

const (
	// Started acknowledges that the recognizer is listening.
	Started EventKind = iota
	// Transcript carries the full utterance-so-far text. Repeats as the
	// recognizer refines its hypothesis; the last one wins.
	Transcript
	// Ended signals the session is over. Always the final event.
	Ended
	// Error reports a runtime failure (permission denied, no signal).
	// An Ended event still follows.
	Error
)

// Event is a single asynchronous capture event. Events for one session
// arrive in emission order.
type Event struct {
	Kind EventKind
	// Text is set for Transcript events.
	Text string
	// Err is set for Error events.
	Err error
}

// Session is a handle on one live capture. Stop is idempotent and safe to
// call at any time, including after the session has ended.
type Session interface {
	// Events returns the event stream. The channel is closed after the
	// Ended event is delivered.
	Events() <-chan Event

	// Stop requests cancellation. The session still delivers Ended.
	Stop()
}

// Capability starts speech capture sessions.
type Capability interface {
	// Start begins a capture session for the given BCP 47 locale
	// (e.g. "en-US"). Returns ErrUnavailable when capture cannot start
	// on this host.
	Start(ctx context.Context, locale string) (Session, error)
}

var registered Capability

// Register installs the host's capture capability. Typically called once
// at startup by whichever backend the build wires in. Passing nil clears
// the registration.
func Register(c Capability) {
	registered = c
}

// Resolve returns the registered capability, or ErrUnavailable when no
// backend has been registered.
func Resolve() (Capability, error) {
	if registered == nil {
		return nil, ErrUnavailable
	}
	return registered, nil
}
