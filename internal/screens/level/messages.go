package level

import "github.com/rahulnair/lingua/internal/speech"

// audioDoneMsg is sent when reference-audio playback finishes.
type audioDoneMsg struct {
	Err error
}

// imageReadyMsg is sent when the scene image for a card has been fetched
// into the media cache.
type imageReadyMsg struct {
	CardID string
	Err    error
}

// speechEventMsg carries one capture event plus the stream it came from so
// the pump can re-arm.
type speechEventMsg struct {
	Ev speech.Event
	Ch <-chan speech.Event
}

// speechClosedMsg is sent when the capture event stream closes.
type speechClosedMsg struct{}

// replyMsg carries the roleplay partner's reply.
type replyMsg struct {
	Text string
	Err  error
}
