package drill

import (
	"context"

	"github.com/rahulnair/lingua/internal/align"
	"github.com/rahulnair/lingua/internal/speech"
	"github.com/rahulnair/lingua/internal/textnorm"
)

// Pronunciation drives the listen-and-speak exercise for one card. It owns
// at most one live capture session at a time; transcript updates replace the
// whole utterance and the word alignment is recomputed fresh each time.
type Pronunciation struct {
	target     string
	transcript string
	listening  bool
	session    speech.Session
	scores     []align.WordScore
}

// NewPronunciation creates a pronunciation drill for the given target sentence.
func NewPronunciation(target string) *Pronunciation {
	return &Pronunciation{target: target}
}

// Start begins a capture session on cap for the given locale and returns
// the session's event stream. A Start while already listening is a no-op
// and returns a nil stream; only one session runs per drill instance.
// Returns speech.ErrUnavailable when cap is nil.
func (p *Pronunciation) Start(ctx context.Context, cap speech.Capability, locale string) (<-chan speech.Event, error) {
	if p.listening {
		return nil, nil
	}
	if cap == nil {
		return nil, speech.ErrUnavailable
	}

	sess, err := cap.Start(ctx, locale)
	if err != nil {
		return nil, err
	}
	p.session = sess
	return sess.Events(), nil
}

// Stop requests cancellation of the active session. Safe to call at any
// time, including after the session has already ended; repeated calls are
// no-ops.
func (p *Pronunciation) Stop() {
	if p.session != nil {
		p.session.Stop()
	}
	p.listening = false
}

// HandleEvent applies one capture event to the drill state.
func (p *Pronunciation) HandleEvent(ev speech.Event) {
	switch ev.Kind {
	case speech.Started:
		p.listening = true
	case speech.Transcript:
		p.transcript = ev.Text
		p.rescore()
	case speech.Ended:
		p.listening = false
		p.session = nil
	case speech.Error:
		// The last known transcript stays; the learner can retry.
		p.listening = false
	}
}

// rescore recomputes the word alignment for the current transcript. An
// empty transcript yields no scores, which the UI renders as the neutral
// awaiting-input state.
func (p *Pronunciation) rescore() {
	if textnorm.Fields(p.transcript) == nil {
		p.scores = nil
		return
	}
	p.scores = align.Words(p.target, p.transcript)
}

// Listening reports whether a capture session is active.
func (p *Pronunciation) Listening() bool { return p.listening }

// Transcript returns the last full-utterance transcript.
func (p *Pronunciation) Transcript() string { return p.transcript }

// Scores returns the per-word classification for the current transcript,
// or nil when there is nothing to score yet.
func (p *Pronunciation) Scores() []align.WordScore { return p.scores }
