package speech

import (
	"context"
	"sync"
)

// Scripted is a Capability that replays a fixed series of transcript
// updates. It backs drill tests and the --demo mode, where no microphone
// exists but the pronunciation flow still needs exercising.
type Scripted struct {
	// Updates are the full-utterance transcripts to emit, in order.
	Updates []string
	// Fail, when set, makes the session emit this error (then end)
	// instead of any transcripts.
	Fail error

	mu     sync.Mutex
	starts int
}

// Start begins a scripted session. The event goroutine emits Started, each
// update, then Ended, honoring Stop and ctx cancellation between events.
func (s *Scripted) Start(ctx context.Context, locale string) (Session, error) {
	s.mu.Lock()
	s.starts++
	s.mu.Unlock()

	sess := &scriptedSession{
		events: make(chan Event, len(s.Updates)+3),
		done:   make(chan struct{}),
	}

	go func() {
		defer close(sess.events)

		sess.events <- Event{Kind: Started}

		if s.Fail != nil {
			sess.events <- Event{Kind: Error, Err: s.Fail}
			sess.events <- Event{Kind: Ended}
			return
		}

		for _, text := range s.Updates {
			select {
			case <-ctx.Done():
				sess.events <- Event{Kind: Ended}
				return
			case <-sess.done:
				sess.events <- Event{Kind: Ended}
				return
			default:
			}
			sess.events <- Event{Kind: Transcript, Text: text}
		}
		sess.events <- Event{Kind: Ended}
	}()

	return sess, nil
}

// StartCount returns how many sessions have been started. Used by tests to
// assert the single-session invariant.
func (s *Scripted) StartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.starts
}

type scriptedSession struct {
	events   chan Event
	done     chan struct{}
	stopOnce sync.Once
}

func (s *scriptedSession) Events() <-chan Event { return s.events }

func (s *scriptedSession) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}
