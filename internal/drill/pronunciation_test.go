package drill

import (
	"context"
	"errors"
	"testing"

	"github.com/rahulnair/lingua/internal/align"
	"github.com/rahulnair/lingua/internal/speech"
)

// drain pumps every event from a scripted session into the drill, the way
// the screen layer does one message at a time.
func drain(p *Pronunciation, events <-chan speech.Event) {
	for ev := range events {
		p.HandleEvent(ev)
	}
}

func TestPronunciation_ExactAlignment(t *testing.T) {
	p := NewPronunciation("good morning sir")
	cap := &speech.Scripted{Updates: []string{"good", "good morning", "good morning sir"}}

	events, err := p.Start(context.Background(), cap, "en-US")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	drain(p, events)

	if p.Listening() {
		t.Error("still listening after Ended")
	}
	if p.Transcript() != "good morning sir" {
		t.Errorf("transcript = %q, want last update", p.Transcript())
	}

	scores := p.Scores()
	if len(scores) != 3 {
		t.Fatalf("got %d scores, want 3", len(scores))
	}
	for i, s := range scores {
		if s.Class != align.Exact {
			t.Errorf("word %d (%q): class = %v, want Exact", i, s.Word, s.Class)
		}
	}
}

func TestPronunciation_NearMiss(t *testing.T) {
	p := NewPronunciation("good morning sir")
	cap := &speech.Scripted{Updates: []string{"good mornin sir"}}

	events, _ := p.Start(context.Background(), cap, "en-US")
	drain(p, events)

	want := []align.Class{align.Exact, align.Close, align.Exact}
	for i, s := range p.Scores() {
		if s.Class != want[i] {
			t.Errorf("word %d (%q): class = %v, want %v", i, s.Word, s.Class, want[i])
		}
	}
}

func TestPronunciation_GrossMismatch(t *testing.T) {
	p := NewPronunciation("good morning sir")
	cap := &speech.Scripted{Updates: []string{"banana"}}

	events, _ := p.Start(context.Background(), cap, "en-US")
	drain(p, events)

	for i, s := range p.Scores() {
		if s.Class != align.Mismatch {
			t.Errorf("word %d (%q): class = %v, want Mismatch", i, s.Word, s.Class)
		}
	}
}

func TestPronunciation_TranscriptReplacedWholesale(t *testing.T) {
	p := NewPronunciation("good morning")
	p.HandleEvent(speech.Event{Kind: speech.Started})
	p.HandleEvent(speech.Event{Kind: speech.Transcript, Text: "good"})
	p.HandleEvent(speech.Event{Kind: speech.Transcript, Text: "good morning"})

	if p.Transcript() != "good morning" {
		t.Errorf("transcript = %q, want %q (not appended)", p.Transcript(), "good morning")
	}
}

func TestPronunciation_EmptyTranscriptAwaitsInput(t *testing.T) {
	p := NewPronunciation("good morning")
	p.HandleEvent(speech.Event{Kind: speech.Transcript, Text: "  ...  "})

	if p.Scores() != nil {
		t.Errorf("expected nil scores for contentless transcript, got %v", p.Scores())
	}
}

func TestPronunciation_CapabilityUnavailable(t *testing.T) {
	p := NewPronunciation("good morning")

	_, err := p.Start(context.Background(), nil, "en-US")
	if !errors.Is(err, speech.ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
	if p.Listening() {
		t.Error("drill should not be listening after unavailable start")
	}
}

func TestPronunciation_RuntimeErrorKeepsTranscript(t *testing.T) {
	p := NewPronunciation("good morning")
	p.HandleEvent(speech.Event{Kind: speech.Started})
	p.HandleEvent(speech.Event{Kind: speech.Transcript, Text: "good"})
	p.HandleEvent(speech.Event{Kind: speech.Error, Err: errors.New("permission denied")})

	if p.Listening() {
		t.Error("listening should be false after error")
	}
	if p.Transcript() != "good" {
		t.Errorf("transcript = %q, want last known %q", p.Transcript(), "good")
	}
}

func TestPronunciation_StartWhileListeningIsNoop(t *testing.T) {
	p := NewPronunciation("good morning")
	cap := &speech.Scripted{Updates: []string{"good"}}

	_, err := p.Start(context.Background(), cap, "en-US")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	p.HandleEvent(speech.Event{Kind: speech.Started})

	events, err := p.Start(context.Background(), cap, "en-US")
	if err != nil {
		t.Fatalf("second Start: %v", err)
	}
	if events != nil {
		t.Error("second Start while listening should return nil stream")
	}
	if cap.StartCount() != 1 {
		t.Errorf("capability started %d sessions, want 1", cap.StartCount())
	}
}

func TestPronunciation_StopIsIdempotent(t *testing.T) {
	p := NewPronunciation("good morning")
	cap := &speech.Scripted{Updates: []string{"good"}}

	events, _ := p.Start(context.Background(), cap, "en-US")
	drain(p, events)

	// Session already ended; Stop must still be safe, repeatedly.
	p.Stop()
	p.Stop()
	if p.Listening() {
		t.Error("listening after Stop")
	}
}
