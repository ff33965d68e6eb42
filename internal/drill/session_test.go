package drill

import (
	"testing"

	"github.com/rahulnair/lingua/internal/speech"
)

func testDeck() []Card {
	return []Card{
		{ID: "c1", TargetText: "I would like a coffee.", Translation: "我想要一杯咖啡。"},
		{ID: "c2", TargetText: "Where is the gate?", Translation: "登机口在哪里？"},
		{ID: "c3", TargetText: "Good morning sir", Translation: "早上好，先生"},
	}
}

func TestSession_CircularNavigation(t *testing.T) {
	s := NewSession(testDeck())

	s.Prev()
	if s.Index() != 2 {
		t.Errorf("Prev from 0 = %d, want 2", s.Index())
	}

	s.Next()
	if s.Index() != 0 {
		t.Errorf("Next from 2 = %d, want 0", s.Index())
	}

	for i := 0; i < 3; i++ {
		s.Next()
	}
	if s.Index() != 0 {
		t.Errorf("three Next from 0 = %d, want 0", s.Index())
	}
}

func TestSession_CardChangeResetsDrills(t *testing.T) {
	s := NewSession(testDeck())
	s.SetMode(ModeDictation)

	s.Dictation().SetInput("wrong answer")
	s.Dictation().Check()
	s.Pronunciation().HandleEvent(speech.Event{Kind: speech.Started})
	s.Pronunciation().HandleEvent(speech.Event{Kind: speech.Transcript, Text: "i would"})

	s.Next()

	d := s.Dictation()
	if d.Input() != "" || d.Status() != StatusIdle {
		t.Errorf("dictation not reset: input=%q status=%v", d.Input(), d.Status())
	}

	p := s.Pronunciation()
	if p.Transcript() != "" || p.Listening() || p.Scores() != nil {
		t.Errorf("pronunciation not reset: transcript=%q listening=%v", p.Transcript(), p.Listening())
	}
}

func TestSession_CardChangeStopsListening(t *testing.T) {
	s := NewSession(testDeck())
	s.SetMode(ModePronunciation)

	cap := &speech.Scripted{Updates: []string{"hello"}}
	events, err := s.Pronunciation().Start(t.Context(), cap, "en-US")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.Pronunciation().HandleEvent(<-events) // Started

	old := s.Pronunciation()
	s.Next()

	if old.Listening() {
		t.Error("previous card's capture still listening after card change")
	}
}

func TestSession_ModeSwitchDiscardsNonCorrectState(t *testing.T) {
	s := NewSession(testDeck())

	s.SetMode(ModeDictation)
	s.Dictation().SetInput("partial inp")
	s.SetMode(ModeView)
	s.SetMode(ModeDictation)
	if s.Dictation().Input() != "" {
		t.Errorf("in-progress dictation input survived mode switch: %q", s.Dictation().Input())
	}
}

func TestSession_ModeSwitchKeepsCorrectDictation(t *testing.T) {
	s := NewSession(testDeck())

	s.SetMode(ModeDictation)
	s.Dictation().SetInput("i would like a coffee")
	s.Dictation().Check()

	s.SetMode(ModeView)
	s.SetMode(ModeDictation)
	if s.Dictation().Status() != StatusCorrect {
		t.Errorf("correct dictation discarded by mode switch: %v", s.Dictation().Status())
	}
}

func TestSession_FlipOnlyInViewMode(t *testing.T) {
	s := NewSession(testDeck())

	s.Flip()
	if !s.Flipped() {
		t.Error("flip in view mode should reveal translation")
	}

	s.SetMode(ModeDictation)
	if s.Flipped() {
		t.Error("flip state should clear when leaving view mode")
	}
	s.Flip()
	if s.Flipped() {
		t.Error("flip should be inert outside view mode")
	}

	s.SetMode(ModeView)
	s.Flip()
	s.Next()
	if s.Flipped() {
		t.Error("card change should reset flip state")
	}
}

func TestSession_EmptyDeck(t *testing.T) {
	s := NewSession(nil)
	s.Next()
	s.Prev()
	if s.Index() != 0 {
		t.Errorf("index on empty deck = %d, want 0", s.Index())
	}
	if s.Card() != (Card{}) {
		t.Errorf("Card() on empty deck = %+v, want zero", s.Card())
	}
}
