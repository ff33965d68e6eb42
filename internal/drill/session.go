// Package drill implements the flashcard review mechanics: the typing
// dictation drill, the speech pronunciation drill, and the session that
// owns the active card, the drill mode, and reset-on-change behavior.
package drill

// Mode selects how the current card is being reviewed.
type Mode int

const (
	// ModeView shows the card with flip-to-translation.
	ModeView Mode = iota
	// ModeDictation is the listen-and-type exercise.
	ModeDictation
	// ModePronunciation is the listen-and-speak exercise.
	ModePronunciation
)

// Card is a flashcard as handed to the drill layer. Read-only here; media
// caching happens in the owning collection.
type Card struct {
	ID                string
	TargetText        string
	Translation       string
	PronunciationHint string
}

// Session owns the deck position, the active mode, and exactly one
// dictation and one pronunciation state scoped to the current card.
// Switching cards or modes discards and recreates drill state; nothing
// carries over.
type Session struct {
	cards   []Card
	index   int
	mode    Mode
	flipped bool

	dictation     *Dictation
	pronunciation *Pronunciation
}

// NewSession creates a session over cards in View mode on the first card.
func NewSession(cards []Card) *Session {
	s := &Session{cards: cards}
	s.rebuildDrills()
	return s
}

// Card returns the active card. Zero value when the deck is empty.
func (s *Session) Card() Card {
	if len(s.cards) == 0 {
		return Card{}
	}
	return s.cards[s.index]
}

// Len returns the deck size.
func (s *Session) Len() int { return len(s.cards) }

// Index returns the active card index.
func (s *Session) Index() int { return s.index }

// Mode returns the active drill mode.
func (s *Session) Mode() Mode { return s.mode }

// Dictation returns the dictation drill for the current card.
func (s *Session) Dictation() *Dictation { return s.dictation }

// Pronunciation returns the pronunciation drill for the current card.
func (s *Session) Pronunciation() *Pronunciation { return s.pronunciation }

// SetMode switches the active drill mode. In-progress state of the mode
// being left is discarded, except a completed (correct) dictation which
// survives until the card changes.
func (s *Session) SetMode(mode Mode) {
	if mode == s.mode {
		return
	}

	switch s.mode {
	case ModeDictation:
		if s.dictation.Status() != StatusCorrect {
			s.dictation = NewDictation(s.Card().TargetText)
		}
	case ModePronunciation:
		s.pronunciation.Stop()
		s.pronunciation = NewPronunciation(s.Card().TargetText)
	case ModeView:
		s.flipped = false
	}

	s.mode = mode
}

// Next advances to the following card, wrapping past the end of the deck.
func (s *Session) Next() {
	if len(s.cards) == 0 {
		return
	}
	s.setIndex((s.index + 1) % len(s.cards))
}

// Prev retreats to the preceding card, wrapping before the start.
func (s *Session) Prev() {
	if len(s.cards) == 0 {
		return
	}
	s.setIndex((s.index - 1 + len(s.cards)) % len(s.cards))
}

// setIndex changes the active card and resets all per-card state: both
// drills rebuild, active listening stops, and the flip state clears.
func (s *Session) setIndex(i int) {
	s.index = i
	s.rebuildDrills()
}

func (s *Session) rebuildDrills() {
	if s.pronunciation != nil {
		s.pronunciation.Stop()
	}
	target := s.Card().TargetText
	s.dictation = NewDictation(target)
	s.pronunciation = NewPronunciation(target)
	s.flipped = false
}

// Flip toggles the translation side. Only meaningful in View mode.
func (s *Session) Flip() {
	if s.mode == ModeView {
		s.flipped = !s.flipped
	}
}

// Flipped reports whether the translation side is showing.
func (s *Session) Flipped() bool { return s.flipped }
