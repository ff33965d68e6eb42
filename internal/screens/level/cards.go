package level

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rahulnair/lingua/internal/align"
	"github.com/rahulnair/lingua/internal/audio"
	"github.com/rahulnair/lingua/internal/drill"
	lvl "github.com/rahulnair/lingua/internal/level"
	"github.com/rahulnair/lingua/internal/screen"
	"github.com/rahulnair/lingua/internal/speech"
	"github.com/rahulnair/lingua/internal/store"
	"github.com/rahulnair/lingua/internal/ui/components"
)

func (s *LevelScreen) handleCardsKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.session.Mode() {
	case drill.ModeView:
		return s.handleViewKey(msg)
	case drill.ModeDictation:
		return s.handleDictationKey(msg)
	case drill.ModePronunciation:
		return s.handlePronunciationKey(msg)
	}
	return s, nil
}

func (s *LevelScreen) handleViewKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		s.session.Prev()
		return s.cardChanged()
	case "right", "l", "enter":
		s.session.Next()
		return s.cardChanged()
	case "space":
		s.session.Flip()
		return s, nil
	case "p":
		return s, s.playAudioCmd()
	case "d":
		s.enterDrill(drill.ModeDictation)
		return s, s.input.Init()
	case "s":
		s.enterDrill(drill.ModePronunciation)
		return s, nil
	}
	return s, nil
}

func (s *LevelScreen) handleDictationKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		d := s.session.Dictation()
		switch d.SubmitOnEnter() {
		case drill.SubmitChecked:
			correct := d.Status() == drill.StatusCorrect
			s.recordDrill("dictation", d.Input(), correct)
			if correct {
				return s, s.playAudioCmd()
			}
		case drill.SubmitAdvance:
			s.session.Next()
			return s.cardChanged()
		}
		return s, nil
	case "ctrl+p":
		return s, s.playAudioCmd()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.session.Dictation().SetInput(s.input.Value())
	return s, cmd
}

func (s *LevelScreen) handlePronunciationKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	p := s.session.Pronunciation()
	switch msg.String() {
	case "m":
		if p.Listening() {
			p.Stop()
			return s, nil
		}
		return s.startListening()
	case "p":
		return s, s.playAudioCmd()
	case "left":
		s.session.Prev()
		return s.cardChanged()
	case "right":
		s.session.Next()
		return s.cardChanged()
	}
	return s, nil
}

// enterDrill switches drill mode and restarts the attempt clock.
func (s *LevelScreen) enterDrill(mode drill.Mode) {
	s.session.SetMode(mode)
	s.input = components.NewTextInput(s.deps.I18n.T("drill_instruction"), false, 120)
	s.drillStart = time.Now()
	s.speechErr = ""
}

// cardChanged resets per-card state and warms the scene image cache.
func (s *LevelScreen) cardChanged() (screen.Screen, tea.Cmd) {
	s.input = components.NewTextInput(s.deps.I18n.T("drill_instruction"), false, 120)
	s.drillStart = time.Now()
	s.audioErr = ""
	s.speechErr = ""
	return s, s.fetchImageCmd()
}

// startListening begins speech capture for the current card.
func (s *LevelScreen) startListening() (screen.Screen, tea.Cmd) {
	capability, err := speech.Resolve()
	if err != nil {
		s.speechErr = s.deps.I18n.T("mic_unavailable")
		return s, nil
	}
	ch, err := s.session.Pronunciation().Start(context.Background(), capability, s.deps.Locale)
	if err != nil {
		s.speechErr = s.deps.I18n.T("mic_unavailable")
		return s, nil
	}
	if ch == nil {
		return s, nil
	}
	s.drillStart = time.Now()
	return s, listenCmd(ch)
}

// listenCmd pumps one event off the capture stream.
func listenCmd(ch <-chan speech.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return speechClosedMsg{}
		}
		return speechEventMsg{Ev: ev, Ch: ch}
	}
}

func (s *LevelScreen) handleSpeechEvent(msg speechEventMsg) (screen.Screen, tea.Cmd) {
	p := s.session.Pronunciation()
	p.HandleEvent(msg.Ev)

	if msg.Ev.Kind == speech.Ended {
		if p.Transcript() != "" {
			correct := true
			for _, ws := range p.Scores() {
				if ws.Class != align.Exact {
					correct = false
					break
				}
			}
			s.recordDrill("pronunciation", p.Transcript(), correct && len(p.Scores()) > 0)
		}
	}
	if msg.Ev.Kind == speech.Error && msg.Ev.Err != nil {
		s.speechErr = msg.Ev.Err.Error()
	}

	return s, listenCmd(msg.Ch)
}

// recordDrill persists one attempt against the current card.
func (s *LevelScreen) recordDrill(mode, attempt string, correct bool) {
	if s.deps.Events == nil {
		return
	}
	card := s.session.Card()
	var exact, closeWords, missed int
	for _, ws := range align.Words(card.TargetText, attempt) {
		switch ws.Class {
		case align.Exact:
			exact++
		case align.Close:
			closeWords++
		default:
			missed++
		}
	}
	_ = s.deps.Events.AppendDrillEvent(context.Background(), store.DrillEventData{
		LevelID:     s.module.ID,
		CardID:      card.ID,
		Mode:        mode,
		TargetText:  card.TargetText,
		AttemptText: attempt,
		Correct:     correct,
		ExactWords:  exact,
		CloseWords:  closeWords,
		MissedWords: missed,
		TimeMs:      int(time.Since(s.drillStart).Milliseconds()),
	})
}

// playAudioCmd synthesizes (or loads cached) reference audio and plays it.
func (s *LevelScreen) playAudioCmd() tea.Cmd {
	if s.playing {
		return nil
	}
	s.playing = true
	s.audioErr = ""
	fc := s.currentFlashcard()
	media := s.deps.Media
	player := s.deps.Player
	return func() tea.Msg {
		ctx := context.Background()
		pcm, err := media.CardAudio(ctx, fc)
		if err != nil {
			return audioDoneMsg{Err: err}
		}
		return audioDoneMsg{Err: player.Play(ctx, audio.Clip{PCM: pcm})}
	}
}

// fetchImageCmd warms the media cache with the current card's scene image.
func (s *LevelScreen) fetchImageCmd() tea.Cmd {
	fc := s.currentFlashcard()
	if fc.ID == "" || fc.ImagePrompt == "" {
		return nil
	}
	if _, done := s.imageState[fc.ID]; done {
		return nil
	}
	s.imageState[fc.ID] = "loading"
	media := s.deps.Media
	return func() tea.Msg {
		_, _, err := media.CardImage(context.Background(), fc)
		return imageReadyMsg{CardID: fc.ID, Err: err}
	}
}

func (s *LevelScreen) currentFlashcard() lvl.Flashcard {
	idx := s.session.Index()
	if idx < 0 || idx >= len(s.data.Flashcards) {
		return lvl.Flashcard{}
	}
	return s.data.Flashcards[idx]
}
