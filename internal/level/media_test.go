package level

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rahulnair/lingua/internal/llm"
	"github.com/rahulnair/lingua/internal/store"
)

func openTestCache(t *testing.T) store.MediaRepo {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s.MediaRepo()
}

func TestMediaLoader_CardImageCaches(t *testing.T) {
	gen := &llm.MockImageGenerator{Data: []byte{1, 2, 3}, MIMEType: "image/png"}
	loader := NewMediaLoader(gen, nil, openTestCache(t))
	card := Flashcard{ID: "c1", Front: "Hello", ImagePrompt: "a sunny street"}

	data, mime, err := loader.CardImage(t.Context(), card)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	if mime != "image/png" || !bytes.Equal(data, []byte{1, 2, 3}) {
		t.Errorf("got %v %q", data, mime)
	}
	if len(gen.Prompts) != 1 {
		t.Fatalf("expected 1 generation, got %d", len(gen.Prompts))
	}
	// The card's visual description is embedded in the styled prompt.
	if !bytes.Contains([]byte(gen.Prompts[0]), []byte("a sunny street")) {
		t.Errorf("prompt = %q", gen.Prompts[0])
	}

	// Second load hits the cache.
	data, _, err = loader.CardImage(t.Context(), card)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if !bytes.Equal(data, []byte{1, 2, 3}) {
		t.Errorf("cached data = %v", data)
	}
	if len(gen.Prompts) != 1 {
		t.Errorf("expected no second generation, got %d", len(gen.Prompts))
	}
}

func TestMediaLoader_CardAudioCaches(t *testing.T) {
	synth := &llm.MockSpeechSynthesizer{PCM: []byte{0, 1, 0, 1}}
	loader := NewMediaLoader(nil, synth, openTestCache(t))
	card := Flashcard{ID: "c1", Front: "I have a reservation."}

	pcm, err := loader.CardAudio(t.Context(), card)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	if !bytes.Equal(pcm, []byte{0, 1, 0, 1}) {
		t.Errorf("pcm = %v", pcm)
	}
	if len(synth.Texts) != 1 || synth.Texts[0] != "I have a reservation." {
		t.Errorf("texts = %v", synth.Texts)
	}

	if _, err := loader.CardAudio(t.Context(), card); err != nil {
		t.Fatalf("second load: %v", err)
	}
	if len(synth.Texts) != 1 {
		t.Errorf("expected cache hit, got %d generations", len(synth.Texts))
	}
}

func TestMediaLoader_NilGenerators(t *testing.T) {
	loader := NewMediaLoader(nil, nil, openTestCache(t))
	card := Flashcard{ID: "c1", Front: "Hello"}

	if _, _, err := loader.CardImage(t.Context(), card); !errors.Is(err, ErrNoGenerator) {
		t.Errorf("image err = %v", err)
	}
	if _, err := loader.CardAudio(t.Context(), card); !errors.Is(err, ErrNoGenerator) {
		t.Errorf("audio err = %v", err)
	}
}
