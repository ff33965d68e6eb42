package level

import (
	"context"
	"errors"
	"fmt"

	"github.com/rahulnair/lingua/internal/llm"
	"github.com/rahulnair/lingua/internal/store"
)

// ErrNoGenerator is returned when the configured LLM provider cannot
// produce the requested media kind.
var ErrNoGenerator = errors.New("media generation not supported by this provider")

// MediaLoader produces card illustrations and reference audio, caching
// each asset in the store so it is only generated once.
type MediaLoader struct {
	images llm.ImageGenerator
	speech llm.SpeechSynthesizer
	cache  store.MediaRepo
}

// NewMediaLoader creates a loader. images and speech may be nil when the
// provider does not support them; the corresponding methods then return
// ErrNoGenerator.
func NewMediaLoader(images llm.ImageGenerator, speech llm.SpeechSynthesizer, cache store.MediaRepo) *MediaLoader {
	return &MediaLoader{images: images, speech: speech, cache: cache}
}

// CardImage returns the illustration for a flashcard, generating and
// caching it on first use.
func (l *MediaLoader) CardImage(ctx context.Context, card Flashcard) (data []byte, mimeType string, err error) {
	key := "image:" + card.ID

	if asset, err := l.cache.Get(ctx, key); err != nil {
		return nil, "", err
	} else if asset != nil {
		return asset.Data, asset.MIMEType, nil
	}

	if l.images == nil {
		return nil, "", ErrNoGenerator
	}

	prompt := fmt.Sprintf("Photorealistic, cinematic, first-person POV shot. %s. High resolution.", card.ImagePrompt)
	data, mimeType, err = l.images.GenerateImage(ctx, prompt)
	if err != nil {
		return nil, "", fmt.Errorf("generate card image: %w", err)
	}

	err = l.cache.Put(ctx, store.MediaAsset{
		Key:      key,
		Kind:     "image",
		MIMEType: mimeType,
		Data:     data,
	})
	if err != nil {
		return nil, "", err
	}
	return data, mimeType, nil
}

// CardAudio returns the spoken reference audio for a flashcard as raw
// 24kHz mono PCM16, generating and caching it on first use.
func (l *MediaLoader) CardAudio(ctx context.Context, card Flashcard) ([]byte, error) {
	key := "audio:" + card.ID

	if asset, err := l.cache.Get(ctx, key); err != nil {
		return nil, err
	} else if asset != nil {
		return asset.Data, nil
	}

	if l.speech == nil {
		return nil, ErrNoGenerator
	}

	pcm, err := l.speech.Synthesize(ctx, card.Front)
	if err != nil {
		return nil, fmt.Errorf("generate card audio: %w", err)
	}

	err = l.cache.Put(ctx, store.MediaAsset{
		Key:      key,
		Kind:     "audio",
		MIMEType: "audio/L16",
		Data:     pcm,
	})
	if err != nil {
		return nil, err
	}
	return pcm, nil
}
