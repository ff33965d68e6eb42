package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// ImageGenerator produces an illustration for a prompt.
// Returns the raw encoded image bytes and their MIME type.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (data []byte, mimeType string, err error)
}

// SpeechSynthesizer renders text as speech audio. The returned bytes are
// raw PCM: 24kHz, mono, signed 16-bit little-endian samples. Callers
// wanting a playable file wrap them in a WAV container.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Media extracts the media-generation interfaces from a provider,
// unwrapping retry and logging decorators. Both results are nil for
// backends without media support.
func Media(p Provider) (ImageGenerator, SpeechSynthesizer) {
	for p != nil {
		if img, ok := p.(ImageGenerator); ok {
			tts, _ := p.(SpeechSynthesizer)
			return img, tts
		}
		u, ok := p.(interface{ Unwrap() Provider })
		if !ok {
			return nil, nil
		}
		p = u.Unwrap()
	}
	return nil, nil
}

// GenerateImage implements ImageGenerator. The image comes back as an
// inline-data part alongside any text parts; the first inline part wins.
func (p *GeminiProvider) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}}

	result, err := p.client.Models.GenerateContent(ctx, p.imageModel, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	})
	if err != nil {
		return nil, "", mapGeminiError(err)
	}

	for _, cand := range result.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, part.InlineData.MIMEType, nil
			}
		}
	}

	return nil, "", &ErrInvalidResponse{Err: fmt.Errorf("no image data in response")}
}

// Synthesize implements SpeechSynthesizer using the Gemini TTS model.
func (p *GeminiProvider) Synthesize(ctx context.Context, text string) ([]byte, error) {
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: text}},
	}}

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: p.voice,
				},
			},
		},
	}

	result, err := p.client.Models.GenerateContent(ctx, p.ttsModel, contents, config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	for _, cand := range result.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, nil
			}
		}
	}

	return nil, &ErrInvalidResponse{Err: fmt.Errorf("no audio data in response")}
}
