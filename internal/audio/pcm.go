// Package audio handles the reference-audio payloads attached to cards:
// raw 16-bit little-endian PCM as produced by the speech synthesis backend,
// 24 kHz mono.
package audio

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
)

const (
	// SampleRate is the sample rate of synthesized reference audio.
	SampleRate = 24000
	// NumChannels is always mono for reference audio.
	NumChannels = 1
	bitsPerSample = 16
)

// Clip is a decoded reference-audio payload.
type Clip struct {
	// PCM holds raw little-endian 16-bit samples.
	PCM []byte
}

// Duration returns the clip length in seconds.
func (c Clip) Duration() float64 {
	samples := len(c.PCM) / 2 / NumChannels
	return float64(samples) / float64(SampleRate)
}

// DecodeBase64 decodes a base64-encoded PCM payload into a Clip.
func DecodeBase64(encoded string) (Clip, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Clip{}, fmt.Errorf("decode audio payload: %w", err)
	}
	if len(raw)%2 != 0 {
		return Clip{}, fmt.Errorf("audio payload has odd length %d, want 16-bit samples", len(raw))
	}
	return Clip{PCM: raw}, nil
}

// WAV wraps the clip's PCM in a RIFF/WAVE container so external players
// can consume it.
func (c Clip) WAV() []byte {
	dataLen := len(c.PCM)
	buf := make([]byte, 0, 44+dataLen)

	byteRate := SampleRate * NumChannels * bitsPerSample / 8
	blockAlign := NumChannels * bitsPerSample / 8

	buf = append(buf, "RIFF"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(36+dataLen))
	buf = append(buf, "WAVE"...)
	buf = append(buf, "fmt "...)
	buf = binary.LittleEndian.AppendUint32(buf, 16) // PCM chunk size
	buf = binary.LittleEndian.AppendUint16(buf, 1)  // PCM format
	buf = binary.LittleEndian.AppendUint16(buf, NumChannels)
	buf = binary.LittleEndian.AppendUint32(buf, SampleRate)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(byteRate))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(blockAlign))
	buf = binary.LittleEndian.AppendUint16(buf, bitsPerSample)
	buf = append(buf, "data"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(dataLen))
	buf = append(buf, c.PCM...)

	return buf
}
