package audio

import (
	"encoding/base64"
	"encoding/binary"
	"testing"
)

func TestDecodeBase64(t *testing.T) {
	raw := []byte{0x01, 0x00, 0xFF, 0x7F}
	clip, err := DecodeBase64(base64.StdEncoding.EncodeToString(raw))
	if err != nil {
		t.Fatalf("DecodeBase64: %v", err)
	}
	if len(clip.PCM) != 4 {
		t.Errorf("PCM length = %d, want 4", len(clip.PCM))
	}
}

func TestDecodeBase64_Invalid(t *testing.T) {
	if _, err := DecodeBase64("not base64!!!"); err == nil {
		t.Error("expected error for invalid base64")
	}
	// Odd byte count cannot be 16-bit samples.
	if _, err := DecodeBase64(base64.StdEncoding.EncodeToString([]byte{1, 2, 3})); err == nil {
		t.Error("expected error for odd-length payload")
	}
}

func TestClip_Duration(t *testing.T) {
	// One second of 24kHz mono PCM16.
	clip := Clip{PCM: make([]byte, SampleRate*2)}
	if got := clip.Duration(); got != 1.0 {
		t.Errorf("Duration = %f, want 1.0", got)
	}
}

func TestClip_WAV(t *testing.T) {
	clip := Clip{PCM: []byte{0x01, 0x00, 0x02, 0x00}}
	wav := clip.WAV()

	if len(wav) != 44+4 {
		t.Fatalf("WAV length = %d, want 48", len(wav))
	}
	if string(wav[:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		t.Error("missing RIFF/WAVE markers")
	}
	if rate := binary.LittleEndian.Uint32(wav[24:28]); rate != SampleRate {
		t.Errorf("sample rate = %d, want %d", rate, SampleRate)
	}
	if dataLen := binary.LittleEndian.Uint32(wav[40:44]); dataLen != 4 {
		t.Errorf("data chunk length = %d, want 4", dataLen)
	}
}
