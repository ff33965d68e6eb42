package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Player plays a reference-audio clip. Playback is fire-and-forget from the
// drill's point of view; errors surface only through the returned error and
// never block drill state.
type Player interface {
	Play(ctx context.Context, clip Clip) error
}

// NopPlayer discards playback requests. Used when no system player exists.
type NopPlayer struct{}

func (NopPlayer) Play(context.Context, Clip) error { return nil }

// execCandidates are system audio players probed in order.
var execCandidates = []string{"afplay", "paplay", "aplay", "ffplay"}

// ExecPlayer plays clips by writing a temporary WAV file and shelling out
// to a system audio player.
type ExecPlayer struct {
	binary string
}

// NewExecPlayer probes the host for a usable system player. Returns ok=false
// when none is on PATH; callers should fall back to NopPlayer.
func NewExecPlayer() (*ExecPlayer, bool) {
	for _, name := range execCandidates {
		if path, err := exec.LookPath(name); err == nil {
			return &ExecPlayer{binary: path}, true
		}
	}
	return nil, false
}

// Play writes the clip to a temp WAV and runs the system player to
// completion. The temp file is removed afterwards.
func (p *ExecPlayer) Play(ctx context.Context, clip Clip) error {
	f, err := os.CreateTemp("", "lingua-*.wav")
	if err != nil {
		return fmt.Errorf("create temp audio file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(clip.WAV()); err != nil {
		f.Close()
		return fmt.Errorf("write temp audio file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp audio file: %w", err)
	}

	args := []string{path}
	if filepath.Base(p.binary) == "ffplay" {
		args = []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}
	}

	cmd := exec.CommandContext(ctx, p.binary, args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("play audio via %s: %w", filepath.Base(p.binary), err)
	}
	return nil
}
