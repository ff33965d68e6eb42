// Package flow carries the shared dependencies the screen stack hands from
// one screen to the next: services, repositories, the active translator, and
// the learner's course state.
package flow

import (
	"context"

	"github.com/rahulnair/lingua/internal/audio"
	"github.com/rahulnair/lingua/internal/course"
	"github.com/rahulnair/lingua/internal/i18n"
	"github.com/rahulnair/lingua/internal/level"
	"github.com/rahulnair/lingua/internal/llm"
	"github.com/rahulnair/lingua/internal/roleplay"
	"github.com/rahulnair/lingua/internal/store"
)

// Deps is the dependency bundle shared by all screens. A single *Deps is
// created at startup and passed down the stack; screens mutate I18n and
// State through it so the header and later screens observe the change.
type Deps struct {
	I18n      *i18n.Translator
	Course    *course.Service
	Levels    *level.Service
	Media     *level.MediaLoader
	Player    audio.Player
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	Provider  llm.Provider
	Roleplay  roleplay.Config

	// Locale is the BCP 47 locale used for speech capture.
	Locale string

	// State is the learner's goal, analysis, and roadmap. Nil until a
	// plan has been generated or loaded.
	State *course.State
}

// ToggleLang switches the UI language between English and Chinese.
func (d *Deps) ToggleLang() {
	d.I18n = d.I18n.Toggle()
}

// Progress returns completed and total module counts for the header.
// Zero/zero before a plan exists.
func (d *Deps) Progress() (completed, total int) {
	if d.State == nil || d.State.Plan == nil {
		return 0, 0
	}
	for _, m := range d.State.Plan.Modules {
		if m.Status == course.StatusCompleted {
			completed++
		}
	}
	return completed, len(d.State.Plan.Modules)
}

// SaveState persists the current course state to the snapshot store.
func (d *Deps) SaveState(ctx context.Context) error {
	if d.State == nil || d.Snapshots == nil {
		return nil
	}
	return course.Save(ctx, d.Snapshots, d.State)
}

// CompleteModule marks the module done, unlocks the next one, and persists.
func (d *Deps) CompleteModule(ctx context.Context, moduleID string) error {
	if d.State == nil || d.State.Plan == nil {
		return nil
	}
	if !d.State.Plan.CompleteModule(moduleID) {
		return nil
	}
	return d.SaveState(ctx)
}
