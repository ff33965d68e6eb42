package flow

import (
	"context"
	"testing"

	"github.com/rahulnair/lingua/internal/course"
	"github.com/rahulnair/lingua/internal/i18n"
	"github.com/rahulnair/lingua/internal/store"
)

type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func TestToggleLang(t *testing.T) {
	d := &Deps{I18n: i18n.New(i18n.EN)}
	d.ToggleLang()
	if d.I18n.Lang() != i18n.ZH {
		t.Errorf("expected zh after toggle, got %s", d.I18n.Lang())
	}
	d.ToggleLang()
	if d.I18n.Lang() != i18n.EN {
		t.Errorf("expected en after second toggle, got %s", d.I18n.Lang())
	}
}

func TestProgressWithoutPlan(t *testing.T) {
	d := &Deps{}
	completed, total := d.Progress()
	if completed != 0 || total != 0 {
		t.Errorf("expected 0/0 without a plan, got %d/%d", completed, total)
	}
}

func TestProgressCountsCompleted(t *testing.T) {
	d := &Deps{State: &course.State{Plan: &course.CoursePlan{
		Modules: []course.CourseModule{
			{ID: "m1", Status: course.StatusCompleted},
			{ID: "m2", Status: course.StatusCurrent},
			{ID: "m3", Status: course.StatusLocked},
		},
	}}}
	completed, total := d.Progress()
	if completed != 1 || total != 3 {
		t.Errorf("expected 1/3, got %d/%d", completed, total)
	}
}

func TestCompleteModulePersists(t *testing.T) {
	snaps := &mockSnapshotRepo{}
	d := &Deps{
		Snapshots: snaps,
		State: &course.State{
			Goal: "Travel to the USA",
			Plan: &course.CoursePlan{
				Modules: []course.CourseModule{
					{ID: "m1", Status: course.StatusCurrent},
					{ID: "m2", Status: course.StatusLocked},
				},
			},
		},
	}

	if err := d.CompleteModule(context.Background(), "m1"); err != nil {
		t.Fatal(err)
	}
	if d.State.Plan.Modules[0].Status != course.StatusCompleted {
		t.Error("module m1 should be completed")
	}
	if d.State.Plan.Modules[1].Status != course.StatusCurrent {
		t.Error("module m2 should become current")
	}
	if len(snaps.snapshots) != 1 {
		t.Errorf("completion should save one snapshot, got %d", len(snaps.snapshots))
	}
}

func TestCompleteModuleUnknownIDIsNoop(t *testing.T) {
	snaps := &mockSnapshotRepo{}
	d := &Deps{
		Snapshots: snaps,
		State: &course.State{Plan: &course.CoursePlan{
			Modules: []course.CourseModule{{ID: "m1", Status: course.StatusCurrent}},
		}},
	}

	if err := d.CompleteModule(context.Background(), "nope"); err != nil {
		t.Fatal(err)
	}
	if len(snaps.snapshots) != 0 {
		t.Errorf("unknown module should not save a snapshot, got %d", len(snaps.snapshots))
	}
}

func TestSaveStateWithoutStateIsNoop(t *testing.T) {
	snaps := &mockSnapshotRepo{}
	d := &Deps{Snapshots: snaps}
	if err := d.SaveState(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(snaps.snapshots) != 0 {
		t.Error("nil state should not be saved")
	}
}
