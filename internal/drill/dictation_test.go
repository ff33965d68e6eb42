package drill

import "testing"

func TestDictation_ExactMatchCaseInsensitive(t *testing.T) {
	d := NewDictation("I would like a coffee.")
	d.SetInput("i would like a coffee")

	if !d.Check() {
		t.Fatal("expected check to pass")
	}
	if d.Status() != StatusCorrect {
		t.Errorf("status = %v, want StatusCorrect", d.Status())
	}
}

func TestDictation_MismatchThenCorrection(t *testing.T) {
	d := NewDictation("I would like a coffee.")

	d.SetInput("I would like tea")
	if d.Check() {
		t.Fatal("expected check to fail")
	}
	if d.Status() != StatusIncorrect {
		t.Errorf("status = %v, want StatusIncorrect", d.Status())
	}

	// Editing clears the incorrect flag before any new check.
	d.SetInput("I would like a coffee")
	if d.Status() != StatusIdle {
		t.Errorf("status after edit = %v, want StatusIdle", d.Status())
	}

	if !d.Check() {
		t.Fatal("expected corrected input to pass")
	}
	if d.Status() != StatusCorrect {
		t.Errorf("status = %v, want StatusCorrect", d.Status())
	}
}

func TestDictation_LockAfterCorrect(t *testing.T) {
	d := NewDictation("good morning")
	d.SetInput("good morning")
	d.Check()

	d.SetInput("garbage")
	if d.Status() != StatusCorrect {
		t.Errorf("status after post-correct edit = %v, want StatusCorrect", d.Status())
	}
	if d.Input() != "good morning" {
		t.Errorf("input mutated after correct: %q", d.Input())
	}
}

func TestDictation_EmptyInputIsMismatch(t *testing.T) {
	d := NewDictation("good morning")
	if d.Check() {
		t.Error("empty input should not match")
	}
	if d.Status() != StatusIncorrect {
		t.Errorf("status = %v, want StatusIncorrect", d.Status())
	}
}

func TestDictation_SubmitOnEnter(t *testing.T) {
	d := NewDictation("good morning")

	d.SetInput("good mornin")
	if got := d.SubmitOnEnter(); got != SubmitChecked {
		t.Errorf("SubmitOnEnter on idle = %v, want SubmitChecked", got)
	}
	if d.Status() != StatusIncorrect {
		t.Errorf("status = %v, want StatusIncorrect", d.Status())
	}

	d.SetInput("Good Morning!")
	if got := d.SubmitOnEnter(); got != SubmitChecked {
		t.Errorf("SubmitOnEnter = %v, want SubmitChecked", got)
	}
	if d.Status() != StatusCorrect {
		t.Fatalf("status = %v, want StatusCorrect", d.Status())
	}

	// Enter while correct requests the next card.
	if got := d.SubmitOnEnter(); got != SubmitAdvance {
		t.Errorf("SubmitOnEnter when correct = %v, want SubmitAdvance", got)
	}
}
