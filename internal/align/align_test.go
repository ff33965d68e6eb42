package align

import "testing"

func classes(scores []WordScore) []Class {
	out := make([]Class, len(scores))
	for i, s := range scores {
		out[i] = s.Class
	}
	return out
}

func TestWords_ExactMatch(t *testing.T) {
	scores := Words("good morning sir", "good morning sir")
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}
	for i, s := range scores {
		if s.Class != Exact {
			t.Errorf("word %d (%q): class = %v, want Exact", i, s.Word, s.Class)
		}
		if s.Distance != 0 {
			t.Errorf("word %d (%q): distance = %d, want 0", i, s.Word, s.Distance)
		}
	}
}

func TestWords_NearMiss(t *testing.T) {
	scores := Words("good morning sir", "good mornin sir")
	want := []Class{Exact, Close, Exact}
	got := classes(scores)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d (%q): class = %v, want %v", i, scores[i].Word, got[i], want[i])
		}
	}
	if scores[1].Distance != 1 {
		t.Errorf("morning/mornin distance = %d, want 1", scores[1].Distance)
	}
}

func TestWords_GrossMismatch(t *testing.T) {
	scores := Words("good morning sir", "banana")
	for i, s := range scores {
		if s.Class != Mismatch {
			t.Errorf("word %d (%q): class = %v, want Mismatch", i, s.Word, s.Class)
		}
	}
}

func TestWords_NormalizesBothSides(t *testing.T) {
	scores := Words("Good morning, Sir!", "GOOD MORNING SIR")
	for i, s := range scores {
		if s.Class != Exact {
			t.Errorf("word %d (%q): class = %v, want Exact", i, s.Word, s.Class)
		}
	}
}

func TestWords_WindowBound(t *testing.T) {
	// "sir" appears in the transcript but four positions past its expected
	// index, outside the radius-2 window, so it gets no credit.
	scores := Words("sir good morning", "good morning one two sir")
	if scores[0].Class == Exact {
		t.Errorf("word %q matched outside its window; class = %v", scores[0].Word, scores[0].Class)
	}
}

func TestWords_ToleratesReordering(t *testing.T) {
	// One position off is well inside the window.
	scores := Words("good morning sir", "morning good sir")
	for i, s := range scores {
		if s.Class != Exact {
			t.Errorf("word %d (%q): class = %v, want Exact", i, s.Word, s.Class)
		}
	}
}

func TestWords_EmptyInputs(t *testing.T) {
	if got := Words("", "anything"); len(got) != 0 {
		t.Errorf("empty target: got %d scores, want 0", len(got))
	}

	scores := Words("a big word", "")
	for i, s := range scores {
		if s.Class != Mismatch {
			t.Errorf("word %d (%q) against empty transcript: class = %v, want Mismatch", i, s.Word, s.Class)
		}
	}
}

func TestClassify_Thresholds(t *testing.T) {
	tests := []struct {
		word string
		dist int
		want Class
	}{
		{"morning", 0, Exact},
		{"morning", 1, Close},
		{"morning", 2, Close},
		{"morning", 3, Close}, // 3 <= len("morning")/2
		{"morning", 4, Mismatch},
		{"hi", 1, Close},
		{"hi", 3, Mismatch},
		{"internationally", 7, Close}, // long word: half-length rule
		{"internationally", 8, Mismatch},
	}

	for _, tt := range tests {
		if got := classify(tt.word, tt.dist); got != tt.want {
			t.Errorf("classify(%q, %d) = %v, want %v", tt.word, tt.dist, got, tt.want)
		}
	}
}
