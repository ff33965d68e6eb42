package align

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"morning", "mornin", 1},
		{"good", "banana", 6},
		{"a", "b", 1},
		{"café", "cafe", 1},
	}

	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDistance_Identity(t *testing.T) {
	for _, s := range []string{"", "x", "hello", "güten morgen"} {
		if got := Distance(s, s); got != 0 {
			t.Errorf("Distance(%q, %q) = %d, want 0", s, s, got)
		}
	}
}

func TestDistance_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"good", "banana"},
		{"morning", "mornin"},
		{"", "word"},
		{"abcdef", "azced"},
	}
	for _, p := range pairs {
		ab := Distance(p[0], p[1])
		ba := Distance(p[1], p[0])
		if ab != ba {
			t.Errorf("Distance(%q, %q) = %d but Distance(%q, %q) = %d", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}
