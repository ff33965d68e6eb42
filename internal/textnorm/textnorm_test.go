package textnorm

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lowercase", "Hello", "hello"},
		{"punctuation", "Hello, World!", "hello world"},
		{"apostrophe", "I'd like a coffee.", "id like a coffee"},
		{"whitespace collapse", "good   morning\tsir", "good morning sir"},
		{"leading trailing", "  hi there  ", "hi there"},
		{"underscore stripped", "snake_case", "snakecase"},
		{"only punctuation", "?!...", ""},
		{"digits kept", "Gate 42, please", "gate 42 please"},
		{"unicode letters", "Café au Lait", "café au lait"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Hello, World!",
		"  Multiple   spaces  everywhere ",
		"I'd like a coffee.",
		"ALL CAPS? really...",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalize_CasePunctuationInvariance(t *testing.T) {
	if Normalize("Hello, World!") != Normalize("hello world") {
		t.Errorf("expected %q and %q to normalize equally", "Hello, World!", "hello world")
	}
}

func TestFields(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"good morning sir", []string{"good", "morning", "sir"}},
		{"Good Morning, Sir!", []string{"good", "morning", "sir"}},
		{"", nil},
		{"...", nil},
		{"one", []string{"one"}},
	}

	for _, tt := range tests {
		got := Fields(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Fields(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
