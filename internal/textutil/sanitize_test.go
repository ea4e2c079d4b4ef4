package textutil_test

import (
	"testing"

	"playbox/internal/textutil"
)

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Red Apple", "red_apple"},
		{"keeps digits and dashes", "step-2 mix", "step-2_mix"},
		{"collapses punctuation runs", "What's this?!", "what_s_this"},
		{"trims edge underscores", "  ...hello...  ", "hello"},
		{"empty", "", "unknown"},
		{"only punctuation", "!!!", "unknown"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := textutil.SanitizeToken(tc.input); got != tc.want {
				t.Fatalf("SanitizeToken(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestAudioKeyStable(t *testing.T) {
	first := textutil.AudioKey("Good job!", "en")
	second := textutil.AudioKey("Good job!", "en")
	if first != second {
		t.Fatalf("expected stable keys, got %q and %q", first, second)
	}
	if first != "good_job_en" {
		t.Fatalf("unexpected key %q", first)
	}
}

func TestAudioKeyDefaultsLanguage(t *testing.T) {
	if got := textutil.AudioKey("hello", ""); got != "hello_en" {
		t.Fatalf("expected en default, got %q", got)
	}
	if got := textutil.AudioKey("hello", " ES "); got != "hello_es" {
		t.Fatalf("expected lowercase language tag, got %q", got)
	}
}

func TestNormalizeNarration(t *testing.T) {
	if textutil.NormalizeNarration("  Good Job!  ") != "good job!" {
		t.Fatalf("unexpected normalization")
	}
}
