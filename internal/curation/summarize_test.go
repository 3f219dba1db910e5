package curation

import (
	"strings"
	"testing"
)

func TestSummarizePicksCueSentences(t *testing.T) {
	t.Parallel()

	text := "The company held its annual meeting. Revenue rose 12% on strong demand. " +
		"The CEO thanked employees. Guidance was raised for the full year."

	bullets := Summarize(text, 3)
	if len(bullets) != 2 {
		t.Fatalf("expected 2 cue bullets, got %d: %v", len(bullets), bullets)
	}
	if !strings.Contains(bullets[0], "12%") {
		t.Fatalf("expected first bullet about 12%%, got %q", bullets[0])
	}
	if !strings.Contains(strings.ToLower(bullets[1]), "guidance") {
		t.Fatalf("expected second bullet about guidance, got %q", bullets[1])
	}
}

func TestSummarizeFallbackToLeadingSentences(t *testing.T) {
	t.Parallel()

	text := "Nothing quantitative here. Just a calm day. Markets drifted sideways. Traders went home early."

	bullets := Summarize(text, 3)
	if len(bullets) != 3 {
		t.Fatalf("expected 3 fallback bullets, got %d", len(bullets))
	}
	if bullets[0] != "Nothing quantitative here." {
		t.Fatalf("unexpected first bullet: %q", bullets[0])
	}
}

func TestSummarizeMaxBullets(t *testing.T) {
	t.Parallel()

	text := "Revenue rose 5%. Profit rose 6%. Margins rose 7%. Dividends rose 8%."
	bullets := Summarize(text, 2)
	if len(bullets) != 2 {
		t.Fatalf("expected cap of 2 bullets, got %d", len(bullets))
	}
}

func TestSummarizeNonEmptyForNonEmptyInput(t *testing.T) {
	t.Parallel()

	bullets := Summarize("single sentence without a terminator", 3)
	if len(bullets) != 1 {
		t.Fatalf("expected one bullet, got %d", len(bullets))
	}
	if bullets[0] == "" {
		t.Fatalf("bullet must be non-empty")
	}
}

func TestSummarizeEmptyInput(t *testing.T) {
	t.Parallel()

	if got := Summarize("", 3); len(got) != 0 {
		t.Fatalf("expected no bullets for empty input, got %v", got)
	}
}

func TestSummarizeTruncatesLongInput(t *testing.T) {
	t.Parallel()

	// The cue sentence sits past the 1200-character window, so the
	// fallback leading sentences win.
	long := strings.Repeat("Filler sentence with no cues at all. ", 40) +
		"Revenue rose 40% in the final stretch."

	bullets := Summarize(long, 3)
	for _, b := range bullets {
		if strings.Contains(b, "40%") {
			t.Fatalf("cue sentence beyond the truncation window was picked: %q", b)
		}
	}
}

func TestSummarizeDefaultLimit(t *testing.T) {
	t.Parallel()

	text := "Up 1%. Up 2%. Up 3%. Up 4%. Up 5%."
	bullets := Summarize(text, 0)
	if len(bullets) != DefaultMaxBullets {
		t.Fatalf("expected default limit %d, got %d", DefaultMaxBullets, len(bullets))
	}
}
