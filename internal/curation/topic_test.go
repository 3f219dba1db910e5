package curation

import (
	"testing"

	"MarketBrief/internal/domain"
)

func testKeywords() map[string][]string {
	return map[string][]string{
		"macro":    {"fed", "cpi"},
		"earnings": {"guidance", "earnings"},
		"analyst":  {"downgrade"},
		"mna":      {"merger"},
		"energy":   {"opec"},
		"crypto":   {"bitcoin"},
	}
}

func TestClassifyExclusive(t *testing.T) {
	t.Parallel()

	cases := []struct {
		title string
		body  string
		want  domain.Bucket
	}{
		{"CPI comes in hot", "", domain.BucketMacro},
		{"Acme beats guidance", "", domain.BucketEarnings},
		{"Broker downgrade hits shares", "", domain.BucketAnalyst},
		{"Merger talks confirmed", "", domain.BucketMNA},
		{"OPEC trims output", "", domain.BucketEnergy},
		{"Bitcoin rallies", "", domain.BucketCrypto},
		{"Quiet day on the markets", "nothing notable", domain.BucketOther},
		{"", "", domain.BucketOther},
	}

	for _, tc := range cases {
		if got := Classify(tc.title, tc.body, testKeywords()); got != tc.want {
			t.Fatalf("Classify(%q) = %s, want %s", tc.title, got, tc.want)
		}
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	t.Parallel()

	// Text matching both macro and crypto keywords resolves to macro,
	// the earlier bucket in the fixed scan order.
	got := Classify("Fed decision rattles bitcoin", "", testKeywords())
	if got != domain.BucketMacro {
		t.Fatalf("expected macro to win priority, got %s", got)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	t.Parallel()

	got := Classify("GUIDANCE RAISED", "", testKeywords())
	if got != domain.BucketEarnings {
		t.Fatalf("expected earnings, got %s", got)
	}
}

func TestClassifyBodyMatches(t *testing.T) {
	t.Parallel()

	got := Classify("Headline without keywords", "details mention a merger", testKeywords())
	if got != domain.BucketMNA {
		t.Fatalf("expected mna from body match, got %s", got)
	}
}
