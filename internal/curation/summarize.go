package curation

import (
	"regexp"
	"strings"
)

const (
	// DefaultMaxBullets bounds summary length when callers pass no limit.
	DefaultMaxBullets = 3

	// summarizeLimit caps the text inspected per candidate, bounding
	// worst-case cost on pathological inputs.
	summarizeLimit = 1200
)

// sentenceBoundary marks sentence-final punctuation followed by whitespace.
var sentenceBoundary = regexp.MustCompile(`[.!?]\s+`)

// cueTokens flag sentences worth surfacing: magnitude figures, financial
// events, central-bank acronyms.
var cueTokens = []string{
	"%", "billion", "million", "guidance", "beats", "misses", "raises",
	"cuts", "sec", "ecb", "boe", "fed", "cpi", "nfp", "merger",
	"acquisition", "downgrade", "upgrade",
}

// Summarize extracts up to maxBullets sentences containing a cue token, in
// original order. If no sentence qualifies, the leading sentences are used
// instead, so non-empty input always yields at least one bullet.
func Summarize(text string, maxBullets int) []string {
	if maxBullets <= 0 {
		maxBullets = DefaultMaxBullets
	}

	if runes := []rune(text); len(runes) > summarizeLimit {
		text = string(runes[:summarizeLimit])
	}

	sentences := splitSentences(text)

	var picks []string
	for _, s := range sentences {
		if len(picks) >= maxBullets {
			break
		}
		if containsCue(s) {
			picks = append(picks, s)
		}
	}

	if len(picks) == 0 {
		if len(sentences) > maxBullets {
			sentences = sentences[:maxBullets]
		}
		picks = sentences
	}

	bullets := make([]string, 0, len(picks))
	for _, p := range picks {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			bullets = append(bullets, trimmed)
		}
	}
	return bullets
}

func containsCue(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, cue := range cueTokens {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}

// splitSentences cuts text at sentence-final punctuation, keeping the
// punctuation with the preceding sentence.
func splitSentences(text string) []string {
	matches := sentenceBoundary.FindAllStringIndex(text, -1)

	var sentences []string
	start := 0
	for _, m := range matches {
		sentences = append(sentences, text[start:m[0]+1])
		start = m[1]
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences
}
