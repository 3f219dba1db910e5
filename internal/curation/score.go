package curation

import (
	"regexp"
	"strings"

	"MarketBrief/internal/config"
)

// percentExpr spots percentage-like figures (7%, 12.5%) as magnitude hints.
var percentExpr = regexp.MustCompile(`\b\d{1,2}(\.\d)?%`)

// Score computes the relevance score of a candidate from its source tier
// weight, keyword hits, and magnitude cues. Keyword matches are credited
// across every bucket, not only the candidate's eventual topic: score
// measures overall salience, classification is a separate concern.
// Deterministic for identical inputs.
func Score(title, body, link string, weights config.WeightsConfig) float64 {
	text := strings.ToLower(title + " " + body)

	score, ok := weights.Sources[string(TierFor(link))]
	if !ok {
		score = 1.0
	}

	for _, kws := range weights.Keywords {
		for _, kw := range kws {
			if strings.Contains(text, strings.ToLower(kw)) {
				score += 1.0
			}
		}
	}

	if percentExpr.MatchString(text) {
		score += 0.5
	}

	return score
}
