package curation

import (
	"time"

	"MarketBrief/internal/domain"
)

// Dedup drops candidates published strictly before the cutoff and keeps the
// first occurrence of each dedup key, preserving input order. Candidates
// without a timestamp are treated as always fresh.
func Dedup(items []domain.Candidate, cutoff time.Time) []domain.Candidate {
	kept := make([]domain.Candidate, 0, len(items))
	seen := map[string]struct{}{}

	for _, item := range items {
		if !item.PublishedAt.IsZero() && item.PublishedAt.Before(cutoff) {
			continue
		}
		if _, ok := seen[item.DedupKey]; ok {
			continue
		}
		seen[item.DedupKey] = struct{}{}
		kept = append(kept, item)
	}

	return kept
}
