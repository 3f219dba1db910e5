package curation

import (
	"sort"

	"MarketBrief/internal/domain"
)

// topMoversCap bounds the leading high-score section regardless of the
// per-section display limit.
const topMoversCap = 12

// SectionSpec maps one display section to the topic buckets it aggregates.
type SectionSpec struct {
	Title   string
	Buckets []domain.Bucket
}

// DefaultSections fixes the digest's section order. A spec containing
// BucketOther also collects candidates no earlier section claimed.
var DefaultSections = []SectionSpec{
	{Title: "Macro / Policy", Buckets: []domain.Bucket{domain.BucketMacro}},
	{Title: "Earnings & Guidance", Buckets: []domain.Bucket{domain.BucketEarnings}},
	{Title: "Analysts & Ratings", Buckets: []domain.Bucket{domain.BucketAnalyst}},
	{Title: "M&A / Activism", Buckets: []domain.Bucket{domain.BucketMNA}},
	{Title: "Energy / Commodities", Buckets: []domain.Bucket{domain.BucketEnergy}},
	{Title: "Crypto", Buckets: []domain.Bucket{domain.BucketCrypto}},
	{Title: "Other", Buckets: []domain.Bucket{domain.BucketOther}},
}

// AssembleOptions carry the thresholds and layout for section assembly.
type AssembleOptions struct {
	MinTopScore        float64
	MaxItemsPerSection int
	Sections           []SectionSpec
}

// Assemble groups annotated candidates into the ordered digest sections:
// "Top movers" first (score at or above the threshold, any bucket), then the
// topical sections in declaration order. Entries are sorted by descending
// score with ties keeping upstream order; empty sections are omitted. A
// high-scoring candidate appears both under "Top movers" and its topical
// section on purpose. Never fails; empty input yields zero sections.
func Assemble(items []domain.Annotated, opts AssembleOptions) []domain.Section {
	specs := opts.Sections
	if len(specs) == 0 {
		specs = DefaultSections
	}

	var sections []domain.Section

	var top []domain.Annotated
	for _, item := range items {
		if item.Score >= opts.MinTopScore {
			top = append(top, item)
		}
	}
	if len(top) > 0 {
		sections = append(sections, domain.Section{
			Title:   "Top movers",
			Entries: rank(top, topMoversCap),
		})
	}

	placed := make([]bool, len(items))
	for _, spec := range specs {
		members := map[domain.Bucket]struct{}{}
		catchAll := false
		for _, b := range spec.Buckets {
			members[b] = struct{}{}
			if b == domain.BucketOther {
				catchAll = true
			}
		}

		var entries []domain.Annotated
		for i, item := range items {
			_, ok := members[item.Bucket]
			if !ok && !(catchAll && !placed[i]) {
				continue
			}
			placed[i] = true
			entries = append(entries, item)
		}

		if len(entries) == 0 {
			continue
		}
		sections = append(sections, domain.Section{
			Title:   spec.Title,
			Entries: rank(entries, opts.MaxItemsPerSection),
		})
	}

	return sections
}

// rank sorts by descending score (stable, so score ties keep upstream
// order) and caps the result.
func rank(items []domain.Annotated, limit int) []domain.Annotated {
	ranked := make([]domain.Annotated, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
