package curation

import (
	"testing"

	"MarketBrief/internal/domain"
)

func annotated(title string, score float64, bucket domain.Bucket) domain.Annotated {
	return domain.Annotated{
		Candidate: domain.Candidate{Title: title, DedupKey: title},
		Score:     score,
		Bucket:    bucket,
	}
}

func TestAssembleTopMovers(t *testing.T) {
	t.Parallel()

	items := []domain.Annotated{
		annotated("low", 1.0, domain.BucketMacro),
		annotated("high", 4.0, domain.BucketCrypto),
		annotated("mid", 2.5, domain.BucketEarnings),
	}

	sections := Assemble(items, AssembleOptions{MinTopScore: 2.0, MaxItemsPerSection: 12})
	if sections[0].Title != "Top movers" {
		t.Fatalf("expected Top movers first, got %q", sections[0].Title)
	}

	top := sections[0].Entries
	if len(top) != 2 {
		t.Fatalf("expected 2 top movers, got %d", len(top))
	}
	if top[0].Title != "high" || top[1].Title != "mid" {
		t.Fatalf("unexpected top mover order: %q, %q", top[0].Title, top[1].Title)
	}
}

func TestAssembleTopMoversDuplicateInTopicalSection(t *testing.T) {
	t.Parallel()

	items := []domain.Annotated{annotated("big", 5.0, domain.BucketCrypto)}
	sections := Assemble(items, AssembleOptions{MinTopScore: 2.0, MaxItemsPerSection: 12})

	if len(sections) != 2 {
		t.Fatalf("expected Top movers plus Crypto, got %d sections", len(sections))
	}
	if sections[1].Title != "Crypto" || sections[1].Entries[0].Title != "big" {
		t.Fatalf("high scorer must also appear in its topical section")
	}
}

func TestAssembleSectionOrderAndOmission(t *testing.T) {
	t.Parallel()

	items := []domain.Annotated{
		annotated("c", 1.0, domain.BucketCrypto),
		annotated("m", 1.0, domain.BucketMacro),
	}

	sections := Assemble(items, AssembleOptions{MinTopScore: 10.0, MaxItemsPerSection: 12})
	if len(sections) != 2 {
		t.Fatalf("expected exactly the two populated sections, got %d", len(sections))
	}
	if sections[0].Title != "Macro / Policy" || sections[1].Title != "Crypto" {
		t.Fatalf("sections out of declaration order: %q, %q", sections[0].Title, sections[1].Title)
	}
}

func TestAssembleSectionCapAndSort(t *testing.T) {
	t.Parallel()

	items := []domain.Annotated{
		annotated("a", 1.0, domain.BucketEnergy),
		annotated("b", 3.0, domain.BucketEnergy),
		annotated("c", 2.0, domain.BucketEnergy),
	}

	sections := Assemble(items, AssembleOptions{MinTopScore: 10.0, MaxItemsPerSection: 2})
	entries := sections[0].Entries
	if len(entries) != 2 {
		t.Fatalf("expected cap of 2, got %d", len(entries))
	}
	if entries[0].Title != "b" || entries[1].Title != "c" {
		t.Fatalf("entries not sorted by descending score: %q, %q", entries[0].Title, entries[1].Title)
	}
}

func TestAssembleStableTies(t *testing.T) {
	t.Parallel()

	items := []domain.Annotated{
		annotated("first", 2.0, domain.BucketOther),
		annotated("second", 2.0, domain.BucketOther),
		annotated("third", 2.0, domain.BucketOther),
	}

	sections := Assemble(items, AssembleOptions{MinTopScore: 10.0, MaxItemsPerSection: 12})
	entries := sections[0].Entries
	for i, want := range []string{"first", "second", "third"} {
		if entries[i].Title != want {
			t.Fatalf("tie order not preserved at %d: got %q", i, entries[i].Title)
		}
	}
}

func TestAssembleEmptyInput(t *testing.T) {
	t.Parallel()

	sections := Assemble(nil, AssembleOptions{MinTopScore: 2.0, MaxItemsPerSection: 12})
	if len(sections) != 0 {
		t.Fatalf("expected zero sections, got %d", len(sections))
	}
}

func TestAssembleOtherCatchesUnmapped(t *testing.T) {
	t.Parallel()

	specs := []SectionSpec{
		{Title: "Macro / Policy", Buckets: []domain.Bucket{domain.BucketMacro}},
		{Title: "Other", Buckets: []domain.Bucket{domain.BucketOther}},
	}
	items := []domain.Annotated{
		annotated("m", 1.0, domain.BucketMacro),
		annotated("stray", 1.0, domain.BucketCrypto),
	}

	sections := Assemble(items, AssembleOptions{MinTopScore: 10.0, MaxItemsPerSection: 12, Sections: specs})
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	other := sections[1]
	if other.Title != "Other" || len(other.Entries) != 1 || other.Entries[0].Title != "stray" {
		t.Fatalf("unmapped bucket not caught by Other: %+v", other)
	}
}
