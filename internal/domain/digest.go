package domain

import "time"

// Tier is the coarse trust classification of a candidate's source domain.
type Tier string

const (
	TierWire       Tier = "wire"
	TierMainstream Tier = "mainstream"
	TierBlog       Tier = "blog"
)

// Bucket is the mutually-exclusive topical category assigned to a candidate.
type Bucket string

const (
	BucketMacro    Bucket = "macro"
	BucketEarnings Bucket = "earnings"
	BucketAnalyst  Bucket = "analyst"
	BucketMNA      Bucket = "mna"
	BucketEnergy   Bucket = "energy"
	BucketCrypto   Bucket = "crypto"
	BucketOther    Bucket = "other"
)

// RawItem is one record as delivered by a feed source, before normalization.
type RawItem struct {
	Title     string
	Link      string
	Summary   string
	Published time.Time
}

// Candidate is one ingested news item after normalization; immutable from
// then on. A zero PublishedAt means the source provided no timestamp.
type Candidate struct {
	Title       string
	Body        string
	Link        string
	PublishedAt time.Time
	DedupKey    string
}

// Annotated carries the pipeline-computed fields alongside the candidate.
// Each field is set exactly once and never mutated afterward.
type Annotated struct {
	Candidate
	Tier    Tier
	Score   float64
	Bucket  Bucket
	Bullets []string
}

// Tweet is a social post appended to the digest verbatim, outside the
// scoring and classification pipeline.
type Tweet struct {
	Handle string
	Text   string
	URL    string
}

// Section is one titled group of ranked entries in the final document.
type Section struct {
	Title   string
	Entries []Annotated
}

// Document is the assembled digest handed to rendering and delivery.
// Section and entry order is a contract downstream must not reorder.
type Document struct {
	Title       string
	GeneratedAt time.Time
	Sections    []Section
	Tweets      []Tweet
}
