package curation

import (
	"strings"

	"MarketBrief/internal/domain"
)

// bucketPriority fixes the scan order for classification; the first bucket
// with a keyword hit wins, so earlier buckets shadow later ones.
var bucketPriority = []domain.Bucket{
	domain.BucketMacro,
	domain.BucketEarnings,
	domain.BucketAnalyst,
	domain.BucketMNA,
	domain.BucketEnergy,
	domain.BucketCrypto,
}

// Classify assigns exactly one topic bucket from weighted keyword
// membership, defaulting to BucketOther when nothing matches. Unlike Score,
// only the first matching bucket counts (exclusive assignment).
func Classify(title, body string, keywords map[string][]string) domain.Bucket {
	text := strings.ToLower(title + " " + body)

	for _, bucket := range bucketPriority {
		for _, kw := range keywords[string(bucket)] {
			if strings.Contains(text, strings.ToLower(kw)) {
				return bucket
			}
		}
	}

	return domain.BucketOther
}
