package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"MarketBrief/internal/domain"
	"MarketBrief/internal/ports"
)

// RSSSource fetches and parses RSS/Atom feeds into raw candidate records.
type RSSSource struct {
	parser *gofeed.Parser
}

var _ ports.FeedSource = (*RSSSource)(nil)

// NewRSSSource wires an HTTP client; a nil client gets a sane timeout.
func NewRSSSource(client *http.Client) *RSSSource {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}

	parser := gofeed.NewParser()
	parser.Client = client
	parser.UserAgent = "MarketBrief/1.0"

	return &RSSSource{parser: parser}
}

// Fetch returns the feed's entries in document order. Missing fields come
// back as empty strings; a missing publication time stays zero so the
// deduplicator treats the entry as always fresh.
func (s *RSSSource) Fetch(ctx context.Context, feedURL string) ([]domain.RawItem, error) {
	parsed, err := s.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	items := make([]domain.RawItem, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		items = append(items, domain.RawItem{
			Title:     entry.Title,
			Link:      entry.Link,
			Summary:   pickSummary(entry),
			Published: pickPublished(entry),
		})
	}
	return items, nil
}

func pickSummary(entry *gofeed.Item) string {
	if entry.Description != "" {
		return entry.Description
	}
	return entry.Content
}

func pickPublished(entry *gofeed.Item) time.Time {
	if entry.PublishedParsed != nil {
		return *entry.PublishedParsed
	}
	if entry.UpdatedParsed != nil {
		return *entry.UpdatedParsed
	}
	return time.Time{}
}
