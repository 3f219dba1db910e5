package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"MarketBrief/internal/config"
	"MarketBrief/internal/curation"
	"MarketBrief/internal/domain"
	"MarketBrief/internal/ports"
)

// PipelineDeps wires all driven adapters into the curation pipeline.
type PipelineDeps struct {
	Feeds       ports.FeedSource
	Tweets      ports.TweetSource
	FeedURLs    []string
	Handles     []string
	Weights     config.WeightsConfig
	Lookback    time.Duration
	MinTopScore float64
	SectionCap  int
	Logger      *slog.Logger
}

// Pipeline implements the digest curation workflow: fetch, normalize,
// deduplicate, annotate, assemble.
type Pipeline struct {
	feeds       ports.FeedSource
	tweets      ports.TweetSource
	feedURLs    []string
	handles     []string
	weights     config.WeightsConfig
	lookback    time.Duration
	minTopScore float64
	sectionCap  int
	logger      *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		feeds:       deps.Feeds,
		tweets:      deps.Tweets,
		feedURLs:    deps.FeedURLs,
		handles:     deps.Handles,
		weights:     deps.Weights,
		lookback:    deps.Lookback,
		minTopScore: deps.MinTopScore,
		sectionCap:  deps.SectionCap,
		logger:      deps.Logger,
	}
}

// Run builds the digest document for the given moment. A failing source
// degrades content but never aborts the run: the document reflects whatever
// feeds succeeded.
func (p *Pipeline) Run(ctx context.Context, now time.Time) (domain.Document, error) {
	cutoff := now.Add(-p.lookback)

	raw := p.fetchAll(ctx)

	candidates := make([]domain.Candidate, 0, len(raw))
	for _, item := range raw {
		candidates = append(candidates, curation.Normalize(item))
	}
	candidates = curation.Dedup(candidates, cutoff)

	annotated := make([]domain.Annotated, 0, len(candidates))
	for _, c := range candidates {
		text := c.Body
		if text == "" {
			text = c.Title
		}
		annotated = append(annotated, domain.Annotated{
			Candidate: c,
			Tier:      curation.TierFor(c.Link),
			Score:     curation.Score(c.Title, c.Body, c.Link, p.weights),
			Bucket:    curation.Classify(c.Title, c.Body, p.weights.Keywords),
			Bullets:   curation.Summarize(text, curation.DefaultMaxBullets),
		})
	}

	doc := domain.Document{
		Title:       "Daily Market Brief",
		GeneratedAt: now,
		Sections: curation.Assemble(annotated, curation.AssembleOptions{
			MinTopScore:        p.minTopScore,
			MaxItemsPerSection: p.sectionCap,
		}),
		Tweets: p.fetchTweets(ctx),
	}

	p.debug("pipeline done", "raw", len(raw), "unique", len(candidates),
		"sections", len(doc.Sections), "tweets", len(doc.Tweets))
	return doc, nil
}

// fetchAll pulls every configured feed concurrently. Each feed is an
// independent failure domain; results are flattened back in feed
// declaration order so downstream dedup stays deterministic.
func (p *Pipeline) fetchAll(ctx context.Context) []domain.RawItem {
	if p.feeds == nil || len(p.feedURLs) == 0 {
		return nil
	}

	perFeed := make([][]domain.RawItem, len(p.feedURLs))
	var wg sync.WaitGroup
	for i, feedURL := range p.feedURLs {
		wg.Add(1)
		go func(i int, feedURL string) {
			defer wg.Done()
			items, err := p.feeds.Fetch(ctx, feedURL)
			if err != nil {
				p.warn("feed failed", "feed", feedURL, "error", err)
				return
			}
			perFeed[i] = items
		}(i, feedURL)
	}
	wg.Wait()

	var all []domain.RawItem
	for _, items := range perFeed {
		all = append(all, items...)
	}
	return all
}

func (p *Pipeline) fetchTweets(ctx context.Context) []domain.Tweet {
	if p.tweets == nil || len(p.handles) == 0 {
		return nil
	}

	tweets, err := p.tweets.Fetch(ctx, p.handles)
	if err != nil {
		p.warn("tweet fetch failed", "error", err)
		return nil
	}
	return tweets
}

func (p *Pipeline) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
