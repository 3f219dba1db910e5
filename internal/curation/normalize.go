package curation

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"MarketBrief/internal/domain"
)

var whitespaceExpr = regexp.MustCompile(`\s+`)

// Normalize builds a Candidate from a raw feed record: markup is stripped,
// whitespace collapsed, and a stable dedup key derived. Pure function.
func Normalize(raw domain.RawItem) domain.Candidate {
	title := CleanText(raw.Title)
	body := CleanText(raw.Summary)
	link := strings.TrimSpace(raw.Link)

	return domain.Candidate{
		Title:       title,
		Body:        body,
		Link:        link,
		PublishedAt: raw.Published,
		DedupKey:    dedupKey(title, body, link),
	}
}

// CleanText strips markup tags and collapses consecutive whitespace
// (including newlines) to single spaces. Idempotent on already-clean text.
func CleanText(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	text := raw
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw)); err == nil {
		var b strings.Builder
		for _, node := range doc.Nodes {
			collectText(node, &b)
		}
		text = b.String()
	}

	return strings.TrimSpace(whitespaceExpr.ReplaceAllString(text, " "))
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// dedupKey prefers the canonical link; content hash is the fallback so
// link-less items still deduplicate on identical text.
func dedupKey(title, body, link string) string {
	if link != "" {
		return link
	}
	sum := md5.Sum([]byte(title + body))
	return hex.EncodeToString(sum[:])
}
