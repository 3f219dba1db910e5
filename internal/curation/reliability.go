package curation

import (
	"net/url"
	"strings"

	"MarketBrief/internal/domain"
)

// Domain sets for source reliability. Matching is substring-on-host, so
// subdomains like www.reuters.com resolve without extra entries.
var (
	wireDomains       = []string{"reuters.com", "apnews.com", "bloomberg.com", "wsj.com", "ft.com"}
	mainstreamDomains = []string{"cnbc.com", "bbc.co.uk", "marketwatch.com", "investing.com", "yahoo.com"}
)

// TierFor maps a candidate's origin address to a reliability tier. Total
// over every input: malformed URLs resolve to TierBlog.
func TierFor(rawURL string) domain.Tier {
	host := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		host = u.Host
	}

	for _, d := range wireDomains {
		if strings.Contains(host, d) {
			return domain.TierWire
		}
	}
	for _, d := range mainstreamDomains {
		if strings.Contains(host, d) {
			return domain.TierMainstream
		}
	}
	return domain.TierBlog
}
