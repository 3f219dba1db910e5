package render

import (
	"fmt"
	"html/template"
	"strings"

	"MarketBrief/internal/domain"
)

var pageTemplate = template.Must(template.New("digest").Parse(`<html><head><meta charset="utf-8">
<style>
  body { font-family: -apple-system, Segoe UI, Roboto, Helvetica, Arial, sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; }
  h1, h2 { margin-top: 1.6rem; }
  a { text-decoration: none; }
  ul { margin: 0.4rem 0; }
  .meta { color: #666; font-size: 0.9rem; }
</style></head><body>
<h1>{{.Title}} — {{.Timestamp}}</h1>
{{range .Sections}}<h2>{{.Title}}</h2>
{{range .Entries}}<p><strong>{{.Title}}</strong></p>
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>
{{end}}<p class="meta">{{if .Link}}<a href="{{.Link}}">Read</a> — {{end}}Score: {{.ScoreText}}</p>
{{end}}{{end}}{{if .Tweets}}<h2>Notable tweets</h2>
<ul>{{range .Tweets}}<li><strong>@{{.Handle}}</strong>: {{.Text}} (<a href="{{.URL}}">link</a>)</li>{{end}}</ul>
{{end}}</body></html>
`))

type pageData struct {
	Title     string
	Timestamp string
	Sections  []sectionData
	Tweets    []domain.Tweet
}

type sectionData struct {
	Title   string
	Entries []entryData
}

type entryData struct {
	Title     string
	Link      string
	Bullets   []string
	ScoreText string
}

// HTML renders the digest as a standalone styled page. Entry text passes
// through html/template escaping, so raw feed content cannot inject markup.
func HTML(doc domain.Document) string {
	data := pageData{
		Title:     doc.Title,
		Timestamp: doc.GeneratedAt.Format("Monday, 02 January 2006 15:04 MST"),
		Tweets:    doc.Tweets,
	}
	for _, section := range doc.Sections {
		sec := sectionData{Title: section.Title}
		for _, entry := range section.Entries {
			sec.Entries = append(sec.Entries, entryData{
				Title:     entry.Title,
				Link:      entry.Link,
				Bullets:   entry.Bullets,
				ScoreText: fmt.Sprintf("%.1f", entry.Score),
			})
		}
		data.Sections = append(data.Sections, sec)
	}

	var b strings.Builder
	if err := pageTemplate.Execute(&b, data); err != nil {
		return "<html><body></body></html>"
	}
	return b.String()
}
