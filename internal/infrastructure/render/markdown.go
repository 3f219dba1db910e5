package render

import (
	"fmt"
	"strings"

	"MarketBrief/internal/domain"
)

// Markdown renders the digest document. Section and entry order is passed
// through exactly as assembled.
func Markdown(doc domain.Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s — %s\n\n", doc.Title, doc.GeneratedAt.Format("Monday, 02 January 2006 15:04 MST"))

	for _, section := range doc.Sections {
		fmt.Fprintf(&b, "## %s\n\n", section.Title)
		for _, entry := range section.Entries {
			fmt.Fprintf(&b, "**%s**  \n", entry.Title)
			for _, bullet := range entry.Bullets {
				fmt.Fprintf(&b, "- %s\n", bullet)
			}
			if entry.Link != "" {
				fmt.Fprintf(&b, "[Read](%s) — _Score: %.1f_\n\n", entry.Link, entry.Score)
			} else {
				fmt.Fprintf(&b, "_Score: %.1f_\n\n", entry.Score)
			}
		}
	}

	if len(doc.Tweets) > 0 {
		b.WriteString("## Notable tweets\n\n")
		for _, tw := range doc.Tweets {
			fmt.Fprintf(&b, "- **@%s**: %s ([link](%s))\n", tw.Handle, tw.Text, tw.URL)
		}
	}

	return b.String()
}
