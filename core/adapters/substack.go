// ABOUTME: Site adapter for Substack newsletters

package adapters

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
)

// SubstackAdapter extracts Substack posts.
type SubstackAdapter struct{}

func (a *SubstackAdapter) Name() string { return "substack" }

func (a *SubstackAdapter) Matches(u *url.URL) bool {
	return hostMatches(u, "substack.com")
}

func (a *SubstackAdapter) ContentSelector() string {
	return ".available-content, article .body"
}

func (a *SubstackAdapter) Title(doc *goquery.Document) string {
	return firstText(doc, "h1.post-title", "article h1")
}

func (a *SubstackAdapter) Author(doc *goquery.Document) string {
	return firstText(doc, ".byline-names a", `a[rel="author"]`)
}

func (a *SubstackAdapter) PublishedAt(doc *goquery.Document) string {
	if v := firstAttr(doc, "datetime", "article time[datetime]", "time[datetime]"); v != "" {
		return v
	}
	return firstText(doc, ".post-date")
}
