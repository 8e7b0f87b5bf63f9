// ABOUTME: Site adapter for Wikipedia articles
// ABOUTME: Strips editing chrome and reference markers before extraction

package adapters

import (
	"net/url"
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

var wikipediaLastModRe = regexp.MustCompile(`(\d{1,2} \w+ \d{4})`)

// WikipediaAdapter extracts Wikipedia articles.
type WikipediaAdapter struct{}

func (a *WikipediaAdapter) Name() string { return "wikipedia" }

func (a *WikipediaAdapter) Matches(u *url.URL) bool {
	return hostMatches(u, "wikipedia.org")
}

// PreProcess removes editing affordances and navigation boxes that would
// otherwise survive into the extracted content.
func (a *WikipediaAdapter) PreProcess(doc *goquery.Document) {
	doc.Find(".mw-editsection, .navbox, .vertical-navbox, sup.reference, .mw-jump-link, #toc").Remove()
}

func (a *WikipediaAdapter) ContentSelector() string {
	return "#mw-content-text"
}

func (a *WikipediaAdapter) Title(doc *goquery.Document) string {
	return firstText(doc, "#firstHeading", "h1")
}

func (a *WikipediaAdapter) Author(doc *goquery.Document) string {
	return "Wikipedia contributors"
}

func (a *WikipediaAdapter) PublishedAt(doc *goquery.Document) string {
	// Wikipedia has no publish date; the last-modified footer is the
	// closest signal.
	text := firstText(doc, "#footer-info-lastmod")
	if m := wikipediaLastModRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
