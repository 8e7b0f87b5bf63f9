// ABOUTME: Site adapter for Medium articles and custom-domain publications
// ABOUTME: Decodes the publish timestamp embedded in inline state script

package adapters

import (
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Millisecond epoch embedded in the page's Apollo state.
var mediumPublishedRe = regexp.MustCompile(`"firstPublishedAt"\s*:\s*(\d{10,13})`)

// MediumAdapter extracts Medium posts.
type MediumAdapter struct{}

func (a *MediumAdapter) Name() string { return "medium" }

func (a *MediumAdapter) Matches(u *url.URL) bool {
	return hostMatches(u, "medium.com")
}

func (a *MediumAdapter) ContentSelector() string {
	return "article"
}

func (a *MediumAdapter) Title(doc *goquery.Document) string {
	return firstText(doc, `h1[data-testid="storyTitle"]`, "article h1")
}

func (a *MediumAdapter) Author(doc *goquery.Document) string {
	if name := firstText(doc, `a[data-testid="authorName"]`); name != "" {
		return name
	}
	return firstAttr(doc, "content", `meta[name="author"]`)
}

func (a *MediumAdapter) PublishedAt(doc *goquery.Document) string {
	if v := firstAttr(doc, "content", `meta[property="article:published_time"]`); v != "" {
		return v
	}

	// The SSR payload carries the timestamp even when meta tags are absent.
	var published string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		m := mediumPublishedRe.FindStringSubmatch(s.Text())
		if m == nil {
			return true
		}
		ms, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return true
		}
		if len(m[1]) <= 10 {
			ms *= 1000
		}
		published = time.UnixMilli(ms).UTC().Format("2006-01-02")
		return false
	})
	return published
}
