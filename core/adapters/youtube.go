// ABOUTME: Site adapter for YouTube watch pages

package adapters

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
)

// YouTubeAdapter extracts the video description from watch pages.
type YouTubeAdapter struct{}

func (a *YouTubeAdapter) Name() string { return "youtube" }

func (a *YouTubeAdapter) Matches(u *url.URL) bool {
	return hostMatches(u, "youtube.com") || hostMatches(u, "youtu.be")
}

func (a *YouTubeAdapter) ContentSelector() string {
	return "#description, ytd-watch-metadata"
}

func (a *YouTubeAdapter) Title(doc *goquery.Document) string {
	if v := firstAttr(doc, "content", `meta[property="og:title"]`); v != "" {
		return v
	}
	return firstText(doc, "h1.ytd-watch-metadata")
}

func (a *YouTubeAdapter) Author(doc *goquery.Document) string {
	if v := firstAttr(doc, "content", `link[itemprop="name"]`); v != "" {
		return v
	}
	return firstText(doc, "ytd-channel-name a")
}

func (a *YouTubeAdapter) PublishedAt(doc *goquery.Document) string {
	return firstAttr(doc, "content", `meta[itemprop="datePublished"]`, `meta[itemprop="uploadDate"]`)
}
