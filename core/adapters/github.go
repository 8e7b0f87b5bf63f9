// ABOUTME: Site adapter for GitHub repository README pages

package adapters

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// GitHubAdapter extracts repository README content.
type GitHubAdapter struct{}

func (a *GitHubAdapter) Name() string { return "github" }

func (a *GitHubAdapter) Matches(u *url.URL) bool {
	return hostMatches(u, "github.com")
}

// PreProcess drops the anchor chains GitHub injects next to every heading.
func (a *GitHubAdapter) PreProcess(doc *goquery.Document) {
	doc.Find("a.anchor, .zeroclipboard-container").Remove()
}

func (a *GitHubAdapter) ContentSelector() string {
	return "article.markdown-body, .markdown-body"
}

func (a *GitHubAdapter) Title(doc *goquery.Document) string {
	// og:title carries "owner/repo: description"; keep the repo part.
	title := firstAttr(doc, "content", `meta[property="og:title"]`)
	if idx := strings.Index(title, ":"); idx > 0 {
		title = title[:idx]
	}
	return strings.TrimSpace(title)
}

func (a *GitHubAdapter) Author(doc *goquery.Document) string {
	title := firstAttr(doc, "content", `meta[property="og:title"]`)
	if idx := strings.Index(title, "/"); idx > 0 {
		return strings.TrimSpace(title[:idx])
	}
	return ""
}

func (a *GitHubAdapter) PublishedAt(doc *goquery.Document) string {
	return firstAttr(doc, "datetime", "relative-time[datetime]", "time[datetime]")
}
