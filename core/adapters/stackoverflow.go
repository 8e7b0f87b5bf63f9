// ABOUTME: Site adapter for Stack Overflow and Stack Exchange questions
// ABOUTME: Keeps the question plus answers while dropping site chrome

package adapters

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
)

// StackOverflowAdapter extracts Stack Overflow question pages.
type StackOverflowAdapter struct{}

func (a *StackOverflowAdapter) Name() string { return "stackoverflow" }

func (a *StackOverflowAdapter) Matches(u *url.URL) bool {
	return hostMatches(u, "stackoverflow.com") ||
		hostMatches(u, "stackexchange.com") ||
		hostMatches(u, "serverfault.com") ||
		hostMatches(u, "superuser.com")
}

// PreProcess strips sidebars, vote widgets and comment threads so the
// remaining container holds only question and answer bodies.
func (a *StackOverflowAdapter) PreProcess(doc *goquery.Document) {
	doc.Find("#sidebar, #left-sidebar, .js-vote-count, .votecell, .comments, .js-post-menu, .bottom-notice, #hot-network-questions").Remove()
}

func (a *StackOverflowAdapter) ContentSelector() string {
	return "#mainbar"
}

func (a *StackOverflowAdapter) Title(doc *goquery.Document) string {
	return firstText(doc, `h1[itemprop="name"] a`, "#question-header h1", "h1")
}

func (a *StackOverflowAdapter) Author(doc *goquery.Document) string {
	return firstText(doc, `.question .post-signature.owner .user-details a`, ".question .user-details a")
}

func (a *StackOverflowAdapter) PublishedAt(doc *goquery.Document) string {
	return firstAttr(doc, "datetime", `.question time[itemprop="dateCreated"]`, "time[datetime]")
}
