// ABOUTME: Site adapter for X/Twitter threads
// ABOUTME: Collapses quoted tweets into plain blockquotes during pre-processing

package adapters

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// TwitterAdapter extracts individual tweets and threads.
type TwitterAdapter struct{}

func (a *TwitterAdapter) Name() string { return "twitter" }

func (a *TwitterAdapter) Matches(u *url.URL) bool {
	return hostMatches(u, "twitter.com") || hostMatches(u, "x.com")
}

// PreProcess rewrites embedded quote-tweet markup into a single blockquote
// so later generic steps see ordinary quoted content instead of a nested
// sub-article.
func (a *TwitterAdapter) PreProcess(doc *goquery.Document) {
	doc.Find(`div[data-testid="quoteTweet"], .QuoteTweet`).Each(func(_ int, quote *goquery.Selection) {
		author := strings.TrimSpace(quote.Find(`div[data-testid="User-Name"], .QuoteTweet-fullname`).First().Text())
		text := strings.TrimSpace(quote.Find(`div[data-testid="tweetText"], .QuoteTweet-text`).First().Text())
		if text == "" {
			text = strings.TrimSpace(quote.Text())
		}
		if text == "" {
			quote.Remove()
			return
		}
		if author != "" {
			quote.ReplaceWithHtml(fmt.Sprintf("<blockquote><p>%s</p><p>— %s</p></blockquote>", text, author))
		} else {
			quote.ReplaceWithHtml(fmt.Sprintf("<blockquote><p>%s</p></blockquote>", text))
		}
	})
}

func (a *TwitterAdapter) ContentSelector() string {
	return `article[data-testid="tweet"], .main-tweet, article`
}

func (a *TwitterAdapter) Title(doc *goquery.Document) string {
	author := firstText(doc, `article div[data-testid="User-Name"] span`)
	if author == "" {
		return ""
	}
	return author + " on X"
}

func (a *TwitterAdapter) Author(doc *goquery.Document) string {
	return firstText(doc, `article div[data-testid="User-Name"] span`)
}

func (a *TwitterAdapter) PublishedAt(doc *goquery.Document) string {
	return firstAttr(doc, "datetime", "article time[datetime]", "time[datetime]")
}
