// ABOUTME: Site adapter for Zhihu articles and answers
// ABOUTME: Resolves Zhihu's data-actualsrc lazy images during pre-processing

package adapters

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Captures dates inside strings like "发布于 2024-03-05 10:12".
var zhihuDateRe = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`)

// ZhihuAdapter extracts Zhihu posts.
type ZhihuAdapter struct{}

func (a *ZhihuAdapter) Name() string { return "zhihu" }

func (a *ZhihuAdapter) Matches(u *url.URL) bool {
	return hostMatches(u, "zhihu.com")
}

// PreProcess promotes Zhihu's lazy image attribute ahead of the generic
// resolver, which only sees standard deferred attributes on cloned nodes.
func (a *ZhihuAdapter) PreProcess(doc *goquery.Document) {
	doc.Find("img[data-actualsrc]").Each(func(_ int, img *goquery.Selection) {
		if actual := strings.TrimSpace(img.AttrOr("data-actualsrc", "")); actual != "" {
			img.SetAttr("src", actual)
		}
	})
	doc.Find("noscript").Remove()
}

func (a *ZhihuAdapter) ContentSelector() string {
	return ".Post-RichTextContainer, .RichContent-inner"
}

func (a *ZhihuAdapter) Title(doc *goquery.Document) string {
	return firstText(doc, ".Post-Title", "h1.QuestionHeader-title", "h1")
}

func (a *ZhihuAdapter) Author(doc *goquery.Document) string {
	return firstText(doc, ".AuthorInfo-name .UserLink-link", ".AuthorInfo-name")
}

func (a *ZhihuAdapter) PublishedAt(doc *goquery.Document) string {
	if v := firstAttr(doc, "content", `meta[itemprop="datePublished"]`); v != "" {
		return v
	}
	text := firstText(doc, ".ContentItem-time")
	if m := zhihuDateRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
