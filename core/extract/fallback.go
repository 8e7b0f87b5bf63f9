// ABOUTME: Generic fallback extractors for pages without a site adapter
// ABOUTME: Readability scoring tier plus a selector-based last resort

package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	htmlutil "clipper-app-api/pkg/utils/html"
)

// minContentLength is the text threshold below which a candidate container
// is rejected.
const minContentLength = 200

// Ordered list of common content-container selectors tried by the
// last-resort tier. The first candidate over the text threshold wins;
// the page body is the final default.
var contentSelectors = []string{
	"article",
	`[role="main"]`,
	"main",
	".post-content",
	".article-content",
	".entry-content",
	".post-body",
	".article-body",
	".story-body",
	"#article",
	".content",
	"#content",
}

// Boilerplate subtrees removed from the selector tier's cloned candidate.
var boilerplateSelectors = []string{
	"nav",
	"header",
	"footer",
	"aside",
	"script",
	"style",
	"noscript",
	"form",
	".nav",
	".navbar",
	".menu",
	".sidebar",
	".advertisement",
	".ads",
	".ad-container",
	".social-share",
	".share-buttons",
	".comments",
	"#comments",
	".related-posts",
	".related-articles",
	".newsletter-signup",
	".cookie-banner",
	".cookie-consent",
	".popup",
	".modal",
	".subscribe",
	".paywall",
}

// readabilityContent runs the content-density scorer over the serialized
// working document. Returns empty strings when the scorer fails or finds
// nothing.
func readabilityContent(pageHTML, pageURL string) (content, title string) {
	pageHTML = strings.TrimSpace(pageHTML)
	if pageHTML == "" {
		return "", ""
	}

	parsed, err := url.Parse(pageURL)
	if err != nil {
		parsed = &url.URL{}
	}

	article, err := readability.FromReader(strings.NewReader(pageHTML), parsed)
	if err != nil {
		return "", ""
	}
	return strings.TrimSpace(article.Content), strings.TrimSpace(article.Title)
}

// selectorFallbackContent tries the ordered content selectors and falls
// back to the page body. The candidate is deep-cloned before boilerplate
// removal so the caller's document is never touched.
func selectorFallbackContent(doc *goquery.Document) string {
	candidate := doc.Find("body").First()
	for _, sel := range contentSelectors {
		found := doc.Find(sel).First()
		if found.Length() == 0 {
			continue
		}
		if len(htmlutil.Collapse(found.Text())) > minContentLength {
			candidate = found
			break
		}
	}
	if candidate.Length() == 0 {
		return ""
	}

	clone := candidate.Clone()
	clone.Find(strings.Join(boilerplateSelectors, ", ")).Remove()

	markup, err := goquery.OuterHtml(clone)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(markup)
}
