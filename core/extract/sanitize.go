// ABOUTME: Content fragment sanitizer applied after every extraction tier
// ABOUTME: Strips active markup and absolutizes resource URLs against the page

package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"clipper-app-api/core/media"
)

// Subtrees that must never survive into the extracted fragment.
var strippedElements = []string{
	"script",
	"style",
	"noscript",
	"template",
	"form",
	"link",
	"meta",
	"button",
	"input",
	"select",
	"textarea",
}

// sanitizeContent parses the extracted fragment, removes active and
// non-content markup, resolves deferred images one more time (selection
// fragments bypass the document-level pass) and rewrites resource URLs to
// absolute form against the page URL. Returns the cleaned body markup.
func sanitizeContent(fragment, pageURL string) string {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}

	doc.Find(strings.Join(strippedElements, ", ")).Remove()
	media.ResolveLazyImages(doc)

	base, baseErr := url.Parse(pageURL)
	canResolve := baseErr == nil && base.IsAbs()

	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		stripActiveAttrs(sel)
	})

	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		if src, ok := img.Attr("src"); ok && canResolve {
			img.SetAttr("src", resolveRef(base, src))
		}
		if srcset, ok := img.Attr("srcset"); ok && canResolve {
			img.SetAttr("srcset", resolveSrcset(base, srcset))
		}
	})

	doc.Find("source").Each(func(_ int, source *goquery.Selection) {
		if src, ok := source.Attr("src"); ok && canResolve {
			source.SetAttr("src", resolveRef(base, src))
		}
		if srcset, ok := source.Attr("srcset"); ok && canResolve {
			source.SetAttr("srcset", resolveSrcset(base, srcset))
		}
	})

	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(href)), "javascript:") {
			a.RemoveAttr("href")
			return
		}
		if canResolve {
			a.SetAttr("href", resolveRef(base, href))
		}
	})

	body := doc.Find("body")
	if body.Length() == 0 {
		return fragment
	}
	markup, err := body.Html()
	if err != nil {
		return fragment
	}
	return strings.TrimSpace(markup)
}

// stripActiveAttrs drops inline event handlers from a single element.
func stripActiveAttrs(sel *goquery.Selection) {
	if len(sel.Nodes) == 0 {
		return
	}
	for _, attr := range sel.Nodes[0].Attr {
		if strings.HasPrefix(strings.ToLower(attr.Key), "on") {
			sel.RemoveAttr(attr.Key)
		}
	}
}

// resolveURLString absolutizes a single reference against a base URL.
// Schemes that are not fetchable resources pass through untouched except
// javascript:, which is dropped.
func resolveURLString(baseURL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	lower := strings.ToLower(ref)
	switch {
	case strings.HasPrefix(lower, "javascript:"):
		return ""
	case strings.HasPrefix(lower, "data:"), strings.HasPrefix(lower, "mailto:"), strings.HasPrefix(lower, "tel:"):
		return ref
	}

	base, err := url.Parse(baseURL)
	if err != nil || !base.IsAbs() {
		return ref
	}
	return resolveRef(base, ref)
}

func resolveRef(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ref
	}
	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "data:") || strings.HasPrefix(lower, "#") ||
		strings.HasPrefix(lower, "mailto:") || strings.HasPrefix(lower, "tel:") {
		return ref
	}
	parsed, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(parsed).String()
}

// resolveSrcset rewrites each candidate URL in a srcset value, keeping the
// width or density descriptors intact.
func resolveSrcset(base *url.URL, srcset string) string {
	parts := strings.Split(srcset, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) == 0 {
			continue
		}
		fields[0] = resolveRef(base, fields[0])
		out = append(out, strings.Join(fields, " "))
	}
	return strings.Join(out, ", ")
}
