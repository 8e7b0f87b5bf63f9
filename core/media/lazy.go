// ABOUTME: Lazy-media resolution for deferred image and source-set attributes
// ABOUTME: Rewrites placeholder sources to their real deferred values in place

package media

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// deferredSrcAttrs is the fixed priority list of attributes that hold the
// real image URL while the page is still loading.
var deferredSrcAttrs = []string{
	"data-src",
	"data-lazy-src",
	"data-original",
	"data-actualsrc",
	"data-echo",
	"data-img-url",
	"data-hi-res-src",
}

// deferredSrcsetAttrs hold deferred responsive source sets.
var deferredSrcsetAttrs = []string{
	"data-srcset",
	"data-lazy-srcset",
}

// Filename fragments that mark a source as a loading placeholder.
var placeholderFragments = []string{
	"1x1",
	"placeholder",
	"spacer",
	"blank.",
	"loading",
	"grey.gif",
	"transparent",
}

// IsPlaceholderSource reports whether src is a known placeholder pattern
// rather than a usable image reference.
func IsPlaceholderSource(src string) bool {
	src = strings.TrimSpace(src)
	if src == "" {
		return true
	}
	lower := strings.ToLower(src)
	if strings.HasPrefix(lower, "data:image/svg+xml") {
		return true
	}
	// The classic inline 1x1 GIF.
	if strings.HasPrefix(lower, "data:image/gif") {
		return true
	}
	for _, fragment := range placeholderFragments {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}

// ResolveImageSource returns the best usable source for an image element,
// preferring the current src when it is not a placeholder, then scanning
// the deferred-attribute priority list, then the first srcset candidate.
// Returns empty when no usable source exists.
func ResolveImageSource(sel *goquery.Selection) string {
	if src := strings.TrimSpace(sel.AttrOr("src", "")); src != "" && !IsPlaceholderSource(src) {
		return src
	}

	for _, attr := range deferredSrcAttrs {
		if v := strings.TrimSpace(sel.AttrOr(attr, "")); v != "" && !IsPlaceholderSource(v) {
			return v
		}
	}

	for _, attr := range append([]string{"srcset"}, deferredSrcsetAttrs...) {
		if v := firstSrcsetCandidate(sel.AttrOr(attr, "")); v != "" && !IsPlaceholderSource(v) {
			return v
		}
	}

	return ""
}

// ResolveLazyImages rewrites every placeholder image in the document to its
// first usable deferred source and promotes deferred source sets. The
// mutation is idempotent: a second pass finds nothing left to rewrite.
func ResolveLazyImages(doc *goquery.Document) {
	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		if IsPlaceholderSource(img.AttrOr("src", "")) {
			if resolved := ResolveImageSource(img); resolved != "" {
				img.SetAttr("src", resolved)
			}
		}
		promoteSrcset(img)
	})

	doc.Find("source").Each(func(_ int, source *goquery.Selection) {
		promoteSrcset(source)
	})
}

// promoteSrcset moves a deferred source set into the live srcset attribute
// when the live one is missing or a placeholder.
func promoteSrcset(sel *goquery.Selection) {
	current := firstSrcsetCandidate(sel.AttrOr("srcset", ""))
	if current != "" && !IsPlaceholderSource(current) {
		return
	}
	for _, attr := range deferredSrcsetAttrs {
		if v := strings.TrimSpace(sel.AttrOr(attr, "")); v != "" {
			sel.SetAttr("srcset", v)
			return
		}
	}
}

// firstSrcsetCandidate extracts the URL of the first entry in a srcset value.
func firstSrcsetCandidate(srcset string) string {
	srcset = strings.TrimSpace(srcset)
	if srcset == "" {
		return ""
	}
	first := srcset
	if idx := strings.Index(srcset, ","); idx >= 0 {
		first = srcset[:idx]
	}
	fields := strings.Fields(first)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
