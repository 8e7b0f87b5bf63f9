// ABOUTME: Site adapter registry with ordered first-match resolution
// ABOUTME: Defines the SiteAdapter contract for per-site extraction strategies

package adapters

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SiteAdapter encapsulates a site-specific extraction strategy. Adapters
// are stateless pure-function bundles registered once at process start and
// never mutated; the registry resolves at most one per extraction call.
type SiteAdapter interface {
	// Name identifies the adapter in logs.
	Name() string

	// Matches reports whether this adapter handles the given page URL.
	Matches(u *url.URL) bool

	// ContentSelector returns the selector locating the article container.
	ContentSelector() string

	// Title, Author and PublishedAt read site-specific signals from the
	// working document. Empty results defer to the metadata reconciler.
	Title(doc *goquery.Document) string
	Author(doc *goquery.Document) string
	PublishedAt(doc *goquery.Document) string
}

// PreProcessor is implemented by adapters that need to rewrite the working
// clone before any other step reads it, e.g. resolving site-specific lazy
// images or collapsing embedded quote markup.
type PreProcessor interface {
	PreProcess(doc *goquery.Document)
}

// Registry holds an ordered adapter list. Resolution is a linear scan;
// the first match wins, so resolution is deterministic for a fixed
// registration order.
type Registry struct {
	adapters []SiteAdapter
}

// NewRegistry builds a registry from an explicit adapter order.
func NewRegistry(adapters ...SiteAdapter) *Registry {
	return &Registry{adapters: adapters}
}

// NewDefaultRegistry returns the registry with the built-in site coverage.
func NewDefaultRegistry() *Registry {
	return NewRegistry(
		&MediumAdapter{},
		&SubstackAdapter{},
		&WikipediaAdapter{},
		&ZhihuAdapter{},
		&StackOverflowAdapter{},
		&TwitterAdapter{},
		&GitHubAdapter{},
		&YouTubeAdapter{},
	)
}

// Resolve returns the first adapter whose predicate matches the URL, or
// nil when no adapter covers the site.
func (r *Registry) Resolve(rawURL string) SiteAdapter {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil
	}
	for _, adapter := range r.adapters {
		if adapter.Matches(u) {
			return adapter
		}
	}
	return nil
}

// hostMatches reports whether the URL host is the domain or one of its
// subdomains.
func hostMatches(u *url.URL, domain string) bool {
	host := strings.ToLower(u.Hostname())
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// firstText returns the collapsed text of the first node matching any of
// the selectors, in order.
func firstText(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if text := strings.TrimSpace(doc.Find(sel).First().Text()); text != "" {
			return strings.Join(strings.Fields(text), " ")
		}
	}
	return ""
}

// firstAttr returns the first non-empty attribute value among the
// selector/attribute pairs.
func firstAttr(doc *goquery.Document, attr string, selectors ...string) string {
	for _, sel := range selectors {
		if v := strings.TrimSpace(doc.Find(sel).First().AttrOr(attr, "")); v != "" {
			return v
		}
	}
	return ""
}
