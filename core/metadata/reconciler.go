// ABOUTME: Metadata reconciliation across linked-data and meta-tag signals
// ABOUTME: Merges JSON-LD article objects with ordered meta-tag lookups

package metadata

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Metadata holds the reconciled page-level signals. Every field is either
// a usable value or the empty string.
type Metadata struct {
	Title       string
	Author      string
	Published   string
	Image       string
	Description string
}

// Linked-data types treated as article objects.
var articleTypes = map[string]bool{
	"Article":                true,
	"NewsArticle":            true,
	"BlogPosting":            true,
	"Report":                 true,
	"ScholarlyArticle":       true,
	"TechArticle":            true,
	"SocialMediaPosting":     true,
	"LiveBlogPosting":        true,
	"DiscussionForumPosting": true,
}

// Per-field meta selectors, tried in order. The first non-empty content
// attribute wins.
var (
	titleMetaSelectors = []string{
		`meta[property="og:title"]`,
		`meta[name="twitter:title"]`,
		`meta[name="title"]`,
	}
	authorMetaSelectors = []string{
		`meta[name="author"]`,
		`meta[property="article:author"]`,
		`meta[property="og:article:author"]`,
		`meta[name="twitter:creator"]`,
		`meta[itemprop="author"]`,
	}
	publishedMetaSelectors = []string{
		`meta[property="article:published_time"]`,
		`meta[property="og:article:published_time"]`,
		`meta[itemprop="datePublished"]`,
		`meta[name="date"]`,
		`meta[name="publish-date"]`,
		`meta[name="parsely-pub-date"]`,
		`meta[name="sailthru.date"]`,
	}
	imageMetaSelectors = []string{
		`meta[property="og:image"]`,
		`meta[name="twitter:image"]`,
		`meta[name="twitter:image:src"]`,
		`meta[itemprop="image"]`,
	}
	descriptionMetaSelectors = []string{
		`meta[property="og:description"]`,
		`meta[name="twitter:description"]`,
		`meta[name="description"]`,
	}
)

// Reconcile merges metadata signals from the document. Linked-data takes
// precedence over meta tags, meta tags over nothing.
func Reconcile(doc *goquery.Document) Metadata {
	meta := Metadata{
		Title:       firstMetaContent(doc, titleMetaSelectors),
		Author:      firstMetaContent(doc, authorMetaSelectors),
		Published:   firstMetaContent(doc, publishedMetaSelectors),
		Image:       firstMetaContent(doc, imageMetaSelectors),
		Description: firstMetaContent(doc, descriptionMetaSelectors),
	}

	if meta.Published == "" {
		if dt, ok := doc.Find("time[datetime]").First().Attr("datetime"); ok {
			meta.Published = strings.TrimSpace(dt)
		}
	}

	ld := linkedDataArticle(doc)
	if ld.Title != "" {
		meta.Title = ld.Title
	}
	if ld.Author != "" {
		meta.Author = ld.Author
	}
	if ld.Published != "" {
		meta.Published = ld.Published
	}
	if ld.Image != "" {
		meta.Image = ld.Image
	}
	if ld.Description != "" {
		meta.Description = ld.Description
	}

	return meta
}

func firstMetaContent(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		content := strings.TrimSpace(doc.Find(sel).First().AttrOr("content", ""))
		if content != "" {
			return content
		}
	}
	return ""
}

// linkedDataArticle scans every JSON-LD block for the first article-typed
// object, descending into @graph containers and top-level arrays.
func linkedDataArticle(doc *goquery.Document) Metadata {
	var found Metadata
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var payload interface{}
		if err := json.Unmarshal([]byte(s.Text()), &payload); err != nil {
			return true
		}
		if obj := findArticleObject(payload); obj != nil {
			found = metadataFromLinkedData(obj)
			return false
		}
		return true
	})
	return found
}

func findArticleObject(node interface{}) map[string]interface{} {
	switch v := node.(type) {
	case map[string]interface{}:
		if articleTypes[ldType(v)] {
			return v
		}
		if graph, ok := v["@graph"]; ok {
			return findArticleObject(graph)
		}
	case []interface{}:
		for _, item := range v {
			if obj := findArticleObject(item); obj != nil {
				return obj
			}
		}
	}
	return nil
}

func ldType(obj map[string]interface{}) string {
	switch t := obj["@type"].(type) {
	case string:
		return t
	case []interface{}:
		for _, item := range t {
			if s, ok := item.(string); ok && articleTypes[s] {
				return s
			}
		}
	}
	return ""
}

func metadataFromLinkedData(obj map[string]interface{}) Metadata {
	return Metadata{
		Title:       ldString(obj["headline"]),
		Author:      ldAuthor(obj["author"]),
		Published:   ldString(obj["datePublished"]),
		Image:       ldImage(obj["image"]),
		Description: ldString(obj["description"]),
	}
}

func ldString(v interface{}) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// ldAuthor handles the three common author encodings: a plain string, a
// Person object, or an array of either.
func ldAuthor(v interface{}) string {
	switch a := v.(type) {
	case string:
		return strings.TrimSpace(a)
	case map[string]interface{}:
		return ldString(a["name"])
	case []interface{}:
		var names []string
		for _, item := range a {
			if name := ldAuthor(item); name != "" {
				names = append(names, name)
			}
		}
		return strings.Join(names, ", ")
	}
	return ""
}

// ldImage handles string, ImageObject and array encodings.
func ldImage(v interface{}) string {
	switch img := v.(type) {
	case string:
		return strings.TrimSpace(img)
	case map[string]interface{}:
		return ldString(img["url"])
	case []interface{}:
		for _, item := range img {
			if u := ldImage(item); u != "" {
				return u
			}
		}
	}
	return ""
}
