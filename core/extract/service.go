// ABOUTME: Extraction orchestrator driving the adapter/fallback chain
// ABOUTME: Produces the final article record and never fails across its boundary

package extract

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"clipper-app-api/core/adapters"
	"clipper-app-api/core/blocks"
	"clipper-app-api/core/domain"
	"clipper-app-api/core/interfaces"
	"clipper-app-api/core/markdown"
	"clipper-app-api/core/media"
	"clipper-app-api/core/metadata"
	"clipper-app-api/core/quality"
	htmlutil "clipper-app-api/pkg/utils/html"
)

const logSource = "extractor"

// Service orchestrates the extraction pipeline. Each call works on its own
// parsed copy of the snapshot markup, so concurrent extractions share no
// mutable state beyond the result cache.
type Service struct {
	registry *adapters.Registry
	cache    *ResultCache
	markdown *markdown.Converter
	logger   interfaces.Logger
	now      func() time.Time
}

// NewService wires the orchestrator with its adapter registry and result
// cache. A nil registry disables site adapters; a nil cache disables
// result reuse.
func NewService(registry *adapters.Registry, cache *ResultCache, logger interfaces.Logger) *Service {
	return &Service{
		registry: registry,
		cache:    cache,
		markdown: markdown.NewConverter(logger),
		logger:   logger,
		now:      time.Now,
	}
}

// Extract runs the pipeline over a snapshot and always returns a valid
// record: on internal failure it degrades to a minimal record and reports
// the failure through the logger instead of an error.
func (s *Service) Extract(ctx context.Context, snapshot domain.PageSnapshot, opts interfaces.ExtractionOptions) (record domain.ArticleRecord) {
	defer func() {
		if r := recover(); r != nil {
			s.logError("extraction panicked", map[string]interface{}{
				"source": logSource,
				"url":    snapshot.URL,
				"panic":  r,
			})
			record = s.minimalRecord(snapshot)
		}
	}()

	mode := opts.Mode
	if mode != interfaces.ModeSelection {
		mode = interfaces.ModeFullPage
	}
	// Selection mode needs a non-empty live selection.
	if mode == interfaces.ModeSelection && htmlutil.StripHTML(snapshot.Selection) == "" {
		mode = interfaces.ModeFullPage
	}

	if mode == interfaces.ModeFullPage && !opts.ForceRefresh && s.cache != nil {
		if cached, ok := s.cache.Get(snapshot.URL); ok {
			return cached
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snapshot.HTML))
	if err != nil {
		s.logError("snapshot markup could not be parsed", map[string]interface{}{
			"source": logSource,
			"url":    snapshot.URL,
			"error":  err.Error(),
		})
		return s.minimalRecord(snapshot)
	}

	// The matching adapter rewrites the working clone before anything
	// else reads it.
	adapter := s.resolveAdapter(snapshot.URL)
	if pre, ok := adapter.(adapters.PreProcessor); ok {
		pre.PreProcess(doc)
	}

	media.ResolveLazyImages(doc)
	meta := metadata.Reconcile(doc)
	pageTitle := htmlutil.Collapse(doc.Find("title").First().Text())

	var contentHTML string
	var adapterTitle, adapterAuthor, adapterPublished string

	if mode == interfaces.ModeSelection {
		contentHTML = snapshot.Selection
	} else {
		contentHTML, adapterTitle, adapterAuthor, adapterPublished = s.locateContent(doc, adapter, snapshot.URL, &meta)
	}

	contentHTML = sanitizeContent(contentHTML, snapshot.URL)

	if mode == interfaces.ModeFullPage {
		contentHTML = s.recoverImages(contentHTML, doc, snapshot.URL)
	}

	if htmlutil.StripHTML(contentHTML) == "" {
		s.logWarn("all extraction tiers yielded empty content", map[string]interface{}{
			"source": logSource,
			"url":    snapshot.URL,
		})
		minimal := s.minimalRecord(snapshot)
		if minimal.Title == "" {
			minimal.Title = pageTitle
		}
		return minimal
	}

	record = s.assemble(snapshot, contentHTML, meta, assembleSignals{
		mode:             mode,
		pageTitle:        pageTitle,
		adapterTitle:     adapterTitle,
		adapterAuthor:    adapterAuthor,
		adapterPublished: adapterPublished,
	})

	if mode == interfaces.ModeFullPage && s.cache != nil {
		s.cache.Put(snapshot.URL, record)
	}
	return record
}

// resolveAdapter looks up the first matching site adapter, if any.
func (s *Service) resolveAdapter(pageURL string) adapters.SiteAdapter {
	if s.registry == nil {
		return nil
	}
	return s.registry.Resolve(pageURL)
}

// locateContent walks the fallback chain: site adapter, readability
// scorer, selector fallback. Adapter metadata accessors only run when the
// adapter supplied the content.
func (s *Service) locateContent(doc *goquery.Document, adapter adapters.SiteAdapter, pageURL string, meta *metadata.Metadata) (content, title, author, published string) {
	if adapter != nil {
		sel := doc.Find(adapter.ContentSelector()).First()
		if sel.Length() > 0 {
			if markup, err := goquery.OuterHtml(sel); err == nil && htmlutil.StripHTML(markup) != "" {
				return markup, adapter.Title(doc), adapter.Author(doc), adapter.PublishedAt(doc)
			}
		}
		s.logDebug("site adapter yielded no content", map[string]interface{}{
			"source":  logSource,
			"adapter": adapter.Name(),
			"url":     pageURL,
		})
	}

	pageHTML, err := doc.Html()
	if err == nil {
		scored, scoredTitle := readabilityContent(pageHTML, pageURL)
		if len(htmlutil.StripHTML(scored)) >= minContentLength {
			if meta.Title == "" {
				meta.Title = scoredTitle
			}
			return scored, "", "", ""
		}
	}

	return selectorFallbackContent(doc), "", "", ""
}

// recoverImages substitutes the broader selector-fallback content when the
// chosen content carries no images but the broader container does. This is
// a tunable heuristic: it can override a deliberately image-free page.
func (s *Service) recoverImages(contentHTML string, doc *goquery.Document, pageURL string) string {
	if countImages(contentHTML) > 0 {
		return contentHTML
	}
	broader := sanitizeContent(selectorFallbackContent(doc), pageURL)
	if countImages(broader) == 0 || htmlutil.StripHTML(broader) == "" {
		return contentHTML
	}
	s.logDebug("substituted broader content to recover images", map[string]interface{}{
		"source": logSource,
		"url":    pageURL,
	})
	return broader
}

type assembleSignals struct {
	mode             interfaces.ExtractionMode
	pageTitle        string
	adapterTitle     string
	adapterAuthor    string
	adapterPublished string
}

// assemble merges all signals into the final record. Site-specific adapter
// values outrank reconciled metadata, which already ranks linked-data over
// meta tags.
func (s *Service) assemble(snapshot domain.PageSnapshot, contentHTML string, meta metadata.Metadata, signals assembleSignals) domain.ArticleRecord {
	title := firstNonEmpty(signals.adapterTitle, meta.Title, signals.pageTitle)
	author := firstNonEmpty(signals.adapterAuthor, meta.Author)

	published := ""
	for _, candidate := range []string{signals.adapterPublished, meta.Published} {
		if candidate == "" {
			continue
		}
		if normalized := metadata.NormalizeDate(candidate); normalized != "" {
			published = normalized
			break
		}
	}

	topImage := resolveURLString(snapshot.URL, meta.Image)
	if topImage == "" {
		topImage = firstImageSource(contentHTML)
	}

	excerpt := meta.Description
	if excerpt == "" {
		excerpt = truncate(htmlutil.StripHTML(contentHTML), 200)
	}

	return domain.ArticleRecord{
		Title:             title,
		ContentHTML:       contentHTML,
		ContentMarkdown:   s.markdown.ToMarkdown(contentHTML),
		StructuredContent: blocks.Build(contentHTML),
		SourceURL:         snapshot.URL,
		TopImage:          topImage,
		Author:            author,
		PublishedAt:       published,
		SourceDomain:      hostOf(snapshot.URL),
		Excerpt:           excerpt,
		IsSelectionOnly:   signals.mode == interfaces.ModeSelection,
		Quality:           quality.Assess(contentHTML),
	}
}

// minimalRecord is the degraded result for complete extraction failure:
// empty content, the page title when one can be read, and the current date.
func (s *Service) minimalRecord(snapshot domain.PageSnapshot) domain.ArticleRecord {
	title := ""
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(snapshot.HTML)); err == nil {
		title = htmlutil.Collapse(doc.Find("title").First().Text())
	}
	return domain.ArticleRecord{
		Title:        title,
		SourceURL:    snapshot.URL,
		SourceDomain: hostOf(snapshot.URL),
		PublishedAt:  s.now().Format("2006-01-02"),
		Quality: domain.Quality{
			Score:    0,
			Warnings: []string{"extraction failed"},
		},
	}
}

func (s *Service) logDebug(msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, fields)
	}
}

func (s *Service) logWarn(msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.Warn(msg, fields)
	}
}

func (s *Service) logError(msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.Error(msg, fields)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

func countImages(html string) int {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0
	}
	return doc.Find("img").Length()
}

func firstImageSource(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return media.ResolveImageSource(doc.Find("img").First())
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max])) + "…"
}
