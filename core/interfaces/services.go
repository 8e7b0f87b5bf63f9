// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"clipper-app-api/core/domain"
)

// ExtractionMode selects how the pipeline locates article content.
type ExtractionMode string

const (
	// ModeFullPage extracts the main article of the whole page.
	ModeFullPage ExtractionMode = "full-page"

	// ModeSelection extracts only the user's live selection. Falls back to
	// full-page extraction when the selection is empty.
	ModeSelection ExtractionMode = "selection"
)

// ExtractionOptions carries the per-request flags supplied by the host.
type ExtractionOptions struct {
	Mode ExtractionMode

	// ForceRefresh bypasses the orchestrator's per-URL result cache.
	ForceRefresh bool
}

// ExtractionService turns a page snapshot into an article record.
// Implementations never return an error across this boundary; internal
// failures degrade to a minimal valid record.
type ExtractionService interface {
	Extract(ctx context.Context, snapshot domain.PageSnapshot, opts ExtractionOptions) domain.ArticleRecord
}

// SnapshotFetcher builds a PageSnapshot from a live URL. Used by callers
// that only have a URL rather than captured page markup.
type SnapshotFetcher interface {
	Fetch(ctx context.Context, pageURL string) (domain.PageSnapshot, error)
}

// ImageInliner replaces a record's top image URL with an inlined data URL,
// bounded by a byte ceiling. On overflow or fetch failure the original URL
// is kept.
type ImageInliner interface {
	InlineTopImage(ctx context.Context, record *domain.ArticleRecord)
}
