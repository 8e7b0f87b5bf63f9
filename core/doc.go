// Package core contains the business logic for the Clipper API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (PageSnapshot, ArticleRecord, Block, etc.)
// - adapters: Site-specific extraction adapters and their registry
// - extract: The extraction orchestrator and its fallback chain
// - metadata: Metadata reconciliation and date normalization
// - media: Lazy-image resolution and media embed handling
// - markdown: HTML to Markdown conversion with custom rules
// - blocks: Structured content block transformation
// - quality: Extraction quality assessment
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No web framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Extraction never fails across its public boundary
//
// # Usage Example
//
//	import (
//	    "clipper-app-api/core/adapters"
//	    "clipper-app-api/core/domain"
//	    "clipper-app-api/core/extract"
//	    "clipper-app-api/core/interfaces"
//	)
//
//	service := extract.NewService(
//	    adapters.NewDefaultRegistry(),
//	    extract.NewResultCache(time.Hour),
//	    logger,
//	)
//
//	record := service.Extract(ctx, domain.PageSnapshot{
//	    URL:  "https://example.com/post",
//	    HTML: capturedMarkup,
//	}, interfaces.ExtractionOptions{})
package core
