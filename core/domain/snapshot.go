// ABOUTME: Domain model for the read-only page snapshot supplied by the host
// ABOUTME: Defines the immutable input view consumed by the extraction pipeline

package domain

// PageSnapshot is a read-only view of a loaded page. The pipeline never
// mutates a snapshot; any step that needs to rewrite markup parses HTML
// into its own working document first.
type PageSnapshot struct {
	// URL is the base URL of the page, used to resolve relative references.
	URL string `json:"url"`

	// HTML is the serialized content tree of the page.
	HTML string `json:"html"`

	// Selection holds the markup of the user's live text selection.
	// Empty when nothing is selected.
	Selection string `json:"selection,omitempty"`
}

// HasSelection reports whether the snapshot carries a usable live selection.
func (s PageSnapshot) HasSelection() bool {
	return s.Selection != ""
}
