// ABOUTME: Request DTOs for the extraction endpoint
// ABOUTME: Mirrors the message shape sent by the browser-side host

package requests

// ExtractRequest is the POST /extract payload. Either HTML (a captured
// snapshot) or just URL (the server fetches the page itself) must be
// provided.
type ExtractRequest struct {
	// URL is the page address. Required.
	URL string `json:"url"`

	// HTML is the captured page markup. Optional; when absent the server
	// fetches the live page.
	HTML string `json:"html,omitempty"`

	// Selection is the user's selected fragment for selection mode.
	Selection string `json:"selection,omitempty"`

	// Mode is "full-page" (default) or "selection".
	Mode string `json:"mode,omitempty"`

	// ForceRefresh bypasses cached results for the URL.
	ForceRefresh bool `json:"forceRefresh,omitempty"`

	// InlineTopImage embeds the top image as a data URL in the response.
	InlineTopImage bool `json:"inlineTopImage,omitempty"`
}
