// ABOUTME: Domain model for resolved media embed targets
// ABOUTME: Defines the render-time representation of video/audio references

package domain

// EmbedKind identifies how a resolved media reference should be rendered.
type EmbedKind string

const (
	EmbedIframe EmbedKind = "iframe"
	EmbedVideo  EmbedKind = "video"
	EmbedAudio  EmbedKind = "audio"
	EmbedLink   EmbedKind = "link"
)

// MediaEmbedTarget is the resolved form of a video or audio reference.
// It is derived at render time from a URL and never persisted.
type MediaEmbedTarget struct {
	Kind EmbedKind
	Src  string

	// Title is a human readable label for the embed, when one is known.
	Title string
}
