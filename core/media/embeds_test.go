package media

import (
	"testing"

	"clipper-app-api/core/domain"
)

func TestCanonicalEmbedURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"youtube embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"youtube nocookie", "https://www.youtube-nocookie.com/embed/abc123", "https://www.youtube.com/watch?v=abc123"},
		{"youtu.be short", "https://youtu.be/abc123", "https://www.youtube.com/watch?v=abc123"},
		{"vimeo player", "https://player.vimeo.com/video/76979871", "https://vimeo.com/76979871"},
		{"spotify embed", "https://open.spotify.com/embed/track/4uLU6hMCjMI75M1A2tKUQC", "https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC"},
		{"unknown host unchanged", "https://example.com/embed/1", "https://example.com/embed/1"},
		{"relative unchanged", "/embed/1", "/embed/1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanonicalEmbedURL(tt.in); got != tt.want {
				t.Errorf("CanonicalEmbedURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveEmbed_KnownIframeBecomesLink(t *testing.T) {
	doc := mustDoc(t, `<iframe src="https://www.youtube.com/embed/abc" title="A Talk"></iframe>`)
	target := ResolveEmbed(doc.Find("iframe"))

	if target.Kind != domain.EmbedLink {
		t.Errorf("Kind = %q, want link", target.Kind)
	}
	if target.Src != "https://www.youtube.com/watch?v=abc" {
		t.Errorf("Src = %q, want canonical watch URL", target.Src)
	}
	if target.Title != "A Talk" {
		t.Errorf("Title = %q", target.Title)
	}
}

func TestResolveEmbed_UnknownIframeStaysIframe(t *testing.T) {
	doc := mustDoc(t, `<iframe src="https://maps.example.com/widget"></iframe>`)
	target := ResolveEmbed(doc.Find("iframe"))

	if target.Kind != domain.EmbedIframe {
		t.Errorf("Kind = %q, want iframe", target.Kind)
	}
	if target.Title != "maps.example.com" {
		t.Errorf("Title = %q, want host fallback", target.Title)
	}
}

func TestResolveEmbed_VideoWithSourceChild(t *testing.T) {
	doc := mustDoc(t, `<video><source src="https://example.com/clip.mp4"></video>`)
	target := ResolveEmbed(doc.Find("video"))

	if target.Kind != domain.EmbedVideo {
		t.Errorf("Kind = %q, want video", target.Kind)
	}
	if target.Src != "https://example.com/clip.mp4" {
		t.Errorf("Src = %q", target.Src)
	}
}

func TestResolveEmbed_NoSource(t *testing.T) {
	doc := mustDoc(t, `<audio></audio>`)
	target := ResolveEmbed(doc.Find("audio"))

	if target != (domain.MediaEmbedTarget{}) {
		t.Errorf("ResolveEmbed = %+v, want empty target", target)
	}
}
