// ABOUTME: Media embed resolution and platform URL canonicalization
// ABOUTME: Maps iframe/video/audio references to render-time embed targets

package media

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"clipper-app-api/core/domain"
)

// Hosts whose iframes are recognized as media embeds.
var knownEmbedHosts = []string{
	"youtube.com",
	"youtube-nocookie.com",
	"youtu.be",
	"player.vimeo.com",
	"vimeo.com",
	"open.spotify.com",
	"player.bilibili.com",
	"soundcloud.com",
	"w.soundcloud.com",
}

// IsKnownEmbedHost reports whether host belongs to a recognized media platform.
func IsKnownEmbedHost(host string) bool {
	host = strings.ToLower(host)
	for _, known := range knownEmbedHosts {
		if host == known || strings.HasSuffix(host, "."+known) {
			return true
		}
	}
	return false
}

// CanonicalEmbedURL rewrites a platform embed URL to its canonical public
// form, e.g. a YouTube embed URL to the watch URL. Unknown URLs are
// returned unchanged.
func CanonicalEmbedURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return raw
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")

	switch {
	case host == "youtube.com" || host == "youtube-nocookie.com" ||
		strings.HasSuffix(host, ".youtube.com") || strings.HasSuffix(host, ".youtube-nocookie.com"):
		if id := strings.TrimPrefix(u.Path, "/embed/"); id != u.Path && id != "" {
			return "https://www.youtube.com/watch?v=" + id
		}
	case host == "youtu.be":
		if id := strings.Trim(u.Path, "/"); id != "" {
			return "https://www.youtube.com/watch?v=" + id
		}
	case host == "player.vimeo.com":
		if id := strings.TrimPrefix(u.Path, "/video/"); id != u.Path && id != "" {
			return "https://vimeo.com/" + id
		}
	case host == "open.spotify.com":
		if rest := strings.TrimPrefix(u.Path, "/embed"); rest != u.Path {
			return "https://open.spotify.com" + rest
		}
	}
	return raw
}

// ResolveEmbed derives a MediaEmbedTarget from an iframe, video or audio
// element. Elements without a usable source resolve to an empty target.
func ResolveEmbed(sel *goquery.Selection) domain.MediaEmbedTarget {
	name := goquery.NodeName(sel)
	src := strings.TrimSpace(sel.AttrOr("src", ""))
	if src == "" {
		src = strings.TrimSpace(sel.Find("source").First().AttrOr("src", ""))
	}
	if src == "" {
		return domain.MediaEmbedTarget{}
	}

	title := embedTitle(sel, src)

	switch name {
	case "video":
		return domain.MediaEmbedTarget{Kind: domain.EmbedVideo, Src: src, Title: title}
	case "audio":
		return domain.MediaEmbedTarget{Kind: domain.EmbedAudio, Src: src, Title: title}
	case "iframe":
		if u, err := url.Parse(src); err == nil && IsKnownEmbedHost(strings.TrimPrefix(strings.ToLower(u.Host), "www.")) {
			return domain.MediaEmbedTarget{Kind: domain.EmbedLink, Src: CanonicalEmbedURL(src), Title: title}
		}
		return domain.MediaEmbedTarget{Kind: domain.EmbedIframe, Src: src, Title: title}
	}
	return domain.MediaEmbedTarget{Kind: domain.EmbedLink, Src: src, Title: title}
}

// embedTitle picks a label for the embed from the element, falling back to
// the source host.
func embedTitle(sel *goquery.Selection, src string) string {
	for _, attr := range []string{"title", "aria-label"} {
		if v := strings.TrimSpace(sel.AttrOr(attr, "")); v != "" {
			return v
		}
	}
	if u, err := url.Parse(src); err == nil && u.Host != "" {
		return strings.TrimPrefix(u.Host, "www.")
	}
	return "Media"
}
