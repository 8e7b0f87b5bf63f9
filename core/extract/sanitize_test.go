package extract

import (
	"strings"
	"testing"
)

func TestSanitizeContent_RemovesActiveMarkup(t *testing.T) {
	got := sanitizeContent(`<div>
		<script>alert(1)</script>
		<style>p{color:red}</style>
		<p onclick="evil()">Keep me</p>
		<form><input name="q"></form>
	</div>`, "https://example.com/post")

	if strings.Contains(got, "script") || strings.Contains(got, "style") || strings.Contains(got, "form") {
		t.Errorf("active markup survived: %q", got)
	}
	if strings.Contains(got, "onclick") {
		t.Errorf("event handler survived: %q", got)
	}
	if !strings.Contains(got, "Keep me") {
		t.Errorf("content text lost: %q", got)
	}
}

func TestSanitizeContent_AbsolutizesResourceURLs(t *testing.T) {
	got := sanitizeContent(
		`<p><a href="/about">about</a><img src="../img/pic.jpg" srcset="/a.jpg 1x, /b.jpg 2x"></p>`,
		"https://example.com/blog/post")

	for _, want := range []string{
		`href="https://example.com/about"`,
		`src="https://example.com/img/pic.jpg"`,
		"https://example.com/a.jpg 1x",
		"https://example.com/b.jpg 2x",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("sanitized markup missing %q:\n%s", want, got)
		}
	}
}

func TestSanitizeContent_DropsJavascriptHrefs(t *testing.T) {
	got := sanitizeContent(`<a href="javascript:void(0)">click</a>`, "https://example.com")

	if strings.Contains(got, "javascript:") {
		t.Errorf("javascript href survived: %q", got)
	}
	if !strings.Contains(got, "click") {
		t.Errorf("link text lost: %q", got)
	}
}

func TestSanitizeContent_ResolvesDeferredImages(t *testing.T) {
	got := sanitizeContent(
		`<img src="data:image/gif;base64,R0lGOD" data-src="/real.jpg">`,
		"https://example.com/post")

	if !strings.Contains(got, `src="https://example.com/real.jpg"`) {
		t.Errorf("deferred image not resolved and absolutized: %q", got)
	}
}

func TestSanitizeContent_EmptyInput(t *testing.T) {
	if got := sanitizeContent("   ", "https://example.com"); got != "" {
		t.Errorf("sanitizeContent(blank) = %q, want empty", got)
	}
}

func TestResolveURLString(t *testing.T) {
	tests := []struct {
		name string
		base string
		ref  string
		want string
	}{
		{"relative path", "https://example.com/blog/post", "/img/a.jpg", "https://example.com/img/a.jpg"},
		{"already absolute", "https://example.com", "https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"protocol relative", "https://example.com", "//cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"data URI passes through", "https://example.com", "data:image/png;base64,AAA", "data:image/png;base64,AAA"},
		{"javascript dropped", "https://example.com", "javascript:void(0)", ""},
		{"empty ref", "https://example.com", "", ""},
		{"unparseable base keeps ref", "::not-a-url", "/img/a.jpg", "/img/a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveURLString(tt.base, tt.ref); got != tt.want {
				t.Errorf("resolveURLString(%q, %q) = %q, want %q", tt.base, tt.ref, got, tt.want)
			}
		})
	}
}
