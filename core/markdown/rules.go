// ABOUTME: Custom Markdown conversion rules for math, embeds, images and quotes
// ABOUTME: Each rule declines elements it does not own so later rules apply

package markdown

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"

	"clipper-app-api/core/domain"
	"clipper-app-api/core/media"
	htmlutil "clipper-app-api/pkg/utils/html"
)

const (
	videoMarker = "▶"
	audioMarker = "🎧"
)

var languageClassRe = regexp.MustCompile(`(?:^|\s)(?:language|lang)-([\w#+-]+)`)

// codeBlockRule renders pre elements as fenced code blocks, carrying the
// language token inferred from a language-*/lang-* class.
func codeBlockRule() md.Rule {
	return md.Rule{
		Filter: []string{"pre"},
		Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
			code := selec.Find("code").First()
			text := selec.Text()
			language := languageFromClass(selec.AttrOr("class", ""))
			if code.Length() > 0 {
				text = code.Text()
				if fromCode := languageFromClass(code.AttrOr("class", "")); fromCode != "" {
					language = fromCode
				}
			}
			text = strings.Trim(text, "\n")
			fenced := fmt.Sprintf("\n\n```%s\n%s\n```\n\n", language, text)
			return md.String(fenced)
		},
	}
}

// mathRule renders math containers as TeX delimited by $ or $$. It matches
// by tag, class signature or an embedded TeX annotation and declines
// everything else.
func mathRule() md.Rule {
	return md.Rule{
		Filter: []string{"math", "span", "div"},
		Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
			tex, display, ok := extractTeX(selec)
			if !ok {
				return nil
			}
			if tex == "" {
				return md.String("")
			}
			if display {
				return md.String("\n\n$$" + tex + "$$\n\n")
			}
			return md.String("$" + tex + "$")
		},
	}
}

var mathClassRe = regexp.MustCompile(`(?:^|\s)(katex|math|MathJax)(?:\s|-|_|$)`)

func extractTeX(selec *goquery.Selection) (tex string, display bool, ok bool) {
	name := goquery.NodeName(selec)
	class := selec.AttrOr("class", "")
	isMath := name == "math" || mathClassRe.MatchString(class)

	annotation := selec.Find(`annotation[encoding*="tex"]`).First()
	if annotation.Length() == 0 && !isMath {
		return "", false, false
	}

	// Nested math containers are handled once, at the outermost element.
	if selec.ParentsFiltered(`math, [class*="katex"], [class*="math"]`).Length() > 0 {
		return "", false, true
	}

	switch {
	case annotation.Length() > 0:
		tex = annotation.Text()
	case selec.AttrOr("data-tex", "") != "":
		tex = selec.AttrOr("data-tex", "")
	default:
		tex = selec.Text()
	}
	tex = strings.TrimSpace(tex)

	display = name == "div" ||
		selec.AttrOr("display", "") == "block" ||
		strings.Contains(class, "display")
	return tex, display, true
}

// embedRule renders known video/audio embeds as a labeled link with a fixed
// marker glyph, canonicalizing platform embed URLs to their public form.
func embedRule() md.Rule {
	return md.Rule{
		Filter: []string{"iframe", "video", "audio"},
		Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
			target := media.ResolveEmbed(selec)
			if target.Src == "" {
				return md.String("")
			}

			marker := videoMarker
			if target.Kind == domain.EmbedAudio {
				marker = audioMarker
			}
			link := fmt.Sprintf("\n\n[%s %s](%s)\n\n", marker, target.Title, target.Src)
			return md.String(link)
		},
	}
}

// imageRule resolves image sources through the shared deferred-source chain
// and derives alt text from the best available signal. Images without any
// usable source are dropped entirely.
func imageRule() md.Rule {
	return md.Rule{
		Filter: []string{"img"},
		Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
			return md.String(renderImage(selec))
		},
	}
}

// imageLinkRule collapses a link that wraps only an image into the image's
// own Markdown, dropping the redundant link.
func imageLinkRule() md.Rule {
	return md.Rule{
		Filter: []string{"a"},
		Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
			children := selec.Children()
			if children.Length() != 1 || !children.Is("img") {
				return nil
			}
			if strings.TrimSpace(selec.Text()) != "" {
				return nil
			}
			return md.String(renderImage(children.First()))
		},
	}
}

// blockquoteRule prefixes every line with a quote marker. Nested quotes are
// converted innermost-first, so each enclosing level adds one more marker.
func blockquoteRule() md.Rule {
	return md.Rule{
		Filter: []string{"blockquote"},
		Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
			content = strings.TrimSpace(content)
			if content == "" {
				return md.String("")
			}

			lines := strings.Split(content, "\n")
			for i, line := range lines {
				if strings.TrimSpace(line) == "" {
					lines[i] = ">"
				} else {
					lines[i] = "> " + line
				}
			}
			quoted := "\n\n" + strings.Join(lines, "\n") + "\n\n"
			return md.String(quoted)
		},
	}
}

func renderImage(img *goquery.Selection) string {
	src := media.ResolveImageSource(img)
	if src == "" {
		return ""
	}
	return fmt.Sprintf("![%s](%s)", imageAltText(img, src), src)
}

// imageAltText derives alt text in priority order: alt, title or
// aria-label, enclosing figure caption, humanized filename.
func imageAltText(img *goquery.Selection, src string) string {
	for _, attr := range []string{"alt", "title", "aria-label"} {
		if v := htmlutil.Collapse(img.AttrOr(attr, "")); v != "" {
			return v
		}
	}
	if caption := htmlutil.Collapse(img.Closest("figure").Find("figcaption").First().Text()); caption != "" {
		return caption
	}
	return humanizeFilename(src)
}

var filenameSeparatorRe = regexp.MustCompile(`[-_+]+|%20`)

// humanizeFilename turns "summer-trip_04.jpg" into "summer trip 04".
func humanizeFilename(src string) string {
	base := path.Base(src)
	if u, err := url.Parse(src); err == nil && u.Path != "" {
		base = path.Base(u.Path)
	}
	base = strings.TrimSuffix(base, path.Ext(base))
	return htmlutil.Collapse(filenameSeparatorRe.ReplaceAllString(base, " "))
}

func languageFromClass(class string) string {
	if m := languageClassRe.FindStringSubmatch(class); m != nil {
		return m[1]
	}
	return ""
}
