// ABOUTME: Markdown conversion service for sanitized article markup
// ABOUTME: Extends a base HTML-to-Markdown engine with ordered domain rules

package markdown

import (
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"

	"clipper-app-api/core/interfaces"
	htmlutil "clipper-app-api/pkg/utils/html"
)

// Converter turns rich article markup into Markdown. The zero value is not
// usable; construct it with NewConverter so the custom rule set is
// registered.
type Converter struct {
	conv   *md.Converter
	logger interfaces.Logger
}

// NewConverter builds a converter with the domain rules layered over the
// base engine. Rules are evaluated most-specific-first; a rule that
// declines an element falls through to the next one.
func NewConverter(logger interfaces.Logger) *Converter {
	conv := md.NewConverter("", true, nil)
	conv.AddRules(
		codeBlockRule(),
		mathRule(),
		embedRule(),
		imageLinkRule(),
		imageRule(),
		blockquoteRule(),
	)
	return &Converter{conv: conv, logger: logger}
}

// ToMarkdown converts markup to Markdown. It never fails: on any internal
// error or panic it degrades to the whitespace-collapsed, tag-stripped
// plain text of the input.
func (c *Converter) ToMarkdown(html string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			if c.logger != nil {
				c.logger.Error("markdown conversion panicked", map[string]interface{}{
					"source": "markdown",
					"panic":  r,
				})
			}
			out = htmlutil.StripHTML(html)
		}
	}()

	result, err := c.conv.ConvertString(html)
	if err != nil {
		if c.logger != nil {
			c.logger.Debug("markdown conversion failed", map[string]interface{}{
				"source": "markdown",
				"error":  err.Error(),
			})
		}
		return htmlutil.StripHTML(html)
	}
	return tidyMarkdown(result)
}

var (
	excessNewlinesRe = regexp.MustCompile(`\n{3,}`)
	trailingSpacesRe = regexp.MustCompile(`[ \t]+\n`)
	headingSpacingRe = regexp.MustCompile(`(#{1,6} [^\n]+)\n([^\n#>])`)
	headingLeadInRe  = regexp.MustCompile(`([^\n])\n(#{1,6} )`)
)

// tidyMarkdown normalizes line endings and blank-line spacing in the
// converter output.
func tidyMarkdown(markdown string) string {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	markdown = strings.ReplaceAll(markdown, "\r", "\n")

	markdown = trailingSpacesRe.ReplaceAllString(markdown, "\n")
	markdown = headingLeadInRe.ReplaceAllString(markdown, "$1\n\n$2")
	markdown = headingSpacingRe.ReplaceAllString(markdown, "$1\n\n$2")
	markdown = excessNewlinesRe.ReplaceAllString(markdown, "\n\n")

	return strings.TrimSpace(markdown)
}
