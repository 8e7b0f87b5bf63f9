// ABOUTME: HTML utilities for stripping tags down to collapsed plain text
// ABOUTME: Serves as the safe degradation target for markup converters

package html

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var spaceRe = regexp.MustCompile(`\s+`)

// Tags whose text content is never user-visible.
var invisibleContent = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// StripHTML removes all markup from a fragment and returns its visible
// text with whitespace collapsed to single spaces. Malformed input is
// tolerated; the tokenizer consumes whatever it can.
func StripHTML(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	skipDepth := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			return Collapse(b.String())
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(z.Text())
				b.WriteByte(' ')
			}
		case html.StartTagToken:
			name, _ := z.TagName()
			if invisibleContent[string(name)] {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if invisibleContent[string(name)] && skipDepth > 0 {
				skipDepth--
			}
		}
	}
}

// Collapse trims and folds whitespace runs to single spaces.
func Collapse(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
