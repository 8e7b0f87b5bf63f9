// ABOUTME: Content-quality assessment for extracted article markup
// ABOUTME: Scores completeness and cleanliness with fixed deterministic deductions

package quality

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"clipper-app-api/core/domain"
	"clipper-app-api/core/media"
)

var spaceRe = regexp.MustCompile(`\s+`)

// Assess scores extracted content from 0 to 100. It is a pure computation:
// no I/O, no randomness, identical input always yields the identical report.
func Assess(html string) domain.Quality {
	report := domain.Quality{Score: 100}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return domain.Quality{Score: 0, Warnings: []string{"content could not be parsed"}}
	}

	text := strings.TrimSpace(spaceRe.ReplaceAllString(doc.Text(), " "))
	report.WordCount = len(strings.Fields(text))

	switch {
	case len(text) < 200:
		report.Score -= 30
		report.Warnings = append(report.Warnings, "content is very short")
	case len(text) < 500:
		report.Score -= 10
		report.Warnings = append(report.Warnings, "content is short")
	}

	if doc.Find("script, style").Length() > 0 {
		report.Score -= 20
		report.Warnings = append(report.Warnings, "leftover script or style markup")
	}

	var total, broken int
	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		total++
		if media.IsPlaceholderSource(img.AttrOr("src", "")) {
			broken++
		}
	})
	report.HasImages = total > 0
	if total > 0 && broken*2 > total {
		report.Score -= 15
		report.Warnings = append(report.Warnings, "most images are unresolved placeholders")
	}

	report.HasCode = doc.Find("pre, code").Length() > 0

	if report.Score < 0 {
		report.Score = 0
	}
	return report
}
