// ABOUTME: Date normalization for heterogeneous publish-date strings
// ABOUTME: Resolves locale formats and relative expressions into YYYY-MM-DD

package metadata

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const isoDate = "2006-01-02"

var (
	isoPrefixRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})([T ].*)?$`)
	isoLikeRe   = regexp.MustCompile(`^(\d{4})[-/.](\d{1,2})[-/.](\d{1,2})\b`)
	cjkDateRe   = regexp.MustCompile(`(\d{4})\s*年\s*(\d{1,2})\s*月\s*(\d{1,2})\s*日`)
	relativeRe  = regexp.MustCompile(`(?i)^(\d+|an?)\s*(minute|hour|day|week|month|year)s?\s+ago$`)
	mdyRe       = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	dmyRe       = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`)
)

// Layouts for English month names in either order.
var monthNameLayouts = []string{
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"2. January 2006",
}

// NormalizeDate converts an arbitrary locale date string into YYYY-MM-DD.
// Unparseable input yields the empty string; it never guesses a partial date.
func NormalizeDate(s string) string {
	return normalizeDateAt(s, time.Now())
}

// normalizeDateAt is the clock-injectable form used by relative expressions.
func normalizeDateAt(s string, now time.Time) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	// Already ISO-prefixed strings pass straight through.
	if m := isoPrefixRe.FindStringSubmatch(s); m != nil {
		if _, err := time.Parse(isoDate, m[1]); err == nil {
			return m[1]
		}
		return ""
	}

	// Generic ISO-like year/month/day with -, / or . separators.
	if m := isoLikeRe.FindStringSubmatch(s); m != nil {
		return formatYMD(m[1], m[2], m[3])
	}

	// Localized year/month/day with CJK unit markers.
	if m := cjkDateRe.FindStringSubmatch(s); m != nil {
		return formatYMD(m[1], m[2], m[3])
	}

	if d, ok := resolveRelative(strings.ToLower(s), now); ok {
		return d
	}

	// M/D/YYYY.
	if m := mdyRe.FindStringSubmatch(s); m != nil {
		return formatYMD(m[3], m[1], m[2])
	}

	// D-M-YYYY.
	if m := dmyRe.FindStringSubmatch(s); m != nil {
		return formatYMD(m[3], m[2], m[1])
	}

	for _, layout := range monthNameLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(isoDate)
		}
	}

	if t, err := dateparse.ParseAny(s); err == nil {
		return t.Format(isoDate)
	}

	return ""
}

// resolveRelative handles expressions like "just now", "3 days ago" and
// "yesterday" against the supplied clock.
func resolveRelative(s string, now time.Time) (string, bool) {
	switch s {
	case "just now", "now", "today":
		return now.Format(isoDate), true
	case "yesterday":
		return now.AddDate(0, 0, -1).Format(isoDate), true
	}

	m := relativeRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}

	n := 1
	if m[1] != "a" && m[1] != "an" {
		parsed, err := strconv.Atoi(m[1])
		if err != nil {
			return "", false
		}
		n = parsed
	}

	switch strings.ToLower(m[2]) {
	case "minute", "hour":
		return now.Format(isoDate), true
	case "day":
		return now.AddDate(0, 0, -n).Format(isoDate), true
	case "week":
		return now.AddDate(0, 0, -7*n).Format(isoDate), true
	case "month":
		return now.AddDate(0, -n, 0).Format(isoDate), true
	case "year":
		return now.AddDate(-n, 0, 0).Format(isoDate), true
	}
	return "", false
}

// formatYMD validates the component ranges and renders YYYY-MM-DD.
// Out-of-range components yield empty rather than a guessed date.
func formatYMD(year, month, day string) string {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if y < 1000 || m < 1 || m > 12 || d < 1 || d > 31 {
		return ""
	}
	candidate := fmt.Sprintf("%04d-%02d-%02d", y, m, d)
	if _, err := time.Parse(isoDate, candidate); err != nil {
		return ""
	}
	return candidate
}
