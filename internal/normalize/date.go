package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// mo/month must precede the bare m so "3mo ago" stays a month
	relativeDateRe = regexp.MustCompile(`(\d+)\s*(min|minute|mo|month|m|h|hr|hour|d|day|w|wk|week)s?(?:\+)?\s*ago`)
	plusDaysRe     = regexp.MustCompile(`(\d+)\+\s*days?\s*ago`)
)

// absolute formats seen across the boards, day-first as Australian sites
// print them
var absoluteDateFormats = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate converts a posted-date phrase into an absolute time using the
// extraction timestamp as the anchor for relative phrases. It returns nil
// for unrecognized text; the caller keeps the phrase verbatim either way.
func ParseDate(text string, anchor time.Time) *time.Time {
	cleaned := strings.ToLower(strings.TrimSpace(text))
	if cleaned == "" {
		return nil
	}
	cleaned = strings.TrimPrefix(cleaned, "posted ")
	cleaned = strings.TrimPrefix(cleaned, "listed ")

	if strings.Contains(cleaned, "today") || strings.Contains(cleaned, "just now") {
		return at(anchor)
	}
	if strings.Contains(cleaned, "yesterday") {
		return at(anchor.AddDate(0, 0, -1))
	}

	// "30+ days ago" means at least that old; use the floor
	if m := plusDaysRe.FindStringSubmatch(cleaned); m != nil {
		n, _ := strconv.Atoi(m[1])
		return at(anchor.AddDate(0, 0, -n))
	}

	if m := relativeDateRe.FindStringSubmatch(cleaned); m != nil {
		n, _ := strconv.Atoi(m[1])
		switch m[2] {
		case "m", "min", "minute":
			t := anchor.Add(-time.Duration(n) * time.Minute)
			return &t
		case "h", "hr", "hour":
			t := anchor.Add(-time.Duration(n) * time.Hour)
			return &t
		case "d", "day":
			return at(anchor.AddDate(0, 0, -n))
		case "w", "wk", "week":
			return at(anchor.AddDate(0, 0, -7*n))
		case "mo", "month":
			return at(anchor.AddDate(0, -n, 0))
		}
	}

	for _, layout := range absoluteDateFormats {
		if t, err := time.Parse(layout, strings.TrimSpace(text)); err == nil {
			return &t
		}
	}
	// ISO timestamps from JSON-LD blocks
	if len(cleaned) >= 10 {
		if t, err := time.Parse("2006-01-02", cleaned[:10]); err == nil {
			return &t
		}
	}

	return nil
}

// at pins relative dates to 09:00 so repeated runs on the same day produce
// the same posted date.
func at(t time.Time) *time.Time {
	pinned := time.Date(t.Year(), t.Month(), t.Day(), 9, 0, 0, 0, t.Location())
	return &pinned
}
