package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// foldDiacritics lowercases and strips combining marks so "Café" and "Cafe"
// normalize identically.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// CompanySlug produces the normalized identifier two listings with the same
// company name must share, case/whitespace/diacritic-insensitive.
func CompanySlug(name string) string {
	slug := nonSlugChars.ReplaceAllString(foldDiacritics(name), "-")
	return strings.Trim(slug, "-")
}

// Identity collapses case and whitespace for composite dedup keys.
func Identity(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
