package scrape

import (
	"net/url"
	"strings"
)

// AbsoluteURL resolves a possibly-relative href against the site base.
// Returns "" for unresolvable input so chains can fall through.
func AbsoluteURL(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return b.ResolveReference(ref).String()
}
