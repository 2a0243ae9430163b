// Package scrape defines the raw listing candidate, the selector-fallback
// extraction strategies shared by all site adapters, and the site contract
// the navigator drives.
package scrape

import "strings"

// Candidate is the raw text bag extracted for one listing, pre-normalization.
// It lives only for the pipeline pass that produced it.
type Candidate struct {
	Title        string
	CompanyName  string
	LocationText string
	SalaryText   string
	Description  string
	PostedText   string
	URL          string
	TagsText     string
	Tags         []string
}

// Missing reports the required fields the candidate lacks. Title and URL are
// mandatory; everything else degrades to empty/unknown downstream.
func (c *Candidate) Missing() []string {
	var missing []string
	if strings.TrimSpace(c.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(c.URL) == "" {
		missing = append(missing, "url")
	}
	return missing
}

// AddTag appends a tag if it is non-empty and not already present.
func (c *Candidate) AddTag(tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return
	}
	for _, t := range c.Tags {
		if strings.EqualFold(t, tag) {
			return
		}
	}
	c.Tags = append(c.Tags, tag)
}
