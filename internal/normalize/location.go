package normalize

import (
	"strings"

	"go-aujob-scraper/internal/models"
)

// Australian state and territory abbreviations
var auStates = map[string]string{
	"NSW": "New South Wales",
	"VIC": "Victoria",
	"QLD": "Queensland",
	"WA":  "Western Australia",
	"SA":  "South Australia",
	"TAS": "Tasmania",
	"ACT": "Australian Capital Territory",
	"NT":  "Northern Territory",
}

// ParseLocation splits "City, State" patterns and recognizes the closed set
// of state abbreviations. Country defaults to the site's home country when
// the text does not carry one. Returns nil for empty input.
func ParseLocation(text, homeCountry string) *models.LocationRef {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if homeCountry == "" {
		homeCountry = "Australia"
	}

	loc := &models.LocationRef{Country: homeCountry}

	parts := strings.Split(text, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch {
	case len(parts) >= 2:
		loc.City = parts[0]
		loc.State = expandState(parts[1])
	default:
		// single segment: a trailing token may still be a state abbreviation,
		// e.g. "Melbourne VIC"
		words := strings.Fields(text)
		if len(words) >= 2 {
			if full, ok := auStates[strings.ToUpper(words[len(words)-1])]; ok {
				loc.State = full
				loc.City = strings.Join(words[:len(words)-1], " ")
			} else {
				loc.City = text
			}
		} else {
			loc.City = text
		}
	}

	switch {
	case loc.City != "" && loc.State != "":
		loc.Name = loc.City + ", " + loc.State
	case loc.City != "":
		loc.Name = loc.City
	default:
		loc.Name = text
	}
	return loc
}

// expandState maps an abbreviation inside a state segment to its full name,
// passing unrecognized segments through unchanged.
func expandState(segment string) string {
	for abbrev, full := range auStates {
		for _, word := range strings.Fields(strings.ToUpper(segment)) {
			if word == abbrev {
				return full
			}
		}
		if strings.EqualFold(segment, full) {
			return full
		}
	}
	return segment
}
