// Package normalize converts raw listing text into typed values. Every
// parser here is total: unrecognized input degrades to nil/defaults with the
// original text preserved, it never returns an error.
package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"go-aujob-scraper/internal/models"
)

// Salary is the structured result of parsing free-text compensation.
// RawText always holds the input verbatim, even when parsing fails.
type Salary struct {
	Min      *float64
	Max      *float64
	Currency string
	Period   models.SalaryPeriod
	RawText  string
}

var (
	periodPattern = `(hour|hr|day|week|month|annum|year|yr|p\.?a\.?)`

	salaryRangeWithPeriod  = regexp.MustCompile(`\$?(\d+(?:\.\d+)?)\s*(?:-|–|—|to)\s*\$?(\d+(?:\.\d+)?)\s*(?:per\s+|an?\s+|/\s*)` + periodPattern)
	salarySingleWithPeriod = regexp.MustCompile(`\$?(\d+(?:\.\d+)?)\s*(?:per\s+|an?\s+|/\s*)` + periodPattern)
	salaryRangeThousands   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*k?\s*(?:-|–|—|to)\s*(\d+(?:\.\d+)?)\s*k`)
	salarySingleThousands  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*k\b`)
	salaryBareRange        = regexp.MustCompile(`\$(\d+(?:\.\d+)?)\s*(?:-|–|—|to)\s*\$?(\d+(?:\.\d+)?)`)
	salaryBareSingle       = regexp.MustCompile(`\$(\d+(?:\.\d+)?)`)
)

var salaryPeriods = map[string]models.SalaryPeriod{
	"hour":  models.PeriodHourly,
	"hr":    models.PeriodHourly,
	"day":   models.PeriodDaily,
	"week":  models.PeriodWeekly,
	"month": models.PeriodMonthly,
	"annum": models.PeriodYearly,
	"year":  models.PeriodYearly,
	"yr":    models.PeriodYearly,
	"pa":    models.PeriodYearly,
	"p.a.":  models.PeriodYearly,
	"p.a":   models.PeriodYearly,
}

// ParseSalary recognizes currency markers, numeric ranges, single figures,
// "80k"/"80-100k" shorthand and period keywords. On unrecognized text the
// structured fields stay nil and the raw text is kept.
func ParseSalary(text string) Salary {
	s := Salary{
		Currency: "AUD",
		Period:   models.PeriodYearly,
		RawText:  strings.TrimSpace(text),
	}
	if s.RawText == "" {
		s.RawText = text
		return s
	}

	s.Currency = detectCurrency(s.RawText)

	// strip thousands separators before matching
	cleaned := strings.ToLower(strings.ReplaceAll(s.RawText, ",", ""))

	if m := salaryRangeWithPeriod.FindStringSubmatch(cleaned); m != nil {
		s.Min = parseAmount(m[1])
		s.Max = parseAmount(m[2])
		s.Period = lookupPeriod(m[3])
	} else if m := salaryRangeThousands.FindStringSubmatch(cleaned); m != nil {
		s.Min = scaleThousands(parseAmount(m[1]))
		s.Max = scaleThousands(parseAmount(m[2]))
	} else if m := salarySingleWithPeriod.FindStringSubmatch(cleaned); m != nil {
		s.Min = parseAmount(m[1])
		s.Period = lookupPeriod(m[2])
	} else if m := salarySingleThousands.FindStringSubmatch(cleaned); m != nil {
		s.Min = scaleThousands(parseAmount(m[1]))
	} else if m := salaryBareRange.FindStringSubmatch(cleaned); m != nil {
		s.Min = parseAmount(m[1])
		s.Max = parseAmount(m[2])
	} else if m := salaryBareSingle.FindStringSubmatch(cleaned); m != nil {
		s.Min = parseAmount(m[1])
	}

	if s.Min != nil && s.Max != nil && *s.Min > *s.Max {
		s.Min, s.Max = s.Max, s.Min
	}
	return s
}

func detectCurrency(text string) string {
	upper := strings.ToUpper(text)
	switch {
	case strings.Contains(upper, "USD") || strings.Contains(text, "US$"):
		return "USD"
	case strings.Contains(upper, "GBP") || strings.Contains(text, "£"):
		return "GBP"
	case strings.Contains(upper, "EUR") || strings.Contains(text, "€"):
		return "EUR"
	default:
		return "AUD"
	}
}

func lookupPeriod(keyword string) models.SalaryPeriod {
	if p, ok := salaryPeriods[keyword]; ok {
		return p
	}
	return models.PeriodYearly
}

func parseAmount(digits string) *float64 {
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return nil
	}
	return &v
}

func scaleThousands(v *float64) *float64 {
	if v == nil {
		return nil
	}
	scaled := *v * 1000
	return &scaled
}
