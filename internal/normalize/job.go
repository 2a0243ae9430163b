package normalize

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"go-aujob-scraper/internal/models"
	"go-aujob-scraper/internal/scrape"
)

// ValidationError marks a candidate that must not reach persistence, e.g. a
// malformed external URL.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// BuildJob turns a raw candidate into the normalized record. The URL is
// validated up front; every other field degrades to defaults with raw text
// preserved. now anchors relative posted dates.
func BuildJob(source string, cand *scrape.Candidate, classifier *Classifier, homeCountry string, now time.Time) (*models.NormalizedJob, error) {
	externalURL := strings.TrimSpace(cand.URL)
	if externalURL == "" {
		return nil, &ValidationError{Field: "external_url", Reason: "empty"}
	}
	parsed, err := url.Parse(externalURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, &ValidationError{Field: "external_url", Reason: fmt.Sprintf("not an absolute http(s) url: %q", externalURL)}
	}

	title := strings.TrimSpace(cand.Title)
	if title == "" {
		return nil, &ValidationError{Field: "title", Reason: "empty"}
	}

	companyName := strings.TrimSpace(cand.CompanyName)
	if companyName == "" {
		companyName = "Unknown Company"
	}

	tags := append([]string(nil), cand.Tags...)
	for _, t := range strings.Split(cand.TagsText, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = appendUniqueFold(tags, t)
		}
	}

	salary := ParseSalary(cand.SalaryText)
	postedText := strings.TrimSpace(cand.PostedText)

	description := strings.TrimSpace(cand.Description)
	tagText := strings.Join(tags, " ")

	job := &models.NormalizedJob{
		ExternalSource: source,
		ExternalURL:    externalURL,
		Title:          title,
		Description:    description,
		Tags:           tags,

		Category:        classifier.Categorize(title, description, tags),
		JobType:         InferJobType(title, description, tagText),
		WorkMode:        InferWorkMode(title, description, tagText),
		ExperienceLevel: InferExperience(title, description, tagText),

		SalaryMin:      salary.Min,
		SalaryMax:      salary.Max,
		SalaryCurrency: salary.Currency,
		SalaryPeriod:   salary.Period,
		SalaryRawText:  salary.RawText,

		DatePosted:    ParseDate(postedText, now),
		PostedAgoText: postedText,

		Company: models.CompanyRef{
			Name: companyName,
			Slug: CompanySlug(companyName),
		},
		Location: ParseLocation(cand.LocationText, homeCountry),

		Status: models.StatusActive,
	}
	return job, nil
}

func appendUniqueFold(tags []string, tag string) []string {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return tags
		}
	}
	return append(tags, tag)
}
