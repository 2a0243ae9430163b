package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-aujob-scraper/internal/models"
	"go-aujob-scraper/internal/scrape"
)

var buildAnchor = time.Date(2025, 8, 8, 10, 0, 0, 0, time.UTC)

func TestBuildJobFullCandidate(t *testing.T) {
	cand := &scrape.Candidate{
		Title:        " Senior Software Engineer ",
		CompanyName:  "Atlassian",
		LocationText: "Sydney, NSW",
		SalaryText:   "$120,000 - $150,000 per year",
		Description:  "Build developer tools. Hybrid working.",
		PostedText:   "11d ago",
		URL:          "https://www.seek.com.au/job/12345",
		TagsText:     "Full time, Hybrid",
	}

	job, err := BuildJob("seek.com.au", cand, NewClassifier(), "Australia", buildAnchor)
	require.NoError(t, err)

	assert.Equal(t, "seek.com.au", job.ExternalSource)
	assert.Equal(t, "https://www.seek.com.au/job/12345", job.ExternalURL)
	assert.Equal(t, "Senior Software Engineer", job.Title)
	assert.Equal(t, "Atlassian", job.Company.Name)
	assert.Equal(t, "atlassian", job.Company.Slug)

	assert.Equal(t, models.CategoryTechnology, job.Category)
	assert.Equal(t, models.ModeHybrid, job.WorkMode)
	assert.Equal(t, "senior", job.ExperienceLevel)

	require.NotNil(t, job.SalaryMin)
	assert.Equal(t, 120000.0, *job.SalaryMin)
	require.NotNil(t, job.SalaryMax)
	assert.Equal(t, 150000.0, *job.SalaryMax)
	assert.Equal(t, "AUD", job.SalaryCurrency)
	assert.Equal(t, models.PeriodYearly, job.SalaryPeriod)

	require.NotNil(t, job.DatePosted)
	assert.Equal(t, time.Date(2025, 7, 28, 9, 0, 0, 0, time.UTC), *job.DatePosted)
	assert.Equal(t, "11d ago", job.PostedAgoText)

	require.NotNil(t, job.Location)
	assert.Equal(t, "Sydney, New South Wales", job.Location.Name)

	assert.Equal(t, models.StatusActive, job.Status)
	assert.ElementsMatch(t, []string{"Full time", "Hybrid"}, job.Tags)
}

func TestBuildJobRejectsBadURL(t *testing.T) {
	tests := []string{"", "   ", "not-a-url", "ftp://example.com/job/1", "/job/relative"}
	for _, u := range tests {
		_, err := BuildJob("seek.com.au", &scrape.Candidate{Title: "Engineer", URL: u}, NewClassifier(), "Australia", buildAnchor)
		require.Error(t, err, u)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr, u)
	}
}

func TestBuildJobRejectsEmptyTitle(t *testing.T) {
	_, err := BuildJob("seek.com.au", &scrape.Candidate{URL: "https://example.com/job/1"}, NewClassifier(), "Australia", buildAnchor)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)
}

func TestBuildJobDegradesMissingOptionalFields(t *testing.T) {
	cand := &scrape.Candidate{
		Title: "Mystery Role",
		URL:   "https://example.com/job/2",
	}

	job, err := BuildJob("au.jora.com", cand, NewClassifier(), "Australia", buildAnchor)
	require.NoError(t, err)

	assert.Equal(t, "Unknown Company", job.Company.Name)
	assert.Nil(t, job.SalaryMin)
	assert.Nil(t, job.DatePosted)
	assert.Empty(t, job.PostedAgoText)
	assert.Nil(t, job.Location)
	assert.Equal(t, models.CategoryOther, job.Category)
	assert.Equal(t, models.ModeUnknown, job.WorkMode)
}

func TestBuildJobMergesTagsWithoutDuplicates(t *testing.T) {
	cand := &scrape.Candidate{
		Title:    "Engineer",
		URL:      "https://example.com/job/3",
		Tags:     []string{"Remote"},
		TagsText: "remote, Contract",
	}

	job, err := BuildJob("seek.com.au", cand, NewClassifier(), "Australia", buildAnchor)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Remote", "Contract"}, job.Tags)
}
