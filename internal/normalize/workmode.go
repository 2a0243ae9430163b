package normalize

import (
	"strings"

	"go-aujob-scraper/internal/models"
)

// InferWorkMode keyword-matches over the given texts. Defaults to unknown
// when no keyword appears.
func InferWorkMode(texts ...string) models.WorkMode {
	combined := strings.ToLower(strings.Join(texts, " "))
	switch {
	case strings.Contains(combined, "hybrid"):
		return models.ModeHybrid
	case strings.Contains(combined, "remote") || strings.Contains(combined, "work from home") || strings.Contains(combined, "wfh"):
		return models.ModeRemote
	case strings.Contains(combined, "on-site") || strings.Contains(combined, "onsite") || strings.Contains(combined, "on site") || strings.Contains(combined, "in office"):
		return models.ModeOnsite
	default:
		return models.ModeUnknown
	}
}

// experience keywords checked most-specific first
var experienceLevels = []string{
	"graduate", "entry level", "entry-level", "internship", "intern", "trainee",
	"junior", "mid-level", "senior", "lead", "principal", "head of", "director",
}

// InferExperience returns the first experience keyword found, or "".
func InferExperience(texts ...string) string {
	combined := strings.ToLower(strings.Join(texts, " "))
	for _, level := range experienceLevels {
		if strings.Contains(combined, level) {
			return level
		}
	}
	return ""
}

// InferJobType maps employment badges and keywords onto the job type enum.
// Full time is the default assumption on Australian boards.
func InferJobType(texts ...string) models.JobType {
	combined := strings.ToLower(strings.Join(texts, " "))
	switch {
	case strings.Contains(combined, "part-time") || strings.Contains(combined, "part time"):
		return models.TypePartTime
	case strings.Contains(combined, "casual"):
		return models.TypeCasual
	case strings.Contains(combined, "contract"):
		return models.TypeContract
	case strings.Contains(combined, "temporary") || strings.Contains(combined, "temp "):
		return models.TypeTemporary
	case strings.Contains(combined, "internship"):
		return models.TypeInternship
	case strings.Contains(combined, "freelance"):
		return models.TypeFreelance
	default:
		return models.TypeFullTime
	}
}
