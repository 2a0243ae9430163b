// Package models defines the typed job record that survives normalization
// and is handed to the persistence layer.
package models

import "time"

type JobCategory string

const (
	CategoryTechnology    JobCategory = "technology"
	CategoryFinance       JobCategory = "finance"
	CategoryHealthcare    JobCategory = "healthcare"
	CategoryMarketing     JobCategory = "marketing"
	CategorySales         JobCategory = "sales"
	CategoryHR            JobCategory = "hr"
	CategoryEducation     JobCategory = "education"
	CategoryRetail        JobCategory = "retail"
	CategoryHospitality   JobCategory = "hospitality"
	CategoryConstruction  JobCategory = "construction"
	CategoryManufacturing JobCategory = "manufacturing"
	CategoryConsulting    JobCategory = "consulting"
	CategoryLegal         JobCategory = "legal"
	CategoryOther         JobCategory = "other"
)

type JobType string

const (
	TypeFullTime   JobType = "full_time"
	TypePartTime   JobType = "part_time"
	TypeCasual     JobType = "casual"
	TypeContract   JobType = "contract"
	TypeTemporary  JobType = "temporary"
	TypeInternship JobType = "internship"
	TypeFreelance  JobType = "freelance"
)

type WorkMode string

const (
	ModeRemote  WorkMode = "remote"
	ModeHybrid  WorkMode = "hybrid"
	ModeOnsite  WorkMode = "onsite"
	ModeUnknown WorkMode = "unknown"
)

type SalaryPeriod string

const (
	PeriodHourly  SalaryPeriod = "hourly"
	PeriodDaily   SalaryPeriod = "daily"
	PeriodWeekly  SalaryPeriod = "weekly"
	PeriodMonthly SalaryPeriod = "monthly"
	PeriodYearly  SalaryPeriod = "yearly"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusExpired  Status = "expired"
	StatusFilled   Status = "filled"
)

// CompanyRef identifies a company by normalized name. Two listings whose
// company names normalize to the same slug resolve to the same company row.
type CompanyRef struct {
	Name string
	Slug string
}

// LocationRef is the parsed place a job is advertised for. Nil on a
// NormalizedJob means the listing carried no usable location text.
type LocationRef struct {
	Name    string
	City    string
	State   string
	Country string
}

// NormalizedJob is the unit handed to the persistence collaborator. Nothing
// in the engine mutates it after creation.
type NormalizedJob struct {
	ExternalSource string
	ExternalURL    string
	ExternalID     string

	Title       string
	Description string
	Tags        []string

	Category        JobCategory
	JobType         JobType
	WorkMode        WorkMode
	ExperienceLevel string

	SalaryMin      *float64
	SalaryMax      *float64
	SalaryCurrency string
	SalaryPeriod   SalaryPeriod
	SalaryRawText  string

	DatePosted    *time.Time
	PostedAgoText string

	Company  CompanyRef
	Location *LocationRef

	Status Status
}
