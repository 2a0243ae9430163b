package normalize

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"go-aujob-scraper/internal/models"
)

// CategoryRule binds one category to its keyword set. Rule order in the
// table is the fixed priority order used to resolve ties.
type CategoryRule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// Classifier scores text against a category keyword table. For all input,
// including the empty string, Categorize returns a defined category; no
// match resolves to the sentinel "other".
type Classifier struct {
	rules    []CategoryRule
	patterns map[string][]*regexp.Regexp
}

// NewClassifier builds a classifier over the built-in category table.
func NewClassifier() *Classifier {
	c, err := newClassifier(defaultCategoryRules)
	if err != nil {
		// the built-in table only contains plain words
		panic(fmt.Sprintf("invalid built-in category table: %v", err))
	}
	return c
}

// LoadClassifier reads a category table from a YAML file so new categories
// or keywords do not require touching control flow.
func LoadClassifier(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading category table: %w", err)
	}
	var rules []CategoryRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parsing category table: %w", err)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("category table %s is empty", path)
	}
	return newClassifier(rules)
}

func newClassifier(rules []CategoryRule) (*Classifier, error) {
	c := &Classifier{rules: rules, patterns: make(map[string][]*regexp.Regexp)}
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			re, err := regexp.Compile(`\b` + regexp.QuoteMeta(strings.ToLower(kw)) + `\b`)
			if err != nil {
				return nil, fmt.Errorf("keyword %q in category %q: %w", kw, rule.Category, err)
			}
			c.patterns[rule.Category] = append(c.patterns[rule.Category], re)
		}
	}
	return c, nil
}

// Categorize scores every category against title, description and tags.
// Title matches count double. The highest score wins; ties resolve by table
// order; a zero score resolves to "other".
func (c *Classifier) Categorize(title, description string, tags []string) models.JobCategory {
	titleLower := strings.ToLower(title)
	combined := strings.ToLower(title + " " + description + " " + strings.Join(tags, " "))

	best := models.CategoryOther
	bestScore := 0
	for _, rule := range c.rules {
		score := 0
		for _, re := range c.patterns[rule.Category] {
			score += len(re.FindAllStringIndex(combined, -1))
			score += len(re.FindAllStringIndex(titleLower, -1)) * 2
		}
		// strictly greater keeps the earlier rule on ties
		if score > bestScore {
			bestScore = score
			best = models.JobCategory(rule.Category)
		}
	}
	return best
}

// defaultCategoryRules mirrors the production categorization table; the
// order fixes tie-break priority.
var defaultCategoryRules = []CategoryRule{
	{Category: "technology", Keywords: []string{
		"developer", "engineer", "programmer", "software", "web", "mobile", "frontend",
		"backend", "fullstack", "devops", "data scientist", "data analyst", "database",
		"python", "java", "javascript", "react", "node", "angular", "php", "ios",
		"android", "ui/ux", "architect", "technical", "it support", "system admin",
		"network", "security", "cyber", "cloud", "aws", "azure", "docker", "kubernetes",
		"machine learning", "artificial intelligence",
	}},
	{Category: "finance", Keywords: []string{
		"accountant", "financial", "finance", "banking", "investment", "analyst",
		"auditor", "bookkeeper", "treasurer", "controller", "cfo", "credit", "risk",
		"compliance", "tax", "payroll", "budget", "accounting", "cpa",
	}},
	{Category: "healthcare", Keywords: []string{
		"nurse", "doctor", "physician", "medical", "healthcare", "health", "clinical",
		"therapist", "dentist", "pharmacist", "surgeon", "physiotherapist",
		"psychologist", "paramedic", "hospital", "clinic", "patient care", "aged care",
	}},
	{Category: "marketing", Keywords: []string{
		"marketing", "digital marketing", "content", "social media", "seo", "brand",
		"advertising", "campaign", "communications", "public relations", "copywriter",
		"graphic designer", "creative", "market research", "growth",
	}},
	{Category: "sales", Keywords: []string{
		"sales", "business development", "account manager", "sales rep",
		"sales executive", "sales manager", "crm", "lead generation",
		"customer success", "relationship manager", "territory", "b2b",
	}},
	{Category: "hr", Keywords: []string{
		"human resources", "recruiter", "recruitment", "talent", "employee relations",
		"benefits", "compensation", "workforce", "staffing", "onboarding",
		"talent acquisition", "hr generalist", "hr manager", "hr advisor",
	}},
	{Category: "education", Keywords: []string{
		"teacher", "professor", "instructor", "educator", "tutor", "academic",
		"school", "university", "college", "education", "curriculum", "principal",
		"librarian", "teaching assistant", "faculty", "early childhood",
	}},
	{Category: "retail", Keywords: []string{
		"retail", "sales assistant", "cashier", "store", "shop", "merchandising",
		"inventory", "customer service", "visual merchandising", "buyer", "stock",
		"ecommerce",
	}},
	{Category: "hospitality", Keywords: []string{
		"hotel", "restaurant", "hospitality", "chef", "cook", "waiter", "bartender",
		"barista", "housekeeper", "front desk", "guest services", "catering",
		"tourism", "food and beverage",
	}},
	{Category: "construction", Keywords: []string{
		"construction", "builder", "electrician", "plumber", "carpenter", "welder",
		"foreman", "civil engineer", "surveyor", "trades", "apprentice", "labourer",
		"site manager", "scaffolder",
	}},
	{Category: "manufacturing", Keywords: []string{
		"manufacturing", "production", "factory", "assembly", "operator",
		"quality control", "quality assurance", "maintenance", "industrial", "plant",
		"machinery", "supply chain", "logistics", "warehouse", "forklift",
	}},
	{Category: "consulting", Keywords: []string{
		"consultant", "consulting", "advisory", "advisor", "strategy",
		"business consultant", "professional services", "specialist",
	}},
	{Category: "legal", Keywords: []string{
		"lawyer", "attorney", "legal", "law", "paralegal", "counsel", "litigation",
		"contracts", "intellectual property", "barrister", "solicitor", "conveyancer",
	}},
}
