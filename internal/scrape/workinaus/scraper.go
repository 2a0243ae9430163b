// Package workinaus scrapes workinaus.com.au. The board paginates with a
// plain pageNo query parameter and its cards carry almost no structural
// markup, so most fields come from line analysis of the card text.
package workinaus

import (
	"context"
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"

	"go-aujob-scraper/internal/browser"
	"go-aujob-scraper/internal/config"
	"go-aujob-scraper/internal/scrape"
	"go-aujob-scraper/utils"
)

// detail-panel selectors tried after clicking a card; the right-hand panel
// holds the only substantial description text on the board
var detailPanelSelectors = []string{
	".job-description",
	`[class*="job-summary"]`,
	`[class*="description"]`,
	".job-detail",
	".job-info",
}

// panel text below this length is a fragment of the card, not a description
const minPanelTextLen = 100

const source = "workinaus.com.au"

var cardSelectors = []string{
	".jobs-listing section.rounded-7",
	"section.rounded-7",
}

var (
	companyChain = scrape.Chain{
		scrape.Text("card heading", "h2"),
	}
	urlChain = scrape.Chain{
		scrape.Attr("job link", `a[href*="/job/"]`, "href"),
		scrape.Attr("any link", "a[href]", "href"),
	}
)

var stateNames = []string{
	"NSW", "VIC", "QLD", "WA", "SA", "TAS", "ACT", "NT",
	"New South Wales", "Victoria", "Queensland", "Western Australia",
	"South Australia", "Tasmania", "Australian Capital Territory", "Northern Territory",
}

var jobTypeWords = []string{"Full time", "Part time", "Casual", "Contract"}

type Scraper struct {
	cfg   config.SiteConfig
	shots *utils.ScreenShotDebugger
}

func New(cfg config.SiteConfig) scrape.Site {
	return &Scraper{cfg: cfg, shots: utils.NewScreenShotDebugger()}
}

func (s *Scraper) Source() string { return source }

func (s *Scraper) WarmUp(ctx context.Context, sess *browser.Session) error {
	if err := sess.Navigate(ctx, s.cfg.BaseURL); err != nil {
		return err
	}
	sess.HumanDelay()
	return nil
}

// Advance always succeeds once the page loads; past the last page the board
// serves an empty listing and the run ends on the empty-page rule.
func (s *Scraper) Advance(ctx context.Context, sess *browser.Session, pageNum int) (bool, error) {
	url := fmt.Sprintf("%s/job/searched?pageNo=%d", strings.TrimRight(s.cfg.BaseURL, "/"), pageNum)
	if err := sess.Navigate(ctx, url); err != nil {
		return false, err
	}
	sess.Pause(2, 4)
	return true, nil
}

func (s *Scraper) Blocked(page playwright.Page) bool {
	content, err := page.Content()
	if err != nil {
		return false
	}
	if strings.Contains(strings.ToLower(content), "captcha") {
		s.shots.CaptureAndLog(page, "workinaus_blocked", "WorkinAus blocked the session")
		return true
	}
	return false
}

func (s *Scraper) Listings(page playwright.Page) ([]playwright.Locator, error) {
	for _, selector := range cardSelectors {
		cards := page.Locator(selector)
		n, err := cards.Count()
		if err != nil {
			continue
		}
		if n > 0 {
			return cards.All()
		}
	}
	return nil, nil
}

func (s *Scraper) Extract(ctx context.Context, sess *browser.Session, card playwright.Locator) (*scrape.Candidate, error) {
	el := scrape.FromLocator(card)
	lines := cardLines(el.FullText())
	company := companyChain.Extract(el)

	cand := &scrape.Candidate{
		CompanyName:  company,
		Title:        pickTitle(lines, company),
		LocationText: pickLocation(lines),
		SalaryText:   pickSalary(lines),
		TagsText:     pickJobType(lines),
		Description:  pickDescription(lines),
	}
	cand.URL = scrape.AbsoluteURL(s.cfg.BaseURL, urlChain.Extract(el))

	if missing := cand.Missing(); len(missing) > 0 {
		return nil, &scrape.IncompleteListingError{Missing: missing}
	}

	if detail := s.panelDescription(sess, card); len(detail) > len(cand.Description) {
		cand.Description = detail
	}
	return cand, nil
}

// panelDescription clicks the card and reads the full description out of the
// detail panel that opens beside the listing. Best effort; the card's own
// description line remains the fallback.
func (s *Scraper) panelDescription(sess *browser.Session, card playwright.Locator) string {
	if sess == nil || sess.Page() == nil {
		return ""
	}
	if err := card.Click(playwright.LocatorClickOptions{Timeout: playwright.Float(5000)}); err != nil {
		return ""
	}
	sess.Pause(2, 3)

	for _, selector := range detailPanelSelectors {
		panel := sess.Page().Locator(selector).First()
		if n, err := panel.Count(); err != nil || n == 0 {
			continue
		}
		text, err := panel.InnerText(playwright.LocatorInnerTextOptions{
			Timeout: playwright.Float(2000),
		})
		if err != nil {
			continue
		}
		if text = strings.Join(strings.Fields(text), " "); len(text) >= minPanelTextLen {
			return text
		}
	}
	return ""
}

func cardLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// pickTitle takes the first line that is not the company, a badge, a
// location, a salary or a call to action.
func pickTitle(lines []string, company string) string {
	for _, line := range lines {
		if len(line) <= 3 || len(line) >= 80 {
			continue
		}
		if line == company || line == "FEATURED" {
			continue
		}
		if containsAny(line, jobTypeWords) || containsAny(line, stateNames) {
			continue
		}
		if strings.ContainsAny(line, "/$,") || strings.Contains(strings.ToLower(line), "seeking") || strings.Contains(line, "Apply") {
			continue
		}
		return line
	}
	return ""
}

func pickLocation(lines []string) string {
	for _, line := range lines {
		if len(line) > 5 && len(line) < 100 && containsAny(line, stateNames) {
			return line
		}
	}
	return ""
}

func pickSalary(lines []string) string {
	for _, line := range lines {
		if strings.Contains(line, "$") && (strings.Contains(line, "Annual") || strings.Contains(line, "Hourly")) {
			return line
		}
	}
	return ""
}

// pickDescription keeps the card's pitch line, the one pickTitle skips for
// containing "seeking" or running long.
func pickDescription(lines []string) string {
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), "seeking") || len(line) >= 80 {
			return line
		}
	}
	return ""
}

func pickJobType(lines []string) string {
	for _, line := range lines {
		for _, word := range jobTypeWords {
			if strings.Contains(line, word) {
				return word
			}
		}
	}
	return ""
}

func containsAny(line string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(line, t) {
			return true
		}
	}
	return false
}
