// Package workforce scrapes workforceaustralia.gov.au job search results.
// The site loads more results on scroll instead of paginating, so each
// Advance scrolls to the bottom and the run ends when the card count stops
// growing. List cards carry neither company nor full description; both come
// from the job's detail page.
package workforce

import (
	"context"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/playwright-community/playwright-go"

	"go-aujob-scraper/internal/browser"
	"go-aujob-scraper/internal/config"
	"go-aujob-scraper/internal/scrape"
	"go-aujob-scraper/utils"
)

const source = "workforceaustralia.gov.au"

var cardSelectors = []string{
	`[data-testid="vacancy-item"]`,
	`[data-testid="job-card"]`,
	".vacancy-item",
	".job-card",
	`div[data-testid*="vacancy"]`,
	".search-result-item",
	"article",
}

var (
	titleChain = scrape.Chain{
		scrape.Text("heading link", "h3 a"),
		scrape.Text("title class link", ".job-title a"),
		scrape.Text("testid title", `[data-testid="job-title"]`),
		scrape.Text("vacancy title link", ".vacancy-title a"),
		scrape.Text("heading", "h3"),
	}
	urlChain = scrape.Chain{
		scrape.Attr("detail link", `a[href*="/jobs/details/"]`, "href"),
		scrape.Attr("heading link", "h3 a", "href"),
		scrape.Attr("title class link", ".job-title a", "href"),
		scrape.Attr("any job link", `a[href*="/job/"]`, "href"),
	}
	locationChain = scrape.Chain{
		scrape.Text("location class", ".location"),
		scrape.Text("testid location", `[data-testid="job-location"]`),
		scrape.Text("job location class", ".job-location"),
		scrape.Text("workplace location", ".workplace-location"),
		scrape.Text("locality class", ".locality"),
	}
	summaryChain = scrape.Chain{
		scrape.Text("snippet class", ".job-snippet"),
		scrape.Text("description class", ".description"),
		scrape.Text("summary class", ".summary"),
	}
	postedChain = scrape.Chain{
		scrape.Text("date class", ".date"),
		scrape.Text("posted class", ".posted"),
	}
)

// detail-page selectors tried in order on the fetched job page HTML
var detailDescriptionSelectors = []string{
	".card-inner",
	".card-copy",
	".job-description",
	".job-details",
	".description",
	".vacancy-description",
	`[data-testid="job-description"]`,
	`[data-testid="vacancy-description"]`,
}

// the company name renders as an underlined link right under the job title
var detailCompanySelectors = []string{
	"a.underline",
	"span.underline",
	`[data-testid="company-name"]`,
	".company-name",
	".employer-name",
	".organisation-name",
	"h1 + a",
	"h2 + a",
	"h3 + a",
}

// navigation chrome the positional company selectors can pick up by mistake
var companySkipWords = []string{
	"apply", "search", "home", "jobs", "save", "share", "back", "sign in",
	"login", "register", "view", "find a job",
}

const detailFetchScript = `async (url) => {
	try {
		const response = await fetch(url, { credentials: 'include' });
		return await response.text();
	} catch (_) {
		return '';
	}
}`

// Scraper tracks how many cards earlier rounds already yielded so each
// scroll round only emits the newly loaded tail.
type Scraper struct {
	cfg       config.SiteConfig
	shots     *utils.ScreenShotDebugger
	seen      int
	lastCount int
}

func New(cfg config.SiteConfig) scrape.Site {
	return &Scraper{cfg: cfg, shots: utils.NewScreenShotDebugger()}
}

func (s *Scraper) Source() string { return source }

func (s *Scraper) WarmUp(ctx context.Context, sess *browser.Session) error {
	if err := sess.Navigate(ctx, s.cfg.BaseURL); err != nil {
		return err
	}
	// government site, give it room to settle
	sess.Pause(3, 5)
	return nil
}

func (s *Scraper) Advance(ctx context.Context, sess *browser.Session, pageNum int) (bool, error) {
	if pageNum == 1 {
		if err := sess.Navigate(ctx, s.cfg.StartURL); err != nil {
			return false, err
		}
		sess.Pause(3, 5)
		s.seen = 0
		s.lastCount = 0
		return true, nil
	}

	if _, err := sess.Page().Evaluate("window.scrollTo(0, document.body.scrollHeight)"); err != nil {
		return false, nil
	}
	sess.Pause(2, 4)

	count := s.countCards(sess.Page())
	if count <= s.lastCount {
		// nothing new loaded, the result set is exhausted
		return false, nil
	}
	s.lastCount = count
	return true, nil
}

func (s *Scraper) Blocked(page playwright.Page) bool {
	content, err := page.Content()
	if err != nil {
		return false
	}
	lower := strings.ToLower(content)
	if strings.Contains(lower, "captcha") || strings.Contains(lower, "unusual traffic") {
		s.shots.CaptureAndLog(page, "workforce_blocked", "Workforce Australia blocked the session")
		return true
	}
	return false
}

// Listings returns only the cards added since the previous round.
func (s *Scraper) Listings(page playwright.Page) ([]playwright.Locator, error) {
	cards, err := s.allCards(page)
	if err != nil {
		return nil, err
	}
	if s.lastCount < len(cards) {
		s.lastCount = len(cards)
	}
	if s.seen >= len(cards) {
		return nil, nil
	}
	fresh := cards[s.seen:]
	s.seen = len(cards)
	return fresh, nil
}

func (s *Scraper) Extract(ctx context.Context, sess *browser.Session, card playwright.Locator) (*scrape.Candidate, error) {
	el := scrape.FromLocator(card)

	cand := &scrape.Candidate{
		Title:        titleChain.Extract(el),
		LocationText: locationChain.Extract(el),
		Description:  summaryChain.Extract(el),
		PostedText:   postedChain.Extract(el),
	}
	cand.URL = scrape.AbsoluteURL(s.cfg.BaseURL, urlChain.Extract(el))

	if cand.LocationText == "" {
		cand.LocationText = locationFromText(el.FullText())
	}

	if missing := cand.Missing(); len(missing) > 0 {
		return nil, &scrape.IncompleteListingError{Missing: missing}
	}

	sess.HumanDelay()
	company, description := s.fetchDetail(sess, cand.URL)
	if company != "" {
		cand.CompanyName = company
	}
	if len(description) > len(cand.Description) {
		cand.Description = description
	}
	return cand, nil
}

// fetchDetail pulls the job page without leaving the results page and reads
// the company name and full description off it. Best effort.
func (s *Scraper) fetchDetail(sess *browser.Session, jobURL string) (string, string) {
	raw, err := sess.Page().Evaluate(detailFetchScript, jobURL)
	if err != nil {
		log.Printf("⚠️ [%s] Detail fetch failed for %s: %v", source, jobURL, err)
		return "", ""
	}
	html, ok := raw.(string)
	if !ok || html == "" {
		return "", ""
	}
	company, description := detailFromHTML(html)
	if company == "" {
		log.Printf("⚠️ [%s] No company name on detail page %s", source, jobURL)
	}
	return company, description
}

// detailFromHTML parses a fetched job page. Split out so the selector logic
// tests against canned markup.
func detailFromHTML(html string) (company, description string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", ""
	}

	for _, selector := range detailCompanySelectors {
		text := collapseSpace(doc.Find(selector).First().Text())
		if validCompanyName(text) {
			company = text
			break
		}
	}
	for _, selector := range detailDescriptionSelectors {
		if text := strings.TrimSpace(doc.Find(selector).First().Text()); text != "" {
			description = text
			break
		}
	}
	return company, description
}

func validCompanyName(text string) bool {
	if text == "" || len(text) > 100 {
		return false
	}
	lower := strings.ToLower(text)
	for _, skip := range companySkipWords {
		if strings.Contains(lower, skip) {
			return false
		}
	}
	return true
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (s *Scraper) allCards(page playwright.Page) ([]playwright.Locator, error) {
	for _, selector := range cardSelectors {
		cards := page.Locator(selector)
		n, err := cards.Count()
		if err != nil {
			continue
		}
		// a single match is usually a page wrapper, not a listing
		if n > 1 {
			return cards.All()
		}
	}
	return nil, nil
}

func (s *Scraper) countCards(page playwright.Page) int {
	cards, err := s.allCards(page)
	if err != nil {
		return 0
	}
	return len(cards)
}

var stateTokens = []string{"NSW", "VIC", "QLD", "WA", "SA", "TAS", "ACT", "NT"}

// locationFromText scans card lines for an Australian state token when no
// location selector matched.
func locationFromText(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, state := range stateTokens {
			if strings.Contains(line, state) {
				return line
			}
		}
	}
	return ""
}
