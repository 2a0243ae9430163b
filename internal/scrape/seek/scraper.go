// Package seek scrapes seek.com.au search results. Seek renders listings
// with stable data-automation attributes and paginates with a next button.
package seek

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

const source = "seek.com.au"

var (
	titleChain = scrape.Chain{
		scrape.Text("automation title", `[data-automation="jobTitle"]`),
		scrape.Text("heading link", "h3 a"),
	}
	urlChain = scrape.Chain{
		scrape.Attr("automation title link", `a[data-automation="jobTitle"]`, "href"),
		scrape.Attr("heading link", "h3 a", "href"),
		scrape.Attr("any job link", `a[href*="/job/"]`, "href"),
	}
	companyChain = scrape.Chain{
		scrape.Text("automation company", `[data-automation="jobCompany"]`),
		scrape.Text("company class", ".company"),
	}
	locationChain = scrape.Chain{
		scrape.Text("automation location", `[data-automation="jobLocation"]`),
		scrape.Text("location class", ".location"),
	}
	salaryChain = scrape.Chain{
		scrape.Text("automation salary", `[data-automation="jobSalary"]`),
	}
	summaryChain = scrape.Chain{
		scrape.Text("automation summary", `[data-automation="jobShortDescription"]`),
	}
	postedChain = scrape.Chain{
		scrape.Text("automation listing date", `[data-automation="jobListingDate"]`),
	}
)

var nextSelectors = []string{
	`a[aria-label="Next"]`,
	`a[data-automation="page-next"]`,
	`[data-automation="pagination-next"]`,
	`nav a[aria-label="Next page"]`,
	`button[aria-label="Next"]`,
}

// detail-page selectors tried in order on the fetched job ad HTML
var detailSelectors = []string{
	`[data-automation="jobDescription"]`,
	`[data-automation="jobAdDetails"]`,
	`[data-automation="jobAd"]`,
	`[data-automation="searchDetailJob"]`,
	`div[data-automation="jobDetails"]`,
	`section[data-automation="job-detail"]`,
}

// fetches a job ad from inside the page so cookies and origin stay intact
const detailFetchScript = `async (url) => {
	try {
		const response = await fetch(url, { credentials: 'include' });
		return await response.text();
	} catch (_) {
		return '';
	}
}`

type Scraper struct {
	cfg   config.SiteConfig
	shots *utils.ScreenShotDebugger
}

func New(cfg config.SiteConfig) scrape.Site {
	return &Scraper{cfg: cfg, shots: utils.NewScreenShotDebugger()}
}

func (s *Scraper) Source() string { return source }

// WarmUp visits the home page first so the search request carries a normal
// browsing trail.
func (s *Scraper) WarmUp(ctx context.Context, sess *browser.Session) error {
	if err := sess.Navigate(ctx, s.cfg.BaseURL); err != nil {
		return err
	}
	sess.HumanDelay()
	return nil
}

func (s *Scraper) Advance(ctx context.Context, sess *browser.Session, pageNum int) (bool, error) {
	if pageNum == 1 {
		if err := sess.Navigate(ctx, s.cfg.StartURL); err != nil {
			return false, err
		}
		return true, nil
	}

	for _, selector := range nextSelectors {
		next := sess.Page().Locator(selector).First()
		if n, err := next.Count(); err != nil || n == 0 {
			continue
		}
		if err := next.Click(playwright.LocatorClickOptions{Timeout: playwright.Float(10000)}); err != nil {
			log.Printf("⚠️ [%s] Next button %q did not respond: %v", source, selector, err)
			continue
		}
		if err := sess.Page().WaitForLoadState(playwright.PageWaitForLoadStateOptions{
			State: playwright.LoadStateDomcontentloaded,
		}); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func (s *Scraper) Blocked(page playwright.Page) bool {
	content, err := page.Content()
	if err != nil {
		return false
	}
	lower := strings.ToLower(content)
	if strings.Contains(lower, "captcha") || strings.Contains(lower, "access denied") {
		s.shots.CaptureAndLog(page, "seek_blocked", "Seek blocked the session")
		return true
	}
	return false
}

func (s *Scraper) Listings(page playwright.Page) ([]playwright.Locator, error) {
	cards := page.Locator(`[data-automation="normalJob"]`)
	if err := cards.First().WaitFor(playwright.LocatorWaitForOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		return nil, nil
	}
	return cards.All()
}

func (s *Scraper) Extract(ctx context.Context, sess *browser.Session, card playwright.Locator) (*scrape.Candidate, error) {
	el := scrape.FromLocator(card)

	cand := &scrape.Candidate{
		Title:        titleChain.Extract(el),
		CompanyName:  companyChain.Extract(el),
		LocationText: locationChain.Extract(el),
		SalaryText:   salaryChain.Extract(el),
		Description:  summaryChain.Extract(el),
		PostedText:   postedChain.Extract(el),
	}
	cand.URL = scrape.AbsoluteURL(s.cfg.BaseURL, urlChain.Extract(el))

	if badges, err := card.Locator(`[data-automation="jobWorkType"], [data-automation="jobBadge"]`).AllInnerTexts(); err == nil {
		for _, b := range badges {
			cand.AddTag(b)
		}
	}

	if missing := cand.Missing(); len(missing) > 0 {
		return nil, &scrape.IncompleteListingError{Missing: missing}
	}

	if full := s.fetchDetailDescription(sess, cand.URL); len(full) > len(cand.Description) {
		cand.Description = full
	}
	return cand, nil
}

// fetchDetailDescription pulls the full job ad without leaving the results
// page. Best effort; the card summary remains the fallback.
func (s *Scraper) fetchDetailDescription(sess *browser.Session, jobURL string) string {
	raw, err := sess.Page().Evaluate(detailFetchScript, jobURL)
	if err != nil {
		log.Printf("⚠️ [%s] Detail fetch failed for %s: %v", source, jobURL, err)
		return ""
	}
	html, ok := raw.(string)
	if !ok || html == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	for _, selector := range detailSelectors {
		if text := strings.TrimSpace(doc.Find(selector).First().Text()); text != "" {
			return text
		}
	}
	return ""
}
