// Package jora scrapes au.jora.com search results. Jora sits behind
// Cloudflare, so the adapter waits out interstitial challenges and treats
// a persistent one as a hard block for the run.
package jora

import (
	"context"
	"log"
	"regexp"
	"strings"

	"github.com/playwright-community/playwright-go"

	"go-aujob-scraper/internal/browser"
	"go-aujob-scraper/internal/config"
	"go-aujob-scraper/internal/scrape"
	"go-aujob-scraper/utils"
)

const source = "au.jora.com"

var challengeIndicators = []string{
	"Just a moment",
	"Checking your browser",
	"cf-browser-verification",
	"cf-challenge-running",
}

var cookieSelectors = []string{
	`button[id*="cookie"]`,
	`button[class*="cookie"]`,
	`.cookie-accept`,
	`button:has-text("Accept")`,
}

var salaryPattern = regexp.MustCompile(`\$[\d,]+(?:\s*[-–]\s*\$[\d,]+)?(?:\s*(?:per|/)\s*(?:hour|week|month|year|annum))?`)

var (
	titleChain = scrape.Chain{
		scrape.Text("heading link", "h3 a"),
		scrape.Text("title class link", ".job-title a"),
		scrape.Text("testid title link", `[data-testid="job-title"] a`),
		scrape.Text("link with title class", "a.job-title"),
	}
	urlChain = scrape.Chain{
		scrape.Attr("heading link", "h3 a", "href"),
		scrape.Attr("title class link", ".job-title a", "href"),
		scrape.Attr("testid title link", `[data-testid="job-title"] a`, "href"),
		scrape.Attr("any job link", `a[href*="/job/"]`, "href"),
	}
	companyChain = scrape.Chain{
		scrape.Text("company name class", ".company-name"),
		scrape.Text("testid company", `[data-testid="company-name"]`),
		scrape.Text("company link", ".company a"),
		scrape.Text("employer class", ".employer"),
		scrape.Text("job company class", ".job-company"),
	}
	locationChain = scrape.Chain{
		scrape.Text("location class", ".location"),
		scrape.Text("testid location", `[data-testid="job-location"]`),
		scrape.Text("job location class", ".job-location"),
		scrape.Text("locality class", ".locality"),
	}
	summaryChain = scrape.Chain{
		scrape.Text("snippet class", ".job-snippet"),
		scrape.Text("description class", ".description"),
		scrape.Text("summary class", ".summary"),
	}
	salaryChain = scrape.Chain{
		scrape.Text("salary info class", ".salary-info"),
		scrape.Text("job salary class", ".job-salary"),
		scrape.Text("salary class span", `span[class*="salary"]`),
		scrape.Pattern("dollar amount in card text", salaryPattern),
	}
	postedChain = scrape.Chain{
		scrape.Text("date class", ".date"),
		scrape.Text("posted class", ".posted"),
		scrape.Text("time class", ".time"),
	}
)

var cardSelectors = []string{
	`[data-testid="job-card"]`,
	".job-card",
	".job",
	"article",
}

var nextSelectors = []string{
	`a.next-page`,
	`a[rel="next"]`,
	`a[aria-label="Next"]`,
	`.pagination a:last-child`,
}

type Scraper struct {
	cfg   config.SiteConfig
	shots *utils.ScreenShotDebugger
}

func New(cfg config.SiteConfig) scrape.Site {
	return &Scraper{cfg: cfg, shots: utils.NewScreenShotDebugger()}
}

func (s *Scraper) Source() string { return source }

// WarmUp visits the home page and clears the cookie banner so it cannot
// overlap job cards later.
func (s *Scraper) WarmUp(ctx context.Context, sess *browser.Session) error {
	if err := sess.Navigate(ctx, s.cfg.BaseURL); err != nil {
		return err
	}
	sess.HumanDelay()
	s.dismissCookieBanner(sess)
	return nil
}

func (s *Scraper) Advance(ctx context.Context, sess *browser.Session, pageNum int) (bool, error) {
	if pageNum == 1 {
		if err := sess.Navigate(ctx, s.cfg.StartURL); err != nil {
			return false, err
		}
		return true, s.settleChallenge(sess)
	}

	for _, selector := range nextSelectors {
		next := sess.Page().Locator(selector).First()
		if n, err := next.Count(); err != nil || n == 0 {
			continue
		}
		href, err := next.GetAttribute("href")
		if err != nil || href == "" {
			continue
		}
		if err := sess.Navigate(ctx, scrape.AbsoluteURL(s.cfg.BaseURL, href)); err != nil {
			return false, err
		}
		return true, s.settleChallenge(sess)
	}
	return false, nil
}

func (s *Scraper) Blocked(page playwright.Page) bool {
	return challenged(page)
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

	cand := &scrape.Candidate{
		Title:        titleChain.Extract(el),
		CompanyName:  companyChain.Extract(el),
		LocationText: locationChain.Extract(el),
		SalaryText:   salaryChain.Extract(el),
		Description:  summaryChain.Extract(el),
		PostedText:   postedChain.Extract(el),
	}
	cand.URL = scrape.AbsoluteURL(s.cfg.BaseURL, urlChain.Extract(el))

	if missing := cand.Missing(); len(missing) > 0 {
		return nil, &scrape.IncompleteListingError{Missing: missing}
	}
	return cand, nil
}

// settleChallenge waits for a Cloudflare interstitial to clear. A challenge
// still standing after the bounded wait fails the run as blocked.
func (s *Scraper) settleChallenge(sess *browser.Session) error {
	if !challenged(sess.Page()) {
		return nil
	}
	log.Printf("🛡️ [%s] Cloudflare challenge detected, waiting it out", source)
	for attempt := 0; attempt < 3; attempt++ {
		sess.Pause(5, 8)
		if !challenged(sess.Page()) {
			log.Printf("✅ [%s] Challenge cleared", source)
			return nil
		}
	}
	s.shots.CaptureAndLog(sess.Page(), "jora_blocked", "Cloudflare challenge did not clear")
	return scrape.ErrBlocked
}

func challenged(page playwright.Page) bool {
	content, err := page.Content()
	if err != nil {
		return false
	}
	for _, indicator := range challengeIndicators {
		if strings.Contains(content, indicator) {
			return true
		}
	}
	return false
}

func (s *Scraper) dismissCookieBanner(sess *browser.Session) {
	for _, selector := range cookieSelectors {
		banner := sess.Page().Locator(selector).First()
		if n, err := banner.Count(); err != nil || n == 0 {
			continue
		}
		if err := banner.Click(playwright.LocatorClickOptions{Timeout: playwright.Float(3000)}); err == nil {
			log.Printf("🍪 [%s] Cookie banner dismissed", source)
			return
		}
	}
}
