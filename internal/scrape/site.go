package scrape

import (
	"context"

	"github.com/playwright-community/playwright-go"

	"go-aujob-scraper/internal/browser"
)

// Site is the per-board adapter the navigator drives. Each implementation
// owns its selectors, pagination style and bot-challenge predicate.
type Site interface {
	// Source is the external source identifier, e.g. "seek.com.au".
	Source() string

	// WarmUp runs optional pre-scrape behavior (home page visit, cookie
	// banner dismissal). Errors are logged by the navigator, never fatal.
	WarmUp(ctx context.Context, sess *browser.Session) error

	// Advance moves the session to list page pageNum (1-based). The first
	// call navigates to the start of the result set. It returns false when
	// no further listings are discoverable.
	Advance(ctx context.Context, sess *browser.Session, pageNum int) (bool, error)

	// Blocked reports whether the current page signals a bot challenge.
	Blocked(page playwright.Page) bool

	// Listings locates the job card elements on the current page.
	Listings(page playwright.Page) ([]playwright.Locator, error)

	// Extract pulls a raw candidate out of one job card.
	Extract(ctx context.Context, sess *browser.Session, card playwright.Locator) (*Candidate, error)
}
