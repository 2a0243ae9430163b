// Package browser owns the anti-detection browser session. One Session is
// opened per site run and every page interaction goes through it.
package browser

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
	"golang.org/x/time/rate"
)

// ErrSessionStart means the underlying browser could not launch. Fatal for
// the run; no listings can be attempted.
var ErrSessionStart = errors.New("browser session start failed")

// ErrNavigationTimeout means a page did not become interactive within the
// bounded wait. Recoverable at the page level.
var ErrNavigationTimeout = errors.New("navigation timed out")

// DelayProfile bounds the human-like pause injected between interactions,
// in seconds.
type DelayProfile struct {
	Name string
	Min  float64
	Max  float64
}

var (
	Conservative = DelayProfile{Name: "conservative", Min: 3, Max: 6}
	Moderate     = DelayProfile{Name: "moderate", Min: 1, Max: 3}
	Aggressive   = DelayProfile{Name: "aggressive", Min: 0.5, Max: 1.5}
)

// ProfileByName resolves a configured profile name, defaulting to moderate.
func ProfileByName(name string) (DelayProfile, error) {
	switch name {
	case "conservative":
		return Conservative, nil
	case "moderate", "":
		return Moderate, nil
	case "aggressive":
		return Aggressive, nil
	}
	return Moderate, fmt.Errorf("unknown delay profile %q", name)
}

// Config is the per-run session configuration. Nothing here is process-wide.
type Config struct {
	Headless     bool
	Profile      DelayProfile
	UserAgents   []string // optional override of the built-in pool
	NavTimeoutMs float64  // 0 means the 60s default
}

// Session wraps one playwright browser context and the stealth/timing
// primitives all other components use.
type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page

	profile    DelayProfile
	navTimeout float64
	limiter    *rate.Limiter
	closeOnce  sync.Once
}

// Open launches a stealth-configured Chromium session. Every error wraps
// ErrSessionStart so callers can abort the run cleanly.
func Open(ctx context.Context, cfg Config) (*Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("%w: starting playwright: %v", ErrSessionStart, err)
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		Timeout:  playwright.Float(60000),
		Args:     stealthArgs,
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("%w: launching chromium: %v", ErrSessionStart, err)
	}

	bctx, err := b.NewContext(playwright.BrowserNewContextOptions{
		UserAgent:        playwright.String(pickUserAgent(cfg.UserAgents)),
		Viewport:         &playwright.Size{Width: 1920, Height: 1080},
		ExtraHttpHeaders: defaultHeaders,
	})
	if err != nil {
		b.Close()
		pw.Stop()
		return nil, fmt.Errorf("%w: creating context: %v", ErrSessionStart, err)
	}

	if err := bctx.AddInitScript(playwright.Script{Content: playwright.String(stealthScript)}); err != nil {
		log.Printf("⚠️ Failed to inject stealth script: %v", err)
	}

	page, err := bctx.NewPage()
	if err != nil {
		bctx.Close()
		b.Close()
		pw.Stop()
		return nil, fmt.Errorf("%w: creating page: %v", ErrSessionStart, err)
	}

	navTimeout := cfg.NavTimeoutMs
	if navTimeout <= 0 {
		navTimeout = 60000
	}
	page.SetDefaultTimeout(30000)

	return &Session{
		pw:         pw,
		browser:    b,
		context:    bctx,
		page:       page,
		profile:    cfg.Profile,
		navTimeout: navTimeout,
		// at most one navigation every two seconds, regardless of profile
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 1),
	}, nil
}

// Page exposes the single active page. Callers must not create more pages;
// one page interaction happens at a time.
func (s *Session) Page() playwright.Page {
	return s.page
}

// Navigate loads a URL and waits for dynamic content to settle, bounded by
// the configured navigation timeout.
func (s *Session) Navigate(ctx context.Context, url string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}
	_, err := s.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(s.navTimeout),
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNavigationTimeout, url, err)
	}
	return nil
}

// HumanDelay pauses for a uniformly-sampled duration within the run's delay
// profile bounds.
func (s *Session) HumanDelay() {
	s.Pause(s.profile.Min, s.profile.Max)
}

// Pause sleeps between min and max seconds. Used for longer site-specific
// waits (page transitions, challenge settling).
func (s *Session) Pause(min, max float64) {
	if max < min {
		max = min
	}
	d := min + rand.Float64()*(max-min)
	time.Sleep(time.Duration(d * float64(time.Second)))
}

// PageBreak pauses between list pages, twice as long as the in-page delay.
func (s *Session) PageBreak() {
	s.Pause(2*s.profile.Min, 2*s.profile.Max)
}

// SimulateScroll scrolls the page in human-looking steps with a small
// upward correction. Best effort; failures are swallowed.
func (s *Session) SimulateScroll() {
	if s.page == nil {
		return
	}
	for i := 1; i <= 3; i++ {
		if _, err := s.page.Evaluate(fmt.Sprintf("window.scrollTo(0, document.body.scrollHeight / 3 * %d)", i)); err != nil {
			log.Printf("⚠️ Scroll simulation failed: %v", err)
			return
		}
		s.Pause(0.5, 1.5)
	}
	if _, err := s.page.Evaluate("window.scrollBy(0, -200)"); err != nil {
		log.Printf("⚠️ Scroll correction failed: %v", err)
	}
}

// SimulateCursor moves the mouse to a few random viewport positions.
// Best effort; failures are swallowed.
func (s *Session) SimulateCursor() {
	if s.page == nil {
		return
	}
	for i := 0; i < 3; i++ {
		x := float64(rand.Intn(800) + 100)
		y := float64(rand.Intn(600) + 100)
		if err := s.page.Mouse().Move(x, y); err != nil {
			log.Printf("⚠️ Cursor simulation failed: %v", err)
			return
		}
		s.Pause(0.1, 0.3)
	}
}

// Close tears the session down. Safe on nil receivers and safe to call more
// than once; the orchestrator defers it on every exit path so no browser
// process leaks.
func (s *Session) Close() {
	if s == nil {
		return
	}
	s.closeOnce.Do(func() {
		if s.context != nil {
			s.context.Close()
		}
		if s.browser != nil {
			s.browser.Close()
		}
		if s.pw != nil {
			s.pw.Stop()
		}
	})
}
