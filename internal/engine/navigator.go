// Package engine drives a full scraping run: the navigator walks a site's
// list pages and the orchestrator turns extracted candidates into persisted
// records.
package engine

import (
	"context"
	"errors"
	"log"

	"go-aujob-scraper/internal/browser"
	"go-aujob-scraper/internal/scrape"
)

// Reason is the terminal state of a navigation run.
type Reason string

const (
	ReasonCompleted    Reason = "completed"
	ReasonBlocked      Reason = "blocked"
	ReasonLimitReached Reason = "limit_reached"
	ReasonSessionError Reason = "session_error"
	ReasonCancelled    Reason = "cancelled"
)

// Sink receives each extracted candidate (or per-card extraction error).
// Returning false stops the walk with limit_reached.
type Sink func(cand *scrape.Candidate, err error) bool

const (
	maxNavRetries = 3
	// two consecutive pages with zero listings means the result set is done
	emptyPageLimit = 2
)

// Navigator owns the page-walking loop for one site run. It is stateless
// between runs; construct one per Walk.
type Navigator struct {
	site     scrape.Site
	maxPages int // 0 means unlimited
}

func NewNavigator(site scrape.Site, maxPages int) *Navigator {
	return &Navigator{site: site, maxPages: maxPages}
}

// Walk advances through list pages, emitting every discovered card to the
// sink, until the site is exhausted, blocked, cancelled or the sink stops
// accepting. It returns the terminal reason and the number of pages visited.
func (n *Navigator) Walk(ctx context.Context, sess *browser.Session, sink Sink) (Reason, int) {
	if err := n.site.WarmUp(ctx, sess); err != nil {
		log.Printf("⚠️ [%s] Warm-up failed, continuing anyway: %v", n.site.Source(), err)
	}

	pagesVisited := 0
	emptyStreak := 0

	for pageNum := 1; ; pageNum++ {
		if ctx.Err() != nil {
			return ReasonCancelled, pagesVisited
		}
		if n.maxPages > 0 && pageNum > n.maxPages {
			log.Printf("📄 [%s] Page ceiling of %d reached", n.site.Source(), n.maxPages)
			return ReasonCompleted, pagesVisited
		}

		more, err := n.advanceWithRetry(ctx, sess, pageNum)
		if err != nil {
			if errors.Is(err, scrape.ErrBlocked) {
				return ReasonBlocked, pagesVisited
			}
			if ctx.Err() != nil {
				return ReasonCancelled, pagesVisited
			}
			log.Printf("❌ [%s] Could not reach page %d: %v", n.site.Source(), pageNum, err)
			return ReasonCompleted, pagesVisited
		}
		if !more {
			log.Printf("✅ [%s] No further pages after page %d", n.site.Source(), pageNum-1)
			return ReasonCompleted, pagesVisited
		}
		pagesVisited++

		if n.site.Blocked(sess.Page()) {
			log.Printf("🚫 [%s] Bot challenge detected on page %d", n.site.Source(), pageNum)
			return ReasonBlocked, pagesVisited
		}

		sess.HumanDelay()
		sess.SimulateScroll()
		sess.SimulateCursor()

		cards, err := n.site.Listings(sess.Page())
		if err != nil {
			log.Printf("⚠️ [%s] Listing lookup failed on page %d: %v", n.site.Source(), pageNum, err)
			cards = nil
		}
		log.Printf("📋 [%s] Page %d: %d listings", n.site.Source(), pageNum, len(cards))

		if len(cards) == 0 {
			emptyStreak++
			if emptyStreak >= emptyPageLimit {
				return ReasonCompleted, pagesVisited
			}
			continue
		}
		emptyStreak = 0

		for _, card := range cards {
			if ctx.Err() != nil {
				return ReasonCancelled, pagesVisited
			}
			cand, err := n.site.Extract(ctx, sess, card)
			if err != nil && errors.Is(err, scrape.ErrBlocked) {
				return ReasonBlocked, pagesVisited
			}
			if !sink(cand, err) {
				return ReasonLimitReached, pagesVisited
			}
		}

		sess.PageBreak()
	}
}

// advanceWithRetry retries transient navigation timeouts up to maxNavRetries
// before giving up on the run. Blocked and cancellation errors pass through.
func (n *Navigator) advanceWithRetry(ctx context.Context, sess *browser.Session, pageNum int) (bool, error) {
	var lastErr error
	for attempt := 1; attempt <= maxNavRetries; attempt++ {
		more, err := n.site.Advance(ctx, sess, pageNum)
		if err == nil {
			return more, nil
		}
		if !errors.Is(err, browser.ErrNavigationTimeout) {
			return false, err
		}
		lastErr = err
		log.Printf("⚠️ [%s] Navigation attempt %d/%d failed: %v", n.site.Source(), attempt, maxNavRetries, err)
		sess.Pause(2, 4)
	}
	return false, lastErr
}
