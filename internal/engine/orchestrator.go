package engine

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"go-aujob-scraper/internal/browser"
	"go-aujob-scraper/internal/models"
	"go-aujob-scraper/internal/normalize"
	"go-aujob-scraper/internal/scrape"
)

// Summary is the outcome of one site run.
type Summary struct {
	RunID          string
	Source         string
	PagesVisited   int
	Scraped        int
	Duplicates     int
	Errors         int
	Elapsed        time.Duration
	TerminalReason Reason
}

// Persister writes normalized jobs. Upsert reports whether a new row was
// created; false means the store already held the URL.
type Persister interface {
	Upsert(ctx context.Context, job *models.NormalizedJob) (bool, error)
}

// DupChecker answers the two-key duplicate question before insertion.
type DupChecker interface {
	IsDuplicate(ctx context.Context, job *models.NormalizedJob) (bool, error)
	MarkSeen(ctx context.Context, job *models.NormalizedJob)
}

type navigator interface {
	Walk(ctx context.Context, sess *browser.Session, sink Sink) (Reason, int)
}

// Options carries the per-run knobs the orchestrator needs.
type Options struct {
	Browser browser.Config
	// JobLimit caps successfully persisted jobs; 0 collects everything.
	JobLimit    int
	MaxPages    int
	HomeCountry string
}

// Orchestrator runs one site end to end: session, navigation, normalization,
// dedup, persistence.
type Orchestrator struct {
	site       scrape.Site
	store      Persister
	checker    DupChecker
	classifier *normalize.Classifier
	opts       Options

	// overridable in tests
	openSession  func(ctx context.Context, cfg browser.Config) (*browser.Session, error)
	newNavigator func(site scrape.Site, maxPages int) navigator
	now          func() time.Time
}

func NewOrchestrator(site scrape.Site, store Persister, checker DupChecker, classifier *normalize.Classifier, opts Options) *Orchestrator {
	return &Orchestrator{
		site:        site,
		store:       store,
		checker:     checker,
		classifier:  classifier,
		opts:        opts,
		openSession: browser.Open,
		newNavigator: func(site scrape.Site, maxPages int) navigator {
			return NewNavigator(site, maxPages)
		},
		now: time.Now,
	}
}

// Run executes the full pipeline for the configured site. The summary is
// always returned, even on session failure, so callers can report partial
// runs uniformly.
func (o *Orchestrator) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{
		RunID:  uuid.New().String(),
		Source: o.site.Source(),
	}
	start := o.now()
	defer func() { summary.Elapsed = o.now().Sub(start) }()

	log.Printf("🚀 [%s] Starting run %s", summary.Source, summary.RunID)

	sess, err := o.openSession(ctx, o.opts.Browser)
	if err != nil {
		summary.TerminalReason = ReasonSessionError
		return summary, err
	}
	defer sess.Close()

	nav := o.newNavigator(o.site, o.opts.MaxPages)
	reason, pages := nav.Walk(ctx, sess, func(cand *scrape.Candidate, extractErr error) bool {
		o.handleListing(ctx, summary, cand, extractErr)
		return o.opts.JobLimit == 0 || summary.Scraped < o.opts.JobLimit
	})

	summary.TerminalReason = reason
	summary.PagesVisited = pages
	return summary, nil
}

// handleListing pushes one candidate through normalize, dedup and persist.
// Every failure is counted; none aborts the run.
func (o *Orchestrator) handleListing(ctx context.Context, summary *Summary, cand *scrape.Candidate, extractErr error) {
	if extractErr != nil {
		summary.Errors++
		log.Printf("⚠️ [%s] Extraction failed: %v", summary.Source, extractErr)
		return
	}

	job, err := normalize.BuildJob(summary.Source, cand, o.classifier, o.opts.HomeCountry, o.now())
	if err != nil {
		summary.Errors++
		log.Printf("⚠️ [%s] Rejected candidate: %v", summary.Source, err)
		return
	}

	dup, err := o.checker.IsDuplicate(ctx, job)
	if err != nil {
		summary.Errors++
		log.Printf("❌ [%s] Duplicate check failed for %s: %v", summary.Source, job.ExternalURL, err)
		return
	}
	if dup {
		summary.Duplicates++
		return
	}

	created, err := o.store.Upsert(ctx, job)
	if err != nil {
		summary.Errors++
		log.Printf("❌ [%s] Upsert failed for %s: %v", summary.Source, job.ExternalURL, err)
		return
	}
	if !created {
		// lost the race to another writer; the URL is taken
		summary.Duplicates++
		return
	}

	summary.Scraped++
	o.checker.MarkSeen(ctx, job)
	log.Printf("💾 [%s] Saved: %s at %s", summary.Source, job.Title, job.Company.Name)
}
