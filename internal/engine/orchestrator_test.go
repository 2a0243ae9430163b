package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-aujob-scraper/internal/browser"
	"go-aujob-scraper/internal/models"
	"go-aujob-scraper/internal/normalize"
	"go-aujob-scraper/internal/scrape"
)

type fakeSite struct{}

func (fakeSite) Source() string                                 { return "test.example.com" }
func (fakeSite) WarmUp(context.Context, *browser.Session) error { return nil }
func (fakeSite) Advance(context.Context, *browser.Session, int) (bool, error) {
	return false, nil
}
func (fakeSite) Blocked(playwright.Page) bool { return false }
func (fakeSite) Listings(playwright.Page) ([]playwright.Locator, error) {
	return nil, nil
}
func (fakeSite) Extract(context.Context, *browser.Session, playwright.Locator) (*scrape.Candidate, error) {
	return nil, nil
}

type emission struct {
	cand *scrape.Candidate
	err  error
}

// fakeNav replays canned extractions through the sink.
type fakeNav struct {
	emissions []emission
	reason    Reason
	pages     int
}

func (f *fakeNav) Walk(ctx context.Context, sess *browser.Session, sink Sink) (Reason, int) {
	for _, e := range f.emissions {
		if !sink(e.cand, e.err) {
			return ReasonLimitReached, f.pages
		}
	}
	return f.reason, f.pages
}

type fakePersister struct {
	created map[string]bool // URL -> created result
	calls   []string
	err     error
}

func (f *fakePersister) Upsert(ctx context.Context, job *models.NormalizedJob) (bool, error) {
	f.calls = append(f.calls, job.ExternalURL)
	if f.err != nil {
		return false, f.err
	}
	return f.created[job.ExternalURL], nil
}

type fakeChecker struct {
	dups map[string]bool
	seen []string
	err  error
}

func (f *fakeChecker) IsDuplicate(ctx context.Context, job *models.NormalizedJob) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.dups[job.ExternalURL], nil
}

func (f *fakeChecker) MarkSeen(ctx context.Context, job *models.NormalizedJob) {
	f.seen = append(f.seen, job.ExternalURL)
}

func cand(n string) *scrape.Candidate {
	return &scrape.Candidate{
		Title: "Engineer " + n,
		URL:   "https://test.example.com/job/" + n,
	}
}

func newTestOrchestrator(nav *fakeNav, store *fakePersister, checker *fakeChecker, opts Options) *Orchestrator {
	o := NewOrchestrator(fakeSite{}, store, checker, normalize.NewClassifier(), opts)
	o.openSession = func(ctx context.Context, cfg browser.Config) (*browser.Session, error) {
		return nil, nil
	}
	o.newNavigator = func(site scrape.Site, maxPages int) navigator {
		return nav
	}
	return o
}

func TestRunCountsScrapedAndDuplicates(t *testing.T) {
	nav := &fakeNav{
		emissions: []emission{{cand: cand("1")}, {cand: cand("2")}, {cand: cand("3")}},
		reason:    ReasonCompleted,
		pages:     2,
	}
	store := &fakePersister{created: map[string]bool{
		"https://test.example.com/job/1": true,
		"https://test.example.com/job/3": true,
	}}
	checker := &fakeChecker{dups: map[string]bool{
		"https://test.example.com/job/2": true,
	}}

	summary, err := newTestOrchestrator(nav, store, checker, Options{}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Scraped)
	assert.Equal(t, 1, summary.Duplicates)
	assert.Zero(t, summary.Errors)
	assert.Equal(t, 2, summary.PagesVisited)
	assert.Equal(t, ReasonCompleted, summary.TerminalReason)
	assert.Equal(t, "test.example.com", summary.Source)
	assert.NotEmpty(t, summary.RunID)

	// duplicates never reach the store
	assert.NotContains(t, store.calls, "https://test.example.com/job/2")
	// only persisted jobs are marked seen
	assert.ElementsMatch(t, []string{
		"https://test.example.com/job/1",
		"https://test.example.com/job/3",
	}, checker.seen)
}

func TestRunCountsExtractionAndValidationErrors(t *testing.T) {
	nav := &fakeNav{
		emissions: []emission{
			{err: &scrape.IncompleteListingError{Missing: []string{"title"}}},
			{cand: &scrape.Candidate{Title: "No URL"}},
			{cand: cand("ok")},
		},
		reason: ReasonCompleted,
	}
	store := &fakePersister{created: map[string]bool{"https://test.example.com/job/ok": true}}
	checker := &fakeChecker{}

	summary, err := newTestOrchestrator(nav, store, checker, Options{}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Errors)
	assert.Equal(t, 1, summary.Scraped)
	assert.Len(t, store.calls, 1)
}

func TestRunLostInsertRaceCountsDuplicate(t *testing.T) {
	nav := &fakeNav{emissions: []emission{{cand: cand("1")}}, reason: ReasonCompleted}
	store := &fakePersister{} // Upsert reports no row created
	checker := &fakeChecker{}

	summary, err := newTestOrchestrator(nav, store, checker, Options{}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Duplicates)
	assert.Zero(t, summary.Scraped)
	assert.Empty(t, checker.seen)
}

func TestRunStopsAtJobLimit(t *testing.T) {
	nav := &fakeNav{
		emissions: []emission{{cand: cand("1")}, {cand: cand("2")}, {cand: cand("3")}},
		reason:    ReasonCompleted,
	}
	store := &fakePersister{created: map[string]bool{
		"https://test.example.com/job/1": true,
		"https://test.example.com/job/2": true,
		"https://test.example.com/job/3": true,
	}}

	summary, err := newTestOrchestrator(nav, store, &fakeChecker{}, Options{JobLimit: 2}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Scraped)
	assert.Equal(t, ReasonLimitReached, summary.TerminalReason)
	assert.Len(t, store.calls, 2)
}

func TestRunDuplicatesDoNotConsumeLimit(t *testing.T) {
	nav := &fakeNav{
		emissions: []emission{{cand: cand("1")}, {cand: cand("2")}, {cand: cand("3")}},
		reason:    ReasonCompleted,
	}
	store := &fakePersister{created: map[string]bool{
		"https://test.example.com/job/3": true,
	}}
	checker := &fakeChecker{dups: map[string]bool{
		"https://test.example.com/job/1": true,
		"https://test.example.com/job/2": true,
	}}

	summary, err := newTestOrchestrator(nav, store, checker, Options{JobLimit: 1}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Scraped)
	assert.Equal(t, 2, summary.Duplicates)
}

func TestRunSessionStartFailure(t *testing.T) {
	o := newTestOrchestrator(&fakeNav{}, &fakePersister{}, &fakeChecker{}, Options{})
	o.openSession = func(ctx context.Context, cfg browser.Config) (*browser.Session, error) {
		return nil, browser.ErrSessionStart
	}

	summary, err := o.Run(context.Background())
	require.Error(t, err)

	assert.True(t, errors.Is(err, browser.ErrSessionStart))
	assert.Equal(t, ReasonSessionError, summary.TerminalReason)
	assert.Zero(t, summary.Scraped)
}

func TestRunBlockedReasonSurvives(t *testing.T) {
	nav := &fakeNav{
		emissions: []emission{{cand: cand("1")}},
		reason:    ReasonBlocked,
		pages:     1,
	}
	store := &fakePersister{created: map[string]bool{"https://test.example.com/job/1": true}}

	summary, err := newTestOrchestrator(nav, store, &fakeChecker{}, Options{}).Run(context.Background())
	require.NoError(t, err)

	// work done before the block is retained
	assert.Equal(t, 1, summary.Scraped)
	assert.Equal(t, ReasonBlocked, summary.TerminalReason)
}

func TestRunChecksDuplicateBeforePersist(t *testing.T) {
	nav := &fakeNav{emissions: []emission{{cand: cand("1")}}, reason: ReasonCompleted}
	store := &fakePersister{}
	checker := &fakeChecker{err: errors.New("redis and postgres both down")}

	summary, err := newTestOrchestrator(nav, store, checker, Options{}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Errors)
	assert.Empty(t, store.calls)
}
