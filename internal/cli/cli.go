// Package cli is the shared entry point behind every per-site binary. Each
// main wires its Site adapter and calls Run.
package cli

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"go-aujob-scraper/internal/browser"
	"go-aujob-scraper/internal/config"
	"go-aujob-scraper/internal/database"
	"go-aujob-scraper/internal/dedup"
	"go-aujob-scraper/internal/engine"
	"go-aujob-scraper/internal/normalize"
	"go-aujob-scraper/internal/reporter"
	"go-aujob-scraper/internal/scrape"
)

// SiteBuilder constructs the board adapter from its resolved configuration.
type SiteBuilder func(site config.SiteConfig) scrape.Site

// Run executes a full scrape for one board. The optional first CLI argument
// overrides the configured job limit. Exits non-zero on fatal setup errors.
func Run(name string, build SiteBuilder) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	jobLimit := cfg.JobLimit
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n <= 0 {
			log.Fatalf("❌ max-jobs must be a positive integer, got %q", os.Args[1])
		}
		jobLimit = n
	}

	profile, err := browser.ProfileByName(cfg.DelayProfile)
	if err != nil {
		log.Printf("⚠️ %v, using %s", err, profile.Name)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Database error: %v", err)
	}
	defer repo.Close()

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️ Invalid REDIS_URL, running without seen-cache: %v", err)
		} else {
			rdb = redis.NewClient(opts)
			if err := rdb.Ping(ctx).Err(); err != nil {
				log.Printf("⚠️ Redis unreachable, running without seen-cache: %v", err)
				rdb = nil
			}
		}
	}
	if rdb != nil {
		defer rdb.Close()
	}

	classifier, err := loadClassifier(cfg.CategoriesPath)
	if err != nil {
		log.Fatalf("❌ Category rules error: %v", err)
	}

	siteCfg := cfg.Site(name)
	site := build(siteCfg)

	orch := engine.NewOrchestrator(site, repo, dedup.NewChecker(repo, rdb), classifier, engine.Options{
		Browser: browser.Config{
			Headless: cfg.Headless,
			Profile:  profile,
		},
		JobLimit:    jobLimit,
		MaxPages:    siteCfg.MaxPages,
		HomeCountry: cfg.HomeCountry,
	})

	summary, runErr := orch.Run(ctx)

	printSummary(summary)

	tg, err := reporter.NewTelegramReporter(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		log.Printf("⚠️ Telegram reporter unavailable: %v", err)
	}
	tg.SendSummary(summary)

	if runErr != nil && errors.Is(runErr, browser.ErrSessionStart) {
		log.Printf("❌ %v", runErr)
		os.Exit(1)
	}
}

func loadClassifier(path string) (*normalize.Classifier, error) {
	if path == "" {
		path = "configs/categories.yaml"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return normalize.NewClassifier(), nil
	}
	return normalize.LoadClassifier(path)
}

func printSummary(s *engine.Summary) {
	line := strings.Repeat("=", 50)
	log.Println(line)
	log.Printf("📊 Run %s (%s)", s.RunID, s.Source)
	log.Printf("   Pages visited: %d", s.PagesVisited)
	log.Printf("   New jobs:      %d", s.Scraped)
	log.Printf("   Duplicates:    %d", s.Duplicates)
	log.Printf("   Errors:        %d", s.Errors)
	log.Printf("   Elapsed:       %s", s.Elapsed.Round(time.Second))
	log.Printf("   Outcome:       %s", s.TerminalReason)
	log.Println(line)
}
