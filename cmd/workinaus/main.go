package main

import (
	"go-aujob-scraper/internal/cli"
	"go-aujob-scraper/internal/config"
	"go-aujob-scraper/internal/scrape"
	"go-aujob-scraper/internal/scrape/workinaus"
)

func main() {
	cli.Run("workinaus", func(cfg config.SiteConfig) scrape.Site {
		return workinaus.New(cfg)
	})
}
