package main

import (
	"go-aujob-scraper/internal/cli"
	"go-aujob-scraper/internal/config"
	"go-aujob-scraper/internal/scrape"
	"go-aujob-scraper/internal/scrape/seek"
)

func main() {
	cli.Run("seek", func(cfg config.SiteConfig) scrape.Site {
		return seek.New(cfg)
	})
}
