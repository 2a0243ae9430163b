package main

import (
	"go-aujob-scraper/internal/cli"
	"go-aujob-scraper/internal/config"
	"go-aujob-scraper/internal/scrape"
	"go-aujob-scraper/internal/scrape/jora"
)

func main() {
	cli.Run("jora", func(cfg config.SiteConfig) scrape.Site {
		return jora.New(cfg)
	})
}
