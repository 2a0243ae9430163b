package main

import (
	"go-aujob-scraper/internal/cli"
	"go-aujob-scraper/internal/config"
	"go-aujob-scraper/internal/scrape"
	"go-aujob-scraper/internal/scrape/workforce"
)

func main() {
	cli.Run("workforce", func(cfg config.SiteConfig) scrape.Site {
		return workforce.New(cfg)
	})
}
