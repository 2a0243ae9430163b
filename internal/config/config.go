// Package config loads per-run configuration from configs/config.yaml with
// environment overrides. Nothing here is process-wide mutable state; the
// loaded Config is passed into the session controller at construction.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// SiteConfig holds the caller-supplied navigation surface for one board.
type SiteConfig struct {
	BaseURL  string `yaml:"base_url"`
	StartURL string `yaml:"start_url"`
	// MaxPages caps pagination for low-volume boards; 0 means unlimited.
	MaxPages int `yaml:"max_pages"`
}

type Config struct {
	Headless     bool   `yaml:"headless"`
	DelayProfile string `yaml:"delay_profile"` // conservative | moderate | aggressive
	// JobLimit is the default job-count ceiling; 0 collects everything.
	JobLimit       int                   `yaml:"job_limit"`
	CategoriesPath string                `yaml:"categories_path"`
	HomeCountry    string                `yaml:"home_country"`
	Sites          map[string]SiteConfig `yaml:"sites"`

	DatabaseURL    string `yaml:"database_url"`
	RedisURL       string `yaml:"redis_url"`
	TelegramToken  string `yaml:"telegram_token"`
	TelegramChatID int64  `yaml:"telegram_chat_id"`
}

var defaultSites = map[string]SiteConfig{
	"seek": {
		BaseURL:  "https://www.seek.com.au",
		StartURL: "https://www.seek.com.au/jobs/in-All-Australia",
	},
	"jora": {
		BaseURL:  "https://au.jora.com",
		StartURL: "https://au.jora.com/j?q=&l=Australia",
	},
	"workforce": {
		BaseURL:  "https://www.workforceaustralia.gov.au",
		StartURL: "https://www.workforceaustralia.gov.au/individuals/jobs/search",
	},
	"workinaus": {
		BaseURL:  "https://workinaus.com.au",
		MaxPages: 5,
	},
}

// Load reads configs/config.yaml if present and applies env overrides.
// Malformed values fail fast; a missing yaml file is fine.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Headless:     true,
		DelayProfile: "moderate",
		HomeCountry:  "Australia",
	}

	data, err := os.ReadFile("configs/config.yaml")
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing configs/config.yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading configs/config.yaml: %w", err)
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.TelegramToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_CHAT_ID must be an integer, got %q", v)
		}
		cfg.TelegramChatID = id
	}
	if v := os.Getenv("SCRAPER_HEADLESS"); v != "" {
		headless, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("SCRAPER_HEADLESS must be a boolean, got %q", v)
		}
		cfg.Headless = headless
	}
	if v := os.Getenv("SCRAPER_DELAY_PROFILE"); v != "" {
		cfg.DelayProfile = v
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.HomeCountry == "" {
		cfg.HomeCountry = "Australia"
	}

	return cfg, nil
}

// Site returns the configuration for a board, falling back to the built-in
// defaults for any unset field.
func (c *Config) Site(name string) SiteConfig {
	def := defaultSites[name]
	site, ok := c.Sites[name]
	if !ok {
		return def
	}
	if site.BaseURL == "" {
		site.BaseURL = def.BaseURL
	}
	if site.StartURL == "" {
		site.StartURL = def.StartURL
	}
	if site.MaxPages == 0 {
		site.MaxPages = def.MaxPages
	}
	return site
}
