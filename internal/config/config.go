// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

type Config struct {
	SiteHost   string `env:"FOLIO_SITE_HOST"   envDefault:"stanjdev.com"`
	SiteName   string `env:"FOLIO_SITE_NAME"   envDefault:"Stan J Dev"`
	Lang       string `env:"FOLIO_LANG"        envDefault:"en"`
	Addr       string `env:"FOLIO_ADDR"        envDefault:":8080"`
	ContentDir string `env:"FOLIO_CONTENT_DIR"`
	AssetsDir  string `env:"FOLIO_ASSETS_DIR"`
	ExportDir  string `env:"FOLIO_EXPORT_DIR"  envDefault:"dist"`
	Stylesheet string `env:"FOLIO_STYLESHEET"  envDefault:"/static/site.css"`
	Dev        bool   `env:"FOLIO_DEV"         envDefault:"false"`

	tag language.Tag
}

// Load reads Config from the environment and validates the language tag.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	c.SiteHost = strings.TrimSpace(c.SiteHost)
	c.SiteName = strings.TrimSpace(c.SiteName)
	tag, err := language.Parse(strings.TrimSpace(c.Lang))
	if err != nil {
		return fmt.Errorf("FOLIO_LANG %q: %w", c.Lang, err)
	}
	c.tag = tag
	c.Lang = tag.String()
	return nil
}

// Language returns the parsed FOLIO_LANG tag, or English if Load was not used.
func (c Config) Language() language.Tag {
	if c.tag == (language.Tag{}) {
		return language.English
	}
	return c.tag
}

// LogMode maps the dev flag to a logger mode.
func (c Config) LogMode() string {
	if c.Dev {
		return "dev"
	}
	return "prod"
}
