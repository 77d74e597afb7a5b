package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/n0madic/go-playground/internal/template"
)

// Config holds settings shared by every command. Flags override these values.
type Config struct {
	LogLevel         string `env:"PLAYGROUND_LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"PLAYGROUND_LOG_FORMAT" envDefault:"text"`
	TemplateLanguage string `env:"PLAYGROUND_TEMPLATE_LANGUAGE" envDefault:"MUSTACHE"`
	// Concurrency bounds parallel span conversions. Zero or less means no bound.
	Concurrency int `env:"PLAYGROUND_CONCURRENCY" envDefault:"4"`
	// CatalogPath points to a model catalog YAML file. Empty uses the built-in catalog.
	CatalogPath string `env:"PLAYGROUND_CATALOG_PATH"`
}

// Load parses environment variables into Config and validates it.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: want text or json", c.LogFormat)
	}
	if _, err := template.ParseLanguage(c.TemplateLanguage); err != nil {
		return err
	}
	return nil
}

// Language returns the configured template language, falling back to
// mustache when the value does not parse.
func (c Config) Language() template.Language {
	lang, err := template.ParseLanguage(c.TemplateLanguage)
	if err != nil {
		return template.Mustache
	}
	return lang
}
