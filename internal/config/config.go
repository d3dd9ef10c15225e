// Package config reads the bot's settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every setting the bot reads at startup.
type Config struct {
	DiscordToken  string `env:"DISCORD_TOKEN"`
	WordsFile     string `env:"WORDS_FILE"`
	WordsCache    bool   `env:"WORDS_CACHE"    envDefault:"false"`
	HTTPAddr      string `env:"HTTP_ADDR"`
	GatewaySecret string `env:"GATEWAY_SECRET"`
	LogLevel      string `env:"LOG_LEVEL"      envDefault:"info"`
	LogPretty     bool   `env:"LOG_PRETTY"     envDefault:"false"`
}

// ErrNoTransport is returned when neither Discord nor HTTP is configured.
var ErrNoTransport = errors.New("config: set DISCORD_TOKEN or HTTP_ADDR")

// Load parses the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses environ instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that at least one transport is enabled.
func (c Config) Validate() error {
	if c.DiscordToken == "" && c.HTTPAddr == "" {
		return ErrNoTransport
	}
	return nil
}
