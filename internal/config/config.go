// Package config loads rustkit settings from the environment and lets
// command-line flags override them.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	SteamAPIKey  string        `env:"RUSTKIT_STEAM_API_KEY"`
	SteamBaseURL string        `env:"RUSTKIT_STEAM_BASE_URL" envDefault:"https://api.steampowered.com"`
	SteamTimeout time.Duration `env:"RUSTKIT_STEAM_TIMEOUT" envDefault:"8s"`
	HTTPAddr     string        `env:"RUSTKIT_HTTP_ADDR" envDefault:"localhost:8080"`
	Lang         string        `env:"RUSTKIT_LANG" envDefault:"en"`
	Demo         bool          `env:"RUSTKIT_DEMO" envDefault:"false"`
	OTelEndpoint string        `env:"RUSTKIT_OTEL_ENDPOINT"`
	OTelEnabled  bool          `env:"RUSTKIT_OTEL_ENABLED" envDefault:"true"`

	// Set by flags only.
	Serve    bool
	Player   string
	Output   string
	JSON     bool
	Material string
	Health   float64

	// Lookup is set when -player was given, even with an empty value.
	Lookup bool
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Parse reads the environment, then applies flags from args on top.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Player, "player", "", "player to look up: profile URL, vanity name or SteamID64")
	fs.StringVar(&cfg.Output, "out", "", "write the stat card SVG to this path")
	fs.BoolVar(&cfg.JSON, "json", false, "print the lookup result as JSON")
	fs.StringVar(&cfg.Material, "decay", "", "material to project decay for")
	fs.Float64Var(&cfg.Health, "health", -1, "current health for -decay (defaults to full)")
	fs.BoolVar(&cfg.Serve, "serve", false, "run the HTTP server")
	fs.StringVar(&cfg.HTTPAddr, "addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "display language (en, es)")
	fs.BoolVar(&cfg.Demo, "demo", cfg.Demo, "serve fixed demo data instead of calling Steam")
	fs.DurationVar(&cfg.SteamTimeout, "steam-timeout", cfg.SteamTimeout, "timeout for each Steam API call")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "player" {
			cfg.Lookup = true
		}
	})
	cfg.SteamAPIKey = strings.TrimSpace(cfg.SteamAPIKey)
	return cfg, cfg.Validate()
}

// Validate reports settings that make every lookup fail.
func (c Config) Validate() error {
	if c.SteamTimeout <= 0 {
		return errors.New("steam timeout must be positive")
	}
	if c.Demo || c.Material != "" {
		return nil
	}
	if c.SteamAPIKey == "" && (c.Serve || c.Lookup) {
		return errors.New("missing RUSTKIT_STEAM_API_KEY (or run with -demo)")
	}
	return nil
}
