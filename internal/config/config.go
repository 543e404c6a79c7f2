package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Feed points at one instrument's payload dump on disk.
type Feed struct {
	Symbol string `json:"symbol"`
	// Kind selects the payload shape: chart, history or forex.
	Kind string `json:"kind"`
	Path string `json:"path"`
}

type Config struct {
	Interpolate bool     `json:"interpolate"`
	Dates       []string `json:"dates"` // dates of interest, YYYY-MM-DD
	Feeds       []Feed   `json:"feeds"`
}

func Default() Config {
	return Config{Interpolate: true}
}

// Load reads JSON config from path. If path is empty or file does not exist,
// it returns defaults. Environment variables override select fields.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("INTERPOLATE"); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "y":
			cfg.Interpolate = true
		case "0", "false", "no", "n":
			cfg.Interpolate = false
		}
	}
	if v := os.Getenv("DATES"); v != "" {
		cfg.Dates = splitCSV(v)
	}
}

// DatesOfInterest parses the configured dates.
func (c Config) DatesOfInterest() ([]time.Time, error) {
	out := make([]time.Time, 0, len(c.Dates))
	for _, d := range c.Dates {
		t, err := time.ParseInLocation("2006-01-02", d, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parse date %q: %w", d, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
