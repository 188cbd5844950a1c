// Package config loads the tool settings and locates the working files.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"github.com/meur/gemwiki/internal/stats"
)

const (
	FileName        = "config.json"
	CatalogFileName = "characters.json"
	PlanFileName    = "plan.yaml"
)

// Config is the content of config.json
type Config struct {
	APIKey         string `json:"api_key"`
	Model          string `json:"model,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
	Endpoint       string `json:"endpoint,omitempty"` // API base URL override
}

// Default returns the settings used when no file exists
func Default() Config {
	return Config{
		Model:          stats.DefaultModel,
		TimeoutSeconds: int(stats.DefaultTimeout / time.Second),
	}
}

// Load reads path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Model == "" {
		cfg.Model = stats.DefaultModel
	}
	return cfg, nil
}

// Save rewrites path with cfg
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ApplyEnv overrides file values with GEMINI_API_KEY, GEMWIKI_MODEL and
// GEMWIKI_ENDPOINT
func (c Config) ApplyEnv() Config {
	c.APIKey = getEnv("GEMINI_API_KEY", c.APIKey)
	c.Model = getEnv("GEMWIKI_MODEL", c.Model)
	c.Endpoint = getEnv("GEMWIKI_ENDPOINT", c.Endpoint)
	return c
}

// Timeout is the extraction deadline
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return stats.DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// MaskedKey shows only the last four characters of the key
func (c Config) MaskedKey() string {
	if c.APIKey == "" {
		return "(not set)"
	}
	if len(c.APIKey) <= 4 {
		return strings.Repeat("*", len(c.APIKey))
	}
	return strings.Repeat("*", len(c.APIKey)-4) + c.APIKey[len(c.APIKey)-4:]
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
