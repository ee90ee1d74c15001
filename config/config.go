// Package config loads the runtime configuration from a JSON file and
// overlays the environment variables the deployment scripts set.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Config is passed explicitly into the components that need it; there
// is no process-wide state.
type Config struct {
	LLM        LLMConfig   `json:"llm"`
	Pages      PagePaths   `json:"pages"`
	Retry      RetryConfig `json:"retry,omitempty"`
	ServerAddr string      `json:"server_addr,omitempty"`
}

// LLMConfig selects and credentials the completion provider.
type LLMConfig struct {
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	APIKey   string `json:"api_key,omitempty"`
	BaseURL  string `json:"base_url,omitempty"`
}

// PagePaths holds the template file mutated by each page run.
type PagePaths struct {
	Home    string `json:"home,omitempty"`
	Product string `json:"product,omitempty"`
	Footer  string `json:"footer,omitempty"`
}

// PathFor resolves the template path for a page name.
func (p PagePaths) PathFor(page string) (string, error) {
	var path string
	switch page {
	case "home":
		path = p.Home
	case "product":
		path = p.Product
	case "footer":
		path = p.Footer
	default:
		return "", fmt.Errorf("unknown page %q", page)
	}
	if path == "" {
		return "", fmt.Errorf("no template path configured for page %q", page)
	}
	return path, nil
}

// RetryConfig parameterizes the generation client's retry loop.
type RetryConfig struct {
	MaxAttempts    int `json:"max_attempts,omitempty"`
	InitialDelayMS int `json:"initial_delay_ms,omitempty"`
	MaxDelayMS     int `json:"max_delay_ms,omitempty"`
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`
}

// Timeout returns the per-attempt generation timeout.
func (r RetryConfig) Timeout() time.Duration {
	if r.TimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// Load reads JSON config from disk and applies environment overrides.
// A missing file is not an error when the environment alone is enough
// to run.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// fall through to env-only configuration
	default:
		return Config{}, err
	}

	applyEnv(&cfg)

	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "openai"
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "gpt-4o-mini"
	}
	if cfg.LLM.Provider != "mock" && cfg.LLM.APIKey == "" {
		return Config{}, errors.New("api key missing; set llm.api_key or OPENAI_API_KEY")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("HOME_JSON_PATH"); v != "" {
		cfg.Pages.Home = v
	}
	if v := os.Getenv("PRODUCT_JSON_PATH"); v != "" {
		cfg.Pages.Product = v
	}
	if v := os.Getenv("FOOTER_JSON_PATH"); v != "" {
		cfg.Pages.Footer = v
	}
}
