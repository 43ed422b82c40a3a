package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// DefaultBaseURL is where every API request goes unless XAI_BASE_URL
// overrides it.
const DefaultBaseURL = "https://api.x.ai/v1"

const (
	configDirName  = "mcp-server-grok-chat"
	configFileName = "config.toml"
)

// Config holds everything needed to talk to the xAI API.
type Config struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"-"`
}

type envOverrides struct {
	APIKey  string `env:"XAI_API_KEY"`
	BaseURL string `env:"XAI_BASE_URL"`
}

// Path returns the expected location of the config file, inside the
// per-user config directory.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, configDirName, configFileName), nil
}

// Load reads the config file at path, applies an optional .env file next
// to it plus environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"read config file %s: %w\ncreate it with your xAI API key, e.g.\n\n  api_key = \"xai-...\"",
			path, err)
	}

	cfg := &Config{BaseURL: DefaultBaseURL}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	// A .env next to config.toml is optional and never overrides
	// variables already present in the environment.
	_ = godotenv.Load(filepath.Join(filepath.Dir(path), ".env"))

	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if overrides.APIKey != "" {
		cfg.APIKey = overrides.APIKey
	}
	if overrides.BaseURL != "" {
		cfg.BaseURL = overrides.BaseURL
	}

	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("api_key in %s is empty: set it to your xAI API key", path)
	}

	return cfg, nil
}
