// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the engine configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	CatalogPaths []string `json:"catalog_paths,omitempty"` // JSONL catalog files (roles and courses)
	TaxonomyPath string   `json:"taxonomy_path,omitempty"` // Skill taxonomy CSV
	WeightsPath  string   `json:"weights_path,omitempty"`  // YAML factor weights file

	// Matching
	RetrievalWidth int `json:"retrieval_width,omitempty"` // Candidates pulled from the index per request
	ResultCount    int `json:"result_count,omitempty"`    // Default results returned per request
	MaxParallel    int `json:"max_parallel,omitempty"`    // Scoring workers per request

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for plan narratives
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL catalog connection URL
}

// DefaultConfig returns the defaults applied when neither the config file
// nor the CLI supplies a value.
func DefaultConfig() Config {
	return Config{
		RetrievalWidth: 50,
		ResultCount:    10,
		MaxParallel:    8,
		Port:           8080,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.RetrievalWidth < 0 {
		return fmt.Errorf("config error: 'retrieval_width' must be non-negative")
	}
	if c.ResultCount < 0 {
		return fmt.Errorf("config error: 'result_count' must be non-negative")
	}
	if c.MaxParallel < 0 {
		return fmt.Errorf("config error: 'max_parallel' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	// Validate file paths exist (if specified)
	for _, p := range c.CatalogPaths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", p)
		}
	}
	if c.TaxonomyPath != "" {
		if _, err := os.Stat(c.TaxonomyPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy file not found: %s", c.TaxonomyPath)
		}
	}
	if c.WeightsPath != "" {
		if _, err := os.Stat(c.WeightsPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: weights file not found: %s", c.WeightsPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if len(result.CatalogPaths) == 0 {
		result.CatalogPaths = defaults.CatalogPaths
	}
	if result.TaxonomyPath == "" {
		result.TaxonomyPath = defaults.TaxonomyPath
	}
	if result.WeightsPath == "" {
		result.WeightsPath = defaults.WeightsPath
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.RetrievalWidth == 0 {
		result.RetrievalWidth = defaults.RetrievalWidth
	}
	if result.ResultCount == 0 {
		result.ResultCount = defaults.ResultCount
	}
	if result.MaxParallel == 0 {
		result.MaxParallel = defaults.MaxParallel
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
