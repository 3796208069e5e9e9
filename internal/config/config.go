// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Defaults applied when neither a config file nor the environment sets a value.
const (
	DefaultPort           = 5000
	DefaultMaxUploadBytes = 1 << 20
	DefaultOutputFilename = "resume.docx"
	DefaultConcurrency    = 4
)

// Config represents settings that can be loaded from a JSON file or the environment.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Server
	Port           int    `json:"port,omitempty"`             // Port to listen on
	MaxUploadBytes int64  `json:"max_upload_bytes,omitempty"` // Upper bound on request bodies
	OutputFilename string `json:"output_filename,omitempty"`  // Attachment filename for generated documents
	RequireAuth    bool   `json:"require_auth,omitempty"`     // Gate document endpoints behind a bearer token

	// CLI
	OutputDir   string `json:"output_dir,omitempty"`  // Directory for generated documents
	Concurrency int    `json:"concurrency,omitempty"` // Parallel builds for batch input
	Verbose     bool   `json:"verbose,omitempty"`     // Print build summaries
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

// FromEnv reads PORT, MAX_UPLOAD_BYTES, OUTPUT_FILENAME, REQUIRE_AUTH,
// OUTPUT_DIR and BUILD_CONCURRENCY. Unset or unparsable values are left zero.
func FromEnv() Config {
	var cfg Config
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		cfg.Port = v
	}
	if v, err := strconv.ParseInt(os.Getenv("MAX_UPLOAD_BYTES"), 10, 64); err == nil {
		cfg.MaxUploadBytes = v
	}
	cfg.OutputFilename = os.Getenv("OUTPUT_FILENAME")
	if v, err := strconv.ParseBool(os.Getenv("REQUIRE_AUTH")); err == nil {
		cfg.RequireAuth = v
	}
	cfg.OutputDir = os.Getenv("OUTPUT_DIR")
	if v, err := strconv.Atoi(os.Getenv("BUILD_CONCURRENCY")); err == nil {
		cfg.Concurrency = v
	}
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535, got %d", c.Port)
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be non-negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if filepath.Base(c.OutputFilename) != c.OutputFilename && c.OutputFilename != "" {
		return fmt.Errorf("config error: 'output_filename' must be a bare file name: %s", c.OutputFilename)
	}

	if c.OutputDir != "" {
		if info, err := os.Stat(c.OutputDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: output_dir is not a directory: %s", c.OutputDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults,
// then from the package defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}
	if result.OutputFilename == "" {
		result.OutputFilename = defaults.OutputFilename
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	// Bool fields: a true on either side wins.
	result.RequireAuth = result.RequireAuth || defaults.RequireAuth
	result.Verbose = result.Verbose || defaults.Verbose

	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if result.OutputFilename == "" {
		result.OutputFilename = DefaultOutputFilename
	}
	if result.Concurrency == 0 {
		result.Concurrency = DefaultConcurrency
	}

	return result
}
