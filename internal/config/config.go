// Package config holds the idparse configuration model and its viper
// loader. Extraction tunables defined here are compiled once into the
// immutable rule set; nothing re-reads configuration at extraction time.
package config

import (
	"fmt"
	"strings"

	"github.com/gulftech/idparse/internal/document"
	"github.com/gulftech/idparse/internal/extract"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	ec := extract.DefaultConfig()
	return Config{
		LogLevel: "info",
		Extraction: ExtractionConfig{
			YearMin:        ec.YearMin,
			YearMax:        ec.YearMax,
			MinValueLength: ec.MinValueLength,
			LookAheadLines: ec.LookAheadLines,
			PreviewLength:  document.DefaultPreviewLength,
		},
		Output: OutputConfig{
			Format: "json",
		},
		Server: ServerConfig{
			Host:            "localhost",
			Port:            8080,
			CORSOrigin:      "*",
			MaxBodyKB:       1024,
			TimeoutSec:      30,
			ShutdownTimeout: 10,
		},
		Batch: BatchConfig{
			Workers:         4,
			ContinueOnError: true,
		},
	}
}

// validLogLevels are the accepted log_level values.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// validFormats are the accepted output formats.
var validFormats = []string{"json", "csv", "yaml", "text"}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level %q (valid: %s)",
			c.LogLevel, strings.Join(validLogLevels, ", "))
	}
	if c.Output.Format != "" && !contains(validFormats, c.Output.Format) {
		return fmt.Errorf("invalid output format %q (valid: %s)",
			c.Output.Format, strings.Join(validFormats, ", "))
	}
	if err := c.Extraction.extractorConfig().Validate(); err != nil {
		return err
	}
	if c.Extraction.PreviewLength < 0 {
		return fmt.Errorf("preview length must not be negative, got %d", c.Extraction.PreviewLength)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Server.MaxBodyKB < 1 {
		return fmt.Errorf("max body size must be positive, got %d KB", c.Server.MaxBodyKB)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch workers must be positive, got %d", c.Batch.Workers)
	}
	return nil
}

// NewExtractor builds the document extractor from the extraction
// tunables.
func (c *Config) NewExtractor() (*document.Extractor, error) {
	return document.NewBuilder().
		WithYearRange(c.Extraction.YearMin, c.Extraction.YearMax).
		WithMinValueLength(c.Extraction.MinValueLength).
		WithLookAheadLines(c.Extraction.LookAheadLines).
		WithPreviewLength(c.Extraction.PreviewLength).
		Build()
}

func (e ExtractionConfig) extractorConfig() extract.Config {
	return extract.Config{
		YearMin:        e.YearMin,
		YearMax:        e.YearMax,
		MinValueLength: e.MinValueLength,
		LookAheadLines: e.LookAheadLines,
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
