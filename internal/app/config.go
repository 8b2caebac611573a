package app

import (
	"errors"
	"fmt"

	"github.com/vk/argscope/internal/parse"
)

// Config holds everything an App needs to run once.
type Config struct {
	// CatalogPath points at a manifest file or a directory of manifests.
	CatalogPath string
	// Argv is the argument vector to parse, program path already stripped.
	Argv []string

	// ListOptions prints the catalog's option listing instead of parsing.
	ListOptions bool
	// OutputFormat is "text" or "json".
	OutputFormat string
	// Color enables colored text output.
	Color bool

	LogFormat string
	LogLevel  string

	MaxDepth      int
	MaxTokens     int
	AllowFreeForm bool
}

// NewConfig validates a config and fills in defaults for the zero-valued
// knobs.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.CatalogPath == "" {
		return nil, errors.New("CatalogPath is a required configuration field and cannot be empty")
	}

	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "text"
	}
	if cfg.OutputFormat != "text" && cfg.OutputFormat != "json" {
		return nil, fmt.Errorf("invalid output format %q: must be 'text' or 'json'", cfg.OutputFormat)
	}

	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = parse.DefaultMaxDepth
	}
	if cfg.MaxDepth < 1 {
		return nil, fmt.Errorf("invalid max depth %d: must be at least 1", cfg.MaxDepth)
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = parse.DefaultMaxTokens
	}
	if cfg.MaxTokens < 1 {
		return nil, fmt.Errorf("invalid max tokens %d: must be at least 1", cfg.MaxTokens)
	}

	return &cfg, nil
}
