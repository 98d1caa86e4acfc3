package app

import (
	"errors"
	"fmt"
	"slices"
)

// Output formats.
const (
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
	FormatDump   = "dump"
)

// Formats lists the supported output formats.
var Formats = []string{FormatJSON, FormatNDJSON, FormatDump}

// Config holds everything an App needs for one run.
type Config struct {
	SchemaPath  string // .json, .yaml, .yml or .hcl
	ContextPath string // optional client context, .json, .yaml or .yml
	Count       int
	// Seed, when set, replaces the schema's randomizer with `seeded`.
	Seed *int64
	// Output selects the part of each record container that is written,
	// e.g. `original`, `postprocessed.api` or `context.profiles`.
	Output string
	Format string
	Indent int

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SchemaPath == "" {
		return nil, errors.New("SchemaPath is a required configuration field and cannot be empty")
	}
	if cfg.Count < 0 {
		return nil, fmt.Errorf("count can't be negative (%d)", cfg.Count)
	}
	if cfg.Indent < 0 {
		return nil, fmt.Errorf("indent can't be negative (%d)", cfg.Indent)
	}
	if cfg.Output == "" {
		cfg.Output = "original"
	}
	if cfg.Format == "" {
		cfg.Format = FormatJSON
	}
	if !slices.Contains(Formats, cfg.Format) {
		return nil, fmt.Errorf("unsupported format '%s', allowed options: json, ndjson, dump", cfg.Format)
	}
	return &cfg, nil
}
