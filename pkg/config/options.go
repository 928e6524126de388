// Package config provides option types, defaults and validation helpers for keyleek commands.
package config

import (
	"fmt"
	"time"
)

// Output formats understood by the report package.
const (
	OutputLog   = "log"
	OutputTable = "table"
	OutputJSON  = "json"
	OutputEnv   = "env"
)

// OutputFormats lists every supported output format.
var OutputFormats = []string{OutputLog, OutputTable, OutputJSON, OutputEnv}

// ParseOptions contains the settings shared by the parse, export and stats commands.
type ParseOptions struct {
	// OutputFormat selects how results are rendered
	OutputFormat string
	// MinConfidence hides candidates scored below this value
	MinConfidence float64
	// ShowValues prints candidate values unmasked
	ShowValues bool
	// TruffleHog runs the TruffleHog detectors in addition to the built-in extractors
	TruffleHog bool
	// MaxInputSize is the maximum size of a single input (in bytes)
	MaxInputSize int64
	// StripANSI removes terminal escape sequences before parsing
	StripANSI bool
	// ArchiveDepth limits nested archive extraction
	ArchiveDepth int
	// MaxThreads controls the number of concurrent TruffleHog detectors
	MaxThreads int
	// Timeout bounds the TruffleHog run per document
	Timeout time.Duration
}

// DefaultParseOptions returns sensible default values for parse options.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		OutputFormat:  OutputLog,
		MinConfidence: 0,
		ShowValues:    false,
		TruffleHog:    false,
		MaxInputSize:  10 * 1000 * 1000, // 10MB
		StripANSI:     false,
		ArchiveDepth:  3,
		MaxThreads:    4,
		Timeout:       60 * time.Second,
	}
}

// Validate checks every field and returns the first problem found.
func (o ParseOptions) Validate() error {
	if err := ValidateOutputFormat(o.OutputFormat); err != nil {
		return err
	}
	if err := ValidateConfidence(o.MinConfidence); err != nil {
		return err
	}
	if o.MaxInputSize <= 0 {
		return fmt.Errorf("max input size must be positive, got %d", o.MaxInputSize)
	}
	if err := ValidateArchiveDepth(o.ArchiveDepth); err != nil {
		return err
	}
	if err := ValidateThreadCount(o.MaxThreads); err != nil {
		return err
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", o.Timeout)
	}
	return nil
}
