package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/CompassSecurity/keyleek/pkg/format"
)

// ParseMaxInputSize parses a human-readable size string (e.g., "10MB", "500kB") into bytes.
func ParseMaxInputSize(sizeStr string) (int64, error) {
	size, err := format.ParseHumanSize(sizeStr)
	if err != nil {
		return 0, fmt.Errorf("failed to parse max input size: %w", err)
	}
	if size <= 0 {
		return 0, fmt.Errorf("max input size must be positive, got %q", sizeStr)
	}
	return size, nil
}

// ValidateConfidence validates that a confidence threshold lies within [0, 1].
func ValidateConfidence(confidence float64) error {
	if confidence < 0 || confidence > 1 {
		return fmt.Errorf("confidence must be between 0 and 1, got %v", confidence)
	}
	return nil
}

// ValidateOutputFormat validates that format is one of OutputFormats.
func ValidateOutputFormat(format string) error {
	if !slices.Contains(OutputFormats, format) {
		return fmt.Errorf("unknown output format %q, expected one of %s", format, strings.Join(OutputFormats, ", "))
	}
	return nil
}

// ValidateArchiveDepth validates the nested archive recursion limit.
func ValidateArchiveDepth(depth int) error {
	if depth < 0 {
		return fmt.Errorf("archive depth cannot be negative, got %d", depth)
	}
	if depth > 10 {
		return fmt.Errorf("archive depth too high (max 10), got %d", depth)
	}
	return nil
}

// ValidateThreadCount validates that the thread count is within acceptable bounds.
func ValidateThreadCount(threads int) error {
	if threads < 1 {
		return fmt.Errorf("thread count must be at least 1, got %d", threads)
	}
	if threads > 100 {
		return fmt.Errorf("thread count too high (max 100), got %d", threads)
	}
	return nil
}
