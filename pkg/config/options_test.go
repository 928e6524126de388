package config

import (
	"testing"
	"time"
)

func TestDefaultParseOptions(t *testing.T) {
	opts := DefaultParseOptions()

	if opts.OutputFormat != OutputLog {
		t.Errorf("Expected OutputFormat to be %q, got %q", OutputLog, opts.OutputFormat)
	}

	if opts.MaxThreads != 4 {
		t.Errorf("Expected MaxThreads to be 4, got %d", opts.MaxThreads)
	}

	if opts.TruffleHog {
		t.Error("Expected TruffleHog to be disabled by default")
	}

	if opts.ShowValues {
		t.Error("Expected ShowValues to be false by default")
	}

	expectedSize := int64(10 * 1000 * 1000)
	if opts.MaxInputSize != expectedSize {
		t.Errorf("Expected MaxInputSize to be %d, got %d", expectedSize, opts.MaxInputSize)
	}

	if err := opts.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestParseOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*ParseOptions)
	}{
		{name: "format", modify: func(o *ParseOptions) { o.OutputFormat = "csv" }},
		{name: "confidence", modify: func(o *ParseOptions) { o.MinConfidence = 2 }},
		{name: "size", modify: func(o *ParseOptions) { o.MaxInputSize = 0 }},
		{name: "depth", modify: func(o *ParseOptions) { o.ArchiveDepth = -1 }},
		{name: "threads", modify: func(o *ParseOptions) { o.MaxThreads = 0 }},
		{name: "timeout", modify: func(o *ParseOptions) { o.Timeout = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultParseOptions()
			tt.modify(&opts)
			if err := opts.Validate(); err == nil {
				t.Errorf("Validate() expected error for invalid %s", tt.name)
			}
		})
	}
}
