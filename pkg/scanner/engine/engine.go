// Package engine runs the TruffleHog detector suite as an additional candidate
// source for the parser.
package engine

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/CompassSecurity/keyleek/pkg/parser"
	"github.com/acarl005/stripansi"
	"github.com/rs/zerolog/log"
	"github.com/trufflesecurity/trufflehog/v3/pkg/detectors"
	"github.com/trufflesecurity/trufflehog/v3/pkg/engine/defaults"
	"github.com/trufflesecurity/trufflehog/v3/pkg/pb/detectorspb"
	"github.com/wandb/parallel"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	keyPrefix = "DETECTED_TRUFFLEHOG_"
	// below the built-in service signatures, above every key-name heuristic except url
	detectorConfidence = 0.85
)

var nonKeyChars = regexp.MustCompile(`[^A-Z0-9]+`)

// Detector is the part of a TruffleHog detector the extractor relies on.
type Detector interface {
	FromData(ctx context.Context, verify bool, data []byte) ([]detectors.Result, error)
	Type() detectorspb.DetectorType
}

type Options struct {
	MaxThreads int
	Timeout    time.Duration
	// Detectors overrides the TruffleHog default detector set
	Detectors []Detector
}

// TruffleHogExtractor implements parser.Extractor. Verification is always
// disabled, nothing leaves the machine.
type TruffleHogExtractor struct {
	maxThreads int
	timeout    time.Duration
	detectors  []Detector
	title      cases.Caser
	titleMu    sync.Mutex
}

func NewTruffleHogExtractor(opts Options) *TruffleHogExtractor {
	if opts.MaxThreads < 1 {
		opts.MaxThreads = 1
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}

	dets := opts.Detectors
	if dets == nil {
		for _, d := range defaults.DefaultDetectors() {
			dets = append(dets, d)
		}
	}

	return &TruffleHogExtractor{
		maxThreads: opts.MaxThreads,
		timeout:    opts.Timeout,
		detectors:  dets,
		title:      cases.Title(language.Und, cases.NoLower),
	}
}

func (e *TruffleHogExtractor) Name() string {
	return "trufflehog"
}

// Extract runs all detectors against text. Detector errors are logged and a
// timeout returns whatever was collected until then.
func (e *TruffleHogExtractor) Extract(text string) []parser.Candidate {
	if strings.TrimSpace(text) == "" {
		return []parser.Candidate{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	var mu sync.Mutex
	collected := []parser.Candidate{}
	data := []byte(text)

	group := parallel.Limited(ctx, e.maxThreads)
	for _, detector := range e.detectors {
		group.Go(func(ctx context.Context) {
			results, err := detector.FromData(ctx, false, data)
			if err != nil {
				log.Debug().Err(err).Str("detector", detector.Type().String()).Msg("TruffleHog detector failed")
				return
			}

			candidates := make([]parser.Candidate, 0, len(results))
			for _, result := range results {
				if c, ok := e.toCandidate(result); ok {
					candidates = append(candidates, c)
				}
			}

			mu.Lock()
			collected = append(collected, candidates...)
			mu.Unlock()
		})
	}

	done := make(chan struct{})
	go func() {
		group.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		log.Warn().Str("timeout", e.timeout.String()).Msg("TruffleHog detection timed out, returning partial results")
	}

	mu.Lock()
	defer mu.Unlock()
	return append([]parser.Candidate(nil), collected...)
}

func (e *TruffleHogExtractor) toCandidate(result detectors.Result) (parser.Candidate, bool) {
	secret := result.Raw
	if len(result.RawV2) > 0 {
		secret = result.RawV2
	}

	value := cleanSecret(string(secret))
	if value == "" {
		return parser.Candidate{}, false
	}

	name := result.DetectorType.String()
	return parser.Candidate{
		Key:        keyPrefix + detectorKey(name),
		Value:      value,
		Kind:       parser.KindToken,
		Service:    e.serviceName(name),
		Confidence: detectorConfidence,
	}, true
}

// serviceName title-cases a detector name. Casers keep state and are not safe
// for concurrent use.
func (e *TruffleHogExtractor) serviceName(detector string) string {
	e.titleMu.Lock()
	defer e.titleMu.Unlock()
	return e.title.String(strings.ReplaceAll(detector, "_", " "))
}

func detectorKey(name string) string {
	return strings.Trim(nonKeyChars.ReplaceAllString(strings.ToUpper(name), "_"), "_")
}

func cleanSecret(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.TrimSpace(stripansi.Strip(text))
}
