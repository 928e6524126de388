package logging

import (
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SourceType defines where a reported candidate was read from.
type SourceType string

const (
	// SourceTypeFile indicates a candidate found in a plain input file.
	SourceTypeFile SourceType = "file"
	// SourceTypeStdin indicates a candidate found in standard input.
	SourceTypeStdin SourceType = "stdin"
	// SourceTypeArchive indicates a candidate found in a file inside an archive.
	SourceTypeArchive SourceType = "archive"
	// SourceTypeNestedArchive indicates a candidate found in an archive inside an archive.
	SourceTypeNestedArchive SourceType = "nested-archive"
)

// HitLevel defines a custom log level for extracted candidates.
// Implemented as WarnLevel but transformed to "hit" in output.
const HitLevel zerolog.Level = zerolog.WarnLevel

// HitLevelWriter wraps an io.Writer to transform logs with "level":"warn" to "level":"hit".
type HitLevelWriter struct {
	out       io.Writer
	mu        sync.Mutex
	nextIsHit bool
}

func (w *HitLevelWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	isHit := w.nextIsHit
	w.nextIsHit = false
	out := w.out
	w.mu.Unlock()

	if isHit && len(p) > 0 {
		var logEntry map[string]interface{}
		if err := json.Unmarshal(p, &logEntry); err == nil {
			if logEntry["level"] == "warn" || logEntry["level"] == "error" {
				logEntry["level"] = "hit"
			}
			delete(logEntry, "_hit")

			if newBytes, err := json.Marshal(logEntry); err == nil {
				newBytes = append(newBytes, '\n')
				if _, err := out.Write(newBytes); err != nil {
					return 0, err
				}
				return len(p), nil
			}
		}
	}

	return out.Write(p)
}

func (w *HitLevelWriter) markNextAsHit() {
	w.mu.Lock()
	w.nextIsHit = true
	w.mu.Unlock()
}

func (w *HitLevelWriter) SetOutput(out io.Writer) {
	w.mu.Lock()
	w.out = out
	w.mu.Unlock()
}

// NewHitLevelWriter creates a new HitLevelWriter wrapping the given io.Writer.
func NewHitLevelWriter(out io.Writer) *HitLevelWriter {
	return &HitLevelWriter{out: out}
}

// HitEvent wraps a zerolog.Event for hit-level logging with "level":"hit" output.
type HitEvent struct {
	event  *zerolog.Event
	writer *HitLevelWriter
}

func (h *HitEvent) Str(key, val string) *HitEvent {
	h.event.Str(key, val)
	return h
}

func (h *HitEvent) Int(key string, val int) *HitEvent {
	h.event.Int(key, val)
	return h
}

func (h *HitEvent) Float64(key string, val float64) *HitEvent {
	h.event.Float64(key, val)
	return h
}

func (h *HitEvent) Bool(key string, val bool) *HitEvent {
	h.event.Bool(key, val)
	return h
}

func (h *HitEvent) Err(err error) *HitEvent {
	h.event.Err(err)
	return h
}

func (h *HitEvent) Msg(msg string) {
	if h.writer != nil {
		h.writer.markNextAsHit()
	}
	h.event.Bool("_hit", true).Msg(msg)
}

var globalHitWriter *HitLevelWriter
var globalHitWriterOnce sync.Once

func setupGlobalHitWriter() {
	globalHitWriterOnce.Do(func() {
		globalHitWriter = &HitLevelWriter{out: os.Stderr}
		log.Logger = zerolog.New(globalHitWriter).With().Timestamp().Logger()
	})
}

// Hit creates a hit-level log event for an extracted candidate.
// Always emitted regardless of global log level.
// Example: logging.Hit().Str("key", "OPENAI_API_KEY").Float64("confidence", 0.8).Msg("SECRET")
func Hit() *HitEvent {
	if globalHitWriter == nil {
		setupGlobalHitWriter()
	}
	return &HitEvent{
		event:  log.WithLevel(zerolog.ErrorLevel),
		writer: globalHitWriter,
	}
}

// ParseLevel extends zerolog's ParseLevel to support "hit" level.
func ParseLevel(levelStr string) (zerolog.Level, error) {
	if levelStr == "hit" {
		return HitLevel, nil
	}
	return zerolog.ParseLevel(levelStr)
}

// SetGlobalHitWriter sets the global HitLevelWriter used by Hit.
func SetGlobalHitWriter(writer *HitLevelWriter) {
	globalHitWriter = writer
}
