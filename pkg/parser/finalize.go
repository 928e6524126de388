package parser

import (
	"math"
	"regexp"
	"sort"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/rxwycdh/rxhash"
)

var complexCharset = regexp.MustCompile(`[A-Za-z0-9+/=_-]`)

type identity struct {
	Value string
	Kind  Kind
}

func identityOf(c Candidate) string {
	hash, err := rxhash.HashStruct(identity{Value: c.Value, Kind: c.Kind})
	if err != nil {
		log.Trace().Err(err).Str("key", c.Key).Msg("Failed hashing candidate identity")
		return string(c.Kind) + "\x00" + c.Value
	}
	return hash
}

// Deduplicate keeps the first candidate for every (value, kind) identity and
// preserves input order.
func Deduplicate(candidates []Candidate) []Candidate {
	seen := make(map[string]struct{}, len(candidates))
	result := make([]Candidate, 0, len(candidates))

	for _, c := range candidates {
		id := identityOf(c)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, c)
	}

	return result
}

// Refine adjusts the confidence of one candidate using service, length and
// charset heuristics. Lengths are counted in characters, not bytes. The
// result is clamped to [0, 1].
func Refine(c Candidate) Candidate {
	confidence := c.Confidence
	length := utf8.RuneCountInString(c.Value)

	if c.Service != "" && confidence > 0.8 {
		confidence = math.Min(0.95, confidence+0.1)
	}

	if length < 10 {
		confidence *= 0.7
	}

	if length > 30 && complexCharset.MatchString(c.Value) {
		confidence = math.Min(0.9, confidence+0.1)
	}

	c.Confidence = math.Max(0, math.Min(1, confidence))
	return c
}

// Finalize deduplicates, refines and sorts candidates by descending confidence.
// Ties keep their relative input order.
func Finalize(candidates []Candidate) []Candidate {
	result := Deduplicate(candidates)
	for i := range result {
		result[i] = Refine(result[i])
	}

	SortByConfidence(result)
	return result
}

// SortByConfidence orders candidates by descending confidence in place. Ties
// keep their relative order.
func SortByConfidence(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})
}
