package parser

import "regexp"

// Kind classifies an extracted candidate.
type Kind string

const (
	KindAPIKey Kind = "api_key"
	KindToken  Kind = "token"
	KindSecret Kind = "secret"
	KindURL    Kind = "url"
	KindPath   Kind = "path"
	KindOther  Kind = "other"
)

// Kinds lists every valid kind in display order.
var Kinds = []Kind{KindAPIKey, KindToken, KindSecret, KindURL, KindPath, KindOther}

// Valid reports whether k is one of the closed set of kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindAPIKey, KindToken, KindSecret, KindURL, KindPath, KindOther:
		return true
	}
	return false
}

// Format is the input layout chosen for a parse call.
type Format string

const (
	FormatStructured   Format = "structured"
	FormatLineOriented Format = "line-oriented"
	FormatUnstructured Format = "unstructured"
	FormatAmbiguous    Format = "ambiguous"
)

// ConfidenceLevel buckets a confidence score for display.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// Candidate is one extracted credential guess.
type Candidate struct {
	Key        string  `json:"key"`
	Value      string  `json:"value"`
	Kind       Kind    `json:"kind"`
	Service    string  `json:"service,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Level maps the confidence score onto high (>= 0.8), medium (>= 0.6) or low.
func (c Candidate) Level() ConfidenceLevel {
	switch {
	case c.Confidence >= 0.8:
		return ConfidenceHigh
	case c.Confidence >= 0.6:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// Outcome is the result of a single parse call. Candidates are sorted by
// confidence, highest first.
type Outcome struct {
	Candidates []Candidate `json:"candidates"`
	Format     Format      `json:"format"`
	Count      int         `json:"count"`
}

// Signature recognizes the literal shape of a credential.
type Signature struct {
	Name           string
	Matcher        *regexp.Regexp
	Kind           Kind
	Service        string
	BaseConfidence float64
}

// ServiceAlias maps a token found in an upper-cased key name to a service display name.
type ServiceAlias struct {
	Token       string
	DisplayName string
}

// KeyNameRule assigns a kind and starting confidence to keys whose name matches.
type KeyNameRule struct {
	Matcher    *regexp.Regexp
	Kind       Kind
	Confidence float64
}

// Extractor is an additional candidate source run after the built-in extractors.
type Extractor interface {
	Name() string
	Extract(text string) []Candidate
}
