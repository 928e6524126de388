package parser

import "regexp"

// The compiled matchers are shared by every table copy handed out below and are
// never recompiled per call.
var defaultSignatures = []Signature{
	{Name: "GITLAB_TOKEN", Matcher: regexp.MustCompile(`glpat-[a-zA-Z0-9_-]{20,}`), Kind: KindToken, Service: "GitLab", BaseConfidence: 0.95},
	{Name: "FIGMA_API_KEY", Matcher: regexp.MustCompile(`figd_[a-zA-Z0-9]{32,}`), Kind: KindAPIKey, Service: "Figma", BaseConfidence: 0.95},
	{Name: "SLACK_BOT_TOKEN", Matcher: regexp.MustCompile(`xoxb-[a-zA-Z0-9-]{10,}`), Kind: KindToken, Service: "Slack", BaseConfidence: 0.95},
	{Name: "GITHUB_TOKEN", Matcher: regexp.MustCompile(`gh[pousr]_[A-Za-z0-9]{36,}`), Kind: KindToken, Service: "GitHub", BaseConfidence: 0.95},
	{Name: "ANTHROPIC_API_KEY", Matcher: regexp.MustCompile(`sk-ant-[a-zA-Z0-9_-]{20,}`), Kind: KindAPIKey, Service: "Anthropic", BaseConfidence: 0.95},
	{Name: "STRIPE_SECRET_KEY", Matcher: regexp.MustCompile(`sk_live_[0-9a-zA-Z]{24,}`), Kind: KindSecret, Service: "Stripe", BaseConfidence: 0.95},
	{Name: "AWS_ACCESS_KEY", Matcher: regexp.MustCompile(`AKIA[0-9A-Z]{16}`), Kind: KindAPIKey, Service: "AWS", BaseConfidence: 0.9},
	// Matches any 40 character base64-ish run, hence the lower confidence.
	{Name: "AWS_SECRET_KEY", Matcher: regexp.MustCompile(`[A-Za-z0-9/+=]{40}`), Kind: KindSecret, Service: "AWS", BaseConfidence: 0.7},
	{Name: "GOOGLE_API_KEY", Matcher: regexp.MustCompile(`AIza[0-9A-Za-z_-]{35}`), Kind: KindAPIKey, Service: "Google", BaseConfidence: 0.9},
	{Name: "MCPR_TOKEN", Matcher: regexp.MustCompile(`mcpr_[a-zA-Z0-9_-]{20,}`), Kind: KindToken, Service: "MCP Router", BaseConfidence: 0.95},
	// Fallback for unlabelled high-entropy runs. Keep last.
	{Name: "GENERIC_API_KEY", Matcher: regexp.MustCompile(`[a-zA-Z0-9]{32,}`), Kind: KindAPIKey, Service: "Generic", BaseConfidence: 0.3},
}

var defaultServiceMapping = []ServiceAlias{
	{Token: "GITLAB", DisplayName: "GitLab"},
	{Token: "FIGMA", DisplayName: "Figma"},
	{Token: "SLACK", DisplayName: "Slack"},
	{Token: "AWS", DisplayName: "AWS"},
	{Token: "GOOGLE", DisplayName: "Google Maps"},
	{Token: "MCPR", DisplayName: "MCP Router"},
	{Token: "TODO2", DisplayName: "Todo2"},
	{Token: "BINANCE", DisplayName: "Binance"},
	{Token: "OPENAI", DisplayName: "OpenAI"},
	{Token: "ANTHROPIC", DisplayName: "Anthropic"},
	{Token: "GITHUB", DisplayName: "GitHub"},
	{Token: "STRIPE", DisplayName: "Stripe"},
	{Token: "COINBASE", DisplayName: "Coinbase"},
	{Token: "SENDGRID", DisplayName: "SendGrid"},
	{Token: "TWILIO", DisplayName: "Twilio"},
	{Token: "DISCORD", DisplayName: "Discord"},
	{Token: "SUPABASE", DisplayName: "Supabase"},
}

var defaultKeyNameRules = []KeyNameRule{
	{Matcher: regexp.MustCompile(`(?i)api[_-]?key`), Kind: KindAPIKey, Confidence: 0.8},
	{Matcher: regexp.MustCompile(`(?i)(token|auth)`), Kind: KindToken, Confidence: 0.8},
	{Matcher: regexp.MustCompile(`(?i)(secret|private)`), Kind: KindSecret, Confidence: 0.8},
	{Matcher: regexp.MustCompile(`(?i)(url|endpoint)`), Kind: KindURL, Confidence: 0.9},
	{Matcher: regexp.MustCompile(`(?i)(path|dir)`), Kind: KindPath, Confidence: 0.7},
}

const fallbackConfidence = 0.5

// DefaultSignatures returns the built-in signature table in matching priority order.
func DefaultSignatures() []Signature {
	return append([]Signature(nil), defaultSignatures...)
}

// DefaultServiceMapping returns the built-in key-name to service table.
func DefaultServiceMapping() []ServiceAlias {
	return append([]ServiceAlias(nil), defaultServiceMapping...)
}

// DefaultKeyNameRules returns the built-in key-name heuristics in priority order.
func DefaultKeyNameRules() []KeyNameRule {
	return append([]KeyNameRule(nil), defaultKeyNameRules...)
}
