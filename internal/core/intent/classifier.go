package intent

import (
	"strings"

	"devflow.ai/cli/internal/core/response"
)

// Classifier pairs a cheap substring predicate with the generator that
// produces its canned Response. Classifiers are evaluated in a fixed order
// with short-circuit on the first match; that order is a behavioral
// guarantee, not a tuning knob.
type Classifier struct {
	// Name identifies the classifier in logs ("help", "code", ...)
	Name string

	// Matches reports whether this classifier claims the lowercased query
	Matches func(query string) bool

	// Generate produces the deterministic, non-network Response
	Generate func(query string) *response.Response
}

// BuiltinClassifiers returns the fixed classifier sequence: help, code,
// memory, campaign, content, trend. Built-ins always take precedence over
// registered plugins, even when a plugin's trigger would score higher.
func BuiltinClassifiers() []Classifier {
	return []Classifier{
		{
			Name: "help",
			Matches: func(q string) bool {
				return strings.HasPrefix(q, "help") ||
					strings.Contains(q, "help ") ||
					strings.Contains(q, "how to")
			},
			Generate: generateHelp,
		},
		{
			Name: "code",
			Matches: func(q string) bool {
				return strings.Contains(q, "code") ||
					strings.Contains(q, "snippet") ||
					strings.Contains(q, "function for")
			},
			Generate: generateCode,
		},
		{
			Name: "memory",
			Matches: func(q string) bool {
				return strings.Contains(q, "memories") ||
					strings.Contains(q, "knowledge base") ||
					strings.Contains(q, "what do you know")
			},
			Generate: generateMemory,
		},
		{
			Name: "campaign",
			Matches: func(q string) bool {
				return strings.Contains(q, "campaign") ||
					strings.Contains(q, "launch plan")
			},
			Generate: generateCampaign,
		},
		{
			Name: "content",
			Matches: func(q string) bool {
				return strings.Contains(q, "content") ||
					strings.Contains(q, "blog") ||
					strings.Contains(q, "social post")
			},
			Generate: generateContent,
		},
		{
			Name: "trend",
			Matches: func(q string) bool {
				return strings.Contains(q, "trend") ||
					strings.Contains(q, "what's popular") ||
					strings.Contains(q, "whats popular")
			},
			Generate: generateTrend,
		},
	}
}
