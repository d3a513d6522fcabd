package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devflow.ai/cli/internal/core/response"
)

// TestBuiltinClassifiers_FixedOrder verifies the classifier sequence never
// changes; routing precedence depends on it
func TestBuiltinClassifiers_FixedOrder(t *testing.T) {
	expected := []string{"help", "code", "memory", "campaign", "content", "trend"}

	classifiers := BuiltinClassifiers()
	require.Len(t, classifiers, len(expected))
	for i, c := range classifiers {
		assert.Equal(t, expected[i], c.Name, "classifier at position %d", i)
	}
}

// TestBuiltinClassifiers_Predicates tests each classifier's predicate over
// lowercased queries
func TestBuiltinClassifiers_Predicates(t *testing.T) {
	tests := []struct {
		name       string
		classifier string
		query      string
		matches    bool
	}{
		{"HelpPrefix", "help", "help me out", true},
		{"HelpEmbedded", "help", "i need help with x", true},
		{"HowTo", "help", "how to rebase a branch", true},
		{"HelpSuffixWithoutSpace_NoMatch", "help", "i am beyond any possible assistance", false},
		{"CodeWord", "code", "show me some code", true},
		{"SnippetWord", "code", "a debounce snippet please", true},
		{"CodeNoMatch", "code", "plan my week", false},
		{"MemoriesWord", "memory", "show my memories", true},
		{"KnowledgeBase", "memory", "what's in the knowledge base", true},
		{"CampaignWord", "campaign", "draft a campaign for the release", true},
		{"LaunchPlan", "campaign", "put together a launch plan", true},
		{"ContentWord", "content", "give me content ideas", true},
		{"BlogWord", "content", "draft a blog outline", true},
		{"TrendWord", "trend", "what's the latest trend", true},
		{"TrendingWord", "trend", "show trending topics", true},
	}

	byName := make(map[string]Classifier)
	for _, c := range BuiltinClassifiers() {
		byName[c.Name] = c
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := byName[tt.classifier]
			require.True(t, ok)
			assert.Equal(t, tt.matches, c.Matches(tt.query))
		})
	}
}

// TestBuiltinClassifiers_GeneratorsAreDeterministic verifies each generator
// produces a stable, typed Response
func TestBuiltinClassifiers_GeneratorsAreDeterministic(t *testing.T) {
	expectedTypes := map[string]response.Type{
		"help":     response.TypeHelp,
		"code":     response.TypeSnippet,
		"memory":   response.TypeMemory,
		"campaign": response.TypeCampaign,
		"content":  response.TypeContext,
		"trend":    response.TypeContext,
	}

	for _, c := range BuiltinClassifiers() {
		t.Run(c.Name, func(t *testing.T) {
			first := c.Generate("some query")
			second := c.Generate("some query")

			require.NotNil(t, first)
			assert.Equal(t, expectedTypes[c.Name], first.Type)
			assert.NotEmpty(t, first.Message)
			assert.Equal(t, first.Message, second.Message, "generators must be deterministic")
			assert.Equal(t, first.Type, second.Type)
		})
	}
}

// TestGenerateCode_SnippetSelection verifies keyword-based snippet choice
func TestGenerateCode_SnippetSelection(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		contains string
	}{
		{"RetryKeyword", "code for retry logic", "func retry"},
		{"WorkerKeyword", "worker pool code", "func workers"},
		{"Default", "some code please", "func debounce"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := generateCode(tt.query)
			require.NotNil(t, resp)
			assert.Equal(t, response.TypeSnippet, resp.Type)
			assert.Contains(t, resp.Code, tt.contains)
			assert.True(t, resp.Clipboard, "snippets are copy-ready")
		})
	}
}
