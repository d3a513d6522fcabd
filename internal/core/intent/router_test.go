package intent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devflow.ai/cli/internal/core/plugin"
	"devflow.ai/cli/internal/core/registry"
	"devflow.ai/cli/internal/core/response"
)

func registryWith(t *testing.T, descs ...plugin.Descriptor) *registry.Registry {
	t.Helper()
	reg := registry.NewRegistry(nil)
	for _, d := range descs {
		require.True(t, reg.Register(d))
	}
	return reg
}

func namedPlugin(name string, triggers []string) plugin.Descriptor {
	return plugin.Descriptor{
		Name:        name,
		Version:     "1.0.0",
		Description: "test plugin " + name,
		Triggers:    triggers,
		Handler: func(ctx context.Context, hctx plugin.Context) (*response.Response, error) {
			return &response.Response{
				Message: name + ":" + hctx.Query,
				Type:    response.TypeOrchestration,
			}, nil
		},
	}
}

// TestRouter_BuiltinsWinOverPlugins verifies the fixed-priority guarantee:
// a built-in classifier handles the query even when a plugin trigger would
// score far higher
func TestRouter_BuiltinsWinOverPlugins(t *testing.T) {
	reg := registryWith(t, namedPlugin("grabby", []string{"help me configure the deployment"}))
	router := NewRouter(reg, nil)

	resp := router.Route(context.Background(), "help me configure the deployment", nil)
	require.NotNil(t, resp)
	assert.Equal(t, response.TypeHelp, resp.Type, "built-in help classifier must win")
	assert.NotContains(t, resp.Message, "grabby:", "plugin must never see the query")
}

// TestRouter_DelegatesToPluginWhenNoBuiltinMatches verifies step 3 of the
// evaluation order
func TestRouter_DelegatesToPluginWhenNoBuiltinMatches(t *testing.T) {
	reg := registryWith(t, namedPlugin("echo", []string{"echo"}))
	router := NewRouter(reg, nil)

	resp := router.Route(context.Background(), "please echo this", nil)
	require.NotNil(t, resp)
	assert.Equal(t, "echo:please echo this", resp.Message)
}

// TestRouter_FallbackNeverNil verifies the terminal fallback
func TestRouter_FallbackNeverNil(t *testing.T) {
	tests := []struct {
		name   string
		router *Router
		query  string
	}{
		{
			name:   "EmptyRegistry",
			router: NewRouter(registry.NewRegistry(nil), nil),
			query:  "completely unmatched request",
		},
		{
			name:   "NilExecutor",
			router: NewRouter(nil, nil),
			query:  "completely unmatched request",
		},
		{
			name:   "EmptyQuery",
			router: NewRouter(registry.NewRegistry(nil), nil),
			query:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := tt.router.Route(context.Background(), tt.query, nil)
			require.NotNil(t, resp, "Route must never return nil")
			assert.Equal(t, response.TypeOrchestration, resp.Type)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

// TestRouter_ClassifierOrderShortCircuits verifies that an earlier
// classifier wins when a query satisfies several predicates
func TestRouter_ClassifierOrderShortCircuits(t *testing.T) {
	router := NewRouter(nil, nil)

	// Satisfies help ("how to") and code ("code"); help is evaluated first.
	resp := router.Route(context.Background(), "how to write better code", nil)
	require.NotNil(t, resp)
	assert.Equal(t, response.TypeHelp, resp.Type)

	// Satisfies code ("snippet") and trend ("trend"); code comes first.
	resp = router.Route(context.Background(), "snippet about the trend", nil)
	require.NotNil(t, resp)
	assert.Equal(t, response.TypeSnippet, resp.Type)
}

// TestRouter_CaseInsensitiveClassification verifies queries are lowercased
// before the predicates run
func TestRouter_CaseInsensitiveClassification(t *testing.T) {
	router := NewRouter(nil, nil)

	resp := router.Route(context.Background(), "HELP ME PLEASE", nil)
	require.NotNil(t, resp)
	assert.Equal(t, response.TypeHelp, resp.Type)
}

// TestRouter_StatelessAcrossCalls verifies repeated routing of the same
// query is independent and identical
func TestRouter_StatelessAcrossCalls(t *testing.T) {
	reg := registryWith(t, namedPlugin("echo", []string{"echo"}))
	router := NewRouter(reg, nil)

	for i := 0; i < 3; i++ {
		resp := router.Route(context.Background(), "please echo this", nil)
		require.NotNil(t, resp)
		assert.Equal(t, "echo:please echo this", resp.Message, "call %d", i)
	}
}
