// Package intent implements the intent router: the fixed-order built-in
// classifiers, the delegation to the plugin registry, and the terminal
// fallback that guarantees every query gets a Response.
package intent

import (
	"context"
	"strings"

	"devflow.ai/cli/internal/core/response"
)

// PluginExecutor is the slice of the plugin registry the router needs.
// *registry.Registry satisfies it.
type PluginExecutor interface {
	Execute(ctx context.Context, query string, options map[string]interface{}) *response.Response
}

// Logger receives routing decisions. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

// Router resolves a query to exactly one Response. It holds no per-query
// state; concurrent Route calls are independent.
type Router struct {
	classifiers []Classifier
	plugins     PluginExecutor
	logger      Logger
}

// NewRouter creates a Router over the built-in classifier sequence and the
// given plugin executor.
func NewRouter(plugins PluginExecutor, logger Logger) *Router {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Router{
		classifiers: BuiltinClassifiers(),
		plugins:     plugins,
		logger:      logger,
	}
}

// Route evaluates built-in classifiers in fixed order, short-circuiting on
// the first match; built-ins always win over plugins. If no classifier
// matches, the best-scoring enabled plugin handles the query. If nothing
// matches at all, the terminal fallback produces a generic orchestration
// Response. Route never returns nil.
func (r *Router) Route(ctx context.Context, query string, options map[string]interface{}) *response.Response {
	lowered := strings.ToLower(query)

	for _, c := range r.classifiers {
		if c.Matches(lowered) {
			r.logger.Printf("query matched built-in classifier %q", c.Name)
			return c.Generate(query)
		}
	}

	if r.plugins != nil {
		if resp := r.plugins.Execute(ctx, query, options); resp != nil {
			return resp
		}
	}

	r.logger.Printf("no handler matched; using generic fallback")
	return generateFallback(query)
}
