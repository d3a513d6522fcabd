// Package registry owns the set of registered plugins, their enabled state,
// and ranked-match queries over them. A Registry is an explicitly constructed
// value: there is no ambient global instance, so a process can host several
// independent registries (one per embedded router, one per test).
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"devflow.ai/cli/internal/core/plugin"
	"devflow.ai/cli/internal/core/response"
)

// Logger receives diagnostic lines from the registry. *log.Logger satisfies
// it directly.
type Logger interface {
	Printf(format string, args ...interface{})
}

// nopLogger discards diagnostics when no logger is supplied.
type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

// Registry holds plugin registrations and answers ranked-match queries.
// It is safe for concurrent use: matching operations take a read lock,
// mutators (Register, Unregister, SetEnabled) take a write lock.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*plugin.Registration

	// order preserves registration sequence so tie-breaks in FindMatching
	// stay deterministic for a fixed registration history.
	order []string

	logger Logger
}

// NewRegistry creates a new empty plugin registry.
func NewRegistry(logger Logger) *Registry {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Registry{
		byName: make(map[string]*plugin.Registration),
		logger: logger,
	}
}

// Register validates the descriptor and inserts a new enabled registration.
// It returns false — and performs no mutation — on a validation failure or
// when the name is already registered. An existing registration is never
// overwritten; callers must Unregister first. Failures are reported on the
// registry's log channel, never as errors up the stack.
func (r *Registry) Register(desc plugin.Descriptor) bool {
	if err := desc.Validate(); err != nil {
		r.logger.Printf("plugin registration rejected: %v", err)
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[desc.Name]; exists {
		r.logger.Printf("plugin registration rejected: %q is already registered", desc.Name)
		return false
	}

	r.byName[desc.Name] = &plugin.Registration{
		Descriptor:   desc,
		Enabled:      true,
		RegisteredAt: time.Now(),
	}
	r.order = append(r.order, desc.Name)

	r.logger.Printf("registered plugin %q v%s (%d triggers, priority %d)",
		desc.Name, desc.Version, len(desc.Triggers), desc.Priority)
	return true
}

// Unregister removes the named plugin. Returns whether removal occurred.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; !exists {
		return false
	}
	delete(r.byName, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.logger.Printf("unregistered plugin %q", name)
	return true
}

// SetEnabled toggles a plugin's enabled flag in place. Disabled plugins are
// invisible to matching and listing but stay registered and Get-able.
// Returns whether the plugin existed.
func (r *Registry) SetEnabled(name string, enabled bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, exists := r.byName[name]
	if !exists {
		return false
	}
	reg.Enabled = enabled
	return true
}

// FindMatching scores every enabled plugin against the query and returns the
// descriptors of those with a non-zero trigger score, ranked by descending
// score+priority. The sort is stable over registration order, so repeated
// calls with unchanged state return identical results. A plugin with zero
// matching triggers is excluded regardless of priority.
func (r *Registry) FindMatching(query string) []plugin.Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type ranked struct {
		desc  plugin.Descriptor
		score int
	}

	var matches []ranked
	for _, name := range r.order {
		reg := r.byName[name]
		if !reg.Enabled {
			continue
		}
		score := plugin.Score(query, reg.Descriptor.Triggers)
		if score == 0 {
			continue
		}
		matches = append(matches, ranked{desc: reg.Descriptor, score: score + reg.Descriptor.Priority})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	result := make([]plugin.Descriptor, len(matches))
	for i, m := range matches {
		result[i] = m.desc
	}
	return result
}

// Execute routes the query to the single highest-ranked matching plugin and
// returns its Response. A nil return means no plugin matched; deciding the
// ultimate fallback is the caller's job. A handler error or panic is
// contained here and converted into a generic failure Response — one
// misbehaving plugin must not take down the router.
func (r *Registry) Execute(ctx context.Context, query string, options map[string]interface{}) *response.Response {
	matches := r.FindMatching(query)
	if len(matches) == 0 {
		return nil
	}

	best := matches[0]
	r.logger.Printf("dispatching query to plugin %q", best.Name)

	resp, err := r.invoke(ctx, best, plugin.Context{Query: query, Options: options})
	if err != nil {
		r.logger.Printf("plugin %q failed: %v", best.Name, err)
		return &response.Response{
			Message: fmt.Sprintf("The %s plugin could not handle this request: %v", best.Name, err),
			Type:    response.TypeOrchestration,
		}
	}
	return resp
}

// invoke runs a handler with panic containment. A recovered panic is
// reported as an ordinary error so Execute treats it like any handler
// failure.
func (r *Registry) invoke(ctx context.Context, desc plugin.Descriptor, hctx plugin.Context) (resp *response.Response, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			resp = nil
			err = fmt.Errorf("handler panic: %v", rec)
		}
	}()
	return desc.Handler(ctx, hctx)
}

// List returns the names of all enabled plugins in registration order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.order))
	for _, name := range r.order {
		if r.byName[name].Enabled {
			names = append(names, name)
		}
	}
	return names
}

// ListDetailed returns a snapshot of every enabled registration in
// registration order.
func (r *Registry) ListDetailed() []plugin.Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	regs := make([]plugin.Registration, 0, len(r.order))
	for _, name := range r.order {
		if reg := r.byName[name]; reg.Enabled {
			regs = append(regs, *reg)
		}
	}
	return regs
}

// Count returns the number of registered plugins, enabled or not.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}

// EnabledCount returns the number of enabled plugins.
func (r *Registry) EnabledCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, reg := range r.byName {
		if reg.Enabled {
			count++
		}
	}
	return count
}

// Has returns true if a plugin with the given name is registered,
// regardless of its enabled state.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byName[name]
	return ok
}

// Get returns a snapshot of the named registration. Disabled plugins are
// still retrievable here.
func (r *Registry) Get(name string) (plugin.Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.byName[name]
	if !ok {
		return plugin.Registration{}, false
	}
	return *reg, true
}
