package plugin

import (
	"context"
	"fmt"
	"time"

	"devflow.ai/cli/internal/core/response"
)

// Context carries the raw query and an opaque options bag into a plugin
// handler. Options are passed through untouched; handlers decide what, if
// anything, they mean.
type Context struct {
	Query   string
	Options map[string]interface{}
}

// Handler is the function every plugin exposes. It receives a cancellable
// context so handlers that perform I/O (e.g. remote HTTP calls) honor
// deadlines; pure in-process handlers may ignore it.
type Handler func(ctx context.Context, hctx Context) (*response.Response, error)

// Descriptor describes a plugin: a named, versioned unit exposing trigger
// words and a handler producing a Response. Descriptors are immutable once
// registered.
type Descriptor struct {
	// Name is the unique registry key (e.g., "memory")
	Name string

	// Version identifies the plugin release
	Version string

	// Description is a human-readable summary of what the plugin does
	Description string

	// Author is optional attribution
	Author string

	// Keywords are optional free-form labels for discovery
	Keywords []string

	// Triggers are lowercase words/phrases whose substring presence in a
	// query contributes to the plugin's match score. Must be non-empty.
	Triggers []string

	// Priority is added to the trigger score as a tie-break. Default 0.
	Priority int

	// Handler produces the plugin's Response
	Handler Handler
}

// Validate checks that the descriptor satisfies the registration contract.
// All registration-time validation lives here.
func (d *Descriptor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("plugin name cannot be empty")
	}
	if d.Version == "" {
		return fmt.Errorf("plugin %s: version cannot be empty", d.Name)
	}
	if d.Description == "" {
		return fmt.Errorf("plugin %s: description cannot be empty", d.Name)
	}
	if len(d.Triggers) == 0 {
		return fmt.Errorf("plugin %s: at least one trigger is required", d.Name)
	}
	if d.Handler == nil {
		return fmt.Errorf("plugin %s: handler is required", d.Name)
	}
	return nil
}

// Registration is the registry's mutable wrapper around an immutable
// Descriptor. Enabled is the only field that changes after creation.
type Registration struct {
	Descriptor   Descriptor
	Enabled      bool
	RegisteredAt time.Time
}
