package plugin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"devflow.ai/cli/internal/core/response"
)

func testHandler(ctx context.Context, hctx Context) (*response.Response, error) {
	return response.New("ok", response.TypeOrchestration), nil
}

// TestDescriptor_Validate tests the registration contract
func TestDescriptor_Validate(t *testing.T) {
	valid := Descriptor{
		Name:        "echo",
		Version:     "1.0.0",
		Description: "Echoes the query back",
		Triggers:    []string{"echo"},
		Handler:     testHandler,
	}

	tests := []struct {
		name        string
		mutate      func(d *Descriptor)
		expectError bool
		description string
	}{
		{
			name:        "ValidDescriptor_Passes",
			mutate:      func(d *Descriptor) {},
			expectError: false,
			description: "A fully populated descriptor validates",
		},
		{
			name:        "EmptyName_Fails",
			mutate:      func(d *Descriptor) { d.Name = "" },
			expectError: true,
			description: "Name is required",
		},
		{
			name:        "EmptyVersion_Fails",
			mutate:      func(d *Descriptor) { d.Version = "" },
			expectError: true,
			description: "Version is required",
		},
		{
			name:        "EmptyDescription_Fails",
			mutate:      func(d *Descriptor) { d.Description = "" },
			expectError: true,
			description: "Description is required",
		},
		{
			name:        "NoTriggers_Fails",
			mutate:      func(d *Descriptor) { d.Triggers = nil },
			expectError: true,
			description: "At least one trigger is required",
		},
		{
			name:        "NilHandler_Fails",
			mutate:      func(d *Descriptor) { d.Handler = nil },
			expectError: true,
			description: "A handler is required",
		},
		{
			name:        "OptionalFieldsEmpty_Passes",
			mutate:      func(d *Descriptor) { d.Author = ""; d.Keywords = nil; d.Priority = 0 },
			expectError: false,
			description: "Author, keywords and priority are optional",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := valid
			tt.mutate(&desc)

			err := desc.Validate()
			if tt.expectError {
				assert.Error(t, err, tt.description)
			} else {
				assert.NoError(t, err, tt.description)
			}
		})
	}
}
