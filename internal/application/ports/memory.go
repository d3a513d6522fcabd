// Package ports defines the interfaces the application core consumes from
// the outside world. Infrastructure adapters implement them; tests fake them.
package ports

import (
	"context"
	"time"
)

// Memory is a single entry in the remote memory service.
type Memory struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	MemoryType string    `json:"memory_type"`
	Tags       []string  `json:"tags,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// SearchRequest is a semantic search over stored memories.
type SearchRequest struct {
	Query     string  `json:"query"`
	Limit     int     `json:"limit"`
	Threshold float64 `json:"threshold"`
}

// SearchResult carries the memories a search returned.
type SearchResult struct {
	Memories []Memory `json:"memories"`
	Total    int      `json:"total"`
}

// CreateRequest stores a new memory.
type CreateRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	MemoryType string   `json:"memory_type"`
	Tags       []string `json:"tags,omitempty"`
}

// TagSuggestions is the intelligence service's tag proposal for a memory.
type TagSuggestions struct {
	MemoryID string   `json:"memory_id"`
	Tags     []string `json:"tags"`
}

// DuplicatePair names two memories the service considers near-duplicates.
type DuplicatePair struct {
	FirstID    string  `json:"first_id"`
	SecondID   string  `json:"second_id"`
	Similarity float64 `json:"similarity"`
}

// BehaviorPattern is a recorded workflow the behavior service can recall.
type BehaviorPattern struct {
	Trigger      string   `json:"trigger"`
	Context      string   `json:"context"`
	Actions      []string `json:"actions"`
	FinalOutcome string   `json:"final_outcome"`
	Confidence   float64  `json:"confidence"`
}

// Suggestion is a next-action proposal from the behavior service.
type Suggestion struct {
	Action     string  `json:"action"`
	Confidence float64 `json:"confidence"`
}

// RecordPatternRequest records a completed workflow for future recall.
type RecordPatternRequest struct {
	Trigger      string   `json:"trigger"`
	Context      string   `json:"context"`
	Actions      []string `json:"actions"`
	FinalOutcome string   `json:"final_outcome"`
	Confidence   float64  `json:"confidence"`
}

// MemoryGateway is the interface for the remote memory service. Every call
// is bounded by the adapter's configured timeout; errors carry the HTTP
// status and body text when the service answered non-2xx.
type MemoryGateway interface {
	// Search performs semantic search over stored memories
	Search(ctx context.Context, req SearchRequest) (*SearchResult, error)

	// Create stores a new memory
	Create(ctx context.Context, req CreateRequest) (*Memory, error)

	// List returns up to limit recent memories
	List(ctx context.Context, limit int) ([]Memory, error)

	// Get fetches a single memory by id
	Get(ctx context.Context, id string) (*Memory, error)

	// Delete removes a memory by id
	Delete(ctx context.Context, id string) error

	// SuggestTags asks the intelligence service for tags for a memory
	SuggestTags(ctx context.Context, memoryID string) (*TagSuggestions, error)

	// FindRelated returns memories related to the given one
	FindRelated(ctx context.Context, memoryID string, limit int) ([]Memory, error)

	// DetectDuplicates finds near-duplicate memory pairs
	DetectDuplicates(ctx context.Context, threshold float64, maxPairs int) ([]DuplicatePair, error)

	// Recall retrieves behavior patterns matching a context description
	Recall(ctx context.Context, contextDesc string, limit int) ([]BehaviorPattern, error)

	// SuggestNext proposes next actions given the current state
	SuggestNext(ctx context.Context, currentState string) ([]Suggestion, error)

	// RecordPattern records a completed workflow
	RecordPattern(ctx context.Context, req RecordPatternRequest) error
}
