// Package memory implements the memory/knowledge plugin: a registry plugin
// whose handler performs its own intent detection and talks to the remote
// memory service. From the router's point of view it behaves like any canned
// in-process handler — every outcome, including transport failures and
// timeouts, comes back as a normal memory-typed Response.
package memory

import (
	"context"
	"fmt"
	"strings"

	"devflow.ai/cli/internal/application/ports"
	"devflow.ai/cli/internal/core/plugin"
	"devflow.ai/cli/internal/core/response"
)

// PluginName is the registry key for this plugin.
const PluginName = "memory"

const (
	defaultSearchLimit     = 10
	defaultSearchThreshold = 0.3
	defaultListLimit       = 20
	defaultRecallLimit     = 5
	defaultRelatedLimit    = 5
	defaultDuplicateMax    = 10
	duplicateThreshold     = 0.85
)

// Descriptor builds the plugin descriptor for the given gateway. The
// priority nudges the memory plugin ahead of third-party plugins whose
// triggers tie on score.
func Descriptor(gateway ports.MemoryGateway) plugin.Descriptor {
	h := &handler{gateway: gateway}
	return plugin.Descriptor{
		Name:        PluginName,
		Version:     "1.0.0",
		Description: "Stores, searches and recalls memories through the DevFlow memory service",
		Author:      "DevFlow",
		Keywords:    []string{"memory", "knowledge", "recall"},
		Triggers: []string{
			"remember", "recall", "memory", "forget", "note that",
			"suggest tags", "duplicates", "related", "record pattern", "what next",
		},
		Priority: 5,
		Handler:  h.Handle,
	}
}

type handler struct {
	gateway ports.MemoryGateway
}

// Handle routes the query through the plugin's private intent detector and
// performs at most one gateway call. It never returns an error: failures
// are folded into the Response so the outer dispatch treats this plugin
// like any in-process handler.
func (h *handler) Handle(ctx context.Context, hctx plugin.Context) (*response.Response, error) {
	intent := DetectIntent(hctx.Query)

	switch intent {
	case IntentSearch:
		return h.search(ctx, hctx.Query), nil
	case IntentCreate:
		return h.create(ctx, hctx.Query), nil
	case IntentList:
		return h.list(ctx), nil
	case IntentDelete:
		return h.delete(ctx, hctx.Query), nil
	case IntentRecall:
		return h.recall(ctx, hctx.Query), nil
	case IntentSuggestTags:
		return h.suggestTags(ctx, hctx), nil
	case IntentFindRelated:
		return h.findRelated(ctx, hctx), nil
	case IntentDetectDuplicates:
		return h.detectDuplicates(ctx), nil
	case IntentSuggestNext:
		return h.suggestNext(ctx, hctx.Query), nil
	case IntentRecordPattern:
		return h.recordPattern(ctx, hctx.Query), nil
	default:
		return &response.Response{
			Message: "I couldn't tell what you want from your memories. " +
				"Try \"remember that ...\", \"recall ...\", or \"search memories for ...\".",
			Type: response.TypeMemory,
		}, nil
	}
}

func (h *handler) search(ctx context.Context, query string) *response.Response {
	result, err := h.gateway.Search(ctx, ports.SearchRequest{
		Query:     query,
		Limit:     defaultSearchLimit,
		Threshold: defaultSearchThreshold,
	})
	if err != nil {
		return failure("search memories", err)
	}
	if len(result.Memories) == 0 {
		return &response.Response{
			Message: "No memories matched your search.",
			Type:    response.TypeMemory,
		}
	}
	return &response.Response{
		Message: fmt.Sprintf("Found %d matching memories.", len(result.Memories)),
		Type:    response.TypeMemory,
		Data:    result.Memories,
		Related: memoryTitles(result.Memories),
	}
}

func (h *handler) create(ctx context.Context, query string) *response.Response {
	content := ExtractContent(query)
	memory, err := h.gateway.Create(ctx, ports.CreateRequest{
		Title:      TitleFor(content),
		Content:    content,
		MemoryType: "note",
	})
	if err != nil {
		return failure("save that memory", err)
	}
	return &response.Response{
		Message: fmt.Sprintf("Saved: %q", memory.Title),
		Type:    response.TypeMemory,
		Data:    memory,
	}
}

func (h *handler) list(ctx context.Context) *response.Response {
	memories, err := h.gateway.List(ctx, defaultListLimit)
	if err != nil {
		return failure("list memories", err)
	}
	return &response.Response{
		Message: fmt.Sprintf("You have %d recent memories.", len(memories)),
		Type:    response.TypeMemory,
		Data:    memories,
		Related: memoryTitles(memories),
	}
}

func (h *handler) delete(ctx context.Context, query string) *response.Response {
	id := extractID(query)
	if id == "" {
		return &response.Response{
			Message: "Tell me which memory to forget, e.g. \"forget memory abc123\".",
			Type:    response.TypeMemory,
		}
	}
	if err := h.gateway.Delete(ctx, id); err != nil {
		return failure("forget that memory", err)
	}
	return &response.Response{
		Message: fmt.Sprintf("Forgotten: memory %s.", id),
		Type:    response.TypeMemory,
	}
}

func (h *handler) recall(ctx context.Context, query string) *response.Response {
	patterns, err := h.gateway.Recall(ctx, query, defaultRecallLimit)
	if err != nil {
		return failure("recall past behavior", err)
	}
	if len(patterns) == 0 {
		return &response.Response{
			Message: "Nothing recorded for that context yet.",
			Type:    response.TypeMemory,
		}
	}
	return &response.Response{
		Message: fmt.Sprintf("Recalled %d patterns from past sessions.", len(patterns)),
		Type:    response.TypeMemory,
		Data:    patterns,
	}
}

func (h *handler) suggestTags(ctx context.Context, hctx plugin.Context) *response.Response {
	id := targetMemoryID(hctx)
	if id == "" {
		return &response.Response{
			Message: "Tell me which memory to tag, e.g. \"suggest tags for memory abc123\".",
			Type:    response.TypeMemory,
		}
	}
	suggestions, err := h.gateway.SuggestTags(ctx, id)
	if err != nil {
		return failure("suggest tags", err)
	}
	return &response.Response{
		Message: fmt.Sprintf("Suggested tags: %s", strings.Join(suggestions.Tags, ", ")),
		Type:    response.TypeMemory,
		Data:    suggestions,
	}
}

func (h *handler) findRelated(ctx context.Context, hctx plugin.Context) *response.Response {
	id := targetMemoryID(hctx)
	if id == "" {
		return &response.Response{
			Message: "Tell me which memory to relate, e.g. \"find related to memory abc123\".",
			Type:    response.TypeMemory,
		}
	}
	memories, err := h.gateway.FindRelated(ctx, id, defaultRelatedLimit)
	if err != nil {
		return failure("find related memories", err)
	}
	return &response.Response{
		Message: fmt.Sprintf("Found %d related memories.", len(memories)),
		Type:    response.TypeMemory,
		Data:    memories,
		Related: memoryTitles(memories),
	}
}

func (h *handler) detectDuplicates(ctx context.Context) *response.Response {
	pairs, err := h.gateway.DetectDuplicates(ctx, duplicateThreshold, defaultDuplicateMax)
	if err != nil {
		return failure("detect duplicate memories", err)
	}
	if len(pairs) == 0 {
		return &response.Response{
			Message: "No duplicate memories detected.",
			Type:    response.TypeMemory,
		}
	}
	return &response.Response{
		Message: fmt.Sprintf("Detected %d potential duplicate pairs.", len(pairs)),
		Type:    response.TypeMemory,
		Data:    pairs,
	}
}

func (h *handler) suggestNext(ctx context.Context, query string) *response.Response {
	suggestions, err := h.gateway.SuggestNext(ctx, query)
	if err != nil {
		return failure("suggest next steps", err)
	}
	if len(suggestions) == 0 {
		return &response.Response{
			Message: "No suggestions for your current state yet.",
			Type:    response.TypeMemory,
		}
	}
	actions := make([]string, len(suggestions))
	for i, s := range suggestions {
		actions[i] = s.Action
	}
	return &response.Response{
		Message:  "Based on past sessions, here's what usually comes next.",
		Type:     response.TypeMemory,
		Data:     suggestions,
		Workflow: actions,
	}
}

func (h *handler) recordPattern(ctx context.Context, query string) *response.Response {
	err := h.gateway.RecordPattern(ctx, ports.RecordPatternRequest{
		Trigger:      "manual",
		Context:      query,
		Actions:      []string{query},
		FinalOutcome: "recorded",
		Confidence:   1.0,
	})
	if err != nil {
		return failure("record that pattern", err)
	}
	return &response.Response{
		Message: "Pattern recorded for future recall.",
		Type:    response.TypeMemory,
	}
}

// failure folds a gateway error into the plugin's normal Response shape.
// Timeouts and non-2xx statuses land here too; nothing propagates upward.
func failure(action string, err error) *response.Response {
	return &response.Response{
		Message: fmt.Sprintf("Couldn't %s: %v", action, err),
		Type:    response.TypeMemory,
	}
}

// targetMemoryID resolves the memory an intelligence intent operates on:
// an explicit "memory_id" option wins, otherwise the id is parsed out of
// the query text.
func targetMemoryID(hctx plugin.Context) string {
	if hctx.Options != nil {
		if id, ok := hctx.Options["memory_id"].(string); ok && id != "" {
			return id
		}
	}
	return extractID(hctx.Query)
}

// extractID finds the token following the word "memory" in the query
// ("forget memory abc123" -> "abc123"). Ids are case-sensitive on the
// service side, so the token keeps its original case.
func extractID(query string) string {
	fields := strings.Fields(query)
	for i, f := range fields {
		if strings.EqualFold(f, "memory") && i+1 < len(fields) {
			return strings.Trim(fields[i+1], ".,!?")
		}
	}
	return ""
}

func memoryTitles(memories []ports.Memory) []string {
	titles := make([]string, 0, len(memories))
	for _, m := range memories {
		if m.Title != "" {
			titles = append(titles, m.Title)
		}
	}
	return titles
}
