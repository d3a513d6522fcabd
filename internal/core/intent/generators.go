package intent

import (
	"fmt"
	"strings"

	"devflow.ai/cli/internal/core/response"
)

// Canned generators for the built-in classifiers. Everything here is
// deterministic and in-process; nothing touches the network.

func generateHelp(query string) *response.Response {
	return &response.Response{
		Message: "DevFlow routes free-text requests to built-in intents or registered plugins.\n" +
			"Try: \"show me a debounce snippet\", \"plan a product launch campaign\",\n" +
			"\"remember that staging deploys happen on Fridays\", or \"what's trending\".",
		Type: response.TypeHelp,
		Related: []string{
			"devflow ask <query>",
			"devflow plugins list",
			"devflow chat",
		},
	}
}

func generateCode(query string) *response.Response {
	snippet := snippetFor(query)
	return &response.Response{
		Message:   fmt.Sprintf("Here's a %s snippet you can drop in:", snippet.label),
		Type:      response.TypeSnippet,
		Code:      snippet.code,
		Clipboard: true,
		Related:   snippet.related,
	}
}

func generateMemory(query string) *response.Response {
	return &response.Response{
		Message: "Recent entries from your knowledge base:",
		Type:    response.TypeMemory,
		Data: []map[string]string{
			{"title": "Deploy checklist", "summary": "Tag release, run smoke tests, announce in #releases"},
			{"title": "API rate limits", "summary": "Public API allows 120 req/min per token"},
			{"title": "Oncall rotation", "summary": "Rotation hands over Mondays 09:00 UTC"},
		},
	}
}

func generateCampaign(query string) *response.Response {
	return &response.Response{
		Message: "Drafted a launch campaign outline.",
		Type:    response.TypeCampaign,
		Workflow: []string{
			"define audience and positioning",
			"draft announcement post and changelog",
			"schedule social posts across channels",
			"measure signups for two weeks",
		},
		Agents:       []string{"copywriter", "scheduler", "analyst"},
		DashboardURL: "https://app.devflow.ai/campaigns/draft",
	}
}

func generateContent(query string) *response.Response {
	return &response.Response{
		Message: "Content ideas based on your recent work:",
		Type:    response.TypeContext,
		Data: []string{
			"Blog: what we learned migrating the event pipeline",
			"Post: three CLI ergonomics rules we follow",
			"Thread: how plugin scoring picks a handler",
		},
	}
}

func generateTrend(query string) *response.Response {
	return &response.Response{
		Message: "Trending topics in your space this week:",
		Type:    response.TypeContext,
		Data: []string{
			"local-first tooling",
			"agent orchestration patterns",
			"terminal UI renaissance",
		},
	}
}

// generateFallback is the terminal fallback: a generic orchestration
// Response acknowledging the request. It never fails and never returns nil.
func generateFallback(query string) *response.Response {
	return &response.Response{
		Message: fmt.Sprintf("I don't have a specific handler for %q yet, but I've noted the request. "+
			"Run \"devflow plugins list\" to see what's available.", query),
		Type: response.TypeOrchestration,
	}
}

type cannedSnippet struct {
	label   string
	code    string
	related []string
}

// snippetFor picks a canned snippet by keyword; the default is a debounce
// helper, the most requested one.
func snippetFor(query string) cannedSnippet {
	switch {
	case strings.Contains(query, "retry"):
		return cannedSnippet{
			label: "retry with backoff",
			code: `func retry(ctx context.Context, attempts int, fn func() error) error {
	delay := 100 * time.Millisecond
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		select {
		case <-time.After(delay):
			delay *= 2
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}`,
			related: []string{"context cancellation", "exponential backoff"},
		}
	case strings.Contains(query, "worker"):
		return cannedSnippet{
			label: "bounded worker pool",
			code: `func workers(n int, jobs <-chan func()) {
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				job()
			}
		}()
	}
	wg.Wait()
}`,
			related: []string{"sync.WaitGroup", "channel fan-out"},
		}
	default:
		return cannedSnippet{
			label: "debounce",
			code: `func debounce(d time.Duration, fn func()) func() {
	var mu sync.Mutex
	var timer *time.Timer
	return func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(d, fn)
	}
}`,
			related: []string{"time.AfterFunc", "rate limiting"},
		}
	}
}
