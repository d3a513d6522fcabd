package memory

import "strings"

// Intent enumerates the memory plugin's private vocabulary. Detection is an
// ordered if-chain — intelligence intents before behavioral before core
// CRUD — deliberately distinct from the registry's scored contest: inside
// one plugin precedence matters more than weight.
type Intent string

const (
	IntentSearch           Intent = "search"
	IntentCreate           Intent = "create"
	IntentList             Intent = "list"
	IntentDelete           Intent = "delete"
	IntentRecall           Intent = "recall"
	IntentSuggestTags      Intent = "suggest_tags"
	IntentFindRelated      Intent = "find_related"
	IntentDetectDuplicates Intent = "detect_duplicates"
	IntentSuggestNext      Intent = "suggest_next"
	IntentRecordPattern    Intent = "record_pattern"
	IntentUnknown          Intent = "unknown"
)

// DetectIntent classifies a query against the plugin's vocabulary using the
// same substring-containment technique as the outer router's built-ins, but
// with manual precedence instead of scoring.
func DetectIntent(query string) Intent {
	q := strings.ToLower(query)

	// Intelligence intents first: their phrasings often contain CRUD words
	// ("find related", "suggest tags for this note").
	switch {
	case strings.Contains(q, "suggest tags") || strings.Contains(q, "tag this") || strings.Contains(q, "what tags"):
		return IntentSuggestTags
	case strings.Contains(q, "related") || strings.Contains(q, "similar"):
		return IntentFindRelated
	case strings.Contains(q, "duplicate"):
		return IntentDetectDuplicates
	}

	// Behavioral intents before CRUD for the same reason.
	switch {
	case strings.Contains(q, "recall") || strings.Contains(q, "what did i") || strings.Contains(q, "last time"):
		return IntentRecall
	case strings.Contains(q, "what next") || strings.Contains(q, "suggest next") || strings.Contains(q, "what should i"):
		return IntentSuggestNext
	case strings.Contains(q, "record pattern") || strings.Contains(q, "record this workflow"):
		return IntentRecordPattern
	}

	// Core CRUD last.
	switch {
	case strings.Contains(q, "remember") || strings.Contains(q, "note that") || strings.Contains(q, "save this"):
		return IntentCreate
	case strings.Contains(q, "forget") || strings.Contains(q, "delete"):
		return IntentDelete
	case strings.Contains(q, "list") || strings.Contains(q, "show all") || strings.Contains(q, "everything"):
		return IntentList
	case strings.Contains(q, "search") || strings.Contains(q, "find") || strings.Contains(q, "look up"):
		return IntentSearch
	}

	return IntentUnknown
}

// createMarkers are the phrasings that introduce content to store, in the
// order they are tried.
var createMarkers = []string{"remember that ", "remember ", "note that ", "save this: ", "save this "}

// ExtractContent pulls the content to store out of a create-intent query:
// everything after the first marker phrase. Falls back to the whole query
// when no marker is present. Marker search folds ASCII case only, so the
// offsets it yields are valid byte offsets into the original query even
// when it contains multi-byte runes.
func ExtractContent(query string) string {
	folded := foldASCII(query)
	for _, marker := range createMarkers {
		if idx := strings.Index(folded, marker); idx >= 0 {
			content := strings.TrimSpace(query[idx+len(marker):])
			if content != "" {
				return content
			}
		}
	}
	return strings.TrimSpace(query)
}

// foldASCII lowercases the ASCII letters of s in place, byte for byte.
// Non-ASCII bytes pass through untouched, so len(foldASCII(s)) == len(s)
// and every index into the result indexes the same byte in s. The create
// markers are pure ASCII, which is all this needs.
func foldASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

// TitleFor derives a short title from stored content: the first sentence,
// truncated to 60 runes.
func TitleFor(content string) string {
	title := content
	if idx := strings.IndexAny(title, ".!?\n"); idx > 0 {
		title = title[:idx]
	}
	if runes := []rune(title); len(runes) > 60 {
		title = string(runes[:57]) + "..."
	}
	return strings.TrimSpace(title)
}
