package memory

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

// TestDetectIntent covers the 11-way vocabulary and its precedence
func TestDetectIntent(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected Intent
	}{
		{"RememberThat", "remember that the deploy key rotates monthly", IntentCreate},
		{"NoteThat", "note that staging is frozen this week", IntentCreate},
		{"SaveThis", "save this for later: the oncall handbook link", IntentCreate},
		{"Forget", "forget memory abc123", IntentDelete},
		{"DeleteWord", "delete memory abc123", IntentDelete},
		{"ListMemories", "list my memories", IntentList},
		{"ShowAll", "show all my notes", IntentList},
		{"SearchWord", "search for the deploy notes", IntentSearch},
		{"FindWord", "find the api limits note", IntentSearch},
		{"Recall", "recall what we did for the last release", IntentRecall},
		{"WhatDidI", "what did i do before deploying", IntentRecall},
		{"SuggestTags", "suggest tags for memory abc123", IntentSuggestTags},
		{"FindRelated", "anything related to memory abc123", IntentFindRelated},
		{"Similar", "show similar memories to memory abc123", IntentFindRelated},
		{"Duplicates", "detect duplicate memories", IntentDetectDuplicates},
		{"SuggestNext", "what next after merging", IntentSuggestNext},
		{"WhatShouldI", "what should i do now", IntentSuggestNext},
		{"RecordPattern", "record pattern release then announce", IntentRecordPattern},
		{"Unknown", "the weather is nice", IntentUnknown},

		// Precedence: intelligence beats behavioral beats CRUD even when a
		// query contains words from several branches.
		{"RelatedBeatsFind", "find memories related to memory abc123", IntentFindRelated},
		{"TagsBeatNote", "suggest tags for that note i saved", IntentSuggestTags},
		{"DuplicateBeatsDelete", "delete duplicate memories", IntentDetectDuplicates},
		{"RecallBeatsSearch", "recall and search old sessions", IntentRecall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectIntent(tt.query))
		})
	}
}

// TestExtractContent verifies marker stripping for create queries
func TestExtractContent(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "RememberThat",
			query:    "remember that the deploy key rotates monthly",
			expected: "the deploy key rotates monthly",
		},
		{
			name:     "RememberWithoutThat",
			query:    "remember the standup moved to 9am",
			expected: "the standup moved to 9am",
		},
		{
			name:     "NoteThat",
			query:    "note that ci is flaky on arm runners",
			expected: "ci is flaky on arm runners",
		},
		{
			name:     "MixedCaseMarker",
			query:    "Remember that Tokens Expire Daily",
			expected: "Tokens Expire Daily",
		},
		{
			name:     "NoMarker_WholeQuery",
			query:    "the deploy key rotates monthly",
			expected: "the deploy key rotates monthly",
		},
		{
			// Runes whose lowercase form is wider than the original
			// ("Ⱥ" is 2 bytes, "ⱥ" is 3) must not skew the marker offset.
			name:     "MultiByteRunesBeforeMarker",
			query:    "ȺȺȺȺȺȺȺȺȺȺ remember x",
			expected: "x",
		},
		{
			name:     "MultiByteRunesInContent",
			query:    "remember that naïve café owners über-plan",
			expected: "naïve café owners über-plan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractContent(tt.query))
		})
	}
}

// TestTitleFor verifies title derivation from content
func TestTitleFor(t *testing.T) {
	assert.Equal(t, "short note", TitleFor("short note"))
	assert.Equal(t, "First sentence", TitleFor("First sentence. Second sentence."))

	long := "this content just keeps going and going well past the sixty character cap"
	title := TitleFor(long)
	assert.LessOrEqual(t, len(title), 60)
	assert.Contains(t, title, "...")

	// Truncation happens on rune boundaries: a long multi-byte title must
	// stay valid UTF-8.
	wide := strings.Repeat("é", 80)
	wideTitle := TitleFor(wide)
	assert.True(t, utf8.ValidString(wideTitle))
	assert.Equal(t, 60, utf8.RuneCountInString(wideTitle))
}
