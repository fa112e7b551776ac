package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlashcards(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected []Flashcard
	}{
		{
			name:  "single complete pair",
			lines: []string{"Q: 2+2?", "A: 4"},
			expected: []Flashcard{
				{Question: "2+2?", Answer: "4"},
			},
		},
		{
			name:  "multiple pairs in order",
			lines: []string{"Q: first?", "A: one", "Q: second?", "A: two"},
			expected: []Flashcard{
				{Question: "first?", Answer: "one"},
				{Question: "second?", Answer: "two"},
			},
		},
		{
			name:  "trailing question without answer is dropped",
			lines: []string{"Q: first?", "A: one", "Q: orphan"},
			expected: []Flashcard{
				{Question: "first?", Answer: "one"},
			},
		},
		{
			name:  "multi line question joined with spaces",
			lines: []string{"Q: what is", "the capital of France?", "A: Paris"},
			expected: []Flashcard{
				{Question: "what is the capital of France?", Answer: "Paris"},
			},
		},
		{
			name:  "multi line answer joined with spaces",
			lines: []string{"Q: define gravity", "A: the force that", "attracts masses"},
			expected: []Flashcard{
				{Question: "define gravity", Answer: "the force that attracts masses"},
			},
		},
		{
			name:     "answer without question is dropped",
			lines:    []string{"A: stray answer"},
			expected: []Flashcard{},
		},
		{
			name:     "empty question text is dropped",
			lines:    []string{"Q:", "A: answer"},
			expected: []Flashcard{},
		},
		{
			name:     "no lines",
			lines:    nil,
			expected: []Flashcard{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFlashcards(tt.lines)
			for i := range got {
				got[i].ID = ""
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseFlashcardsDropsIncompletePairs(t *testing.T) {
	lines := []string{
		"Q: first?", "A: one",
		"Q: second?", "A: two",
		"Q: orphan",
	}

	cards := parseFlashcards(lines)

	// One fewer card than the number of "Q:" lines.
	assert.Len(t, cards, 2)
}
