package generator

import (
	"regexp"
	"strings"
)

var paragraphSeparatorPattern = regexp.MustCompile(`\n\s*\n`)

// EstimateTokens gives a rough token count for text, assuming about four
// characters per token. Good enough for budget decisions, nothing else.
func EstimateTokens(text string) int {
	return (len(text) + 3) / 4
}

// SplitChunks splits text into paragraph-aligned chunks whose estimated
// token counts stay under maxTokens. Paragraphs are packed greedily; a
// single paragraph larger than the budget becomes its own chunk rather
// than being split mid-paragraph.
func SplitChunks(text string, maxTokens int) []string {
	paragraphs := paragraphSeparatorPattern.Split(text, -1)

	var chunks []string
	var current strings.Builder
	for _, paragraph := range paragraphs {
		if paragraph == "" {
			continue
		}
		if current.Len() > 0 && EstimateTokens(current.String())+EstimateTokens(paragraph) >= maxTokens {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(paragraph)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
