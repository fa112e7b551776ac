package generator

import "strings"

// ExtractJSON locates the JSON object inside raw model output that may be
// wrapped in conversational text or markdown fences. It scans for the
// first balanced {...} span, ignoring braces inside JSON strings; when no
// balanced span closes (a truncated response, or conversational text with
// unbalanced quotes that derails the string tracking), it falls back to
// slicing from the first '{' to the last '}' regardless of string state.
// The boolean reports whether any span was found at all.
func ExtractJSON(text string) (string, bool) {
	firstBrace := -1
	braceCount := 0
	inString := false
	escapeNext := false

	for i, ch := range text {
		if escapeNext {
			escapeNext = false
			continue
		}
		if ch == '\\' && inString {
			escapeNext = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}

		if !inString {
			switch ch {
			case '{':
				if firstBrace == -1 {
					firstBrace = i
				}
				braceCount++
			case '}':
				braceCount--
				if braceCount == 0 && firstBrace != -1 {
					return text[firstBrace : i+1], true
				}
			}
		}
	}

	rawFirst := strings.IndexByte(text, '{')
	rawLast := strings.LastIndexByte(text, '}')
	if rawFirst >= 0 && rawLast > rawFirst {
		return text[rawFirst : rawLast+1], true
	}
	return "", false
}
