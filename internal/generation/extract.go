package generation

import (
	"regexp"
	"strings"
)

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ExtractJSON normalizes a model text response into a JSON-parseable
// substring. Models sometimes wrap the payload in a fenced code block or
// surround it with conversational prose even when asked for pure JSON.
//
// Resolution order:
//  1. a fenced code block yields its inner content, trimmed;
//  2. otherwise the slice from the first '{' or '[' to the matching-kind
//     last '}' or ']';
//  3. otherwise the trimmed input.
//
// Extraction is best effort: the result is not guaranteed to be valid JSON
// and callers must still handle unmarshal errors.
func ExtractJSON(text string) string {
	if text == "" {
		return "{}"
	}

	if m := fencedBlock.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}

	firstBrace := strings.Index(text, "{")
	firstBracket := strings.Index(text, "[")

	start, end := -1, -1
	if firstBrace != -1 && (firstBracket == -1 || firstBrace < firstBracket) {
		start = firstBrace
		end = strings.LastIndex(text, "}")
	} else if firstBracket != -1 {
		start = firstBracket
		end = strings.LastIndex(text, "]")
	}

	if start != -1 && end > start {
		return text[start : end+1]
	}

	return strings.TrimSpace(text)
}
