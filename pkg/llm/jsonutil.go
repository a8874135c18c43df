package llm

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ExtractJSON unmarshals the JSON object an LLM was instructed to return,
// tolerating markdown code fences and surrounding prose, and repairing
// near-JSON (trailing commas, single quotes) as a last resort.
//
// Returns a KindParse error when nothing usable is found — callers treat
// that as an empty result, never as a turn failure.
func ExtractJSON(text string, v any) error {
	candidate := stripFences(text)

	if start := strings.IndexAny(candidate, "{["); start >= 0 {
		candidate = candidate[start:]
		if end := lastMatching(candidate); end > 0 {
			candidate = candidate[:end]
		}
	}

	if err := json.Unmarshal([]byte(candidate), v); err == nil {
		return nil
	}

	repaired, err := jsonrepair.JSONRepair(candidate)
	if err != nil {
		return NewError(KindParse, "no JSON object in response", err)
	}
	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return NewError(KindParse, "repaired JSON still invalid", err)
	}
	return nil
}

// stripFences removes a ```json ... ``` (or bare ```) wrapper if present.
func stripFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if idx := strings.Index(trimmed, "```"); idx >= 0 {
		rest := trimmed[idx+3:]
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			// Drop the language tag line ("json", "JSON" or empty).
			tag := strings.TrimSpace(rest[:nl])
			if tag == "" || strings.EqualFold(tag, "json") {
				rest = rest[nl+1:]
			}
		}
		if end := strings.Index(rest, "```"); end >= 0 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	}
	return trimmed
}

// lastMatching returns the index one past the closing bracket that matches
// the opening bracket at position 0, or -1 when unbalanced.
func lastMatching(s string) int {
	if len(s) == 0 {
		return -1
	}
	open := s[0]
	var close byte
	switch open {
	case '{':
		close = '}'
	case '[':
		close = ']'
	default:
		return -1
	}
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}
