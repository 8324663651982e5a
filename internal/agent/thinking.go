package agent

import "strings"

// ExtractThinking scans output for a literal marker (case-insensitive)
// separating reasoning commentary from the rest of the text. The span from
// the marker up to the next line break is returned trimmed. This is a
// heuristic: the marker may be absent or malformed, in which case ok is
// false and the caller gets no value.
func ExtractThinking(output, marker string) (string, bool) {
	if output == "" || marker == "" {
		return "", false
	}

	idx := strings.Index(strings.ToLower(output), strings.ToLower(marker))
	if idx < 0 {
		return "", false
	}

	rest := output[idx+len(marker):]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}

	return strings.TrimSpace(rest), true
}
