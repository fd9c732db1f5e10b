package llm

import (
	"encoding/json"
	"strings"
)

// Stage identifies which parsing path produced an extraction result.
type Stage string

const (
	// StageJSON means a bracket-bounded JSON array parsed cleanly.
	StageJSON Stage = "json"
	// StageLines means the JSON attempt failed and non-empty lines were used.
	StageLines Stage = "lines"
	// StageNone means JSON parsed but did not yield a list of strings.
	StageNone Stage = "none"
)

// ExtractStringArray pulls a list of strings out of free-form model output.
// It first tries the substring between the first '[' and the last ']' as
// JSON; when no brackets are present or the JSON is malformed it falls back
// to splitting the raw text into non-empty, non-fence lines. JSON that parses
// but is not a list of strings yields an empty result.
func ExtractStringArray(raw string) ([]string, Stage) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end <= start {
		return splitLines(raw), StageLines
	}

	var items []string
	if err := json.Unmarshal([]byte(raw[start:end+1]), &items); err != nil {
		var anything any
		if json.Unmarshal([]byte(raw[start:end+1]), &anything) == nil {
			// Valid JSON, wrong shape.
			return []string{}, StageNone
		}
		return splitLines(raw), StageLines
	}
	return items, StageJSON
}

// ExtractJSONArray returns the bracket-bounded substring of raw, or "" when
// no array delimiters are found. Used where callers decode into their own
// shapes rather than plain strings.
func ExtractJSONArray(raw string) string {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end <= start {
		return ""
	}
	return raw[start : end+1]
}

func splitLines(raw string) []string {
	lines := []string{}
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "```") {
			continue
		}
		lines = append(lines, trimmed)
	}
	return lines
}
