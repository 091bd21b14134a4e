package ai

import (
	"encoding/json"
	"math"
	"strings"
)

// maxToAdd caps the add set regardless of what the model returns.
const maxToAdd = 10

// parseSets turns raw model output into add/remove id sets. Two stages:
// a parse of the documented {"toAdd":[],"toRemove":[]} object with
// non-numeric entries filtered out, then a legacy fallback where the
// whole response is a bare id array (into toAdd only). Total failure is
// empty sets, never an error.
func parseSets(raw string) (toAdd, toRemove []int) {
	toAdd = []int{}
	toRemove = []int{}

	cleaned := stripFences(raw)

	var structured struct {
		ToAdd    []any `json:"toAdd"`
		ToRemove []any `json:"toRemove"`
	}
	if err := json.Unmarshal([]byte(cleaned), &structured); err == nil &&
		(structured.ToAdd != nil || structured.ToRemove != nil) {
		return filterInts(structured.ToAdd, maxToAdd), filterInts(structured.ToRemove, -1)
	}

	var bare []any
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &bare); err == nil {
		toAdd = filterInts(bare, -1)
	}
	return toAdd, toRemove
}

// stripFences removes a surrounding markdown code fence, with or
// without a language tag, as models often wrap JSON in one.
func stripFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}
	cleaned = strings.TrimPrefix(cleaned, "```")
	if idx := strings.Index(cleaned, "\n"); idx != -1 {
		cleaned = cleaned[idx+1:]
	} else {
		cleaned = strings.TrimPrefix(cleaned, "json")
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}

// filterInts keeps only numeric entries with integral values, capped at
// limit when limit is non-negative.
func filterInts(values []any, limit int) []int {
	out := []int{}
	for _, v := range values {
		if limit >= 0 && len(out) >= limit {
			break
		}
		f, ok := v.(float64)
		if !ok || f != math.Trunc(f) {
			continue
		}
		out = append(out, int(f))
	}
	return out
}
