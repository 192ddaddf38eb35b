package checker

import (
	"encoding/json"
	"fmt"

	"github.com/dshills/proofline/internal/engine/span"
	"github.com/dshills/proofline/internal/issue"
)

// lintResult mirrors the JSON shape checking backends emit per issue.
// Offsets count UTF-16 code units, matching the host widget's addressing.
type lintResult struct {
	Word        string   `json:"word"`
	Start       int      `json:"start"`
	End         int      `json:"end"`
	Kind        string   `json:"kind"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

// DecodeResults parses a backend's JSON issue array.
//
// Entries with an invalid span (negative start, or end not after start) are
// skipped rather than failing the batch, matching how the backends themselves
// bounds-check before emitting. Unknown kind names map to the style kind.
func DecodeResults(data []byte) ([]issue.Issue, error) {
	var results []lintResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("decode backend results: %w", err)
	}

	issues := make([]issue.Issue, 0, len(results))
	for _, r := range results {
		is := issue.Issue{
			Word:        r.Word,
			Span:        span.NewSpan(r.Start, r.End),
			Kind:        issue.KindFromString(r.Kind),
			Message:     r.Message,
			Suggestions: r.Suggestions,
		}
		if !is.Valid() {
			continue
		}
		issues = append(issues, is)
	}

	return issues, nil
}
