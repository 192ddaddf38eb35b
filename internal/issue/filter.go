package issue

import (
	"sort"

	"github.com/dshills/proofline/internal/engine/span"
)

// SortBySpan returns a copy of the issues sorted by start offset, then by
// length, then by kind. The sort is stable so equal issues keep their
// relative source order.
func SortBySpan(issues []Issue) []Issue {
	sorted := make([]Issue, len(issues))
	copy(sorted, issues)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Span.Start != sorted[j].Span.Start {
			return sorted[i].Span.Start < sorted[j].Span.Start
		}
		if sorted[i].Span.Len() != sorted[j].Span.Len() {
			return sorted[i].Span.Len() < sorted[j].Span.Len()
		}
		return sorted[i].Kind < sorted[j].Kind
	})

	return sorted
}

// FilterByKind returns the issues of a specific kind, in original order.
func FilterByKind(issues []Issue, kind Kind) []Issue {
	var result []Issue
	for _, is := range issues {
		if is.Kind == kind {
			result = append(result, is)
		}
	}
	return result
}

// At returns the issues whose span contains the given offset.
func At(issues []Issue, offset span.Offset) []Issue {
	var result []Issue
	for _, is := range issues {
		if is.Span.Contains(offset) {
			result = append(result, is)
		}
	}
	return result
}

// Within returns the issues whose span lies entirely inside the given span.
func Within(issues []Issue, sp span.Span) []Issue {
	var result []Issue
	for _, is := range issues {
		if is.Span.Start >= sp.Start && is.Span.End <= sp.End {
			result = append(result, is)
		}
	}
	return result
}

// Summary aggregates issue counts by kind.
type Summary struct {
	Spelling int
	Grammar  int
	Style    int
}

// Total returns the total number of counted issues.
func (s Summary) Total() int {
	return s.Spelling + s.Grammar + s.Style
}

// Summarize counts issues by kind.
func Summarize(issues []Issue) Summary {
	var s Summary
	for _, is := range issues {
		switch is.Kind {
		case KindSpelling:
			s.Spelling++
		case KindGrammar:
			s.Grammar++
		case KindStyle:
			s.Style++
		}
	}
	return s
}
