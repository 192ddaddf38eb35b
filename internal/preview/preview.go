package preview

import "strings"

// DefaultCap is the default number of items shown in a bounded panel.
const DefaultCap = 5

// Ellipsis terminates a truncated preview.
const Ellipsis = '…'

// Cap returns the first min(len(items), max(limit, 0)) items in original
// order. A zero or negative limit yields an empty result. The input is never
// reordered or copied.
func Cap[T any](items []T, limit int) []T {
	if limit <= 0 {
		return nil
	}
	if len(items) <= limit {
		return items
	}
	return items[:limit]
}

// lineTerminators maps every recognized terminator to a single space, longest
// sequence first so "\r\n" collapses to one space rather than two.
var lineTerminators = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Truncate collapses text onto one line and bounds its length.
//
// Every line terminator becomes a single space and surrounding whitespace is
// trimmed. If the normalized text fits in maxLen characters it is returned
// unchanged; otherwise the first maxLen-1 characters are kept and an ellipsis
// appended so the result is exactly maxLen characters long.
func Truncate(text string, maxLen int) string {
	flat := strings.TrimSpace(lineTerminators.Replace(text))

	runes := []rune(flat)
	if len(runes) <= maxLen {
		return flat
	}
	if maxLen <= 0 {
		return ""
	}

	return string(runes[:maxLen-1]) + string(Ellipsis)
}
