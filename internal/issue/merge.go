package issue

// Merge reconciles two independently produced issue lists over the same text.
//
// The primary backend is authoritative: a secondary issue whose span shares
// one or more offsets with any primary span is dropped entirely, regardless
// of kind. Secondary issues disjoint from every primary span are kept
// verbatim. Touching spans (one's end equals the other's start) do not
// overlap and both survive.
//
// The result is all primary issues in their original order followed by the
// surviving secondary issues in their original order. Merge never fails;
// either list may be empty or nil.
func Merge(primary, secondary []Issue) []Issue {
	if len(secondary) == 0 {
		return primary
	}
	if len(primary) == 0 {
		return secondary
	}

	merged := make([]Issue, 0, len(primary)+len(secondary))
	merged = append(merged, primary...)

	// Issue counts per call are small, so the quadratic scan is fine.
	for _, sec := range secondary {
		conflict := false
		for _, pri := range primary {
			if sec.Span.Overlaps(pri.Span) {
				conflict = true
				break
			}
		}
		if !conflict {
			merged = append(merged, sec)
		}
	}

	return merged
}
