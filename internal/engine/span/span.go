package span

import "fmt"

// Offset represents a position in text, measured in UTF-16 code units.
// This is the fundamental position type, matching the host widget's
// addressing scheme.
type Offset = int

// Span represents an interval of text offsets.
// Start is inclusive, End is exclusive: [Start, End).
type Span struct {
	Start Offset // Inclusive start offset
	End   Offset // Exclusive end offset
}

// NewSpan creates a new Span from start and end offsets.
func NewSpan(start, end Offset) Span {
	return Span{Start: start, End: end}
}

// FromLength creates a Span from a start offset and a length.
func FromLength(start, length Offset) Span {
	return Span{Start: start, End: start + length}
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("[%d:%d)", s.Start, s.End)
}

// Len returns the length of the span in code units.
func (s Span) Len() Offset {
	return s.End - s.Start
}

// IsEmpty returns true if the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// IsValid returns true if the span is well formed (0 <= Start <= End).
func (s Span) IsValid() bool {
	return s.Start >= 0 && s.Start <= s.End
}

// Contains returns true if the given offset is within the span.
func (s Span) Contains(offset Offset) bool {
	return offset >= s.Start && offset < s.End
}

// Overlaps returns true if this span shares at least one offset with other.
// Spans that merely touch (one's End equals the other's Start) do not overlap.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// Touches returns true if the spans share a boundary without overlapping.
func (s Span) Touches(other Span) bool {
	return s.End == other.Start || other.End == s.Start
}

// Intersect returns the intersection of two spans, or an empty span if they
// don't overlap.
func (s Span) Intersect(other Span) Span {
	start := s.Start
	if other.Start > start {
		start = other.Start
	}
	end := s.End
	if other.End < end {
		end = other.End
	}
	if start >= end {
		return Span{Start: start, End: start}
	}
	return Span{Start: start, End: end}
}

// Union returns the smallest span that contains both spans.
func (s Span) Union(other Span) Span {
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end}
}

// Shift returns a new span shifted by the given delta.
func (s Span) Shift(delta Offset) Span {
	return Span{
		Start: s.Start + delta,
		End:   s.End + delta,
	}
}

// ClampOffset constrains an offset into [0, max].
// Negative offsets clamp to 0; offsets beyond max clamp to max.
func ClampOffset(offset, max Offset) Offset {
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}
