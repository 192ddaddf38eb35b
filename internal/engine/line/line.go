package line

import (
	"strings"

	"github.com/dshills/proofline/internal/engine/span"
)

// Line represents the line containing the cursor.
type Line struct {
	// Text is the line's content with its trailing terminator stripped.
	Text string

	// Span covers the line's offsets including the trailing terminator if
	// one exists, so the span can delete or replace the whole line atomically.
	Span span.Span
}

// Locate returns the line containing the cursor.
// The cursor is clamped into [0, length(text)]. The second return value is
// false when the containing line is empty or whitespace-only.
func Locate(text string, cursor span.Offset) (Line, bool) {
	units := span.Units(text)
	n := len(units)
	cursor = span.ClampOffset(cursor, n)

	start := lineStart(units, cursor)

	// Scan forward from the line start to the next terminator.
	// The terminator is excluded from Text but included in Span.
	textEnd, spanEnd := n, n
	for i := start; i < n; i++ {
		if units[i] == '\n' {
			textEnd, spanEnd = i, i+1
			break
		}
		if units[i] == '\r' {
			textEnd, spanEnd = i, i+1
			if i+1 < n && units[i+1] == '\n' {
				spanEnd = i + 2
			}
			break
		}
	}

	lineText := span.Text(units[start:textEnd])
	if strings.TrimSpace(lineText) == "" {
		return Line{}, false
	}

	return Line{Text: lineText, Span: span.NewSpan(start, spanEnd)}, true
}

// lineStart returns the offset immediately after the nearest terminator
// preceding the cursor, or 0 if none exists. A cursor sitting exactly on a
// terminator belongs to the line before that terminator, so the scan only
// considers terminators that end at or before the cursor.
func lineStart(units []uint16, cursor span.Offset) span.Offset {
	for j := cursor; j > 0; j-- {
		switch units[j-1] {
		case '\n':
			return j
		case '\r':
			if j < len(units) && units[j] == '\n' {
				// Part of a \r\n pair; the cursor sits inside the
				// terminator, which belongs to the line before it.
				continue
			}
			return j
		}
	}
	return 0
}
