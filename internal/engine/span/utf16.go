package span

import "unicode/utf16"

// Units encodes a string as UTF-16 code units.
// Offsets and spans index into the returned slice.
func Units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// Text decodes a slice of UTF-16 code units back into a string.
func Text(units []uint16) string {
	return string(utf16.Decode(units))
}

// Length returns the length of a string in UTF-16 code units.
func Length(s string) Offset {
	n := 0
	for _, r := range s {
		// utf16.RuneLen(r) for runes from ranging over a string: runes
		// below U+10000 encode as one code unit, the rest as a surrogate
		// pair. (utf16.RuneLen itself requires Go 1.23.)
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// Slice extracts the substring covered by a span.
// The span is clamped to the bounds of the text.
func Slice(s string, sp Span) string {
	units := Units(s)
	start := ClampOffset(sp.Start, len(units))
	end := ClampOffset(sp.End, len(units))
	if start >= end {
		return ""
	}
	return Text(units[start:end])
}
