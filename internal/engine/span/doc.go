// Package span provides offset and half-open interval types over UTF-16
// code units.
//
// The host text widget addresses text in UTF-16 code units (NSRange
// convention), so every offset in this package counts code units, not bytes
// or runes. The package provides:
//
//   - Offset: a position measured in UTF-16 code units
//   - Span: a half-open interval [Start, End) of offsets
//   - Codec helpers for moving between Go strings and code-unit slices
//
// Spans compare by value; a Span never carries identity beyond its fields.
package span
