package issue

import (
	"fmt"
	"strings"

	"github.com/dshills/proofline/internal/engine/span"
)

// Kind classifies an issue.
type Kind string

const (
	// KindSpelling indicates a misspelled word.
	KindSpelling Kind = "spelling"

	// KindGrammar indicates a grammar or capitalization problem.
	KindGrammar Kind = "grammar"

	// KindStyle indicates a stylistic suggestion.
	KindStyle Kind = "style"
)

// KindFromString maps a backend kind name to a Kind.
// Unrecognized names map to KindStyle.
func KindFromString(s string) Kind {
	switch strings.ToLower(s) {
	case "spelling":
		return KindSpelling
	case "grammar":
		return KindGrammar
	default:
		return KindStyle
	}
}

// Icon returns a single character icon for the kind.
func (k Kind) Icon() string {
	switch k {
	case KindSpelling:
		return "S"
	case KindGrammar:
		return "G"
	case KindStyle:
		return "T"
	default:
		return "?"
	}
}

// Issue represents a flagged span of text produced by a checking backend.
type Issue struct {
	// Word is the exact flagged substring.
	Word string

	// Span is the flagged interval in UTF-16 code-unit offsets.
	Span span.Span

	// Kind classifies the issue.
	Kind Kind

	// Message describes the problem, as reported by the backend.
	Message string

	// Suggestions holds candidate replacements in preference order.
	// May be empty.
	Suggestions []string
}

// Valid returns true if the issue's span is usable: non-negative start and
// positive length.
func (is Issue) Valid() bool {
	return is.Span.Start >= 0 && is.Span.Len() > 0
}

// Format renders an issue for display, e.g.
//
//	S [spelling] "teh" -> the
func Format(is Issue) string {
	var sb strings.Builder

	sb.WriteString(is.Kind.Icon())
	sb.WriteString(" [")
	sb.WriteString(string(is.Kind))
	sb.WriteString("] ")
	fmt.Fprintf(&sb, "%q", is.Word)

	if len(is.Suggestions) > 0 {
		sb.WriteString(" -> ")
		sb.WriteString(is.Suggestions[0])
	}
	if is.Message != "" {
		sb.WriteString(" (")
		sb.WriteString(is.Message)
		sb.WriteString(")")
	}

	return sb.String()
}

// FormatWithSpan renders an issue with its offsets, e.g.
//
//	12:15: S [spelling] "teh" -> the
func FormatWithSpan(is Issue) string {
	return fmt.Sprintf("%d:%d: %s", is.Span.Start, is.Span.End, Format(is))
}
