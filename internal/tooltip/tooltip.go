package tooltip

import (
	"fmt"
	"strings"

	"github.com/dshills/proofline/internal/issue"
)

// Clause is one fragment of a tooltip sentence.
type Clause struct {
	// Lead introduces the value, e.g. "did you mean".
	Lead string

	// Value is the backing data. A clause with an empty value is omitted.
	Value string
}

// Assemble joins clauses into a single sentence.
//
// Each clause renders as "Lead Value" (or just the value when Lead is empty).
// Clauses whose Value is empty or whitespace-only are omitted. The surviving
// fragments are joined with "; " and terminated with a period. If no clause
// survives, Assemble returns "".
func Assemble(clauses []Clause) string {
	var parts []string
	for _, c := range clauses {
		value := strings.TrimSpace(c.Value)
		if value == "" {
			continue
		}
		if c.Lead == "" {
			parts = append(parts, value)
			continue
		}
		parts = append(parts, c.Lead+" "+value)
	}

	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "; ") + "."
}

// kindLead returns the opening fragment for an issue kind.
func kindLead(kind issue.Kind) string {
	switch kind {
	case issue.KindSpelling:
		return "Possible misspelling"
	case issue.KindGrammar:
		return "Possible grammar issue"
	default:
		return "Suggestion"
	}
}

// ForIssue builds the standard correction tooltip for an issue.
//
// The sentence opens with the kind and flagged word, then adds the top
// suggestion and the shortcut hint when available. Absent values drop their
// clause:
//
//	Possible misspelling "teh"; did you mean "the"; press Cmd+1 to apply.
func ForIssue(is issue.Issue, shortcut string) string {
	clauses := []Clause{
		{Lead: kindLead(is.Kind), Value: quoted(is.Word)},
		{Value: is.Message},
	}

	if len(is.Suggestions) > 0 {
		clauses = append(clauses, Clause{Lead: "did you mean", Value: quoted(is.Suggestions[0])})
	}
	if shortcut != "" {
		clauses = append(clauses, Clause{Lead: "press", Value: shortcut + " to apply"})
	}

	return Assemble(clauses)
}

// quoted wraps a non-empty value in double quotes.
func quoted(s string) string {
	if s == "" {
		return ""
	}
	return fmt.Sprintf("%q", s)
}
