// Package tooltip assembles the short explanatory sentences shown next to
// flagged words. Clauses with no backing value are omitted rather than
// rendered empty, so callers can hand over whatever they have and always get
// a well-formed sentence (or an empty string when nothing applies).
package tooltip
