// Package issue defines flagged spelling/grammar issues and the merge rule
// that reconciles two independently produced issue lists over the same text.
//
// Issues arrive from external checking backends; this package never inspects
// the text itself. Merge treats the primary backend as authoritative: any
// secondary issue whose span overlaps a primary span is dropped entirely.
// Spans that merely touch are kept on both sides.
//
// All functions are pure and total. Issues are immutable value data with no
// identity beyond their fields.
package issue
