// Package checker transports already-computed issue lists from external
// checking backends.
//
// No checking happens here: a Backend is any source of issues for a text
// buffer, and Bridge adapts an external checker process speaking
// line-delimited JSON on stdio. Pair runs a primary and a secondary backend
// over the same text so the caller can hand both result lists to the merge
// rule.
package checker
