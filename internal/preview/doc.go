// Package preview provides bounded-display helpers for compact UI surfaces
// such as tooltips and suggestion panels.
//
// Cap limits a list to a fixed prefix and Truncate normalizes text to a
// single display line of bounded length. Both are pure and total.
package preview
