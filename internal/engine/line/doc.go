// Package line extracts the line containing a cursor position.
//
// Locate answers "which line is the user editing right now" so the caller
// can scope a fix-this-line action. It is a total function: every text and
// cursor combination yields either a Line or an explicit not-found result.
// Blank and whitespace-only lines report not-found since they offer nothing
// to fix.
//
// Offsets follow the span package convention (UTF-16 code units). Recognized
// line terminators are "\n", "\r\n", and a lone "\r"; a cursor sitting
// exactly on a terminator attributes to the line before it.
package line
