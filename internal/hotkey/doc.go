// Package hotkey provides hotkey code and modifier handling for the
// correction UI.
//
// The package defines:
//
//   - Code: a hardware key code with a display-label lookup and a
//     deterministic fallback label for unknown codes
//   - Modifier: a modifier bitmask with a stable storage encoding
//   - DisplayString: the "Cmd+Shift+L" style label shown in menus and
//     tooltips
//
// Key codes follow the host platform's virtual key code table. The storage
// encoding round-trips through the host event flag values so persisted
// bindings stay bit-compatible with the native widget.
//
// Everything here is pure; there is no runtime state.
package hotkey
