package hotkey

import "strings"

// Modifier represents keyboard modifier keys as a bitmask.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModControl indicates the Control key.
	ModControl

	// ModOption indicates the Option (Alt) key.
	ModOption

	// ModCommand indicates the Command key.
	ModCommand
)

// Host event flag values used for the persisted encoding.
// These match the native widget's modifier flag bits.
const (
	flagShift   uint32 = 1 << 17
	flagControl uint32 = 1 << 18
	flagOption  uint32 = 1 << 19
	flagCommand uint32 = 1 << 20
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// Encode returns the persisted representation of the modifier set, using the
// host event flag bit values.
func (m Modifier) Encode() uint32 {
	var flags uint32
	if m.Has(ModShift) {
		flags |= flagShift
	}
	if m.Has(ModControl) {
		flags |= flagControl
	}
	if m.Has(ModOption) {
		flags |= flagOption
	}
	if m.Has(ModCommand) {
		flags |= flagCommand
	}
	return flags
}

// DecodeModifiers converts a persisted flag value back into a Modifier.
// Bits outside the four known flags are dropped, so Decode(Encode(m)) == m
// for every Modifier and decoding never fails.
func DecodeModifiers(flags uint32) Modifier {
	var m Modifier
	if flags&flagShift != 0 {
		m = m.With(ModShift)
	}
	if flags&flagControl != 0 {
		m = m.With(ModControl)
	}
	if flags&flagOption != 0 {
		m = m.With(ModOption)
	}
	if flags&flagCommand != 0 {
		m = m.With(ModCommand)
	}
	return m
}

// String returns the display names joined with "+", in the conventional
// Ctrl, Opt, Shift, Cmd order.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModControl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModOption) {
		parts = append(parts, "Opt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModCommand) {
		parts = append(parts, "Cmd")
	}
	return strings.Join(parts, "+")
}

// modifierNameMap maps modifier names (lowercase) to Modifier values.
var modifierNameMap = map[string]Modifier{
	"shift":   ModShift,
	"ctrl":    ModControl,
	"control": ModControl,
	"opt":     ModOption,
	"option":  ModOption,
	"alt":     ModOption,
	"cmd":     ModCommand,
	"command": ModCommand,
	"meta":    ModCommand,
}

// ModifierFromName returns the Modifier for a given name (case-insensitive).
// Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	if m, ok := modifierNameMap[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m
	}
	return ModNone
}

// ParseModifiers parses a modifier string like "Cmd+Shift" or "ctrl+opt".
// Unrecognized names are ignored.
func ParseModifiers(s string) Modifier {
	var result Modifier
	for _, part := range strings.Split(s, "+") {
		if mod := ModifierFromName(part); mod != ModNone {
			result = result.With(mod)
		}
	}
	return result
}
