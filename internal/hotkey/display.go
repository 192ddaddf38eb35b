package hotkey

// DisplayString renders a hotkey for menus and tooltips, joining the modifier
// names and the key label with "+", e.g. "Cmd+Shift+L".
// With no modifiers the key label stands alone.
func DisplayString(mods Modifier, code Code) string {
	label := Label(code)
	if mods.IsEmpty() {
		return label
	}
	return mods.String() + "+" + label
}

// Binding pairs a modifier set with a key code.
type Binding struct {
	Mods Modifier
	Code Code
}

// String returns the display string for the binding.
func (b Binding) String() string {
	return DisplayString(b.Mods, b.Code)
}

// ParseBinding parses a binding spec like "Cmd+Shift+L".
// The final "+"-separated token is the key label; everything before it is
// parsed as modifiers. The second return value is false if the key label is
// not recognized.
func ParseBinding(spec string) (Binding, bool) {
	mods, label := splitSpec(spec)
	code, ok := CodeFromLabel(label)
	if !ok {
		return Binding{}, false
	}
	return Binding{Mods: mods, Code: code}, true
}

// splitSpec separates the trailing key label from the modifier prefix.
func splitSpec(spec string) (Modifier, string) {
	last := -1
	for i, r := range spec {
		if r == '+' {
			last = i
		}
	}
	if last < 0 {
		return ModNone, spec
	}
	return ParseModifiers(spec[:last]), spec[last+1:]
}
