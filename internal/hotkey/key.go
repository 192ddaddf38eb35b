package hotkey

import (
	"fmt"
	"strings"
)

// Code represents a hardware virtual key code.
type Code uint16

// Common virtual key codes (ANSI layout).
const (
	CodeA Code = 0
	CodeS Code = 1
	CodeD Code = 2
	CodeF Code = 3
	CodeH Code = 4
	CodeG Code = 5
	CodeZ Code = 6
	CodeX Code = 7
	CodeC Code = 8
	CodeV Code = 9
	CodeB Code = 11
	CodeQ Code = 12
	CodeW Code = 13
	CodeE Code = 14
	CodeR Code = 15
	CodeY Code = 16
	CodeT Code = 17

	Code1 Code = 18
	Code2 Code = 19
	Code3 Code = 20
	Code4 Code = 21
	Code5 Code = 23
	Code6 Code = 22
	Code7 Code = 26
	Code8 Code = 28
	Code9 Code = 25
	Code0 Code = 29

	CodeO Code = 31
	CodeU Code = 32
	CodeI Code = 34
	CodeP Code = 35
	CodeL Code = 37
	CodeJ Code = 38
	CodeK Code = 40
	CodeN Code = 45
	CodeM Code = 46

	CodeReturn     Code = 36
	CodeTab        Code = 48
	CodeSpace      Code = 49
	CodeDelete     Code = 51
	CodeEscape     Code = 53
	CodeHome       Code = 115
	CodePageUp     Code = 116
	CodeEnd        Code = 119
	CodePageDown   Code = 121
	CodeLeftArrow  Code = 123
	CodeRightArrow Code = 124
	CodeDownArrow  Code = 125
	CodeUpArrow    Code = 126
)

// codeLabels maps key codes to display labels.
var codeLabels = map[Code]string{
	CodeA: "A", CodeS: "S", CodeD: "D", CodeF: "F", CodeH: "H",
	CodeG: "G", CodeZ: "Z", CodeX: "X", CodeC: "C", CodeV: "V",
	CodeB: "B", CodeQ: "Q", CodeW: "W", CodeE: "E", CodeR: "R",
	CodeY: "Y", CodeT: "T", CodeO: "O", CodeU: "U", CodeI: "I",
	CodeP: "P", CodeL: "L", CodeJ: "J", CodeK: "K", CodeN: "N",
	CodeM: "M",

	Code1: "1", Code2: "2", Code3: "3", Code4: "4", Code5: "5",
	Code6: "6", Code7: "7", Code8: "8", Code9: "9", Code0: "0",

	CodeReturn:     "Return",
	CodeTab:        "Tab",
	CodeSpace:      "Space",
	CodeDelete:     "Delete",
	CodeEscape:     "Esc",
	CodeHome:       "Home",
	CodePageUp:     "PageUp",
	CodeEnd:        "End",
	CodePageDown:   "PageDown",
	CodeLeftArrow:  "Left",
	CodeRightArrow: "Right",
	CodeDownArrow:  "Down",
	CodeUpArrow:    "Up",
}

// Label returns the display label for a key code.
// Unknown codes get the deterministic fallback "Key<n>".
func Label(code Code) string {
	if label, ok := codeLabels[code]; ok {
		return label
	}
	return fmt.Sprintf("Key%d", code)
}

// CodeFromLabel returns the key code for a display label (case-insensitive).
// The second return value is false if the label is not recognized.
func CodeFromLabel(label string) (Code, bool) {
	label = strings.TrimSpace(label)
	for code, l := range codeLabels {
		if strings.EqualFold(l, label) {
			return code, true
		}
	}
	return 0, false
}
