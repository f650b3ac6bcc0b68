package input

import "unicode/utf8"

// Key is a host-neutral key name
// Special keys use the lowercase names below, printable keys are the character itself ("s", "+")
type Key string

const (
	KeyEscape     Key = "escape"
	KeyEnter      Key = "enter"
	KeyTab        Key = "tab"
	KeyBackspace  Key = "backspace"
	KeySpace      Key = "space"
	KeyUp         Key = "up"
	KeyDown       Key = "down"
	KeyLeft       Key = "left"
	KeyRight      Key = "right"
	KeyHome       Key = "home"
	KeyEnd        Key = "end"
	KeyPageUp     Key = "page_up"
	KeyPageDown   Key = "page_down"
	KeyKPAdd      Key = "kp_add"
	KeyKPSubtract Key = "kp_subtract"
	KeyCtrlC      Key = "ctrl_c"
	KeyCtrlQ      Key = "ctrl_q"
)

var specialKeys = map[Key]struct{}{
	KeyEscape: {}, KeyEnter: {}, KeyTab: {}, KeyBackspace: {}, KeySpace: {},
	KeyUp: {}, KeyDown: {}, KeyLeft: {}, KeyRight: {},
	KeyHome: {}, KeyEnd: {}, KeyPageUp: {}, KeyPageDown: {},
	KeyKPAdd: {}, KeyKPSubtract: {}, KeyCtrlC: {}, KeyCtrlQ: {},
}

// RuneKey returns the key name of a printable character
func RuneKey(r rune) Key {
	if r == ' ' {
		return KeySpace
	}
	return Key(string(r))
}

// Valid reports whether k is a known special key or a single character
func (k Key) Valid() bool {
	if _, ok := specialKeys[k]; ok {
		return true
	}
	return utf8.RuneCountInString(string(k)) == 1
}

// Rune returns the character of a printable key
func (k Key) Rune() (rune, bool) {
	if k == KeySpace {
		return ' ', true
	}
	if _, special := specialKeys[k]; special {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(string(k))
	if r == utf8.RuneError || size != len(k) {
		return 0, false
	}
	return r, true
}

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
)

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "Left"
	case MouseBtnMiddle:
		return "Middle"
	case MouseBtnRight:
		return "Right"
	default:
		return "None"
	}
}
