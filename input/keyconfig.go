package input

import (
	"fmt"
	"strings"
)

// keyAliases maps names that can't be bare TOML strings, or common spellings, to canonical keys
var keyAliases = map[string]Key{
	"esc":         KeyEscape,
	"return":      KeyEnter,
	"pgup":        KeyPageUp,
	"pageup":      KeyPageUp,
	"pgdn":        KeyPageDown,
	"pagedown":    KeyPageDown,
	"numpadplus":  KeyKPAdd,
	"numpadminus": KeyKPSubtract,
	"plus":        "+",
	"minus":       "-",
	"backslash":   "\\",
}

// ParseBindings resolves action name → key name lists into a sparse override KeyMap
// The single key "none" unbinds the action
func ParseBindings(raw map[string][]string) (KeyMap, error) {
	km := make(KeyMap, len(raw))

	for actionName, keyNames := range raw {
		a, ok := ActionByName(strings.ToLower(strings.TrimSpace(actionName)))
		if !ok {
			return nil, fmt.Errorf("unknown action: %q (bindable: %s)", actionName, strings.Join(bindableNames(), ", "))
		}
		if !a.Bindable() {
			return nil, fmt.Errorf("action %q cannot be bound to a key", actionName)
		}

		keys := make([]Key, 0, len(keyNames))
		for _, name := range keyNames {
			if strings.EqualFold(name, "none") {
				keys = keys[:0]
				break
			}
			k, err := resolveKey(name)
			if err != nil {
				return nil, fmt.Errorf("action %q: %w", actionName, err)
			}
			keys = append(keys, k)
		}
		km[a] = keys
	}

	return km, nil
}

// resolveKey converts a config key name to a Key
// Multi-character names are case-insensitive, single characters are kept as written
func resolveKey(name string) (Key, error) {
	if len([]rune(name)) == 1 {
		return RuneKey([]rune(name)[0]), nil
	}
	lower := strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyAliases[lower]; ok {
		return k, nil
	}
	if k := Key(lower); k.Valid() {
		return k, nil
	}
	return "", fmt.Errorf("invalid key name: %q", name)
}

func bindableNames() []string {
	var names []string
	for _, name := range ActionNames() {
		if a, _ := ActionByName(name); a.Bindable() {
			names = append(names, name)
		}
	}
	return names
}
