package input

// KeyMap binds actions to the keys that trigger them
type KeyMap map[Action][]Key

// DefaultKeyMap returns the default bindings
// Terminals cannot tell numpad keys from their main-row twins, so both are bound
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ActionQuit:           {KeyEscape, KeyCtrlC, KeyCtrlQ},
		ActionToggleAudio:    {"m"},
		ActionIncreaseDetail: {KeyKPAdd, "+", "="},
		ActionDecreaseDetail: {KeyKPSubtract, "-"},
		ActionRegenerate:     {KeyEnter},
		ActionZoomIn:         {KeyPageUp, "i"},
		ActionZoomOut:        {KeyPageDown, "o"},
		ActionPanLeft:        {KeyLeft},
		ActionPanRight:       {KeyRight},
		ActionPanUp:          {KeyUp},
		ActionPanDown:        {KeyDown},
		ActionCyclePalette:   {"p"},
		ActionResetView:      {KeyHome},
		ActionSnapshot:       {"s"},
	}
}

// Clone returns a deep copy
func (km KeyMap) Clone() KeyMap {
	out := make(KeyMap, len(km))
	for a, keys := range km {
		out[a] = append([]Key(nil), keys...)
	}
	return out
}

// Merge returns a copy of km with each action in override replacing its bindings
// An action overridden with no keys is unbound
func (km KeyMap) Merge(override KeyMap) KeyMap {
	out := km.Clone()
	for a, keys := range override {
		if len(keys) == 0 {
			delete(out, a)
			continue
		}
		out[a] = append([]Key(nil), keys...)
	}
	return out
}

// Lookup returns the first key bound to action, for help text
func (km KeyMap) Lookup(a Action) (Key, bool) {
	keys := km[a]
	if len(keys) == 0 {
		return "", false
	}
	return keys[0], true
}
