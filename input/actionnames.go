package input

import "sort"

// actionRegistry maps canonical action names to actions
// Used by the keymap loader to resolve TOML action strings to bindings
var actionRegistry = map[string]Action{
	"quit":            ActionQuit,
	"toggle_audio":    ActionToggleAudio,
	"increase_detail": ActionIncreaseDetail,
	"decrease_detail": ActionDecreaseDetail,
	"regenerate":      ActionRegenerate,
	"zoom_in":         ActionZoomIn,
	"zoom_out":        ActionZoomOut,
	"pan":             ActionPan,
	"pan_left":        ActionPanLeft,
	"pan_right":       ActionPanRight,
	"pan_up":          ActionPanUp,
	"pan_down":        ActionPanDown,
	"cycle_palette":   ActionCyclePalette,
	"reset_view":      ActionResetView,
	"snapshot":        ActionSnapshot,
}

var actionNames = func() map[Action]string {
	m := make(map[Action]string, len(actionRegistry))
	for name, a := range actionRegistry {
		m[a] = name
	}
	return m
}()

// String returns the canonical action name
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// Bindable reports whether the action can be bound to a key
// Pan is driven by the pointer and carries a position
func (a Action) Bindable() bool {
	return a != ActionNone && a != ActionPan && a < actionCount
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
