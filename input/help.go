package input

import "strings"

// helpEntries lists the controls shown in help text, in display order
// Actions sharing an entry are shown as key/key
var helpEntries = []struct {
	actions []Action
	label   string
}{
	{[]Action{ActionIncreaseDetail, ActionDecreaseDetail}, "detail"},
	{[]Action{ActionRegenerate}, "redraw"},
	{[]Action{ActionZoomIn, ActionZoomOut}, "zoom"},
	{[]Action{ActionCyclePalette}, "palette"},
	{[]Action{ActionResetView}, "reset"},
	{[]Action{ActionSnapshot}, "snapshot"},
	{[]Action{ActionToggleAudio}, "audio"},
	{[]Action{ActionQuit}, "quit"},
}

// HelpLine describes the controls of km, one entry per control with its first bound keys
// Unbound controls are left out; mouse panning is always listed
func HelpLine(km KeyMap) string {
	parts := make([]string, 0, len(helpEntries)+1)
	for _, e := range helpEntries {
		var keys []string
		for _, a := range e.actions {
			if k, ok := km.Lookup(a); ok {
				keys = append(keys, string(k))
			}
		}
		if len(keys) == 0 {
			continue
		}
		parts = append(parts, strings.Join(keys, "/")+" "+e.label)
	}
	parts = append(parts, "click pan")
	return strings.Join(parts, "  ")
}
