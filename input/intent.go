package input

import "strings"

// Action discriminates view-state intents reported once per tick
type Action uint8

const (
	ActionNone Action = iota

	// System
	ActionQuit        // Escape held
	ActionToggleAudio // m

	// Detail
	ActionIncreaseDetail // NumPad+, +
	ActionDecreaseDetail // NumPad-, -
	ActionRegenerate     // Enter

	// Zoom
	ActionZoomIn  // PgUp
	ActionZoomOut // PgDn

	// Pan
	ActionPan      // Primary button held, carries pointer position
	ActionPanLeft  // Left arrow
	ActionPanRight // Right arrow
	ActionPanUp    // Up arrow
	ActionPanDown  // Down arrow

	// View
	ActionCyclePalette // p
	ActionResetView    // Home
	ActionSnapshot     // s

	actionCount
)

// EventSet is the set of actions fired during one tick
// Each action is present at most once per tick regardless of how many raw events produced it
type EventSet struct {
	bits   uint32
	panX   float32
	panY   float32
	hasPan bool
}

// Add marks action as fired this tick
func (e *EventSet) Add(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	e.bits |= 1 << a
}

// Has reports whether action fired this tick
func (e EventSet) Has(a Action) bool {
	return e.bits&(1<<a) != 0
}

// Empty reports whether no action fired
func (e EventSet) Empty() bool {
	return e.bits == 0
}

// SetPan records a pan click at screen position (x, y), in surface pixels
func (e *EventSet) SetPan(x, y float32) {
	e.Add(ActionPan)
	e.panX, e.panY = x, y
	e.hasPan = true
}

// Pan returns the pan click position if one was recorded
func (e EventSet) Pan() (x, y float32, ok bool) {
	return e.panX, e.panY, e.hasPan
}

// Actions returns fired actions in declaration order
func (e EventSet) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if e.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// String renders the set for logs
func (e EventSet) String() string {
	actions := e.Actions()
	if len(actions) == 0 {
		return "{}"
	}
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	return "{" + strings.Join(names, " ") + "}"
}
