package input

// Source is the input half of a display host, polled once per tick
type Source interface {
	// IsKeyDown reports whether key is currently held
	IsKeyDown(k Key) bool
	// IsKeyPressed reports a press edge this tick, without key repeat
	IsKeyPressed(k Key) bool
	// MousePos returns the pointer position in surface pixels, ok is false when the pointer is outside
	MousePos() (x, y float32, ok bool)
	// MouseDown reports whether button is held
	MouseDown(b MouseButton) bool
}

// Collect derives the tick's event set from the host state
// Quit is level-triggered (key held), everything else edge-triggered
// Pan is recorded only while the primary button is held over the surface
func Collect(src Source, km KeyMap) EventSet {
	var ev EventSet

	for a, keys := range km {
		if !a.Bindable() {
			continue
		}
		for _, k := range keys {
			var fired bool
			if a == ActionQuit {
				fired = src.IsKeyDown(k)
			} else {
				fired = src.IsKeyPressed(k)
			}
			if fired {
				ev.Add(a)
				break
			}
		}
	}

	if x, y, ok := src.MousePos(); ok && src.MouseDown(MouseBtnLeft) {
		ev.SetPan(x, y)
	}

	return ev
}
