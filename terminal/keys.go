package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mandelbrot/input"
)

// specialKeys maps tcell keys to canonical key names
var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPageUp,
	tcell.KeyPgDn:       input.KeyPageDown,
	tcell.KeyCtrlC:      input.KeyCtrlC,
	tcell.KeyCtrlQ:      input.KeyCtrlQ,
}

// translateKey converts a tcell key event to a canonical key name
// Numpad keys arrive as their printable characters
func translateKey(ev *tcell.EventKey) (input.Key, bool) {
	if ev.Key() == tcell.KeyRune {
		return input.RuneKey(ev.Rune()), true
	}
	k, ok := specialKeys[ev.Key()]
	return k, ok
}
