package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/mandelbrot/input"
)

// chord is a physical key with an optional Control modifier
type chord struct {
	key  ebiten.Key
	ctrl bool
}

var namedKeys = map[input.Key][]chord{
	input.KeyEscape:     {{key: ebiten.KeyEscape}},
	input.KeyEnter:      {{key: ebiten.KeyEnter}, {key: ebiten.KeyNumpadEnter}},
	input.KeyTab:        {{key: ebiten.KeyTab}},
	input.KeyBackspace:  {{key: ebiten.KeyBackspace}},
	input.KeySpace:      {{key: ebiten.KeySpace}},
	input.KeyUp:         {{key: ebiten.KeyArrowUp}},
	input.KeyDown:       {{key: ebiten.KeyArrowDown}},
	input.KeyLeft:       {{key: ebiten.KeyArrowLeft}},
	input.KeyRight:      {{key: ebiten.KeyArrowRight}},
	input.KeyHome:       {{key: ebiten.KeyHome}},
	input.KeyEnd:        {{key: ebiten.KeyEnd}},
	input.KeyPageUp:     {{key: ebiten.KeyPageUp}},
	input.KeyPageDown:   {{key: ebiten.KeyPageDown}},
	input.KeyKPAdd:      {{key: ebiten.KeyNumpadAdd}},
	input.KeyKPSubtract: {{key: ebiten.KeyNumpadSubtract}},
	input.KeyCtrlC:      {{key: ebiten.KeyC, ctrl: true}},
	input.KeyCtrlQ:      {{key: ebiten.KeyQ, ctrl: true}},
}

// punctuation maps printable characters to the US-layout key that produces them
var punctuation = map[rune]ebiten.Key{
	'+':  ebiten.KeyEqual,
	'=':  ebiten.KeyEqual,
	'-':  ebiten.KeyMinus,
	'_':  ebiten.KeyMinus,
	',':  ebiten.KeyComma,
	'.':  ebiten.KeyPeriod,
	'/':  ebiten.KeySlash,
	';':  ebiten.KeySemicolon,
	'\'': ebiten.KeyQuote,
	'[':  ebiten.KeyBracketLeft,
	']':  ebiten.KeyBracketRight,
	'\\': ebiten.KeyBackslash,
	'`':  ebiten.KeyBackquote,
}

// chords returns the physical keys that produce k
// Letters ignore case, digits also match the numpad
func chords(k input.Key) []chord {
	if c, ok := namedKeys[k]; ok {
		return c
	}
	r, ok := k.Rune()
	if !ok {
		return nil
	}
	switch {
	case r >= 'a' && r <= 'z':
		return []chord{{key: ebiten.KeyA + ebiten.Key(r-'a')}}
	case r >= 'A' && r <= 'Z':
		return []chord{{key: ebiten.KeyA + ebiten.Key(r-'A')}}
	case r >= '0' && r <= '9':
		return []chord{
			{key: ebiten.KeyDigit0 + ebiten.Key(r-'0')},
			{key: ebiten.KeyNumpad0 + ebiten.Key(r-'0')},
		}
	}
	if key, ok := punctuation[r]; ok {
		return []chord{{key: key}}
	}
	return nil
}
