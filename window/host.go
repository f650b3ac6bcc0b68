// Package window hosts the explorer in an ebiten window
package window

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/mandelbrot/engine"
	"github.com/lixenwraith/mandelbrot/fractal"
	"github.com/lixenwraith/mandelbrot/input"
	"github.com/lixenwraith/mandelbrot/render"
)

// Title prefixes the window title, the key help and status line follow it
const Title = "Mandelbrot"

// Host is an ebiten.Game that drives explorer ticks from Update
type Host struct {
	width, height int
	fps           int
	tick          func() error
	title         string

	frame  *ebiten.Image
	pixels []byte
}

// New creates a window host of width x height pixels ticking at fps
// The title lists the controls bound in keys
func New(width, height, fps int, keys input.KeyMap) *Host {
	return &Host{
		width:  width,
		height: height,
		fps:    fps,
		title:  Title + "  " + input.HelpLine(keys),
	}
}

// Run opens the window and blocks until it closes or tick fails
func (h *Host) Run(tick func() error) error {
	h.tick = tick

	ebiten.SetWindowSize(h.width, h.height)
	ebiten.SetWindowTitle(h.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(h.fps)

	if err := ebiten.RunGame(h); err != nil {
		return err
	}
	return engine.ErrClosed
}

// Update implements ebiten.Game
func (h *Host) Update() error {
	err := h.tick()
	if errors.Is(err, engine.ErrClosed) {
		return ebiten.Termination
	}
	return err
}

// Draw implements ebiten.Game
func (h *Host) Draw(screen *ebiten.Image) {
	if h.frame != nil {
		screen.DrawImage(h.frame, nil)
	}
}

// Layout implements ebiten.Game, the surface follows the window size
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.width, h.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// IsOpen reports whether the window has not been asked to close
func (h *Host) IsOpen() bool { return !ebiten.IsWindowBeingClosed() }

// IsKeyDown reports whether any key producing k is held
func (h *Host) IsKeyDown(k input.Key) bool {
	for _, c := range chords(k) {
		if ebiten.IsKeyPressed(c.key) && (!c.ctrl || ebiten.IsKeyPressed(ebiten.KeyControl)) {
			return true
		}
	}
	return false
}

// IsKeyPressed reports a press edge on this tick, held keys do not repeat
func (h *Host) IsKeyPressed(k input.Key) bool {
	for _, c := range chords(k) {
		if inpututil.IsKeyJustPressed(c.key) && (!c.ctrl || ebiten.IsKeyPressed(ebiten.KeyControl)) {
			return true
		}
	}
	return false
}

// MousePos returns the cursor in surface pixels, not ok outside the window
func (h *Host) MousePos() (float32, float32, bool) {
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= h.width || y >= h.height {
		return 0, 0, false
	}
	return float32(x), float32(y), true
}

// MouseDown reports whether button is held
func (h *Host) MouseDown(b input.MouseButton) bool {
	switch b {
	case input.MouseBtnLeft:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	case input.MouseBtnMiddle:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	case input.MouseBtnRight:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	default:
		return false
	}
}

// Size returns the current surface in pixels
func (h *Host) Size() (int, int) { return h.width, h.height }

// SetStatus shows the status line in the window title
func (h *Host) SetStatus(text string, alert bool) {
	title := h.title + "  |" + text
	if alert {
		title += " !"
	}
	ebiten.SetWindowTitle(title)
}

// Present uploads buf into the frame image drawn on every Draw
func (h *Host) Present(buf []fractal.Color, width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	if len(buf) < width*height {
		return fmt.Errorf("buffer holds %d pixels, need %d", len(buf), width*height)
	}

	if h.frame == nil || h.frame.Bounds().Dx() != width || h.frame.Bounds().Dy() != height {
		if h.frame != nil {
			h.frame.Deallocate()
		}
		h.frame = ebiten.NewImage(width, height)
		h.pixels = make([]byte, 4*width*height)
	}

	render.FillRGBA(h.pixels, buf)
	h.frame.WritePixels(h.pixels)
	return nil
}
