package terminal

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mandelbrot/constant"
	"github.com/lixenwraith/mandelbrot/fractal"
	"github.com/lixenwraith/mandelbrot/input"
	"github.com/lixenwraith/mandelbrot/render"
)

// Host is a tcell-backed display host
// Event handling, Present and the tick callback all run on the Run goroutine;
// only the event reader runs beside it and it touches nothing but the channel
type Host struct {
	screen   tcell.Screen
	events   chan tcell.Event
	quit     chan struct{}
	interval time.Duration

	open       bool
	cols, rows int
	pressed    map[input.Key]bool

	mouseCol, mouseRow int
	mouseIn            bool
	buttons            tcell.ButtonMask

	cells       *render.CellBuffer
	status      string
	statusAlert bool
}

// Open creates and initializes a tcell screen and wraps it in a Host
func Open(fps int) (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	return New(screen, fps), nil
}

// New wraps an initialized screen
func New(screen tcell.Screen, fps int) *Host {
	cols, rows := screen.Size()
	return &Host{
		screen:   screen,
		events:   make(chan tcell.Event, constant.EventQueueSize),
		quit:     make(chan struct{}),
		interval: constant.TickInterval(fps),
		open:     true,
		cols:     cols,
		rows:     rows,
		pressed:  make(map[input.Key]bool),
		cells:    render.NewCellBuffer(cols, rows),
	}
}

// Close stops the event reader and finalizes the screen
func (h *Host) Close() {
	select {
	case <-h.quit:
		return
	default:
	}
	close(h.quit)
	h.open = false
	h.screen.Fini()
}

// Run reads events in the background and calls tick at the host rate until it fails
func (h *Host) Run(tick func() error) error {
	go h.poll()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	if err := h.step(tick); err != nil {
		return err
	}
	for {
		select {
		case ev := <-h.events:
			h.handle(ev)
		case <-ticker.C:
			h.drain()
			if err := h.step(tick); err != nil {
				return err
			}
		}
	}
}

func (h *Host) poll() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case h.events <- ev:
		case <-h.quit:
			return
		}
	}
}

// drain handles events that queued since the last select
func (h *Host) drain() {
	for {
		select {
		case ev := <-h.events:
			h.handle(ev)
		default:
			return
		}
	}
}

// step runs one tick and then forgets the tick's key presses
func (h *Host) step(tick func() error) error {
	err := tick()
	clear(h.pressed)
	return err
}

// handle folds one tcell event into the per-tick input state
func (h *Host) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if k, ok := translateKey(ev); ok {
			h.pressed[k] = true
		}
	case *tcell.EventMouse:
		h.mouseCol, h.mouseRow = ev.Position()
		h.buttons = ev.Buttons()
		h.mouseIn = true
	case *tcell.EventResize:
		h.cols, h.rows = ev.Size()
		h.screen.Sync()
	case *tcell.EventError:
		log.Printf("terminal error: %v", ev)
		h.open = false
	}
}

// IsOpen reports whether the screen is still alive
func (h *Host) IsOpen() bool { return h.open }

// IsKeyDown reports a press on this tick, terminals report no key releases
func (h *Host) IsKeyDown(k input.Key) bool { return h.pressed[k] }

// IsKeyPressed reports a press on this tick, repeats within one tick collapse
func (h *Host) IsKeyPressed(k input.Key) bool { return h.pressed[k] }

// MousePos returns the pointer in pixel coordinates, not ok over the status bar
func (h *Host) MousePos() (float32, float32, bool) {
	_, ph := h.Size()
	x, y := h.mouseCol, 2*h.mouseRow
	if !h.mouseIn || x < 0 || x >= h.cols || y < 0 || y >= ph {
		return 0, 0, false
	}
	return float32(x), float32(y), true
}

// MouseDown reports whether button is held
func (h *Host) MouseDown(b input.MouseButton) bool {
	switch b {
	case input.MouseBtnLeft:
		return h.buttons&tcell.Button1 != 0
	case input.MouseBtnRight:
		return h.buttons&tcell.Button2 != 0
	case input.MouseBtnMiddle:
		return h.buttons&tcell.Button3 != 0
	default:
		return false
	}
}

// Size returns the drawable area in pixels: one column per cell, two rows per cell above the status bar
func (h *Host) Size() (int, int) {
	return max(h.cols, 0), 2 * max(h.rows-constant.StatusRows, 0)
}

// SetStatus sets the text drawn on the next Present
func (h *Host) SetStatus(text string, alert bool) {
	h.status, h.statusAlert = text, alert
}

// Present composes the raster and status bar into cells and shows them
func (h *Host) Present(buf []fractal.Color, width, height int) error {
	if len(buf) < width*height {
		return fmt.Errorf("buffer holds %d pixels, need %d", len(buf), width*height)
	}

	if cw, ch := h.cells.Size(); cw != h.cols || ch != h.rows {
		h.cells.Resize(h.cols, h.rows)
	} else {
		h.cells.Clear()
	}
	h.cells.ComposePixels(buf, width, height)

	fg := render.StatusFg
	if h.statusAlert {
		fg = render.AlertFg
	}
	h.cells.DrawText(0, h.rows-constant.StatusRows, h.status, fg, render.StatusBg)

	h.cells.ForEach(func(x, y int, c render.Cell) {
		h.screen.SetContent(x, y, c.Rune, nil, cellStyle(c))
	})
	h.screen.Show()
	return nil
}

func cellStyle(c render.Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewHexColor(int32(c.Fg))).
		Background(tcell.NewHexColor(int32(c.Bg)))
}
