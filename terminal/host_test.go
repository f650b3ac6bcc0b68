package terminal

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mandelbrot/fractal"
	"github.com/lixenwraith/mandelbrot/input"
	"github.com/lixenwraith/mandelbrot/render"
)

// MockScreen is a minimal mock for tcell.Screen used in tests
type MockScreen struct {
	tcell.Screen
	width, height int
	content       map[[2]int]mockCell
	shows, syncs  int
	finis         int
}

type mockCell struct {
	r     rune
	style tcell.Style
}

func newMockScreen(w, h int) *MockScreen {
	return &MockScreen{width: w, height: h, content: make(map[[2]int]mockCell)}
}

func (m *MockScreen) Size() (int, int) { return m.width, m.height }
func (m *MockScreen) Init() error      { return nil }
func (m *MockScreen) Fini()            { m.finis++ }
func (m *MockScreen) Clear()           {}
func (m *MockScreen) Show()            { m.shows++ }
func (m *MockScreen) Sync()            { m.syncs++ }
func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.content[[2]int{x, y}] = mockCell{r: mainc, style: style}
}

func keyEvent(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestHostSize(t *testing.T) {
	tests := []struct {
		cols, rows int
		wantW      int
		wantH      int
	}{
		{80, 24, 80, 46},
		{10, 1, 10, 0},
		{0, 0, 0, 0},
	}
	for _, tt := range tests {
		h := New(newMockScreen(tt.cols, tt.rows), 60)
		if w, ph := h.Size(); w != tt.wantW || ph != tt.wantH {
			t.Errorf("Size() for %dx%d cells = (%d, %d), want (%d, %d)", tt.cols, tt.rows, w, ph, tt.wantW, tt.wantH)
		}
	}
}

func TestHostKeyPressesLastOneTick(t *testing.T) {
	h := New(newMockScreen(20, 10), 60)
	h.handle(keyEvent(tcell.KeyPgUp, 0))
	h.handle(keyEvent(tcell.KeyRune, '+'))
	h.handle(keyEvent(tcell.KeyRune, '+'))

	var seen input.EventSet
	err := h.step(func() error {
		seen = input.Collect(h, input.DefaultKeyMap())
		return nil
	})
	if err != nil {
		t.Fatalf("step() error = %v", err)
	}
	if !seen.Has(input.ActionZoomIn) || !seen.Has(input.ActionIncreaseDetail) {
		t.Errorf("tick events = %v, want zoom_in and increase_detail", seen)
	}
	if h.IsKeyPressed(input.KeyPageUp) {
		t.Error("press survived past its tick")
	}
}

func TestHostQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		keyEvent(tcell.KeyEscape, 0),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		h := New(newMockScreen(20, 10), 60)
		h.handle(ev)
		if got := input.Collect(h, input.DefaultKeyMap()); !got.Has(input.ActionQuit) {
			t.Errorf("key %v did not quit, events %v", ev.Key(), got)
		}
	}
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		ev     *tcell.EventKey
		want   input.Key
		wantOK bool
	}{
		{keyEvent(tcell.KeyRune, 's'), "s", true},
		{keyEvent(tcell.KeyRune, ' '), input.KeySpace, true},
		{keyEvent(tcell.KeyEnter, 0), input.KeyEnter, true},
		{keyEvent(tcell.KeyPgDn, 0), input.KeyPageDown, true},
		{keyEvent(tcell.KeyHome, 0), input.KeyHome, true},
		{keyEvent(tcell.KeyF5, 0), "", false},
	}
	for _, tt := range tests {
		got, ok := translateKey(tt.ev)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("translateKey(%v) = (%q, %v), want (%q, %v)", tt.ev.Key(), got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestHostMouse(t *testing.T) {
	h := New(newMockScreen(20, 10), 60)

	if _, _, ok := h.MousePos(); ok {
		t.Error("MousePos() ok before any mouse event")
	}

	h.handle(tcell.NewEventMouse(7, 3, tcell.Button1, tcell.ModNone))
	x, y, ok := h.MousePos()
	if !ok || x != 7 || y != 6 {
		t.Errorf("MousePos() = (%v, %v, %v), want (7, 6, true)", x, y, ok)
	}
	if !h.MouseDown(input.MouseBtnLeft) || h.MouseDown(input.MouseBtnRight) {
		t.Error("MouseDown() does not reflect Button1 held")
	}

	// Status bar row is row 9
	h.handle(tcell.NewEventMouse(7, 9, tcell.Button1, tcell.ModNone))
	if _, _, ok := h.MousePos(); ok {
		t.Error("MousePos() ok over the status bar")
	}

	h.handle(tcell.NewEventMouse(7, 3, tcell.ButtonNone, tcell.ModNone))
	if h.MouseDown(input.MouseBtnLeft) {
		t.Error("MouseDown() after release")
	}
}

func TestHostResize(t *testing.T) {
	screen := newMockScreen(20, 10)
	h := New(screen, 60)
	h.handle(tcell.NewEventResize(40, 13))

	if w, ph := h.Size(); w != 40 || ph != 24 {
		t.Errorf("Size() after resize = (%d, %d), want (40, 24)", w, ph)
	}
	if screen.syncs != 1 {
		t.Errorf("Sync() calls = %d, want 1", screen.syncs)
	}
}

func TestHostPresent(t *testing.T) {
	screen := newMockScreen(3, 2)
	h := New(screen, 60)

	// 3x2 pixels fill the single raster row, row 1 is the status bar
	buf := []fractal.Color{
		0xFF0000, 0x00FF00, 0x0000FF,
		0x111111, 0x222222, fractal.InSet,
	}
	h.SetStatus("hey", true)
	if err := h.Present(buf, 3, 2); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	if screen.shows != 1 {
		t.Errorf("Show() calls = %d, want 1", screen.shows)
	}

	top := screen.content[[2]int{0, 0}]
	wantTop := tcell.StyleDefault.
		Foreground(tcell.NewHexColor(0xFF0000)).
		Background(tcell.NewHexColor(0x111111))
	if top.r != render.UpperHalf || top.style != wantTop {
		t.Errorf("cell (0,0) = %q %v, want upper half red over gray", top.r, top.style)
	}

	status := screen.content[[2]int{1, 1}]
	wantStatus := tcell.StyleDefault.
		Foreground(tcell.NewHexColor(int32(render.AlertFg))).
		Background(tcell.NewHexColor(int32(render.StatusBg)))
	if status.r != 'e' || status.style != wantStatus {
		t.Errorf("status cell = %q %v, want 'e' in alert colors", status.r, status.style)
	}
}

func TestHostPresentShortBuffer(t *testing.T) {
	h := New(newMockScreen(3, 2), 60)
	if err := h.Present(make([]fractal.Color, 2), 3, 2); err == nil {
		t.Error("Present() with short buffer error = nil")
	}
}

func TestHostErrorEventCloses(t *testing.T) {
	h := New(newMockScreen(3, 2), 60)
	h.handle(tcell.NewEventError(errors.New("tty gone")))
	if h.IsOpen() {
		t.Error("IsOpen() after error event = true")
	}
}

func TestHostClose(t *testing.T) {
	screen := newMockScreen(3, 2)
	h := New(screen, 60)
	h.Close()
	h.Close()
	if screen.finis != 1 {
		t.Errorf("Fini() calls = %d, want 1", screen.finis)
	}
	if h.IsOpen() {
		t.Error("IsOpen() after Close = true")
	}
}
