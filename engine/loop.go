package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/mandelbrot/constant"
	"github.com/lixenwraith/mandelbrot/fractal"
	"github.com/lixenwraith/mandelbrot/input"
	"github.com/lixenwraith/mandelbrot/render"
	"github.com/lixenwraith/mandelbrot/stats"
	"github.com/lixenwraith/mandelbrot/view"
)

// Sound is the feedback the loop emits
type Sound interface {
	PlayRender()
	PlayBlocked()
	PlaySnapshot()
	Toggle() bool
	Enabled() bool
}

// Options configures a Loop
type Options struct {
	Keys        input.KeyMap
	Sound       Sound
	Clock       Clock
	Stats       *stats.Registry
	SnapshotDir string
}

// Loop runs one explorer tick: collect input, apply it to the view, present on change
// It owns the pixel buffer and is driven from a single goroutine
type Loop struct {
	host   Host
	ctrl   *view.Controller
	keys   input.KeyMap
	sound  Sound
	clock  Clock
	stats  *stats.Registry
	status Status

	snapshotDir string

	buf    []fractal.Color
	width  int
	height int
}

// NewLoop binds a controller to a host
func NewLoop(host Host, ctrl *view.Controller, opts Options) *Loop {
	if opts.Keys == nil {
		opts.Keys = input.DefaultKeyMap()
	}
	if opts.Clock == nil {
		opts.Clock = NewTimeProvider()
	}
	if opts.Sound == nil {
		opts.Sound = silent{}
	}
	if opts.Stats == nil {
		opts.Stats = stats.NewRegistry()
	}
	if opts.SnapshotDir == "" {
		opts.SnapshotDir = constant.DefaultSnapshotDir
	}
	return &Loop{
		host:        host,
		ctrl:        ctrl,
		keys:        opts.Keys,
		sound:       opts.Sound,
		clock:       opts.Clock,
		stats:       opts.Stats,
		snapshotDir: opts.SnapshotDir,
	}
}

// Buffer returns the current pixel buffer and its dimensions
func (l *Loop) Buffer() ([]fractal.Color, int, int) {
	return l.buf, l.width, l.height
}

// Stats returns the run metrics
func (l *Loop) Stats() *stats.Registry {
	return l.stats
}

// Tick processes one frame
// Returns ErrClosed on a normal exit and a wrapped error if presentation fails
func (l *Loop) Tick() error {
	if !l.host.IsOpen() {
		return ErrClosed
	}

	l.stats.Counter(stats.Ticks).Add(1)
	ev := input.Collect(l.host, l.keys)
	if ev.Has(input.ActionQuit) {
		return ErrClosed
	}

	now := l.clock.Now()
	dirty := l.status.Expire(now)

	resized := l.resize()
	if !ev.Empty() {
		log.Printf("tick events %v", ev)
	}

	start := time.Now()
	out := l.ctrl.Apply(ev, l.buf, l.width, l.height)
	if resized && !out.Regenerated {
		l.ctrl.Regenerate(l.buf, l.width, l.height)
		out.Regenerated = true
	}

	if out.Regenerated {
		elapsed := time.Since(start)
		ms := float64(elapsed.Microseconds()) / 1000
		l.stats.Counter(stats.Regenerations).Add(1)
		l.stats.Counter(stats.PixelsComputed).Add(int64(l.width * l.height))
		l.stats.Gauge(stats.LastRegenMs).Set(ms)
		l.stats.Gauge(stats.PeakRegenMs).Max(ms)
		log.Printf("regenerated %dx%d %s in %v", l.width, l.height, l.ctrl.State(), elapsed)
		l.sound.PlayRender()
		dirty = true
	}

	if len(out.Blocked) > 0 {
		log.Printf("blocked %v at %s", out.Blocked, l.ctrl.State())
		l.stats.Counter(stats.Blocked).Add(int64(len(out.Blocked)))
		l.status.Post(now, blockedMessage(out.Blocked), true)
		l.sound.PlayBlocked()
		dirty = true
	}

	if ev.Has(input.ActionToggleAudio) {
		on := l.sound.Toggle()
		log.Printf("audio toggled on=%v", on)
		dirty = true
	}

	if ev.Has(input.ActionSnapshot) {
		l.snapshot(now)
		dirty = true
	}

	if !dirty {
		return nil
	}
	return l.present()
}

// resize reallocates the buffer when the host surface changed size
func (l *Loop) resize() bool {
	w, h := l.host.Size()
	if w == l.width && h == l.height && l.buf != nil {
		return false
	}
	l.width, l.height = max(w, 0), max(h, 0)
	size := l.width * l.height
	if cap(l.buf) < size {
		l.buf = make([]fractal.Color, size)
	} else {
		l.buf = l.buf[:size]
	}
	log.Printf("surface %dx%d", l.width, l.height)
	return true
}

func (l *Loop) snapshot(now time.Time) {
	path, err := render.SavePNG(l.snapshotDir, constant.SnapshotPrefix, now, l.buf, l.width, l.height)
	if err != nil {
		log.Printf("snapshot failed: %v", err)
		l.status.Post(now, "snapshot failed", true)
		return
	}
	log.Printf("snapshot written to %s", path)
	l.stats.Counter(stats.Snapshots).Add(1)
	l.status.Post(now, "saved "+path, false)
	l.sound.PlaySnapshot()
}

func (l *Loop) present() error {
	if sh, ok := l.host.(StatusHost); ok {
		line, alert := l.status.Line(l.ctrl.State(), l.ctrl.PaletteName(), l.sound.Enabled())
		line += fmt.Sprintf("  render %.1fms", l.stats.Gauge(stats.LastRegenMs).Get())
		sh.SetStatus(line, alert)
	}
	if err := l.host.Present(l.buf, l.width, l.height); err != nil {
		return fmt.Errorf("present %dx%d: %w", l.width, l.height, err)
	}
	return nil
}

func blockedMessage(blocked []input.Action) string {
	switch blocked[0] {
	case input.ActionDecreaseDetail:
		return "detail at minimum"
	case input.ActionIncreaseDetail:
		return "detail at maximum"
	case input.ActionZoomOut:
		return "zoom at minimum"
	case input.ActionZoomIn:
		return "zoom at maximum"
	default:
		return blocked[0].String() + " blocked"
	}
}

type silent struct{}

func (silent) PlayRender()   {}
func (silent) PlayBlocked()  {}
func (silent) PlaySnapshot() {}
func (silent) Toggle() bool  { return false }
func (silent) Enabled() bool { return false }
