package fractal

import "testing"

func TestColorizeInSetOrigin(t *testing.T) {
	for _, threshold := range []float64{4, 32, 1000} {
		for _, detail := range []uint32{1, 2, 255, 4096} {
			p := DefaultParams()
			p.Threshold = threshold
			if got := Colorize(Point{}, detail, p); got != InSet {
				t.Errorf("Colorize(0, detail=%d, threshold=%v) = %#06x, want InSet", detail, threshold, got)
			}
		}
	}
}

func TestColorizeKnownEscapee(t *testing.T) {
	p := DefaultParams()

	n, escaped := Escape(Point{Re: 5}, 10, p.Threshold)
	if !escaped || n != 2 {
		t.Fatalf("Escape(5) = (%d, %v), want (2, true)", n, escaped)
	}

	want := Classic(2, 16)
	if want != RGB(32, 2, 8) {
		t.Fatalf("Classic(2, 16) = %#06x, want %#06x", want, RGB(32, 2, 8))
	}
	if got := Colorize(Point{Re: 5}, 10, p); got != want {
		t.Errorf("Colorize(5) = %#06x, want %#06x", got, want)
	}
}

func TestEscapeFirstIterationBelowDivergenceBound(t *testing.T) {
	n, escaped := Escape(Point{Re: 2}, 10, 3.9)
	if !escaped || n != 1 {
		t.Errorf("Escape(2, threshold 3.9) = (%d, %v), want (1, true)", n, escaped)
	}

	// At threshold 4 the first iterate sits exactly on the bound and does not count as escaped
	n, escaped = Escape(Point{Re: 2}, 10, 4)
	if !escaped || n != 2 {
		t.Errorf("Escape(2, threshold 4) = (%d, %v), want (2, true)", n, escaped)
	}
}

func TestEscapeZeroDetail(t *testing.T) {
	if _, escaped := Escape(Point{Re: 100}, 0, 4); escaped {
		t.Error("Escape with detail 0 reported an escape")
	}
	if got := Colorize(Point{Re: 100}, 0, DefaultParams()); got != InSet {
		t.Errorf("Colorize with detail 0 = %#06x, want InSet", got)
	}
}

func TestColorizeDeterministic(t *testing.T) {
	points := []Point{
		{Re: -0.75, Im: 0.1},
		{Re: 0.3, Im: 0.5},
		{Re: -1.25, Im: 0},
		{Re: 0.2501, Im: 0},
		{Re: -0.7436, Im: 0.1318},
	}

	for _, name := range PaletteNames() {
		palette, err := PaletteByName(name)
		if err != nil {
			t.Fatalf("PaletteByName(%q): %v", name, err)
		}
		p := DefaultParams()
		p.Palette = palette
		for _, pt := range points {
			a := Colorize(pt, 512, p)
			b := Colorize(pt, 512, p)
			if a != b {
				t.Errorf("%s: Colorize(%v) not deterministic: %#06x vs %#06x", name, pt, a, b)
			}
		}
	}
}

func TestColorizeNilPaletteFallsBackToClassic(t *testing.T) {
	p := Params{Threshold: 32, Scale: 16}
	if got := Colorize(Point{Re: 5}, 10, p); got != Classic(2, 16) {
		t.Errorf("Colorize with nil palette = %#06x, want %#06x", got, Classic(2, 16))
	}
}
