package fractal

import "testing"

func TestClassicPalette(t *testing.T) {
	tests := []struct {
		n, scale uint32
		want     Color
	}{
		{1, 16, RGB(16, 1, 16)},
		{2, 16, RGB(32, 2, 8)},
		{16, 16, RGB(255, 16, 1)},
		{100, 16, RGB(255, 100, 0)},
		{4000, 16, RGB(255, 255, 0)},
	}

	for _, tt := range tests {
		if got := Classic(tt.n, tt.scale); got != tt.want {
			t.Errorf("Classic(%d, %d) = %#06x, want %#06x", tt.n, tt.scale, got, tt.want)
		}
	}
}

func TestInversePalette(t *testing.T) {
	tests := []struct {
		n, scale uint32
		want     Color
	}{
		{1, 16, RGB(0, 1, 16)},
		{2, 16, RGB(0, 2, 32)},
		{32, 16, RGB(2, 32, 255)},
		{5, 0, RGB(5, 5, 5)},
	}

	for _, tt := range tests {
		if got := Inverse(tt.n, tt.scale); got != tt.want {
			t.Errorf("Inverse(%d, %d) = %#06x, want %#06x", tt.n, tt.scale, got, tt.want)
		}
	}
}

func TestBlendPeriod(t *testing.T) {
	for n := uint32(0); n < 40; n++ {
		if a, b := Blend(n, 16), Blend(n+32, 16); a != b {
			t.Errorf("Blend(%d) = %#06x, Blend(%d) = %#06x, want equal", n, a, n+32, b)
		}
	}
	if Blend(0, 16) == Blend(16, 16) {
		t.Error("Blend endpoints should differ")
	}
}

func TestSpectrumDistinguishesNeighbors(t *testing.T) {
	for n := uint32(1); n < 15; n++ {
		if Spectrum(n, 16) == Spectrum(n+1, 16) {
			t.Errorf("Spectrum(%d) == Spectrum(%d)", n, n+1)
		}
	}
}

func TestPaletteRegistry(t *testing.T) {
	names := PaletteNames()
	if len(names) != 4 || names[0] != "classic" {
		t.Fatalf("PaletteNames() = %v, want classic first of 4", names)
	}

	if _, err := PaletteByName("julia"); err == nil {
		t.Error("PaletteByName(julia) returned no error")
	}

	seen := map[string]bool{}
	current := names[0]
	for range names {
		seen[current] = true
		current = NextPalette(current)
	}
	if current != names[0] || len(seen) != len(names) {
		t.Errorf("NextPalette cycle visited %v, ended at %q", seen, current)
	}

	if got := NextPalette("unknown"); got != "classic" {
		t.Errorf("NextPalette(unknown) = %q, want classic", got)
	}
}

func TestColorComponents(t *testing.T) {
	c := RGB(0x12, 0x34, 0x56)
	if c != 0x123456 {
		t.Fatalf("RGB = %#06x, want 0x123456", c)
	}
	r, g, b := c.Components()
	if r != 0x12 || g != 0x34 || b != 0x56 {
		t.Errorf("Components() = %x %x %x", r, g, b)
	}
	if got := ClampedRGB(300, 0, 256); got != 0xFF00FF {
		t.Errorf("ClampedRGB = %#06x, want 0xff00ff", got)
	}
}
