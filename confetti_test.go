package confetti

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// --- Range ---

func TestRangeRandom(t *testing.T) {
	r := Range{10, 20}
	for i := 0; i < 100; i++ {
		v := r.Random()
		if v < 10 || v > 20 {
			t.Fatalf("Random() = %f, outside [10, 20]", v)
		}
	}

	// Equal min/max.
	r2 := Range{5, 5}
	for i := 0; i < 10; i++ {
		if r2.Random() != 5 {
			t.Fatal("Random() with Min==Max should return Min")
		}
	}
}

func TestRangeSampleInjectedSource(t *testing.T) {
	r := Range{-15, -5}
	assertNear(t, "sample@0", r.sample(func() float64 { return 0 }), -15)
	assertNear(t, "sample@0.5", r.sample(func() float64 { return 0.5 }), -10)
	assertNear(t, "sample@~1", r.sample(func() float64 { return 0.999999 }), -15+0.999999*10)
}

// --- lerp / clamp01 ---

func TestLerp(t *testing.T) {
	assertNear(t, "lerp(0,10,0)", lerp(0, 10, 0), 0)
	assertNear(t, "lerp(0,10,0.5)", lerp(0, 10, 0.5), 5)
	assertNear(t, "lerp(0,10,1)", lerp(0, 10, 1), 10)
}

func TestClamp01(t *testing.T) {
	assertNear(t, "clamp01(-1)", clamp01(-1), 0)
	assertNear(t, "clamp01(0.3)", clamp01(0.3), 0.3)
	assertNear(t, "clamp01(2)", clamp01(2), 1)
}

// --- Color ---

func TestColorWithAlphaPremultiplies(t *testing.T) {
	c := Color{1, 0.5, 0, 1}
	got := c.withAlpha(0.5)
	if got.A != 128 {
		t.Errorf("A = %d, want 128", got.A)
	}
	if got.R != 128 {
		t.Errorf("R = %d, want 128 (premultiplied)", got.R)
	}
	if got.G != 64 {
		t.Errorf("G = %d, want 64 (premultiplied)", got.G)
	}
	if got.B != 0 {
		t.Errorf("B = %d, want 0", got.B)
	}
}

func TestColorWithAlphaClamped(t *testing.T) {
	c := Color{1, 1, 1, 1}
	got := c.withAlpha(-0.5)
	if got.A != 0 || got.R != 0 {
		t.Errorf("negative alpha should clamp to transparent, got %+v", got)
	}
	got = c.withAlpha(2)
	if got.A != 255 {
		t.Errorf("alpha above 1 should clamp to opaque, got %+v", got)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ffffff", Color{1, 1, 1, 1}, false},
		{"#000000", Color{0, 0, 0, 1}, false},
		{"ffd700", Color{1, 215.0 / 255, 0, 1}, false},
		{"#f0a", Color{1, 0, 170.0 / 255, 1}, false},
		{"#FFD700", Color{1, 215.0 / 255, 0, 1}, false},
		{"#12345", Color{}, true},
		{"#gggggg", Color{}, true},
		{"", Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHexColor(%q) = %+v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHexColor(%q) error: %v", tt.in, err)
			}
			assertNear(t, "R", got.R, tt.want.R)
			assertNear(t, "G", got.G, tt.want.G)
			assertNear(t, "B", got.B, tt.want.B)
			assertNear(t, "A", got.A, tt.want.A)
		})
	}
}

// --- Shape ---

func TestShapeRoundTrip(t *testing.T) {
	for _, s := range []Shape{ShapeDisk, ShapeSquare} {
		got, err := ParseShape(s.String())
		if err != nil {
			t.Fatalf("ParseShape(%q) error: %v", s.String(), err)
		}
		if got != s {
			t.Errorf("ParseShape(%q) = %v, want %v", s.String(), got, s)
		}
	}
}

func TestParseShapeAliases(t *testing.T) {
	got, err := ParseShape("circle")
	if err != nil || got != ShapeDisk {
		t.Errorf(`ParseShape("circle") = %v, %v, want ShapeDisk`, got, err)
	}
	if _, err := ParseShape("triangle"); err == nil {
		t.Error(`ParseShape("triangle") should fail`)
	}
}
