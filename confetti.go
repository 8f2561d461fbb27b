package confetti

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is plain white at full opacity.
var ColorWhite = Color{1, 1, 1, 1}

// rgba converts to the standard library's premultiplied color.RGBA.
func (c Color) rgba() color.RGBA {
	return c.withAlpha(1)
}

// withAlpha converts to premultiplied color.RGBA with the color's own alpha
// scaled by a.
func (c Color) withAlpha(a float64) color.RGBA {
	a = clamp01(a * c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// ParseHexColor parses "#rgb" or "#rrggbb" into a Color with A = 1.
func ParseHexColor(s string) (Color, error) {
	hex := s
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	digit := func(b byte) (int, bool) {
		switch {
		case b >= '0' && b <= '9':
			return int(b - '0'), true
		case b >= 'a' && b <= 'f':
			return int(b-'a') + 10, true
		case b >= 'A' && b <= 'F':
			return int(b-'A') + 10, true
		}
		return 0, false
	}
	channel := func(hi, lo byte) (float64, bool) {
		h, ok1 := digit(hi)
		l, ok2 := digit(lo)
		return float64(h*16+l) / 255, ok1 && ok2
	}
	switch len(hex) {
	case 3:
		r, ok1 := channel(hex[0], hex[0])
		g, ok2 := channel(hex[1], hex[1])
		b, ok3 := channel(hex[2], hex[2])
		if ok1 && ok2 && ok3 {
			return Color{r, g, b, 1}, nil
		}
	case 6:
		r, ok1 := channel(hex[0], hex[1])
		g, ok2 := channel(hex[2], hex[3])
		b, ok3 := channel(hex[4], hex[5])
		if ok1 && ok2 && ok3 {
			return Color{r, g, b, 1}, nil
		}
	}
	return Color{}, fmt.Errorf("parse hex color %q: invalid format", s)
}

// Vec2 is a 2D vector used for positions and offsets throughout the API.
// The coordinate system has its origin at the top-left, with Y increasing
// downward.
type Vec2 struct {
	X, Y float64
}

// Range is a general-purpose min/max range sampled uniformly.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	return r.sample(rand.Float64)
}

// sample returns a uniform value in [Min, Max] drawn from rnd, which must
// return values in [0, 1).
func (r Range) sample(rnd func() float64) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rnd()*(r.Max-r.Min)
}

// Shape selects the geometry a particle is rendered with.
type Shape uint8

const (
	ShapeDisk   Shape = iota // filled disk of diameter Size
	ShapeSquare              // filled square of side Size, rotating
)

// String returns the YAML/config name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeDisk:
		return "disk"
	case ShapeSquare:
		return "square"
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// ParseShape parses a shape name as used in config files.
func ParseShape(name string) (Shape, error) {
	switch name {
	case "disk", "circle":
		return ShapeDisk, nil
	case "square":
		return ShapeSquare, nil
	}
	return 0, fmt.Errorf("parse shape %q: unknown shape", name)
}

// DefaultPalette is the stock celebration palette used by DefaultConfig.
var DefaultPalette = []Color{
	{1.00, 0.84, 0.00, 1}, // gold
	{1.00, 0.41, 0.71, 1}, // pink
	{0.35, 0.70, 1.00, 1}, // sky blue
	{0.45, 0.87, 0.35, 1}, // green
	{0.65, 0.45, 0.95, 1}, // violet
	{1.00, 0.55, 0.15, 1}, // orange
}

// WhitePixel is a 1x1 white image used to render solid color squares.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.rgba())
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
