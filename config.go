package confetti

import (
	"fmt"
	"math"
	"time"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Config controls how bursts are spawned and how particles behave.
type Config struct {
	// Count is the number of particles spawned by a Trigger that does not
	// specify its own count.
	Count int
	// Duration is how long after a Trigger the deferred auto-stop fires.
	Duration time.Duration
	// Gravity is the constant downward acceleration added to vy each frame.
	Gravity float64
	// Resistance is the per-frame drag factor applied to both velocity
	// axes. Must be below 1 for particles to decelerate.
	Resistance float64
	// LifeDecay is the fixed amount subtracted from a particle's life each
	// frame. The default 0.01 gives a ~100-frame lifetime.
	LifeDecay float64
	// Speed is the range of launch speeds. Speeds are negative: the engine's
	// Y axis points down, so a negative speed along an upward-facing angle
	// launches particles up.
	Speed Range
	// Angle is the range of launch angles in radians. The default spans
	// 45° to 135° so bursts fire upward and outward.
	Angle Range
	// Size is the range of particle sizes (disk diameter / square side).
	Size Range
	// RotationSpeed is the range of per-frame rotation deltas in radians.
	// Signed; particles spin either way.
	RotationSpeed Range
	// Colors is the palette particles sample from.
	Colors []Color
	// Shapes is the shape set particles sample from.
	Shapes []Shape
	// MaxParticles is the pool size. Spawns beyond it are silently dropped.
	MaxParticles int
	// FadeEase optionally shapes opacity over a particle's lifetime.
	// nil means linear: opacity tracks remaining life exactly.
	FadeEase ease.TweenFunc
	// ScaleEase optionally shrinks particles over their lifetime.
	// nil means particles keep their spawned size.
	ScaleEase ease.TweenFunc
}

// DefaultConfig returns the stock celebration tuning.
func DefaultConfig() Config {
	return Config{
		Count:         80,
		Duration:      4 * time.Second,
		Gravity:       0.25,
		Resistance:    0.99,
		LifeDecay:     0.01,
		Speed:         Range{-15, -5},
		Angle:         Range{math.Pi / 4, 3 * math.Pi / 4},
		Size:          Range{4, 12},
		RotationSpeed: Range{-0.2, 0.2},
		Colors:        DefaultPalette,
		Shapes:        []Shape{ShapeDisk, ShapeSquare},
		MaxParticles:  2000,
	}
}

// normalize fills in required fields a caller left zero. Physics fields stay
// untouched: zero gravity and an empty speed range are valid tunings.
func (c *Config) normalize() {
	if c.Count <= 0 {
		c.Count = 80
	}
	if c.Duration <= 0 {
		c.Duration = 4 * time.Second
	}
	if c.Resistance <= 0 {
		c.Resistance = 0.99
	}
	if c.LifeDecay <= 0 {
		c.LifeDecay = 0.01
	}
	if c.Size == (Range{}) {
		c.Size = Range{4, 12}
	}
	if len(c.Colors) == 0 {
		c.Colors = DefaultPalette
	}
	if len(c.Shapes) == 0 {
		c.Shapes = []Shape{ShapeDisk, ShapeSquare}
	}
	if c.MaxParticles <= 0 {
		c.MaxParticles = 2000
	}
}

// ConfigPatch is a partial Config for runtime tuning. Nil fields are left
// untouched by apply; set fields overwrite the corresponding Config field
// wholesale. Easing functions can be set but not unset through a patch.
type ConfigPatch struct {
	Count         *int
	Duration      *time.Duration
	Gravity       *float64
	Resistance    *float64
	LifeDecay     *float64
	Speed         *Range
	Angle         *Range
	Size          *Range
	RotationSpeed *Range
	Colors        []Color
	Shapes        []Shape
	MaxParticles  *int
	FadeEase      ease.TweenFunc
	ScaleEase     ease.TweenFunc
}

// apply shallow-merges the patch into cfg.
func (p ConfigPatch) apply(cfg *Config) {
	if p.Count != nil {
		cfg.Count = *p.Count
	}
	if p.Duration != nil {
		cfg.Duration = *p.Duration
	}
	if p.Gravity != nil {
		cfg.Gravity = *p.Gravity
	}
	if p.Resistance != nil {
		cfg.Resistance = *p.Resistance
	}
	if p.LifeDecay != nil {
		cfg.LifeDecay = *p.LifeDecay
	}
	if p.Speed != nil {
		cfg.Speed = *p.Speed
	}
	if p.Angle != nil {
		cfg.Angle = *p.Angle
	}
	if p.Size != nil {
		cfg.Size = *p.Size
	}
	if p.RotationSpeed != nil {
		cfg.RotationSpeed = *p.RotationSpeed
	}
	if p.Colors != nil {
		cfg.Colors = p.Colors
	}
	if p.Shapes != nil {
		cfg.Shapes = p.Shapes
	}
	if p.MaxParticles != nil {
		cfg.MaxParticles = *p.MaxParticles
	}
	if p.FadeEase != nil {
		cfg.FadeEase = p.FadeEase
	}
	if p.ScaleEase != nil {
		cfg.ScaleEase = p.ScaleEase
	}
}

// yamlRange mirrors Range for config files.
type yamlRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// yamlPatch is the YAML shape of a tuning file. Durations are Go duration
// strings ("4s", "2500ms"), colors are hex strings, shapes are names, and
// angles are degrees for readability.
type yamlPatch struct {
	Count         *int       `yaml:"count"`
	Duration      *string    `yaml:"duration"`
	Gravity       *float64   `yaml:"gravity"`
	Resistance    *float64   `yaml:"resistance"`
	LifeDecay     *float64   `yaml:"lifeDecay"`
	Speed         *yamlRange `yaml:"speed"`
	AngleDegrees  *yamlRange `yaml:"angleDegrees"`
	Size          *yamlRange `yaml:"size"`
	RotationSpeed *yamlRange `yaml:"rotationSpeed"`
	Colors        []string   `yaml:"colors"`
	Shapes        []string   `yaml:"shapes"`
	MaxParticles  *int       `yaml:"maxParticles"`
}

// ParsePatch parses a YAML tuning file into a ConfigPatch. Fields absent
// from the file are absent from the patch.
func ParsePatch(data []byte) (ConfigPatch, error) {
	var y yamlPatch
	if err := yaml.Unmarshal(data, &y); err != nil {
		return ConfigPatch{}, fmt.Errorf("parse config: %w", err)
	}

	patch := ConfigPatch{
		Count:        y.Count,
		Gravity:      y.Gravity,
		Resistance:   y.Resistance,
		LifeDecay:    y.LifeDecay,
		MaxParticles: y.MaxParticles,
	}
	if y.Duration != nil {
		d, err := time.ParseDuration(*y.Duration)
		if err != nil {
			return ConfigPatch{}, fmt.Errorf("parse config duration: %w", err)
		}
		patch.Duration = &d
	}
	if y.Speed != nil {
		patch.Speed = &Range{y.Speed.Min, y.Speed.Max}
	}
	if y.AngleDegrees != nil {
		patch.Angle = &Range{
			y.AngleDegrees.Min * math.Pi / 180,
			y.AngleDegrees.Max * math.Pi / 180,
		}
	}
	if y.Size != nil {
		patch.Size = &Range{y.Size.Min, y.Size.Max}
	}
	if y.RotationSpeed != nil {
		patch.RotationSpeed = &Range{y.RotationSpeed.Min, y.RotationSpeed.Max}
	}
	for _, s := range y.Colors {
		c, err := ParseHexColor(s)
		if err != nil {
			return ConfigPatch{}, fmt.Errorf("parse config: %w", err)
		}
		patch.Colors = append(patch.Colors, c)
	}
	for _, s := range y.Shapes {
		sh, err := ParseShape(s)
		if err != nil {
			return ConfigPatch{}, fmt.Errorf("parse config: %w", err)
		}
		patch.Shapes = append(patch.Shapes, sh)
	}
	return patch, nil
}

// LoadConfig parses a YAML tuning file and applies it on top of
// DefaultConfig.
func LoadConfig(data []byte) (Config, error) {
	patch, err := ParsePatch(data)
	if err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	patch.apply(&cfg)
	return cfg, nil
}
