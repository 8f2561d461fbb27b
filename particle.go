package confetti

import "math"

// cullMargin is how far past the bottom edge of the surface a particle may
// fall before it is removed regardless of remaining life.
const cullMargin = 20.0

// particle holds per-particle simulation state. Unexported; managed by Engine.
type particle struct {
	x, y          float64
	vx, vy        float64
	size          float64
	color         Color
	shape         Shape
	rotation      float64
	rotationSpeed float64
	life          float64 // 1.0 at spawn, decays by Config.LifeDecay per step
	opacity       float64 // derived from life each step, in [0, 1]
	scale         float64 // render scale, driven by Config.ScaleEase
}

// init fills in a freshly spawned particle at (x, y) by sampling the
// configured ranges off rnd.
func (p *particle) init(cfg *Config, x, y float64, rnd func() float64) {
	// Launch velocity: uniform angle across the configured arc, uniform
	// speed from the configured range. Speeds are negative so that the
	// vertical component points up (Y increases downward).
	angle := cfg.Angle.sample(rnd)
	speed := cfg.Speed.sample(rnd)
	p.x = x
	p.y = y
	p.vx = math.Cos(angle) * speed
	p.vy = math.Sin(angle) * speed

	p.size = cfg.Size.sample(rnd)
	p.color = cfg.Colors[int(rnd()*float64(len(cfg.Colors)))%len(cfg.Colors)]
	p.shape = cfg.Shapes[int(rnd()*float64(len(cfg.Shapes)))%len(cfg.Shapes)]
	p.rotation = rnd() * 2 * math.Pi
	p.rotationSpeed = cfg.RotationSpeed.sample(rnd)

	p.life = 1.0
	p.opacity = 1.0
	p.scale = 1.0
}

// step advances the particle by one frame. Order matters: gravity is added
// before drag scales the velocity, and drag applies before the velocity is
// integrated, so terminal-velocity behavior matches a damped falling body.
func (p *particle) step(cfg *Config) {
	p.vy += cfg.Gravity
	p.vx *= cfg.Resistance
	p.vy *= cfg.Resistance
	p.x += p.vx
	p.y += p.vy
	p.rotation += p.rotationSpeed

	p.life -= cfg.LifeDecay
	if cfg.FadeEase == nil {
		p.opacity = clamp01(p.life)
	} else {
		t := float32(clamp01(1 - p.life))
		p.opacity = clamp01(float64(cfg.FadeEase(t, 1, -1, 1)))
	}
	if cfg.ScaleEase != nil {
		t := float32(clamp01(1 - p.life))
		p.scale = clamp01(float64(cfg.ScaleEase(t, 1, -1, 1)))
	}
}

// alive reports whether the particle should survive this frame. cullY is the
// surface height plus cullMargin; particles past it are removed even if they
// still have life left, bounding runaway fallers.
func (p *particle) alive(cullY float64) bool {
	return p.life > 0 && p.y < cullY
}
