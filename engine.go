package confetti

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"
)

// defaultSpawnY is the vertical offset from the top of the surface used when
// a Trigger does not specify its own origin.
const defaultSpawnY = 40.0

// BurstOptions selects where and how big a triggered burst is. The zero
// value means "engine defaults": horizontal surface center, defaultSpawnY
// from the top, Config.Count particles.
type BurstOptions struct {
	// Origin is the spawn point. nil means the default near-top center.
	Origin *Vec2
	// Count overrides Config.Count when nonzero. Negative counts clamp to
	// zero particles.
	Count int
}

// Engine owns the particle pool and the animating/idle lifecycle. Create one
// with New, attach it to a surface with Bind, and drive it with Update and
// Draw from the host's frame loop. All methods must be called from the same
// goroutine as the frame loop; the engine does no locking.
type Engine struct {
	config    Config
	particles []particle
	alive     int
	animating bool
	bound     bool

	width, height float64

	// Auto-stop bookkeeping. Each Trigger re-arms the deadline and bumps
	// the generation; a deadline only fires while its generation is still
	// current, so a stale deadline left over from before a Stop can never
	// cut a fresh burst short.
	generation uint64
	stopAt     time.Time
	stopGen    uint64
	stopArmed  bool

	rnd         func() float64
	now         func() time.Time
	motionQuery func() bool
	debug       bool
}

// New creates an unbound engine with the given config. Required config
// fields left zero are filled with defaults; physics fields (gravity, speed,
// angle) are taken as given. The engine no-ops until Bind is called.
func New(cfg Config) *Engine {
	cfg.normalize()
	return &Engine{
		config: cfg,
		rnd:    rand.Float64,
		now:    time.Now,
	}
}

// Bind attaches the engine to a drawing surface of the given size,
// preallocates the particle pool, and resets all animation state. Safe to
// call again to rebind.
func (e *Engine) Bind(width, height int) {
	e.width = float64(width)
	e.height = float64(height)
	e.particles = make([]particle, e.config.MaxParticles)
	e.alive = 0
	e.animating = false
	e.stopArmed = false
	e.bound = true
	e.debugf("bound to %dx%d surface", width, height)
}

// Resize resynchronizes the surface dimensions after a viewport change.
// Live particles are kept; the culling bound follows the new height.
func (e *Engine) Resize(width, height int) {
	if !e.bound {
		return
	}
	e.width = float64(width)
	e.height = float64(height)
}

// Bound reports whether the engine has been attached to a surface.
func (e *Engine) Bound() bool {
	return e.bound
}

// IsAnimating reports whether the frame loop is live, i.e. Update wants to
// be called again.
func (e *Engine) IsAnimating() bool {
	return e.animating
}

// AliveCount returns the number of live particles.
func (e *Engine) AliveCount() int {
	return e.alive
}

// Size returns the bound surface dimensions.
func (e *Engine) Size() (width, height float64) {
	return e.width, e.height
}

// Config returns a pointer to the engine's config for live tuning. Prefer
// UpdateConfig for partial updates.
func (e *Engine) Config() *Config {
	return &e.config
}

// SetMotionQuery installs the host's reduced-motion preference query.
// While fn reports true, Trigger is a no-op. The query is evaluated fresh
// on every Trigger call, so preference changes take effect immediately.
func (e *Engine) SetMotionQuery(fn func() bool) {
	e.motionQuery = fn
}

// SetRandSource replaces the uniform random source used for particle
// attribute sampling. fn must return values in [0, 1). Passing nil restores
// the default source. Intended for deterministic tests and replays.
func (e *Engine) SetRandSource(fn func() float64) {
	if fn == nil {
		fn = rand.Float64
	}
	e.rnd = fn
}

// SetDebug enables diagnostic logging of state transitions to stderr.
func (e *Engine) SetDebug(enabled bool) {
	e.debug = enabled
}

// Trigger fires a burst of particles and starts the frame loop if it is
// idle. It is the public entry point for collaborators (buttons, game
// events). Calling it on an unbound engine, or while the host reports a
// reduced-motion preference, is a silent no-op.
//
// Each call re-arms the deferred auto-stop to Config.Duration from now, so
// overlapping triggers extend the show rather than letting an earlier
// trigger's deadline cut off particles spawned by a later one.
func (e *Engine) Trigger(opts BurstOptions) {
	if !e.bound {
		e.debugf("trigger ignored: engine not bound")
		return
	}
	if e.motionQuery != nil && e.motionQuery() {
		e.debugf("trigger ignored: reduced motion preference")
		return
	}

	x := e.width / 2
	y := defaultSpawnY
	if opts.Origin != nil {
		x = opts.Origin.X
		y = opts.Origin.Y
	}
	count := opts.Count
	if count == 0 {
		count = e.config.Count
	}

	e.Burst(x, y, count)

	if e.alive > 0 && !e.animating {
		e.animating = true
		e.debugf("animating (%d particles)", e.alive)
	}
	if e.animating {
		e.generation++
		e.stopGen = e.generation
		e.stopAt = e.now().Add(e.config.Duration)
		e.stopArmed = true
	}
}

// Burst spawns count particles at (x, y) without touching the animating
// flag or the auto-stop deadline. Negative counts clamp to zero; spawns
// beyond the pool capacity are silently dropped.
func (e *Engine) Burst(x, y float64, count int) {
	if !e.bound {
		return
	}
	for ; count > 0 && e.alive < len(e.particles); count-- {
		e.particles[e.alive].init(&e.config, x, y, e.rnd)
		e.alive++
	}
}

// Update advances the animation by one frame: it fires a due auto-stop,
// steps every particle, culls dead ones, and transitions back to idle when
// the pool empties. It returns true while another frame is wanted, so a
// host with its own scheduler can use the result as the continue/halt
// decision. Calling Update while idle is a cheap no-op.
func (e *Engine) Update() bool {
	if !e.bound || !e.animating {
		return false
	}

	if e.stopArmed && e.stopGen == e.generation && !e.now().Before(e.stopAt) {
		e.debugf("auto-stop after %v", e.config.Duration)
		e.Stop()
		return false
	}

	cullY := e.height + cullMargin

	// Step particles, swap-remove dead ones. Dead particles never survive
	// into the draw that follows this update.
	i := 0
	for i < e.alive {
		p := &e.particles[i]
		p.step(&e.config)
		if !p.alive(cullY) {
			e.alive--
			e.particles[i] = e.particles[e.alive]
			continue
		}
		i++
	}

	if e.alive == 0 {
		e.animating = false
		e.stopArmed = false
		e.debugf("idle: all particles culled")
		return false
	}
	return true
}

// Stop forcibly ends the animation: the particle pool is emptied, the
// animating flag cleared, and the armed auto-stop discarded. Safe to call
// in any state, idempotent, and a no-op on an unbound engine.
func (e *Engine) Stop() {
	if !e.bound {
		return
	}
	e.alive = 0
	e.animating = false
	e.stopArmed = false
}

// UpdateConfig shallow-merges the patch into the engine's config. Physics
// constants (gravity, resistance, decay) are read fresh each step, so they
// affect live particles from the next Update; sampled attributes (count,
// palette, ranges) only affect particles spawned after the update. Growing
// MaxParticles resizes the pool immediately; shrinking it culls the excess.
func (e *Engine) UpdateConfig(patch ConfigPatch) {
	patch.apply(&e.config)
	e.config.normalize()
	if e.bound && e.config.MaxParticles != len(e.particles) {
		pool := make([]particle, e.config.MaxParticles)
		n := copy(pool, e.particles[:e.alive])
		e.particles = pool
		e.alive = n
	}
}

// debugf prints a diagnostic line to stderr when debug mode is on.
func (e *Engine) debugf(format string, args ...any) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[confetti] "+format+"\n", args...)
}
