// Package confetti is a burst-style particle animation engine for [Ebitengine].
//
// Confetti simulates short-lived celebratory particles: each burst spawns a
// batch of colored disks and squares at a point, launches them upward with
// randomized speed and angle, and lets gravity, drag, and a fixed per-frame
// life decay carry them off screen. The engine owns the particle pool, the
// physics step, the rendering, and the animating/idle lifecycle; the host
// application only calls [Engine.Trigger] and [Engine.Stop].
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	engine := confetti.New(confetti.DefaultConfig())
//	confetti.Run(engine, confetti.RunConfig{
//		Title: "Party", Width: 800, Height: 600,
//		TriggerOnClick: true,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Engine.Update] and [Engine.Draw] directly:
//
//	type Game struct{ engine *confetti.Engine }
//
//	func (g *Game) Update() error              { g.engine.Update(); return nil }
//	func (g *Game) Draw(screen *ebiten.Image)  { g.engine.Draw(screen) }
//	func (g *Game) Layout(w, h int) (int, int) { g.engine.Bind(w, h); return w, h }
//
// # Lifecycle
//
// An engine is created with [New] and does nothing until [Engine.Bind]
// attaches it to a drawing surface. Every operation on an unbound engine is
// a silent no-op; the engine never panics or returns an error for a missing
// surface. Once bound, [Engine.Trigger] fires a burst and starts animating,
// [Engine.Update] advances one frame and reports whether another frame is
// wanted, and the engine returns to idle on its own when the last particle
// fades out or falls past the bottom of the surface. A deferred auto-stop
// fires a configured duration after the most recent trigger.
//
// Trigger honors a host-supplied reduced-motion preference: install a query
// with [Engine.SetMotionQuery] and bursts become no-ops while it reports
// true. The query is evaluated fresh on every call.
//
// # Tuning
//
// [Config] holds all spawn and physics parameters. [Engine.UpdateConfig]
// merges a [ConfigPatch] at runtime; [LoadConfig] reads the same patch
// from YAML. Optional easing curves from [gween] shape the fade and
// shrink of particles over their lifetime.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package confetti
