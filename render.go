package confetti

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw paints every live particle onto dst. Rendering is a pure side effect
// with no feedback into particle state; it assumes the host has already
// cleared the surface for this frame (Ebitengine clears the screen before
// each Draw by default).
func (e *Engine) Draw(dst *ebiten.Image) {
	if !e.bound || e.alive == 0 {
		return
	}
	for i := 0; i < e.alive; i++ {
		drawParticle(dst, &e.particles[i])
	}
}

// drawParticle paints one particle at its current transform: translated to
// (x, y), rotated, alpha set to its opacity, filled with its color, and
// centered on its local origin.
func drawParticle(dst *ebiten.Image, p *particle) {
	if p.opacity <= 0 {
		return
	}
	size := p.size * p.scale
	if size <= 0 {
		return
	}

	switch p.shape {
	case ShapeDisk:
		// Rotation is invisible on a disk; skip the transform.
		vector.DrawFilledCircle(dst,
			float32(p.x), float32(p.y), float32(size/2),
			p.color.withAlpha(p.opacity), true)
	case ShapeSquare:
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-0.5, -0.5)
		op.GeoM.Scale(size, size)
		op.GeoM.Rotate(p.rotation)
		op.GeoM.Translate(p.x, p.y)
		// ColorScale is premultiplied: scale RGB by alpha as well.
		a := float32(p.opacity * p.color.A)
		op.ColorScale.Scale(
			float32(p.color.R)*a,
			float32(p.color.G)*a,
			float32(p.color.B)*a,
			a)
		dst.DrawImage(WhitePixel, op)
	}
}
