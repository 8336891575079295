package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Particle struct: a single moving point in the network and dots modes.
type Particle struct {
	X, Y       float64 // Position
	DX, DY     float64 // Velocity
	BaseRadius float64
	Radius     float64 // Diverges from BaseRadius only in dots mode
	Color      color.NRGBA
}

// particleCount returns how many particles a mode gets at a given surface
// width. Narrow surfaces get half.
func particleCount(mode Mode, width float64) int {
	n := networkCount
	if mode == ModeDots {
		n = dotsCount
	}
	if width < mobileBreakpoint {
		n /= 2
	}
	return n
}

// initParticles builds a fresh particle set for the active mode: uniform
// positions keeping the full radius inside the surface, uniform velocities at
// the mode's base speed, and a two-color palette cycling with period 3.
func (b *Background) initParticles() {
	speed := networkSpeed
	if b.Mode == ModeDots {
		speed = dotsSpeed
	}
	b.particles = make([]*Particle, particleCount(b.Mode, b.width))
	for i := range b.particles {
		r := 1 + b.rng.Float64()*2
		if b.Mode == ModeDots {
			r = 0.5 + b.rng.Float64()*1.5
		}
		p := &Particle{
			X:          r + b.rng.Float64()*(b.width-2*r),
			Y:          r + b.rng.Float64()*(b.height-2*r),
			DX:         (b.rng.Float64()*2 - 1) * speed,
			DY:         (b.rng.Float64()*2 - 1) * speed,
			BaseRadius: r,
			Radius:     r,
			Color:      particleSecondary,
		}
		if i%3 == 0 {
			p.Color = particlePrimary
		}
		b.particles[i] = p
	}
}

// stepParticles advances every particle one frame: bounce, move, then the
// mode's pointer interaction.
func (b *Background) stepParticles() {
	for _, p := range b.particles {
		// Reflect, don't clamp: a particle whose leading edge would cross a
		// wall has that velocity component negated before it moves.
		if p.X+p.DX < p.Radius || p.X+p.DX > b.width-p.Radius {
			p.DX = -p.DX
		}
		if p.Y+p.DY < p.Radius || p.Y+p.DY > b.height-p.Radius {
			p.DY = -p.DY
		}
		p.X += p.DX
		p.Y += p.DY

		if !b.pointer.Present {
			if b.Mode == ModeDots {
				p.relax()
			}
			continue
		}
		dx := b.pointer.X - p.X
		dy := b.pointer.Y - p.Y
		dist := math.Hypot(dx, dy)
		switch b.Mode {
		case ModeNetwork:
			// The push is the raw delta over 20, so it strengthens with
			// distance inside the radius. Kept as shipped; see the
			// repulsion test before rescaling.
			if dist < influenceRadius {
				p.X -= dx / repelDivisor
				p.Y -= dy / repelDivisor
			}
		case ModeDots:
			if dist < influenceRadius {
				target := math.Min(p.BaseRadius*magnifyCap, p.BaseRadius+(influenceRadius-dist)/magnifyDivisor)
				p.Radius = math.Min(target, p.Radius+growStep)
			} else {
				p.relax()
			}
		}
	}
}

// relax decays a magnified radius back toward baseline, never below it.
func (p *Particle) relax() {
	if p.Radius > p.BaseRadius {
		p.Radius = math.Max(p.BaseRadius, p.Radius-decayStep)
	}
}

func (b *Background) drawParticles(screen *ebiten.Image) {
	for _, p := range b.particles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), p.Color, true)
	}
}

// connectionOpacity reports whether two particles at the given distance get a
// connection line, and how opaque it is. Nearer pairs are more opaque.
func connectionOpacity(dist, threshold float64) (float64, bool) {
	if dist >= threshold {
		return 0, false
	}
	return 1 - dist/threshold, true
}

// drawConnections draws a line between every particle pair closer than an
// eighth of the surface width. Pairs whose first particle sits inside the
// pointer's influence radius use the highlight color. O(n²), fine at these
// particle counts.
func (b *Background) drawConnections(screen *ebiten.Image) {
	threshold := b.width / connectionDivisor
	for i, p := range b.particles {
		highlighted := b.pointer.Present && math.Hypot(b.pointer.X-p.X, b.pointer.Y-p.Y) < influenceRadius
		for _, q := range b.particles[i+1:] {
			opacity, ok := connectionOpacity(math.Hypot(p.X-q.X, p.Y-q.Y), threshold)
			if !ok {
				continue
			}
			col := connectionColor
			if highlighted {
				col = connectionHighlight
			}
			vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), 1, fade(col, opacity), true)
		}
	}
}
