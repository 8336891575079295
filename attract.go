package main

import "github.com/aquilax/go-perlin"

const (
	attractStep   = 0.0015
	attractAlpha  = 2.0
	attractBeta   = 2.0
	attractDepth  = 3
	attractSpread = 512.0 // Offset between the x and y noise tracks
)

// attractDriver wanders a synthetic pointer across the surface on two 1D
// perlin tracks, for kiosk/demo setups where nobody is at the mouse.
type attractDriver struct {
	noise *perlin.Perlin
	t     float64
}

func newAttractDriver(seed int64) *attractDriver {
	return &attractDriver{noise: perlin.NewPerlin(attractAlpha, attractBeta, attractDepth, seed)}
}

// next advances the path and returns the pointer position, always on-surface.
func (a *attractDriver) next(width, height float64) (float64, float64) {
	a.t += attractStep
	x := clamp01(a.noise.Noise1D(a.t)+0.5) * width
	y := clamp01(a.noise.Noise1D(a.t+attractSpread)+0.5) * height
	return x, y
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
