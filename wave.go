package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Wave struct: one sinusoidal band in the waves mode.
type Wave struct {
	TimeMod    float64 // Per-wave speed multiplier
	BaseAmp    float64
	Amp        float64 // Recomputed from pointer height while a pointer is present
	Wavelength float64
	YOffset    float64
	Color      color.NRGBA
}

// initWaves builds the wave set. One wave per palette color, with randomized
// speed, amplitude, wavelength, and vertical offset; the palette is read once
// here, not per frame.
func (b *Background) initWaves() {
	pal := wavePalette(b.Dark)
	b.waves = make([]*Wave, len(pal))
	for i := range b.waves {
		amp := 25 + b.rng.Float64()*25
		b.waves[i] = &Wave{
			TimeMod:    0.8 + b.rng.Float64()*0.7,
			BaseAmp:    amp,
			Amp:        amp,
			Wavelength: 100 + b.rng.Float64()*150,
			YOffset:    b.rng.Float64() * 200,
			Color:      pal[i],
		}
	}
}

// stepWaves advances the shared clock and, when a pointer is present, rescales
// each wave's amplitude by the pointer's vertical position. Waves later in the
// sequence react more strongly. With no pointer the amplitudes hold their last
// value.
func (b *Background) stepWaves() {
	b.clock += clockStep
	if !b.pointer.Present {
		return
	}
	influence := b.pointer.Y/b.height*2 - 1
	for i, w := range b.waves {
		w.Amp = w.BaseAmp + influence*20*float64(i+1)
	}
}

// drawWaves fills each wave from its sinusoid down to the bottom edge, one
// column at a time, in sequence order so the semi-transparent colors composite.
func (b *Background) drawWaves(screen *ebiten.Image) {
	mid := b.height / 2
	for _, w := range b.waves {
		for x := 0.0; x < b.width; x++ {
			y := math.Sin(x/w.Wavelength+b.clock*w.TimeMod)*w.Amp + mid + w.YOffset - waveBaseline
			if y < 0 {
				y = 0
			}
			if y >= b.height {
				continue
			}
			vector.DrawFilledRect(screen, float32(x), float32(y), 1, float32(b.height-y), w.Color, false)
		}
	}
}
