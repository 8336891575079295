package main

import "image/color"

// Palettes are fixed at initialization time; only the wave set reads the
// light/dark flag, particle colors are theme-independent.
var (
	lightBackground = color.NRGBA{0xF8, 0xFA, 0xFC, 0xFF}
	darkBackground  = color.NRGBA{0x0B, 0x10, 0x21, 0xFF}

	particlePrimary   = color.NRGBA{0x63, 0x66, 0xF1, 0xFF}
	particleSecondary = color.NRGBA{0x8B, 0x5C, 0xF6, 0xFF}

	connectionColor     = color.NRGBA{0x63, 0x66, 0xF1, 0xFF}
	connectionHighlight = color.NRGBA{0xA7, 0x8B, 0xFA, 0xFF}

	lightWaves = []color.NRGBA{
		{0x63, 0x66, 0xF1, 0x59},
		{0x8B, 0x5C, 0xF6, 0x4D},
		{0x38, 0xBD, 0xF8, 0x40},
	}
	darkWaves = []color.NRGBA{
		{0x81, 0x8C, 0xF8, 0x4D},
		{0xA7, 0x8B, 0xFA, 0x40},
		{0x7D, 0xD3, 0xFC, 0x33},
	}
)

// wavePalette returns the wave colors for the active theme. Its length fixes
// how many waves get built.
func wavePalette(dark bool) []color.NRGBA {
	if dark {
		return darkWaves
	}
	return lightWaves
}

// backgroundColor returns the clear color for the active theme.
func backgroundColor(dark bool) color.NRGBA {
	if dark {
		return darkBackground
	}
	return lightBackground
}

// fade scales a color's alpha by opacity in [0, 1].
func fade(c color.NRGBA, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(float64(c.A) * opacity)
	return c
}
