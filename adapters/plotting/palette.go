package plotting

import (
	"image/color"

	"surveycharts/domain/charts"
)

// Fill colors for the named palette used by chart specs
var palette = map[string]color.Color{
	charts.ColorSkyBlue:        color.RGBA{R: 0x87, G: 0xCE, B: 0xEB, A: 0xFF},
	charts.ColorLightCoral:     color.RGBA{R: 0xF0, G: 0x80, B: 0x80, A: 0xFF},
	charts.ColorLightGreen:     color.RGBA{R: 0x90, G: 0xEE, B: 0x90, A: 0xFF},
	charts.ColorGold:           color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF},
	charts.ColorLightSalmon:    color.RGBA{R: 0xFF, G: 0xA0, B: 0x7A, A: 0xFF},
	charts.ColorLightSeaGreen:  color.RGBA{R: 0x20, G: 0xB2, B: 0xAA, A: 0xFF},
	charts.ColorLightPink:      color.RGBA{R: 0xFF, G: 0xB6, B: 0xC1, A: 0xFF},
	charts.ColorLightSteelBlue: color.RGBA{R: 0xB0, G: 0xC4, B: 0xDE, A: 0xFF},
	charts.ColorPink:           color.RGBA{R: 0xFF, G: 0xC0, B: 0xCB, A: 0xFF},
}

// FillColor resolves a palette name, falling back to gray for unknown names
func FillColor(name string) color.Color {
	if c, ok := palette[name]; ok {
		return c
	}
	return color.Gray{Y: 0x80}
}
