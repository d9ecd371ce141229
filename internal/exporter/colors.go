package exporter

import (
	"fmt"
	"math"
)

// Golden-ratio conjugate. Successive hue steps of this size spread colors
// around the wheel without ever repeating on top of each other.
const goldenRatioConjugate = 0.618033988749895

// Fixed saturation and value keep every generated color readable as a font
// color on a white sheet.
const (
	colorSaturation = 0.60
	colorValue      = 0.80
)

// MaterialColor returns the RRGGBB font color for the i-th material in
// first-seen order. It is a pure function of the index, so a stable input
// ordering always produces the same assignment.
func MaterialColor(i int) string {
	hue := math.Mod(float64(i)*goldenRatioConjugate, 1.0)
	r, g, b := hsvToRGB(hue, colorSaturation, colorValue)
	return fmt.Sprintf("%02X%02X%02X", r, g, b)
}

// hsvToRGB converts h, s, v in [0, 1] to 8-bit RGB channels.
func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return uint8(math.Round(r * 255)), uint8(math.Round(g * 255)), uint8(math.Round(b * 255))
}
