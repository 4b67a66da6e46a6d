package sixel

import "github.com/lucasb-eyer/go-colorful"

// hlsToRGB converts a Sixel HLS color definition to RGBColor.
//
// Sixel's HLS color space uses a hue wheel rotated 120 degrees from the
// conventional one: hue 0 is blue, 120 is red, 240 is green (conventional
// HSL puts red at 0, green at 120, blue at 240). h is in degrees (0-360),
// l and s are percentages (0-100).
//
// This package chooses to convert HLS rather than leave it unassigned (see
// the design notes' discussion of the HSL open question): it rotates the
// hue onto the conventional wheel and delegates the actual HSL->RGB math to
// go-colorful, rather than reimplementing the hue/saturation/lightness
// formulas by hand.
func hlsToRGB(h, l, s int) RGBColor {
	hue := float64(h) - 120
	for hue >= 360 {
		hue -= 360
	}
	for hue < 0 {
		hue += 360
	}

	lightness := clampInt(l, 0, 100)
	saturation := clampInt(s, 0, 100)

	c := colorful.Hsl(hue, float64(saturation)/100, float64(lightness)/100)
	r, g, b := c.Clamped().RGB255()
	return RGBColor{R: r, G: g, B: b}
}
