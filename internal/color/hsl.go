package color

import "math"

// HSL converts hue in degrees and saturation/lightness in percent to an
// opaque Color.
//
// Hue wraps modulo 360, so 360 yields exactly the result of 0 and negative
// hues wrap upward. Saturation and lightness are clamped to [0,100].
func HSL(h, s, l float64) Color {
	h = normalizeHue(h)
	s = clamp01(s / 100)
	l = clamp01(l / 100)

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch sector := int(h / 60); sector {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB(r+m, g+m, b+m)
}

func normalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -1e-18 + 360 rounds to 360.
	if h >= 360 {
		h = 0
	}
	return h
}
