package theme

import "strconv"

// RGB is an ink color. Components are 0-255.
type RGB struct {
	R, G, B int
}

// Common inks shared by the painters and decorators.
var (
	DarkBlue  = RGB{R: 13, G: 27, B: 62} // fixed baseline for decorative designs
	White     = RGB{R: 255, G: 255, B: 255}
	Black     = RGB{R: 0, G: 0, B: 0}
	Gray      = RGB{R: 110, G: 110, B: 110}
	LightGray = RGB{R: 240, G: 240, B: 240}
)

// ParseHex parses a "#rrggbb" or "rrggbb" color string. Three-digit
// shorthand ("#abc") is accepted. Reports false for anything else.
func ParseHex(s string) (RGB, bool) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 6:
		r, err1 := strconv.ParseUint(s[0:2], 16, 8)
		g, err2 := strconv.ParseUint(s[2:4], 16, 8)
		b, err3 := strconv.ParseUint(s[4:6], 16, 8)
		if err1 != nil || err2 != nil || err3 != nil {
			return RGB{}, false
		}
		return RGB{R: int(r), G: int(g), B: int(b)}, true
	case 3:
		r, err1 := strconv.ParseUint(s[0:1], 16, 8)
		g, err2 := strconv.ParseUint(s[1:2], 16, 8)
		b, err3 := strconv.ParseUint(s[2:3], 16, 8)
		if err1 != nil || err2 != nil || err3 != nil {
			return RGB{}, false
		}
		return RGB{R: int(r * 17), G: int(g * 17), B: int(b * 17)}, true
	}
	return RGB{}, false
}

// Shade returns the color scaled toward black by factor (0 keeps the color,
// 1 yields black).
func (c RGB) Shade(factor float64) RGB {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	scale := 1 - factor
	return RGB{
		R: int(float64(c.R) * scale),
		G: int(float64(c.G) * scale),
		B: int(float64(c.B) * scale),
	}
}

// Tint returns the color blended toward white by factor (0 keeps the color,
// 1 yields white).
func (c RGB) Tint(factor float64) RGB {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return RGB{
		R: c.R + int(float64(255-c.R)*factor),
		G: c.G + int(float64(255-c.G)*factor),
		B: c.B + int(float64(255-c.B)*factor),
	}
}

// SeverityColors are the fills used for risk severity tables and charts,
// ordered critical, warning, check & monitor, normal.
func SeverityColors() []RGB {
	return []RGB{
		{R: 196, G: 30, B: 30},
		{R: 235, G: 140, B: 20},
		{R: 222, G: 190, B: 20},
		{R: 34, G: 150, B: 60},
	}
}
