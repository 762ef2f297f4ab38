package colors

import (
	"fmt"
	"strconv"
	"strings"
)

type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Magenta  = Color{1, 0, 1, 1}
	Cyan     = Color{0, 1, 1, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Shade moves the colour towards white for positive amounts and towards
// black for negative ones; amount is clamped to [-1, 1]. Alpha is kept.
func (c Color) Shade(amount float32) Color {
	amount = max(-1, min(1, amount))
	for i := 0; i < 3; i++ {
		if amount >= 0 {
			c[i] += (1 - c[i]) * amount
		} else {
			c[i] *= 1 + amount
		}
	}
	return c
}

// Hex renders the colour as #rrggbb, or #rrggbbaa when not opaque.
func (c Color) Hex() string {
	b := func(v float32) int { return int(max(0, min(1, v))*255 + 0.5) }
	if b(c[3]) == 255 {
		return fmt.Sprintf("#%02x%02x%02x", b(c[0]), b(c[1]), b(c[2]))
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", b(c[0]), b(c[1]), b(c[2]), b(c[3]))
}

// ParseHex reads #rgb, #rrggbb or #rrggbbaa.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("colors: bad hex colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("colors: bad hex colour %q: %w", s, err)
	}
	return Color{
		float32(v>>24&0xff) / 255,
		float32(v>>16&0xff) / 255,
		float32(v>>8&0xff) / 255,
		float32(v&0xff) / 255,
	}, nil
}

// MustHex is ParseHex for constant inputs.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
