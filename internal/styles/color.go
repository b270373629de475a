package styles

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGBA value stored in natural channel order. Alpha follows the
// ASS convention: 0 is opaque, 255 fully transparent.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA builds a color with an explicit ASS alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ASS renders the color in the &HAABBGGRR form used by SSA/ASS style lines.
// The markup stores channels reversed relative to the natural RGB order.
func (c Color) ASS() string {
	return fmt.Sprintf("&H%02X%02X%02X%02X", c.A, c.B, c.G, c.R)
}

// ParseHex parses "#RRGGBB" (leading # optional) into an opaque color.
func ParseHex(value string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("hex color %q: want RRGGBB", value)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("hex color %q: %w", value, err)
	}
	return Color{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
	}, nil
}

// WithAlpha returns a copy of the color with the given ASS alpha.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}
