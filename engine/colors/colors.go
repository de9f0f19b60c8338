package colors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned by ParseHex for malformed color strings.
var ErrInvalidHex = errors.New("colors: invalid hex color")

// Color is an 8-bit per channel RGBA color.
type Color struct{ R, G, B, A uint8 }

var (
	Black   = FromRGBA32(0x000000FF)
	White   = FromRGBA32(0xFFFFFFFF)
	Red     = FromRGBA32(0xFF0000FF)
	Green   = FromRGBA32(0x00FF00FF)
	Blue    = FromRGBA32(0x0000FFFF)
	Yellow  = FromRGBA32(0xFFFF00FF)
	Cyan    = FromRGBA32(0x00FFFFFF)
	Magenta = FromRGBA32(0xFF00FFFF)
	Gray    = FromRGBA32(0x808080FF)

	DarkGray    = FromRGBA32(0x14191FFF)
	Transparent = Color{}
)

// FromRGBA32 unpacks 0xRRGGBBAA.
func FromRGBA32(v uint32) Color {
	return Color{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}
}

// RGBA clamps each component into [0,255].
func RGBA(r, g, b, a int) Color {
	return Color{clamp8(r), clamp8(g), clamp8(b), clamp8(a)}
}

// RGB is RGBA with full opacity.
func RGB(r, g, b int) Color { return RGBA(r, g, b, 255) }

// ParseHex accepts "#RRGGBB", "#RRGGBBAA" and the same without '#'.
// Six-digit forms are opaque.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	if len(h) == 6 {
		v = v<<8 | 0xFF
	}
	return FromRGBA32(uint32(v)), nil
}

// MustHex is ParseHex for constants; it panics on malformed input.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Uint32 packs the color as 0xRRGGBBAA.
func (c Color) Uint32() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// Float4 returns normalized components for shader uniforms.
func (c Color) Float4() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
