package text

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/hubastard/libgfx/engine/colors"
	"github.com/hubastard/libgfx/engine/core"
	"github.com/hubastard/libgfx/engine/gfx"
)

// codepoint maps a rune to its single-byte (Latin-1) code point.
func codepoint(r rune) (rune, bool) {
	b, ok := charmap.ISO8859_1.EncodeRune(r)
	return rune(b), ok
}

// DrawText draws s with its first baseline at pos (Y down). Each glyph is
// placed at its bearing and the pen advances by the glyph advance. Runes
// outside Latin-1 and code points missing from the atlas are skipped;
// '\n' starts a new line.
func DrawText(r *gfx.Renderer, s string, pos core.Point, f *AtlasFont) {
	if f == nil {
		return
	}
	pen := pos
	for _, ch := range s {
		if ch == '\n' {
			pen.X = pos.X
			pen.Y += float32(f.lineHeight)
			continue
		}
		cp, ok := codepoint(ch)
		if !ok {
			continue
		}
		g, ok := f.Glyph(cp)
		if !ok {
			continue
		}
		if g.W > 0 && g.H > 0 {
			dest := core.R(pen.X+float32(g.Left), pen.Y-float32(g.Top), float32(g.W), float32(g.H))
			r.DrawTexture(g.Texture, dest, 0)
		}
		pen.X += float32(g.Advance)
	}
}

// MeasureText returns the advance width of the widest line of s and the
// total height of its lines.
func MeasureText(s string, f *AtlasFont) (width, height float32) {
	if f == nil {
		return 0, 0
	}
	var line float32
	height = float32(f.lineHeight)
	for _, ch := range s {
		if ch == '\n' {
			width = max(width, line)
			line = 0
			height += float32(f.lineHeight)
			continue
		}
		cp, ok := codepoint(ch)
		if !ok {
			continue
		}
		if g, ok := f.Glyph(cp); ok {
			line += float32(g.Advance)
		}
	}
	return max(width, line), height
}

// DrawStringText draws s through the font's string cache with its top-left
// corner at pos, scaled by scale (0 means 1) and rotated by rotation
// degrees about its center. Nothing is drawn when the texture cannot be
// produced.
func DrawStringText(r *gfx.Renderer, s string, pos core.Point, f *StringFont, c colors.Color, scale, rotation float32) {
	if f == nil {
		return
	}
	tex, err := f.TextTexture(s, c)
	if err != nil || !tex.Valid() {
		return
	}
	if scale == 0 {
		scale = 1
	}
	dest := core.R(pos.X, pos.Y, float32(tex.Width())*scale, float32(tex.Height())*scale)
	r.DrawTexture(tex, dest, rotation)
}
