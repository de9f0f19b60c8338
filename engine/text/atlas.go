package text

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/hubastard/libgfx/engine/colors"
	"github.com/hubastard/libgfx/engine/core"
	"github.com/hubastard/libgfx/engine/gfx"
)

// AtlasRange is the number of code points, starting at 0, rasterized by
// LoadAtlasFont.
const AtlasRange = 128

// Glyph holds the metrics of one code point and its texture.
type Glyph struct {
	Left    int // pen x to bitmap left edge
	Top     int // baseline to bitmap top edge
	Advance int // horizontal pen advance
	W, H    int // bitmap size; zero for blank glyphs such as space
	Texture *gfx.Texture
}

// AtlasFont keeps one texture per glyph for the code points [0, AtlasRange),
// rasterized once at load time in a fixed tint color. It is immutable
// after load. One font instance serves one color.
type AtlasFont struct {
	r          *gfx.Renderer
	size       int
	tint       colors.Color
	ascent     int
	descent    int
	lineHeight int
	glyphs     map[rune]Glyph
}

// LoadAtlasFont rasterizes the font file at path. Code points the font
// cannot rasterize are left out; the load itself only fails when the file
// cannot be parsed or a texture upload fails.
func LoadAtlasFont(r *gfx.Renderer, path string, size int, tint colors.Color) (*AtlasFont, error) {
	face, err := openFace(path, size)
	if err != nil {
		core.Logger().Warn("load atlas font failed", "path", path, "err", err)
		return nil, err
	}
	defer face.Close()
	return buildAtlas(r, face, size, tint)
}

// LoadAtlasFontBytes is LoadAtlasFont for an in-memory TTF/OTF.
func LoadAtlasFontBytes(r *gfx.Renderer, data []byte, size int, tint colors.Color) (*AtlasFont, error) {
	face, err := newFace(data, size)
	if err != nil {
		return nil, err
	}
	defer face.Close()
	return buildAtlas(r, face, size, tint)
}

func buildAtlas(r *gfx.Renderer, face font.Face, size int, tint colors.Color) (*AtlasFont, error) {
	m := face.Metrics()
	f := &AtlasFont{
		r:          r,
		size:       size,
		tint:       tint,
		ascent:     m.Ascent.Ceil(),
		descent:    m.Descent.Ceil(),
		lineHeight: m.Height.Ceil(),
		glyphs:     make(map[rune]Glyph, AtlasRange),
	}

	for cp := rune(0); cp < AtlasRange; cp++ {
		g, pix, ok := rasterizeGlyph(face, cp, tint)
		if !ok {
			core.Logger().Debug("glyph not rasterized", "codepoint", int(cp))
			continue
		}
		w, h := g.W, g.H
		if w == 0 || h == 0 {
			// Blank glyphs still get a texture so every present glyph has a
			// valid handle.
			w, h, pix = 1, 1, make([]byte, 4)
		}
		tex, err := r.UploadTexture(gfx.TextureDesc{
			Width: w, Height: h,
			Pixels:  pix,
			Wrap:    gfx.WrapClampToEdge,
			Mipmaps: true,
		})
		if err != nil {
			f.releaseGlyphs()
			return nil, fmt.Errorf("upload glyph %d: %w", cp, err)
		}
		g.Texture = tex
		f.glyphs[cp] = g
	}

	r.Own(f)
	return f, nil
}

// rasterizeGlyph renders cp at a dot on the origin and converts the coverage
// mask to RGBA: RGB is the tint, A is coverage.
func rasterizeGlyph(face font.Face, cp rune, tint colors.Color) (Glyph, []byte, bool) {
	dr, mask, maskp, adv, ok := face.Glyph(fixed.Point26_6{}, cp)
	if !ok {
		return Glyph{}, nil, false
	}
	g := Glyph{
		Left:    dr.Min.X,
		Top:     -dr.Min.Y,
		Advance: adv.Round(),
		W:       dr.Dx(),
		H:       dr.Dy(),
	}
	if g.W == 0 || g.H == 0 || mask == nil {
		g.W, g.H = 0, 0
		return g, nil, true
	}

	// The face reuses its mask buffer between calls; copy it out first.
	cov := image.NewAlpha(image.Rect(0, 0, g.W, g.H))
	draw.Draw(cov, cov.Bounds(), mask, maskp, draw.Src)

	pix := make([]byte, len(cov.Pix)*4)
	for i, a := range cov.Pix {
		pix[i*4+0] = tint.R
		pix[i*4+1] = tint.G
		pix[i*4+2] = tint.B
		pix[i*4+3] = a
	}
	return g, pix, true
}

// Glyph returns the glyph for cp. It never allocates.
func (f *AtlasFont) Glyph(cp rune) (Glyph, bool) {
	g, ok := f.glyphs[cp]
	return g, ok
}

// Len reports how many code points were rasterized.
func (f *AtlasFont) Len() int { return len(f.glyphs) }

func (f *AtlasFont) Size() int               { return f.size }
func (f *AtlasFont) Tint() colors.Color      { return f.tint }
func (f *AtlasFont) Ascent() int             { return f.ascent }
func (f *AtlasFont) Descent() int            { return f.descent }
func (f *AtlasFont) LineHeight() int         { return f.lineHeight }
func (f *AtlasFont) Renderer() *gfx.Renderer { return f.r }

// Release destroys every glyph texture. Later calls are no-ops and glyph
// lookups fail afterwards.
func (f *AtlasFont) Release() {
	if f == nil || f.glyphs == nil {
		return
	}
	f.releaseGlyphs()
	f.r.Disown(f)
}

func (f *AtlasFont) releaseGlyphs() {
	for _, g := range f.glyphs {
		g.Texture.Release()
	}
	f.glyphs = nil
}
