package text

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/hubastard/libgfx/engine/colors"
	"github.com/hubastard/libgfx/engine/core"
	"github.com/hubastard/libgfx/engine/gfx"
)

// ErrFontReleased is returned when a released StringFont is used.
var ErrFontReleased = errors.New("text: font released")

// StringFont rasterizes whole strings on demand into a single texture and
// keeps the most recent one. The cache is keyed on both the string and the
// color, so changing either produces a new texture and releases the old one.
type StringFont struct {
	r    *gfx.Renderer
	face font.Face
	size int

	cacheText  string
	cacheColor colors.Color
	cached     *gfx.Texture
}

// LoadStringFont opens the face only; nothing is rasterized until the first
// TextTexture call.
func LoadStringFont(r *gfx.Renderer, path string, size int) (*StringFont, error) {
	face, err := openFace(path, size)
	if err != nil {
		core.Logger().Warn("load string font failed", "path", path, "err", err)
		return nil, err
	}
	return newStringFont(r, face, size), nil
}

// LoadStringFontBytes is LoadStringFont for an in-memory TTF/OTF.
func LoadStringFontBytes(r *gfx.Renderer, data []byte, size int) (*StringFont, error) {
	face, err := newFace(data, size)
	if err != nil {
		return nil, err
	}
	return newStringFont(r, face, size), nil
}

func newStringFont(r *gfx.Renderer, face font.Face, size int) *StringFont {
	f := &StringFont{r: r, face: face, size: size}
	r.Own(f)
	return f
}

func (f *StringFont) Size() int { return f.size }

// Cached returns the current cache entry, if any.
func (f *StringFont) Cached() (s string, c colors.Color, tex *gfx.Texture) {
	return f.cacheText, f.cacheColor, f.cached
}

// TextTexture returns a texture of s drawn in c. Repeated calls with the
// same string and color return the same texture. On failure the previous
// cache entry is kept and nil is returned.
func (f *StringFont) TextTexture(s string, c colors.Color) (*gfx.Texture, error) {
	if f.face == nil {
		return nil, ErrFontReleased
	}
	if f.cached.Valid() && s == f.cacheText && c == f.cacheColor {
		return f.cached, nil
	}

	w, h, pix, err := f.rasterize(s, c)
	if err != nil {
		return nil, err
	}
	tex, err := f.r.UploadTexture(gfx.TextureDesc{
		Width: w, Height: h,
		Pixels:  pix,
		Wrap:    gfx.WrapRepeat,
		Mipmaps: true,
	})
	if err != nil {
		return nil, fmt.Errorf("upload text %q: %w", s, err)
	}

	f.cached.Release()
	f.cached = tex
	f.cacheText = s
	f.cacheColor = c
	return tex, nil
}

// rasterize draws s on a transparent canvas sized to its advance and the
// face's ascent+descent, then converts the premultiplied result to
// straight alpha for SRC_ALPHA blending.
func (f *StringFont) rasterize(s string, c colors.Color) (w, h int, pix []byte, err error) {
	if s == "" {
		return 0, 0, nil, ErrEmptyText
	}
	m := f.face.Metrics()
	w = font.MeasureString(f.face, s).Ceil()
	h = (m.Ascent + m.Descent).Ceil()
	if w <= 0 || h <= 0 {
		return 0, 0, nil, fmt.Errorf("%w: %q has no extent", ErrEmptyText, s)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}),
		Face: f.face,
		Dot:  fixed.Point26_6{X: 0, Y: m.Ascent},
	}
	d.DrawString(s)

	out := image.NewNRGBA(canvas.Bounds())
	draw.Draw(out, out.Bounds(), canvas, image.Point{}, draw.Src)
	return w, h, out.Pix, nil
}

// Release frees the cached texture and closes the face. Later calls are
// no-ops.
func (f *StringFont) Release() {
	if f == nil || f.face == nil {
		return
	}
	f.cached.Release()
	f.cached = nil
	f.cacheText = ""
	_ = f.face.Close()
	f.face = nil
	f.r.Disown(f)
}
