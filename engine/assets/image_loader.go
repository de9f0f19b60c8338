package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes a PNG, JPEG, BMP, TIFF or WebP file and returns width,
// height and tightly packed straight-alpha RGBA8 pixels (row-major, top-left
// origin).
func LoadImage(path string) (w, h int, rgba []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("decode image %q: %w", path, err)
	}

	w, h, rgba = PackNRGBA(img)
	if w == 0 || h == 0 {
		return 0, 0, nil, fmt.Errorf("decode image %q: empty %s image", path, format)
	}
	return w, h, rgba, nil
}

// PackNRGBA converts img to straight-alpha RGBA8 with stride == 4*w.
func PackNRGBA(img image.Image) (w, h int, pix []byte) {
	b := img.Bounds()
	w, h = b.Dx(), b.Dy()
	if m, ok := img.(*image.NRGBA); ok && m.Stride == w*4 && m.Rect.Min == (image.Point{}) {
		return w, h, m.Pix
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return w, h, dst.Pix
}
