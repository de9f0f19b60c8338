package text

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

var (
	// ErrInvalidFontSize reports a non-positive pixel size.
	ErrInvalidFontSize = errors.New("text: font size must be positive")
	// ErrEmptyText reports a string with nothing to rasterize.
	ErrEmptyText = errors.New("text: empty string")
)

// openFace parses a TTF/OTF file and opens a face at size pixels.
func openFace(path string, size int) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFontSize, size)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return newFace(data, size)
}

func newFace(data []byte, size int) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFontSize, size)
	}
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	// At 72 DPI one point is one pixel.
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(size), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return face, nil
}
