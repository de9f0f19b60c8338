package main

import (
	"golang.org/x/image/font/gofont/goregular"

	"github.com/hubastard/libgfx/engine/colors"
	"github.com/hubastard/libgfx/engine/core"
	"github.com/hubastard/libgfx/engine/gfx"
	"github.com/hubastard/libgfx/engine/text"
)

// loadAtlas loads cfg.FontPath, or Go Regular when it is unset.
func loadAtlas(r *gfx.Renderer, cfg core.Config, size int, tint colors.Color) (*text.AtlasFont, error) {
	if cfg.FontPath == "" {
		return text.LoadAtlasFontBytes(r, goregular.TTF, size, tint)
	}
	return text.LoadAtlasFont(r, cfg.FontPath, size, tint)
}

func loadStringFont(r *gfx.Renderer, cfg core.Config, size int) (*text.StringFont, error) {
	if cfg.FontPath == "" {
		return text.LoadStringFontBytes(r, goregular.TTF, size)
	}
	return text.LoadStringFont(r, cfg.FontPath, size)
}
