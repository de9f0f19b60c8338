package main

import (
	"fmt"
	"time"

	"github.com/hubastard/libgfx/engine/app"
	"github.com/hubastard/libgfx/engine/colors"
	"github.com/hubastard/libgfx/engine/core"
	"github.com/hubastard/libgfx/engine/events"
	"github.com/hubastard/libgfx/engine/text"
)

// DebugLayer overlays frame timing and renderer counters. F3 toggles it.
type DebugLayer struct {
	font      *text.AtlasFont
	hidden    bool
	lastFrame time.Time
	frameMS   float64
	tick      int
}

func (l *DebugLayer) OnAttach(e *app.Engine) {
	var err error
	l.font, err = loadAtlas(e.Renderer, e.Config, 14, colors.Yellow)
	if err != nil {
		core.Logger().Error("load debug font", "err", err)
	}
}

func (l *DebugLayer) OnDetach(*app.Engine) { l.font.Release() }

func (l *DebugLayer) OnUpdate(*app.Engine, float64) { l.tick++ }

func (l *DebugLayer) OnRender(e *app.Engine, _ float64) {
	now := time.Now()
	if !l.lastFrame.IsZero() {
		// Smooth the reading so it stays legible.
		ms := float64(now.Sub(l.lastFrame).Microseconds()) / 1000
		l.frameMS += (ms - l.frameMS) * 0.1
	}
	l.lastFrame = now
	if l.hidden || l.font == nil {
		return
	}

	r := e.Renderer
	stats := r.Stats() // layers below this one
	live := r.Live()
	fps := 0.0
	if l.frameMS > 0 {
		fps = 1000 / l.frameMS
	}
	msg := fmt.Sprintf("Tick: %d\n%.2f ms (%.0f FPS)\nDraw calls: %d\nQuads: %d  Lines: %d\nTextures: %d  Fonts: %d",
		l.tick, l.frameMS, fps, stats.DrawCalls, stats.QuadCount, stats.LineCount, live.Textures, live.Owned)

	w, h := text.MeasureText(msg, l.font)
	_, vh := e.Window.FramebufferSize()
	origin := core.Pt(16, float32(vh)-h-16)
	r.DrawRect(core.R(origin.X-8, origin.Y-8, w+16, h+16), colors.Black.WithAlpha(160))
	text.DrawText(r, msg, core.Pt(origin.X, origin.Y+float32(l.font.Ascent())), l.font)
}

func (l *DebugLayer) OnEvent(_ *app.Engine, ev events.Event) bool {
	if ev.Type == events.EventKeyDown && ev.Keyboard.Key == events.KeyF3 && !ev.Keyboard.Repeat {
		l.hidden = !l.hidden
		return true
	}
	return false
}
