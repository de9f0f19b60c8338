package main

import (
	"github.com/hubastard/libgfx/engine/app"
	"github.com/hubastard/libgfx/engine/colors"
	"github.com/hubastard/libgfx/engine/core"
	"github.com/hubastard/libgfx/engine/events"
	"github.com/hubastard/libgfx/engine/text"
)

const (
	greeting = "Hello,World!"
	pressed  = "Press"
)

// DemoLayer draws two rectangles, a line to the last left click, and the
// same message through both font kinds. Holding Space changes the message;
// Escape quits.
type DemoLayer struct {
	atlas   *text.AtlasFont
	str     *text.StringFont
	message string
	click   core.Point
	ids     []events.ListenerID
}

func (l *DemoLayer) OnAttach(e *app.Engine) {
	var err error
	l.atlas, err = loadAtlas(e.Renderer, e.Config, e.Config.FontSize, colors.White)
	if err != nil {
		core.Logger().Error("load atlas font", "err", err)
	}
	l.str, err = loadStringFont(e.Renderer, e.Config, e.Config.FontSize)
	if err != nil {
		core.Logger().Error("load string font", "err", err)
	}
	l.message = greeting
	l.click = core.Pt(500, 400)

	d := e.Events
	l.ids = append(l.ids,
		d.AddListener(events.EventKeyDown, func(ev events.Event) {
			switch ev.Keyboard.Key {
			case events.KeySpace:
				l.message = pressed
			case events.KeyEscape:
				e.Quit()
			}
		}),
		d.AddListener(events.EventKeyUp, func(ev events.Event) {
			if ev.Keyboard.Key == events.KeySpace {
				l.message = greeting
			}
		}),
		d.AddListener(events.EventMouseButtonDown, func(ev events.Event) {
			if ev.Mouse.Button == events.ButtonLeft {
				core.Logger().Debug("left click", "x", ev.Mouse.Position.X, "y", ev.Mouse.Position.Y)
				l.click = ev.Mouse.Position
			}
		}),
	)
}

func (l *DemoLayer) OnDetach(e *app.Engine) {
	for _, id := range l.ids {
		e.Events.RemoveListener(id)
	}
	l.ids = nil
	l.atlas.Release()
	l.str.Release()
}

func (l *DemoLayer) OnUpdate(*app.Engine, float64) {}

func (l *DemoLayer) OnRender(e *app.Engine, _ float64) {
	r := e.Renderer
	r.DrawRect(core.R(100, 100, 200, 150), colors.Red)
	r.DrawRect(core.R(150, 100, 200, 150), colors.White)
	r.DrawLine(core.Pt(300, 300), l.click, colors.Yellow, 3)

	text.DrawText(r, l.message, core.Pt(50, 50), l.atlas)
	text.DrawStringText(r, l.message, core.Pt(100, 100), l.str, colors.Black, 1, 0)
}

func (l *DemoLayer) OnEvent(*app.Engine, events.Event) bool { return false }
