// Package app runs an App on a window: it owns the renderer and event
// dispatcher and drives a fixed-timestep loop.
package app

import (
	"time"

	"github.com/hubastard/libgfx/engine/core"
	"github.com/hubastard/libgfx/engine/events"
	"github.com/hubastard/libgfx/engine/gfx"
)

// App defines the game/application hooks.
type App interface {
	OnStart(e *Engine)                  // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)     // called at a fixed tick (60Hz)
	OnRender(e *Engine, alpha float64)  // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev events.Event) // input events not handled by a layer
	OnShutdown(e *Engine)               // before exit
}

// Window is what Run needs from the platform window.
type Window interface {
	gfx.Surface
	PollEvents()
	ShouldClose() bool
	SetShouldClose()
	SetTitle(title string)
	SetInputHandler(fn func(events.PlatformEvent))
	SetResizeHandler(fn func(w, h int))
	Destroy()
}

// Platform supplies the pieces Run can not create on its own.
type Platform struct {
	NewWindow  func(cfg core.Config) (Window, error)
	Translator events.Translator
	Backend    gfx.Backend
}

// Engine exposes core services to the App and its layers.
type Engine struct {
	Config   core.Config
	Window   Window
	Renderer *gfx.Renderer
	Events   *events.Dispatcher
	Layers   LayerStack
	start    time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Quit ends the loop after the current frame.
func (e *Engine) Quit() { e.Window.SetShouldClose() }

// PushLayer attaches l on top of the stack.
func (e *Engine) PushLayer(l Layer) {
	e.Layers.Push(l)
	l.OnAttach(e)
}

// PopLayer detaches the top layer.
func (e *Engine) PopLayer() (Layer, bool) {
	l, ok := e.Layers.Pop()
	if ok {
		l.OnDetach(e)
	}
	return l, ok
}
