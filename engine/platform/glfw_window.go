package platform

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hubastard/libgfx/engine/core"
	"github.com/hubastard/libgfx/engine/events"
)

// doubleClick is the longest gap between two presses of one button that
// still counts as a double click.
const doubleClick = 400 * time.Millisecond

// Window is a GLFW window with an OpenGL 3.3 core context. It implements
// gfx.Surface, gfx.ContextBinder and events.TextInputHost.
type Window struct {
	w        *glfw.Window
	onInput  func(events.PlatformEvent)
	onResize func(w, h int)

	lastX, lastY float64
	lastPress    glfw.MouseButton
	lastPressAt  time.Time
	clicks       int

	textInput bool
	textRect  core.Rect
}

// NewWindow initializes GLFW and opens a window. Must be called on the
// main, locked OS thread.
func NewWindow(cfg core.Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// GL 3.3 core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	g := &Window{w: win}
	g.lastX, g.lastY = win.GetCursorPos()

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		if g.onResize != nil {
			g.onResize(w, h)
		}
	})
	win.SetCursorPosCallback(g.onCursor)
	win.SetMouseButtonCallback(g.onButton)
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		g.emit(events.PlatformEvent{
			Kind:   events.KindMouseWheel,
			X:      float32(g.lastX),
			Y:      float32(g.lastY),
			WheelX: int(math.Round(xoff)),
			WheelY: int(math.Round(yoff)),
		})
	})
	win.SetKeyCallback(g.onKey)
	win.SetCharCallback(func(_ *glfw.Window, r rune) {
		if g.textInput {
			g.emit(events.PlatformEvent{Kind: events.KindTextInput, Text: string(r)})
		}
	})

	core.Logger().Info("window opened", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height, "vsync", cfg.VSync)
	return g, nil
}

// SetInputHandler sets the receiver of every input event.
func (g *Window) SetInputHandler(fn func(events.PlatformEvent)) { g.onInput = fn }

// SetResizeHandler sets the receiver of framebuffer size changes, in pixels.
func (g *Window) SetResizeHandler(fn func(w, h int)) { g.onResize = fn }

func (g *Window) emit(pe events.PlatformEvent) {
	if g.onInput != nil {
		g.onInput(pe)
	}
}

func (g *Window) onCursor(_ *glfw.Window, x, y float64) {
	pe := events.PlatformEvent{
		Kind: events.KindMouseMotion,
		X:    float32(x),
		Y:    float32(y),
		XRel: float32(x - g.lastX),
		YRel: float32(y - g.lastY),
	}
	g.lastX, g.lastY = x, y
	g.emit(pe)
}

func (g *Window) onButton(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	pe := events.PlatformEvent{
		Kind: events.KindMouseButtonUp,
		Code: int(b),
		Mods: translateMods(mods),
		X:    float32(g.lastX),
		Y:    float32(g.lastY),
	}
	if action == glfw.Press {
		pe.Kind = events.KindMouseButtonDown
		now := time.Now()
		if b == g.lastPress && now.Sub(g.lastPressAt) <= doubleClick {
			g.clicks++
		} else {
			g.clicks = 1
		}
		g.lastPress, g.lastPressAt = b, now
	}
	pe.Clicks = g.clicks
	g.emit(pe)
}

func (g *Window) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	pe := events.PlatformEvent{
		Kind:   events.KindKeyDown,
		Code:   int(key),
		Repeat: action == glfw.Repeat,
		Mods:   translateMods(mods),
	}
	if action == glfw.Release {
		pe.Kind = events.KindKeyUp
	}
	g.emit(pe)
}

// gfx.Surface
func (g *Window) FramebufferSize() (int, int) { return g.w.GetFramebufferSize() }
func (g *Window) SwapBuffers()                { g.w.SwapBuffers() }

// gfx.ContextBinder
func (g *Window) MakeContextCurrent()   { g.w.MakeContextCurrent() }
func (g *Window) DetachCurrentContext() { glfw.DetachCurrentContext() }

// events.TextInputHost. GLFW delivers characters through the char callback;
// it is only forwarded while text input is on. GLFW 3.3 has no IME
// positioning, so the rect is only recorded.
func (g *Window) StartTextInput()              { g.textInput = true }
func (g *Window) StopTextInput()               { g.textInput = false }
func (g *Window) SetTextInputRect(r core.Rect) { g.textRect = r }

func (g *Window) PollEvents()       { glfw.PollEvents() }
func (g *Window) ShouldClose() bool { return g.w.ShouldClose() }
func (g *Window) SetShouldClose()   { g.w.SetShouldClose(true) }
func (g *Window) SetTitle(t string) { g.w.SetTitle(t) }

// Destroy closes the window and terminates GLFW.
func (g *Window) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}
