package app

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/hubastard/libgfx/engine/assets"
	"github.com/hubastard/libgfx/engine/colors"
	"github.com/hubastard/libgfx/engine/core"
	"github.com/hubastard/libgfx/engine/events"
	"github.com/hubastard/libgfx/engine/gfx"
)

const (
	tick    = time.Second / 60
	maxStep = 10 // prevent spiral of death
)

// Run opens the window, initializes the renderer and runs the loop until
// the window is closed or Engine.Quit is called.
func Run(a App, cfg core.Config, p Platform) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if p.NewWindow == nil || p.Backend == nil {
		return errors.New("app: platform needs a window factory and a backend")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	clear, err := colors.ParseHex(cfg.ClearColor)
	if err != nil {
		return fmt.Errorf("config clear_color: %w", err)
	}
	var opts []gfx.Option
	if cfg.ShaderDir != "" {
		vs, fs, err := assets.LoadShaderPair(cfg.ShaderDir)
		if err != nil {
			return err
		}
		opts = append(opts, gfx.WithShaders(vs, fs))
	}

	win, err := p.NewWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	rend := gfx.New(p.Backend, opts...)
	if err := rend.Init(win); err != nil {
		return fmt.Errorf("init renderer: %w", err)
	}
	defer rend.Shutdown()

	var dopts []events.Option
	if host, ok := win.(events.TextInputHost); ok {
		dopts = append(dopts, events.WithTextInputHost(host))
	}
	eng := &Engine{
		Config:   cfg,
		Window:   win,
		Renderer: rend,
		Events:   events.NewDispatcher(p.Translator, dopts...),
		start:    time.Now(),
	}

	win.SetInputHandler(func(pe events.PlatformEvent) {
		ev := eng.Events.PollEvents(pe)
		if ev.Type == events.EventNone {
			return
		}
		handled := eng.Layers.ForEachReverse(func(l Layer) bool { return l.OnEvent(eng, ev) })
		if !handled {
			a.OnEvent(eng, ev)
		}
	})
	win.SetResizeHandler(rend.HandleWindowResize)

	a.OnStart(eng)

	var (
		accum time.Duration
		prev  = time.Now()
	)
	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			dt := tick.Seconds()
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			a.OnUpdate(eng, dt)
			accum -= tick
			steps++
		}
		if steps == maxStep {
			accum = 0
		}
		alpha := float64(accum) / float64(tick)

		rend.Clear(clear)
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })
		a.OnRender(eng, alpha)
		rend.Present()
	}

	a.OnShutdown(eng)
	for eng.Layers.Len() > 0 {
		eng.PopLayer()
	}
	core.Logger().Info("engine exit", "uptime", eng.Uptime())
	return nil
}
