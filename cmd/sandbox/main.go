package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/hubastard/libgfx/engine/app"
	"github.com/hubastard/libgfx/engine/core"
	"github.com/hubastard/libgfx/engine/events"
	glbackend "github.com/hubastard/libgfx/engine/gfx/gl"
	"github.com/hubastard/libgfx/engine/platform"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

// Sandbox pushes the demo layer and the debug overlay.
type Sandbox struct{}

func (s *Sandbox) OnStart(e *app.Engine) {
	e.PushLayer(&DemoLayer{})
	e.PushLayer(&DebugLayer{})
}

func (s *Sandbox) OnUpdate(*app.Engine, float64)     {}
func (s *Sandbox) OnRender(*app.Engine, float64)     {}
func (s *Sandbox) OnEvent(*app.Engine, events.Event) {}
func (s *Sandbox) OnShutdown(*app.Engine)            {}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg := core.DefaultConfig()
	cfg.Title = "libgfx sandbox"
	if *configPath != "" {
		var err error
		if cfg, err = core.LoadConfig(*configPath); err != nil {
			slog.Error("load config", "err", err)
			os.Exit(1)
		}
	}

	level, _ := core.ParseLogLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	core.SetLogger(logger)

	p := app.Platform{
		NewWindow: func(cfg core.Config) (app.Window, error) {
			return platform.NewWindow(cfg)
		},
		Translator: platform.Translator{},
		Backend:    glbackend.New(),
	}
	if err := app.Run(&Sandbox{}, cfg, p); err != nil {
		logger.Error("sandbox exited", "err", err)
		os.Exit(1)
	}
}
