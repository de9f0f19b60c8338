package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/libgfx/engine/colors"
	"github.com/hubastard/libgfx/engine/core"
	"github.com/hubastard/libgfx/engine/events"
	"github.com/hubastard/libgfx/engine/gfx"
	"github.com/hubastard/libgfx/engine/gfx/gfxtest"
)

// fakeWindow runs for a fixed number of frames and replays queued input on
// the first poll.
type fakeWindow struct {
	*gfxtest.Surface
	frames    int
	polls     int
	queued    []events.PlatformEvent
	resizeTo  [2]int
	input     func(events.PlatformEvent)
	resize    func(w, h int)
	closed    bool
	destroyed bool
	textInput bool
}

func (w *fakeWindow) PollEvents() {
	w.polls++
	if w.polls == 1 {
		for _, pe := range w.queued {
			w.input(pe)
		}
		if w.resizeTo != [2]int{} {
			w.resize(w.resizeTo[0], w.resizeTo[1])
		}
	}
}

func (w *fakeWindow) ShouldClose() bool                             { return w.closed || w.polls >= w.frames }
func (w *fakeWindow) SetShouldClose()                               { w.closed = true }
func (w *fakeWindow) SetTitle(string)                               {}
func (w *fakeWindow) SetInputHandler(fn func(events.PlatformEvent)) { w.input = fn }
func (w *fakeWindow) SetResizeHandler(fn func(w, h int))            { w.resize = fn }
func (w *fakeWindow) Destroy()                                      { w.destroyed = true }
func (w *fakeWindow) StartTextInput()                               { w.textInput = true }
func (w *fakeWindow) StopTextInput()                                { w.textInput = false }
func (w *fakeWindow) SetTextInputRect(core.Rect)                    {}

type recordingApp struct {
	started, renders, shutdowns int
	events                      []events.Event
	onStart                     func(e *Engine)
}

func (a *recordingApp) OnStart(e *Engine) {
	a.started++
	if a.onStart != nil {
		a.onStart(e)
	}
}
func (a *recordingApp) OnUpdate(*Engine, float64)          {}
func (a *recordingApp) OnRender(*Engine, float64)          { a.renders++ }
func (a *recordingApp) OnEvent(_ *Engine, ev events.Event) { a.events = append(a.events, ev) }
func (a *recordingApp) OnShutdown(*Engine)                 { a.shutdowns++ }

type recordingLayer struct {
	name     string
	log      *[]string
	consume  bool
	renders  int
	detached bool
}

func (l *recordingLayer) OnAttach(*Engine) { *l.log = append(*l.log, "attach "+l.name) }
func (l *recordingLayer) OnDetach(*Engine) {
	l.detached = true
	*l.log = append(*l.log, "detach "+l.name)
}
func (l *recordingLayer) OnUpdate(*Engine, float64) {}
func (l *recordingLayer) OnRender(*Engine, float64) { l.renders++ }
func (l *recordingLayer) OnEvent(_ *Engine, ev events.Event) bool {
	*l.log = append(*l.log, "event "+l.name)
	return l.consume
}

func platformFor(win *fakeWindow, be *gfxtest.Backend) Platform {
	return Platform{
		NewWindow:  func(core.Config) (Window, error) { return win, nil },
		Translator: events.Identity{},
		Backend:    be,
	}
}

func TestRunFrames(t *testing.T) {
	be := gfxtest.NewBackend()
	win := &fakeWindow{Surface: gfxtest.NewSurface(640, 480), frames: 3}
	a := &recordingApp{}

	require.NoError(t, Run(a, core.DefaultConfig(), platformFor(win, be)))

	assert.Equal(t, 1, a.started)
	assert.Equal(t, 3, a.renders)
	assert.Equal(t, 1, a.shutdowns)
	assert.Equal(t, 3, win.Swaps)
	assert.Len(t, be.Clears, 3)
	assert.Equal(t, colors.MustHex("#14191F").Float4(), be.Clears[0])
	assert.True(t, win.destroyed)
	assert.Zero(t, be.Contexts, "renderer shut down")
	assert.Empty(t, be.Programs)
}

func TestRunDispatchesEventsThroughLayers(t *testing.T) {
	be := gfxtest.NewBackend()
	win := &fakeWindow{
		Surface: gfxtest.NewSurface(640, 480),
		frames:  1,
		queued: []events.PlatformEvent{
			{Kind: events.KindKeyDown, Code: int(events.KeyA)},
			{Kind: events.KindMouseMotion, X: 5, Y: 6},
			{Kind: events.KindOther},
		},
	}
	var log []string
	bottom := &recordingLayer{name: "bottom", log: &log}
	top := &recordingLayer{name: "top", log: &log, consume: true}
	var pressed bool
	a := &recordingApp{onStart: func(e *Engine) {
		e.PushLayer(bottom)
		e.PushLayer(top)
		e.Events.AddListener(events.EventKeyDown, func(events.Event) {
			pressed = e.Events.IsKeyPressed(events.KeyA)
		})
	}}

	require.NoError(t, Run(a, core.DefaultConfig(), platformFor(win, be)))

	assert.True(t, pressed)
	assert.Empty(t, a.events, "top layer consumed everything")
	assert.Equal(t, []string{
		"attach bottom", "attach top",
		"event top", "event top",
		"detach top", "detach bottom",
	}, log)
	assert.Equal(t, 1, bottom.renders)
	assert.True(t, bottom.detached)
}

func TestRunForwardsUnhandledEventsToApp(t *testing.T) {
	be := gfxtest.NewBackend()
	win := &fakeWindow{
		Surface: gfxtest.NewSurface(640, 480),
		frames:  1,
		queued:  []events.PlatformEvent{{Kind: events.KindKeyUp, Code: int(events.KeyEscape)}},
	}
	var log []string
	a := &recordingApp{onStart: func(e *Engine) {
		e.PushLayer(&recordingLayer{name: "pass", log: &log})
	}}

	require.NoError(t, Run(a, core.DefaultConfig(), platformFor(win, be)))
	require.Len(t, a.events, 1)
	assert.Equal(t, events.EventKeyUp, a.events[0].Type)
	assert.Equal(t, events.KeyEscape, a.events[0].Keyboard.Key)
}

func TestRunResizeAndQuit(t *testing.T) {
	be := gfxtest.NewBackend()
	win := &fakeWindow{Surface: gfxtest.NewSurface(640, 480), frames: 100, resizeTo: [2]int{1024, 768}}
	var viewport [4]int32
	a := &recordingApp{onStart: func(e *Engine) {
		e.PushLayer(&quitLayer{viewport: &viewport})
		e.Events.StartTextInput()
	}}

	require.NoError(t, Run(a, core.DefaultConfig(), platformFor(win, be)))
	assert.Equal(t, 1, a.renders, "Quit stops after the current frame")
	assert.Equal(t, [4]int32{0, 0, 1024, 768}, viewport)
	assert.True(t, win.textInput, "dispatcher drives the window's text input")
}

// quitLayer records the viewport on its first frame and quits.
type quitLayer struct{ viewport *[4]int32 }

func (*quitLayer) OnAttach(*Engine)                   {}
func (*quitLayer) OnDetach(*Engine)                   {}
func (*quitLayer) OnUpdate(*Engine, float64)          {}
func (*quitLayer) OnEvent(*Engine, events.Event) bool { return false }
func (l *quitLayer) OnRender(e *Engine, _ float64) {
	*l.viewport = e.Renderer.Viewport()
	e.Quit()
}

func TestRunErrors(t *testing.T) {
	be := gfxtest.NewBackend()
	win := &fakeWindow{Surface: gfxtest.NewSurface(640, 480), frames: 1}

	bad := core.DefaultConfig()
	bad.ClearColor = "nope"
	assert.Error(t, Run(&recordingApp{}, bad, platformFor(win, be)))

	assert.Error(t, Run(&recordingApp{}, core.DefaultConfig(), Platform{}))

	be.FailContext = true
	a := &recordingApp{}
	err := Run(a, core.DefaultConfig(), platformFor(win, be))
	assert.ErrorIs(t, err, gfx.ErrContext)
	assert.Zero(t, a.started)
	assert.True(t, win.destroyed)
}

func TestRunCustomShaders(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quad.vert"), []byte("vert"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quad.frag"), []byte("frag"), 0o644))

	be := gfxtest.NewBackend()
	win := &fakeWindow{Surface: gfxtest.NewSurface(640, 480), frames: 1}
	cfg := core.DefaultConfig()
	cfg.ShaderDir = dir
	require.NoError(t, Run(&recordingApp{}, cfg, platformFor(win, be)))

	cfg.ShaderDir = filepath.Join(dir, "missing")
	assert.Error(t, Run(&recordingApp{}, cfg, platformFor(win, be)))
}

func TestLayerStack(t *testing.T) {
	var ls LayerStack
	_, ok := ls.Pop()
	assert.False(t, ok)

	var log []string
	a := &recordingLayer{name: "a", log: &log}
	b := &recordingLayer{name: "b", log: &log, consume: true}
	ls.Push(a)
	ls.Push(b)

	var order []string
	ls.ForEach(func(l Layer) { order = append(order, l.(*recordingLayer).name) })
	assert.Equal(t, []string{"a", "b"}, order)

	handled := ls.ForEachReverse(func(l Layer) bool { return l.OnEvent(nil, events.Event{}) })
	assert.True(t, handled)
	assert.Equal(t, []string{"event b"}, log)

	top, ok := ls.Pop()
	require.True(t, ok)
	assert.Same(t, b, top)
	assert.Equal(t, 1, ls.Len())
}
