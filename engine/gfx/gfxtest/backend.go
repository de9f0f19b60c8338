// Package gfxtest provides a recording gfx.Backend and a fake surface for
// tests that exercise the renderer without a GPU.
package gfxtest

import (
	"errors"
	"slices"

	"github.com/hubastard/libgfx/engine/gfx"
)

// Surface is a fixed-size gfx.Surface that counts buffer swaps.
type Surface struct {
	W, H  int
	Swaps int
}

func NewSurface(w, h int) *Surface { return &Surface{W: w, H: h} }

func (s *Surface) FramebufferSize() (int, int) { return s.W, s.H }
func (s *Surface) SwapBuffers()                { s.Swaps++ }

// Backend records every call and tracks live objects so tests can assert
// on resource counts.
type Backend struct {
	// Fail* make the corresponding call return an error.
	FailContext bool
	FailProgram bool
	FailBuffer  bool
	FailTexture bool

	// LineWidthMin and LineWidthMax are reported by LineWidthRange.
	LineWidthMin, LineWidthMax float32

	Contexts  int // contexts currently bound
	Programs  map[gfx.Handle]bool
	Buffers   map[gfx.Handle]gfx.BufferDesc
	Textures  map[gfx.Handle]gfx.TextureDesc
	Draws     []gfx.DrawCmd
	Clears    [][4]float32
	Viewports [][4]int32

	// Counters of creations over the backend's lifetime.
	ProgramsCreated int
	BuffersCreated  int
	TexturesCreated int
	TexturesDeleted int

	next gfx.Handle
}

func NewBackend() *Backend {
	return &Backend{
		LineWidthMin: 1,
		LineWidthMax: 10,
		Programs:     map[gfx.Handle]bool{},
		Buffers:      map[gfx.Handle]gfx.BufferDesc{},
		Textures:     map[gfx.Handle]gfx.TextureDesc{},
	}
}

var errInjected = errors.New("gfxtest: injected failure")

func (b *Backend) handle() gfx.Handle {
	b.next++
	return b.next
}

// CreateContext binds the context before failing, as a real backend does
// when the version check rejects it.
func (b *Backend) CreateContext(gfx.Surface) error {
	b.Contexts++
	if b.FailContext {
		return errInjected
	}
	return nil
}

func (b *Backend) DestroyContext() { b.Contexts-- }

func (b *Backend) Info() (string, string, string) { return "gfxtest", "recorder", "0" }

func (b *Backend) LineWidthRange() (float32, float32) { return b.LineWidthMin, b.LineWidthMax }

func (b *Backend) CreateProgram(vs, fs string) (gfx.Handle, error) {
	if b.FailProgram || vs == "" || fs == "" {
		return 0, errInjected
	}
	h := b.handle()
	b.Programs[h] = true
	b.ProgramsCreated++
	return h, nil
}

func (b *Backend) DeleteProgram(p gfx.Handle) { delete(b.Programs, p) }

func (b *Backend) CreateBuffer(desc gfx.BufferDesc) (gfx.Handle, error) {
	if b.FailBuffer {
		return 0, errInjected
	}
	h := b.handle()
	desc.Vertices = slices.Clone(desc.Vertices)
	b.Buffers[h] = desc
	b.BuffersCreated++
	return h, nil
}

func (b *Backend) UpdateBuffer(h gfx.Handle, v []float32) {
	desc := b.Buffers[h]
	desc.Vertices = slices.Clone(v)
	b.Buffers[h] = desc
}

func (b *Backend) DeleteBuffer(h gfx.Handle) { delete(b.Buffers, h) }

func (b *Backend) CreateTexture(desc gfx.TextureDesc) (gfx.Handle, error) {
	if b.FailTexture {
		return 0, errInjected
	}
	h := b.handle()
	desc.Pixels = slices.Clone(desc.Pixels)
	b.Textures[h] = desc
	b.TexturesCreated++
	return h, nil
}

func (b *Backend) DeleteTexture(h gfx.Handle) {
	if _, ok := b.Textures[h]; ok {
		delete(b.Textures, h)
		b.TexturesDeleted++
	}
}

func (b *Backend) SetViewport(x, y, w, h int32) {
	b.Viewports = append(b.Viewports, [4]int32{x, y, w, h})
}

func (b *Backend) Clear(c [4]float32) { b.Clears = append(b.Clears, c) }

func (b *Backend) Draw(cmd gfx.DrawCmd) { b.Draws = append(b.Draws, cmd) }

// LastDraw returns the most recent draw command.
func (b *Backend) LastDraw() gfx.DrawCmd {
	if len(b.Draws) == 0 {
		return gfx.DrawCmd{}
	}
	return b.Draws[len(b.Draws)-1]
}

// Reset forgets recorded draws, clears and viewports.
func (b *Backend) Reset() {
	b.Draws = nil
	b.Clears = nil
	b.Viewports = nil
}

// PanicErr runs f and returns the error it panicked with, or nil.
func PanicErr(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	f()
	return nil
}

// OnOtherGoroutine runs f on a fresh goroutine and waits for it.
func OnOtherGoroutine(f func()) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		f()
	}()
	<-done
}
