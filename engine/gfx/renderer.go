package gfx

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/libgfx/engine/assets"
	"github.com/hubastard/libgfx/engine/colors"
	"github.com/hubastard/libgfx/engine/core"
)

// Quad vertex: position (x,y,z) + uv (u,v), triangle-fan order starting
// top-left in a Y-down projection.
var quadVertices = []float32{
	0, 0, 0, 0, 0,
	1, 0, 0, 1, 0,
	1, 1, 0, 1, 1,
	0, 1, 0, 0, 1,
}

var fullUV = [4]float32{0, 0, 1, 1}

type Option func(*Renderer)

// WithShaders replaces the embedded quad program. The sources must declare
// the same attributes and uniforms as DefaultVertexShader/DefaultFragmentShader.
func WithShaders(vertexSrc, fragmentSrc string) Option {
	return func(r *Renderer) {
		r.vertexSrc = vertexSrc
		r.fragmentSrc = fragmentSrc
	}
}

// Renderer is an immediate-mode 2D renderer bound to a single goroutine.
// The goroutine that calls Init becomes the render goroutine; every other
// method panics when called from elsewhere or before Init.
type Renderer struct {
	backend     Backend
	vertexSrc   string
	fragmentSrc string

	surface     Surface
	initialized bool
	renderGID   int64

	program Handle
	quad    Handle
	line    Handle

	lineMin, lineMax float32

	projection mgl32.Mat4
	viewport   [4]int32

	textures map[*Texture]struct{}
	owned    []Resource

	stats Statistics
}

func New(backend Backend, opts ...Option) *Renderer {
	r := &Renderer{
		backend:     backend,
		vertexSrc:   DefaultVertexShader,
		fragmentSrc: DefaultFragmentShader,
		projection:  mgl32.Ident4(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Init binds the surface's context, builds the quad program and geometry and
// sets up the projection for the surface size. Calling Init again before
// Shutdown is a no-op.
func (r *Renderer) Init(s Surface) error {
	if r.initialized {
		return nil
	}
	if s == nil {
		return fmt.Errorf("%w: nil surface", ErrContext)
	}

	runtime.LockOSThread()
	if err := r.backend.CreateContext(s); err != nil {
		r.backend.DestroyContext()
		runtime.UnlockOSThread()
		return fmt.Errorf("%w: %w", ErrContext, err)
	}

	prog, err := r.backend.CreateProgram(r.vertexSrc, r.fragmentSrc)
	if err != nil {
		r.backend.DestroyContext()
		runtime.UnlockOSThread()
		return fmt.Errorf("%w: %w", ErrShader, err)
	}

	quad, err := r.backend.CreateBuffer(BufferDesc{
		Vertices:   quadVertices,
		Attributes: []int{3, 2},
		Usage:      UsageStatic,
	})
	if err != nil {
		r.backend.DeleteProgram(prog)
		r.backend.DestroyContext()
		runtime.UnlockOSThread()
		return fmt.Errorf("create quad buffer: %w", err)
	}

	line, err := r.backend.CreateBuffer(BufferDesc{
		Vertices:   make([]float32, 4),
		Attributes: []int{2},
		Usage:      UsageStream,
	})
	if err != nil {
		r.backend.DeleteBuffer(quad)
		r.backend.DeleteProgram(prog)
		r.backend.DestroyContext()
		runtime.UnlockOSThread()
		return fmt.Errorf("create line buffer: %w", err)
	}

	r.surface = s
	r.program, r.quad, r.line = prog, quad, line
	r.lineMin, r.lineMax = r.backend.LineWidthRange()
	r.textures = make(map[*Texture]struct{})
	r.renderGID = currentGID()
	r.initialized = true
	r.stats = Statistics{}

	w, h := s.FramebufferSize()
	r.resize(w, h)

	vendor, renderer, version := r.backend.Info()
	core.Logger().Info("renderer initialized",
		"vendor", vendor, "renderer", renderer, "version", version,
		"width", w, "height", h)
	return nil
}

// Shutdown releases every owned font and texture, the geometry buffers, the
// program and the context, and returns the renderer to its pre-Init state.
// It is a no-op when the renderer is not initialized.
func (r *Renderer) Shutdown() {
	if !r.initialized {
		return
	}
	r.mustRenderThread("Shutdown")

	owned := r.owned
	r.owned = nil
	for i := len(owned) - 1; i >= 0; i-- {
		owned[i].Release()
	}
	for t := range r.textures {
		r.backend.DeleteTexture(t.handle)
		t.handle = 0
		t.owner = nil
	}
	clear(r.textures)

	r.backend.DeleteBuffer(r.line)
	r.backend.DeleteBuffer(r.quad)
	r.backend.DeleteProgram(r.program)
	r.backend.DestroyContext()

	r.surface = nil
	r.program, r.quad, r.line = 0, 0, 0
	r.projection = mgl32.Ident4()
	r.viewport = [4]int32{}
	r.stats = Statistics{}
	r.renderGID = 0
	r.initialized = false
	runtime.UnlockOSThread()

	core.Logger().Info("renderer shut down")
}

func (r *Renderer) Initialized() bool { return r.initialized }

// Projection returns the current orthographic projection.
func (r *Renderer) Projection() mgl32.Mat4 { return r.projection }

// Viewport returns the last viewport set, as x, y, w, h.
func (r *Renderer) Viewport() [4]int32 { return r.viewport }

// Stats returns counts accumulated since the last Present.
func (r *Renderer) Stats() Statistics { return r.stats }

// Live reports the textures and resources the renderer still owns.
func (r *Renderer) Live() LiveResources {
	return LiveResources{Textures: len(r.textures), Owned: len(r.owned)}
}

// --- frame state ---

func (r *Renderer) Clear(c colors.Color) {
	r.mustRenderThread("Clear")
	r.backend.Clear(c.Float4())
}

// Present shows the back buffer and resets frame statistics.
func (r *Renderer) Present() {
	r.mustRenderThread("Present")
	r.surface.SwapBuffers()
	r.stats = Statistics{}
}

// SetViewport sets the GPU viewport. Negative extents are clamped to zero.
func (r *Renderer) SetViewport(area core.Rect) {
	r.mustRenderThread("SetViewport")
	w, h := area.W, area.H
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	r.setViewport(int32(area.X), int32(area.Y), int32(w), int32(h))
}

// HandleWindowResize recomputes the projection and viewport for a new
// framebuffer size. Non-positive sizes (minimized windows) are ignored.
func (r *Renderer) HandleWindowResize(width, height int) {
	r.mustRenderThread("HandleWindowResize")
	r.resize(width, height)
}

func (r *Renderer) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	r.projection = mgl32.Ortho2D(0, float32(w), float32(h), 0)
	r.setViewport(0, 0, int32(w), int32(h))
}

func (r *Renderer) setViewport(x, y, w, h int32) {
	r.viewport = [4]int32{x, y, w, h}
	r.backend.SetViewport(x, y, w, h)
}

// --- drawing ---

// DrawRect fills rect with a solid color. Translucent colors are blended.
func (r *Renderer) DrawRect(rect core.Rect, fill colors.Color) {
	r.mustRenderThread("DrawRect")
	model := mgl32.Translate3D(rect.X, rect.Y, 0).Mul4(mgl32.Scale3D(rect.W, rect.H, 1))
	r.draw(DrawCmd{
		Buffer:    r.quad,
		Primitive: TriangleFan,
		Count:     4,
		Model:     model,
		Color:     fill.Float4(),
		UVRect:    fullUV,
		Blend:     fill.A < 255,
	})
	r.stats.QuadCount++
}

// DrawLine draws a segment from p1 to p2. Width <= 0 draws a 1px line;
// widths outside the backend's supported range are clamped to it.
func (r *Renderer) DrawLine(p1, p2 core.Point, c colors.Color, width float32) {
	r.mustRenderThread("DrawLine")
	if width <= 0 {
		width = 1
	}
	if r.lineMax > 0 {
		width = min(max(width, r.lineMin), r.lineMax)
	}
	r.backend.UpdateBuffer(r.line, []float32{p1.X, p1.Y, p2.X, p2.Y})
	r.draw(DrawCmd{
		Buffer:    r.line,
		Primitive: Lines,
		Count:     2,
		Model:     mgl32.Ident4(),
		Color:     c.Float4(),
		UVRect:    fullUV,
		Blend:     c.A < 255,
		LineWidth: width,
	})
	r.stats.LineCount++
}

// DrawTexture draws tex stretched over dest, rotated by rotation degrees
// about the center of dest.
func (r *Renderer) DrawTexture(tex *Texture, dest core.Rect, rotation float32) {
	r.mustRenderThread("DrawTexture")
	r.drawTexture(tex, fullUV, dest, rotation)
}

// DrawTextureRegion draws the src sub-rectangle (in texture pixels) of tex
// over dest.
func (r *Renderer) DrawTextureRegion(tex *Texture, src, dest core.Rect, rotation float32) {
	r.mustRenderThread("DrawTextureRegion")
	r.mustOwn("DrawTextureRegion", tex)
	tw, th := float32(tex.width), float32(tex.height)
	uv := [4]float32{src.X / tw, src.Y / th, src.W / tw, src.H / th}
	r.drawTexture(tex, uv, dest, rotation)
}

func (r *Renderer) drawTexture(tex *Texture, uv [4]float32, dest core.Rect, rotation float32) {
	r.mustOwn("DrawTexture", tex)
	r.draw(DrawCmd{
		Buffer:     r.quad,
		Primitive:  TriangleFan,
		Count:      4,
		Model:      textureModel(dest, rotation),
		Color:      colors.White.Float4(),
		UseTexture: true,
		Texture:    tex.handle,
		UVRect:     uv,
		Blend:      true,
	})
	r.stats.QuadCount++
	r.stats.TextureBinds++
}

// textureModel is T(x,y) · [T(w/2,h/2) · Rz · T(-w/2,-h/2)] · S(w,h).
func textureModel(dest core.Rect, rotation float32) mgl32.Mat4 {
	m := mgl32.Translate3D(dest.X, dest.Y, 0)
	if rotation != 0 {
		hw, hh := dest.W/2, dest.H/2
		m = m.Mul4(mgl32.Translate3D(hw, hh, 0)).
			Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rotation))).
			Mul4(mgl32.Translate3D(-hw, -hh, 0))
	}
	return m.Mul4(mgl32.Scale3D(dest.W, dest.H, 1))
}

func (r *Renderer) draw(cmd DrawCmd) {
	cmd.Program = r.program
	cmd.Projection = r.projection
	r.backend.Draw(cmd)
	r.stats.DrawCalls++
}

// --- resources ---

// CreateTexture allocates a blank RGBA8 texture with clamp-to-edge wrapping
// and linear filtering.
func (r *Renderer) CreateTexture(width, height int) (*Texture, error) {
	r.mustRenderThread("CreateTexture")
	return r.upload(TextureDesc{Width: width, Height: height, Wrap: WrapClampToEdge})
}

// LoadTexture decodes an image file into a repeat-wrapped, mipmapped texture.
func (r *Renderer) LoadTexture(path string) (*Texture, error) {
	r.mustRenderThread("LoadTexture")
	w, h, pix, err := assets.LoadImage(path)
	if err != nil {
		core.Logger().Warn("load texture failed", "path", path, "err", err)
		return nil, err
	}
	return r.upload(TextureDesc{Width: w, Height: h, Pixels: pix, Wrap: WrapRepeat, Mipmaps: true})
}

// UploadTexture creates a texture from a full description. Font loaders use
// it for glyph and string bitmaps.
func (r *Renderer) UploadTexture(desc TextureDesc) (*Texture, error) {
	r.mustRenderThread("UploadTexture")
	return r.upload(desc)
}

func (r *Renderer) upload(desc TextureDesc) (*Texture, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, desc.Width, desc.Height)
	}
	if desc.Pixels != nil && len(desc.Pixels) != desc.Width*desc.Height*4 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrInvalidSize, len(desc.Pixels), desc.Width, desc.Height)
	}
	h, err := r.backend.CreateTexture(desc)
	if err == nil && h == 0 {
		err = errors.New("backend returned a zero handle")
	}
	if err != nil {
		core.Logger().Warn("texture upload failed", "width", desc.Width, "height", desc.Height, "err", err)
		return nil, fmt.Errorf("upload texture: %w", err)
	}
	t := &Texture{handle: h, width: desc.Width, height: desc.Height, owner: r}
	r.textures[t] = struct{}{}
	return t, nil
}

// ReleaseTexture destroys tex. Nil or already released textures are ignored.
func (r *Renderer) ReleaseTexture(tex *Texture) {
	if !tex.Valid() {
		return
	}
	r.mustRenderThread("ReleaseTexture")
	if tex.owner != r {
		fatal("ReleaseTexture", fmt.Errorf("%w: owned by another renderer", ErrInvalidTexture))
	}
	delete(r.textures, tex)
	r.backend.DeleteTexture(tex.handle)
	tex.handle = 0
	tex.owner = nil
}

// Own registers res to be released by Shutdown. Resources are released in
// reverse registration order.
func (r *Renderer) Own(res Resource) {
	r.mustRenderThread("Own")
	r.owned = append(r.owned, res)
}

// Disown removes res from the shutdown list. It is a no-op after Shutdown.
func (r *Renderer) Disown(res Resource) {
	if !r.initialized {
		return
	}
	r.mustRenderThread("Disown")
	for i, o := range r.owned {
		if o == res {
			r.owned = append(r.owned[:i], r.owned[i+1:]...)
			return
		}
	}
}

// mustOwn panics unless tex is live and was created by r. A handle from
// another renderer names nothing in this context.
func (r *Renderer) mustOwn(op string, tex *Texture) {
	if !tex.Valid() {
		fatal(op, ErrInvalidTexture)
	}
	if tex.owner != r {
		fatal(op, fmt.Errorf("%w: owned by another renderer", ErrInvalidTexture))
	}
}

func (r *Renderer) mustRenderThread(op string) {
	if !r.initialized {
		fatal(op, ErrNotInitialized)
	}
	if currentGID() != r.renderGID {
		fatal(op, ErrWrongThread)
	}
}
