package gfx

import "github.com/go-gl/mathgl/mgl32"

// Handle names a backend object (program, buffer or texture). Zero is never
// a valid handle.
type Handle uint32

// Surface is the drawable the renderer presents to. The window owns it.
type Surface interface {
	FramebufferSize() (int, int)
	SwapBuffers()
}

// ContextBinder is implemented by surfaces that own a GPU context which must
// be made current before the backend can issue commands.
type ContextBinder interface {
	MakeContextCurrent()
	DetachCurrentContext()
}

// Backend is the low-level graphics API the renderer drives. Implementations
// are not safe for concurrent use; the renderer serializes every call on the
// render goroutine.
type Backend interface {
	// CreateContext binds the surface's context and loads API entry points.
	CreateContext(s Surface) error
	DestroyContext()
	// Info reports vendor, renderer and version strings of the bound context.
	Info() (vendor, renderer, version string)
	// LineWidthRange reports the line widths the context accepts. Wider
	// lines are clamped by the renderer.
	LineWidthRange() (min, max float32)

	CreateProgram(vertexSrc, fragmentSrc string) (Handle, error)
	DeleteProgram(p Handle)

	CreateBuffer(desc BufferDesc) (Handle, error)
	// UpdateBuffer replaces the whole content of a dynamic buffer.
	UpdateBuffer(b Handle, vertices []float32)
	DeleteBuffer(b Handle)

	CreateTexture(desc TextureDesc) (Handle, error)
	DeleteTexture(t Handle)

	SetViewport(x, y, w, h int32)
	Clear(rgba [4]float32)
	Draw(cmd DrawCmd)
}

// BufferUsage hints how often vertex data changes.
type BufferUsage int

const (
	UsageStatic BufferUsage = iota
	UsageStream
)

// BufferDesc describes a vertex buffer with interleaved float attributes.
type BufferDesc struct {
	Vertices []float32
	// Components per attribute in location order, e.g. {3, 2} for pos+uv.
	Attributes []int
	Usage      BufferUsage
}

// Stride reports the byte stride of one vertex.
func (d BufferDesc) Stride() int {
	n := 0
	for _, c := range d.Attributes {
		n += c
	}
	return n * 4
}

type WrapMode int

const (
	WrapClampToEdge WrapMode = iota
	WrapRepeat
)

func (w WrapMode) String() string {
	if w == WrapRepeat {
		return "repeat"
	}
	return "clamp"
}

// TextureDesc describes an RGBA8 texture. Nil Pixels allocates storage
// without initializing it.
type TextureDesc struct {
	Width, Height int
	Pixels        []byte // tightly packed RGBA8, top row first
	Wrap          WrapMode
	Mipmaps       bool
}

type Primitive int

const (
	TriangleFan Primitive = iota
	Lines
)

func (p Primitive) String() string {
	if p == Lines {
		return "lines"
	}
	return "triangle_fan"
}

// DrawCmd is one immediate draw call with all the uniform state it needs.
type DrawCmd struct {
	Program    Handle
	Buffer     Handle
	Primitive  Primitive
	Count      int32
	Projection mgl32.Mat4
	Model      mgl32.Mat4
	Color      [4]float32
	UseTexture bool
	Texture    Handle
	UVRect     [4]float32 // u, v, du, dv
	Blend      bool
	LineWidth  float32
}
