package glbackend

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/libgfx/engine/core"
	"github.com/hubastard/libgfx/engine/gfx"
)

// BackendGL implements gfx.Backend on an OpenGL 3.3 core context.
type BackendGL struct {
	binder   gfx.ContextBinder
	loaded   bool
	lineMin  float32
	lineMax  float32
	programs map[gfx.Handle]*programState
	buffers  map[gfx.Handle]*bufferState
	current  gfx.Handle // program in use
}

type programState struct {
	id         uint32
	projection int32
	model      int32
	uvRect     int32
	color      int32
	useTexture int32
	texture    int32
}

type bufferState struct {
	vao   uint32
	vbo   uint32
	usage uint32
}

func New() *BackendGL {
	return &BackendGL{
		programs: make(map[gfx.Handle]*programState),
		buffers:  make(map[gfx.Handle]*bufferState),
	}
}

func (b *BackendGL) CreateContext(s gfx.Surface) error {
	if cb, ok := s.(gfx.ContextBinder); ok {
		cb.MakeContextCurrent()
		b.binder = cb
	}
	if !b.loaded {
		if err := gl.Init(); err != nil {
			return fmt.Errorf("load GL functions: %w", err)
		}
		b.loaded = true
	}

	var major, minor int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)
	if major < 3 || (major == 3 && minor < 3) {
		return fmt.Errorf("OpenGL 3.3 required, have %d.%d", major, minor)
	}

	gl.Disable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	// Core forward-compatible contexts usually report [1, 1]; anything
	// wider raises GL_INVALID_VALUE.
	var lw [2]float32
	gl.GetFloatv(gl.ALIASED_LINE_WIDTH_RANGE, &lw[0])
	b.lineMin, b.lineMax = lw[0], lw[1]
	clearErrors()
	return nil
}

func (b *BackendGL) DestroyContext() {
	if b.binder != nil {
		b.binder.DetachCurrentContext()
		b.binder = nil
	}
	b.current = 0
}

func (b *BackendGL) LineWidthRange() (min, max float32) { return b.lineMin, b.lineMax }

func (b *BackendGL) Info() (vendor, renderer, version string) {
	return gl.GoStr(gl.GetString(gl.VENDOR)),
		gl.GoStr(gl.GetString(gl.RENDERER)),
		gl.GoStr(gl.GetString(gl.VERSION))
}

// --- programs ---

func (b *BackendGL) CreateProgram(vsSrc, fsSrc string) (gfx.Handle, error) {
	prog, err := makeProgram(vsSrc, fsSrc)
	if err != nil {
		return 0, err
	}
	ps := &programState{id: prog}
	ps.projection = uniform(prog, "uProjection")
	ps.model = uniform(prog, "uModel")
	ps.uvRect = uniform(prog, "uUVRect")
	ps.color = uniform(prog, "uColor")
	ps.useTexture = uniform(prog, "uUseTexture")
	ps.texture = uniform(prog, "uTexture")
	h := gfx.Handle(prog)
	b.programs[h] = ps
	return h, nil
}

func (b *BackendGL) DeleteProgram(p gfx.Handle) {
	ps, ok := b.programs[p]
	if !ok {
		return
	}
	if b.current == p {
		gl.UseProgram(0)
		b.current = 0
	}
	gl.DeleteProgram(ps.id)
	delete(b.programs, p)
}

func uniform(prog uint32, name string) int32 {
	loc := gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
	if loc < 0 {
		core.Logger().Debug("uniform not active", "name", name)
	}
	return loc
}

// --- buffers ---

func (b *BackendGL) CreateBuffer(desc gfx.BufferDesc) (gfx.Handle, error) {
	if len(desc.Vertices) == 0 || len(desc.Attributes) == 0 {
		return 0, errors.New("empty vertex buffer description")
	}
	bs := &bufferState{usage: gl.STATIC_DRAW}
	if desc.Usage == gfx.UsageStream {
		bs.usage = gl.STREAM_DRAW
	}

	gl.GenVertexArrays(1, &bs.vao)
	gl.BindVertexArray(bs.vao)
	gl.GenBuffers(1, &bs.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, bs.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(desc.Vertices)*4, gl.Ptr(desc.Vertices), bs.usage)

	stride := int32(desc.Stride())
	offset := 0
	for loc, n := range desc.Attributes {
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointerWithOffset(uint32(loc), int32(n), gl.FLOAT, false, stride, uintptr(offset))
		offset += n * 4
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	h := gfx.Handle(bs.vao)
	b.buffers[h] = bs
	return h, nil
}

func (b *BackendGL) UpdateBuffer(h gfx.Handle, vertices []float32) {
	bs, ok := b.buffers[h]
	if !ok || len(vertices) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, bs.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), bs.usage)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (b *BackendGL) DeleteBuffer(h gfx.Handle) {
	bs, ok := b.buffers[h]
	if !ok {
		return
	}
	gl.DeleteBuffers(1, &bs.vbo)
	gl.DeleteVertexArrays(1, &bs.vao)
	delete(b.buffers, h)
}

// --- textures ---

func (b *BackendGL) CreateTexture(desc gfx.TextureDesc) (gfx.Handle, error) {
	// Errors left by earlier calls must not be blamed on this upload.
	clearErrors()

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	wrap := int32(gl.CLAMP_TO_EDGE)
	if desc.Wrap == gfx.WrapRepeat {
		wrap = gl.REPEAT
	}
	minFilter := int32(gl.LINEAR)
	if desc.Mipmaps {
		minFilter = gl.LINEAR_MIPMAP_LINEAR
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	var pix unsafe.Pointer
	if len(desc.Pixels) > 0 {
		pix = gl.Ptr(desc.Pixels)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, pix)
	if code := gl.GetError(); code != gl.NO_ERROR {
		clearErrors()
		gl.BindTexture(gl.TEXTURE_2D, 0)
		gl.DeleteTextures(1, &id)
		return 0, fmt.Errorf("glTexImage2D: error 0x%04X", code)
	}
	if desc.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
		if code := gl.GetError(); code != gl.NO_ERROR {
			clearErrors()
			gl.BindTexture(gl.TEXTURE_2D, 0)
			gl.DeleteTextures(1, &id)
			return 0, fmt.Errorf("glGenerateMipmap: error 0x%04X", code)
		}
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return gfx.Handle(id), nil
}

// clearErrors drains the GL error queue; a context may hold one flag per
// error kind.
func clearErrors() {
	for i := 0; i < 16 && gl.GetError() != gl.NO_ERROR; i++ {
	}
}

func (b *BackendGL) DeleteTexture(h gfx.Handle) {
	id := uint32(h)
	if id != 0 {
		gl.DeleteTextures(1, &id)
	}
}

// --- frame ---

func (b *BackendGL) SetViewport(x, y, w, h int32) { gl.Viewport(x, y, w, h) }

func (b *BackendGL) Clear(c [4]float32) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (b *BackendGL) Draw(cmd gfx.DrawCmd) {
	ps, ok := b.programs[cmd.Program]
	if !ok {
		return
	}
	bs, ok := b.buffers[cmd.Buffer]
	if !ok {
		return
	}
	if b.current != cmd.Program {
		gl.UseProgram(ps.id)
		b.current = cmd.Program
	}

	gl.UniformMatrix4fv(ps.projection, 1, false, &cmd.Projection[0])
	gl.UniformMatrix4fv(ps.model, 1, false, &cmd.Model[0])
	gl.Uniform4f(ps.color, cmd.Color[0], cmd.Color[1], cmd.Color[2], cmd.Color[3])
	gl.Uniform4f(ps.uvRect, cmd.UVRect[0], cmd.UVRect[1], cmd.UVRect[2], cmd.UVRect[3])

	if cmd.UseTexture {
		gl.Uniform1i(ps.useTexture, 1)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.Texture))
		gl.Uniform1i(ps.texture, 0)
	} else {
		gl.Uniform1i(ps.useTexture, 0)
	}

	if cmd.Blend {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	mode := uint32(gl.TRIANGLE_FAN)
	if cmd.Primitive == gfx.Lines {
		mode = gl.LINES
		gl.LineWidth(cmd.LineWidth)
	}

	gl.BindVertexArray(bs.vao)
	gl.DrawArrays(mode, 0, cmd.Count)
	gl.BindVertexArray(0)

	if cmd.Blend {
		gl.Disable(gl.BLEND)
	}
	if cmd.UseTexture {
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", strings.TrimRight(log, "\x00"))
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}
