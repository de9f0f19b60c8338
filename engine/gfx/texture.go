package gfx

import "fmt"

// Texture is a GPU image owned by the renderer that created it. Textures are
// handled by pointer only; Release destroys the backend image exactly once
// and later calls are no-ops.
type Texture struct {
	handle Handle
	width  int
	height int
	owner  *Renderer
}

// Handle returns the backend handle, zero once released.
func (t *Texture) Handle() Handle {
	if t == nil {
		return 0
	}
	return t.handle
}

func (t *Texture) Width() int  { return t.width }
func (t *Texture) Height() int { return t.height }

func (t *Texture) Size() (int, int) { return t.width, t.height }

// Valid reports whether the texture still owns a backend image.
func (t *Texture) Valid() bool { return t != nil && t.handle != 0 }

// Release is shorthand for owner.ReleaseTexture(t).
func (t *Texture) Release() {
	if !t.Valid() || t.owner == nil {
		return
	}
	t.owner.ReleaseTexture(t)
}

func (t *Texture) String() string {
	if t == nil {
		return "Texture(nil)"
	}
	return fmt.Sprintf("Texture(%d, %dx%d)", t.handle, t.width, t.height)
}

// Resource is anything the renderer releases on Shutdown if its owner has
// not done so already (fonts).
type Resource interface {
	Release()
}
