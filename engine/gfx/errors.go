package gfx

import (
	"errors"
	"fmt"
)

var (
	// ErrContext reports a failure to create or bind the GPU context.
	ErrContext = errors.New("gfx: context creation failed")
	// ErrShader reports a shader compile or link failure.
	ErrShader = errors.New("gfx: shader program failed")
	// ErrInvalidSize reports non-positive texture dimensions or a pixel
	// buffer that does not match them.
	ErrInvalidSize = errors.New("gfx: invalid texture size")

	// The following are programming errors. The renderer panics with them.

	ErrNotInitialized = errors.New("gfx: renderer not initialized")
	ErrWrongThread    = errors.New("gfx: call from non-render thread")
	ErrInvalidTexture = errors.New("gfx: invalid texture")
)

func fatal(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
