package text_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/hubastard/libgfx/engine/gfx"
	"github.com/hubastard/libgfx/engine/gfx/gfxtest"
)

func newRenderer(t *testing.T) (*gfx.Renderer, *gfxtest.Backend) {
	t.Helper()
	be := gfxtest.NewBackend()
	r := gfx.New(be)
	require.NoError(t, r.Init(gfxtest.NewSurface(800, 600)))
	t.Cleanup(r.Shutdown)
	return r, be
}

// translation returns the top-left corner encoded in an unrotated model.
func translation(cmd gfx.DrawCmd) (x, y float32) { return cmd.Model[12], cmd.Model[13] }

// scale returns the width and height encoded in an unrotated model.
func scale(cmd gfx.DrawCmd) (w, h float32) { return cmd.Model[0], cmd.Model[5] }

var fontData = goregular.TTF
