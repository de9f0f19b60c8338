package gfx

import _ "embed"

// Default quad program. Uniforms: uProjection, uModel, uUVRect, uColor,
// uUseTexture, uTexture. Attributes: 0 = position (vec3), 1 = uv (vec2).
var (
	//go:embed shaders/quad.vert
	DefaultVertexShader string
	//go:embed shaders/quad.frag
	DefaultFragmentShader string
)
