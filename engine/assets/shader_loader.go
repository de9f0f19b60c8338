package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadShaderPair reads quad.vert and quad.frag from dir.
func LoadShaderPair(dir string) (vertexSrc, fragmentSrc string, err error) {
	if vertexSrc, err = LoadShader(filepath.Join(dir, "quad.vert")); err != nil {
		return "", "", err
	}
	if fragmentSrc, err = LoadShader(filepath.Join(dir, "quad.frag")); err != nil {
		return "", "", err
	}
	return vertexSrc, fragmentSrc, nil
}

// LoadShader reads a GLSL file. The GL backend adds the null terminator.
func LoadShader(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", path, err)
	}
	if len(b) == 0 {
		return "", fmt.Errorf("load shader %q: empty file", path)
	}
	return string(b), nil
}
