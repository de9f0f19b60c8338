package core

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sandbox.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
title = "demo"
width = 1280
clear_color = "#000000"
log_level = "debug"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, "demo", cfg.Title)
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, def.Height, cfg.Height)
	assert.Equal(t, def.FontSize, cfg.FontSize)
	assert.Equal(t, def.VSync, cfg.VSync)
	assert.Equal(t, "#000000", cfg.ClearColor)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, `width = "wide"`))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, `height = 0`))
	assert.ErrorContains(t, err, "window size")

	_, err = LoadConfig(writeConfig(t, `font_size = -1`))
	assert.ErrorContains(t, err, "font_size")

	_, err = LoadConfig(writeConfig(t, `log_level = "loud"`))
	assert.ErrorContains(t, err, "log_level")
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError), "silent by default")

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	Logger().Info("hello", "k", 1)
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "k=1")

	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
