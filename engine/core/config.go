package core

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config for the engine run.
type Config struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	VSync      bool   `toml:"vsync"`
	ClearColor string `toml:"clear_color"` // "#RRGGBB" or "#RRGGBBAA"

	// FontPath is a TTF/OTF file. Empty selects the built-in Go Regular face.
	FontPath string `toml:"font_path"`
	FontSize int    `toml:"font_size"`

	// ShaderDir overrides the embedded quad shaders with quad.vert/quad.frag
	// from this directory when set.
	ShaderDir string `toml:"shader_dir"`

	LogLevel string `toml:"log_level"` // debug, info, warn, error
}

func DefaultConfig() Config {
	return Config{
		Title:      "libgfx",
		Width:      800,
		Height:     600,
		VSync:      true,
		ClearColor: "#14191F",
		FontSize:   24,
		LogLevel:   "info",
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. Keys missing from
// the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the window or font loaders cannot work with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("config: font_size %d must be positive", c.FontSize)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel maps a config level name to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("config: unknown log_level %q", s)
}
