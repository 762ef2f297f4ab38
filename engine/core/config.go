package core

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config for the engine run, read from an optional YAML file.
type Config struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	VSync      bool       `yaml:"vsync"`
	ClearColor [4]float32 `yaml:"clear_color"` // RGBA
	// sleep between frames until input arrives
	Idle bool `yaml:"idle"`

	UI UIConfig `yaml:"ui"`

	// bytes reserved for per-frame labels
	ScratchCapacity int `yaml:"scratch_capacity"`
	// profiler ring size, in scope events
	ProfilerCapacity int `yaml:"profiler_capacity"`
}

// UIConfig configures the UI context and its drawing.
type UIConfig struct {
	// items preallocated in the arena
	Capacity int `yaml:"capacity"`
	// TTF file; empty selects the built-in Go font
	Font     string  `yaml:"font,omitempty"`
	FontSize float32 `yaml:"font_size"`
	// tree document to build instead of the built-in demo
	Layout string `yaml:"layout,omitempty"`
	// PNG sheet of 16px icons; empty draws stand-in shapes
	Icons string `yaml:"icons,omitempty"`
	// framebuffer pixels per layout pixel
	Scale float32 `yaml:"scale"`
}

func DefaultConfig() Config {
	return Config{
		Title:      "oui",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: [4]float32{0.08, 0.10, 0.12, 1},
		UI: UIConfig{
			Capacity: 4096,
			FontSize: 13,
			Scale:    1,
		},
		ScratchCapacity:  4096,
		ProfilerCapacity: 1 << 10,
	}
}

// LoadConfig reads the config at path over the defaults. A missing file is
// not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return DefaultConfig(), fmt.Errorf("%s: window size %dx%d is not positive", path, cfg.Width, cfg.Height)
	}
	if cfg.UI.FontSize <= 0 {
		return DefaultConfig(), fmt.Errorf("%s: font_size %v is not positive", path, cfg.UI.FontSize)
	}
	if cfg.UI.Scale <= 0 {
		return DefaultConfig(), fmt.Errorf("%s: ui scale %v is not positive", path, cfg.UI.Scale)
	}
	return cfg, nil
}
