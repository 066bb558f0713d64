package sprig

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Renderer limits. MaxTextureSlots mirrors the common hardware sampler count.
const (
	DefaultMaxQuads        = 10000
	DefaultMaxTextureSlots = 32
)

// Config is the top-level program configuration, normally loaded from YAML.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Renderer RendererConfig `yaml:"renderer"`
	Log      LogConfig      `yaml:"log"`
	// ScreenshotDir receives PNGs queued with Application.Screenshot.
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// WindowConfig describes the main window.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	VSync      bool   `yaml:"vsync"`
	Resizable  bool   `yaml:"resizable"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// RendererConfig sizes the batch renderer.
type RendererConfig struct {
	// MaxQuads is the number of quads per batch before a flush is forced.
	MaxQuads int `yaml:"max_quads"`
	// MaxTextureSlots is the slot table capacity, including the white texture
	// in slot 0.
	MaxTextureSlots int `yaml:"max_texture_slots"`
	// DepthSort orders quads inside a batch by ascending Z before submission.
	DepthSort  bool  `yaml:"depth_sort"`
	ClearColor Color `yaml:"clear_color"`
}

// LogConfig selects the zap level and encoding ("console" or "json").
type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:     "sprig",
			Width:     1280,
			Height:    720,
			VSync:     true,
			Resizable: true,
		},
		Renderer: DefaultRendererConfig(),
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
		ScreenshotDir: "screenshots",
	}
}

// DefaultRendererConfig returns the renderer limits used by DefaultConfig.
func DefaultRendererConfig() RendererConfig {
	return RendererConfig{
		MaxQuads:        DefaultMaxQuads,
		MaxTextureSlots: DefaultMaxTextureSlots,
		ClearColor:      Color{0.1, 0.1, 0.1, 1},
	}
}

// LoadConfig decodes YAML from r on top of DefaultConfig and validates it.
// Fields absent from the document keep their defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("sprig: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile opens path and calls LoadConfig.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("sprig: open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// Validate checks that every size is usable.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("sprig: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	return c.Renderer.Validate()
}

// Validate checks the renderer limits.
func (c RendererConfig) Validate() error {
	if c.MaxQuads <= 0 {
		return fmt.Errorf("sprig: max_quads %d must be positive", c.MaxQuads)
	}
	if c.MaxTextureSlots < 2 {
		return fmt.Errorf("sprig: max_texture_slots %d must be at least 2", c.MaxTextureSlots)
	}
	return nil
}

// UnmarshalYAML accepts either a 3 or 4 element sequence ([r, g, b, a]) or a
// mapping with r/g/b/a keys. A missing alpha means 1.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var v []float32
		if err := node.Decode(&v); err != nil {
			return err
		}
		if len(v) != 3 && len(v) != 4 {
			return fmt.Errorf("sprig: color at line %d needs 3 or 4 components, got %d", node.Line, len(v))
		}
		*c = Color{v[0], v[1], v[2], 1}
		if len(v) == 4 {
			c.A = v[3]
		}
		return nil
	case yaml.MappingNode:
		var m struct {
			R float32  `yaml:"r"`
			G float32  `yaml:"g"`
			B float32  `yaml:"b"`
			A *float32 `yaml:"a"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		*c = Color{m.R, m.G, m.B, 1}
		if m.A != nil {
			c.A = *m.A
		}
		return nil
	}
	return fmt.Errorf("sprig: color at line %d must be a sequence or mapping", node.Line)
}
