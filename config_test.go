package sprig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, DefaultMaxQuads, cfg.Renderer.MaxQuads)
	require.Equal(t, DefaultMaxTextureSlots, cfg.Renderer.MaxTextureSlots)
	require.False(t, cfg.Renderer.DepthSort)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(`
window:
  title: Test
  width: 640
renderer:
  max_quads: 500
  depth_sort: true
  clear_color: [0.2, 0.3, 0.4]
log:
  level: debug
screenshot_dir: out
`))
	require.NoError(t, err)
	require.Equal(t, "Test", cfg.Window.Title)
	require.Equal(t, 640, cfg.Window.Width)
	require.Equal(t, 720, cfg.Window.Height, "unset fields keep defaults")
	require.Equal(t, 500, cfg.Renderer.MaxQuads)
	require.Equal(t, DefaultMaxTextureSlots, cfg.Renderer.MaxTextureSlots)
	require.True(t, cfg.Renderer.DepthSort)
	require.Equal(t, Color{0.2, 0.3, 0.4, 1}, cfg.Renderer.ClearColor)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "console", cfg.Log.Encoding)
	require.Equal(t, "out", cfg.ScreenshotDir)
}

func TestLoadConfigEmptyDocument(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigColorMapping(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader("renderer: {clear_color: {r: 1, g: 0.5, a: 0.25}}"))
	require.NoError(t, err)
	require.Equal(t, Color{1, 0.5, 0, 0.25}, cfg.Renderer.ClearColor)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "window: [1, 2"},
		{"zero width", "window: {width: 0}"},
		{"negative quads", "renderer: {max_quads: -1}"},
		{"one slot", "renderer: {max_texture_slots: 1}"},
		{"short color", "renderer: {clear_color: [1, 1]}"},
		{"scalar color", "renderer: {clear_color: red}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprig.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: {title: FromFile}"), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	require.Equal(t, "FromFile", cfg.Window.Title)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestNewRenderer2DPanicsOnInvalidConfig(t *testing.T) {
	cfg := DefaultRendererConfig()
	cfg.MaxTextureSlots = 1
	require.Panics(t, func() { NewRenderer2D(&recordingAPI{}, cfg) })
}
