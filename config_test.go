package camgizmo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	s, err := cfg.ControlSettings()
	require.NoError(t, err)
	assert.Equal(t, KeyE, s.ToggleKey)
	assert.Equal(t, KeyZ, s.StepNegativeKey)
	assert.Equal(t, KeyX, s.StepPositiveKey)
	assert.Equal(t, float32(90), s.YawStepDegrees)
	assert.Equal(t, mgl32.Vec2{10, 10}, s.MouseSensitivity)
	assert.Equal(t, mgl32.Vec3{0, -5, 0}, s.GizmoPivot)
}

func TestParseConfig_OverridesDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
window:
  width: 1000
  height: 800
controls:
  toggle_key: tab
  mouse_sensitivity: [2, 3]
gizmo:
  rotation_smoothness: 0
`))
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.Window.Width)
	assert.Equal(t, 800, cfg.Window.Height)
	assert.Equal(t, "Camera Gizmo", cfg.Window.Title, "unset keys keep defaults")
	assert.Equal(t, float32(0), cfg.Gizmo.RotationSmoothness)

	s, err := cfg.ControlSettings()
	require.NoError(t, err)
	assert.Equal(t, KeyTab, s.ToggleKey)
	assert.Equal(t, mgl32.Vec2{2, 3}, s.MouseSensitivity)
}

func TestParseConfig_EmptyDocumentKeepsDefaults(t *testing.T) {
	for _, doc := range []string{"", "# nothing set\n"} {
		cfg, err := ParseConfig([]byte(doc))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	}
}

func TestParseConfig_Rejects(t *testing.T) {
	cases := map[string]string{
		"bad yaml":        "window: [",
		"zero width":      "window: {width: 0}",
		"unknown key":     "controls: {toggle_key: F13}",
		"same keys":       "controls: {toggle_key: Z}",
		"sensitivity len": "controls: {mouse_sensitivity: [1]}",
		"pivot len":       "gizmo: {pivot: [1, 2]}",
		"main arm len":    "main: {arm_offset: []}",
		"negative smooth": "gizmo: {rotation_smoothness: -1}",
		"fov":             "main: {fov_y_degrees: 180}",
		"misspelled key":  "controls: {toggle_keys: Q}",
		"unknown section": "camera: {fov_y_degrees: 60}",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(doc))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camgizmo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: {prefix: test, debug: true}\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Log.Prefix)
	assert.True(t, cfg.Log.Debug)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
