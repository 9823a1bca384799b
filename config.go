package camgizmo

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Log      LogConfig      `yaml:"log"`
	Window   WindowConfig   `yaml:"window"`
	Controls ControlsConfig `yaml:"controls"`
	Gizmo    GizmoConfig    `yaml:"gizmo"`
	Main     MainConfig     `yaml:"main"`
}

type LogConfig struct {
	Prefix string `yaml:"prefix"`
	Debug  bool   `yaml:"debug"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type ControlsConfig struct {
	ToggleKey        string    `yaml:"toggle_key"`
	StepNegativeKey  string    `yaml:"yaw_step_negative_key"`
	StepPositiveKey  string    `yaml:"yaw_step_positive_key"`
	MouseSensitivity []float32 `yaml:"mouse_sensitivity"`
}

type GizmoConfig struct {
	Pivot              []float32 `yaml:"pivot"`
	ArmOffset          []float32 `yaml:"arm_offset"`
	RotationSmoothness float32   `yaml:"rotation_smoothness"`
	FovYDegrees        float32   `yaml:"fov_y_degrees"`
}

type MainConfig struct {
	Position    []float32 `yaml:"position"`
	ArmOffset   []float32 `yaml:"arm_offset"`
	FovYDegrees float32   `yaml:"fov_y_degrees"`
}

func DefaultConfig() Config {
	return Config{
		Log: LogConfig{Prefix: "camgizmo"},
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Camera Gizmo",
		},
		Controls: ControlsConfig{
			ToggleKey:        "E",
			StepNegativeKey:  "Z",
			StepPositiveKey:  "X",
			MouseSensitivity: []float32{10, 10},
		},
		Gizmo: GizmoConfig{
			Pivot:              []float32{0, -5, 0},
			ArmOffset:          []float32{0, 0, 2},
			RotationSmoothness: 1,
			FovYDegrees:        45,
		},
		Main: MainConfig{
			Position:    []float32{0, 0, 0},
			ArmOffset:   []float32{0, 0, 10},
			FovYDegrees: 45,
		},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
// Unknown keys are rejected; an empty document yields the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if _, err := c.ControlSettings(); err != nil {
		return err
	}
	if len(c.Gizmo.Pivot) != 3 || len(c.Gizmo.ArmOffset) != 3 {
		return fmt.Errorf("%w: gizmo pivot and arm_offset need 3 components", ErrInvalidConfig)
	}
	if len(c.Main.Position) != 3 || len(c.Main.ArmOffset) != 3 {
		return fmt.Errorf("%w: main position and arm_offset need 3 components", ErrInvalidConfig)
	}
	if c.Gizmo.RotationSmoothness < 0 {
		return fmt.Errorf("%w: negative rotation_smoothness", ErrInvalidConfig)
	}
	if c.Gizmo.FovYDegrees <= 0 || c.Gizmo.FovYDegrees >= 180 || c.Main.FovYDegrees <= 0 || c.Main.FovYDegrees >= 180 {
		return fmt.Errorf("%w: fov must be in (0, 180)", ErrInvalidConfig)
	}
	return nil
}

// ControlSettings resolves the key names and the sensitivity.
func (c Config) ControlSettings() (ControlSettings, error) {
	s := ControlSettings{
		YawStepDegrees: DefaultYawStepDegrees,
		GizmoPivot:     vec3(c.Gizmo.Pivot),
	}

	var err error
	if s.ToggleKey, err = ParseKey(c.Controls.ToggleKey); err != nil {
		return s, fmt.Errorf("%w: toggle_key: %v", ErrInvalidConfig, err)
	}
	if s.StepNegativeKey, err = ParseKey(c.Controls.StepNegativeKey); err != nil {
		return s, fmt.Errorf("%w: yaw_step_negative_key: %v", ErrInvalidConfig, err)
	}
	if s.StepPositiveKey, err = ParseKey(c.Controls.StepPositiveKey); err != nil {
		return s, fmt.Errorf("%w: yaw_step_positive_key: %v", ErrInvalidConfig, err)
	}
	if s.ToggleKey == s.StepNegativeKey || s.ToggleKey == s.StepPositiveKey || s.StepNegativeKey == s.StepPositiveKey {
		return s, fmt.Errorf("%w: control keys must be distinct", ErrInvalidConfig)
	}
	if len(c.Controls.MouseSensitivity) != 2 {
		return s, fmt.Errorf("%w: mouse_sensitivity needs 2 components", ErrInvalidConfig)
	}
	s.MouseSensitivity = mgl32.Vec2{c.Controls.MouseSensitivity[0], c.Controls.MouseSensitivity[1]}

	return s, nil
}

func vec3(v []float32) mgl32.Vec3 {
	var out mgl32.Vec3
	copy(out[:], v)
	return out
}
