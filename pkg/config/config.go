package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/philipparndt/goarm/pkg/geometry"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the editor configuration
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Gizmo   GizmoConfig   `yaml:"gizmo"`
	Preview PreviewConfig `yaml:"preview"`
	Log     LogConfig     `yaml:"log"`
	Pose    PoseConfig    `yaml:"pose"`
}

// WindowConfig holds host window settings
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

// CameraConfig holds the initial camera
type CameraConfig struct {
	Position Vec3    `yaml:"position"`
	Target   Vec3    `yaml:"target"`
	FOV      float64 `yaml:"fov"`
	Near     float64 `yaml:"near"`
	Far      float64 `yaml:"far"`
}

// GizmoConfig holds translate gizmo settings
type GizmoConfig struct {
	Scale     float64 `yaml:"scale"`
	Tolerance float64 `yaml:"tolerance"`
}

// PreviewConfig holds the scene helper toggles
type PreviewConfig struct {
	Grid bool `yaml:"grid"`
	Axes bool `yaml:"axes"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// PoseConfig selects the pose file. Empty means the built-in seed pose.
type PoseConfig struct {
	File  string `yaml:"file"`
	Watch bool   `yaml:"watch"`
}

// Vec3 is a point written as a [x, y, z] sequence
type Vec3 struct {
	X, Y, Z float64
}

// Vector3 converts to the geometry type
func (v Vec3) Vector3() geometry.Vector3 {
	return geometry.NewVector3(v.X, v.Y, v.Z)
}

// UnmarshalYAML implements yaml.Unmarshaler
func (v *Vec3) UnmarshalYAML(node *yaml.Node) error {
	var xyz []float64
	if err := node.Decode(&xyz); err != nil {
		return fmt.Errorf("line %d: expected [x, y, z]: %w", node.Line, err)
	}
	if len(xyz) != 3 {
		return fmt.Errorf("line %d: expected 3 coordinates, got %d", node.Line, len(xyz))
	}
	v.X, v.Y, v.Z = xyz[0], xyz[1], xyz[2]
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (v Vec3) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range []float64{v.X, v.Y, v.Z} {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: fmt.Sprintf("%g", c),
		})
	}
	return node, nil
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			Title:  "goarm",
			FPS:    60,
		},
		Camera: CameraConfig{
			Position: Vec3{80, 80, 80},
			FOV:      50,
			Near:     0.1,
			Far:      2000,
		},
		Gizmo: GizmoConfig{
			Scale:     10,
			Tolerance: 2,
		},
		Preview: PreviewConfig{
			Grid: true,
		},
		Log: LogConfig{
			Level: "info",
		},
		Pose: PoseConfig{
			Watch: true,
		},
	}
}

// LoadConfig reads path on top of the defaults and validates the result
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file '%s': %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	var problems []string

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		problems = append(problems, fmt.Sprintf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.FPS < 0 {
		problems = append(problems, fmt.Sprintf("window fps %d must not be negative", c.Window.FPS))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		problems = append(problems, fmt.Sprintf("camera fov %g must be between 0 and 180 degrees", c.Camera.FOV))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		problems = append(problems, fmt.Sprintf("camera clip range %g..%g is invalid", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.Position == c.Camera.Target {
		problems = append(problems, "camera position must differ from its target")
	}
	if c.Gizmo.Scale <= 0 {
		problems = append(problems, fmt.Sprintf("gizmo scale %g must be positive", c.Gizmo.Scale))
	}
	if c.Gizmo.Tolerance <= 0 {
		problems = append(problems, fmt.Sprintf("gizmo tolerance %g must be positive", c.Gizmo.Tolerance))
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, fmt.Sprintf("log level: %v", err))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}
