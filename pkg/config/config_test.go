package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goarm.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
camera:
  position: [0, 20, 100]
  target: [0, 20, 0]
  fov: 35
gizmo:
  tolerance: 1.5
preview:
  axes: true
log:
  level: debug
pose:
  file: arm.yaml
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	want := Default()
	want.Camera.Position = Vec3{0, 20, 100}
	want.Camera.Target = Vec3{0, 20, 0}
	want.Camera.FOV = 35
	want.Gizmo.Tolerance = 1.5
	want.Preview.Axes = true
	want.Log.Level = "debug"
	want.Pose.File = "arm.yaml"

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad vector", "camera:\n  position: [1, 2]\n", "expected 3 coordinates"},
		{"bad fov", "camera:\n  fov: 190\n", "camera fov"},
		{"zero tolerance", "gizmo:\n  tolerance: -1\n", "gizmo tolerance"},
		{"bad level", "log:\n  level: loud\n", "log level"},
		{"camera on target", "camera:\n  position: [0, 0, 0]\n", "differ from its target"},
		{"broken yaml", "gizmo: [", "error parsing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestVec3MarshalsAsFlowSequence(t *testing.T) {
	out, err := yaml.Marshal(CameraConfig{Position: Vec3{1, 2.5, -3}})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "position: [1, 2.5, -3]") {
		t.Errorf("unexpected encoding:\n%s", out)
	}
}
