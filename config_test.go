package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Window.TPS != DefaultTPS || cfg.Camera.Angle != DefaultCameraAngle {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := `
window:
  width: 640
  tps: 30
camera:
  angle: 45
  zoom_factor: 4
macro: demo.star
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Window.Width != 640 || cfg.Window.Height != DefaultWindowHeight {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Window.TPS != 30 || cfg.Camera.Angle != 45 || cfg.Camera.ZoomFactor != 4 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Camera.ScrollFactor != 1.5 {
		t.Errorf("scroll factor = %f, want default 1.5", cfg.Camera.ScrollFactor)
	}
	if cfg.Macro != "demo.star" {
		t.Errorf("macro = %q", cfg.Macro)
	}
	if len(cfg.StoreOptions()) != 3 {
		t.Error("StoreOptions should carry angle, scroll and zoom")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name, data, want string
	}{
		{"angle", "camera:\n  angle: 90\n", "camera angle"},
		{"tps", "window:\n  tps: 0\n", "tps"},
		{"syntax", "window: [", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cfg.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadConfig(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadConfig error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("TREECANVAS_CONFIG", "/tmp/custom.yaml")
	t.Setenv("TREECANVAS_DEBUG", "true")
	env, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if env.ConfigPath != "/tmp/custom.yaml" || !env.Debug {
		t.Errorf("env = %+v", env)
	}
}
