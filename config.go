package main

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"tree-canvas/canvas"
	"tree-canvas/input"
)

const (
	// --- Window ---
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 768
	DefaultWindowTitle  = "Tree Canvas"
	DefaultTPS          = 60

	// --- Camera ---
	DefaultCameraAngle = 30.0 // degrees

	// --- Boards ---
	BoardLineWidth   = 20.0
	BoardWidth       = 270.0
	BoardHeight      = 270.0
	BoardXSpacing    = 330.0
	BoardYSpacing    = 330.0
	BoardXCenter     = BoardWidth / 2
	BoardNextXCenter = BoardXSpacing + BoardXCenter
	BoardYCenter     = BoardHeight / 2
	BoardMargin      = 4.0
	BoardOutline     = 4.0
	SquareSize       = 64.0
	SquareGap        = 2.0
	SquareCorner     = 8.0

	// --- Grid & Background ---
	GridSize       = 50.0
	GridMinSpacing = 8.0
)

var (
	// --- Colors ---
	ColorBackground  = color.RGBA{3, 7, 18, 255}
	ColorGrid        = color.RGBA{255, 255, 255, 12}
	ColorOriginCross = color.RGBA{255, 100, 100, 150}
	ColorBoard       = color.RGBA{255, 255, 255, 255}
	ColorSquare      = color.RGBA{17, 24, 39, 255}
	ColorSquareHover = color.RGBA{31, 41, 55, 255}
	ColorLink        = color.RGBA{255, 255, 255, 255}
	ColorX           = color.RGBA{239, 68, 68, 255}
	ColorO           = color.RGBA{59, 130, 246, 255}
)

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

type CameraConfig struct {
	Angle        float64 `yaml:"angle"`
	ScrollFactor float64 `yaml:"scroll_factor"`
	ZoomFactor   float64 `yaml:"zoom_factor"`
}

type InputConfig struct {
	WheelLineHeight float64 `yaml:"wheel_line_height"`
	ScrollStep      float64 `yaml:"scroll_step"`
}

// Config is the YAML configuration file.
type Config struct {
	Window   WindowConfig `yaml:"window"`
	Camera   CameraConfig `yaml:"camera"`
	Input    InputConfig  `yaml:"input"`
	Font     string       `yaml:"font"`
	Macro    string       `yaml:"macro"`
	Snapshot string       `yaml:"snapshot"`
}

// Env holds settings taken from TREECANVAS_* environment variables.
type Env struct {
	ConfigPath string `envconfig:"CONFIG" default:"tree-canvas.yaml"`
	Debug      bool   `envconfig:"DEBUG" default:"false"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  DefaultWindowTitle,
			TPS:    DefaultTPS,
		},
		Camera: CameraConfig{
			Angle:        DefaultCameraAngle,
			ScrollFactor: canvas.DefaultScrollFactor,
			ZoomFactor:   canvas.DefaultZoomFactor,
		},
		Input: InputConfig{
			WheelLineHeight: input.DefaultLineHeight,
			ScrollStep:      input.DefaultScrollStep,
		},
		Font:     "fonts/Roboto-Regular.ttf",
		Macro:    "macro.star",
		Snapshot: "boards.yaml",
	}
}

func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process("treecanvas", &env); err != nil {
		return Env{}, fmt.Errorf("load env: %w", err)
	}
	return env, nil
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("tps %d must be positive", c.Window.TPS)
	case c.Camera.Angle <= 0 || c.Camera.Angle >= 90:
		return fmt.Errorf("camera angle %g must be between 0 and 90 degrees", c.Camera.Angle)
	case c.Camera.ScrollFactor <= 0 || c.Camera.ZoomFactor <= 0:
		return errors.New("camera scroll and zoom factors must be positive")
	case c.Input.WheelLineHeight <= 0:
		return errors.New("wheel line height must be positive")
	}
	return nil
}

// StoreOptions returns the camera settings as canvas options.
func (c Config) StoreOptions() []canvas.Option {
	return []canvas.Option{
		canvas.WithAngle(canvas.Radians(c.Camera.Angle)),
		canvas.WithScrollFactor(c.Camera.ScrollFactor),
		canvas.WithZoomFactor(c.Camera.ZoomFactor),
	}
}
