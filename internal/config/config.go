// Package config handles application configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/shadergrid/internal/layout"
	"github.com/Faultbox/shadergrid/internal/scene"
	"github.com/Faultbox/shadergrid/pkg/math"
)

// Config holds all application settings.
type Config struct {
	Graphics    GraphicsConfig   `yaml:"graphics"`
	Layout      LayoutConfig     `yaml:"layout"`
	Scene       SceneConfig      `yaml:"scene"`
	Camera      CameraConfig     `yaml:"camera"`
	Logging     LoggingConfig    `yaml:"logging"`
	Screenshots ScreenshotConfig `yaml:"screenshots"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	ClearColor [4]float32 `yaml:"clear_color,flow"`
	Font       string     `yaml:"font"` // optional TTF for the panel
}

// LayoutConfig holds the grid placement constants.
type LayoutConfig struct {
	MeshWidth       float32 `yaml:"mesh_width"`
	MeshHeight      float32 `yaml:"mesh_height"`
	Spacing         float32 `yaml:"spacing"`
	MaxPerRow       int     `yaml:"max_per_row"`
	VerticalSpacing float32 `yaml:"vertical_spacing"`
	VerticalPolicy  string  `yaml:"vertical_policy"` // "stack" or "center"
}

// SceneConfig selects what is rendered.
type SceneConfig struct {
	File        string  `yaml:"file"`    // scene YAML; empty uses the built-in table
	Texture     string  `yaml:"texture"` // shared uTexture image
	TimeStagger float32 `yaml:"time_stagger"`
	Seed        int64   `yaml:"seed"` // 0 seeds from the clock
	Panel       bool    `yaml:"panel"`
}

// CameraConfig holds the perspective camera settings.
type CameraConfig struct {
	FovY     float32    `yaml:"fov"`
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position [3]float32 `yaml:"position,flow"`
	Damping  float32    `yaml:"damping"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			ClearColor: [4]float32{0, 0, 0, 1},
		},
		Layout: LayoutConfig{
			MeshWidth:       1,
			MeshHeight:      1,
			Spacing:         0.1,
			MaxPerRow:       2,
			VerticalSpacing: 0.1,
			VerticalPolicy:  "center",
		},
		Scene: SceneConfig{
			Texture:     "static/textures/dk_bg.jpg",
			TimeStagger: scene.DefaultStagger,
			Panel:       true,
		},
		Camera: CameraConfig{
			FovY:     75,
			Near:     0.1,
			Far:      100,
			Position: [3]float32{0.25, -0.25, 1},
			Damping:  0.05,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Screenshots: ScreenshotConfig{
			Dir: "screenshots",
		},
	}
}

// Grid converts the layout section into a layout.Grid.
func (c *Config) Grid() (layout.Grid, error) {
	policy, err := layout.ParsePolicy(c.Layout.VerticalPolicy)
	if err != nil {
		return layout.Grid{}, fmt.Errorf("layout.vertical_policy: %w", err)
	}
	g := layout.Grid{
		MeshWidth:       c.Layout.MeshWidth,
		MeshHeight:      c.Layout.MeshHeight,
		Spacing:         c.Layout.Spacing,
		VerticalSpacing: c.Layout.VerticalSpacing,
		MaxPerRow:       c.Layout.MaxPerRow,
		Policy:          policy,
	}
	return g, nil
}

// CameraPosition returns the configured start position.
func (c *Config) CameraPosition() math.Vec3 {
	p := c.Camera.Position
	return math.Vec3{X: p[0], Y: p[1], Z: p[2]}
}
