package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "ShaderGrid")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "ShaderGrid")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "shadergrid")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "shadergrid")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	before := cfg.Scene
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	// Scene paths set by a config file are relative to the file.
	base := filepath.Dir(path)
	if cfg.Scene.File != before.File {
		cfg.Scene.File = resolvePath(base, cfg.Scene.File)
	}
	if cfg.Scene.Texture != before.Texture {
		cfg.Scene.Texture = resolvePath(base, cfg.Scene.Texture)
	}
	return nil
}

func resolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) || base == "." {
		return p
	}
	return filepath.Join(base, p)
}

// Validate checks settings that have no usable fallback.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: size must be positive, got %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if _, err := c.Grid(); err != nil {
		return err
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera: need 0 < near < far, got near=%g far=%g", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		return fmt.Errorf("camera: fov must be in (0, 180), got %g", c.Camera.FovY)
	}
	if c.Camera.Damping < 0 || c.Camera.Damping > 1 {
		return fmt.Errorf("camera: damping must be in [0, 1], got %g", c.Camera.Damping)
	}
	return nil
}
