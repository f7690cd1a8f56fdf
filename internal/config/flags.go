package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagScene      = flag.String("scene", "", "Path to a scene file (default: built-in table)")
	flagTexture    = flag.String("texture", "", "Path to the shared texture")
	flagLayout     = flag.String("layout", "", "Vertical row policy: stack or center")
	flagNoPanel    = flag.Bool("no-panel", false, "Run without the parameter panel")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagSeed       = flag.Int64("seed", 0, "Seed for random vertex attributes (0: from clock)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagScene != "" {
		cfg.Scene.File = *flagScene
	}
	if *flagTexture != "" {
		cfg.Scene.Texture = *flagTexture
	}
	if *flagLayout != "" {
		cfg.Layout.VerticalPolicy = *flagLayout
	}
	if *flagNoPanel {
		cfg.Scene.Panel = false
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagSeed != 0 {
		cfg.Scene.Seed = *flagSeed
	}
}
