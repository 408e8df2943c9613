package config

import "flag"

var (
	flagConfig         = flag.String("config", "", "Path to config file")
	flagDebug          = flag.Bool("debug", false, "Enable debug logging")
	flagRenderDistance = flag.Int("render-distance", 0, "Streaming radius in columns")
	flagMaxUploads     = flag.Int("max-uploads", 0, "Mesh uploads per frame")
	flagSeed           = flag.Int64("seed", 0, "Terrain seed")
	flagTerrain        = flag.String("terrain", "", "Terrain kind: noise, flat or slope")
	flagWindowed       = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen     = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth          = flag.Int("width", 0, "Window width")
	flagHeight         = flag.Int("height", 0, "Window height")
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
	if *flagRenderDistance > 0 {
		cfg.World.RenderDistance = *flagRenderDistance
	}
	if *flagMaxUploads > 0 {
		cfg.World.MaxUploadsPerFrame = *flagMaxUploads
	}
	if *flagSeed != 0 {
		cfg.World.Seed = *flagSeed
	}
	if *flagTerrain != "" {
		cfg.World.Terrain = *flagTerrain
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
}
