// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/Faultbox/voxelstream/internal/engine/terrain"
	"github.com/Faultbox/voxelstream/internal/game/world"
)

// Config holds all settings.
type Config struct {
	World    WorldConfig    `yaml:"world"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WorldConfig holds streaming and terrain settings.
type WorldConfig struct {
	RenderDistance     int           `yaml:"render_distance"`
	MaxUploadsPerFrame int           `yaml:"max_uploads_per_frame"`
	SweepDelay         time.Duration `yaml:"sweep_delay"`
	EvictionMargin     int           `yaml:"eviction_margin"`
	Terrain            string        `yaml:"terrain"`
	Seed               int64         `yaml:"seed"`
	Workers            WorkerConfig  `yaml:"workers"`
}

// WorkerConfig sizes the background pools.
type WorkerConfig struct {
	Generate     int `yaml:"generate"`
	Mesh         int `yaml:"mesh"`
	Housekeeping int `yaml:"housekeeping"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOV        float32 `yaml:"fov"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			RenderDistance:     12,
			MaxUploadsPerFrame: 10,
			SweepDelay:         50 * time.Millisecond,
			EvictionMargin:     2,
			Terrain:            terrain.KindNoise,
			Seed:               1337,
			Workers: WorkerConfig{
				Generate:     1,
				Mesh:         1,
				Housekeeping: 1,
			},
		},
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FOV:        70,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.World.RenderDistance < 1 {
		errs = append(errs, fmt.Errorf("world.render_distance must be >= 1, got %d", c.World.RenderDistance))
	}
	if c.World.MaxUploadsPerFrame < 1 {
		errs = append(errs, fmt.Errorf("world.max_uploads_per_frame must be >= 1, got %d", c.World.MaxUploadsPerFrame))
	}
	if c.World.SweepDelay < 0 {
		errs = append(errs, fmt.Errorf("world.sweep_delay must not be negative, got %v", c.World.SweepDelay))
	}
	if c.World.EvictionMargin < 0 {
		errs = append(errs, fmt.Errorf("world.eviction_margin must not be negative, got %d", c.World.EvictionMargin))
	}
	if _, err := terrain.New(c.World.Terrain, c.World.Seed); err != nil {
		errs = append(errs, fmt.Errorf("world.terrain: %w", err))
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics size %dx%d is invalid", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.FOV <= 0 || c.Graphics.FOV >= 180 {
		errs = append(errs, fmt.Errorf("graphics.fov must be in (0, 180), got %v", c.Graphics.FOV))
	}
	return multierr.Combine(errs...)
}

// Streaming converts the world section into scheduler settings.
func (w WorldConfig) Streaming() world.Config {
	return world.Config{
		RenderDistance:      w.RenderDistance,
		MaxUploadsPerFrame:  w.MaxUploadsPerFrame,
		SweepDelay:          w.SweepDelay,
		EvictionMargin:      w.EvictionMargin,
		GenerateWorkers:     w.Workers.Generate,
		MeshWorkers:         w.Workers.Mesh,
		HousekeepingWorkers: w.Workers.Housekeeping,
	}
}
