package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/viper"
)

// ErrInvalid is returned when a loaded configuration cannot drive a
// simulation.
var ErrInvalid = errors.New("invalid config")

// Vec is a 2D vector as written in config files.
type Vec struct {
	X float64 `json:"x" mapstructure:"x"`
	Y float64 `json:"y" mapstructure:"y"`
}

// Grid describes a lattice body. X and Y place its top-left point.
type Grid struct {
	Cols int     `json:"cols" mapstructure:"cols"`
	Rows int     `json:"rows" mapstructure:"rows"`
	Step float64 `json:"step" mapstructure:"step"`
	X    float64 `json:"x" mapstructure:"x"`
	Y    float64 `json:"y" mapstructure:"y"`
}

// Ring describes a regular n-gon body centred on X, Y.
type Ring struct {
	Points int     `json:"points" mapstructure:"points"`
	Radius float64 `json:"radius" mapstructure:"radius"`
	X      float64 `json:"x" mapstructure:"x"`
	Y      float64 `json:"y" mapstructure:"y"`
}

// Obstacle is a static quadrilateral.
type Obstacle struct {
	Corners []Vec `json:"corners" mapstructure:"corners"`
}

// Scene lists the bodies of a simulation. Walls frame a Width×Height box
// when WallThickness is positive.
type Scene struct {
	Width         float64    `json:"width" mapstructure:"width"`
	Height        float64    `json:"height" mapstructure:"height"`
	WallThickness float64    `json:"wallThickness" mapstructure:"wallThickness"`
	Obstacles     []Obstacle `json:"obstacles" mapstructure:"obstacles"`
	Grids         []Grid     `json:"grids" mapstructure:"grids"`
	Rings         []Ring     `json:"rings" mapstructure:"rings"`
}

// Drag moves a pointer from From by Delta every tick for Ticks ticks,
// starting at StartTick, as a mouse held down would.
type Drag struct {
	Enabled   bool `json:"enabled" mapstructure:"enabled"`
	StartTick int  `json:"startTick" mapstructure:"startTick"`
	Ticks     int  `json:"ticks" mapstructure:"ticks"`
	From      Vec  `json:"from" mapstructure:"from"`
	Delta     Vec  `json:"delta" mapstructure:"delta"`
}

// Config holds every setting of the host program.
type Config struct {
	LogLevel    string  `json:"logLevel" mapstructure:"logLevel"`
	LogFormat   string  `json:"logFormat" mapstructure:"logFormat"`
	DT          float64 `json:"dt" mapstructure:"dt"`
	MaxDT       float64 `json:"maxDt" mapstructure:"maxDt"`
	SubstepDT   float64 `json:"substepDt" mapstructure:"substepDt"`
	Ticks       int     `json:"ticks" mapstructure:"ticks"`
	ReportEvery int     `json:"reportEvery" mapstructure:"reportEvery"`
	Gravity     Vec     `json:"gravity" mapstructure:"gravity"`
	Scene       Scene   `json:"scene" mapstructure:"scene"`
	Drag        Drag    `json:"drag" mapstructure:"drag"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFormat", "console")

	v.SetDefault("dt", 0.016)
	v.SetDefault("maxDt", 0.016)
	v.SetDefault("substepDt", 0.002)
	v.SetDefault("ticks", 600)
	v.SetDefault("reportEvery", 60)

	v.SetDefault("gravity.x", 0.0)
	v.SetDefault("gravity.y", 9.81)

	v.SetDefault("scene.width", 1000.0)
	v.SetDefault("scene.height", 500.0)
	v.SetDefault("scene.wallThickness", 40.0)
	v.SetDefault("scene.obstacles", []map[string]any{
		{"corners": []map[string]any{
			{"x": 40.0, "y": 460.0},
			{"x": 230.0, "y": 460.0},
			{"x": 230.0, "y": 350.0},
			{"x": 40.0, "y": 300.0},
		}},
	})
	v.SetDefault("scene.grids", []map[string]any{
		{"cols": 10, "rows": 10, "step": 10.0, "x": 300.0, "y": 50.0},
		{"cols": 10, "rows": 10, "step": 10.0, "x": 100.0, "y": 50.0},
	})
	v.SetDefault("scene.rings", []map[string]any{
		{"points": 20, "radius": 50.0, "x": 400.0, "y": 200.0},
		{"points": 20, "radius": 50.0, "x": 420.0, "y": 400.0},
	})

	v.SetDefault("drag.enabled", false)
	v.SetDefault("drag.startTick", 0)
	v.SetDefault("drag.ticks", 0)
}

// Load reads the configuration file at path over the defaults. An empty path
// loads the defaults alone, which describe the reference scene.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values a simulation cannot run without.
func (c *Config) Validate() error {
	switch {
	case c.DT <= 0:
		return fmt.Errorf("%w: dt must be positive, got %v", ErrInvalid, c.DT)
	case c.MaxDT <= 0:
		return fmt.Errorf("%w: maxDt must be positive, got %v", ErrInvalid, c.MaxDT)
	case c.SubstepDT <= 0:
		return fmt.Errorf("%w: substepDt must be positive, got %v", ErrInvalid, c.SubstepDT)
	case c.Ticks < 0:
		return fmt.Errorf("%w: ticks must not be negative, got %d", ErrInvalid, c.Ticks)
	case c.ReportEvery < 0:
		return fmt.Errorf("%w: reportEvery must not be negative, got %d", ErrInvalid, c.ReportEvery)
	}
	for i, o := range c.Scene.Obstacles {
		if len(o.Corners) != 4 {
			return fmt.Errorf("%w: obstacle %d has %d corners, want 4", ErrInvalid, i, len(o.Corners))
		}
	}
	return nil
}

// ClampDT limits dt to [0, MaxDT], as a host loop feeding frame times would.
func (c *Config) ClampDT(dt float64) float64 {
	return min(max(dt, 0), c.MaxDT)
}

// Substeps splits a frame of length dt into n equal steps no longer than
// SubstepDT. Spring damping diverges once 4·damping·inverseMass·dt passes 2.
func (c *Config) Substeps(dt float64) (n int, step float64) {
	if dt <= 0 {
		return 1, 0
	}
	if c.SubstepDT <= 0 {
		return 1, dt
	}
	n = max(int(math.Ceil(dt/c.SubstepDT-1e-9)), 1)
	return n, dt / float64(n)
}
