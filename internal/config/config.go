package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultThinStep    = 5000
	DefaultIntervalMs  = 20
	DefaultPadFraction = 0.2
	DefaultTheme       = "deepspace"
)

// Config holds playback options for one animation session.
type Config struct {
	CSVPath      string    `yaml:"csv_path"`
	ThinStep     int       `yaml:"thin_step"`
	IntervalMs   int       `yaml:"interval_ms"`
	Repeat       bool      `yaml:"repeat"`
	ShowOrbits   bool      `yaml:"show_orbits"`
	PadFraction  float64   `yaml:"pad_fraction"`
	OrbitRadiiAU []float64 `yaml:"orbit_radii_au"`
	Theme        string    `yaml:"theme"`
	Title        string    `yaml:"title"`
}

func DefaultConfig() *Config {
	return &Config{
		ThinStep:     DefaultThinStep,
		IntervalMs:   DefaultIntervalMs,
		ShowOrbits:   true,
		PadFraction:  DefaultPadFraction,
		OrbitRadiiAU: []float64{1.0, 1.52},
		Theme:        DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Normalize clamps out-of-range values to usable defaults.
func (c *Config) Normalize() {
	if c.ThinStep < 1 {
		c.ThinStep = 1
	}
	if c.IntervalMs < 1 {
		c.IntervalMs = DefaultIntervalMs
	}
	if c.PadFraction < 0 {
		c.PadFraction = DefaultPadFraction
	}
	if len(c.OrbitRadiiAU) == 0 {
		c.OrbitRadiiAU = []float64{1.0, 1.52}
	}
}
