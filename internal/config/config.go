package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ising/internal/sim"
)

const (
	DefaultWidth       = 80
	DefaultHeight      = 80
	DefaultTemperature = 2.40
	DefaultCoupling    = 1.0
	DefaultSweeps      = 100
	DefaultBurst       = 10000
	DefaultTempStep    = 0.05
)

// Initial lattice configurations.
const (
	InitDown   = sim.InitDown
	InitUp     = sim.InitUp
	InitRandom = sim.InitRandom
)

var (
	ErrInvalidConfig = errors.New("config: invalid configuration")
	ErrUnknownPreset = errors.New("config: unknown preset")
)

type Config struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Temperature float64 `yaml:"temperature"`
	Coupling    float64 `yaml:"coupling"`
	Seed        int64   `yaml:"seed"`
	Sweeps      int     `yaml:"sweeps"`
	Burst       int     `yaml:"burst"`
	TempStep    float64 `yaml:"temp_step"`
	Init        string  `yaml:"init"`
	Format      string  `yaml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Temperature: DefaultTemperature,
		Coupling:    DefaultCoupling,
		Sweeps:      DefaultSweeps,
		Burst:       DefaultBurst,
		TempStep:    DefaultTempStep,
		Init:        InitDown,
		Format:      "text",
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	return LoadInto(path, DefaultConfig())
}

// LoadInto reads a YAML file over a copy of base. Fields absent from the
// file keep their base values; base itself is not modified.
func LoadInto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: lattice must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case math.IsNaN(c.Temperature) || c.Temperature <= 0:
		return fmt.Errorf("%w: temperature must be positive, got %v", ErrInvalidConfig, c.Temperature)
	case c.Sweeps < 0:
		return fmt.Errorf("%w: sweeps must not be negative, got %d", ErrInvalidConfig, c.Sweeps)
	case c.Burst < 1:
		return fmt.Errorf("%w: burst must be positive, got %d", ErrInvalidConfig, c.Burst)
	case c.TempStep <= 0:
		return fmt.Errorf("%w: temp_step must be positive, got %v", ErrInvalidConfig, c.TempStep)
	}
	switch c.Init {
	case InitDown, InitUp, InitRandom:
	default:
		return fmt.Errorf("%w: init must be down, up or random, got %q", ErrInvalidConfig, c.Init)
	}
	return nil
}

// Updates returns the number of single-site updates for the configured
// sweeps, W·H per sweep.
func (c *Config) Updates() int {
	return c.Sweeps * c.Width * c.Height
}
