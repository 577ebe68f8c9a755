package command

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ising/internal/sim"
)

// Script is a named command sequence together with the lattice it runs on.
type Script struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Width       int      `yaml:"width"`
	Height      int      `yaml:"height"`
	Temperature float64  `yaml:"temperature"`
	Seed        int64    `yaml:"seed"`
	Steps       []string `yaml:"steps"`
}

// LoadScript reads a YAML script and checks that every step parses.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScript(data)
}

func ParseScript(data []byte) (*Script, error) {
	sc := Script{
		Width:       sim.DefaultWidth,
		Height:      sim.DefaultHeight,
		Temperature: sim.DefaultTemperature,
	}
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("command: parse script: %w", err)
	}
	if _, err := sc.Commands(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Commands parses every step, reporting failures with their 1-based step
// number.
func (sc *Script) Commands() ([]Command, error) {
	cmds := make([]Command, 0, len(sc.Steps))
	for i, line := range sc.Steps {
		c, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}

// NewSimulator builds the simulator the script describes. A zero seed leaves
// the source to the supplied options, or to OS seeding.
func (sc *Script) NewSimulator(opts ...sim.Option) (*sim.Simulator, error) {
	if sc.Seed != 0 {
		opts = append([]sim.Option{sim.WithSeed(sc.Seed)}, opts...)
	}
	return sim.New(sc.Width, sc.Height, sc.Temperature, opts...)
}

// Run applies every step to s in order, checking ctx between steps.
func (sc *Script) Run(ctx context.Context, s Sink) error {
	cmds, err := sc.Commands()
	if err != nil {
		return err
	}
	for i, c := range cmds {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := Apply(s, c); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, c, err)
		}
	}
	return nil
}
