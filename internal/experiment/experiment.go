// Package experiment runs a configured simulator for a fixed number of
// sweeps.
package experiment

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/san-kum/ising/internal/config"
	"github.com/san-kum/ising/internal/lattice"
	"github.com/san-kum/ising/internal/rng"
	"github.com/san-kum/ising/internal/sim"
)

type Experiment struct {
	cfg       config.Config
	seed      int64
	simulator *sim.Simulator
	logger    *log.Logger
}

// Result is the state reached by a finished run.
type Result struct {
	Final         []lattice.Spin
	Updates       uint64
	Magnetisation float64
}

// New validates cfg and prepares a simulator in its initial state. A zero
// seed draws one from the operating system; Seed reports the value used.
func New(cfg *config.Config, logger *log.Logger) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	src := rng.NewPCG(cfg.Seed)
	if cfg.Seed == 0 {
		var err error
		if src, err = rng.NewRandom(); err != nil {
			return nil, err
		}
	}

	s, err := sim.New(cfg.Width, cfg.Height, cfg.Temperature,
		sim.WithSource(src),
		sim.WithCoupling(cfg.Coupling),
		sim.WithBurstSize(cfg.Burst),
		sim.WithTempStep(cfg.TempStep),
		sim.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	if err := s.Prepare(cfg.Init); err != nil {
		return nil, err
	}

	return &Experiment{
		cfg:       *cfg,
		seed:      src.Seed(),
		simulator: s,
		logger:    logger,
	}, nil
}

func (e *Experiment) Seed() int64 { return e.seed }

// Simulator returns the underlying simulator.
func (e *Experiment) Simulator() *sim.Simulator { return e.simulator }

// Run performs the configured sweeps, checking ctx between sweeps.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if !e.simulator.IsRunning() {
		return nil, fmt.Errorf("experiment: simulator is stopped")
	}

	for sweep := 0; sweep < e.cfg.Sweeps; sweep++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := e.simulator.Sweep(); err != nil {
			return nil, err
		}
	}

	e.logger.Info("run complete", "sweeps", e.cfg.Sweeps, "updates", e.simulator.Steps())
	return &Result{
		Final:         e.simulator.Snapshot(),
		Updates:       e.simulator.Steps(),
		Magnetisation: e.simulator.Magnetisation(),
	}, nil
}
