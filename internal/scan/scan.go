// Package scan runs independent simulators across a temperature range and
// reports the magnetisation each one settles to.
package scan

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/ising/internal/sim"
)

var ErrInvalidScan = errors.New("scan: invalid scan configuration")

type Config struct {
	Width, Height int
	TMin, TMax    float64
	Points        int
	Sweeps        int
	Seed          int64
	Init          string
	// Workers bounds concurrent simulators; zero means one per point.
	Workers int
}

// Point is the reading taken from one simulator after its sweeps.
type Point struct {
	Temperature   float64
	Magnetisation float64
}

func (c Config) validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: lattice %dx%d", ErrInvalidScan, c.Width, c.Height)
	case c.Points < 1:
		return fmt.Errorf("%w: need at least one point", ErrInvalidScan)
	case math.IsNaN(c.TMin) || c.TMin <= 0 || c.TMax < c.TMin:
		return fmt.Errorf("%w: range [%v, %v]", ErrInvalidScan, c.TMin, c.TMax)
	case c.Sweeps < 0:
		return fmt.Errorf("%w: sweeps %d", ErrInvalidScan, c.Sweeps)
	}
	return nil
}

// Temperatures returns Points evenly spaced values from TMin to TMax.
func (c Config) Temperatures() []float64 {
	ts := make([]float64, c.Points)
	if c.Points == 1 {
		ts[0] = c.TMin
		return ts
	}
	step := (c.TMax - c.TMin) / float64(c.Points-1)
	for i := range ts {
		ts[i] = c.TMin + float64(i)*step
	}
	return ts
}

// Run simulates each temperature on its own lattice, seeded Seed+i, and
// returns the absolute magnetisation per temperature in ascending order.
// Each simulator is single-threaded; simulators run concurrently.
func Run(ctx context.Context, cfg Config) ([]Point, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	temps := cfg.Temperatures()
	points := make([]Point, len(temps))

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}

	for i, t := range temps {
		g.Go(func() error {
			m, err := runOne(ctx, cfg, t, cfg.Seed+int64(i))
			if err != nil {
				return fmt.Errorf("scan: T=%.3f: %w", t, err)
			}
			points[i] = Point{Temperature: t, Magnetisation: m}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

func runOne(ctx context.Context, cfg Config, t float64, seed int64) (float64, error) {
	s, err := sim.New(cfg.Width, cfg.Height, t, sim.WithSeed(seed))
	if err != nil {
		return 0, err
	}

	if err := s.Prepare(cfg.Init); err != nil {
		return 0, err
	}

	for i := 0; i < cfg.Sweeps; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if err := s.Sweep(); err != nil {
			return 0, err
		}
	}
	return math.Abs(s.Magnetisation()), nil
}
