package sim

import (
	"github.com/charmbracelet/log"

	"github.com/san-kum/ising/internal/rng"
)

// Option configures a Simulator at construction.
type Option func(*Simulator)

// WithSource injects the random source. It takes precedence over WithSeed.
func WithSource(src rng.Source) Option {
	return func(s *Simulator) { s.src = src }
}

// WithSeed uses a deterministic PCG source seeded with seed.
func WithSeed(seed int64) Option {
	return func(s *Simulator) {
		if s.src == nil {
			s.src = rng.NewPCG(seed)
		}
	}
}

func WithCoupling(j float64) Option {
	return func(s *Simulator) { s.kernel.J = j }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBurstSize sets the number of updates performed per Tick. New rejects
// values below 1.
func WithBurstSize(n int) Option {
	return func(s *Simulator) { s.burstSize = n }
}

// WithTempStep sets the increment used by Increase/DecreaseTemperature.
func WithTempStep(dt float64) Option {
	return func(s *Simulator) {
		if dt > 0 {
			s.tempStep = dt
		}
	}
}
