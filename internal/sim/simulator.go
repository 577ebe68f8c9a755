package sim

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/san-kum/ising/internal/lattice"
	"github.com/san-kum/ising/internal/metropolis"
	"github.com/san-kum/ising/internal/rng"
)

const (
	DefaultWidth       = 80
	DefaultHeight      = 80
	DefaultTemperature = 2.40
	DefaultBurstSize   = 10000
	DefaultTempStep    = 0.05

	InitDown   = "down"
	InitUp     = "up"
	InitRandom = "random"

	// TMin is the floor applied by SetTemperature and AdjustTemperature.
	TMin = 1e-3
)

type Simulator struct {
	lat         *lattice.Lattice
	kernel      metropolis.Kernel
	src         rng.Source
	temperature float64
	beta        float64
	running     bool
	burstSize   int
	tempStep    float64
	steps       uint64
	logger      *log.Logger
}

// New creates a running simulator with every spin Down. Without WithSeed or
// WithSource the random source is seeded from the operating system.
func New(w, h int, temperature float64, opts ...Option) (*Simulator, error) {
	if math.IsNaN(temperature) || temperature <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidTemperature, temperature)
	}

	lat, err := lattice.New(w, h)
	if err != nil {
		return nil, err
	}

	s := &Simulator{
		lat:         lat,
		kernel:      metropolis.New(metropolis.DefaultCoupling),
		temperature: temperature,
		beta:        1 / temperature,
		running:     true,
		burstSize:   DefaultBurstSize,
		tempStep:    DefaultTempStep,
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.burstSize < 1 {
		return nil, fmt.Errorf("%w: tick burst size %d", ErrInvalidBurst, s.burstSize)
	}

	if s.src == nil {
		src, err := rng.NewRandom()
		if err != nil {
			return nil, err
		}
		s.src = src
	}

	return s, nil
}

// Randomise sets each spin Up with probability 1/2, in row-major order.
func (s *Simulator) Randomise() {
	for i := 0; i < s.lat.Len(); i++ {
		if s.src.Bool() {
			s.lat.SetIndex(i, lattice.Up)
		} else {
			s.lat.SetIndex(i, lattice.Down)
		}
	}
	s.logger.Info("randomise", "magnetisation", s.lat.Magnetisation())
}

// Clear sets every spin Down.
func (s *Simulator) Clear() {
	s.lat.Fill(lattice.Down)
	s.logger.Info("clear")
}

// Fill sets every spin to sp.
func (s *Simulator) Fill(sp lattice.Spin) {
	s.lat.Fill(sp)
	s.logger.Info("fill", "spin", sp)
}

// Prepare sets the initial configuration: InitDown, InitUp or InitRandom.
func (s *Simulator) Prepare(mode string) error {
	switch mode {
	case InitDown, "":
		s.Clear()
	case InitUp:
		s.Fill(lattice.Up)
	case InitRandom:
		s.Randomise()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownInit, mode)
	}
	return nil
}

// Toggle flips the spin at flat row-major index idx.
func (s *Simulator) Toggle(idx int) error {
	return s.lat.ToggleIndex(idx)
}

// SetTemperature updates T, clamping it to TMin, and refreshes β.
func (s *Simulator) SetTemperature(t float64) error {
	if math.IsNaN(t) {
		return fmt.Errorf("%w: got NaN", ErrInvalidTemperature)
	}
	if t < TMin {
		s.logger.Warn("temperature clamped", "requested", t, "temperature", TMin)
		t = TMin
	}
	s.temperature = t
	s.beta = 1 / t
	s.logger.Info("temperature", "temperature", s.temperature, "beta", s.beta)
	return nil
}

// AdjustTemperature shifts T by delta.
func (s *Simulator) AdjustTemperature(delta float64) error {
	return s.SetTemperature(s.temperature + delta)
}

func (s *Simulator) IncreaseTemperature() error { return s.AdjustTemperature(s.tempStep) }
func (s *Simulator) DecreaseTemperature() error { return s.AdjustTemperature(-s.tempStep) }

func (s *Simulator) Start() {
	s.running = true
	s.logger.Info("start")
}

func (s *Simulator) Stop() {
	s.running = false
	s.logger.Info("stop")
}

// Step performs one Metropolis update regardless of the running state.
func (s *Simulator) Step() {
	s.kernel.Step(s.lat, s.beta, s.src)
	s.steps++
}

// Burst performs n updates. It does nothing while the simulator is stopped.
func (s *Simulator) Burst(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBurst, n)
	}
	if !s.running {
		return nil
	}
	for i := 0; i < n; i++ {
		s.kernel.Step(s.lat, s.beta, s.src)
	}
	s.steps += uint64(n)
	s.logger.Debug("burst", "updates", n, "temperature", s.temperature)
	return nil
}

// Sweep performs W·H updates, subject to the running state.
func (s *Simulator) Sweep() error { return s.Burst(s.lat.Len()) }

// Tick is the host's per-frame entry point: one burst of the configured size.
func (s *Simulator) Tick() error { return s.Burst(s.burstSize) }

// Snapshot returns a copy of the spins in row-major order.
func (s *Simulator) Snapshot() []lattice.Spin { return s.lat.Cells() }

func (s *Simulator) Dimensions() (w, h int) { return s.lat.Width(), s.lat.Height() }

func (s *Simulator) Temperature() float64 { return s.temperature }
func (s *Simulator) Beta() float64        { return s.beta }
func (s *Simulator) Coupling() float64    { return s.kernel.J }
func (s *Simulator) IsRunning() bool      { return s.running }
func (s *Simulator) BurstSize() int       { return s.burstSize }
func (s *Simulator) TempStep() float64    { return s.tempStep }

// Steps returns the number of single-site updates performed so far.
func (s *Simulator) Steps() uint64 { return s.steps }

// Magnetisation returns Σσ/N for the current lattice.
func (s *Simulator) Magnetisation() float64 { return s.lat.Magnetisation() }
