package sim_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ising/internal/lattice"
	"github.com/san-kum/ising/internal/render"
	"github.com/san-kum/ising/internal/sim"
)

// scripted replays fixed draws and counts float consumption.
type scripted struct {
	ints   []int
	floats []float64
	floatN int
}

func (s *scripted) Int(lo, hi int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func (s *scripted) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	s.floatN++
	return v
}

func (s *scripted) Bool() bool { return true }

func newSim(w, h int, t float64, opts ...sim.Option) *sim.Simulator {
	s, err := sim.New(w, h, t, opts...)
	Expect(err).NotTo(HaveOccurred())
	return s
}

func allDown(snap []lattice.Spin) bool {
	for _, s := range snap {
		if s != lattice.Down {
			return false
		}
	}
	return true
}

var _ = Describe("Simulator", func() {
	Describe("construction", func() {
		It("starts all Down and running", func() {
			s := newSim(7, 5, sim.DefaultTemperature, sim.WithSeed(1))

			Expect(s.Snapshot()).To(HaveLen(35))
			Expect(allDown(s.Snapshot())).To(BeTrue())
			Expect(s.IsRunning()).To(BeTrue())
			Expect(s.Temperature()).To(Equal(2.40))
			Expect(s.Beta()).To(BeNumerically("~", 1/2.40, 1e-12))
			Expect(s.Coupling()).To(Equal(1.0))

			w, h := s.Dimensions()
			Expect(w).To(Equal(7))
			Expect(h).To(Equal(5))
		})

		It("rejects invalid dimensions", func() {
			_, err := sim.New(0, 4, 2.0)
			Expect(err).To(MatchError(lattice.ErrInvalidSize))
		})

		It("rejects a non-positive temperature", func() {
			for _, t := range []float64{0, -1, math.NaN()} {
				_, err := sim.New(4, 4, t)
				Expect(err).To(MatchError(sim.ErrInvalidTemperature))
			}
		})

		It("seeds itself from the OS when no source is given", func() {
			s := newSim(4, 4, 2.0)
			s.Randomise()
			Expect(s.Snapshot()).To(HaveLen(16))
		})
	})

	Describe("commands", func() {
		var s *sim.Simulator

		BeforeEach(func() {
			s = newSim(4, 4, 2.0, sim.WithSeed(3))
		})

		It("toggle is an involution", func() {
			before := s.Snapshot()
			Expect(s.Toggle(7)).To(Succeed())
			Expect(s.Snapshot()[7]).To(Equal(lattice.Up))
			Expect(s.Toggle(7)).To(Succeed())
			Expect(s.Snapshot()).To(Equal(before))
		})

		It("rejects out-of-range toggles without touching the lattice", func() {
			before := s.Snapshot()
			Expect(s.Toggle(16)).To(MatchError(lattice.ErrIndexOutOfRange))
			Expect(s.Toggle(-1)).To(MatchError(lattice.ErrIndexOutOfRange))
			Expect(s.Snapshot()).To(Equal(before))
		})

		It("clear is idempotent and always yields all Down", func() {
			s.Randomise()
			s.Clear()
			Expect(allDown(s.Snapshot())).To(BeTrue())
			s.Clear()
			Expect(allDown(s.Snapshot())).To(BeTrue())
		})

		It("randomise mixes both spins", func() {
			big := newSim(32, 32, 2.0, sim.WithSeed(9))
			big.Randomise()
			Expect(math.Abs(big.Magnetisation())).To(BeNumerically("<", 0.15))
		})

		It("snapshot is a copy", func() {
			snap := s.Snapshot()
			snap[0] = lattice.Up
			Expect(s.Snapshot()[0]).To(Equal(lattice.Down))
		})

		It("adjusts temperature by the configured step", func() {
			Expect(s.IncreaseTemperature()).To(Succeed())
			Expect(s.Temperature()).To(BeNumerically("~", 2.05, 1e-12))
			Expect(s.DecreaseTemperature()).To(Succeed())
			Expect(s.DecreaseTemperature()).To(Succeed())
			Expect(s.Temperature()).To(BeNumerically("~", 1.95, 1e-12))
			Expect(s.Beta()).To(BeNumerically("~", 1/1.95, 1e-12))
		})

		It("clamps temperature to TMin", func() {
			Expect(s.SetTemperature(-3)).To(Succeed())
			Expect(s.Temperature()).To(Equal(sim.TMin))
			Expect(s.AdjustTemperature(-1)).To(Succeed())
			Expect(s.Temperature()).To(Equal(sim.TMin))
			Expect(s.Beta()).To(Equal(1 / sim.TMin))
		})

		It("rejects a NaN temperature", func() {
			Expect(s.SetTemperature(math.NaN())).To(MatchError(sim.ErrInvalidTemperature))
			Expect(s.Temperature()).To(Equal(2.0))
		})

		It("rejects negative bursts", func() {
			Expect(s.Burst(-1)).To(MatchError(sim.ErrInvalidBurst))
			Expect(s.Steps()).To(BeZero())
		})

		It("rejects a tick burst size below one", func() {
			for _, n := range []int{0, -5} {
				_, err := sim.New(4, 4, 2.0, sim.WithSeed(1), sim.WithBurstSize(n))
				Expect(err).To(MatchError(sim.ErrInvalidBurst))
			}
		})

		It("counts updates", func() {
			s.Step()
			Expect(s.Burst(10)).To(Succeed())
			Expect(s.Sweep()).To(Succeed())
			Expect(s.Steps()).To(Equal(uint64(1 + 10 + 16)))
		})
	})

	Describe("initial configurations", func() {
		var s *sim.Simulator

		BeforeEach(func() {
			s = newSim(6, 4, sim.DefaultTemperature, sim.WithSeed(9))
		})

		It("fills every spin", func() {
			s.Fill(lattice.Up)
			Expect(s.Magnetisation()).To(Equal(1.0))
			s.Fill(lattice.Down)
			Expect(allDown(s.Snapshot())).To(BeTrue())
		})

		DescribeTable("prepares by name",
			func(mode string, want float64) {
				s.Fill(lattice.Up)
				Expect(s.Prepare(mode)).To(Succeed())
				Expect(s.Magnetisation()).To(Equal(want))
			},
			Entry("down", sim.InitDown, -1.0),
			Entry("empty means down", "", -1.0),
			Entry("up", sim.InitUp, 1.0),
		)

		It("prepares a random start from the source", func() {
			Expect(s.Prepare(sim.InitRandom)).To(Succeed())

			other := newSim(6, 4, sim.DefaultTemperature, sim.WithSeed(9))
			other.Randomise()
			Expect(s.Snapshot()).To(Equal(other.Snapshot()))
		})

		It("rejects an unknown mode", func() {
			Expect(s.Prepare("checkerboard")).To(MatchError(sim.ErrUnknownInit))
		})
	})

	Describe("running state", func() {
		It("ignores bursts while stopped", func() {
			s := newSim(sim.DefaultWidth, sim.DefaultHeight, sim.DefaultTemperature, sim.WithSeed(4))
			s.Randomise()
			s.Stop()
			before := s.Snapshot()

			Expect(s.Burst(10000)).To(Succeed())
			Expect(s.Tick()).To(Succeed())
			Expect(s.Sweep()).To(Succeed())

			Expect(s.IsRunning()).To(BeFalse())
			Expect(s.Snapshot()).To(Equal(before))
			Expect(s.Steps()).To(BeZero())
		})

		It("resumes on start", func() {
			s := newSim(8, 8, 2.0, sim.WithSeed(4), sim.WithBurstSize(50))
			s.Stop()
			s.Start()
			Expect(s.Tick()).To(Succeed())
			Expect(s.Steps()).To(Equal(uint64(50)))
		})

		It("step still advances while stopped", func() {
			s := newSim(8, 8, 2.0, sim.WithSeed(4))
			s.Stop()
			s.Step()
			Expect(s.Steps()).To(Equal(uint64(1)))
		})
	})

	Describe("kernel through the façade", func() {
		It("rejects an uphill flip at p = 0.5", func() {
			src := &scripted{ints: []int{0, 0}, floats: []float64{0.5}}
			s := newSim(2, 2, 1.0, sim.WithSource(src))

			s.Step()

			Expect(src.floatN).To(Equal(1))
			Expect(allDown(s.Snapshot())).To(BeTrue())
		})

		It("flips a Down site surrounded by Ups without a float draw", func() {
			src := &scripted{ints: []int{1, 1}}
			s := newSim(3, 3, 2.0, sim.WithSource(src))
			for _, idx := range []int{1, 3, 5, 7} {
				Expect(s.Toggle(idx)).To(Succeed())
			}

			s.Step()

			Expect(s.Snapshot()[4]).To(Equal(lattice.Up))
			Expect(src.floatN).To(BeZero())
		})
	})

	Describe("determinism", func() {
		It("matches the recorded trajectory for seed 42", func() {
			s := newSim(8, 8, 2.40, sim.WithSeed(42))
			Expect(s.Burst(1000)).To(Succeed())

			snap := s.Snapshot()
			Expect(render.Hash(snap)).To(Equal("2137ed8c4eec8af47fc9bcf367606e84dd4acb7de57fbcd3e27edfde22216481"))

			var up []int
			for i, v := range snap {
				if v == lattice.Up {
					up = append(up, i)
				}
			}
			Expect(up).To(Equal([]int{9, 41}))
		})

		It("replays identical command sequences identically", func() {
			a := newSim(16, 12, 2.2, sim.WithSeed(77))
			b := newSim(16, 12, 2.2, sim.WithSeed(77))

			run := func(s *sim.Simulator) [][]lattice.Spin {
				var out [][]lattice.Spin
				s.Randomise()
				out = append(out, s.Snapshot())
				Expect(s.Burst(500)).To(Succeed())
				out = append(out, s.Snapshot())
				Expect(s.Toggle(5)).To(Succeed())
				Expect(s.SetTemperature(1.7)).To(Succeed())
				s.Step()
				out = append(out, s.Snapshot())
				Expect(s.Sweep()).To(Succeed())
				out = append(out, s.Snapshot())
				return out
			}

			Expect(run(a)).To(Equal(run(b)))
		})
	})

	Describe("equilibrium", func() {
		It("orders at low temperature from a random start", func() {
			s := newSim(80, 80, 1.5, sim.WithSeed(2))
			s.Randomise()

			Expect(s.Burst(750 * 80 * 80)).To(Succeed())

			Expect(math.Abs(s.Magnetisation())).To(BeNumerically(">", 0.9))
		})

		It("stays disordered at high temperature", func() {
			s := newSim(80, 80, 4.0, sim.WithSeed(1))
			s.Randomise()

			Expect(s.Burst(50 * 80 * 80)).To(Succeed())

			Expect(math.Abs(s.Magnetisation())).To(BeNumerically("<", 0.2))
		})
	})
})
