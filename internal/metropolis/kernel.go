package metropolis

import (
	"math"

	"github.com/san-kum/ising/internal/lattice"
	"github.com/san-kum/ising/internal/rng"
)

// DefaultCoupling is the ferromagnetic exchange constant J.
const DefaultCoupling = 1.0

// Kernel applies Metropolis updates with a fixed coupling.
type Kernel struct {
	J float64
}

func New(j float64) Kernel {
	return Kernel{J: j}
}

// Field returns h = -J·σ·S at (r, c).
func (k Kernel) Field(l *lattice.Lattice, r, c int) float64 {
	sigma := l.Value(r, c)
	sum := l.NeighborSum(r, c)
	return -k.J * float64(sigma*sum)
}

// Acceptance returns the flip probability for local quantity h at inverse
// temperature beta. The result lies in (0, 1] for finite beta.
func Acceptance(h, beta float64) float64 {
	if h >= 0 {
		return 1
	}
	return math.Exp(2 * beta * h)
}

// Update attempts a flip at (r, c) and reports whether it was accepted.
// A float is drawn from src only when h < 0.
func (k Kernel) Update(l *lattice.Lattice, r, c int, beta float64, src rng.Source) bool {
	h := k.Field(l, r, c)
	if h < 0 && src.Float64() >= Acceptance(h, beta) {
		return false
	}
	l.Toggle(r, c)
	return true
}

// Step picks a site uniformly at random and updates it.
func (k Kernel) Step(l *lattice.Lattice, beta float64, src rng.Source) (lattice.Site, bool) {
	r := src.Int(0, l.Height())
	c := src.Int(0, l.Width())
	return lattice.Site{Row: r, Col: c}, k.Update(l, r, c, beta, src)
}
