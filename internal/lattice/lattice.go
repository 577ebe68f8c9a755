package lattice

import (
	"fmt"
	"math"
	"strings"
)

// Lattice is a W×H toroidal grid of spins. Its dimensions are fixed at
// construction.
type Lattice struct {
	w, h  int
	cells []Spin
}

// New allocates a lattice with every spin Down.
func New(w, h int) (*Lattice, error) {
	if w < 1 || h < 1 || w > math.MaxInt/h {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return &Lattice{w: w, h: h, cells: make([]Spin, w*h)}, nil
}

func (l *Lattice) Width() int  { return l.w }
func (l *Lattice) Height() int { return l.h }
func (l *Lattice) Len() int    { return len(l.cells) }

// Wrap maps a coordinate onto [0, n). Offsets of at most one extent are
// resolved with a single addition or subtraction; anything further falls
// back to Euclidean modulo. In-range inputs are returned unchanged.
func Wrap(x, n int) int {
	switch {
	case x < 0 && x >= -n:
		return x + n
	case x >= n && x < 2*n:
		return x - n
	case x >= 0 && x < n:
		return x
	}
	x %= n
	if x < 0 {
		x += n
	}
	return x
}

// Index wraps (r, c) and returns its row-major position r·W + c.
func (l *Lattice) Index(r, c int) int {
	return Wrap(r, l.h)*l.w + Wrap(c, l.w)
}

// Coords is the inverse of Index for an in-range flat index.
func (l *Lattice) Coords(i int) (r, c int) {
	return i / l.w, i % l.w
}

// Get returns the spin at the wrapped coordinate (r, c).
func (l *Lattice) Get(r, c int) Spin {
	return l.cells[l.Index(r, c)]
}

// Value returns the numeric spin (+1 or -1) at (r, c).
func (l *Lattice) Value(r, c int) int {
	return l.Get(r, c).Value()
}

func (l *Lattice) Set(r, c int, s Spin) {
	l.cells[l.Index(r, c)] = s
}

// Toggle flips the spin at the wrapped coordinate (r, c).
func (l *Lattice) Toggle(r, c int) {
	i := l.Index(r, c)
	l.cells[i] = !l.cells[i]
}

// SetIndex sets the spin at flat index i. It panics if i is out of range.
func (l *Lattice) SetIndex(i int, s Spin) {
	l.cells[i] = s
}

func (l *Lattice) InRange(i int) bool { return i >= 0 && i < len(l.cells) }

// At returns the spin at flat index i.
func (l *Lattice) At(i int) (Spin, error) {
	if !l.InRange(i) {
		return Down, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(l.cells))
	}
	return l.cells[i], nil
}

// ToggleIndex flips the spin at flat index i. An out-of-range index leaves
// the lattice untouched.
func (l *Lattice) ToggleIndex(i int) error {
	if !l.InRange(i) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(l.cells))
	}
	l.cells[i] = !l.cells[i]
	return nil
}

// Fill sets every spin to s.
func (l *Lattice) Fill(s Spin) {
	for i := range l.cells {
		l.cells[i] = s
	}
}

// Cells returns a copy of the spins in row-major order.
func (l *Lattice) Cells() []Spin {
	c := make([]Spin, len(l.cells))
	copy(c, l.cells)
	return c
}

func (l *Lattice) Clone() *Lattice {
	return &Lattice{w: l.w, h: l.h, cells: l.Cells()}
}

// Equal reports whether both lattices have the same shape and spins.
func (l *Lattice) Equal(o *Lattice) bool {
	if l.w != o.w || l.h != o.h {
		return false
	}
	for i := range l.cells {
		if l.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Magnetisation returns Σσ/N for the current configuration, in [-1, 1].
func (l *Lattice) Magnetisation() float64 {
	sum := 0
	for _, s := range l.cells {
		sum += s.Value()
	}
	return float64(sum) / float64(len(l.cells))
}

// String renders H lines of W characters, '#' for Up and '.' for Down.
func (l *Lattice) String() string {
	var b strings.Builder
	b.Grow(len(l.cells) + l.h)
	for i, s := range l.cells {
		if s {
			b.WriteByte('#')
		} else {
			b.WriteByte('.')
		}
		if (i+1)%l.w == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
