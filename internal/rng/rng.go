// Package rng provides the random number capability consumed by the
// Metropolis kernel.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand/v2"
)

// Source supplies the three kinds of draws the simulator needs. A Source is
// owned by a single simulator and is not safe for concurrent use.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Int returns a uniform integer in [lo, hi). It panics if lo >= hi.
	Int(lo, hi int) int
	// Bool returns true or false with probability 1/2 each.
	Bool() bool
}

// PCG is a deterministic Source backed by math/rand/v2's PCG generator.
type PCG struct {
	seed int64
	r    *mrand.Rand
}

// NewPCG creates a deterministic source. Equal seeds yield equal streams.
func NewPCG(seed int64) *PCG {
	return &PCG{seed: seed, r: mrand.New(mrand.NewPCG(uint64(seed), 0))}
}

// NewRandom seeds a PCG source from the operating system's entropy pool.
func NewRandom() (*PCG, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return nil, fmt.Errorf("rng: seeding from os entropy: %w", err)
	}
	return NewPCG(int64(binary.LittleEndian.Uint64(buf[:]))), nil
}

func (p *PCG) Seed() int64 { return p.seed }

func (p *PCG) Float64() float64 { return p.r.Float64() }

func (p *PCG) Int(lo, hi int) int {
	if lo >= hi {
		panic(fmt.Sprintf("rng: empty range [%d, %d)", lo, hi))
	}
	return lo + p.r.IntN(hi-lo)
}

func (p *PCG) Bool() bool { return p.r.IntN(2) == 1 }
