package lattice

// Spin is a two-valued site state. Up maps to +1, Down to -1.
type Spin bool

const (
	Down Spin = false
	Up   Spin = true
)

// Value returns +1 for Up and -1 for Down.
func (s Spin) Value() int {
	if s {
		return 1
	}
	return -1
}

func (s Spin) Flip() Spin { return !s }

func (s Spin) String() string {
	if s {
		return "up"
	}
	return "down"
}
