package lattice

// Site is a wrapped lattice coordinate.
type Site struct {
	Row, Col int
}

// Neighbors returns the four toroidal neighbours of (r, c) in the fixed
// order south, north, east, west: (r+1,c), (r-1,c), (r,c+1), (r,c-1).
func (l *Lattice) Neighbors(r, c int) [4]Site {
	r, c = Wrap(r, l.h), Wrap(c, l.w)
	return [4]Site{
		{Wrap(r+1, l.h), c},
		{Wrap(r-1, l.h), c},
		{r, Wrap(c+1, l.w)},
		{r, Wrap(c-1, l.w)},
	}
}

// NeighborSum returns Σσ over the four neighbours of (r, c), one of
// -4, -2, 0, 2, 4.
func (l *Lattice) NeighborSum(r, c int) int {
	sum := 0
	for _, n := range l.Neighbors(r, c) {
		sum += l.cells[n.Row*l.w+n.Col].Value()
	}
	return sum
}
