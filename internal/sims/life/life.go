package life

import (
	"parlife/internal/core"
)

// Cell states stored in a core.Grid.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// CountLiveNeighbors returns how many of the eight cells surrounding (x, y)
// are alive, wrapping toroidally at the grid edges.
func CountLiveNeighbors(g *core.Grid, x, y int) int {
	cells := g.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if cells[g.Translate(x+dx, y+dy)] == Alive {
				n++
			}
		}
	}
	return n
}

// NextState applies the B3/S23 rule: a live cell survives with two or three
// live neighbours, a dead cell is born with exactly three.
func NextState(current uint8, liveNeighbors int) uint8 {
	if current == Alive {
		if liveNeighbors == 2 || liveNeighbors == 3 {
			return Alive
		}
		return Dead
	}
	if liveNeighbors == 3 {
		return Alive
	}
	return Dead
}

// UpdateCell computes the next state of (x, y) from the snapshot and writes
// it into live at the same coordinate. It never reads from live.
func UpdateCell(snapshot, live *core.Grid, x, y int) {
	idx := snapshot.Translate(x, y)
	live.Cells()[idx] = NextState(snapshot.Cells()[idx], CountLiveNeighbors(snapshot, x, y))
}

// Life implements Conway's Game of Life with toroidal wrapping. It steps a
// single goroutine over the whole board and doubles as the reference the
// parallel engine is checked against.
type Life struct {
	cur *core.Grid
	nxt *core.Grid
}

// New returns a Life simulation with the provided dimensions.
func New(w, h int) *Life {
	return &Life{cur: core.NewGrid(w, h), nxt: core.NewGrid(w, h)}
}

// NewFromGrid returns a Life simulation seeded with a copy of g.
func NewFromGrid(g *core.Grid) *Life {
	return &Life{cur: g.Clone(), nxt: core.NewGrid(g.W, g.H)}
}

// Grid exposes the current generation.
func (l *Life) Grid() *core.Grid { return l.cur }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	core.FillBinary(rng, l.cur.Cells())
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	for y := 0; y < l.cur.H; y++ {
		for x := 0; x < l.cur.W; x++ {
			UpdateCell(l.cur, l.nxt, x, y)
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}
