package core

import "bytes"

// Grid stores a toroidal 2D field of byte-sized cell values in row-major order.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for in-bounds coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates, which may be
// arbitrarily far out of bounds.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Translate wraps (x, y) onto the torus and returns the linear index.
// Coordinates must not be out of bounds by more than one full dimension;
// neighbourhood scans stay within that limit.
func (g *Grid) Translate(x, y int) int {
	if x < 0 {
		x += g.W
	} else if x >= g.W {
		x -= g.W
	}
	if y < 0 {
		y += g.H
	} else if y >= g.H {
		y -= g.H
	}
	return y*g.W + x
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.W, g.H)
	copy(c.data, g.data)
	return c
}

// CopyFrom overwrites the grid's cells with those of src. The two grids must
// have identical dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.data, src.data)
}

// Equal reports whether two grids have the same dimensions and cell values.
func (g *Grid) Equal(o *Grid) bool {
	return g.W == o.W && g.H == o.H && bytes.Equal(g.data, o.data)
}

// Population returns the number of non-zero cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c != 0 {
			n++
		}
	}
	return n
}
