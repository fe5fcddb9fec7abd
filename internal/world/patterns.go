package world

import (
	"fmt"
	"slices"
	"strings"

	"parlife/internal/core"
	"parlife/internal/sims/life"
)

// Pattern is a named arrangement of live cells, row-major with 1 for alive.
type Pattern struct {
	Name  string
	Cells [][]uint8
}

func (p Pattern) size() (w, h int) {
	h = len(p.Cells)
	for _, row := range p.Cells {
		if len(row) > w {
			w = len(row)
		}
	}
	return w, h
}

var builtins = map[string]Pattern{
	"blinker": {Name: "blinker", Cells: [][]uint8{
		{1, 1, 1},
	}},
	"block": {Name: "block", Cells: [][]uint8{
		{1, 1},
		{1, 1},
	}},
	"glider": {Name: "glider", Cells: [][]uint8{
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
	}},
	"beacon": {Name: "beacon", Cells: [][]uint8{
		{1, 1, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 1, 1},
	}},
	"toad": {Name: "toad", Cells: [][]uint8{
		{0, 1, 1, 1},
		{1, 1, 1, 0},
	}},
	"pulsar": {Name: "pulsar", Cells: [][]uint8{
		{0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0},
	}},
}

// Patterns returns the built-in pattern names in sorted order.
func Patterns() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// FromPattern builds a w by h world with the named pattern centered on it.
func FromPattern(name string, w, h int) (*core.Grid, error) {
	p, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("world: unknown pattern %q (have %s)", name, strings.Join(Patterns(), ", "))
	}
	pw, ph := p.size()
	if w < pw || h < ph {
		return nil, fmt.Errorf("world: pattern %q needs at least %dx%d cells, grid is %dx%d", name, pw, ph, w, h)
	}
	g := core.NewGrid(w, h)
	offX := (w - pw) / 2
	offY := (h - ph) / 2
	for y, row := range p.Cells {
		for x, v := range row {
			if v == life.Alive {
				g.Cells()[g.Index(offX+x, offY+y)] = life.Alive
			}
		}
	}
	return g, nil
}
