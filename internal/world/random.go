package world

import (
	"fmt"

	"parlife/internal/core"
)

// Random builds a w by h world where each cell starts alive with probability
// density. The same seed always produces the same world.
func Random(w, h int, density float64, seed int64) (*core.Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("world: dimensions %dx%d out of range", w, h)
	}
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("world: density %v outside [0, 1]", density)
	}
	g := core.NewGrid(w, h)
	core.FillDensity(core.NewRNG(seed).Source(), g.Cells(), density)
	return g, nil
}
