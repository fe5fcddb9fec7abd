package world

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"parlife/internal/core"
	"parlife/internal/sims/life"
)

// FromFile reads a world description: a header of three integers
// "height width count" followed by count "col row" pairs, all whitespace
// separated. Pair coordinates outside the grid wrap toroidally.
func FromFile(path string) (*core.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	defer f.Close()
	return parse(path, bufio.NewScanner(f))
}

func parse(path string, sc *bufio.Scanner) (*core.Grid, error) {
	sc.Split(bufio.ScanWords)
	next := func(what string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("world %s: %w", path, err)
			}
			return 0, fmt.Errorf("world %s: missing %s", path, what)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("world %s: bad %s %q", path, what, sc.Text())
		}
		return v, nil
	}

	height, err := next("height")
	if err != nil {
		return nil, err
	}
	width, err := next("width")
	if err != nil {
		return nil, err
	}
	count, err := next("cell count")
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("world %s: dimensions %dx%d out of range", path, width, height)
	}
	if count < 0 {
		return nil, fmt.Errorf("world %s: negative cell count %d", path, count)
	}

	g := core.NewGrid(width, height)
	for i := 0; i < count; i++ {
		col, err := next(fmt.Sprintf("column of cell %d", i))
		if err != nil {
			return nil, err
		}
		row, err := next(fmt.Sprintf("row of cell %d", i))
		if err != nil {
			return nil, err
		}
		x, y := g.Wrap(col, row)
		g.Cells()[g.Index(x, y)] = life.Alive
	}
	return g, nil
}
