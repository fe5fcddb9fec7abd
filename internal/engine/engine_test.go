package engine

import (
	"testing"
	"time"

	"parlife/internal/core"
	"parlife/internal/sims/life"
	"parlife/internal/world"
)

// captureFrames records a deep copy of every rendered frame.
type captureFrames struct {
	grids []*core.Grid
	turns []int
}

func (c *captureFrames) frame(g *core.Grid, turn int) {
	c.grids = append(c.grids, g.Clone())
	c.turns = append(c.turns, turn)
}

func soup(t *testing.T, w, h int, seed int64) *core.Grid {
	t.Helper()
	g, err := world.Random(w, h, 0.35, seed)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestRunMatchesSingleThreadedReference(t *testing.T) {
	// Odd dimensions against five workers exercise the uneven partition.
	grid := soup(t, 31, 17, 7)
	reference := life.NewFromGrid(grid)

	var frames captureFrames
	eng, err := New(grid, Config{Turns: 13, Workers: 5, OnFrame: frames.frame})
	if err != nil {
		t.Fatal(err)
	}
	eng.Run()

	if len(frames.grids) != 14 {
		t.Fatalf("rendered %d frames, want 14", len(frames.grids))
	}
	for i, fr := range frames.grids {
		if frames.turns[i] != i {
			t.Fatalf("frame %d labelled turn %d", i, frames.turns[i])
		}
		if i > 0 {
			reference.Step()
		}
		if !fr.Equal(reference.Grid()) {
			t.Fatalf("frame %d diverges from the single-threaded reference", i)
		}
	}
}

func TestRunDeterministicAcrossWorkerCounts(t *testing.T) {
	const turns = 9
	finals := make([]*core.Grid, 0, 6)
	// 32 workers on 18 rows leaves some of them with empty ranges.
	for _, workers := range []int{1, 2, 3, 4, 8, 32} {
		grid := soup(t, 24, 18, 21)
		eng, err := New(grid, Config{Turns: turns, Workers: workers})
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		eng.Run()
		finals = append(finals, grid)
	}
	for i := 1; i < len(finals); i++ {
		if !finals[i].Equal(finals[0]) {
			t.Fatalf("final grid for run %d differs from run 0", i)
		}
	}
}

func TestRunAdvancesBlinker(t *testing.T) {
	build := func() *core.Grid {
		g := core.NewGrid(7, 7)
		for _, p := range [][2]int{{2, 3}, {3, 3}, {4, 3}} {
			g.Cells()[g.Index(p[0], p[1])] = life.Alive
		}
		return g
	}

	horizontal := build()
	eng, err := New(horizontal, Config{Turns: 1, Workers: 3})
	if err != nil {
		t.Fatal(err)
	}
	eng.Run()
	for _, p := range [][2]int{{3, 2}, {3, 3}, {3, 4}} {
		if horizontal.Cells()[horizontal.Index(p[0], p[1])] != life.Alive {
			t.Fatalf("cell (%d,%d) should be alive after one turn", p[0], p[1])
		}
	}
	if horizontal.Population() != 3 {
		t.Fatalf("population = %d, want 3", horizontal.Population())
	}

	fullPeriod := build()
	eng, err = New(fullPeriod, Config{Turns: 2, Workers: 3})
	if err != nil {
		t.Fatal(err)
	}
	eng.Run()
	if !fullPeriod.Equal(build()) {
		t.Fatal("blinker should return to its start after two turns")
	}
}

func TestRunZeroTurns(t *testing.T) {
	grid := soup(t, 10, 10, 3)
	before := grid.Clone()

	var frames captureFrames
	eng, err := New(grid, Config{Turns: 0, Workers: 4, OnFrame: frames.frame})
	if err != nil {
		t.Fatal(err)
	}
	eng.Run()

	if len(frames.grids) != 1 {
		t.Fatalf("rendered %d frames, want 1", len(frames.grids))
	}
	if frames.turns[0] != 0 {
		t.Fatalf("final frame labelled turn %d, want 0", frames.turns[0])
	}
	if !grid.Equal(before) {
		t.Fatal("zero turns must leave the world untouched")
	}
}

func TestRunSingleRowPerWorker(t *testing.T) {
	grid := soup(t, 12, 2, 17)
	reference := life.NewFromGrid(grid)

	eng, err := New(grid, Config{Turns: 3, Workers: 5})
	if err != nil {
		t.Fatal(err)
	}
	eng.Run()

	for i := 0; i < 3; i++ {
		reference.Step()
	}
	if !grid.Equal(reference.Grid()) {
		t.Fatal("run with surplus workers diverges from the reference")
	}
}

func TestRunHonorsDelay(t *testing.T) {
	grid := soup(t, 8, 8, 1)
	const turns = 3
	const delay = 20 * time.Millisecond

	eng, err := New(grid, Config{Turns: turns, Workers: 2, Delay: delay})
	if err != nil {
		t.Fatal(err)
	}
	start := time.Now()
	eng.Run()
	if elapsed := time.Since(start); elapsed < turns*delay {
		t.Fatalf("run took %v, want at least %v", elapsed, turns*delay)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	grid := core.NewGrid(4, 4)
	cases := []struct {
		name string
		grid *core.Grid
		cfg  Config
	}{
		{"nil grid", nil, Config{Turns: 1, Workers: 1}},
		{"zero workers", grid, Config{Turns: 1, Workers: 0}},
		{"negative workers", grid, Config{Turns: 1, Workers: -2}},
		{"negative turns", grid, Config{Turns: -1, Workers: 1}},
		{"negative delay", grid, Config{Turns: 1, Workers: 1, Delay: -time.Millisecond}},
	}
	for _, c := range cases {
		if _, err := New(c.grid, c.cfg); err == nil {
			t.Fatalf("%s: expected an error", c.name)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Turns != 20 || cfg.Workers != 2 || cfg.Delay != 100*time.Millisecond {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func BenchmarkRun(b *testing.B) {
	for i := 0; i < b.N; i++ {
		grid, err := world.Random(128, 128, 0.3, 1337)
		if err != nil {
			b.Fatal(err)
		}
		eng, err := New(grid, Config{Turns: 10, Workers: 4})
		if err != nil {
			b.Fatal(err)
		}
		eng.Run()
	}
}
