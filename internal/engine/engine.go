package engine

import (
	"fmt"
	"log"
	"sync"
	"time"

	"parlife/internal/core"
	"parlife/internal/sims/life"
)

// leaderID names the worker that snapshots and renders each turn.
const leaderID = 0

// FrameFunc receives the live grid once per turn, and once more for the
// final state. The grid is only valid for the duration of the call;
// implementations that keep cell data must copy it.
type FrameFunc func(g *core.Grid, turn int)

// Config carries the run parameters for a simulation.
type Config struct {
	Turns   int           // generations to simulate
	Delay   time.Duration // leader pause after rendering each turn
	Workers int           // goroutines updating the board
	OnFrame FrameFunc     // per-turn render hook, may be nil
	Verbose bool          // log the row assignment per worker
}

// DefaultConfig returns the standard run parameters.
func DefaultConfig() Config {
	return Config{Turns: 20, Delay: 100 * time.Millisecond, Workers: 2}
}

// Engine advances one world in lock-step turns across a fixed pool of
// workers. Each Engine drives a single run.
type Engine struct {
	cfg      Config
	live     *core.Grid
	snapshot *core.Grid
	ranges   []RowRange
	barrier  *Barrier
}

// New validates cfg, computes the row partition and allocates the snapshot
// buffer and shared barrier. No goroutines are started until Run.
func New(g *core.Grid, cfg Config) (*Engine, error) {
	if g == nil {
		return nil, fmt.Errorf("engine: no world to simulate")
	}
	if cfg.Turns < 0 {
		return nil, fmt.Errorf("engine: turn count must be non-negative, got %d", cfg.Turns)
	}
	if cfg.Delay < 0 {
		return nil, fmt.Errorf("engine: delay must be non-negative, got %v", cfg.Delay)
	}
	ranges, err := Partition(g.H, cfg.Workers)
	if err != nil {
		return nil, err
	}
	barrier, err := NewBarrier(cfg.Workers)
	if err != nil {
		return nil, err
	}
	return &Engine{
		cfg:      cfg,
		live:     g,
		snapshot: core.NewGrid(g.W, g.H),
		ranges:   ranges,
		barrier:  barrier,
	}, nil
}

// Run executes the configured number of turns, blocks until every worker has
// finished, and renders the final state once more.
func (e *Engine) Run() {
	var wg sync.WaitGroup
	for id, rows := range e.ranges {
		if e.cfg.Verbose {
			log.Printf("worker %d: rows %d..%d (%d)", id, rows.Start, rows.End, rows.Rows())
		}
		wg.Add(1)
		go func(id int, rows RowRange) {
			defer wg.Done()
			e.worker(id, rows)
		}(id, rows)
	}
	wg.Wait()
	e.frame(e.cfg.Turns)
}

func (e *Engine) frame(turn int) {
	if e.cfg.OnFrame != nil {
		e.cfg.OnFrame(e.live, turn)
	}
}

// worker runs the per-turn protocol. The first rendezvous fences the previous
// turn's writes before the leader copies the board; the second holds updates
// back until the copy is complete. Between them only the leader touches the
// grids, so workers read the snapshot and write the live board without locks.
func (e *Engine) worker(id int, rows RowRange) {
	for turn := 0; turn < e.cfg.Turns; turn++ {
		e.barrier.Await()
		if id == leaderID {
			e.snapshot.CopyFrom(e.live)
			e.frame(turn)
			if e.cfg.Delay > 0 {
				time.Sleep(e.cfg.Delay)
			}
		}
		e.barrier.Await()
		for y := rows.Start; y <= rows.End; y++ {
			for x := 0; x < e.live.W; x++ {
				life.UpdateCell(e.snapshot, e.live, x, y)
			}
		}
	}
}
