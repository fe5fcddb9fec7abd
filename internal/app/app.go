//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"
	"sync"

	"parlife/internal/core"
	"parlife/internal/engine"
	"parlife/internal/render"
	"parlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// frameBox holds the most recent frame published by the engine's leader
// worker. The engine overwrites at its own pace; the game only ever draws
// the latest state.
type frameBox struct {
	mu    sync.Mutex
	cells []uint8
	turn  int
	done  bool
}

func newFrameBox(size int) *frameBox {
	return &frameBox{cells: make([]uint8, size)}
}

// publish copies the grid into the box. It has the signature the engine
// expects for its per-turn render hook.
func (b *frameBox) publish(g *core.Grid, turn int) {
	b.mu.Lock()
	copy(b.cells, g.Cells())
	b.turn = turn
	b.mu.Unlock()
}

func (b *frameBox) finish() {
	b.mu.Lock()
	b.done = true
	b.mu.Unlock()
}

// snapshot copies the latest frame into dst and reports the turn number and
// whether the run has completed.
func (b *frameBox) snapshot(dst []uint8) (int, bool) {
	b.mu.Lock()
	copy(dst, b.cells)
	turn, done := b.turn, b.done
	b.mu.Unlock()
	return turn, done
}

// Game adapts a running simulation to the ebiten.Game interface.
type Game struct {
	frames  *frameBox
	painter *render.GridPainter
	overlay *ui.Overlay
	cells   []uint8

	onColor  color.Color
	offColor color.Color

	w, h    int
	scale   int
	workers int
	debug   bool
}

// Update handles key input. The simulation advances on its own goroutines.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the most recent simulation frame.
func (g *Game) Draw(screen *ebiten.Image) {
	turn, done := g.frames.snapshot(g.cells)
	g.painter.Blit(screen, g.cells, g.onColor, g.offColor, g.scale)

	alive := 0
	for _, c := range g.cells {
		if c != 0 {
			alive++
		}
	}
	g.overlay.Draw(screen, ui.Status{Turn: turn, Population: alive, Workers: g.workers, Done: done})

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %.0f FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w * g.scale, g.h * g.scale
}

// Run drives the simulation under an ebiten window. It blocks until the
// window is closed; after the last turn the final frame stays visible.
func Run(cfg *Config, grid *core.Grid) error {
	box := newFrameBox(grid.W * grid.H)
	box.publish(grid, 0)

	ecfg := cfg.EngineConfig()
	ecfg.OnFrame = box.publish
	eng, err := engine.New(grid, ecfg)
	if err != nil {
		return err
	}
	go func() {
		eng.Run()
		box.finish()
	}()

	game := &Game{
		frames:   box,
		painter:  render.NewGridPainter(grid.W, grid.H),
		overlay:  ui.NewOverlay(),
		cells:    make([]uint8, grid.W*grid.H),
		onColor:  color.White,
		offColor: color.Black,
		w:        grid.W,
		h:        grid.H,
		scale:    cfg.Scale,
		workers:  cfg.Workers,
		debug:    cfg.Debug,
	}
	ebiten.SetWindowTitle("parlife")
	ebiten.SetWindowSize(grid.W*cfg.Scale, grid.H*cfg.Scale)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
