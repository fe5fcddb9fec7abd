package term

import (
	"fmt"
	"io"

	"parlife/internal/core"
)

// Glyphs used for live and dead cells.
const (
	aliveGlyph = '@'
	deadGlyph  = '.'
)

// clearScreen moves the cursor home after erasing, so each frame overdraws
// the previous one.
const clearScreen = "\x1b[2J\x1b[H"

// Printer renders world frames as text, one character per cell, with the
// turn number below the board.
type Printer struct {
	out   io.Writer
	clear bool
	buf   []byte
}

// NewPrinter returns a Printer that clears the terminal before each frame.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, clear: true}
}

// NewPlainPrinter returns a Printer that appends frames without clearing,
// suitable for piped output.
func NewPlainPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Frame writes one frame. It has the signature the engine expects for its
// per-turn render hook.
func (p *Printer) Frame(g *core.Grid, turn int) {
	p.buf = p.buf[:0]
	if p.clear {
		p.buf = append(p.buf, clearScreen...)
	}
	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		for _, c := range cells[y*g.W : (y+1)*g.W] {
			if c != 0 {
				p.buf = append(p.buf, aliveGlyph)
			} else {
				p.buf = append(p.buf, deadGlyph)
			}
		}
		p.buf = append(p.buf, '\n')
	}
	p.buf = append(p.buf, '\n')
	p.buf = fmt.Appendf(p.buf, "Time Step: %d\n", turn)
	p.out.Write(p.buf)
}
