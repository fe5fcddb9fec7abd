//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const overlayPadding = 4

// Overlay draws a one-line run summary over the simulation view.
type Overlay struct{}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay { return &Overlay{} }

// Draw paints the status line along the bottom-left edge of the screen.
func (o *Overlay) Draw(screen *ebiten.Image, s Status) {
	if o == nil {
		return
	}
	line := fmt.Sprintf("turn %d  alive %d  workers %d", s.Turn, s.Population, s.Workers)
	if s.Done {
		line += "  [done, Q quits]"
	}
	face := basicfont.Face7x13
	y := screen.Bounds().Dy() - overlayPadding
	text.Draw(screen, line, face, overlayPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
}
