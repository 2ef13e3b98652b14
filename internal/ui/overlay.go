//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	overlayPadding = 6
	overlayHeight  = 20
)

// Overlay draws a one line status bar over the top left of the grid.
type Overlay struct {
	visible bool
}

// NewOverlay constructs an overlay, initially shown when visible is set.
func NewOverlay(visible bool) *Overlay {
	return &Overlay{visible: visible}
}

// Update toggles the overlay with the H key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders status onto the screen when the overlay is visible.
func (o *Overlay) Draw(screen *ebiten.Image, status string) {
	if !o.visible {
		return
	}
	face := basicfont.Face7x13
	width := float32(len(status)*face.Advance + 2*overlayPadding)
	vector.DrawFilledRect(screen, 0, 0, width, overlayHeight, color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)
	text.Draw(screen, status, face, overlayPadding, 14, color.White)
}
