// Package render turns a grid into filled cell rectangles on a Canvas. It
// knows nothing about the window library behind the canvas.
package render

import (
	"image/color"

	"github.com/pkg/errors"

	"life-sim/internal/core"
)

// Canvas is the drawing surface a frontend provides.
type Canvas interface {
	FillRect(x, y, w, h int, c color.RGBA) error
	Present() error
}

// Clearer is implemented by canvases that can reset the whole surface, which
// keeps the gutters between cells in the background colour.
type Clearer interface {
	Clear(c color.RGBA) error
}

// Palette maps cell states to colours.
type Palette struct {
	Live       color.RGBA
	Background color.RGBA
}

// DefaultPalette draws live cells black on a very pale green.
func DefaultPalette() Palette {
	return Palette{
		Live:       color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Background: color.RGBA{R: 200, G: 205, B: 200, A: 255},
	}
}

// Color returns the fill colour for c.
func (p Palette) Color(c core.Cell) color.RGBA {
	if c == core.Alive {
		return p.Live
	}
	return p.Background
}

// CellRect returns the pixel rectangle for cell (x, y), leaving a one pixel
// gutter on every side.
func CellRect(x, y, size int) (px, py, w, h int) {
	return x*size + 1, y*size + 1, size - 2, size - 2
}

// Painter draws whole generations onto a Canvas.
type Painter struct {
	Canvas   Canvas
	CellSize int
	Palette  Palette
}

// NewPainter returns a Painter using the default cell size and palette.
func NewPainter(c Canvas) *Painter {
	return &Painter{Canvas: c, CellSize: core.CellSize, Palette: DefaultPalette()}
}

// Render clears the canvas when it supports it, fills every cell and presents
// the frame. The first failed fill aborts the frame.
func (p *Painter) Render(g *core.Grid) error {
	if c, ok := p.Canvas.(Clearer); ok {
		if err := c.Clear(p.Palette.Background); err != nil {
			return errors.Wrap(err, "clear frame")
		}
	}
	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			px, py, w, h := CellRect(x, y, p.CellSize)
			if err := p.Canvas.FillRect(px, py, w, h, p.Palette.Color(cells[g.Index(x, y)])); err != nil {
				return errors.Wrapf(err, "draw cell (%d,%d)", x, y)
			}
		}
	}
	return errors.Wrap(p.Canvas.Present(), "present frame")
}
