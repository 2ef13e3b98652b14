package render

import (
	"image"

	"life-sim/internal/core"
)

// FillRGBA converts cells into RGBA pixels in buf, one pixel per cell.
func FillRGBA(buf []byte, cells []core.Cell, p Palette) {
	for i, c := range cells {
		col := p.Color(c)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Thumbnail renders g at one pixel per cell.
func Thumbnail(g *core.Grid, p Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	FillRGBA(img.Pix, g.Cells(), p)
	return img
}
