package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ImageCanvas is an in-memory Canvas. Frontends paint a generation into it
// once and upload the pixels as a single texture.
type ImageCanvas struct {
	Img *image.RGBA
}

// NewImageCanvas allocates a w*h pixel canvas.
func NewImageCanvas(w, h int) *ImageCanvas {
	return &ImageCanvas{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Clear fills the whole canvas with c.
func (c *ImageCanvas) Clear(col color.RGBA) error {
	draw.Draw(c.Img, c.Img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
	return nil
}

// FillRect fills the rectangle, clipped to the canvas.
func (c *ImageCanvas) FillRect(x, y, w, h int, col color.RGBA) error {
	r := image.Rect(x, y, x+w, y+h).Intersect(c.Img.Bounds())
	if r.Empty() {
		return nil
	}
	draw.Draw(c.Img, r, &image.Uniform{C: col}, image.Point{}, draw.Src)
	return nil
}

// Present is a no-op; the caller owns the pixels.
func (c *ImageCanvas) Present() error { return nil }
