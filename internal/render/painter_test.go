package render

import (
	"errors"
	"image/color"
	"testing"

	"life-sim/internal/core"
)

type rect struct {
	x, y, w, h int
	c          color.RGBA
}

type fakeCanvas struct {
	rects    []rect
	presents int
	failAt   int
	err      error
}

func (f *fakeCanvas) FillRect(x, y, w, h int, c color.RGBA) error {
	if f.err != nil && len(f.rects) == f.failAt {
		return f.err
	}
	f.rects = append(f.rects, rect{x, y, w, h, c})
	return nil
}

func (f *fakeCanvas) Present() error {
	f.presents++
	return nil
}

func TestCellRect(t *testing.T) {
	x, y, w, h := CellRect(3, 2, 6)
	if x != 19 || y != 13 || w != 4 || h != 4 {
		t.Fatalf("CellRect(3,2,6) = %d,%d %dx%d", x, y, w, h)
	}
}

func TestPainterDrawsEveryCell(t *testing.T) {
	g := core.NewGrid(3, 2)
	g.Set(2, 1, core.Alive)
	canvas := &fakeCanvas{}
	p := NewPainter(canvas)

	if err := p.Render(g); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(canvas.rects) != 6 {
		t.Fatalf("drew %d cells, expected 6", len(canvas.rects))
	}
	if canvas.presents != 1 {
		t.Fatalf("presented %d times, expected 1", canvas.presents)
	}

	pal := DefaultPalette()
	last := canvas.rects[5]
	if last.x != 2*core.CellSize+1 || last.y != core.CellSize+1 || last.w != core.CellSize-2 {
		t.Fatalf("alive cell drawn at %+v", last)
	}
	if last.c != pal.Live {
		t.Fatalf("alive cell colour %v, expected %v", last.c, pal.Live)
	}
	if canvas.rects[0].c != pal.Background {
		t.Fatalf("dead cell colour %v, expected %v", canvas.rects[0].c, pal.Background)
	}
}

func TestPainterStopsOnFillError(t *testing.T) {
	broken := errors.New("no surface")
	canvas := &fakeCanvas{failAt: 2, err: broken}
	p := NewPainter(canvas)

	err := p.Render(core.NewGrid(4, 4))
	if !errors.Is(err, broken) {
		t.Fatalf("err=%v, expected fill failure", err)
	}
	if len(canvas.rects) != 2 || canvas.presents != 0 {
		t.Fatalf("drew %d cells and presented %d times after failure", len(canvas.rects), canvas.presents)
	}
}

func TestThumbnail(t *testing.T) {
	g := core.NewGrid(2, 2)
	g.Set(1, 0, core.Alive)
	pal := DefaultPalette()
	img := Thumbnail(g, pal)
	if got := img.RGBAAt(1, 0); got != pal.Live {
		t.Fatalf("pixel (1,0) = %v, expected live colour", got)
	}
	if got := img.RGBAAt(0, 1); got != pal.Background {
		t.Fatalf("pixel (0,1) = %v, expected background", got)
	}
}

type clearingCanvas struct {
	fakeCanvas
	cleared []color.RGBA
}

func (c *clearingCanvas) Clear(col color.RGBA) error {
	c.cleared = append(c.cleared, col)
	return nil
}

func TestPainterClearsBeforeDrawing(t *testing.T) {
	canvas := &clearingCanvas{}
	p := NewPainter(canvas)
	if err := p.Render(core.NewGrid(2, 2)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(canvas.cleared) != 1 || canvas.cleared[0] != DefaultPalette().Background {
		t.Fatalf("cleared %v, expected one clear to the background", canvas.cleared)
	}
	if len(canvas.rects) != 4 {
		t.Fatalf("drew %d cells, expected 4", len(canvas.rects))
	}
}
