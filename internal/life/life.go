// Package life implements Conway's Game of Life on a bounded grid. Cells past
// the edges do not exist, so border cells simply have fewer neighbours.
package life

import (
	"context"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"life-sim/internal/core"
)

// Randomize returns a w*h grid where every cell is independently alive with
// probability one half.
func Randomize(r *rand.Rand, w, h int) *core.Grid {
	g := core.NewGrid(w, h)
	core.FillBinary(r, g.Cells())
	return g
}

// Neighbors counts the alive cells among the up to eight cells surrounding
// (x, y).
func Neighbors(g *core.Grid, x, y int) int {
	minX := max(0, x-1)
	maxX := min(g.W-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.H-1, y+1)

	cells := g.Cells()
	count := 0
	for ny := minY; ny <= maxY; ny++ {
		row := ny * g.W
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if cells[row+nx] == core.Alive {
				count++
			}
		}
	}
	return count
}

// Next applies the B3/S23 rule to a single cell.
func Next(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Step returns the next generation of g. g itself is left untouched.
func Step(g *core.Grid) *core.Grid {
	next := core.NewGrid(g.W, g.H)
	stepRows(g, next, 0, g.H)
	return next
}

// StepParallel computes the same result as Step, splitting the rows into
// bands that are evaluated concurrently. Each band writes only its own rows.
func StepParallel(ctx context.Context, g *core.Grid, workers int) (*core.Grid, error) {
	if workers <= 1 || g.H < 2 {
		return Step(g), nil
	}
	if workers > g.H {
		workers = g.H
	}

	next := core.NewGrid(g.W, g.H)
	band := (g.H + workers - 1) / workers

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for y0 := 0; y0 < g.H; y0 += band {
		y0, y1 := y0, min(g.H, y0+band)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			stepRows(g, next, y0, y1)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return next, nil
}

func stepRows(cur, next *core.Grid, y0, y1 int) {
	out := next.Cells()
	for y := y0; y < y1; y++ {
		for x := 0; x < cur.W; x++ {
			if Next(cur.Alive(x, y), Neighbors(cur, x, y)) {
				out[next.Index(x, y)] = core.Alive
			}
		}
	}
}
