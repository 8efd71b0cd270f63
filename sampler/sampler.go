// Package sampler implements the sub-pixel grid sampler (C2) and the
// cross-area sampler (C3): walking a canonical module grid through a
// perspective transform and averaging a 3x3 neighbourhood of the source
// bitmap per module (§4.2, §4.3).
package sampler

import (
	"errors"
	"fmt"

	"github.com/jabcode-go/jabcode-core/bitmap"
	"github.com/jabcode-go/jabcode-core/raster"
	"github.com/jabcode-go/jabcode-core/transform"
)

// ErrOffImage is returned when a sampled module centre maps more than one
// pixel outside the raster — the symbol is mislocated and the caller must
// re-detect (§7).
var ErrOffImage = errors.New("sampler: module centre maps off image")

// CrossAreaWidth is the module width of the strip spanning a host/docked
// symbol boundary that carries slave-symbol metadata (§4.3).
const CrossAreaWidth = 14

// SampleAreaWidth and SampleAreaHeight are the cross-area sampler's fixed
// grid dimensions (§4.3).
const (
	SampleAreaWidth  = CrossAreaWidth/2 - 2
	SampleAreaHeight = 20
)

// Channels holds the sampled per-channel averages for one module cell.
type Channels struct {
	R, G, B, A uint8
}

// Grid is the sampled output of Symbol/CrossArea: one averaged channel
// vector per canonical module cell, row-major with SideSize.X columns.
type Grid struct {
	SideSize raster.Vector2D
	Cells    []Channels
}

func newGrid(side raster.Vector2D) *Grid {
	return &Grid{SideSize: side, Cells: make([]Channels, side.X*side.Y)}
}

func (g *Grid) set(x, y int, c Channels) {
	g.Cells[y*g.SideSize.X+x] = c
}

// At returns the sampled channel vector for module (x, y).
func (g *Grid) At(x, y int) Channels {
	return g.Cells[y*g.SideSize.X+x]
}

// Symbol samples the canonical module grid of the given side size through
// T, producing one averaged channel vector per module (C2, §4.2).
func Symbol(bm *bitmap.Bitmap, T transform.Matrix, side raster.Vector2D) (*Grid, error) {
	return sampleGrid(bm, T, side, 0)
}

// CrossArea samples the narrow strip between a host and a docked slave
// symbol where slave metadata lives (C3, §4.3). The canonical x coordinate
// is offset by CrossAreaWidth/2 modules so sampling starts inside the
// strip.
func CrossArea(bm *bitmap.Bitmap, T transform.Matrix) (*Grid, error) {
	side := raster.Vector2D{X: SampleAreaWidth, Y: SampleAreaHeight}
	return sampleGrid(bm, T, side, CrossAreaWidth/2)
}

// sampleGrid is the shared walk behind Symbol and CrossArea: for each
// canonical cell (j, i), build the cell centre (offset in x by xOffset
// modules), warp it through T, truncate to a source pixel, and average a
// 3x3 neighbourhood around it.
func sampleGrid(bm *bitmap.Bitmap, T transform.Matrix, side raster.Vector2D, xOffset int) (*Grid, error) {
	out := newGrid(side)
	for i := 0; i < side.Y; i++ {
		for j := 0; j < side.X; j++ {
			centre := transform.Point{X: float64(j+xOffset) + 0.5, Y: float64(i) + 0.5}
			warped := transform.Apply(T, centre)

			mx, my := int(warped.X), int(warped.Y)
			cx, cy, ok := bm.Clamp(mx, my)
			if !ok {
				return nil, fmt.Errorf("sampler: cell (%d,%d) maps to (%d,%d): %w", j, i, mx, my, ErrOffImage)
			}

			out.set(j, i, average3x3(bm, cx, cy))
		}
	}
	return out, nil
}

// average3x3 averages the 3x3 neighbourhood centred at (cx, cy), replacing
// any neighbour that would leave the raster with the centre pixel
// (edge-replicate boundary, §4.2 step 4).
func average3x3(bm *bitmap.Bitmap, cx, cy int) Channels {
	var sumR, sumG, sumB, sumA int
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := cx+dx, cy+dy
			if !bm.InBounds(x, y) {
				x, y = cx, cy
			}
			r, g, b, a := bm.At(x, y)
			sumR += int(r)
			sumG += int(g)
			sumB += int(b)
			sumA += int(a)
			n++
		}
	}
	return Channels{
		R: roundDiv(sumR, n),
		G: roundDiv(sumG, n),
		B: roundDiv(sumB, n),
		A: roundDiv(sumA, n),
	}
}

func roundDiv(sum, n int) uint8 {
	return uint8((sum + n/2) / n)
}
