package mask

import (
	"errors"

	"github.com/jabcode-go/jabcode-core/raster"
)

// ErrLengthOverflow is returned by nothing in this package directly — C6
// stops silently per §7 — but is kept here as the documented sentinel for
// callers that want to log the (non-fatal) condition.
var ErrLengthOverflow = errors.New("mask: data stream exhausted before data_map")

// SelectAndApply trials all eight mask patterns against a scratch copy of m,
// scores each with the §4.5 penalty rules, and applies the lowest-scoring
// pattern (ties broken by lowest id) to m in place. It returns the chosen
// mask id.
func SelectAndApply(m *raster.ModuleMatrix, colorNumber int) int {
	// best defaults to mask 0 rather than an invalid sentinel: if every
	// candidate scores >= the initial minimum, the reference falls back to
	// mask 0 instead of leaving no mask selected.
	best := 0
	bestScore := 10000
	for id := 0; id < NumPatterns; id++ {
		trial := m.Clone()
		applyPattern(trial, id, colorNumber)
		s := score(trial, colorNumber)
		if s < bestScore {
			bestScore = s
			best = id
		}
	}
	applyPattern(m, best, colorNumber)
	return best
}

// applyPattern XORs pattern(id, x, y, colorNumber) into every data cell of
// m (cells not marked non-data).
func applyPattern(m *raster.ModuleMatrix, id, colorNumber int) {
	w, h := m.SideSize.X, m.SideSize.Y
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.IsNonData(x, y) {
				continue
			}
			v := int(m.At(x, y))
			m.Set(x, y, int32(v^Pattern(id, x, y, colorNumber)))
		}
	}
}

// Demask XORs pattern(maskID, x, y, colorNumber) into each data entry of a
// palette-index stream, walking data_map column-major (x varies slowest) as
// the encoder wrote it (§4.6). dataMap must be in that same column-major
// order, true meaning non-data, with side.X*side.Y entries. If data is
// exhausted before data_map, demasking stops silently (LengthOverflow is
// not fatal per §7).
func Demask(data []int32, dataMap []bool, side raster.Vector2D, maskID, colorNumber int) {
	count := 0
	i := 0
	for x := 0; x < side.X; x++ {
		for y := 0; y < side.Y; y++ {
			nonData := dataMap[i]
			i++
			if nonData {
				continue
			}
			if count >= len(data) {
				return
			}
			data[count] ^= int32(Pattern(maskID, x, y, colorNumber))
			count++
		}
	}
}

// DemaskMatrix is a ModuleMatrix-shaped convenience over Demask: it XORs
// every data cell of m in place. Unlike Demask's flattened stream, each
// cell's delta depends only on its own (x, y), so traversal order doesn't
// matter here.
func DemaskMatrix(m *raster.ModuleMatrix, maskID, colorNumber int) {
	w, h := m.SideSize.X, m.SideSize.Y
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if m.IsNonData(x, y) {
				continue
			}
			v := int(m.At(x, y))
			m.Set(x, y, int32(v^Pattern(maskID, x, y, colorNumber)))
		}
	}
}
