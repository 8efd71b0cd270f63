package mask

import "github.com/jabcode-go/jabcode-core/raster"

// Penalty score weights (§4.5, §9). Part of the wire contract: must not be
// changed.
const (
	W1 = 100
	W2 = 3
	W3 = 3
)

// finderPair is one (c1, c2) candidate for the rule-1 lookalike check.
type finderPair struct{ c1, c2 int }

// finderPairs returns the four canonical finder-pattern colour pairs for a
// given palette size. For C=8 the four core colours are FP0..FP3 with
// c2 = 7 - c1, mirroring the complementary pairing the spec gives for C=4.
func finderPairs(colorNumber int) [4]finderPair {
	switch colorNumber {
	case 2:
		return [4]finderPair{{0, 1}, {1, 0}, {1, 0}, {1, 0}}
	case 4:
		return [4]finderPair{{0, 3}, {1, 2}, {2, 1}, {3, 0}}
	case 8:
		const fp0, fp1, fp2, fp3 = 0, 1, 2, 3
		return [4]finderPair{
			{fp0, 7 - fp0},
			{fp1, 7 - fp1},
			{fp2, 7 - fp2},
			{fp3, 7 - fp3},
		}
	default:
		panic("mask: unsupported color number")
	}
}

// score computes the §4.5 penalty score over m for the given palette size.
func score(m *raster.ModuleMatrix, colorNumber int) int {
	return W1*rule1(m, colorNumber) + W2*rule2(m) + rule3(m)
}

// rule1 counts interior cells whose centred 5-cell horizontal AND vertical
// runs both match the repeating c1,c2,c1,c2,c1 pattern of one of the four
// canonical finder patterns for colorNumber.
func rule1(m *raster.ModuleMatrix, colorNumber int) int {
	pairs := finderPairs(colorNumber)
	w, h := m.SideSize.X, m.SideSize.Y
	hits := 0
	for i := 2; i <= h-3; i++ {
		for j := 2; j <= w-3; j++ {
			for _, p := range pairs {
				if runMatches(m, j, i, 1, 0, p) && runMatches(m, j, i, 0, 1, p) {
					hits++
					break
				}
			}
		}
	}
	return hits
}

// runMatches reports whether the 5-cell run centred at (j,i) stepping by
// (dx,dy) per cell equals c1,c2,c1,c2,c1.
func runMatches(m *raster.ModuleMatrix, j, i, dx, dy int, p finderPair) bool {
	want := [5]int{p.c1, p.c2, p.c1, p.c2, p.c1}
	for k := -2; k <= 2; k++ {
		x, y := j+k*dx, i+k*dy
		if m.IsNonData(x, y) {
			return false
		}
		if int(m.At(x, y)) != want[k+2] {
			return false
		}
	}
	return true
}

// rule2 counts 2x2 sub-blocks whose four cells are all non-sentinel and
// share the same palette index.
func rule2(m *raster.ModuleMatrix) int {
	w, h := m.SideSize.X, m.SideSize.Y
	count := 0
	for y := 0; y < h-1; y++ {
		for x := 0; x < w-1; x++ {
			if m.IsNonData(x, y) || m.IsNonData(x+1, y) || m.IsNonData(x, y+1) || m.IsNonData(x+1, y+1) {
				continue
			}
			v := m.At(x, y)
			if m.At(x+1, y) == v && m.At(x, y+1) == v && m.At(x+1, y+1) == v {
				count++
			}
		}
	}
	return count
}

// rule3 scans horizontal and vertical runs of >= 5 identical non-sentinel
// cells, adding W3 + (run_length - 5) per qualifying run. Sentinel cells
// break runs.
func rule3(m *raster.ModuleMatrix) int {
	w, h := m.SideSize.X, m.SideSize.Y
	total := 0
	for y := 0; y < h; y++ {
		total += scanRun(w, func(x int) (int32, bool) {
			if m.IsNonData(x, y) {
				return 0, false
			}
			return m.At(x, y), true
		})
	}
	for x := 0; x < w; x++ {
		total += scanRun(h, func(y int) (int32, bool) {
			if m.IsNonData(x, y) {
				return 0, false
			}
			return m.At(x, y), true
		})
	}
	return total
}

// scanRun walks n positions via at(k), accumulating the §4.5 rule-3
// contribution for each maximal run of equal non-sentinel values.
func scanRun(n int, at func(int) (int32, bool)) int {
	total := 0
	runLen := 0
	var runVal int32
	flush := func() {
		if runLen >= 5 {
			total += W3 + (runLen - 5)
		}
	}
	for k := 0; k < n; k++ {
		v, ok := at(k)
		if !ok {
			flush()
			runLen = 0
			continue
		}
		if runLen > 0 && v == runVal {
			runLen++
		} else {
			flush()
			runVal = v
			runLen = 1
		}
	}
	flush()
	return total
}
