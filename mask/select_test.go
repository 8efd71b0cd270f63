package mask

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jabcode-go/jabcode-core/raster"
)

func TestApplyPattern0MatchesClosedForm(t *testing.T) {
	side := raster.Vector2D{X: 8, Y: 8}
	m := raster.NewModuleMatrix(side)
	applyPattern(m, 0, 4)

	for y := 0; y < side.Y; y++ {
		for x := 0; x < side.X; x++ {
			want := int32((x + y) % 4)
			if got := m.At(x, y); got != want {
				t.Fatalf("cell (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestApplyPatternTwiceRestoresZeros(t *testing.T) {
	side := raster.Vector2D{X: 8, Y: 8}
	m := raster.NewModuleMatrix(side)
	applyPattern(m, 0, 4)
	applyPattern(m, 0, 4)

	got := flatten(m, side)
	want := make([]int32, side.X*side.Y)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("double-masked matrix mismatch (-want +got):\n%s", diff)
	}
}

// flatten reads m's cells in row-major order into a plain slice, the shape
// cmp.Diff can compare directly since ModuleMatrix itself keeps its cell
// buffer unexported.
func flatten(m *raster.ModuleMatrix, side raster.Vector2D) []int32 {
	out := make([]int32, 0, side.X*side.Y)
	for y := 0; y < side.Y; y++ {
		for x := 0; x < side.X; x++ {
			out = append(out, m.At(x, y))
		}
	}
	return out
}

func TestDemaskSkipsNonDataAndStopsAtShortStream(t *testing.T) {
	side := raster.Vector2D{X: 4, Y: 4}
	m := raster.NewModuleMatrix(side)
	m.SetRect(0, 0, 1, 4) // mark the first column non-data

	applyPattern(m, 2, 4)

	dataMap := m.DataMap()
	full := make([]int32, 0, side.X*side.Y)
	for x := 0; x < side.X; x++ {
		for y := 0; y < side.Y; y++ {
			if !m.IsNonData(x, y) {
				full = append(full, m.At(x, y))
			}
		}
	}

	// Demasking a full-length stream must restore zeros.
	stream := append([]int32(nil), full...)
	Demask(stream, dataMap, side, 2, 4)
	if diff := cmp.Diff(make([]int32, len(stream)), stream); diff != "" {
		t.Fatalf("demasked stream mismatch (-want +got):\n%s", diff)
	}

	// A short stream must stop silently rather than index out of range.
	short := append([]int32(nil), full[:len(full)-2]...)
	Demask(short, dataMap, side, 2, 4) // must not panic
}

func TestSelectAndApplyIsDeterministic(t *testing.T) {
	side := raster.Vector2D{X: 10, Y: 10}
	m1 := raster.NewModuleMatrix(side)
	m2 := raster.NewModuleMatrix(side)
	for x := 0; x < side.X; x++ {
		for y := 0; y < side.Y; y++ {
			v := int32((x * 3) % 4)
			m1.Set(x, y, v)
			m2.Set(x, y, v)
		}
	}

	id1 := SelectAndApply(m1, 4)
	id2 := SelectAndApply(m2, 4)
	if id1 != id2 {
		t.Fatalf("SelectAndApply chose different ids on identical inputs: %d vs %d", id1, id2)
	}

	// Demasking with the chosen id must restore the original matrix.
	DemaskMatrix(m1, id1, 4)
	for x := 0; x < side.X; x++ {
		for y := 0; y < side.Y; y++ {
			want := int32((x * 3) % 4)
			if got := m1.At(x, y); got != want {
				t.Fatalf("cell (%d,%d) after demask = %d, want %d", x, y, got, want)
			}
		}
	}
}
