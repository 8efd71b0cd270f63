package jabcode

import (
	"fmt"

	"github.com/jabcode-go/jabcode-core/bitmap"
	"github.com/jabcode-go/jabcode-core/mask"
	"github.com/jabcode-go/jabcode-core/raster"
	"github.com/jabcode-go/jabcode-core/sampler"
	"github.com/jabcode-go/jabcode-core/transform"
)

// cornerInset is the distance, in modules, from a symbol's edge to its
// finder-pattern centre: a 7x7 finder pattern centres at 3.5 modules in
// from each corner (§6).
const cornerInset = 3.5

// BuildTransform builds the projective transform for a detected symbol.
// corners are the four finder-pattern centres in clockwise order starting
// top-left, as an external finder-pattern detector locates them. side is
// the symbol's module side size. The canonical corners are hard-coded at
// (3.5,3.5), (side.X-3.5,3.5), (side.X-3.5,side.Y-3.5), (3.5,side.Y-3.5).
func BuildTransform(corners [4]transform.Point, side raster.Vector2D) (transform.Matrix, error) {
	canonical := [4]transform.Point{
		{X: cornerInset, Y: cornerInset},
		{X: float64(side.X) - cornerInset, Y: cornerInset},
		{X: float64(side.X) - cornerInset, Y: float64(side.Y) - cornerInset},
		{X: cornerInset, Y: float64(side.Y) - cornerInset},
	}
	T, err := transform.Build(canonical, corners)
	if err != nil {
		return transform.Matrix{}, fmt.Errorf("jabcode: build transform: %w", err)
	}
	return T, nil
}

// SampleSymbol samples the canonical module grid of a located symbol (C2).
func SampleSymbol(bm *bitmap.Bitmap, T transform.Matrix, side raster.Vector2D) (*sampler.Grid, error) {
	g, err := sampler.Symbol(bm, T, side)
	if err != nil {
		return nil, fmt.Errorf("jabcode: sample symbol: %w", err)
	}
	return g, nil
}

// SampleCrossArea samples the metadata strip spanning a host/docked
// boundary (C3).
func SampleCrossArea(bm *bitmap.Bitmap, T transform.Matrix) (*sampler.Grid, error) {
	g, err := sampler.CrossArea(bm, T)
	if err != nil {
		return nil, fmt.Errorf("jabcode: sample cross area: %w", err)
	}
	return g, nil
}

// CodeParams carries the per-symbol parameters the mask selector and
// demasker need: the palette size and the module matrix side size. It
// satisfies the Validate() error convention the rest of this module's
// configuration types use.
type CodeParams struct {
	ColorNumber int
	SideSize    raster.Vector2D
}

// Validate checks that ColorNumber is a supported palette size and
// SideSize is positive.
func (p CodeParams) Validate() error {
	switch p.ColorNumber {
	case 2, 4, 8:
	default:
		return fmt.Errorf("jabcode: unsupported color_number %d", p.ColorNumber)
	}
	if p.SideSize.X <= 0 || p.SideSize.Y <= 0 {
		return fmt.Errorf("jabcode: invalid side size %+v", p.SideSize)
	}
	return nil
}

// EncodeContext is the mutable palette-index matrix the mask selector
// trials its eight candidates against.
type EncodeContext struct {
	Matrix *raster.ModuleMatrix
}

// Validate checks the matrix is non-nil.
func (c EncodeContext) Validate() error {
	if c.Matrix == nil {
		return fmt.Errorf("jabcode: encode context has no matrix")
	}
	return nil
}

// SelectAndApplyMask trials all eight mask patterns against ctx.Matrix,
// applies the lowest-scoring one in place, and returns its id (C5, encoder
// side).
func SelectAndApplyMask(params CodeParams, ctx EncodeContext) (int, error) {
	if err := params.Validate(); err != nil {
		return 0, err
	}
	if err := ctx.Validate(); err != nil {
		return 0, err
	}
	return mask.SelectAndApply(ctx.Matrix, params.ColorNumber), nil
}

// Demask applies the inverse mask XOR to a flattened palette-index stream,
// walking data_map column-major as the encoder wrote it (C6, decoder
// side). It returns ErrLengthOverflow (non-fatal; demasking has already
// stopped) if data was exhausted before data_map.
func Demask(data []int32, dataMap []bool, side raster.Vector2D, maskID, colorNumber int) error {
	want := 0
	for _, nonData := range dataMap {
		if !nonData {
			want++
		}
	}
	mask.Demask(data, dataMap, side, maskID, colorNumber)
	if len(data) < want {
		return fmt.Errorf("jabcode: demask: %w", ErrLengthOverflow)
	}
	return nil
}

// DemaskMatrix is the ModuleMatrix-shaped counterpart of Demask, applying
// the inverse mask XOR to every data cell of m in place.
func DemaskMatrix(m *raster.ModuleMatrix, maskID, colorNumber int) {
	mask.DemaskMatrix(m, maskID, colorNumber)
}
