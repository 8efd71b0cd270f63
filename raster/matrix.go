package raster

// NonData is the sentinel cell value marking a module that does not carry
// palette data — finder patterns, alignment patterns, and metadata regions
// are recorded this way in a ModuleMatrix (§3).
const NonData int32 = -1

// ModuleMatrix is the palette-index module grid that the mask selector and
// demasker mutate in place. The samplers do not produce it: their raw
// per-channel averages come out as sampler.Grid, which an external colour
// classifier turns into a ModuleMatrix of palette indices.
type ModuleMatrix struct {
	SideSize Vector2D
	cells    []int32
	dataMap  []bool // true where the module is non-data (finder/alignment/metadata)
}

// NewModuleMatrix allocates a matrix of the given side size with every cell
// zeroed and every cell marked as data (DataMap all false).
func NewModuleMatrix(side Vector2D) *ModuleMatrix {
	n := side.X * side.Y
	return &ModuleMatrix{
		SideSize: side,
		cells:    make([]int32, n),
		dataMap:  make([]bool, n),
	}
}

func (m *ModuleMatrix) index(x, y int) int {
	return y*m.SideSize.X + x
}

func (m *ModuleMatrix) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.SideSize.X && y < m.SideSize.Y
}

// At returns the cell value at module coordinate (x, y).
func (m *ModuleMatrix) At(x, y int) int32 {
	if m == nil || !m.inBounds(x, y) {
		return NonData
	}
	return m.cells[m.index(x, y)]
}

// Set stores a cell value at module coordinate (x, y). Out-of-bounds
// coordinates are silently ignored, matching the nil-safe write style the
// rest of this package uses for grid mutation.
func (m *ModuleMatrix) Set(x, y int, v int32) {
	if m == nil || !m.inBounds(x, y) {
		return
	}
	m.cells[m.index(x, y)] = v
}

// IsNonData reports whether the module at (x, y) lies under a
// finder/alignment/metadata region.
func (m *ModuleMatrix) IsNonData(x, y int) bool {
	if m == nil || !m.inBounds(x, y) {
		return true
	}
	return m.dataMap[m.index(x, y)]
}

// MarkNonData flags the module at (x, y) as non-data.
func (m *ModuleMatrix) MarkNonData(x, y int) {
	if m == nil || !m.inBounds(x, y) {
		return
	}
	m.dataMap[m.index(x, y)] = true
}

// SetRect marks every module in [x0,x1)×[y0,y1) as non-data — the shape
// finder patterns, alignment patterns, and metadata blocks take.
func (m *ModuleMatrix) SetRect(x0, y0, x1, y1 int) {
	if m == nil {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > m.SideSize.X {
		x1 = m.SideSize.X
	}
	if y1 > m.SideSize.Y {
		y1 = m.SideSize.Y
	}
	for y := y0; y < y1; y++ {
		row := y * m.SideSize.X
		for x := x0; x < x1; x++ {
			m.dataMap[row+x] = true
		}
	}
}

// Clone returns a deep copy, used by the mask selector to trial each of the
// eight candidate patterns without disturbing the real matrix (§4.5).
func (m *ModuleMatrix) Clone() *ModuleMatrix {
	if m == nil {
		return nil
	}
	out := &ModuleMatrix{
		SideSize: m.SideSize,
		cells:    make([]int32, len(m.cells)),
		dataMap:  make([]bool, len(m.dataMap)),
	}
	copy(out.cells, m.cells)
	copy(out.dataMap, m.dataMap)
	return out
}

// DataMap returns the non-data flag in column-major order (x varies
// slowest), the traversal order the demasker's §4.6 walk requires.
func (m *ModuleMatrix) DataMap() []bool {
	if m == nil {
		return nil
	}
	out := make([]bool, 0, len(m.dataMap))
	for x := 0; x < m.SideSize.X; x++ {
		for y := 0; y < m.SideSize.Y; y++ {
			out = append(out, m.IsNonData(x, y))
		}
	}
	return out
}

// RGB is the ordered-palette entry type the GLOSSARY names; see
// raster.Palette.
type RGB struct {
	R, G, B uint8
}

// Palette is an ordered table of color_number RGB triples; a ModuleMatrix
// cell in palette-index mode indexes into one. The core never constructs or
// interprets a Palette itself (colour classification is an external
// collaborator, §6) — this type exists so the glossary term has a concrete
// Go shape other packages and tests can reference.
type Palette []RGB
