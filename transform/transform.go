// Package transform implements the projective algebra the rest of the
// pipeline rides on: building a 3x3 mapping between the unit square and an
// arbitrary quadrilateral, its adjugate, composition of two such mappings,
// and applying one to a point. See spec §4.1.
package transform

import (
	"errors"
	"fmt"
)

// ErrDegenerateQuad is returned when squareToQuad's denominator is zero —
// the four source points are collinear or coincident (§4.1, §7).
var ErrDegenerateQuad = errors.New("transform: degenerate quadrilateral")

// Point is a floating-point coordinate. Kept local to this package (rather
// than importing raster.Point) so transform has no dependency on the
// sampled-output types it feeds.
type Point struct {
	X, Y float64
}

// Matrix is a 3x3 projective transform. The field names follow the
// convention in spec §3 exactly: the first index names the column
// (x-related) entry and the second the row (y-related) entry. Applying the
// transform to (x, y) yields:
//
//	x' = (A11*x + A21*y + A31) / (A13*x + A23*y + A33)
//	y' = (A12*x + A22*y + A32) / (A13*x + A23*y + A33)
//
// This is load-bearing: quadToSquare's adjugate formula below leaks this
// exact row/column convention into its output, and a transposed convention
// would silently invert x and y sampling.
type Matrix struct {
	A11, A21, A31 float32
	A12, A22, A32 float32
	A13, A23, A33 float32
}

// Identity is the transform that maps every point to itself.
var Identity = Matrix{
	A11: 1, A22: 1, A33: 1,
}

// SquareToQuad builds the transform sending the unit square (0,0),(1,0),
// (1,1),(0,1) to p0,p1,p2,p3 in that order. Returns ErrDegenerateQuad if
// the projective denominator is zero (for example four collinear points
// that do not form a parallelogram). A parallelogram input, including four
// coincident points, takes the affine branch and is not rejected.
func SquareToQuad(p0, p1, p2, p3 Point) (Matrix, error) {
	dx3 := p0.X - p1.X + p2.X - p3.X
	dy3 := p0.Y - p1.Y + p2.Y - p3.Y

	if dx3 == 0 && dy3 == 0 {
		// Parallelogram: the mapping is affine.
		return Matrix{
			A11: float32(p1.X - p0.X), A21: float32(p2.X - p1.X), A31: float32(p0.X),
			A12: float32(p1.Y - p0.Y), A22: float32(p2.Y - p1.Y), A32: float32(p0.Y),
			A13: 0, A23: 0, A33: 1,
		}, nil
	}

	dx1 := p1.X - p2.X
	dx2 := p3.X - p2.X
	dy1 := p1.Y - p2.Y
	dy2 := p3.Y - p2.Y

	den := dx1*dy2 - dx2*dy1
	if den == 0 {
		return Matrix{}, fmt.Errorf("transform: squareToQuad: %w", ErrDegenerateQuad)
	}

	a13 := (dx3*dy2 - dx2*dy3) / den
	a23 := (dx1*dy3 - dx3*dy1) / den

	return Matrix{
		A11: float32(p1.X - p0.X + a13*p1.X), A21: float32(p3.X - p0.X + a23*p3.X), A31: float32(p0.X),
		A12: float32(p1.Y - p0.Y + a13*p1.Y), A22: float32(p3.Y - p0.Y + a23*p3.Y), A32: float32(p0.Y),
		A13: float32(a13), A23: float32(a23), A33: 1,
	}, nil
}

// QuadToSquare builds the inverse mapping, the adjugate of
// SquareToQuad(p0,p1,p2,p3). Downstream composes this with another
// projective transform, so the missing determinant scalar factor cancels
// out in that composition and is never computed here.
func QuadToSquare(p0, p1, p2, p3 Point) (Matrix, error) {
	sq, err := SquareToQuad(p0, p1, p2, p3)
	if err != nil {
		return Matrix{}, err
	}
	return adjugate(sq), nil
}

// adjugate computes the classical adjugate of m (the transpose of the
// cofactor matrix), which for a projective transform built by SquareToQuad
// is exactly its inverse up to an overall scalar.
func adjugate(m Matrix) Matrix {
	a, b, c := m.A11, m.A21, m.A31
	d, e, f := m.A12, m.A22, m.A32
	g, h, i := m.A13, m.A23, m.A33

	return Matrix{
		A11: e*i - f*h, A21: c*h - b*i, A31: b*f - c*e,
		A12: f*g - d*i, A22: a*i - c*g, A32: c*d - a*f,
		A13: d*h - e*g, A23: b*g - a*h, A33: a*e - b*d,
	}
}

// Multiply composes two transforms so that applying the result is
// equivalent to applying m first, then n.
func Multiply(m, n Matrix) Matrix {
	return Matrix{
		A11: m.A11*n.A11 + m.A12*n.A21 + m.A13*n.A31,
		A21: m.A21*n.A11 + m.A22*n.A21 + m.A23*n.A31,
		A31: m.A31*n.A11 + m.A32*n.A21 + m.A33*n.A31,

		A12: m.A11*n.A12 + m.A12*n.A22 + m.A13*n.A32,
		A22: m.A21*n.A12 + m.A22*n.A22 + m.A23*n.A32,
		A32: m.A31*n.A12 + m.A32*n.A22 + m.A33*n.A32,

		A13: m.A11*n.A13 + m.A12*n.A23 + m.A13*n.A33,
		A23: m.A21*n.A13 + m.A22*n.A23 + m.A23*n.A33,
		A33: m.A31*n.A13 + m.A32*n.A23 + m.A33*n.A33,
	}
}

// Build returns the transform mapping src (a unit-square-order quad) onto
// dst: QuadToSquare(src) composed with SquareToQuad(dst).
func Build(src, dst [4]Point) (Matrix, error) {
	q2s, err := QuadToSquare(src[0], src[1], src[2], src[3])
	if err != nil {
		return Matrix{}, err
	}
	s2q, err := SquareToQuad(dst[0], dst[1], dst[2], dst[3])
	if err != nil {
		return Matrix{}, err
	}
	return Multiply(q2s, s2q), nil
}

// Apply maps a single point through m.
func Apply(m Matrix, p Point) Point {
	x, y := float32(p.X), float32(p.Y)
	den := m.A13*x + m.A23*y + m.A33
	return Point{
		X: float64((m.A11*x + m.A21*y + m.A31) / den),
		Y: float64((m.A12*x + m.A22*y + m.A32) / den),
	}
}

// WarpPoints applies m to every point in pts, returning a new slice.
func WarpPoints(m Matrix, pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Apply(m, p)
	}
	return out
}
