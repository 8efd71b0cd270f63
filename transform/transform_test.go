package transform

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestBuildIdentity(t *testing.T) {
	const s = 21.0
	corners := [4]Point{
		{X: 3.5, Y: 3.5},
		{X: s - 3.5, Y: 3.5},
		{X: s - 3.5, Y: s - 3.5},
		{X: 3.5, Y: s - 3.5},
	}
	T, err := Build(corners, corners)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	pts := []Point{{X: 0, Y: 0}, {X: 10, Y: 5}, {X: s, Y: s}, {X: 3.5, Y: 3.5}}
	for _, p := range pts {
		got := Apply(T, p)
		if !almostEqual(got.X, p.X, 1e-3) || !almostEqual(got.Y, p.Y, 1e-3) {
			t.Errorf("Apply(identity, %v) = %v, want %v", p, got, p)
		}
	}
}

func TestSquareToQuadThenQuadToSquareRoundTrip(t *testing.T) {
	quad := [4]Point{
		{X: 12, Y: 7},
		{X: 140, Y: 20},
		{X: 155, Y: 150},
		{X: 5, Y: 130},
	}

	s2q, err := SquareToQuad(quad[0], quad[1], quad[2], quad[3])
	if err != nil {
		t.Fatalf("SquareToQuad: %v", err)
	}
	q2s, err := QuadToSquare(quad[0], quad[1], quad[2], quad[3])
	if err != nil {
		t.Fatalf("QuadToSquare: %v", err)
	}

	composed := Multiply(q2s, s2q)

	tests := []Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		{X: 0.5, Y: 0.5}, {X: 0.25, Y: 0.75},
	}
	for _, p := range tests {
		got := Apply(composed, p)
		if !almostEqual(got.X, p.X, 1e-2) || !almostEqual(got.Y, p.Y, 1e-2) {
			t.Errorf("Apply(quadToSquare*squareToQuad, %v) = %v, want %v", p, got, p)
		}
	}
}

func TestSquareToQuadDegenerate(t *testing.T) {
	collinear := [4]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	_, err := SquareToQuad(collinear[0], collinear[1], collinear[2], collinear[3])
	if !errors.Is(err, ErrDegenerateQuad) {
		t.Fatalf("SquareToQuad(collinear) error = %v, want ErrDegenerateQuad", err)
	}
}

func TestSquareToQuadParallelogramIsAffine(t *testing.T) {
	quad := [4]Point{{X: 10, Y: 10}, {X: 110, Y: 10}, {X: 110, Y: 110}, {X: 10, Y: 110}}
	T, err := SquareToQuad(quad[0], quad[1], quad[2], quad[3])
	if err != nil {
		t.Fatalf("SquareToQuad: %v", err)
	}
	if T.A13 != 0 || T.A23 != 0 {
		t.Fatalf("expected affine transform (A13=A23=0), got A13=%v A23=%v", T.A13, T.A23)
	}

	for i, j := 0, 0; j < 11; j++ {
		for i = 0; i < 11; i++ {
			p := Apply(T, Point{X: float64(i) / 10, Y: float64(j) / 10})
			wantX, wantY := 10+10*float64(i), 10+10*float64(j)
			if !almostEqual(p.X, wantX, 1e-2) || !almostEqual(p.Y, wantY, 1e-2) {
				t.Fatalf("Apply at (%d,%d) = %v, want (%v,%v)", i, j, p, wantX, wantY)
			}
		}
	}
}
