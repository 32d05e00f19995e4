package geom

import "math"

// Closed-form eigendecomposition of 2x2 matrices.
// The shape operator of a surface is a 2x2 linear map on the tangent plane,
// so a general linear algebra package is not needed.

// Vec2 is a direction in the (u, v) parameter plane.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Length returns the length of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// normalizeParam returns v scaled to unit length, or (1, 0) when v is
// shorter than Epsilon.
func normalizeParam(v Vec2) Vec2 {
	length := v.Length()
	if length <= Epsilon {
		return Vec2{X: 1}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Mat2 is a row-major 2x2 matrix:
//
//	| A B |
//	| C D |
type Mat2 struct {
	A, B, C, D float64
}

// Trace returns A + D.
func (m Mat2) Trace() float64 {
	return m.A + m.D
}

// Det returns AD - BC.
func (m Mat2) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// Mul returns the matrix product m × n.
func (m Mat2) Mul(n Mat2) Mat2 {
	return Mat2{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
	}
}

// Apply returns m × v.
func (m Mat2) Apply(v Vec2) Vec2 {
	return Vec2{X: m.A*v.X + m.B*v.Y, Y: m.C*v.X + m.D*v.Y}
}

// Inverse returns the inverse of m. The second result is false, and the
// zero matrix is returned, when |det| < Epsilon.
func (m Mat2) Inverse() (Mat2, bool) {
	det := m.Det()
	if math.Abs(det) < Epsilon {
		return Mat2{}, false
	}
	inv := 1 / det
	return Mat2{A: m.D * inv, B: -m.B * inv, C: -m.C * inv, D: m.A * inv}, true
}

// Eigen2 is the eigendecomposition of a 2x2 matrix.
// Values[0] has the larger absolute value: |Values[0]| >= |Values[1]|.
// Vectors[i] is the unit eigenvector for Values[i].
type Eigen2 struct {
	Values  [2]float64
	Vectors [2]Vec2
}

// Eigen computes the eigenvalues and eigenvectors of m in closed form.
//
// The discriminant trace^2 - 4*det is clamped at zero, so matrices whose
// eigenvalues are complex only through round-off collapse to a repeated
// real eigenvalue. When both off-diagonal entries are below Epsilon the
// matrix is treated as diagonal and the standard basis vectors are
// returned, each paired with its own diagonal entry.
func (m Mat2) Eigen() Eigen2 {
	trace := m.Trace()
	disc := trace*trace - 4*m.Det()
	if disc < 0 {
		disc = 0
	}
	sqrtDisc := math.Sqrt(disc)

	l1 := (trace + sqrtDisc) * 0.5
	l2 := (trace - sqrtDisc) * 0.5

	// Order by magnitude, not by value.
	if math.Abs(l2) > math.Abs(l1) {
		l1, l2 = l2, l1
	}

	var v1, v2 Vec2
	switch {
	case math.Abs(m.B) > Epsilon:
		v1 = Vec2{X: m.B, Y: l1 - m.A}
		v2 = Vec2{X: m.B, Y: l2 - m.A}
	case math.Abs(m.C) > Epsilon:
		v1 = Vec2{X: l1 - m.D, Y: m.C}
		v2 = Vec2{X: l2 - m.D, Y: m.C}
	default:
		// Diagonal: pair each axis with the eigenvalue it carries.
		v1, v2 = Vec2{X: 1}, Vec2{Y: 1}
		if math.Abs(l1-m.A) > math.Abs(l1-m.D) {
			v1, v2 = v2, v1
		}
	}

	return Eigen2{
		Values:  [2]float64{l1, l2},
		Vectors: [2]Vec2{normalizeParam(v1), normalizeParam(v2)},
	}
}
