// Package subd defines the boundary to the limit-surface evaluator that
// the analysis packages query, plus two reference evaluators: Bilinear,
// which treats every quad of a control cage as a bilinear patch, and
// Parametric, which evaluates analytic surfaces in closed form.
//
// Production hosts plug in their own subdivision evaluator by implementing
// Evaluator. Analysis components hold the interface value only; they never
// mutate, copy or close it.
package subd

import (
	"errors"

	"github.com/latentform/mold/geom"
)

var (
	// ErrNotInitialized is returned when an evaluator is queried before
	// it has a surface to evaluate.
	ErrNotInitialized = errors.New("subd: evaluator not initialized")

	// ErrFaceOutOfRange is returned for a face index the surface does not have.
	ErrFaceOutOfRange = errors.New("subd: face index out of range")

	// ErrInvalidCage is returned when a control cage fails validation.
	ErrInvalidCage = errors.New("subd: invalid control cage")
)

// SecondDerivatives holds the position and partial derivatives of the
// limit surface at one parametric location.
type SecondDerivatives struct {
	Position geom.Point3
	Du, Dv   geom.Vec3
	Duu, Dvv geom.Vec3
	Duv      geom.Vec3
}

// Evaluator evaluates a limit surface exactly at parametric coordinates
// (u, v) in [0,1]^2 of a face, and produces a disposable triangle proxy of
// the whole surface for ray casting.
//
// Implementations must make the query methods safe for concurrent use if
// callers enable parallel analysis; the analysis packages only read.
type Evaluator interface {
	// Initialized reports whether the evaluator has a surface.
	Initialized() bool

	// EvaluateLimit returns the limit position and unit normal.
	EvaluateLimit(face int, u, v float64) (geom.Point3, geom.Vec3, error)

	// EvaluateDerivatives returns the limit position and first derivatives.
	EvaluateDerivatives(face int, u, v float64) (geom.Point3, geom.Vec3, geom.Vec3, error)

	// EvaluateSecondDerivatives returns position, first and second derivatives.
	EvaluateSecondDerivatives(face int, u, v float64) (SecondDerivatives, error)

	// Tessellate triangulates the whole surface at the given refinement level.
	Tessellate(level int) (*Mesh, error)
}

// Mesh is a triangulated proxy of a surface. FaceOfTriangle[i] is the
// surface face triangle i was generated from.
type Mesh struct {
	Vertices       []geom.Point3
	Triangles      [][3]int
	FaceOfTriangle []int
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Triangle returns the three corners of triangle i.
func (m *Mesh) Triangle(i int) (geom.Point3, geom.Point3, geom.Point3) {
	t := m.Triangles[i]
	return m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
}
