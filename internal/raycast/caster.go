// Package raycast answers ray queries against a triangulated surface proxy.
//
// Two interchangeable casters are provided: Brute scans every triangle
// per ray, BVH prunes with a bounding volume hierarchy. Both return the
// same hits; callers choose by Kind without changing their own signatures.
package raycast

import (
	"github.com/latentform/mold/geom"
	"github.com/latentform/mold/subd"
)

// Hit is the nearest intersection of a ray with the proxy.
type Hit struct {
	T        float64 // ray parameter of the hit
	Triangle int     // proxy triangle index
	Face     int     // surface face the triangle came from
}

// FaceFilter selects which surface faces a query considers.
type FaceFilter func(face int) bool

// Except accepts every face but f.
func Except(f int) FaceFilter {
	return func(face int) bool { return face != f }
}

// Only accepts face f alone.
func Only(f int) FaceFilter {
	return func(face int) bool { return face == f }
}

// Caster intersects rays with a read-only proxy mesh.
// Implementations are safe for concurrent queries.
type Caster interface {
	// Nearest returns the closest hit among triangles whose face passes accept.
	Nearest(r geom.Ray, accept FaceFilter) (Hit, bool)

	// Any reports whether some accepted triangle is hit.
	Any(r geom.Ray, accept FaceFilter) bool

	// Mesh returns the proxy the caster was built from.
	Mesh() *subd.Mesh
}

// Kind selects a Caster implementation.
type Kind int

const (
	// KindBrute tests every triangle per ray.
	KindBrute Kind = iota
	// KindBVH traverses a bounding volume hierarchy.
	KindBVH
)

// String returns the implementation name.
func (k Kind) String() string {
	switch k {
	case KindBVH:
		return "bvh"
	default:
		return "brute"
	}
}

// New builds a caster of the given kind over m.
func New(kind Kind, m *subd.Mesh) Caster {
	if kind == KindBVH {
		return NewBVH(m)
	}
	return NewBrute(m)
}
