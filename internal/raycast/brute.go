package raycast

import (
	"github.com/latentform/mold/geom"
	"github.com/latentform/mold/subd"
)

// Brute tests every triangle of the mesh, O(triangles) per ray.
type Brute struct {
	mesh *subd.Mesh
}

// NewBrute wraps m.
func NewBrute(m *subd.Mesh) *Brute {
	return &Brute{mesh: m}
}

// Mesh returns the proxy mesh.
func (b *Brute) Mesh() *subd.Mesh {
	return b.mesh
}

// Nearest returns the closest accepted hit.
func (b *Brute) Nearest(r geom.Ray, accept FaceFilter) (Hit, bool) {
	best := Hit{Triangle: -1}
	found := false
	for i := range b.mesh.Triangles {
		face := b.mesh.FaceOfTriangle[i]
		if !accept(face) {
			continue
		}
		v0, v1, v2 := b.mesh.Triangle(i)
		t, ok := geom.IntersectTriangle(r, v0, v1, v2)
		if ok && (!found || t < best.T) {
			best = Hit{T: t, Triangle: i, Face: face}
			found = true
		}
	}
	return best, found
}

// Any reports whether an accepted triangle is hit, stopping at the first.
func (b *Brute) Any(r geom.Ray, accept FaceFilter) bool {
	for i := range b.mesh.Triangles {
		if !accept(b.mesh.FaceOfTriangle[i]) {
			continue
		}
		v0, v1, v2 := b.mesh.Triangle(i)
		if _, ok := geom.IntersectTriangle(r, v0, v1, v2); ok {
			return true
		}
	}
	return false
}
