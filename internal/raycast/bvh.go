package raycast

import (
	"sort"

	"github.com/latentform/mold/geom"
	"github.com/latentform/mold/subd"
)

const (
	// leafSize is the most triangles a BVH leaf holds.
	leafSize = 4

	// boxPad grows node boxes so rays grazing an edge or lying in a
	// triangle's plane are not culled before the exact triangle test.
	boxPad = 1e-9
)

// bvhNode is either an inner node (count == 0, children at left and
// left+1) or a leaf over order[first : first+count].
type bvhNode struct {
	box   geom.Box
	left  int
	first int
	count int
}

// BVH is a bounding volume hierarchy over the triangles of a mesh,
// split at the median centroid of the longest axis.
type BVH struct {
	mesh  *subd.Mesh
	nodes []bvhNode
	order []int
}

// NewBVH builds the hierarchy for m.
func NewBVH(m *subd.Mesh) *BVH {
	n := len(m.Triangles)
	b := &BVH{
		mesh:  m,
		order: make([]int, n),
		nodes: make([]bvhNode, 0, max(1, 2*n/leafSize)),
	}
	if n == 0 {
		return b
	}

	boxes := make([]geom.Box, n)
	centers := make([]geom.Point3, n)
	for i := range n {
		b.order[i] = i
		v0, v1, v2 := m.Triangle(i)
		boxes[i] = geom.EmptyBox().Extend(v0).Extend(v1).Extend(v2).Pad(boxPad)
		centers[i] = boxes[i].Center()
	}

	b.nodes = append(b.nodes, bvhNode{})
	b.build(0, 0, n, boxes, centers)
	return b
}

func (b *BVH) build(node, first, count int, boxes []geom.Box, centers []geom.Point3) {
	box := geom.EmptyBox()
	for _, tri := range b.order[first : first+count] {
		box = box.Union(boxes[tri])
	}

	if count <= leafSize {
		b.nodes[node] = bvhNode{box: box, first: first, count: count}
		return
	}

	axis := box.LongestAxis()
	span := b.order[first : first+count]
	sort.Slice(span, func(i, j int) bool {
		return centers[span[i]].Axis(axis) < centers[span[j]].Axis(axis)
	})

	left := len(b.nodes)
	b.nodes = append(b.nodes, bvhNode{}, bvhNode{})
	b.nodes[node] = bvhNode{box: box, left: left}

	half := count / 2
	b.build(left, first, half, boxes, centers)
	b.build(left+1, first+half, count-half, boxes, centers)
}

// Mesh returns the proxy mesh.
func (b *BVH) Mesh() *subd.Mesh {
	return b.mesh
}

// Nearest returns the closest accepted hit, skipping subtrees whose box
// is entered beyond the best distance found so far.
func (b *BVH) Nearest(r geom.Ray, accept FaceFilter) (Hit, bool) {
	best := Hit{Triangle: -1}
	found := false
	b.traverse(r, func(tNear float64) bool {
		return !found || tNear <= best.T
	}, func(tri int) bool {
		face := b.mesh.FaceOfTriangle[tri]
		if !accept(face) {
			return false
		}
		v0, v1, v2 := b.mesh.Triangle(tri)
		t, ok := geom.IntersectTriangle(r, v0, v1, v2)
		if ok && (!found || t < best.T || (t == best.T && tri < best.Triangle)) {
			best = Hit{T: t, Triangle: tri, Face: face}
			found = true
		}
		return false
	})
	return best, found
}

// Any reports whether an accepted triangle is hit.
func (b *BVH) Any(r geom.Ray, accept FaceFilter) bool {
	hit := false
	b.traverse(r, func(float64) bool { return true }, func(tri int) bool {
		if !accept(b.mesh.FaceOfTriangle[tri]) {
			return false
		}
		v0, v1, v2 := b.mesh.Triangle(tri)
		_, hit = geom.IntersectTriangle(r, v0, v1, v2)
		return hit
	})
	return hit
}

// traverse visits leaves whose boxes the ray enters. enter decides from
// the entry distance whether a node is worth visiting; visit returns true
// to stop the traversal.
func (b *BVH) traverse(r geom.Ray, enter func(tNear float64) bool, visit func(tri int) bool) {
	if len(b.nodes) == 0 || len(b.order) == 0 {
		return
	}
	stack := make([]int, 0, 64)
	stack = append(stack, 0)
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &b.nodes[idx]

		tNear, _, ok := n.box.IntersectRay(r)
		if !ok || !enter(tNear) {
			continue
		}
		if n.count == 0 {
			stack = append(stack, n.left, n.left+1)
			continue
		}
		for _, tri := range b.order[n.first : n.first+n.count] {
			if visit(tri) {
				return
			}
		}
	}
}
