package subd

import (
	"fmt"

	"github.com/latentform/mold/geom"
)

// Bilinear evaluates each quad of a cage as the bilinear patch
//
//	P(u,v) = (1-u)(1-v)·p0 + u(1-v)·p1 + uv·p2 + (1-u)v·p3
//
// Derivatives are exact for that patch: Duu and Dvv vanish and Duv is
// constant. Bilinear is read-only after construction and safe for
// concurrent use.
type Bilinear struct {
	quads [][4]geom.Point3
}

// NewBilinear builds an evaluator over a validated cage.
func NewBilinear(c *Cage) (*Bilinear, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	b := &Bilinear{quads: make([][4]geom.Point3, len(c.Faces))}
	for i, f := range c.Faces {
		for k := range 4 {
			b.quads[i][k] = c.Point(f[k])
		}
	}
	return b, nil
}

// FaceCount returns the number of faces.
func (b *Bilinear) FaceCount() int {
	if b == nil {
		return 0
	}
	return len(b.quads)
}

// Initialized reports whether the evaluator has at least one face.
func (b *Bilinear) Initialized() bool {
	return b != nil && len(b.quads) > 0
}

func (b *Bilinear) quad(face int) (*[4]geom.Point3, error) {
	if !b.Initialized() {
		return nil, ErrNotInitialized
	}
	if face < 0 || face >= len(b.quads) {
		return nil, fmt.Errorf("%w: %d of %d", ErrFaceOutOfRange, face, len(b.quads))
	}
	return &b.quads[face], nil
}

func bilerp(q *[4]geom.Point3, u, v float64) geom.Point3 {
	bottom := q[0].Lerp(q[1], u)
	top := q[3].Lerp(q[2], u)
	return bottom.Lerp(top, v)
}

func bilinearDerivatives(q *[4]geom.Point3, u, v float64) (du, dv geom.Vec3) {
	du = q[1].Sub(q[0]).Mul(1 - v).Add(q[2].Sub(q[3]).Mul(v))
	dv = q[3].Sub(q[0]).Mul(1 - u).Add(q[2].Sub(q[1]).Mul(u))
	return du, dv
}

// EvaluateLimit returns the patch position and unit normal du × dv.
func (b *Bilinear) EvaluateLimit(face int, u, v float64) (geom.Point3, geom.Vec3, error) {
	q, err := b.quad(face)
	if err != nil {
		return geom.Point3{}, geom.Vec3{}, err
	}
	du, dv := bilinearDerivatives(q, u, v)
	return bilerp(q, u, v), du.Cross(dv).NormalizeOr(geom.Epsilon, geom.UnitZ), nil
}

// EvaluateDerivatives returns the patch position and first derivatives.
func (b *Bilinear) EvaluateDerivatives(face int, u, v float64) (geom.Point3, geom.Vec3, geom.Vec3, error) {
	q, err := b.quad(face)
	if err != nil {
		return geom.Point3{}, geom.Vec3{}, geom.Vec3{}, err
	}
	du, dv := bilinearDerivatives(q, u, v)
	return bilerp(q, u, v), du, dv, nil
}

// EvaluateSecondDerivatives returns position, first and second derivatives.
func (b *Bilinear) EvaluateSecondDerivatives(face int, u, v float64) (SecondDerivatives, error) {
	q, err := b.quad(face)
	if err != nil {
		return SecondDerivatives{}, err
	}
	du, dv := bilinearDerivatives(q, u, v)
	return SecondDerivatives{
		Position: bilerp(q, u, v),
		Du:       du,
		Dv:       dv,
		Duv:      q[0].Sub(q[1]).Add(q[2].Sub(q[3])),
	}, nil
}

// Tessellate splits every face into a 2^level × 2^level grid of quads,
// two triangles each, wound so that triangle normals agree with du × dv.
// Negative levels are treated as 0.
func (b *Bilinear) Tessellate(level int) (*Mesh, error) {
	if !b.Initialized() {
		return nil, ErrNotInitialized
	}
	return tessellateGrid(len(b.quads), level, func(face int, u, v float64) geom.Point3 {
		return bilerp(&b.quads[face], u, v)
	}), nil
}

// tessellateGrid samples position(face, u, v) on a regular grid per face.
// Vertices are not shared between faces.
func tessellateGrid(faces, level int, position func(face int, u, v float64) geom.Point3) *Mesh {
	if level < 0 {
		level = 0
	}
	n := 1 << level
	stride := n + 1
	m := &Mesh{
		Vertices:       make([]geom.Point3, 0, faces*stride*stride),
		Triangles:      make([][3]int, 0, faces*2*n*n),
		FaceOfTriangle: make([]int, 0, faces*2*n*n),
	}
	for face := range faces {
		base := len(m.Vertices)
		for j := 0; j <= n; j++ {
			for i := 0; i <= n; i++ {
				m.Vertices = append(m.Vertices, position(face, float64(i)/float64(n), float64(j)/float64(n)))
			}
		}
		for j := range n {
			for i := range n {
				a := base + j*stride + i
				b := a + 1
				c := a + stride + 1
				d := a + stride
				m.Triangles = append(m.Triangles, [3]int{a, b, c}, [3]int{a, c, d})
				m.FaceOfTriangle = append(m.FaceOfTriangle, face, face)
			}
		}
	}
	return m
}
