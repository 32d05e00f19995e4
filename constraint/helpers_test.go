package constraint

import (
	"errors"
	"math"
	"testing"

	"github.com/latentform/mold/geom"
	"github.com/latentform/mold/subd"
)

var errEvaluator = errors.New("evaluator exploded")

// fixedNormals answers limit queries with one constant normal per face and
// tessellates to an empty proxy, so no ray is ever occluded.
type fixedNormals struct {
	normals   []geom.Vec3
	limitErr  error
	tessErr   error
	tessCalls int
}

func (f *fixedNormals) Initialized() bool { return true }

func (f *fixedNormals) EvaluateLimit(face int, u, v float64) (geom.Point3, geom.Vec3, error) {
	if f.limitErr != nil {
		return geom.Point3{}, geom.Vec3{}, f.limitErr
	}
	if face < 0 || face >= len(f.normals) {
		return geom.Point3{}, geom.Vec3{}, subd.ErrFaceOutOfRange
	}
	return geom.Pt3(u, v, 0), f.normals[face], nil
}

func (f *fixedNormals) EvaluateDerivatives(int, float64, float64) (geom.Point3, geom.Vec3, geom.Vec3, error) {
	return geom.Point3{}, geom.Vec3{}, geom.Vec3{}, nil
}

func (f *fixedNormals) EvaluateSecondDerivatives(int, float64, float64) (subd.SecondDerivatives, error) {
	return subd.SecondDerivatives{}, nil
}

func (f *fixedNormals) Tessellate(int) (*subd.Mesh, error) {
	f.tessCalls++
	if f.tessErr != nil {
		return nil, f.tessErr
	}
	return &subd.Mesh{}, nil
}

// drafted returns a unit normal whose draft against +Z is deg degrees.
func drafted(deg float64) geom.Vec3 {
	s, c := math.Sincos(deg * math.Pi / 180)
	return geom.V3(c, 0, s)
}

// Faces of the overhang cage.
const (
	overhangFloor = 0
	overhangRoof  = 1
)

// overhangCage is a unit floor facing +Z with a roof at z=1 facing -Z
// that covers the floor strip x < 0.4.
func overhangCage() *subd.Cage {
	return &subd.Cage{
		Vertices: [][3]float64{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
			{-0.05, -0.1, 1}, {-0.05, 1.05, 1}, {0.4, 1.05, 1}, {0.4, -0.1, 1},
		},
		Faces: [][]int{
			{0, 1, 2, 3},
			{4, 5, 6, 7},
		},
	}
}

func mustBilinear(t *testing.T, c *subd.Cage) *subd.Bilinear {
	t.Helper()
	ev, err := subd.NewBilinear(c)
	if err != nil {
		t.Fatalf("NewBilinear: %v", err)
	}
	return ev
}

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

var allCubeFaces = []int{
	subd.CubeBottom, subd.CubeTop, subd.CubeFront,
	subd.CubeRight, subd.CubeBack, subd.CubeLeft,
}
