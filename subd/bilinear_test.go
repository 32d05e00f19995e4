package subd

import (
	"errors"
	"testing"

	"github.com/latentform/mold/geom"
)

func newCube(t *testing.T) *Bilinear {
	t.Helper()
	b, err := NewBilinear(UnitCube())
	if err != nil {
		t.Fatalf("NewBilinear: %v", err)
	}
	return b
}

func TestBilinear_CubeNormalsOutward(t *testing.T) {
	b := newCube(t)

	want := map[int]geom.Vec3{
		CubeBottom: geom.V3(0, 0, -1),
		CubeTop:    geom.V3(0, 0, 1),
		CubeFront:  geom.V3(0, -1, 0),
		CubeRight:  geom.V3(1, 0, 0),
		CubeBack:   geom.V3(0, 1, 0),
		CubeLeft:   geom.V3(-1, 0, 0),
	}
	for face, n := range want {
		pos, normal, err := b.EvaluateLimit(face, 0.5, 0.5)
		if err != nil {
			t.Fatalf("EvaluateLimit(%d): %v", face, err)
		}
		if !normal.Approx(n, 1e-12) {
			t.Errorf("face %d normal = %v, want %v", face, normal, n)
		}
		// The face center lies half a unit from the cube center along the normal.
		center := geom.Pt3(0.5, 0.5, 0.5).Add(n.Mul(0.5))
		if !pos.Approx(center, 1e-12) {
			t.Errorf("face %d center = %v, want %v", face, pos, center)
		}
	}
}

func TestBilinear_Derivatives(t *testing.T) {
	b := newCube(t)
	d, err := b.EvaluateSecondDerivatives(CubeTop, 0.25, 0.75)
	if err != nil {
		t.Fatalf("EvaluateSecondDerivatives: %v", err)
	}
	if !d.Position.Approx(geom.Pt3(0.25, 0.75, 1), 1e-12) {
		t.Errorf("Position = %v", d.Position)
	}
	if !d.Du.Approx(geom.V3(1, 0, 0), 1e-12) || !d.Dv.Approx(geom.V3(0, 1, 0), 1e-12) {
		t.Errorf("Du, Dv = %v, %v", d.Du, d.Dv)
	}
	if !d.Duu.IsZero() || !d.Dvv.IsZero() || !d.Duv.Approx(geom.Vec3{}, 1e-12) {
		t.Errorf("planar quad must have zero second derivatives: %+v", d)
	}

	pos, du, dv, err := b.EvaluateDerivatives(CubeTop, 0.25, 0.75)
	if err != nil {
		t.Fatalf("EvaluateDerivatives: %v", err)
	}
	if !pos.Approx(d.Position, 1e-12) || !du.Approx(d.Du, 1e-12) || !dv.Approx(d.Dv, 1e-12) {
		t.Error("EvaluateDerivatives disagrees with EvaluateSecondDerivatives")
	}
}

func TestBilinear_TwistedQuad(t *testing.T) {
	b, err := NewBilinear(Quad(geom.Pt3(0, 0, 0), geom.Pt3(1, 0, 0), geom.Pt3(1, 1, 1), geom.Pt3(0, 1, 0)))
	if err != nil {
		t.Fatalf("NewBilinear: %v", err)
	}
	d, err := b.EvaluateSecondDerivatives(0, 0.5, 0.5)
	if err != nil {
		t.Fatalf("EvaluateSecondDerivatives: %v", err)
	}
	if !d.Duv.Approx(geom.V3(0, 0, 1), 1e-12) {
		t.Errorf("Duv = %v, want (0, 0, 1)", d.Duv)
	}
	if !d.Position.Approx(geom.Pt3(0.5, 0.5, 0.25), 1e-12) {
		t.Errorf("Position = %v, want (0.5, 0.5, 0.25)", d.Position)
	}
}

func TestBilinear_Errors(t *testing.T) {
	b := newCube(t)
	if _, _, err := b.EvaluateLimit(6, 0.5, 0.5); !errors.Is(err, ErrFaceOutOfRange) {
		t.Errorf("face 6: error = %v, want ErrFaceOutOfRange", err)
	}
	if _, err := b.EvaluateSecondDerivatives(-1, 0.5, 0.5); !errors.Is(err, ErrFaceOutOfRange) {
		t.Errorf("face -1: error = %v, want ErrFaceOutOfRange", err)
	}

	var empty *Bilinear
	if empty.Initialized() {
		t.Error("nil Bilinear reports initialized")
	}
	if _, _, err := empty.EvaluateLimit(0, 0, 0); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("nil evaluator: error = %v, want ErrNotInitialized", err)
	}
	if _, err := empty.Tessellate(1); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("nil Tessellate: error = %v, want ErrNotInitialized", err)
	}
}

func TestBilinear_Tessellate(t *testing.T) {
	b := newCube(t)
	for _, level := range []int{-1, 0, 1, 3} {
		m, err := b.Tessellate(level)
		if err != nil {
			t.Fatalf("Tessellate(%d): %v", level, err)
		}
		l := max(level, 0)
		n := 1 << l
		if got, want := m.TriangleCount(), 6*2*n*n; got != want {
			t.Errorf("level %d: %d triangles, want %d", level, got, want)
		}
		if got, want := len(m.Vertices), 6*(n+1)*(n+1); got != want {
			t.Errorf("level %d: %d vertices, want %d", level, got, want)
		}
		if len(m.FaceOfTriangle) != m.TriangleCount() {
			t.Fatalf("FaceOfTriangle length %d != %d", len(m.FaceOfTriangle), m.TriangleCount())
		}
	}
}

func TestBilinear_TessellateWinding(t *testing.T) {
	b := newCube(t)
	m, err := b.Tessellate(2)
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}
	for i := range m.TriangleCount() {
		v0, v1, v2 := m.Triangle(i)
		triNormal := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
		_, faceNormal, err := b.EvaluateLimit(m.FaceOfTriangle[i], 0.5, 0.5)
		if err != nil {
			t.Fatalf("EvaluateLimit: %v", err)
		}
		if triNormal.Dot(faceNormal) < 0.999 {
			t.Fatalf("triangle %d normal %v disagrees with face %d normal %v",
				i, triNormal, m.FaceOfTriangle[i], faceNormal)
		}
	}
}
