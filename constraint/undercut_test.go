package constraint

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/latentform/mold/geom"
	"github.com/latentform/mold/subd"
)

// shadedFloorSeverity is the floor severity under the overhang: 10 of 25
// samples occluded at distance 0.999.
const shadedFloorSeverity = (10.0 / 25.0) / (1 + 0.999)

func TestUndercutDetector_Overhang(t *testing.T) {
	d := NewUndercutDetector(mustBilinear(t, overhangCage()))

	got, err := d.DetectUndercuts([]int{overhangFloor, overhangRoof}, geom.V3(0, 0, 1))
	if err != nil {
		t.Fatalf("DetectUndercuts: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("DetectUndercuts = %v, want only the floor", got)
	}
	if !almostEqual(got[overhangFloor], shadedFloorSeverity, 1e-9) {
		t.Errorf("floor severity = %v, want %v", got[overhangFloor], shadedFloorSeverity)
	}
}

func TestUndercutDetector_CheckFace(t *testing.T) {
	d := NewUndercutDetector(mustBilinear(t, overhangCage()))
	up := geom.V3(0, 0, 1)

	floor, err := d.CheckFace(overhangFloor, up)
	if err != nil {
		t.Fatalf("CheckFace(floor): %v", err)
	}
	if !almostEqual(floor, shadedFloorSeverity, 1e-9) {
		t.Errorf("CheckFace(floor) = %v, want %v", floor, shadedFloorSeverity)
	}

	// The roof faces down, but nothing lies above it.
	roof, err := d.CheckFace(overhangRoof, up)
	if err != nil {
		t.Fatalf("CheckFace(roof): %v", err)
	}
	if roof != 0 {
		t.Errorf("CheckFace(roof) = %v, want 0", roof)
	}

	// Pulling down, the floor faces away but nothing lies below it.
	down, err := d.CheckFace(overhangFloor, geom.V3(0, 0, -2))
	if err != nil {
		t.Fatalf("CheckFace(floor, down): %v", err)
	}
	if down != 0 {
		t.Errorf("CheckFace(floor, down) = %v, want 0", down)
	}
}

func TestUndercutDetector_NoiseRatio(t *testing.T) {
	ev := mustBilinear(t, overhangCage())
	faces := []int{overhangFloor}
	up := geom.V3(0, 0, 1)

	strict := NewUndercutDetector(ev, WithNoiseRatio(0.5))
	got, err := strict.DetectUndercuts(faces, up)
	if err != nil {
		t.Fatalf("DetectUndercuts: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("40%% occlusion with ratio 0.5: got %v, want none", got)
	}

	// Exactly at the ratio is still noise.
	edge := NewUndercutDetector(ev, WithNoiseRatio(0.4))
	if got, _ := edge.DetectUndercuts(faces, up); len(got) != 0 {
		t.Errorf("occlusion equal to ratio: got %v, want none", got)
	}
}

func TestUndercutDetector_BackfacingAloneIsNoise(t *testing.T) {
	ev := &fixedNormals{normals: []geom.Vec3{drafted(-30), geom.V3(0, 0, -1)}}
	d := NewUndercutDetector(ev)

	got, err := d.DetectUndercuts([]int{0, 1}, geom.V3(0, 0, 1))
	if err != nil {
		t.Fatalf("DetectUndercuts: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("DetectUndercuts = %v, want none without occlusion", got)
	}
}

func TestUndercutDetector_IsolatedQuad(t *testing.T) {
	c := &subd.Cage{
		Vertices: [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		Faces:    [][]int{{0, 1, 2, 3}},
	}
	d := NewUndercutDetector(mustBilinear(t, c))
	for _, dir := range []geom.Vec3{geom.V3(0, 0, 1), geom.V3(0, 0, -1), geom.V3(1, 1, 1)} {
		s, err := d.CheckFace(0, dir)
		if err != nil {
			t.Fatalf("CheckFace: %v", err)
		}
		if s != 0 {
			t.Errorf("CheckFace along %v = %v, want 0", dir, s)
		}
	}
}

func TestUndercutDetector_CubeBottom(t *testing.T) {
	d := NewUndercutDetector(mustBilinear(t, subd.UnitCube()))
	got, err := d.DetectUndercuts(allCubeFaces, geom.V3(0, 0, 1))
	if err != nil {
		t.Fatalf("DetectUndercuts: %v", err)
	}

	// Every bottom sample faces straight down and sees the top.
	if !almostEqual(got[subd.CubeBottom], 1, 1e-12) {
		t.Errorf("bottom severity = %v, want 1", got[subd.CubeBottom])
	}
	if s, ok := got[subd.CubeTop]; ok {
		t.Errorf("top reported with severity %v", s)
	}
	for face, s := range got {
		if s <= 0 {
			t.Errorf("face %d reported with non-positive severity %v", face, s)
		}
	}
}

func TestUndercutDetector_DegenerateDirection(t *testing.T) {
	d := NewUndercutDetector(mustBilinear(t, subd.UnitCube()))
	zero, err := d.DetectUndercuts(allCubeFaces, geom.Vec3{})
	if err != nil {
		t.Fatalf("DetectUndercuts: %v", err)
	}
	up, err := d.DetectUndercuts(allCubeFaces, geom.V3(0, 0, 1))
	if err != nil {
		t.Fatalf("DetectUndercuts: %v", err)
	}
	if diff := cmp.Diff(up, zero); diff != "" {
		t.Errorf("zero direction differs from +Z (-up +zero):\n%s", diff)
	}
}

func TestUndercutDetector_ConfigurationsAgree(t *testing.T) {
	evs := map[string]subd.Evaluator{
		"cube":     mustBilinear(t, subd.UnitCube()),
		"overhang": mustBilinear(t, overhangCage()),
	}
	dirs := []geom.Vec3{geom.V3(0, 0, 1), geom.V3(0.3, -0.2, 1), geom.V3(-1, 0, 0)}

	for name, ev := range evs {
		faces := allCubeFaces
		if name == "overhang" {
			faces = []int{overhangFloor, overhangRoof}
		}
		base := NewUndercutDetector(ev)
		variants := map[string]*UndercutDetector{
			"bvh":         NewUndercutDetector(ev, WithBVH(true)),
			"workers":     NewUndercutDetector(ev, WithWorkers(4)),
			"bvh+workers": NewUndercutDetector(ev, WithBVH(true), WithWorkers(3)),
		}
		for _, dir := range dirs {
			want, err := base.DetectUndercuts(faces, dir)
			if err != nil {
				t.Fatalf("%s: DetectUndercuts: %v", name, err)
			}
			for vname, d := range variants {
				got, err := d.DetectUndercuts(faces, dir)
				if err != nil {
					t.Fatalf("%s/%s: DetectUndercuts: %v", name, vname, err)
				}
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("%s/%s along %v (-brute +variant):\n%s", name, vname, dir, diff)
				}
			}
		}
	}
}

func TestUndercutDetector_ProxyBuiltOnce(t *testing.T) {
	ev := &fixedNormals{normals: []geom.Vec3{geom.UnitZ, geom.UnitZ, geom.UnitZ}}
	d := NewUndercutDetector(ev, WithWorkers(2))
	if _, err := d.DetectUndercuts([]int{0, 1, 2}, geom.UnitZ); err != nil {
		t.Fatalf("DetectUndercuts: %v", err)
	}
	if ev.tessCalls != 1 {
		t.Errorf("Tessellate called %d times, want 1", ev.tessCalls)
	}
}

func TestUndercutDetector_Errors(t *testing.T) {
	up := geom.V3(0, 0, 1)

	t.Run("tessellation", func(t *testing.T) {
		d := NewUndercutDetector(&fixedNormals{normals: []geom.Vec3{up}, tessErr: errEvaluator})
		if _, err := d.DetectUndercuts([]int{0}, up); !errors.Is(err, errEvaluator) {
			t.Errorf("DetectUndercuts: err = %v, want %v", err, errEvaluator)
		}
		if _, err := d.CheckFace(0, up); !errors.Is(err, errEvaluator) {
			t.Errorf("CheckFace: err = %v, want %v", err, errEvaluator)
		}
		if _, err := d.RayIntersectsFace(geom.Point3{}, up, 0); !errors.Is(err, errEvaluator) {
			t.Errorf("RayIntersectsFace: err = %v, want %v", err, errEvaluator)
		}
	})

	for _, workers := range []int{1, 4} {
		d := NewUndercutDetector(mustBilinear(t, subd.UnitCube()), WithWorkers(workers))
		got, err := d.DetectUndercuts([]int{0, 1, 17, 2}, up)
		if !errors.Is(err, subd.ErrFaceOutOfRange) {
			t.Errorf("workers=%d: err = %v, want ErrFaceOutOfRange", workers, err)
		}
		if got != nil {
			t.Errorf("workers=%d: partial result %v returned with error", workers, got)
		}
	}

	var empty *subd.Bilinear
	d := NewUndercutDetector(empty)
	if _, err := d.DetectUndercuts([]int{0}, up); !errors.Is(err, subd.ErrNotInitialized) {
		t.Errorf("uninitialized evaluator: err = %v, want ErrNotInitialized", err)
	}
}

func TestUndercutDetector_RayIntersectsFace(t *testing.T) {
	d := NewUndercutDetector(mustBilinear(t, overhangCage()))
	tests := []struct {
		name   string
		origin geom.Point3
		dir    geom.Vec3
		face   int
		want   bool
	}{
		{"up into roof", geom.Pt3(0.2, 0.5, 0.01), geom.V3(0, 0, 1), overhangRoof, true},
		{"up beside roof", geom.Pt3(0.7, 0.5, 0.01), geom.V3(0, 0, 1), overhangRoof, false},
		{"floor behind origin", geom.Pt3(0.2, 0.5, 0.01), geom.V3(0, 0, 1), overhangFloor, false},
		{"down onto floor", geom.Pt3(0.7, 0.5, 2), geom.V3(0, 0, -1), overhangFloor, true},
		{"unnormalized direction", geom.Pt3(0.7, 0.5, 2), geom.V3(0, 0, -5), overhangFloor, true},
		{"parallel to floor", geom.Pt3(-1, 0.5, 0), geom.V3(1, 0, 0), overhangFloor, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.RayIntersectsFace(tt.origin, tt.dir, tt.face)
			if err != nil {
				t.Fatalf("RayIntersectsFace: %v", err)
			}
			if got != tt.want {
				t.Errorf("RayIntersectsFace = %v, want %v", got, tt.want)
			}
		})
	}
}
