package geom

import (
	"math"
	"testing"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec3
		expect Vec3
	}{
		{"x cross y", V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{"y cross z", V3(0, 1, 0), V3(0, 0, 1), V3(1, 0, 0)},
		{"z cross x", V3(0, 0, 1), V3(1, 0, 0), V3(0, 1, 0)},
		{"parallel", V3(2, 0, 0), V3(5, 0, 0), V3(0, 0, 0)},
		{"anticommutative", V3(0, 1, 0), V3(1, 0, 0), V3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Cross(tt.w)
			if !result.Approx(tt.expect, 1e-12) {
				t.Errorf("%v.Cross(%v) = %v, want %v", tt.v, tt.w, result, tt.expect)
			}
		})
	}
}

func TestVec3_DotLength(t *testing.T) {
	v := V3(1, 2, 2)
	if got := v.Length(); !almostEqual(got, 3, 1e-12) {
		t.Errorf("Length() = %v, want 3", got)
	}
	if got := v.LengthSq(); !almostEqual(got, 9, 1e-12) {
		t.Errorf("LengthSq() = %v, want 9", got)
	}
	if got := v.Dot(V3(-2, 1, 0)); got != 0 {
		t.Errorf("Dot() = %v, want 0", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	n := V3(3, 0, 4).Normalize()
	if !n.Approx(V3(0.6, 0, 0.8), 1e-12) {
		t.Errorf("Normalize() = %v, want (0.6, 0, 0.8)", n)
	}
	if z := (Vec3{}).Normalize(); !z.IsZero() {
		t.Errorf("zero.Normalize() = %v, want zero", z)
	}
}

func TestVec3_NormalizeOr(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec3
		expect Vec3
	}{
		{"regular", V3(0, 5, 0), V3(0, 1, 0)},
		{"zero", V3(0, 0, 0), UnitZ},
		{"below epsilon", V3(1e-12, 0, 0), UnitZ},
		{"negative", V3(0, 0, -2), V3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.NormalizeOr(Epsilon, UnitZ)
			if !result.Approx(tt.expect, 1e-12) {
				t.Errorf("%v.NormalizeOr() = %v, want %v", tt.v, result, tt.expect)
			}
		})
	}
}

func TestVec3_Angle(t *testing.T) {
	if got := V3(1, 0, 0).Angle(V3(0, 1, 0)); !almostEqual(got, math.Pi/2, 1e-12) {
		t.Errorf("Angle = %v, want pi/2", got)
	}
	if got := V3(1, 0, 0).Angle(V3(-1, 0, 0)); !almostEqual(got, math.Pi, 1e-12) {
		t.Errorf("Angle = %v, want pi", got)
	}
}

func TestPoint3_SubAdd(t *testing.T) {
	p := Pt3(1, 2, 3)
	q := Pt3(4, 6, 3)
	d := q.Sub(p)
	if !d.Approx(V3(3, 4, 0), 1e-12) {
		t.Errorf("Sub = %v, want (3, 4, 0)", d)
	}
	if got := p.Add(d); !got.Approx(q, 1e-12) {
		t.Errorf("Add = %v, want %v", got, q)
	}
	if got := p.Distance(q); !almostEqual(got, 5, 1e-12) {
		t.Errorf("Distance = %v, want 5", got)
	}
}
