package geom

import "math"

// Thresholds of the Möller–Trumbore test.
const (
	// ParallelEpsilon rejects rays nearly parallel to the triangle plane.
	ParallelEpsilon = 1e-6

	// MinHitDistance rejects hits at or behind the ray origin.
	MinHitDistance = 1e-6
)

// Ray is a half-line Origin + t*Dir for t > 0.
type Ray struct {
	Origin Point3
	Dir    Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Point3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// IntersectTriangle tests the ray against triangle (v0, v1, v2) using the
// Möller–Trumbore algorithm. It returns the ray parameter of the hit and
// true when the ray crosses the triangle at t > MinHitDistance.
//
// Barycentric bounds are inclusive, so rays through edges and vertices hit.
// The distance is in units of r.Dir, which callers pass normalized.
func IntersectTriangle(r Ray, v0, v1, v2 Point3) (float64, bool) {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	h := r.Dir.Cross(edge2)
	a := edge1.Dot(h)
	if math.Abs(a) < ParallelEpsilon {
		return 0, false
	}

	f := 1 / a
	s := r.Origin.Sub(v0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := f * r.Dir.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := f * edge2.Dot(q)
	if t > MinHitDistance {
		return t, true
	}
	return 0, false
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Point3
}

// EmptyBox returns a box that contains nothing; any Extend makes it valid.
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: Point3{X: inf, Y: inf, Z: inf},
		Max: Point3{X: -inf, Y: -inf, Z: -inf},
	}
}

// Extend returns the smallest box containing b and p.
func (b Box) Extend(p Point3) Box {
	return Box{
		Min: Point3{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)},
		Max: Point3{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)},
	}
}

// Union returns the smallest box containing both b and other.
func (b Box) Union(other Box) Box {
	return b.Extend(other.Min).Extend(other.Max)
}

// Pad returns b grown by d on every side.
func (b Box) Pad(d float64) Box {
	return Box{
		Min: Point3{X: b.Min.X - d, Y: b.Min.Y - d, Z: b.Min.Z - d},
		Max: Point3{X: b.Max.X + d, Y: b.Max.Y + d, Z: b.Max.Z + d},
	}
}

// Center returns the midpoint of the box.
func (b Box) Center() Point3 {
	return b.Min.Lerp(b.Max, 0.5)
}

// Size returns the extent of the box along each axis.
func (b Box) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// LongestAxis returns 0, 1 or 2 for the axis with the largest extent.
func (b Box) LongestAxis() int {
	s := b.Size()
	switch {
	case s.X >= s.Y && s.X >= s.Z:
		return 0
	case s.Y >= s.Z:
		return 1
	default:
		return 2
	}
}

// Contains returns true if the point is inside the box (inclusive).
func (b Box) Contains(p Point3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// IntersectRay clips the ray against the box with the slab method and
// returns the entry and exit parameters. Axes where the ray direction is
// exactly zero are handled without dividing, so a ray lying in a slab
// plane is still reported as inside.
func (b Box) IntersectRay(r Ray) (tNear, tFar float64, ok bool) {
	tNear, tFar = math.Inf(-1), math.Inf(1)
	for axis := range 3 {
		o := r.Origin.Axis(axis)
		d := r.Dir.Axis(axis)
		lo, hi := b.Min.Axis(axis), b.Max.Axis(axis)
		if d == 0 {
			if o < lo || o > hi {
				return 0, 0, false
			}
			continue
		}
		t0 := (lo - o) / d
		t1 := (hi - o) / d
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tNear = math.Max(tNear, t0)
		tFar = math.Min(tFar, t1)
		if tNear > tFar {
			return 0, 0, false
		}
	}
	return tNear, tFar, tFar >= 0
}
