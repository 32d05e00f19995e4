package geom

import "math"

// Point3 represents a position in 3D space.
type Point3 struct {
	X, Y, Z float64
}

// Pt3 is a convenience function to create a Point3.
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Add returns p displaced by v.
func (p Point3) Add(v Vec3) Point3 {
	return Point3{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Sub returns the displacement from q to p.
func (p Point3) Sub(q Point3) Vec3 {
	return Vec3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Distance returns the distance between two points.
func (p Point3) Distance(q Point3) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
func (p Point3) Lerp(q Point3, t float64) Point3 {
	return Point3{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
		Z: p.Z + (q.Z-p.Z)*t,
	}
}

// Approx returns true if two points are approximately equal within epsilon.
func (p Point3) Approx(q Point3, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon && math.Abs(p.Z-q.Z) < epsilon
}

// Axis returns the coordinate along axis i (0=X, 1=Y, 2=Z).
func (p Point3) Axis(i int) float64 {
	return Vec3(p).Axis(i)
}

// ToVec converts Point3 to Vec3.
func (p Point3) ToVec() Vec3 {
	return Vec3(p)
}
