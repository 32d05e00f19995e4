// Package geom provides the 3D value types and small closed-form numerics
// shared by the curvature and constraint packages: positions (Point3),
// directions (Vec3), parameter-plane directions (Vec2), 2x2 matrices with
// an eigensolver, rays, axis-aligned boxes and ray/triangle intersection.
//
// Every operation that divides or normalizes has an explicit guard and a
// defined fallback so that degenerate geometry never produces NaN.
package geom
