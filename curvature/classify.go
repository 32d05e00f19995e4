package curvature

import (
	"math"

	"github.com/latentform/mold/subd"
)

// Type is the local shape class of a surface point.
type Type int

const (
	// Planar: both Gaussian and mean curvature vanish.
	Planar Type = iota
	// Parabolic: Gaussian curvature vanishes, bending in one direction (cylinder).
	Parabolic
	// Elliptic: K > 0, dome or bowl.
	Elliptic
	// Hyperbolic: K < 0, saddle.
	Hyperbolic
)

// String returns the lower-case name of the type.
func (t Type) String() string {
	switch t {
	case Planar:
		return "planar"
	case Parabolic:
		return "parabolic"
	case Elliptic:
		return "elliptic"
	case Hyperbolic:
		return "hyperbolic"
	default:
		return "unknown"
	}
}

// Thresholds are the magnitudes below which Gaussian and mean curvature
// count as zero.
type Thresholds struct {
	Gaussian float64
	Mean     float64
}

// DefaultThresholds treats |K| and |H| below 1e-6 as zero.
var DefaultThresholds = Thresholds{Gaussian: 1e-6, Mean: 1e-6}

// Classify returns the shape class of r.
func (th Thresholds) Classify(r Result) Type {
	flatK := math.Abs(r.Gaussian) < th.Gaussian
	switch {
	case flatK && math.Abs(r.Mean) < th.Mean:
		return Planar
	case flatK:
		return Parabolic
	case r.Gaussian > 0:
		return Elliptic
	default:
		return Hyperbolic
	}
}

// Classify returns the shape class of r using DefaultThresholds.
func Classify(r Result) Type {
	return DefaultThresholds.Classify(r)
}

// FaceCurvature returns the curvature at the parametric center of face.
func (a *Analyzer) FaceCurvature(ev subd.Evaluator, face int) (Result, error) {
	return a.Compute(ev, face, 0.5, 0.5)
}
