package subd

import (
	"fmt"
	"math"

	"github.com/latentform/mold/geom"
)

// Patch evaluates one face of an analytic surface at (u, v) in [0,1]^2.
type Patch func(u, v float64) SecondDerivatives

// Parametric is an Evaluator over analytic patches with closed-form
// derivatives. It is used to check curvature against known values.
type Parametric struct {
	patches []Patch
}

// NewParametric returns an evaluator with one face per patch.
func NewParametric(patches ...Patch) *Parametric {
	return &Parametric{patches: patches}
}

// Initialized reports whether the evaluator has at least one patch.
func (p *Parametric) Initialized() bool {
	return p != nil && len(p.patches) > 0
}

// FaceCount returns the number of patches.
func (p *Parametric) FaceCount() int {
	if p == nil {
		return 0
	}
	return len(p.patches)
}

func (p *Parametric) eval(face int, u, v float64) (SecondDerivatives, error) {
	if !p.Initialized() {
		return SecondDerivatives{}, ErrNotInitialized
	}
	if face < 0 || face >= len(p.patches) {
		return SecondDerivatives{}, fmt.Errorf("%w: %d of %d", ErrFaceOutOfRange, face, len(p.patches))
	}
	return p.patches[face](u, v), nil
}

// EvaluateLimit returns the position and unit normal du × dv.
func (p *Parametric) EvaluateLimit(face int, u, v float64) (geom.Point3, geom.Vec3, error) {
	d, err := p.eval(face, u, v)
	if err != nil {
		return geom.Point3{}, geom.Vec3{}, err
	}
	return d.Position, d.Du.Cross(d.Dv).NormalizeOr(geom.Epsilon, geom.UnitZ), nil
}

// EvaluateDerivatives returns the position and first derivatives.
func (p *Parametric) EvaluateDerivatives(face int, u, v float64) (geom.Point3, geom.Vec3, geom.Vec3, error) {
	d, err := p.eval(face, u, v)
	if err != nil {
		return geom.Point3{}, geom.Vec3{}, geom.Vec3{}, err
	}
	return d.Position, d.Du, d.Dv, nil
}

// EvaluateSecondDerivatives returns position, first and second derivatives.
func (p *Parametric) EvaluateSecondDerivatives(face int, u, v float64) (SecondDerivatives, error) {
	return p.eval(face, u, v)
}

// Tessellate samples each patch on a 2^level grid.
func (p *Parametric) Tessellate(level int) (*Mesh, error) {
	if !p.Initialized() {
		return nil, ErrNotInitialized
	}
	return tessellateGrid(len(p.patches), level, func(face int, u, v float64) geom.Point3 {
		return p.patches[face](u, v).Position
	}), nil
}

// PlanePatch maps [0,1]^2 onto the square [0,size]^2 in the z=0 plane,
// normal +Z.
func PlanePatch(size float64) Patch {
	return func(u, v float64) SecondDerivatives {
		return SecondDerivatives{
			Position: geom.Pt3(u*size, v*size, 0),
			Du:       geom.V3(size, 0, 0),
			Dv:       geom.V3(0, size, 0),
		}
	}
}

// SpherePatch covers a sphere of radius r centered at the origin, with
// u the azimuth over [0, 2π) and v the polar angle over [0.1π, 0.9π].
// The poles are excluded so the parametrization stays regular.
// With this orientation du × dv points inward.
func SpherePatch(r float64) Patch {
	const (
		a      = 2 * math.Pi
		b      = 0.8 * math.Pi
		theta0 = 0.1 * math.Pi
	)
	return func(u, v float64) SecondDerivatives {
		phi := a * u
		theta := theta0 + b*v
		sp, cp := math.Sincos(phi)
		st, ct := math.Sincos(theta)
		return SecondDerivatives{
			Position: geom.Pt3(r*st*cp, r*st*sp, r*ct),
			Du:       geom.V3(-r*a*st*sp, r*a*st*cp, 0),
			Dv:       geom.V3(r*b*ct*cp, r*b*ct*sp, -r*b*st),
			Duu:      geom.V3(-r*a*a*st*cp, -r*a*a*st*sp, 0),
			Dvv:      geom.V3(-r*b*b*st*cp, -r*b*b*st*sp, -r*b*b*ct),
			Duv:      geom.V3(-r*a*b*ct*sp, r*a*b*ct*cp, 0),
		}
	}
}

// CylinderPatch covers the side of a cylinder of radius r and height h
// around the Z axis, u the azimuth, v the height. du × dv points outward.
func CylinderPatch(r, h float64) Patch {
	const a = 2 * math.Pi
	return func(u, v float64) SecondDerivatives {
		sp, cp := math.Sincos(a * u)
		return SecondDerivatives{
			Position: geom.Pt3(r*cp, r*sp, h*v),
			Du:       geom.V3(-r*a*sp, r*a*cp, 0),
			Dv:       geom.V3(0, 0, h),
			Duu:      geom.V3(-r*a*a*cp, -r*a*a*sp, 0),
		}
	}
}

// SaddlePatch is the graph z = c(x² - y²) over x, y in [-1, 1].
func SaddlePatch(c float64) Patch {
	return func(u, v float64) SecondDerivatives {
		x := 2*u - 1
		y := 2*v - 1
		return SecondDerivatives{
			Position: geom.Pt3(x, y, c*(x*x-y*y)),
			Du:       geom.V3(2, 0, 4*c*x),
			Dv:       geom.V3(0, 2, -4*c*y),
			Duu:      geom.V3(0, 0, 8*c),
			Dvv:      geom.V3(0, 0, -8*c),
		}
	}
}
