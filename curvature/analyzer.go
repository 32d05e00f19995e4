// Package curvature computes principal curvatures, principal directions
// and derived scalar fields of a limit surface from its exact first and
// second derivatives.
//
// The shape operator S = I⁻¹·II is formed in the (du, dv) basis and
// diagonalized in closed form. Degenerate parametrizations, singular
// metrics and umbilic points never fail: they fall back to zero curvature
// and default directions so batch analysis is not interrupted.
package curvature

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/latentform/mold"
	"github.com/latentform/mold/geom"
	"github.com/latentform/mold/subd"
)

// ErrSizeMismatch is returned by Batch when the input slices differ in length.
var ErrSizeMismatch = errors.New("curvature: parameter array size mismatch")

// Result holds the differential geometry of one surface point.
// Values are computed fresh per query by newResult and are never updated.
type Result struct {
	// Kappa1 is the principal curvature of larger absolute value,
	// Kappa2 the other one: |Kappa1| >= |Kappa2|.
	Kappa1, Kappa2 float64

	// Dir1 and Dir2 are unit tangent directions for Kappa1 and Kappa2.
	Dir1, Dir2 geom.Vec3

	Gaussian float64 // Kappa1 * Kappa2
	Mean     float64 // (Kappa1 + Kappa2) / 2
	AbsMean  float64 // |Mean|
	RMS      float64 // sqrt((Kappa1² + Kappa2²) / 2)

	// First fundamental form.
	E, F, G float64
	// Second fundamental form.
	L, M, N float64

	Normal geom.Vec3
}

// fundamentalForms are the inputs that determine a Result.
type fundamentalForms struct {
	E, F, G float64
	L, M, N float64
	normal  geom.Vec3
}

func newResult(ff fundamentalForms, k1, k2 float64, dir1, dir2 geom.Vec3) Result {
	mean := (k1 + k2) * 0.5
	return Result{
		Kappa1:   k1,
		Kappa2:   k2,
		Dir1:     dir1,
		Dir2:     dir2,
		Gaussian: k1 * k2,
		Mean:     mean,
		AbsMean:  math.Abs(mean),
		RMS:      math.Sqrt((k1*k1 + k2*k2) * 0.5),
		E:        ff.E,
		F:        ff.F,
		G:        ff.G,
		L:        ff.L,
		M:        ff.M,
		N:        ff.N,
		Normal:   ff.normal,
	}
}

// Analyzer computes curvature at points of a surface. It keeps no state
// about the evaluator and is safe for concurrent use.
type Analyzer struct {
	workers int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithWorkers sets how many points Batch evaluates concurrently.
// Values below 2 keep Batch sequential, which is the default.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		a.workers = n
	}
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{workers: 1}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Compute returns the curvature of face at (u, v).
// It fails with subd.ErrNotInitialized if ev has no surface, and passes
// through evaluator errors unchanged.
func (a *Analyzer) Compute(ev subd.Evaluator, face int, u, v float64) (Result, error) {
	if !ev.Initialized() {
		return Result{}, subd.ErrNotInitialized
	}
	return compute(ev, face, u, v)
}

func compute(ev subd.Evaluator, face int, u, v float64) (Result, error) {
	d, err := ev.EvaluateSecondDerivatives(face, u, v)
	if err != nil {
		return Result{}, err
	}

	normal := d.Du.Cross(d.Dv).NormalizeOr(geom.Epsilon, geom.UnitZ)
	ff := fundamentalForms{
		E:      d.Du.Dot(d.Du),
		F:      d.Du.Dot(d.Dv),
		G:      d.Dv.Dot(d.Dv),
		L:      d.Duu.Dot(normal),
		M:      d.Duv.Dot(normal),
		N:      d.Dvv.Dot(normal),
		normal: normal,
	}

	eig := ShapeOperator(ff.E, ff.F, ff.G, ff.L, ff.M, ff.N).Eigen()
	dir1 := toSurface(eig.Vectors[0], d.Du, d.Dv)
	dir2 := toSurface(eig.Vectors[1], d.Du, d.Dv)

	return newResult(ff, eig.Values[0], eig.Values[1], dir1, dir2), nil
}

// ShapeOperator returns S = I⁻¹·II for the first fundamental form
// (E, F, G) and second fundamental form (L, M, N). A singular metric,
// |EG - F²| < geom.Epsilon, yields the zero operator.
func ShapeOperator(E, F, G, L, M, N float64) geom.Mat2 {
	inv, ok := geom.Mat2{A: E, B: F, C: F, D: G}.Inverse()
	if !ok {
		return geom.Mat2{}
	}
	return inv.Mul(geom.Mat2{A: L, B: M, C: M, D: N})
}

// toSurface maps a parameter-plane direction (a, b) to the unit tangent
// a·du + b·dv.
func toSurface(p geom.Vec2, du, dv geom.Vec3) geom.Vec3 {
	return du.Mul(p.X).Add(dv.Mul(p.Y)).NormalizeOr(geom.Epsilon, geom.UnitZ)
}

// Batch computes curvature for each (faces[i], us[i], vs[i]). Results are
// positionally ordered. Mismatched slice lengths fail with ErrSizeMismatch
// before any point is evaluated; any evaluator error discards all results.
func (a *Analyzer) Batch(ev subd.Evaluator, faces []int, us, vs []float64) ([]Result, error) {
	if !ev.Initialized() {
		return nil, subd.ErrNotInitialized
	}
	n := len(faces)
	if len(us) != n || len(vs) != n {
		return nil, fmt.Errorf("%w: %d faces, %d u, %d v", ErrSizeMismatch, n, len(us), len(vs))
	}

	results := make([]Result, n)
	if a.workers < 2 || n < 2 {
		for i := range n {
			r, err := compute(ev, faces[i], us[i], vs[i])
			if err != nil {
				return nil, err
			}
			results[i] = r
		}
		return results, nil
	}

	mold.Component("curvature").Debug("batch", "points", n, "workers", a.workers)

	var g errgroup.Group
	g.SetLimit(a.workers)
	for i := range n {
		g.Go(func() error {
			r, err := compute(ev, faces[i], us[i], vs[i])
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
