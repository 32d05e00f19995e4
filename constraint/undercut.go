package constraint

import (
	"github.com/latentform/mold"
	"github.com/latentform/mold/geom"
	"github.com/latentform/mold/internal/parallel"
	"github.com/latentform/mold/internal/raycast"
	"github.com/latentform/mold/subd"
)

// directionEpsilon is the length below which a pull direction is replaced
// by +Z.
const directionEpsilon = 1e-6

// UndercutDetector finds faces that the rest of the surface occludes
// along a demolding direction.
type UndercutDetector struct {
	ev   subd.Evaluator
	opts options
}

// NewUndercutDetector returns a detector querying ev.
func NewUndercutDetector(ev subd.Evaluator, opts ...Option) *UndercutDetector {
	return &UndercutDetector{ev: ev, opts: newOptions(opts)}
}

func (d *UndercutDetector) proxy() (raycast.Caster, error) {
	mesh, err := d.ev.Tessellate(d.opts.proxyLevel)
	if err != nil {
		return nil, err
	}
	mold.Component("undercut").Debug("proxy mesh",
		"level", d.opts.proxyLevel,
		"triangles", mesh.TriangleCount(),
		"caster", d.opts.caster.String())
	return raycast.New(d.opts.caster, mesh), nil
}

// DetectUndercuts returns the severity of every face in faces that has an
// undercut along dir. Faces without one are absent from the map.
// The proxy mesh is built once and shared by all faces.
func (d *UndercutDetector) DetectUndercuts(faces []int, dir geom.Vec3) (map[int]float64, error) {
	caster, err := d.proxy()
	if err != nil {
		return nil, err
	}
	pull := pullDirection(dir)

	severities := make([]float64, len(faces))
	errs := make([]error, len(faces))
	check := func(i int) {
		severities[i], errs[i] = d.checkFace(caster, faces[i], pull)
	}

	if d.opts.workers < 2 || len(faces) < 2 {
		for i := range faces {
			check(i)
			if errs[i] != nil {
				return nil, errs[i]
			}
		}
	} else {
		pool := parallel.NewWorkerPool(min(d.opts.workers, len(faces)))
		pool.ForEach(len(faces), check)
		pool.Close()
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
	}

	out := make(map[int]float64)
	for i, face := range faces {
		if severities[i] > 0 {
			out[face] = severities[i]
		}
	}
	mold.Component("undercut").Debug("detect",
		"faces", len(faces),
		"undercuts", len(out),
		"workers", d.opts.workers)
	return out, nil
}

// CheckFace returns the undercut severity of a single face, or 0.
// It tessellates the proxy on every call; use DetectUndercuts for regions.
func (d *UndercutDetector) CheckFace(face int, dir geom.Vec3) (float64, error) {
	caster, err := d.proxy()
	if err != nil {
		return 0, err
	}
	return d.checkFace(caster, face, pullDirection(dir))
}

// checkFace samples a grid on face. A sample whose normal points against
// the pull direction contributes its misalignment; a sample whose ray hits
// another face contributes 1/(1+t) and counts as occluded. The worst
// contribution is scaled by the occluded fraction, and faces at or below
// the noise ratio report 0.
func (d *UndercutDetector) checkFace(caster raycast.Caster, face int, pull geom.Vec3) (float64, error) {
	n := d.opts.grid
	total := n * n
	others := raycast.Except(face)

	worst := 0.0
	occluded := 0
	for i := range n {
		for j := range n {
			u := (float64(i) + 0.5) / float64(n)
			v := (float64(j) + 0.5) / float64(n)
			p, normal, err := d.ev.EvaluateLimit(face, u, v)
			if err != nil {
				return 0, err
			}
			normal = normal.NormalizeOr(directionEpsilon, geom.UnitZ)

			if align := normal.Dot(pull); align < 0 {
				worst = max(worst, -align)
			}

			ray := geom.Ray{Origin: p.Add(pull.Mul(d.opts.rayOffset)), Dir: pull}
			if hit, ok := caster.Nearest(ray, others); ok {
				occluded++
				worst = max(worst, 1/(1+hit.T))
			}
		}
	}

	ratio := float64(occluded) / float64(total)
	if ratio > d.opts.noiseRatio {
		return worst * ratio, nil
	}
	return 0, nil
}

// RayIntersectsFace reports whether a ray from origin along dir hits any
// proxy triangle of face. dir is used as given.
func (d *UndercutDetector) RayIntersectsFace(origin geom.Point3, dir geom.Vec3, face int) (bool, error) {
	caster, err := d.proxy()
	if err != nil {
		return false, err
	}
	return caster.Any(geom.Ray{Origin: origin, Dir: dir}, raycast.Only(face)), nil
}

func pullDirection(dir geom.Vec3) geom.Vec3 {
	return dir.NormalizeOr(directionEpsilon, geom.UnitZ)
}
