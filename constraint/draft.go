package constraint

import (
	"math"

	"github.com/latentform/mold/geom"
	"github.com/latentform/mold/subd"
)

// Draft thresholds in degrees.
const (
	MinDraftAngle         = 0.5
	RecommendedDraftAngle = 2.0
)

// DraftChecker measures draft angles of faces against a demolding
// direction.
type DraftChecker struct {
	ev subd.Evaluator
}

// NewDraftChecker returns a checker querying ev.
func NewDraftChecker(ev subd.Evaluator) *DraftChecker {
	return &DraftChecker{ev: ev}
}

// DraftAngles returns the draft angle of every face in faces.
func (c *DraftChecker) DraftAngles(faces []int, dir geom.Vec3) (map[int]float64, error) {
	out := make(map[int]float64, len(faces))
	for _, face := range faces {
		angle, err := c.CheckFace(face, dir)
		if err != nil {
			return nil, err
		}
		out[face] = angle
	}
	return out, nil
}

// CheckFace returns the draft angle of face, measured at its parametric
// center.
func (c *DraftChecker) CheckFace(face int, dir geom.Vec3) (float64, error) {
	_, normal, err := c.ev.EvaluateLimit(face, 0.5, 0.5)
	if err != nil {
		return 0, err
	}
	return DraftAngle(normal, dir), nil
}

// DraftAngle returns 90° minus the angle between normal and dir, in
// degrees: 90 when they are parallel, 0 when perpendicular and negative
// when the face leans against the pull. Either vector shorter than 1e-6
// gives 0.
func DraftAngle(normal, dir geom.Vec3) float64 {
	nl, dl := normal.Length(), dir.Length()
	if nl < directionEpsilon || dl < directionEpsilon {
		return 0
	}
	cos := max(-1, min(1, normal.Dot(dir)/(nl*dl)))
	return 90 - math.Acos(cos)*180/math.Pi
}
