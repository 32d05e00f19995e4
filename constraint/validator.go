package constraint

import (
	"fmt"
	"maps"
	"slices"

	"github.com/latentform/mold"
	"github.com/latentform/mold/geom"
	"github.com/latentform/mold/subd"
)

// DefaultMinWallThickness is the conventional minimum wall thickness
// passed to ValidateRegion.
const DefaultMinWallThickness = 3.0

// DescUndercut describes an undercut violation.
const DescUndercut = "Undercut detected - requires additional mold piece"

// Validator runs undercut and draft checks over a region and collects the
// findings in a Report.
type Validator struct {
	undercuts *UndercutDetector
	drafts    *DraftChecker
}

// NewValidator returns a validator querying ev. Options tune undercut
// detection.
func NewValidator(ev subd.Evaluator, opts ...Option) *Validator {
	return &Validator{
		undercuts: NewUndercutDetector(ev, opts...),
		drafts:    NewDraftChecker(ev),
	}
}

// ValidateRegion checks faces for demolding along dir. Undercuts are
// reported first, then draft findings, each in ascending face order.
// minWallThickness is accepted for a future wall thickness check and is
// currently not evaluated. The returned error is non-nil only when the
// evaluator fails.
func (v *Validator) ValidateRegion(faces []int, dir geom.Vec3, minWallThickness float64) (*Report, error) {
	report := &Report{}

	undercuts, err := v.undercuts.DetectUndercuts(faces, dir)
	if err != nil {
		return nil, fmt.Errorf("constraint: undercut detection: %w", err)
	}
	for _, face := range slices.Sorted(maps.Keys(undercuts)) {
		report.AddError(DescUndercut, face, undercuts[face])
	}

	drafts, err := v.drafts.DraftAngles(faces, dir)
	if err != nil {
		return nil, fmt.Errorf("constraint: draft check: %w", err)
	}
	for _, face := range slices.Sorted(maps.Keys(drafts)) {
		d := drafts[face]
		switch {
		case d < MinDraftAngle:
			report.AddError(
				fmt.Sprintf("Draft angle below minimum (%.2f° < %.2f°)", d, MinDraftAngle),
				face, 1-d/MinDraftAngle)
		case d < RecommendedDraftAngle:
			report.AddWarning(
				fmt.Sprintf("Draft angle below recommended (%.2f° < %.2f°)", d, RecommendedDraftAngle),
				face, 1-d/RecommendedDraftAngle)
		}
	}

	mold.Component("validator").Debug("region validated",
		"faces", len(faces),
		"min_wall_thickness", minWallThickness,
		"errors", report.ErrorCount(),
		"warnings", report.WarningCount())
	return report, nil
}
