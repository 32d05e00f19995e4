// Package mold analyzes smooth subdivision surfaces for rigid-mold
// manufacturing.
//
// # Overview
//
// Two questions are answered per surface region: what is the local
// curvature shape, and can a rigid mold piece be pulled off the region
// along a chosen demolding direction. Curvature is computed from exact
// limit-surface derivatives; manufacturability is checked by ray casting
// against a disposable triangle proxy for self-occlusion (undercuts) and by
// measuring draft angles.
//
// # Quick Start
//
//	cage := subd.UnitCube()
//	ev, _ := subd.NewBilinear(cage)
//
//	v := constraint.NewValidator(ev)
//	report, err := v.ValidateRegion([]int{0, 1, 2, 3, 4, 5}, geom.V3(0, 0, 1),
//	    constraint.DefaultMinWallThickness)
//	if err != nil {
//	    return err
//	}
//	if report.HasErrors() {
//	    // block mold generation for this region
//	}
//
// # Architecture
//
//   - geom: Point3, Vec3, 2x2 eigensolver, rays and boxes
//   - subd: the Evaluator boundary plus reference evaluators
//   - curvature: principal curvatures, directions and derived fields
//   - constraint: undercut detection, draft angles, validation reports
//   - internal/raycast: brute-force and BVH ray casters over a proxy mesh
//   - internal/parallel: worker pool for independent per-face work
//   - cmd/moldcheck: command-line front end over YAML cages and configs
//
// # Logging
//
// The core logs nothing by default. See SetLogger.
package mold

// Version is the current version of the module.
const Version = "0.1.0"
