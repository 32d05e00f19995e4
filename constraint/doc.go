// Package constraint checks a region of a mold cavity surface for
// manufacturability along one demolding direction.
//
// Two geometric checks feed a three-tier report:
//
//   - UndercutDetector ray-casts from a grid of samples on each face along
//     the pull direction and flags faces the rest of the surface occludes.
//   - DraftChecker measures the angle between each face normal and the
//     pull direction.
//
// Validator runs both and files every finding into a Report as an ERROR
// (physically impossible), a WARNING (risky) or a FEATURE (informational).
// Violations are data: only evaluator failures are returned as errors.
//
// All checkers hold a read-only subd.Evaluator and never modify it.
package constraint
