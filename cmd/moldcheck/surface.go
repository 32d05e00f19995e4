package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/latentform/mold/subd"
)

var errNoSurface = errors.New("moldcheck: no surface given (use --cage, --cube or --shape)")

// surface is an evaluator that knows how many faces it has.
type surface interface {
	subd.Evaluator
	FaceCount() int
}

// surfaceFlags select the surface a command runs against. Exactly one of
// cage, cube and shape is expected.
type surfaceFlags struct {
	cage   string
	cube   bool
	shape  string
	radius float64
	height float64
}

func (s *surfaceFlags) register(f *pflag.FlagSet) {
	f.StringVar(&s.cage, "cage", "", "YAML quad cage file")
	f.BoolVar(&s.cube, "cube", false, "Use the built-in unit cube cage")
	f.StringVar(&s.shape, "shape", "", "Analytic surface: plane, sphere, cylinder or saddle")
	f.Float64Var(&s.radius, "radius", 1, "Radius for --shape sphere and cylinder, size for plane, coefficient for saddle")
	f.Float64Var(&s.height, "height", 1, "Height for --shape cylinder")
}

func (s *surfaceFlags) load() (surface, error) {
	set := 0
	for _, on := range []bool{s.cage != "", s.cube, s.shape != ""} {
		if on {
			set++
		}
	}
	switch {
	case set == 0:
		return nil, errNoSurface
	case set > 1:
		return nil, errors.New("moldcheck: --cage, --cube and --shape are mutually exclusive")
	}

	if s.cube || s.cage != "" {
		cage := subd.UnitCube()
		if s.cage != "" {
			c, err := subd.LoadCage(s.cage)
			if err != nil {
				return nil, err
			}
			cage = c
		}
		ev, err := subd.NewBilinear(cage)
		if err != nil {
			return nil, err
		}
		return ev, nil
	}

	var patch subd.Patch
	switch strings.ToLower(s.shape) {
	case "plane":
		patch = subd.PlanePatch(s.radius)
	case "sphere":
		patch = subd.SpherePatch(s.radius)
	case "cylinder":
		patch = subd.CylinderPatch(s.radius, s.height)
	case "saddle":
		patch = subd.SaddlePatch(s.radius)
	default:
		return nil, fmt.Errorf("moldcheck: unknown shape %q", s.shape)
	}
	return subd.NewParametric(patch), nil
}

// allFaces returns 0..n-1.
func allFaces(n int) []int {
	faces := make([]int, n)
	for i := range faces {
		faces[i] = i
	}
	return faces
}
