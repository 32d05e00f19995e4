package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/latentform/mold/curvature"
)

func newClassifyCmd() *cobra.Command {
	var surf surfaceFlags

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Count faces by local shape class at their centers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ev, err := surf.load()
			if err != nil {
				return err
			}

			a := curvature.NewAnalyzer()
			counts := make(map[curvature.Type]int)
			for face := range ev.FaceCount() {
				r, err := a.FaceCurvature(ev, face)
				if err != nil {
					return fmt.Errorf("face %d: %w", face, err)
				}
				counts[curvature.Classify(r)]++
			}

			out := cmd.OutOrStdout()
			for _, t := range []curvature.Type{curvature.Planar, curvature.Parabolic, curvature.Elliptic, curvature.Hyperbolic} {
				printer.Fprintf(out, "%-10s %d\n", t, counts[t])
			}
			return nil
		},
	}
	surf.register(cmd.Flags())
	return cmd
}
