package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/latentform/mold/curvature"
)

type curvatureFlags struct {
	faces   []int
	u, v    float64
	workers int
}

func newCurvatureCmd() *cobra.Command {
	var (
		surf  surfaceFlags
		flags curvatureFlags
	)

	cmd := &cobra.Command{
		Use:   "curvature",
		Short: "Print principal curvatures at one parameter point per face",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ev, err := surf.load()
			if err != nil {
				return err
			}
			faces := flags.faces
			if len(faces) == 0 {
				faces = allFaces(ev.FaceCount())
			}
			us := make([]float64, len(faces))
			vs := make([]float64, len(faces))
			for i := range faces {
				us[i], vs[i] = flags.u, flags.v
			}

			results, err := curvature.NewAnalyzer(curvature.WithWorkers(flags.workers)).Batch(ev, faces, us, vs)
			if err != nil {
				return fmt.Errorf("curvature: %w", err)
			}

			out := cmd.OutOrStdout()
			headerColor.Fprintf(out, "%5s %12s %12s %12s %12s  %s\n", "face", "k1", "k2", "gaussian", "mean", "type")
			for i, r := range results {
				printer.Fprintf(out, "%5d %12.6f %12.6f %12.6f %12.6f  %s\n",
					faces[i], r.Kappa1, r.Kappa2, r.Gaussian, r.Mean, curvature.Classify(r))
			}
			return nil
		},
	}

	surf.register(cmd.Flags())
	f := cmd.Flags()
	f.IntSliceVar(&flags.faces, "faces", nil, "Face indices (default all)")
	f.Float64Var(&flags.u, "u", 0.5, "Parameter u in [0,1]")
	f.Float64Var(&flags.v, "v", 0.5, "Parameter v in [0,1]")
	f.IntVarP(&flags.workers, "workers", "w", 1, "Points evaluated concurrently")
	return cmd
}
