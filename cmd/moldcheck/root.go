package main

import (
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/latentform/mold"
)

// version is set at build time via -ldflags.
var version = mold.Version

type rootFlags struct {
	verbose bool
	noColor bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   "moldcheck",
		Short: "Manufacturability checks for mold cavity surfaces",
		Long: `moldcheck analyzes the limit surface of a quad cage or an analytic shape.

It reports undercuts and insufficient draft along a demolding direction,
and principal curvature at face centers.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if flags.noColor {
				color.NoColor = true
			}
			if flags.verbose {
				mold.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			mold.SetLogger(nil)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Log debug output to stderr")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(newValidateCmd())
	root.AddCommand(newCurvatureCmd())
	root.AddCommand(newClassifyCmd())
	return root
}
