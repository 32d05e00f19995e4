package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/latentform/mold/constraint"
)

var errNotManufacturable = errors.New("moldcheck: region has manufacturability errors")

func newValidateCmd() *cobra.Command {
	var (
		surf  surfaceFlags
		flags validateFlags
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check undercuts and draft angles along a demolding direction",
		Long: `Validate runs undercut detection and draft analysis over a region of faces
and prints a report of ERROR, WARNING and FEATURE findings.

The command exits non-zero when the report has errors unless --no-fail is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, &surf, &flags)
		},
	}
	surf.register(cmd.Flags())
	flags.register(cmd.Flags())
	return cmd
}

func runValidate(cmd *cobra.Command, surf *surfaceFlags, flags *validateFlags) error {
	cfg := DefaultConfig()
	if flags.config != "" {
		loaded, err := LoadConfig(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
		if cfg.Cage != "" && !filepath.IsAbs(cfg.Cage) {
			cfg.Cage = filepath.Join(filepath.Dir(flags.config), cfg.Cage)
		}
	}
	if err := flags.apply(cmd.Flags(), &cfg); err != nil {
		return err
	}
	if surf.cage == "" && !surf.cube && surf.shape == "" {
		surf.cage = cfg.Cage
	}

	ev, err := surf.load()
	if err != nil {
		return err
	}
	faces := cfg.Faces
	if len(faces) == 0 {
		faces = allFaces(ev.FaceCount())
	}

	report, err := constraint.NewValidator(ev, cfg.Options()...).
		ValidateRegion(faces, cfg.Dir(), cfg.MinWallThickness)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch flags.format {
	case "text":
		writeReportText(out, len(faces), report)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(newReportDocument(len(faces), report)); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
	default:
		return fmt.Errorf("moldcheck: unknown format %q", flags.format)
	}

	if report.HasErrors() && !flags.allowFail {
		return errNotManufacturable
	}
	return nil
}
