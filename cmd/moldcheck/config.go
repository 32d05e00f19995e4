package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/latentform/mold/constraint"
	"github.com/latentform/mold/geom"
)

// Config is the validate command's YAML configuration. Command-line flags
// that are set explicitly override file values.
type Config struct {
	Cage             string     `yaml:"cage"`
	Faces            []int      `yaml:"faces"`
	Direction        [3]float64 `yaml:"direction"`
	MinWallThickness float64    `yaml:"min_wall_thickness"`
	Undercut         Undercut   `yaml:"undercut"`
}

// Undercut tunes undercut detection.
type Undercut struct {
	Workers    int      `yaml:"workers"`
	BVH        bool     `yaml:"bvh"`
	SampleGrid int      `yaml:"sample_grid"`
	ProxyLevel int      `yaml:"proxy_level"`
	RayOffset  *float64 `yaml:"ray_offset"`
	NoiseRatio *float64 `yaml:"noise_ratio"`
}

// DefaultConfig pulls along +Z with the conventional wall thickness.
func DefaultConfig() Config {
	return Config{
		Direction:        [3]float64{0, 0, 1},
		MinWallThickness: constraint.DefaultMinWallThickness,
		Undercut: Undercut{
			Workers:    1,
			SampleGrid: constraint.SampleGrid,
			ProxyLevel: constraint.ProxyLevel,
		},
	}
}

// LoadConfig reads a config file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Dir returns the configured demolding direction.
func (c Config) Dir() geom.Vec3 {
	return geom.V3(c.Direction[0], c.Direction[1], c.Direction[2])
}

// Options maps the undercut section to constraint options.
func (c Config) Options() []constraint.Option {
	u := c.Undercut
	opts := []constraint.Option{
		constraint.WithWorkers(u.Workers),
		constraint.WithBVH(u.BVH),
		constraint.WithSampleGrid(u.SampleGrid),
		constraint.WithProxyLevel(u.ProxyLevel),
	}
	if u.RayOffset != nil {
		opts = append(opts, constraint.WithRayOffset(*u.RayOffset))
	}
	if u.NoiseRatio != nil {
		opts = append(opts, constraint.WithNoiseRatio(*u.NoiseRatio))
	}
	return opts
}

// validateFlags hold the command-line overrides for Config.
type validateFlags struct {
	config    string
	faces     []int
	dir       []float64
	minWall   float64
	workers   int
	bvh       bool
	grid      int
	noise     float64
	format    string
	allowFail bool
}

func (v *validateFlags) register(f *pflag.FlagSet) {
	f.StringVarP(&v.config, "config", "c", "", "YAML config file")
	f.IntSliceVar(&v.faces, "faces", nil, "Face indices to validate (default all)")
	f.Float64SliceVar(&v.dir, "dir", []float64{0, 0, 1}, "Demolding direction x,y,z")
	f.Float64Var(&v.minWall, "min-wall", constraint.DefaultMinWallThickness, "Minimum wall thickness (reserved)")
	f.IntVarP(&v.workers, "workers", "w", 1, "Faces checked concurrently")
	f.BoolVar(&v.bvh, "bvh", false, "Use a BVH for ray casting")
	f.IntVar(&v.grid, "samples", constraint.SampleGrid, "Undercut samples per face axis")
	f.Float64Var(&v.noise, "noise-ratio", constraint.OcclusionNoiseRatio, "Occluded sample fraction a face must exceed")
	f.StringVarP(&v.format, "format", "o", "text", "Output format: text or yaml")
	f.BoolVar(&v.allowFail, "no-fail", false, "Exit 0 even when the report has errors")
}

// apply overlays explicitly set flags on cfg.
func (v *validateFlags) apply(f *pflag.FlagSet, cfg *Config) error {
	if f.Changed("faces") {
		cfg.Faces = v.faces
	}
	if f.Changed("dir") {
		if len(v.dir) != 3 {
			return fmt.Errorf("moldcheck: --dir needs 3 components, got %d", len(v.dir))
		}
		copy(cfg.Direction[:], v.dir)
	}
	if f.Changed("min-wall") {
		cfg.MinWallThickness = v.minWall
	}
	if f.Changed("workers") {
		cfg.Undercut.Workers = v.workers
	}
	if f.Changed("bvh") {
		cfg.Undercut.BVH = v.bvh
	}
	if f.Changed("samples") {
		cfg.Undercut.SampleGrid = v.grid
	}
	if f.Changed("noise-ratio") {
		r := v.noise
		cfg.Undercut.NoiseRatio = &r
	}
	return nil
}
