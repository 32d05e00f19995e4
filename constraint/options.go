package constraint

import "github.com/latentform/mold/internal/raycast"

// Undercut policy defaults.
const (
	// SampleGrid is the per-axis number of samples taken on each face.
	SampleGrid = 5

	// ProxyLevel is the tessellation level of the ray-casting proxy.
	ProxyLevel = 3

	// RayOffset lifts each ray origin off its face along the pull direction.
	RayOffset = 0.001

	// OcclusionNoiseRatio is the fraction of occluded samples a face must
	// exceed before it is reported. It is a tunable policy value with no
	// physical derivation.
	OcclusionNoiseRatio = 0.1
)

// options holds undercut detection settings shared by UndercutDetector
// and Validator.
type options struct {
	workers    int
	caster     raycast.Kind
	grid       int
	proxyLevel int
	rayOffset  float64
	noiseRatio float64
}

func defaultOptions() options {
	return options{
		workers:    1,
		caster:     raycast.KindBrute,
		grid:       SampleGrid,
		proxyLevel: ProxyLevel,
		rayOffset:  RayOffset,
		noiseRatio: OcclusionNoiseRatio,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures an UndercutDetector or a Validator.
type Option func(*options)

// WithWorkers checks up to n faces concurrently. Values below 2 keep
// detection sequential, which is the default. The result does not depend
// on n.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithBVH selects a bounding volume hierarchy instead of a linear scan for
// ray queries against the proxy mesh.
func WithBVH(enabled bool) Option {
	return func(o *options) {
		if enabled {
			o.caster = raycast.KindBVH
		} else {
			o.caster = raycast.KindBrute
		}
	}
}

// WithSampleGrid sets the per-axis sample count. Values below 1 are ignored.
func WithSampleGrid(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.grid = n
		}
	}
}

// WithProxyLevel sets the proxy tessellation level. Negative values are
// ignored.
func WithProxyLevel(level int) Option {
	return func(o *options) {
		if level >= 0 {
			o.proxyLevel = level
		}
	}
}

// WithRayOffset sets the distance ray origins are lifted off the face.
func WithRayOffset(d float64) Option {
	return func(o *options) {
		o.rayOffset = d
	}
}

// WithNoiseRatio sets the occluded-sample fraction a face must exceed.
func WithNoiseRatio(r float64) Option {
	return func(o *options) {
		o.noiseRatio = r
	}
}
