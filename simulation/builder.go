package simulation

import (
	"github.com/sarchlab/chipletsim/hardware"
	"github.com/sarchlab/chipletsim/workload"
)

// DefaultBaselineImagesPerSec is the single-chiplet throughput baseline
// used when no custom value is set.
const DefaultBaselineImagesPerSec = 100.0

// Builder can be used to build a Simulator.
type Builder struct {
	params   hardware.Params
	registry *workload.Registry
	baseline float64
}

// MakeBuilder creates a new builder with the default hardware parameters,
// the default workload registry, and the default throughput baseline.
func MakeBuilder() Builder {
	return Builder{
		params:   hardware.DefaultParams(),
		registry: workload.DefaultRegistry(),
		baseline: DefaultBaselineImagesPerSec,
	}
}

// WithParams sets the hardware parameters to evaluate.
func (b Builder) WithParams(params hardware.Params) Builder {
	b.params = params
	return b
}

// WithRegistry sets the workload registry to resolve workload names in.
func (b Builder) WithRegistry(registry *workload.Registry) Builder {
	b.registry = registry
	return b
}

// WithBaselineThroughput sets the single-chiplet baseline throughput in
// images per second.
func (b Builder) WithBaselineThroughput(imagesPerSec float64) Builder {
	b.baseline = imagesPerSec
	return b
}

func (b Builder) parametersMustBeValid() {
	if err := b.params.Validate(); err != nil {
		panic(err)
	}

	if b.registry == nil {
		panic("simulator requires a workload registry")
	}

	if b.baseline <= 0 {
		panic("baseline throughput must be positive")
	}
}

// Build builds the Simulator.
func (b Builder) Build() *Simulator {
	b.parametersMustBeValid()

	return &Simulator{
		params:   b.params,
		registry: b.registry,
		baseline: b.baseline,
	}
}
