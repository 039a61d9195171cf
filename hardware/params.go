// Package hardware describes the physical properties of a chiplet system.
package hardware

import (
	"fmt"
	"math"
)

// Params holds the hardware constants of one chiplet system. A Params value
// is shared by all the runs that evaluate the same configuration and is
// never mutated after construction.
type Params struct {
	IntraChipletLatencyNs float64
	IntraChipletBandwidth float64 // GB/s
	InterChipletBandwidth float64 // GB/s
	MinInterChipletLatNs  float64 // 1 hop
	MaxInterChipletLatNs  float64 // max hops in a 2D mesh
	PowerPerChipletW      float64
	CommPowerPerUnitW     float64 // W per unit traffic ratio
}

// DefaultParams returns representative values from open-source chiplet
// literature.
func DefaultParams() Params {
	return Params{
		IntraChipletLatencyNs: 45.0,
		IntraChipletBandwidth: 512.0,
		InterChipletBandwidth: 128.0,
		MinInterChipletLatNs:  85.0,
		MaxInterChipletLatNs:  850.0,
		PowerPerChipletW:      50.0,
		CommPowerPerUnitW:     15.0,
	}
}

// Validate checks that every constant is strictly positive and that the
// latency range is not inverted.
func (p Params) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"intra-chiplet latency", p.IntraChipletLatencyNs},
		{"intra-chiplet bandwidth", p.IntraChipletBandwidth},
		{"inter-chiplet bandwidth", p.InterChipletBandwidth},
		{"min inter-chiplet latency", p.MinInterChipletLatNs},
		{"max inter-chiplet latency", p.MaxInterChipletLatNs},
		{"power per chiplet", p.PowerPerChipletW},
		{"comm power per unit traffic", p.CommPowerPerUnitW},
	}

	for _, c := range checks {
		if c.value <= 0 {
			return fmt.Errorf("%s must be positive, got %g", c.name, c.value)
		}
	}

	if p.MaxInterChipletLatNs < p.MinInterChipletLatNs {
		return fmt.Errorf(
			"max inter-chiplet latency (%g) smaller than min (%g)",
			p.MaxInterChipletLatNs, p.MinInterChipletLatNs)
	}

	return nil
}

// HopLatency returns the average hop latency in nanoseconds for a 2D mesh
// with numChiplets nodes. The average hop count is approximated with
// log2(N). The latency range is divided by 4 so that realistic chiplet
// counts (2-16) stay within [min, max].
func (p Params) HopLatency(numChiplets int) float64 {
	avgHops := math.Log2(math.Max(float64(numChiplets), 2))
	latRange := p.MaxInterChipletLatNs - p.MinInterChipletLatNs

	return p.MinInterChipletLatNs + avgHops*latRange/4.0
}
