// Package metrics provides the closed-form performance model of a
// chiplet-based DNN accelerator. Every function is pure: the same inputs
// always produce the same outputs, and nothing is mutated.
//
// The functions form a small dependency chain. TrafficRatio feeds Latency
// and Congestion, Congestion feeds Throughput, and Throughput feeds
// EnergyEfficiency. Partitioning quality must be in [0, 1]; the simulator
// validates it before calling in, so the guard here only catches misuse.
package metrics

import (
	"fmt"

	"github.com/sarchlab/chipletsim/hardware"
	"github.com/sarchlab/chipletsim/workload"
)

// maxTrafficReduction is how much cross-chiplet traffic optimal
// partitioning can remove from the baseline.
const maxTrafficReduction = 0.70

// congestionThreshold marks the congestion percentage above which the
// network operates in an unsustainable regime.
const congestionThreshold = 70.0

// TrafficRatio returns the fraction of traffic crossing chiplet
// boundaries, in [0, 1]. Quality 0 means random placement, 1 means
// optimal.
func TrafficRatio(quality float64, wl workload.Profile) float64 {
	if quality < 0 || quality > 1 {
		panic(fmt.Sprintf(
			"partitioning quality must be in [0, 1], got %g", quality))
	}

	return wl.BaseTrafficRatio() * (1.0 - quality*maxTrafficReduction)
}

// Latency returns the average inference latency in nanoseconds.
func Latency(
	quality float64,
	numChiplets int,
	wl workload.Profile,
	params hardware.Params,
) float64 {
	traffic := TrafficRatio(quality, wl)

	return params.IntraChipletLatencyNs + traffic*params.HopLatency(numChiplets)
}

// Congestion returns the network congestion as a percentage, capped at 95.
// Values above 70 are considered unsustainable.
func Congestion(
	quality float64,
	numChiplets int,
	wl workload.Profile,
	params hardware.Params,
) float64 {
	traffic := TrafficRatio(quality, wl)
	raw := (traffic * wl.MemoryIntensity) / (float64(numChiplets) * 0.1)

	return min(95.0, raw*100.0)
}

// Throughput returns the system throughput in images per second. Below the
// 70% congestion threshold a flat 0.9 penalty applies; above it the
// penalty declines linearly with congestion. The jump at the threshold is
// part of the model.
func Throughput(
	quality float64,
	numChiplets int,
	wl workload.Profile,
	params hardware.Params,
	baselineImagesPerSec float64,
) float64 {
	congestion := Congestion(quality, numChiplets, wl, params)
	parallelEff := quality*0.85 + 0.15

	penalty := 0.9
	if congestion > congestionThreshold {
		penalty = (100.0 - congestion) / 100.0
	}

	return baselineImagesPerSec * float64(numChiplets) * parallelEff * penalty
}

// EnergyEfficiency returns the energy efficiency in TOPS/W. Total power is
// always positive for valid hardware parameters and numChiplets >= 1, so
// the division cannot produce a non-finite result.
func EnergyEfficiency(
	quality float64,
	numChiplets int,
	wl workload.Profile,
	params hardware.Params,
	baselineImagesPerSec float64,
) float64 {
	throughput := Throughput(quality, numChiplets, wl, params,
		baselineImagesPerSec)
	traffic := TrafficRatio(quality, wl)

	computePower := float64(numChiplets) * params.PowerPerChipletW
	commPower := traffic * float64(numChiplets) * params.CommPowerPerUnitW
	totalPower := computePower + commPower

	tops := throughput * wl.FLOPsPerImage / 1e12

	return tops / totalPower
}

// CommOverhead returns the communication overhead as a percentage of
// execution time, capped at 85. Congestion above the 70% threshold
// amplifies the overhead linearly.
func CommOverhead(
	quality float64,
	numChiplets int,
	wl workload.Profile,
	params hardware.Params,
) float64 {
	traffic := TrafficRatio(quality, wl)
	latency := Latency(quality, numChiplets, wl, params)
	congestion := Congestion(quality, numChiplets, wl, params)

	base := traffic * (latency / params.IntraChipletLatencyNs)

	mult := 1.0
	if congestion > congestionThreshold {
		mult = 1.0 + (congestion-congestionThreshold)/30.0
	}

	return min(85.0, base*mult*100.0)
}
