// Package simulation provides the evaluation engine for the chiplet
// performance model.
package simulation

import (
	"github.com/sarchlab/chipletsim/hardware"
	"github.com/sarchlab/chipletsim/metrics"
	"github.com/sarchlab/chipletsim/workload"
)

// A Simulator evaluates the chiplet performance model for one hardware
// configuration. Runs are independent and the simulator holds no mutable
// state, so a single Simulator can serve concurrent callers.
type Simulator struct {
	params   hardware.Params
	registry *workload.Registry
	baseline float64 // images/sec at 1 chiplet, full efficiency
}

// Params returns the hardware parameters the simulator evaluates.
func (s *Simulator) Params() hardware.Params {
	return s.params
}

// Registry returns the workload registry the simulator resolves names in.
func (s *Simulator) Registry() *workload.Registry {
	return s.registry
}

// Run evaluates one simulation point. The workload name must be registered
// and the partitioning quality must be in [0, 1]; violations are returned
// as *UnknownWorkloadError and *QualityOutOfRangeError. coresPerChiplet is
// carried into the result as a label and does not enter any metric.
func (s *Simulator) Run(
	numChiplets int,
	workloadName string,
	partitioningQuality float64,
	coresPerChiplet int,
) (Result, error) {
	wl, ok := s.registry.Get(workloadName)
	if !ok {
		return Result{}, &UnknownWorkloadError{
			Name:       workloadName,
			ValidNames: s.registry.Names(),
		}
	}

	if partitioningQuality < 0.0 || partitioningQuality > 1.0 {
		return Result{}, &QualityOutOfRangeError{
			Quality: partitioningQuality,
		}
	}

	q := partitioningQuality
	n := numChiplets
	p := s.params

	return Result{
		NumChiplets:         n,
		CoresPerChiplet:     coresPerChiplet,
		Workload:            workloadName,
		PartitioningQuality: q,

		InterChipletLatencyNs:  metrics.Latency(q, n, wl, p),
		InterChipletTrafficPct: metrics.TrafficRatio(q, wl) * 100,
		NetworkCongestionPct:   metrics.Congestion(q, n, wl, p),
		ThroughputImgPerSec: metrics.Throughput(
			q, n, wl, p, s.baseline),
		EnergyEfficiencyTopsPerW: metrics.EnergyEfficiency(
			q, n, wl, p, s.baseline),
		CommOverheadPct: metrics.CommOverhead(q, n, wl, p),
	}, nil
}

// Sweep evaluates qualitySteps evenly spaced partitioning qualities
// covering [0, 1] and returns the results in ascending quality order.
// qualitySteps of 1 yields the single quality 0.0.
func (s *Simulator) Sweep(
	numChiplets int,
	workloadName string,
	qualitySteps int,
	coresPerChiplet int,
) ([]Result, error) {
	results := make([]Result, 0, qualitySteps)

	for _, q := range qualityGrid(qualitySteps) {
		r, err := s.Run(numChiplets, workloadName, q, coresPerChiplet)
		if err != nil {
			return nil, err
		}

		results = append(results, r)
	}

	return results, nil
}

// qualityGrid returns steps evenly spaced values covering [0, 1]
// inclusive.
func qualityGrid(steps int) []float64 {
	if steps <= 1 {
		return []float64{0.0}
	}

	grid := make([]float64, steps)
	for i := range grid {
		grid[i] = float64(i) / float64(steps-1)
	}

	return grid
}
