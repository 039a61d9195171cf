// Package workload characterizes DNN workloads for chiplet simulation.
package workload

// Pattern describes how a workload communicates across chiplet boundaries.
type Pattern string

// The supported communication patterns.
const (
	Balanced    Pattern = "balanced"
	MemoryBound Pattern = "memory-bound"
	Sparse      Pattern = "sparse"
)

// baseTrafficRatios maps each pattern to the fraction of traffic that
// crosses chiplet boundaries before any partitioning optimization.
var baseTrafficRatios = map[Pattern]float64{
	Sparse:      0.45,
	Balanced:    0.55,
	MemoryBound: 0.65,
}

// A Profile characterizes one DNN workload. Profiles are identified by
// name and are never mutated after construction.
type Profile struct {
	Name                 string
	ComputeIntensity     float64 // 0-1, relative compute demand
	MemoryIntensity      float64 // 0-1, relative memory demand
	CommunicationPattern Pattern
	FLOPsPerImage        float64 // total FLOPs per inference
	MemAccessBytes       float64 // memory accesses per inference
}

// BaseTrafficRatio returns the baseline cross-chiplet traffic fraction
// determined by the communication pattern.
func (p Profile) BaseTrafficRatio() float64 {
	ratio, ok := baseTrafficRatios[p.CommunicationPattern]
	if !ok {
		panic("unknown communication pattern " +
			string(p.CommunicationPattern))
	}

	return ratio
}
