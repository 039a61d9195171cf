package simulation

import "strconv"

// A Result is an immutable snapshot of one simulation run. It combines the
// run inputs with the computed metrics and serializes to one flat row.
type Result struct {
	NumChiplets         int     `json:"num_chiplets"`
	CoresPerChiplet     int     `json:"cores_per_chiplet"`
	Workload            string  `json:"workload"`
	PartitioningQuality float64 `json:"partitioning_quality"`

	InterChipletLatencyNs    float64 `json:"inter_chiplet_latency_ns"`
	InterChipletTrafficPct   float64 `json:"inter_chiplet_traffic_pct"`
	NetworkCongestionPct     float64 `json:"network_congestion_pct"`
	ThroughputImgPerSec      float64 `json:"throughput_img_per_sec"`
	EnergyEfficiencyTopsPerW float64 `json:"energy_efficiency_tops_per_w"`
	CommOverheadPct          float64 `json:"comm_overhead_pct"`
}

// Header returns the column names of the tabular view of a Result, in the
// same order as Row.
func Header() []string {
	return []string{
		"num_chiplets",
		"cores_per_chiplet",
		"workload",
		"partitioning_quality",
		"inter_chiplet_latency_ns",
		"inter_chiplet_traffic_pct",
		"network_congestion_pct",
		"throughput_img_per_sec",
		"energy_efficiency_tops_per_w",
		"comm_overhead_pct",
	}
}

// Row returns the Result as one row of strings, matching Header.
func (r Result) Row() []string {
	return []string{
		strconv.Itoa(r.NumChiplets),
		strconv.Itoa(r.CoresPerChiplet),
		r.Workload,
		formatFloat(r.PartitioningQuality),
		formatFloat(r.InterChipletLatencyNs),
		formatFloat(r.InterChipletTrafficPct),
		formatFloat(r.NetworkCongestionPct),
		formatFloat(r.ThroughputImgPerSec),
		formatFloat(r.EnergyEfficiencyTopsPerW),
		formatFloat(r.CommOverheadPct),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
