package simulation

import (
	"fmt"
	"strings"
)

// An UnknownWorkloadError reports a workload name that is not present in
// the simulator's registry.
type UnknownWorkloadError struct {
	Name       string
	ValidNames []string
}

func (e *UnknownWorkloadError) Error() string {
	return fmt.Sprintf("unknown workload %q, choose from [%s]",
		e.Name, strings.Join(e.ValidNames, ", "))
}

// A QualityOutOfRangeError reports a partitioning quality outside [0, 1].
type QualityOutOfRangeError struct {
	Quality float64
}

func (e *QualityOutOfRangeError) Error() string {
	return fmt.Sprintf(
		"partitioning quality must be in [0.0, 1.0], got %g", e.Quality)
}
