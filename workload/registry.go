package workload

import "sort"

// A Registry is an immutable mapping from workload name to Profile. It is
// built once and handed to the simulator, so each simulator carries its
// workload set explicitly instead of reading process-wide state.
type Registry struct {
	profiles map[string]Profile
}

// NewRegistry creates a Registry holding the given profiles.
func NewRegistry(profiles ...Profile) *Registry {
	r := &Registry{
		profiles: make(map[string]Profile),
	}

	for _, p := range profiles {
		if _, exists := r.profiles[p.Name]; exists {
			panic("workload " + p.Name + " already registered")
		}

		r.profiles[p.Name] = p
	}

	return r
}

// DefaultRegistry returns the three reference workloads.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Profile{
			Name:                 "ResNet-50",
			ComputeIntensity:     0.7,
			MemoryIntensity:      0.5,
			CommunicationPattern: Balanced,
			FLOPsPerImage:        3.8e9,
			MemAccessBytes:       25.5e6,
		},
		Profile{
			Name:                 "VGG-16",
			ComputeIntensity:     0.6,
			MemoryIntensity:      0.9,
			CommunicationPattern: MemoryBound,
			FLOPsPerImage:        15.5e9,
			MemAccessBytes:       138e6,
		},
		Profile{
			Name:                 "DarkNet-19",
			ComputeIntensity:     0.5,
			MemoryIntensity:      0.4,
			CommunicationPattern: Sparse,
			FLOPsPerImage:        5.6e9,
			MemAccessBytes:       32e6,
		},
	)
}

// Get returns the profile registered under the given name.
func (r *Registry) Get(name string) (Profile, bool) {
	p, ok := r.profiles[name]
	return p, ok
}

// Names returns the names of all registered workloads in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
