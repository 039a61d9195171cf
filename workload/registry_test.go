package workload

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Registry", func() {
	var registry *Registry

	BeforeEach(func() {
		registry = DefaultRegistry()
	})

	It("should hold exactly the three reference workloads", func() {
		Expect(registry.Names()).To(Equal(
			[]string{"DarkNet-19", "ResNet-50", "VGG-16"}))
	})

	It("should hold the ResNet-50 reference profile", func() {
		p, ok := registry.Get("ResNet-50")

		Expect(ok).To(BeTrue())
		Expect(p.ComputeIntensity).To(Equal(0.7))
		Expect(p.MemoryIntensity).To(Equal(0.5))
		Expect(p.CommunicationPattern).To(Equal(Balanced))
		Expect(p.FLOPsPerImage).To(Equal(3.8e9))
		Expect(p.MemAccessBytes).To(Equal(25.5e6))
	})

	It("should hold the VGG-16 reference profile", func() {
		p, ok := registry.Get("VGG-16")

		Expect(ok).To(BeTrue())
		Expect(p.ComputeIntensity).To(Equal(0.6))
		Expect(p.MemoryIntensity).To(Equal(0.9))
		Expect(p.CommunicationPattern).To(Equal(MemoryBound))
		Expect(p.FLOPsPerImage).To(Equal(15.5e9))
		Expect(p.MemAccessBytes).To(Equal(138e6))
	})

	It("should hold the DarkNet-19 reference profile", func() {
		p, ok := registry.Get("DarkNet-19")

		Expect(ok).To(BeTrue())
		Expect(p.ComputeIntensity).To(Equal(0.5))
		Expect(p.MemoryIntensity).To(Equal(0.4))
		Expect(p.CommunicationPattern).To(Equal(Sparse))
		Expect(p.FLOPsPerImage).To(Equal(5.6e9))
		Expect(p.MemAccessBytes).To(Equal(32e6))
	})

	It("should not find unregistered workloads", func() {
		_, ok := registry.Get("UnknownNet")
		Expect(ok).To(BeFalse())
	})

	It("should panic on duplicate registration", func() {
		register := func() {
			NewRegistry(
				Profile{Name: "A", CommunicationPattern: Balanced},
				Profile{Name: "A", CommunicationPattern: Sparse},
			)
		}

		Expect(register).To(Panic())
	})
})

var _ = Describe("Profile", func() {
	It("should derive the base traffic ratio from the pattern", func() {
		Expect(Profile{CommunicationPattern: Sparse}.
			BaseTrafficRatio()).To(Equal(0.45))
		Expect(Profile{CommunicationPattern: Balanced}.
			BaseTrafficRatio()).To(Equal(0.55))
		Expect(Profile{CommunicationPattern: MemoryBound}.
			BaseTrafficRatio()).To(Equal(0.65))
	})

	It("should panic on an unknown pattern", func() {
		p := Profile{CommunicationPattern: "ring"}
		Expect(func() { p.BaseTrafficRatio() }).To(Panic())
	})
})
