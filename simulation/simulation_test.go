package simulation_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/chipletsim/hardware"
	"github.com/sarchlab/chipletsim/simulation"
	"github.com/sarchlab/chipletsim/workload"
)

var _ = Describe("Simulator", func() {
	var sim *simulation.Simulator

	BeforeEach(func() {
		sim = simulation.MakeBuilder().Build()
	})

	It("should evaluate a single point", func() {
		r, err := sim.Run(4, "ResNet-50", 0.75, 16)

		Expect(err).ToNot(HaveOccurred())
		Expect(r.NumChiplets).To(Equal(4))
		Expect(r.CoresPerChiplet).To(Equal(16))
		Expect(r.Workload).To(Equal("ResNet-50"))
		Expect(r.PartitioningQuality).To(Equal(0.75))
		Expect(r.ThroughputImgPerSec).To(BeNumerically(">", 0.0))
		Expect(r.EnergyEfficiencyTopsPerW).To(BeNumerically(">", 0.0))
		Expect(r.InterChipletTrafficPct).To(
			BeNumerically("~", 0.55*(1.0-0.75*0.70)*100, 1e-9))
	})

	It("should run every registered workload", func() {
		for _, name := range sim.Registry().Names() {
			r, err := sim.Run(4, name, 0.5, 16)

			Expect(err).ToNot(HaveOccurred())
			Expect(r.InterChipletLatencyNs).To(BeNumerically(">", 0.0))
		}
	})

	It("should be deterministic", func() {
		r1, err1 := sim.Run(8, "VGG-16", 0.3, 16)
		r2, err2 := sim.Run(8, "VGG-16", 0.3, 16)

		Expect(err1).ToNot(HaveOccurred())
		Expect(err2).ToNot(HaveOccurred())
		Expect(r1).To(Equal(r2))
	})

	It("should reject an unknown workload", func() {
		_, err := sim.Run(4, "UnknownNet", 0.5, 16)

		var unknownErr *simulation.UnknownWorkloadError
		Expect(errors.As(err, &unknownErr)).To(BeTrue())
		Expect(unknownErr.Name).To(Equal("UnknownNet"))
		Expect(unknownErr.ValidNames).To(Equal(
			[]string{"DarkNet-19", "ResNet-50", "VGG-16"}))
		Expect(err.Error()).To(ContainSubstring("UnknownNet"))
	})

	It("should reject out-of-range qualities", func() {
		for _, q := range []float64{-0.1, 1.1} {
			_, err := sim.Run(4, "ResNet-50", q, 16)

			var rangeErr *simulation.QualityOutOfRangeError
			Expect(errors.As(err, &rangeErr)).To(BeTrue())
			Expect(rangeErr.Quality).To(Equal(q))
		}
	})

	It("should carry cores per chiplet as a label only", func() {
		r16, _ := sim.Run(4, "ResNet-50", 0.5, 16)
		r32, _ := sim.Run(4, "ResNet-50", 0.5, 32)

		Expect(r32.CoresPerChiplet).To(Equal(32))

		r32.CoresPerChiplet = r16.CoresPerChiplet
		Expect(r32).To(Equal(r16))
	})

	Context("sweep", func() {
		It("should cover [0, 1] with evenly spaced qualities", func() {
			results, err := sim.Sweep(4, "VGG-16", 11, 16)

			Expect(err).ToNot(HaveOccurred())
			Expect(results).To(HaveLen(11))

			for i, r := range results {
				Expect(r.PartitioningQuality).To(
					BeNumerically("~", float64(i)*0.1, 1e-12))
			}
		})

		It("should yield a single zero-quality point for one step", func() {
			results, err := sim.Sweep(4, "ResNet-50", 1, 16)

			Expect(err).ToNot(HaveOccurred())
			Expect(results).To(HaveLen(1))
			Expect(results[0].PartitioningQuality).To(Equal(0.0))
		})

		It("should propagate an unknown workload error", func() {
			_, err := sim.Sweep(4, "UnknownNet", 11, 16)

			var unknownErr *simulation.UnknownWorkloadError
			Expect(errors.As(err, &unknownErr)).To(BeTrue())
		})
	})

	Context("builder", func() {
		It("should scale throughput with the baseline", func() {
			doubled := simulation.MakeBuilder().
				WithBaselineThroughput(200.0).
				Build()

			base, _ := sim.Run(4, "ResNet-50", 0.5, 16)
			r, _ := doubled.Run(4, "ResNet-50", 0.5, 16)

			Expect(r.ThroughputImgPerSec).To(
				BeNumerically("~", 2*base.ThroughputImgPerSec, 1e-9))
		})

		It("should resolve workloads in a custom registry", func() {
			registry := workload.NewRegistry(workload.Profile{
				Name:                 "TinyNet",
				ComputeIntensity:     0.3,
				MemoryIntensity:      0.2,
				CommunicationPattern: workload.Sparse,
				FLOPsPerImage:        1e9,
				MemAccessBytes:       1e6,
			})

			custom := simulation.MakeBuilder().
				WithRegistry(registry).
				Build()

			_, err := custom.Run(4, "TinyNet", 0.5, 16)
			Expect(err).ToNot(HaveOccurred())

			_, err = custom.Run(4, "ResNet-50", 0.5, 16)
			Expect(err).To(HaveOccurred())
		})

		It("should reject invalid hardware parameters", func() {
			params := hardware.DefaultParams()
			params.PowerPerChipletW = 0

			build := func() {
				simulation.MakeBuilder().WithParams(params).Build()
			}

			Expect(build).To(Panic())
		})
	})
})
