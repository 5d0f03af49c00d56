package physics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mkarev/trajlab/internal/physics"
)

var _ = Describe("Solve", func() {
	It("is symmetric on flat ground", func() {
		l := &physics.Launch{Velocity: 35, Angle: 55}
		sol, err := l.Solve()
		Expect(err).NotTo(HaveOccurred())

		Expect(sol.ImpactVelocity).To(BeNumerically("~", 35, 1e-9))
		Expect(sol.ImpactAngle).To(BeNumerically("~", -55, 1e-6))
		Expect(sol.MaxHeightTime).To(BeNumerically("~", sol.TotalTime/2, 1e-9))
	})

	It("keeps sample times strictly ascending", func() {
		l := &physics.Launch{Velocity: 40, Angle: 30, InitialHeight: 20}
		sol, err := l.Solve()
		Expect(err).NotTo(HaveOccurred())
		Expect(sol.Trajectory).NotTo(BeEmpty())

		for i := 1; i < len(sol.Trajectory); i++ {
			Expect(sol.Trajectory[i].Time).To(BeNumerically(">", sol.Trajectory[i-1].Time))
		}
	})

	It("lands faster when launched from higher up", func() {
		low := &physics.Launch{Velocity: 25, Angle: 40, InitialHeight: 10}
		high := &physics.Launch{Velocity: 25, Angle: 40, InitialHeight: 80}

		solLow, err := low.Solve()
		Expect(err).NotTo(HaveOccurred())
		solHigh, err := high.Solve()
		Expect(err).NotTo(HaveOccurred())

		Expect(solHigh.ImpactVelocity).To(BeNumerically(">", solLow.ImpactVelocity))
		Expect(solHigh.Range).To(BeNumerically(">", solLow.Range))
	})
})

var _ = Describe("SweepAngles", func() {
	It("covers the requested grid", func() {
		base := physics.Launch{Velocity: 20}
		points := physics.SweepAngles(base, 10, 80, 14)
		Expect(points).To(HaveLen(15))
		Expect(points[0].Angle).To(BeNumerically("~", 10, 1e-9))
		Expect(points[14].Angle).To(BeNumerically("~", 80, 1e-9))
	})

	It("returns nothing for a degenerate bracket", func() {
		base := physics.Launch{Velocity: 20}
		Expect(physics.SweepAngles(base, 45, 45, 10)).To(BeNil())
	})
})

var _ = Describe("BestAngle", func() {
	It("finds 45 degrees on flat ground", func() {
		base := physics.Launch{Velocity: 20}
		angle, rng := physics.BestAngle(base, 1, 89)
		Expect(angle).To(BeNumerically("~", 45, 0.5))
		Expect(rng).To(BeNumerically("~", 400/physics.G, 0.05))
	})

	It("prefers shallower angles from a height", func() {
		base := physics.Launch{Velocity: 20, InitialHeight: 50}
		angle, _ := physics.BestAngle(base, 1, 89)
		Expect(angle).To(BeNumerically("<", 45))
	})
})
