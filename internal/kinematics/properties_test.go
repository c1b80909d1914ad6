package kinematics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/kinelab/internal/kinematics"
)

var _ = Describe("Projectile", func() {
	const g = kinematics.StandardGravity

	rangeAt := func(angle, speed float64) float64 {
		traj, err := kinematics.NewTrajectory(kinematics.ProjectileParams{AngleDegrees: angle, Speed: speed, Gravity: g})
		Expect(err).NotTo(HaveOccurred())
		return traj.Range
	}

	DescribeTable("complementary angles share a range",
		func(angle, speed float64) {
			Expect(rangeAt(angle, speed)).To(BeNumerically("~", rangeAt(90-angle, speed), 1e-9))
		},
		Entry("10/80", 10.0, 5.0),
		Entry("20/70", 20.0, 15.0),
		Entry("30/60", 30.0, 20.0),
		Entry("37/53", 37.0, 33.0),
		Entry("44/46", 44.0, 40.0),
	)

	It("reaches the longest range at 45 degrees", func() {
		best := rangeAt(45, 25)
		for angle := 10.0; angle <= 80; angle++ {
			if angle == 45 {
				continue
			}
			Expect(rangeAt(angle, 25)).To(BeNumerically("<", best))
		}
	})

	It("matches the 45 degree reference values", func() {
		res, err := kinematics.EvaluateProjectile(45, 20, g, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.TimeOfFlight).To(BeNumerically("~", 2.886, 1e-3))
		Expect(res.Range).To(BeNumerically("~", 40.816, 1e-3))
		Expect(res.MaxHeight).To(BeNumerically("~", 10.204, 1e-3))
	})

	It("does not depend on the load once the launch speed is known", func() {
		light, err := kinematics.LaunchSpeedFromSpring(0.3, 200, 5, g)
		Expect(err).NotTo(HaveOccurred())
		heavy, err := kinematics.LaunchSpeedFromSpring(0.3, 800, 20, g)
		Expect(err).NotTo(HaveOccurred())
		Expect(light).To(BeNumerically("~", heavy, 1e-12))
		Expect(rangeAt(40, light)).To(BeNumerically("~", rangeAt(40, heavy), 1e-12))
	})

	It("signals landing once past the time of flight", func() {
		traj, err := kinematics.NewTrajectory(kinematics.ProjectileParams{AngleDegrees: 60, Speed: 12, Gravity: g})
		Expect(err).NotTo(HaveOccurred())

		f, err := traj.At(traj.TimeOfFlight * 0.99)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Landed).To(BeFalse())
		Expect(f.Y).To(BeNumerically(">", 0))

		f, err = traj.At(traj.TimeOfFlight * 1.01)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Landed).To(BeTrue())
		Expect(f.Y).To(BeNumerically("~", 0, 1e-9))
	})

	It("rejects non-positive gravity", func() {
		_, err := kinematics.EvaluateProjectile(45, 20, 0, 0)
		Expect(err).To(MatchError(kinematics.ErrPrecondition))
	})
})

var _ = Describe("Pendulum", func() {
	const g = kinematics.StandardGravity

	DescribeTable("period follows 2π√(L/g)",
		func(length, period float64) {
			res, err := kinematics.EvaluatePendulum(length, g, kinematics.DefaultAmplitude, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Period).To(BeNumerically("~", period, 1e-3))
		},
		Entry("1.0 m", 1.0, 2.007),
		Entry("0.5 m", 0.5, 1.419),
	)

	It("keeps the period when only the amplitude changes", func() {
		a, err := kinematics.EvaluatePendulum(0.9, g, 0.4, 0)
		Expect(err).NotTo(HaveOccurred())
		b, err := kinematics.EvaluatePendulum(0.9, g, 0.5, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Period).To(Equal(b.Period))
	})

	It("repeats after one period", func() {
		osc, err := kinematics.NewOscillation(kinematics.PendulumParams{Length: 0.6, Gravity: g, Amplitude: 0.45})
		Expect(err).NotTo(HaveOccurred())
		for t := 0.0; t < 6; t += 0.25 {
			a, _ := osc.At(t)
			b, _ := osc.At(t + osc.Period)
			Expect(b.Angle).To(BeNumerically("~", a.Angle, 1e-9))
		}
	})

	It("rejects a zero length", func() {
		_, err := kinematics.NewOscillation(kinematics.PendulumParams{Length: 0, Gravity: g})
		Expect(err).To(MatchError(kinematics.ErrPrecondition))
	})
})
