// Package kinematics evaluates the closed-form motion of the two lab scenarios.
//
// The package is a pure function family with no internal state:
//
//   - [Trajectory]: projectile launched from ground level, no drag
//   - [Oscillation]: simple pendulum in the small-angle approximation
//   - [EvaluateProjectile] and [EvaluatePendulum]: one-shot forms
//
// Quantities that depend only on parameters (time of flight, range, period)
// are derived once by [NewTrajectory] and [NewOscillation]; the per-frame
// methods then map an elapsed time to a position.
//
// # Example
//
//	traj, err := kinematics.NewTrajectory(kinematics.ProjectileParams{
//	    AngleDegrees: 45, Speed: 20, Gravity: kinematics.StandardGravity,
//	})
//	if err != nil {
//	    return err
//	}
//	f, _ := traj.At(1.2)
//	if f.Landed {
//	    // stop requesting frames
//	}
//
// # Units
//
// SI throughout. Angles are radians everywhere except the projectile launch
// angle, which is given in degrees.
//
// Invalid inputs (non-positive gravity or length, negative speed or elapsed
// time, non-finite values) return an error wrapping [ErrPrecondition].
package kinematics
