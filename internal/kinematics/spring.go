package kinematics

import "math"

// SpringLauncher models a catapult arm driven by a stretched spring. All of
// the stored elastic energy becomes kinetic energy of the load.
type SpringLauncher struct {
	Stretch        float64 // m
	SpringConstant float64 // N/m
	Weight         float64 // N
}

// Mass of the load for the given gravity.
func (s SpringLauncher) Mass(gravity float64) float64 {
	return s.Weight / gravity
}

// LaunchSpeed returns sqrt(k·x²/m) with m = weight/g.
func (s SpringLauncher) LaunchSpeed(gravity float64) (float64, error) {
	if err := requireNonNegative("stretch", s.Stretch); err != nil {
		return 0, err
	}
	if err := requireNonNegative("spring constant", s.SpringConstant); err != nil {
		return 0, err
	}
	if err := requirePositive("weight", s.Weight); err != nil {
		return 0, err
	}
	if err := requirePositive("gravity", gravity); err != nil {
		return 0, err
	}
	return math.Sqrt(s.SpringConstant * s.Stretch * s.Stretch / s.Mass(gravity)), nil
}

// LaunchSpeedFromSpring is the functional form of SpringLauncher.LaunchSpeed.
func LaunchSpeedFromSpring(stretch, springConstant, weight, gravity float64) (float64, error) {
	return SpringLauncher{Stretch: stretch, SpringConstant: springConstant, Weight: weight}.LaunchSpeed(gravity)
}
