package viz

// TheoryPage is one block of static teaching text.
type TheoryPage struct {
	Title string
	Body  string
}

var Theory = []TheoryPage{
	{
		Title: "Projectile motion",
		Body: `A projectile launched at speed v and angle θ above the ground moves
sideways at a constant vx = v·cos θ while gravity slows and then reverses
its upward speed vy = v·sin θ − g·t.

  time of flight   T = 2·v·sin θ / g
  range            R = v²·sin 2θ / g
  maximum height   H = (v·sin θ)² / 2g

Observations
  • 45° gives the longest range on flat ground.
  • Complementary angles (30° and 60°) land at the same spot.
  • Doubling the speed makes the range four times longer.

Build your own catapult
  • Tape a plastic spoon to a ruler, with a pencil under the ruler as the
    pivot. Press and release the spoon end to launch a paper ball.
  • A spring or rubber band launcher gives a repeatable speed: stretch
    it by the same amount each shot.
  • Mark a protractor on cardboard behind the arm to set the angle.
  • Measure the landing distance with a tape and compare it to the range
    shown by the simulator.`,
	},
	{
		Title: "Simple pendulum",
		Body: `A simple pendulum is a small mass (bob) hanging from a light string that
cannot stretch, swinging freely under gravity. Its motion repeats at
regular intervals: it is periodic.

  period   T = 2π·√(L / g)

Observations
  • The period grows with the length.
  • It does not depend on the mass of the bob.
  • It grows slightly for wide swings, which this formula ignores.

Real-life examples
  • Clock pendulums that keep time
  • Playground swings
  • Seismic sensors measuring Earth's vibrations

Classroom activities
  • Time 10 oscillations with a stopwatch and divide by 10 to get the
    average period.
  • Change the length and note how the period changes.
  • Discuss how Galileo found the pendulum's property by watching
    swinging lamps.
  • Draw the motion path and mark the amplitude and mean position.

Build your own pendulum
  • Tie a washer or a few coins to a string and hang it from a pencil
    taped to the edge of a table.
  • Measure the length from the pivot to the middle of the bob.
  • Compare the measured period with the simulator's reading.`,
	},
}
