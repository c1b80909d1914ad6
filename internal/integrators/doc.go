// Package integrators steps the reference dynamics of the lab scenarios.
//
// Euler and RK4 accept any state. Verlet and Leapfrog split the state in
// half, positions first and velocities second, and need an acceleration
// that depends on positions only. Both reference models are laid out that
// way: Ballistic as [x, y, vx, vy] under constant gravity and
// NonlinearPendulum as [θ, ω] with ω' = -(g/L)·sin θ. For the ballistic
// case the split steppers reproduce the parabola exactly at any step size.
package integrators
