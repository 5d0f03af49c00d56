// Package physics solves ideal projectile motion in closed form.
//
// The central types are [Launch], the input parameters, and [Solution],
// the complete result:
//
//   - [Launch.Solve]: closed-form kinematics with a sampled trajectory
//   - [Launch.Integrate]: RK4 numerical cross-check of the same flight
//   - [ParseSolution]: decode and validate an external JSON payload
//   - [SweepAngles], [BestAngle]: range optimization over launch angle
//
// # Conventions
//
// Angles are degrees from horizontal, negative for downward launches.
// Energies are per unit mass (J/kg) with potential referenced to the
// launch height, so total energy is constant along an ideal flight.
//
//	l := physics.NewLaunch()
//	l.Velocity, l.Angle = 25, 60
//	sol, err := l.Solve()
package physics
