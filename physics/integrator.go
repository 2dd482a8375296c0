package physics

// Step advances every body by dt seconds of simulated time using
// semi-implicit Euler: v = v + (F/m)*dt, then p = p + v*dt. The
// velocity-before-position ordering is what keeps orbits stable over
// long runs; do not swap it.
//
// All forces are fully accumulated before any state is written, so no
// body ever sees a partially updated position within the same step.
// dt may be negative, which reverses time to first order.
func Step(bodies []*Body, g, dt, minSeparation float64) {
	AccumulateForces(bodies, g, minSeparation)

	for _, b := range bodies {
		b.Vel = b.Vel.Add(b.force.Scale(dt / b.Mass))
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		b.recordTrail(b.Pos)
	}
}
