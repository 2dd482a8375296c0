package physics

import "github.com/lixenwraith/solar-sim/vmath"

// AccumulateForces computes the net gravitational force on every body
// from every other body and stores it in the per-body accumulator.
//
// Each unordered pair is evaluated once; the second body receives the
// exact negation of the first body's contribution, so pair forces are
// symmetric to the bit and the pass costs n(n-1)/2 evaluations.
// Separations below minSeparation are clamped before the inverse-square
// evaluation. Positions are only read, never written, so the result is
// independent of iteration order.
func AccumulateForces(bodies []*Body, g, minSeparation float64) {
	for _, b := range bodies {
		b.force = vmath.Vec2{}
	}

	for i := 0; i < len(bodies); i++ {
		bi := bodies[i]
		for j := i + 1; j < len(bodies); j++ {
			bj := bodies[j]

			d := bj.Pos.Sub(bi.Pos)
			dist := d.Mag()
			if dist == 0 {
				// Coincident bodies have no defined direction
				continue
			}

			r := dist
			if r < minSeparation {
				r = minSeparation
			}

			// F·d̂ in one expression: d/dist is the unit direction
			f := d.Scale(g * bi.Mass * bj.Mass / (r * r * dist))
			bi.force = bi.force.Add(f)
			bj.force = bj.force.Sub(f)
		}
	}
}
