package sim

import "math"

// SeedCircularOrbits fills in tangential velocities for configured
// bodies that have none: each zero-velocity body after the star (body 0)
// gets the circular-orbit speed v = sqrt(G·M/r) perpendicular to its
// radius vector, counter-clockwise. Bodies with explicit velocities are
// left alone.
func SeedCircularOrbits(cfg *Config) {
	if len(cfg.Bodies) == 0 {
		return
	}
	star := cfg.Bodies[0]

	for i := 1; i < len(cfg.Bodies); i++ {
		b := &cfg.Bodies[i]
		if b.Vel.X != 0 || b.Vel.Y != 0 {
			continue
		}

		d := b.Pos.Sub(star.Pos)
		r := d.Mag()
		if r == 0 {
			continue
		}

		v := math.Sqrt(cfg.G * star.Mass / r)
		b.Vel = d.Perpendicular().Normalize().Scale(v).Add(star.Vel)
	}
}
