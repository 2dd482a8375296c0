package sim

import (
	"math"

	"github.com/lixenwraith/solar-sim/constant"
	"github.com/lixenwraith/solar-sim/physics"
	"github.com/lixenwraith/solar-sim/vmath"
)

// Projector maps a body's simulation-space position into the coordinate
// space of pointer events. It is owned by the rendering collaborator —
// the controller never learns about screens or scale factors.
type Projector func(vmath.Vec2) vmath.Vec2

// SelectAt resolves a pointer event to a body: a linear scan in body
// order, selecting the first body whose rendered disc contains p
// (lowest index wins on overlap, so repeated identical queries are
// deterministic). Clicking empty space clears the selection. Returns
// the selected body or nil.
func (c *Controller) SelectAt(p vmath.Vec2, project Projector) *physics.Body {
	for i, b := range c.bodies {
		if project(b.Pos).Dist(p) <= b.Radius {
			c.selected = i
			return b
		}
	}
	c.selected = -1
	return nil
}

// Deselect clears the selection unconditionally
func (c *Controller) Deselect() {
	c.selected = -1
}

// Selected returns the currently selected body or nil
func (c *Controller) Selected() *physics.Body {
	if c.selected < 0 {
		return nil
	}
	return c.bodies[c.selected]
}

// Metrics holds read-only derived values for one body
type Metrics struct {
	DistanceToStar float64 // meters from the designated star
	Speed          float64 // m/s
	SemiMajorAxis  float64 // AU, circular-orbit approximation
	OrbitalPeriod  float64 // days, Kepler's third law
}

// MetricsFor computes display metrics for b against the designated star
// (body 0 by convention). Pure query; nothing is mutated.
func (c *Controller) MetricsFor(b *physics.Body) Metrics {
	m := Metrics{Speed: b.Speed()}

	star := c.bodies[0]
	if b == star {
		return m
	}

	d := b.Pos.Dist(star.Pos)
	m.DistanceToStar = d
	m.SemiMajorAxis = d / constant.AU
	if d > 0 {
		// T = 2π·sqrt(r³ / G·M), reported in days
		seconds := 2 * math.Pi * math.Sqrt(d*d*d/(c.cfg.G*star.Mass))
		m.OrbitalPeriod = seconds / (24 * 3600)
	}
	return m
}
