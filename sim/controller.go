package sim

import (
	"time"

	"github.com/lixenwraith/solar-sim/physics"
)

// Controller owns the simulation state: the body list, the pause flag
// and the speed multiplier. It is driven synchronously by the render
// loop — one Tick per frame, render strictly after — and is the only
// component that mutates body state (via physics.Step).
type Controller struct {
	cfg    Config
	bodies []*physics.Body

	paused     bool
	speedIndex int

	simTime float64 // simulated seconds accumulated across ticks
	ticks   uint64

	selected int // index into bodies, -1 when nothing is selected

	clock *Clock
}

// New builds a controller from cfg. All configuration faults surface
// here, wrapped in physics.ErrInvalidConfiguration; once New succeeds,
// no steady-state operation can fail.
func New(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:        cfg,
		bodies:     make([]*physics.Body, 0, len(cfg.Bodies)),
		speedIndex: cfg.SpeedIndex,
		selected:   -1,
		clock:      NewClock(),
	}
	for _, bc := range cfg.Bodies {
		b, err := physics.NewBody(bc.Name, ParseColor(bc.Color), bc.Radius, bc.Mass, bc.Pos, bc.Vel, cfg.TrailCap)
		if err != nil {
			return nil, err
		}
		c.bodies = append(c.bodies, b)
	}
	return c, nil
}

// Tick advances the simulation by one step with an effective
// Δt = base step × current multiplier. No-op while paused or at
// multiplier 0.
func (c *Controller) Tick() {
	if c.paused {
		return
	}
	mult := c.cfg.SpeedTable[c.speedIndex]
	if mult == 0 {
		return
	}

	dt := c.cfg.BaseTimeStep * mult
	physics.Step(c.bodies, c.cfg.G, dt, c.cfg.MinSeparation)
	c.simTime += dt
	c.ticks++
}

// SetPaused sets the pause flag and the run clock together
func (c *Controller) SetPaused(paused bool) {
	c.paused = paused
	if paused {
		c.clock.Pause()
	} else {
		c.clock.Resume()
	}
}

// TogglePause flips the pause flag and returns the new state
func (c *Controller) TogglePause() bool {
	c.SetPaused(!c.paused)
	return c.paused
}

// Paused reports the pause flag
func (c *Controller) Paused() bool {
	return c.paused
}

// IncreaseSpeed moves one slot up the speed table, clamped at the top
func (c *Controller) IncreaseSpeed() {
	if c.speedIndex < len(c.cfg.SpeedTable)-1 {
		c.speedIndex++
	}
}

// DecreaseSpeed moves one slot down the speed table, clamped at zero
func (c *Controller) DecreaseSpeed() {
	if c.speedIndex > 0 {
		c.speedIndex--
	}
}

// SpeedMultiplier returns the current multiplier
func (c *Controller) SpeedMultiplier() float64 {
	return c.cfg.SpeedTable[c.speedIndex]
}

// Bodies returns the body list in stable iteration order. Callers must
// treat bodies as read-only; only Tick mutates them.
func (c *Controller) Bodies() []*physics.Body {
	return c.bodies
}

// AddBody appends a custom body to the running simulation
func (c *Controller) AddBody(bc BodyConfig) error {
	b, err := physics.NewBody(bc.Name, ParseColor(bc.Color), bc.Radius, bc.Mass, bc.Pos, bc.Vel, c.cfg.TrailCap)
	if err != nil {
		return err
	}
	c.bodies = append(c.bodies, b)
	return nil
}

// SimTime returns total simulated seconds (negative steps subtract)
func (c *Controller) SimTime() float64 {
	return c.simTime
}

// Ticks returns the number of integration steps performed
func (c *Controller) Ticks() uint64 {
	return c.ticks
}

// RunTime returns wall-clock time spent unpaused
func (c *Controller) RunTime() time.Duration {
	return c.clock.Elapsed()
}
