package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/solar-sim/vmath"
)

// ErrInvalidConfiguration is returned for body or simulation parameters
// that cannot produce a valid simulation (non-positive mass, non-finite
// state). It is a startup-only failure class; steady-state operations
// do not fail.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// RGB is a display color for a body
type RGB struct {
	R, G, B uint8
}

// Body is one celestial body. Identity fields are fixed at construction;
// physical state is mutated only by Step. The trail is a FIFO-bounded
// history of past positions kept for rendering.
type Body struct {
	// Identity
	Name   string
	Color  RGB
	Radius float64 // display disc radius in screen cells

	// Physical state (SI units)
	Mass float64
	Pos  vmath.Vec2
	Vel  vmath.Vec2

	// Net force accumulator, valid only within a Step call
	force vmath.Vec2

	// Trail ring buffer
	trail     []vmath.Vec2
	trailHead int
	trailLen  int
}

// NewBody constructs a body and validates its configuration.
// trailCap bounds the position history; zero disables the trail.
func NewBody(name string, color RGB, radius, mass float64, pos, vel vmath.Vec2, trailCap int) (*Body, error) {
	if mass <= 0 {
		return nil, fmt.Errorf("%w: body %q: mass must be positive, got %g", ErrInvalidConfiguration, name, mass)
	}
	if math.IsNaN(mass) || math.IsInf(mass, 0) || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: body %q: non-finite mass or radius", ErrInvalidConfiguration, name)
	}
	if !pos.IsFinite() || !vel.IsFinite() {
		return nil, fmt.Errorf("%w: body %q: non-finite initial state", ErrInvalidConfiguration, name)
	}
	if trailCap < 0 {
		return nil, fmt.Errorf("%w: body %q: negative trail cap %d", ErrInvalidConfiguration, name, trailCap)
	}

	b := &Body{
		Name:   name,
		Color:  color,
		Radius: radius,
		Mass:   mass,
		Pos:    pos,
		Vel:    vel,
	}
	if trailCap > 0 {
		b.trail = make([]vmath.Vec2, trailCap)
	}
	return b, nil
}

// Speed returns the magnitude of the current velocity in m/s
func (b *Body) Speed() float64 {
	return b.Vel.Mag()
}

// Force returns the net force accumulated by the most recent Step
func (b *Body) Force() vmath.Vec2 {
	return b.force
}

// TrailLen returns the number of retained trail points
func (b *Body) TrailLen() int {
	return b.trailLen
}

// Trail copies the retained position history, oldest first
func (b *Body) Trail() []vmath.Vec2 {
	out := make([]vmath.Vec2, b.trailLen)
	for i := 0; i < b.trailLen; i++ {
		out[i] = b.trail[(b.trailHead+i)%len(b.trail)]
	}
	return out
}

// recordTrail appends p, evicting the oldest point once the cap is hit
func (b *Body) recordTrail(p vmath.Vec2) {
	if len(b.trail) == 0 {
		return
	}
	b.trail[(b.trailHead+b.trailLen)%len(b.trail)] = p
	if b.trailLen < len(b.trail) {
		b.trailLen++
	} else {
		b.trailHead = (b.trailHead + 1) % len(b.trail)
	}
}
