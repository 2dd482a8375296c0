package sim

import (
	"fmt"
	"math"

	"github.com/lixenwraith/solar-sim/constant"
	"github.com/lixenwraith/solar-sim/physics"
	"github.com/lixenwraith/solar-sim/vmath"
)

// BodyConfig describes one celestial body at startup
type BodyConfig struct {
	Name   string
	Mass   float64 // kg
	Radius float64 // display disc radius in screen cells
	Color  string  // #rrggbb
	Pos    vmath.Vec2
	Vel    vmath.Vec2
}

// Config carries every tunable the simulation needs. It is passed into
// New explicitly so multiple controllers with different parameter sets
// can coexist (no package-level mutable state).
type Config struct {
	G             float64 // gravitational constant
	BaseTimeStep  float64 // seconds of simulated time per nominal tick
	MinSeparation float64 // distance floor ε for the force evaluation
	TrailCap      int     // per-body position history bound

	// Discrete speed multipliers and the starting index into them.
	// Table values must be nonnegative; 0 is effectively paused.
	SpeedTable []float64
	SpeedIndex int

	// Bodies in iteration order. Index 0 is the designated star for
	// the metrics queries; the force engine itself has no such notion.
	Bodies []BodyConfig
}

// DefaultSolarSystem returns the built-in sun-through-Mars configuration.
// Masses, orbital radii and velocities are the usual textbook values.
func DefaultSolarSystem() Config {
	return Config{
		G:             constant.DefaultG,
		BaseTimeStep:  constant.DefaultTimeStep,
		MinSeparation: constant.DefaultMinSeparation,
		TrailCap:      constant.DefaultTrailCap,
		SpeedTable:    append([]float64(nil), constant.DefaultSpeedTable...),
		SpeedIndex:    constant.DefaultSpeedIndex,
		Bodies: []BodyConfig{
			{Name: "Sun", Mass: 1.98892e30, Radius: 3, Color: "#ffff00"},
			{Name: "Mercury", Mass: 3.30e23, Radius: 1, Color: "#504e51",
				Pos: vmath.Vec2{X: 0.387 * constant.AU}, Vel: vmath.Vec2{Y: -47.4e3}},
			{Name: "Venus", Mass: 4.8685e24, Radius: 1, Color: "#ffffff",
				Pos: vmath.Vec2{X: 0.723 * constant.AU}, Vel: vmath.Vec2{Y: -35.02e3}},
			{Name: "Earth", Mass: 5.9742e24, Radius: 2, Color: "#6495ed",
				Pos: vmath.Vec2{X: -1 * constant.AU}, Vel: vmath.Vec2{Y: 29.783e3}},
			{Name: "Mars", Mass: 6.39e23, Radius: 1, Color: "#bc2732",
				Pos: vmath.Vec2{X: -1.524 * constant.AU}, Vel: vmath.Vec2{Y: 24.077e3}},
		},
	}
}

// Validate checks simulation-level parameters. Body-level validation
// happens in physics.NewBody when the controller is built.
func (c Config) Validate() error {
	if c.G <= 0 || math.IsNaN(c.G) || math.IsInf(c.G, 0) {
		return fmt.Errorf("%w: gravitational constant must be positive and finite, got %g", physics.ErrInvalidConfiguration, c.G)
	}
	if c.BaseTimeStep <= 0 || math.IsNaN(c.BaseTimeStep) || math.IsInf(c.BaseTimeStep, 0) {
		return fmt.Errorf("%w: base time step must be positive and finite, got %g", physics.ErrInvalidConfiguration, c.BaseTimeStep)
	}
	if c.MinSeparation <= 0 {
		return fmt.Errorf("%w: min separation must be positive, got %g", physics.ErrInvalidConfiguration, c.MinSeparation)
	}
	if c.TrailCap < 0 {
		return fmt.Errorf("%w: negative trail cap %d", physics.ErrInvalidConfiguration, c.TrailCap)
	}
	if len(c.SpeedTable) == 0 {
		return fmt.Errorf("%w: empty speed table", physics.ErrInvalidConfiguration)
	}
	for i, s := range c.SpeedTable {
		if s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return fmt.Errorf("%w: speed table entry %d must be nonnegative and finite, got %g", physics.ErrInvalidConfiguration, i, s)
		}
	}
	if c.SpeedIndex < 0 || c.SpeedIndex >= len(c.SpeedTable) {
		return fmt.Errorf("%w: speed index %d out of range [0,%d)", physics.ErrInvalidConfiguration, c.SpeedIndex, len(c.SpeedTable))
	}
	if len(c.Bodies) == 0 {
		return fmt.Errorf("%w: no bodies configured", physics.ErrInvalidConfiguration)
	}
	return nil
}

// ParseColor decodes a #rrggbb string, falling back to a pale default
// for anything malformed
func ParseColor(hex string) physics.RGB {
	var r, g, b uint8
	if len(hex) == 7 && hex[0] == '#' {
		if n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err == nil && n == 3 {
			return physics.RGB{R: r, G: g, B: b}
		}
	}
	return physics.RGB{R: 200, G: 200, B: 255}
}
