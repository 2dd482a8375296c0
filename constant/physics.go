package constant

// Physical constants (SI)
const (
	// AU is one astronomical unit in meters
	AU = 149.6e9

	// DefaultG is the gravitational constant in m³/(kg·s²)
	DefaultG = 6.67428e-11

	// DefaultTimeStep is one simulated day in seconds
	DefaultTimeStep = 3600 * 24

	// DefaultMinSeparation is the distance floor ε in meters.
	// Separations below this are clamped before the inverse-square
	// evaluation to keep near-coincident bodies from blowing up.
	DefaultMinSeparation = 1e7

	// DefaultTrailCap bounds per-body position history
	DefaultTrailCap = 1000
)

// Time control
var (
	// DefaultSpeedTable holds the discrete simulation speed multipliers.
	// Index 0 is effectively paused.
	DefaultSpeedTable = []float64{0, 0.5, 1, 2, 5}
)

// DefaultSpeedIndex selects the nominal 1x multiplier
const DefaultSpeedIndex = 2
