package sim

import (
	"math"
	"testing"

	"github.com/lixenwraith/solar-sim/constant"
	"github.com/lixenwraith/solar-sim/vmath"
)

// identity projector: pointer space equals simulation space, radii in
// the same units. Good enough for exercising the hit test alone.
func identity(p vmath.Vec2) vmath.Vec2 { return p }

func newSelectionController(t *testing.T) *Controller {
	t.Helper()
	cfg := DefaultSolarSystem()
	cfg.Bodies = []BodyConfig{
		{Name: "a", Mass: 1e30, Radius: 5, Color: "#ffffff", Pos: vmath.Vec2{X: 0}},
		{Name: "b", Mass: 1e24, Radius: 5, Color: "#ffffff", Pos: vmath.Vec2{X: 4}},
		{Name: "c", Mass: 1e24, Radius: 5, Color: "#ffffff", Pos: vmath.Vec2{X: 100}},
	}
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

// TestSelectAtHit verifies disc containment and the selected accessor
func TestSelectAtHit(t *testing.T) {
	c := newSelectionController(t)

	got := c.SelectAt(vmath.Vec2{X: 100, Y: 4}, identity)
	if got == nil || got.Name != "c" {
		t.Fatalf("Expected c selected, got %v", got)
	}
	if c.Selected() != got {
		t.Errorf("Expected Selected to return the hit body")
	}

	// Exactly on the rim still counts (distance == radius)
	if got := c.SelectAt(vmath.Vec2{X: 105}, identity); got == nil || got.Name != "c" {
		t.Errorf("Expected rim click to select c, got %v", got)
	}
}

// TestSelectAtOverlapDeterminism verifies the lowest-index body wins on
// overlapping discs, stably across repeated calls
func TestSelectAtOverlapDeterminism(t *testing.T) {
	c := newSelectionController(t)

	// x=2 lies inside both a (center 0, r 5) and b (center 4, r 5)
	for i := 0; i < 10; i++ {
		got := c.SelectAt(vmath.Vec2{X: 2}, identity)
		if got == nil || got.Name != "a" {
			t.Fatalf("call %d: expected lowest-index body a, got %v", i, got)
		}
	}
}

// TestSelectAtMiss verifies empty-space clicks clear the selection
func TestSelectAtMiss(t *testing.T) {
	c := newSelectionController(t)

	c.SelectAt(vmath.Vec2{X: 100}, identity)
	if c.Selected() == nil {
		t.Fatal("Expected a selection to clear")
	}

	if got := c.SelectAt(vmath.Vec2{X: 50, Y: 50}, identity); got != nil {
		t.Errorf("Expected miss, got %v", got)
	}
	if c.Selected() != nil {
		t.Error("Expected empty-space click to deselect")
	}
}

// TestDeselect verifies unconditional clearing
func TestDeselect(t *testing.T) {
	c := newSelectionController(t)

	c.Deselect() // already clear, must not panic
	c.SelectAt(vmath.Vec2{}, identity)
	c.Deselect()
	if c.Selected() != nil {
		t.Error("Expected no selection after Deselect")
	}
}

// TestSelectionSurvivesTicks verifies selection is identity-based and
// independent of the tick rate
func TestSelectionSurvivesTicks(t *testing.T) {
	c := newTestController(t)
	earth := c.Bodies()[3]

	c.SelectAt(vmath.Vec2{X: earth.Pos.X, Y: earth.Pos.Y}, identity)
	if c.Selected() != earth {
		t.Fatal("Expected Earth selected")
	}

	for i := 0; i < 30; i++ {
		c.Tick()
	}
	if c.Selected() != earth {
		t.Error("Expected selection to survive ticks")
	}
}

// TestMetricsFor verifies the derived orbital values for Earth and the
// degenerate star case
func TestMetricsFor(t *testing.T) {
	c := newTestController(t)
	sun, earth := c.Bodies()[0], c.Bodies()[3]

	m := c.MetricsFor(earth)
	if math.Abs(m.DistanceToStar-constant.AU) > 1 {
		t.Errorf("Expected Earth at 1 AU, got %g m", m.DistanceToStar)
	}
	if math.Abs(m.SemiMajorAxis-1) > 1e-9 {
		t.Errorf("Expected semi-major axis 1 AU, got %g", m.SemiMajorAxis)
	}
	if m.Speed != earth.Speed() {
		t.Errorf("Expected speed %g, got %g", earth.Speed(), m.Speed)
	}
	// Kepler: one year, within the tolerance of the circular approximation
	if m.OrbitalPeriod < 360 || m.OrbitalPeriod > 371 {
		t.Errorf("Expected Earth period near 365 days, got %g", m.OrbitalPeriod)
	}

	sm := c.MetricsFor(sun)
	if sm.DistanceToStar != 0 || sm.OrbitalPeriod != 0 {
		t.Errorf("Expected zero distance and period for the star, got %+v", sm)
	}

	// Pure query: state untouched
	before := captureState(c.Bodies())
	c.MetricsFor(earth)
	after := captureState(c.Bodies())
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("body %d: MetricsFor mutated state", i)
		}
	}
}
