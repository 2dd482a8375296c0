package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/solar-sim/constant"
	"github.com/lixenwraith/solar-sim/vmath"
)

// TestTransformCenter verifies the world origin lands on the screen
// center cell
func TestTransformCenter(t *testing.T) {
	tf := NewTransform(200, 50, constant.WorldRadiusAU*constant.AU)
	x, y := tf.Cell(vmath.Vec2{})
	if x != 100 || y != 25 {
		t.Errorf("Expected origin at (100,25), got (%d,%d)", x, y)
	}
}

// TestTransformFitsWorld verifies the configured world radius stays on
// screen along both axes
func TestTransformFitsWorld(t *testing.T) {
	const width, height = 200, 50
	tf := NewTransform(width, height, constant.WorldRadiusAU*constant.AU)

	edge := vmath.Vec2{X: constant.WorldRadiusAU * constant.AU}
	if x, _ := tf.Cell(edge); x < 0 || x >= width {
		t.Errorf("Expected +x edge on screen, got column %d", x)
	}
	edge = vmath.Vec2{Y: constant.WorldRadiusAU * constant.AU}
	if _, y := tf.Cell(edge); y < 0 || y >= height {
		t.Errorf("Expected +y edge on screen, got row %d", y)
	}
}

// TestTransformAspect verifies a world circle projects to fewer rows
// than columns by the cell aspect
func TestTransformAspect(t *testing.T) {
	tf := NewTransform(300, 300, 1000) // height not the limiting axis

	xr, _ := tf.Cell(vmath.Vec2{X: 500})
	_, yr := tf.Cell(vmath.Vec2{Y: 500})
	cx, cy := tf.Cell(vmath.Vec2{})

	cols := xr - cx
	rows := yr - cy
	want := float64(cols) * constant.CellAspect
	// Each axis rounds to its own grid, so allow one cell of slack
	if math.Abs(float64(rows)-want) > 1 {
		t.Errorf("Expected about %g rows for %d columns at aspect %g, got %d", want, cols, constant.CellAspect, rows)
	}
}

// TestProjectPointerConsistency verifies a pointer event at a body's
// rendered cell resolves to (near) the body's projected position
func TestProjectPointerConsistency(t *testing.T) {
	tf := NewTransform(200, 50, constant.WorldRadiusAU*constant.AU)
	w := vmath.Vec2{X: 0.7 * constant.AU, Y: -0.3 * constant.AU}

	cellX, cellY := tf.Cell(w)
	click := tf.Pointer(cellX, cellY)
	projected := tf.Project(w)

	// Rounding to the cell grid costs at most half a cell per axis, and
	// the y axis is magnified by 1/aspect in square space
	maxErr := 0.5 + 0.5/constant.CellAspect
	if d := click.Dist(projected); d > maxErr {
		t.Errorf("Expected click within %g column units, got %g", maxErr, d)
	}
}

// TestTransformDegenerateScreen verifies tiny screens do not produce a
// zero or negative scale
func TestTransformDegenerateScreen(t *testing.T) {
	tf := NewTransform(1, 1, constant.WorldRadiusAU*constant.AU)
	if tf.Scale() <= 0 {
		t.Errorf("Expected positive scale, got %g", tf.Scale())
	}
}
