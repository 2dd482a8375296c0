package render

import (
	"math"

	"github.com/lixenwraith/solar-sim/constant"
	"github.com/lixenwraith/solar-sim/vmath"
)

// Transform maps simulation space (meters, origin at the star's start
// position) to screen cells. Terminal cells are taller than wide, so the
// vertical axis is compressed by CellAspect; hit testing happens in a
// "square" column-unit space where that compression is undone, keeping
// the disc test a plain euclidean circle.
type Transform struct {
	scale  float64 // columns per meter
	aspect float64 // rows per column-unit of visual distance
	cx, cy int     // screen center cell
}

// NewTransform fits a world of radius worldRadius meters into a
// width×height cell viewport, centered
func NewTransform(width, height int, worldRadius float64) *Transform {
	t := &Transform{
		aspect: constant.CellAspect,
		cx:     width / 2,
		cy:     height / 2,
	}

	halfW := float64(width)/2 - 1
	halfH := (float64(height)/2 - 1) / t.aspect // rows in column units
	fit := math.Min(halfW, halfH)
	if fit < 1 {
		fit = 1
	}
	t.scale = fit / worldRadius
	return t
}

// Cell returns the screen cell for a world position
func (t *Transform) Cell(w vmath.Vec2) (x, y int) {
	x = t.cx + int(math.Round(w.X*t.scale))
	y = t.cy + int(math.Round(w.Y*t.scale*t.aspect))
	return x, y
}

// Project maps a world position into square column-unit space, the same
// space Pointer produces. Passed to the controller's hit test.
func (t *Transform) Project(w vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{
		X: float64(t.cx) + w.X*t.scale,
		Y: float64(t.cy)/t.aspect + w.Y*t.scale,
	}
}

// Pointer maps a mouse cell position into square column-unit space
func (t *Transform) Pointer(x, y int) vmath.Vec2 {
	return vmath.Vec2{
		X: float64(x),
		Y: float64(y) / t.aspect,
	}
}

// Scale returns columns per meter
func (t *Transform) Scale() float64 {
	return t.scale
}
