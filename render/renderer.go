package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/guptarohit/asciigraph"

	"github.com/lixenwraith/solar-sim/constant"
	"github.com/lixenwraith/solar-sim/physics"
	"github.com/lixenwraith/solar-sim/sim"
)

// Renderer draws one completed simulation frame to a tcell screen. It is
// a pure consumer: it reads body state after a tick and forwards nothing
// back. The speed-history ring for the sparkline is visualization state
// and lives here, not in the simulation.
type Renderer struct {
	screen        tcell.Screen
	tf            *Transform
	width, height int

	speedHist []float64
	histOwner *physics.Body // history resets when the selection changes
}

// New creates a renderer sized to the screen
func New(screen tcell.Screen) *Renderer {
	r := &Renderer{
		screen:    screen,
		speedHist: make([]float64, 0, constant.SpeedHistorySize),
	}
	r.Resize()
	return r
}

// Resize refits the world transform to the current screen size
func (r *Renderer) Resize() {
	r.screen.Sync()
	r.width, r.height = r.screen.Size()
	r.tf = NewTransform(r.width, r.height, constant.WorldRadiusAU*constant.AU)
}

// Transform exposes the current world transform for pointer mapping
func (r *Renderer) Transform() *Transform {
	return r.tf
}

// Frame renders the controller's current state. Must be called strictly
// after the frame's Tick so it never observes a mid-step state.
func (r *Renderer) Frame(c *sim.Controller, fps int) {
	r.screen.Clear()

	for _, b := range c.Bodies() {
		r.drawTrail(b)
	}
	for _, b := range c.Bodies() {
		r.drawBody(b, b == c.Selected())
	}

	r.drawStatusBar(c, fps)
	r.drawHelpLine()
	if sel := c.Selected(); sel != nil {
		r.recordSpeed(sel)
		r.drawInfoPanel(c, sel)
	} else {
		r.histOwner = nil
		r.speedHist = r.speedHist[:0]
	}

	r.screen.Show()
}

func (r *Renderer) drawTrail(b *physics.Body) {
	trail := b.Trail()
	if len(trail) == 0 {
		return
	}

	glyphs := []rune(constant.TrailGlyphs)
	for i, p := range trail {
		x, y := r.tf.Cell(p)
		if x < 0 || x >= r.width || y < 1 || y >= r.height-1 {
			continue
		}

		// Older points render dimmer and with a smaller glyph
		age := float64(i+1) / float64(len(trail))
		glyph := glyphs[int(age*float64(len(glyphs)-1))]
		style := tcell.StyleDefault.Foreground(dimColor(b.Color, 0.15+0.5*age))
		r.screen.SetContent(x, y, glyph, nil, style)
	}
}

func (r *Renderer) drawBody(b *physics.Body, selected bool) {
	cx, cy := r.tf.Cell(b.Pos)
	radius := int(b.Radius)
	style := tcell.StyleDefault.Foreground(bodyColor(b.Color))
	if selected {
		style = style.Bold(true)
	}

	// Filled disc: the row extent is squashed by the cell aspect so the
	// body reads as a circle on screen
	rowRadius := int(b.Radius * constant.CellAspect)
	for dy := -rowRadius; dy <= rowRadius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			fx := float64(dx)
			fy := float64(dy) / constant.CellAspect
			if fx*fx+fy*fy > b.Radius*b.Radius {
				continue
			}
			x, y := cx+dx, cy+dy
			if x >= 0 && x < r.width && y >= 1 && y < r.height-1 {
				r.screen.SetContent(x, y, '█', nil, style)
			}
		}
	}

	r.drawText(cx+radius+2, cy, style, b.Name)
	if selected {
		r.drawText(cx+radius+2+len(b.Name), cy, style, " ◄")
	}
}

func (r *Renderer) drawStatusBar(c *sim.Controller, fps int) {
	state := "running"
	if c.Paused() {
		state = "PAUSED"
	}

	bar := fmt.Sprintf(" %s │ speed %gx │ sim %s │ run %s │ %d fps ",
		state, c.SpeedMultiplier(), formatSimTime(c.SimTime()),
		formatRunTime(c.RunTime()), fps)

	style := tcell.StyleDefault.Reverse(true)
	r.drawText(0, 0, style, bar+strings.Repeat(" ", max(0, r.width-len([]rune(bar)))))
}

func (r *Renderer) drawHelpLine() {
	help := " [space] pause  [+/-] speed  [click] select  [d] deselect  [q] quit"
	r.drawText(0, r.height-1, tcell.StyleDefault.Dim(true), help)
}

func (r *Renderer) recordSpeed(b *physics.Body) {
	if r.histOwner != b {
		r.histOwner = b
		r.speedHist = r.speedHist[:0]
	}
	if len(r.speedHist) == constant.SpeedHistorySize {
		copy(r.speedHist, r.speedHist[1:])
		r.speedHist = r.speedHist[:len(r.speedHist)-1]
	}
	r.speedHist = append(r.speedHist, b.Speed()/1000) // km/s
}

func (r *Renderer) drawInfoPanel(c *sim.Controller, b *physics.Body) {
	m := c.MetricsFor(b)
	x := r.width - constant.InfoPanelWidth
	if x < 0 {
		return
	}

	label := tcell.StyleDefault.Dim(true)
	value := tcell.StyleDefault
	title := tcell.StyleDefault.Foreground(bodyColor(b.Color)).Bold(true)

	row := 2
	line := func(name, val string) {
		r.drawText(x, row, label, fmt.Sprintf("%-10s", name))
		r.drawText(x+10, row, value, val)
		row++
	}

	r.drawText(x, row, title, b.Name)
	row += 2
	line("mass", fmt.Sprintf("%.4e kg", b.Mass))
	line("distance", fmt.Sprintf("%s km", formatGrouped(m.DistanceToStar/1000)))
	line("speed", fmt.Sprintf("%.2f km/s", m.Speed/1000))
	line("orbit", fmt.Sprintf("%.3f AU", m.SemiMajorAxis))
	line("period", fmt.Sprintf("%.1f days", m.OrbitalPeriod))
	row++

	if len(r.speedHist) > 1 {
		chart := asciigraph.Plot(r.speedHist,
			asciigraph.Height(constant.SparklineHeight),
			asciigraph.Width(constant.InfoPanelWidth-10),
			asciigraph.Caption("speed km/s"))
		for _, l := range strings.Split(chart, "\n") {
			r.drawText(x, row, label, l)
			row++
		}
	}
}

func (r *Renderer) drawText(x, y int, style tcell.Style, s string) {
	for i, ch := range []rune(s) {
		cx := x + i
		if cx < 0 || cx >= r.width || y < 0 || y >= r.height {
			continue
		}
		r.screen.SetContent(cx, y, ch, nil, style)
	}
}

func bodyColor(c physics.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func dimColor(c physics.RGB, factor float64) tcell.Color {
	return tcell.NewRGBColor(
		int32(float64(c.R)*factor),
		int32(float64(c.G)*factor),
		int32(float64(c.B)*factor))
}

// formatSimTime renders simulated seconds as days or years
func formatSimTime(seconds float64) string {
	days := seconds / 86400
	if days >= 1000 {
		return fmt.Sprintf("%.2f yr", days/365.25)
	}
	return fmt.Sprintf("%.1f d", days)
}

func formatRunTime(d time.Duration) string {
	s := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// formatGrouped inserts thousands separators into a rounded value
func formatGrouped(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
