package viz

import (
	"math"

	"github.com/san-kum/kinelab/internal/kinematics"
	"github.com/san-kum/kinelab/internal/sim"
)

const (
	trailSamples   = 48
	launchMargin   = 8
	groundMargin   = 3
	protractorSize = 12
	bobRadius      = 3
	// seconds of velocity drawn as the arrow
	arrowSeconds = 0.25
)

// CatapultView maps metres to catapult canvas sub-pixels. The scale fits
// the whole flight of the current trajectory.
type CatapultView struct {
	OriginX, GroundY int
	Scale            float64
}

func NewCatapultView(c *Canvas, traj *kinematics.Trajectory) CatapultView {
	pw, ph := c.Pixels()
	v := CatapultView{OriginX: launchMargin, GroundY: ph - groundMargin}

	usableW := float64(pw - launchMargin - 4)
	usableH := float64(v.GroundY - 4)
	v.Scale = math.Min(usableW/math.Max(traj.Range, 1), usableH/math.Max(traj.MaxHeight, 1))
	return v
}

func (v CatapultView) ToCanvas(x, y float64) (int, int) {
	return v.OriginX + int(math.Round(x*v.Scale)), v.GroundY - int(math.Round(y*v.Scale))
}

// DrawCatapult draws the ground, the launch protractor, the path flown so
// far, the projectile and its velocity arrow. State layout: x, y, vx, vy.
func DrawCatapult(c *Canvas, traj *kinematics.Trajectory, f sim.Frame) {
	c.Clear()
	v := NewCatapultView(c, traj)
	pw, _ := c.Pixels()

	c.DrawLine(0, v.GroundY, pw-1, v.GroundY)
	c.DrawArc(v.OriginX, v.GroundY, protractorSize, 0, traj.AngleRadians)
	c.DrawLine(v.OriginX, v.GroundY,
		v.OriginX+int(math.Round(protractorSize*1.5*math.Cos(traj.AngleRadians))),
		v.GroundY-int(math.Round(protractorSize*1.5*math.Sin(traj.AngleRadians))))

	if len(f.State) < 4 {
		return
	}

	for i := 0; i <= trailSamples; i++ {
		t := f.Time * float64(i) / trailSamples
		p, err := traj.At(t)
		if err != nil {
			break
		}
		c.Set(v.ToCanvas(p.X, p.Y))
	}

	px, py := v.ToCanvas(f.State[0], f.State[1])
	c.FillDisc(px, py, 2)

	if !f.Done {
		ax, ay := v.ToCanvas(f.State[0]+f.State[2]*arrowSeconds, f.State[1]+f.State[3]*arrowSeconds)
		c.DrawLine(px, py, ax, ay)
	}
}

// PendulumView maps metres to pendulum canvas sub-pixels. The scale is
// fixed by the longest allowed string so length changes stay visible.
type PendulumView struct {
	PivotX, PivotY int
	Scale          float64
}

func NewPendulumView(c *Canvas, maxLength float64) PendulumView {
	pw, ph := c.Pixels()
	v := PendulumView{PivotX: pw / 2, PivotY: 4}
	v.Scale = float64(ph-v.PivotY-bobRadius-2) / math.Max(maxLength, 0.1)
	return v
}

func (v PendulumView) ToCanvas(dx, dy float64) (int, int) {
	return v.PivotX + int(math.Round(dx*v.Scale)), v.PivotY + int(math.Round(dy*v.Scale))
}

// DrawPendulum draws the pivot bar, the string, the bob and a length ruler
// with one tick per 10 cm. State layout: theta, omega, x, y with y pointing
// down from the pivot.
func DrawPendulum(c *Canvas, view PendulumView, length float64, f sim.Frame) {
	c.Clear()

	c.DrawLine(view.PivotX-8, view.PivotY, view.PivotX+8, view.PivotY)

	rulerX := view.PivotX + int(0.9*view.Scale)
	_, end := view.ToCanvas(0, length)
	c.DrawLine(rulerX, view.PivotY, rulerX, end)
	for d := 0.0; d <= length+1e-9; d += 0.1 {
		_, ty := view.ToCanvas(0, d)
		c.DrawLine(rulerX, ty, rulerX+2, ty)
	}

	if len(f.State) < 4 {
		return
	}
	bx, by := view.ToCanvas(f.State[2], f.State[3])
	c.DrawLine(view.PivotX, view.PivotY, bx, by)
	c.FillDisc(bx, by, bobRadius)
}
