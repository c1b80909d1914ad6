package viz

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/kinelab/internal/kinematics"
	"github.com/san-kum/kinelab/internal/models"
	"github.com/san-kum/kinelab/internal/sim"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)
	if w, h := c.Pixels(); w != 8 || h != 8 {
		t.Fatalf("pixels = %dx%d, want 8x8", w, h)
	}

	c.Set(0, 0)
	c.Set(1, 3)
	if c.Grid[0][0] != 0x2800|0x1|0x80 {
		t.Errorf("cell = %U", c.Grid[0][0])
	}
	if !c.IsSet(1, 3) || c.IsSet(1, 2) {
		t.Error("IsSet disagrees with Set")
	}

	c.Set(-1, 0)
	c.Set(8, 0)
	c.Set(0, 8)
	if c.IsSet(-1, 0) || c.IsSet(8, 0) {
		t.Error("out of range pixels should be dropped")
	}

	c.Clear()
	if c.IsSet(0, 0) {
		t.Error("clear left pixels set")
	}

	rows := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")
	if len(rows) != 2 || len([]rune(rows[0])) != 4 {
		t.Errorf("string layout %q", c.String())
	}
}

func TestCanvasShapes(t *testing.T) {
	c := NewCanvas(20, 10)

	c.DrawLine(0, 0, 30, 17)
	if !c.IsSet(0, 0) || !c.IsSet(30, 17) {
		t.Error("line endpoints not drawn")
	}

	c.Clear()
	c.FillDisc(20, 20, 3)
	if !c.IsSet(20, 20) || !c.IsSet(23, 20) || c.IsSet(23, 23) {
		t.Error("disc coverage wrong")
	}

	c.Clear()
	c.DrawArc(10, 30, 8, 0, math.Pi/2)
	if !c.IsSet(18, 30) || !c.IsSet(10, 22) {
		t.Error("arc should run from +x to straight up")
	}
}

func TestDrawCatapult(t *testing.T) {
	cat, _ := models.NewCatapult(45, 20, kinematics.StandardGravity)
	traj := cat.Trajectory()
	c := NewCanvas(40, 12)

	landed, _ := cat.Frame(traj.TimeOfFlight + 1)
	DrawCatapult(c, traj, landed)

	v := NewCatapultView(c, traj)
	x, y := v.ToCanvas(traj.Range, 0)
	if !c.IsSet(x, y) {
		t.Errorf("projectile not drawn at landing point (%d, %d)", x, y)
	}
	pw, _ := c.Pixels()
	if x >= pw {
		t.Errorf("landing point %d outside canvas width %d", x, pw)
	}

	apexX, apexY := v.ToCanvas(traj.Range/2, traj.MaxHeight)
	if apexY < 0 || apexX < 0 {
		t.Errorf("apex (%d, %d) outside canvas", apexX, apexY)
	}
}

func TestDrawPendulum(t *testing.T) {
	p, _ := models.NewPendulum(1.5, kinematics.StandardGravity, kinematics.DefaultAmplitude)
	c := NewCanvas(40, 16)
	view := NewPendulumView(c, models.PendulumBounds["length"].Max)

	f, _ := p.Frame(0)
	DrawPendulum(c, view, 1.5, f)

	bx, by := view.ToCanvas(f.State[2], f.State[3])
	if !c.IsSet(bx, by) {
		t.Errorf("bob not drawn at (%d, %d)", bx, by)
	}
	if !c.IsSet(view.PivotX, view.PivotY) {
		t.Error("pivot not drawn")
	}
	_, ph := c.Pixels()
	_, bottom := view.ToCanvas(0, models.PendulumBounds["length"].Max)
	if bottom+bobRadius >= ph {
		t.Errorf("longest string reaches %d, canvas height %d", bottom, ph)
	}

	DrawPendulum(c, view, 1.5, sim.Frame{})
	if c.IsSet(bx, by) {
		t.Error("empty frame should only draw the fixtures")
	}
}
