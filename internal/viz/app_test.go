package viz

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, a App, msgs ...tea.Msg) App {
	t.Helper()
	for _, msg := range msgs {
		m, _ := a.Update(msg)
		a = m.(App)
	}
	return a
}

func newApp(t *testing.T, start Screen) App {
	t.Helper()
	a, err := NewApp(Options{FPS: 30, Start: start})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return a
}

func TestHomeNavigation(t *testing.T) {
	a := newApp(t, ScreenHome)
	if !strings.Contains(a.View(), "Catapult") {
		t.Error("home should list the catapult")
	}

	a = send(t, a, key("right"), key("enter"))
	if a.Screen() != ScreenPendulum {
		t.Fatalf("screen = %v, want pendulum", a.Screen())
	}

	a = send(t, a, key("esc"), key("3"))
	if a.Screen() != ScreenTheory {
		t.Fatalf("screen = %v, want theory", a.Screen())
	}
	if !strings.Contains(a.View(), "PROJECTILE MOTION") {
		t.Error("first theory page should cover projectiles")
	}
	a = send(t, a, key("right"))
	if !strings.Contains(a.View(), "Build your own pendulum") {
		t.Error("second theory page should carry the pendulum build tips")
	}
}

func TestCatapultPlayback(t *testing.T) {
	a := newApp(t, ScreenCatapult)
	base := time.Now()

	a = send(t, a, key(" "), tickMsg(base), tickMsg(base.Add(500*time.Millisecond)))
	f := a.catapult.Frame()
	if math.Abs(f.Time-0.5) > 1e-9 {
		t.Errorf("frame time = %g, want 0.5", f.Time)
	}
	if len(a.history) != 2 {
		t.Errorf("history = %d samples, want 2", len(a.history))
	}

	a = send(t, a, key(" "), tickMsg(base.Add(3*time.Second)))
	if a.catapult.Frame().Time != f.Time {
		t.Error("paused catapult kept moving")
	}

	a = send(t, a, key(" "), tickMsg(base.Add(4*time.Second)), tickMsg(base.Add(8*time.Second)))
	if !a.catapult.Frame().Done {
		t.Fatal("catapult should have landed")
	}
	if a.catapult.Running() {
		t.Error("catapult should stop on landing")
	}
	if !strings.Contains(a.View(), "LANDED") {
		t.Error("view should report the landing")
	}

	a = send(t, a, key("r"))
	if a.catapult.Elapsed() != 0 || len(a.history) != 0 {
		t.Errorf("reset left elapsed=%g history=%d", a.catapult.Elapsed(), len(a.history))
	}
}

func TestCatapultSliders(t *testing.T) {
	a := newApp(t, ScreenCatapult)

	a = send(t, a, key("up"))
	if got := a.catapult.Params()["angle"]; got != 46 {
		t.Errorf("angle = %g, want 46", got)
	}
	for i := 0; i < 50; i++ {
		a = send(t, a, key("up"))
	}
	if got := a.catapult.Params()["angle"]; got != 80 {
		t.Errorf("angle = %g, want slider max 80", got)
	}

	a = send(t, a, key("tab"), key("down"))
	if got := a.catapult.Params()["speed"]; got != 19 {
		t.Errorf("speed = %g, want 19", got)
	}
	if a.err != nil {
		t.Errorf("unexpected error %v", a.err)
	}
}

func TestPendulumSliderAndBack(t *testing.T) {
	a := newApp(t, ScreenPendulum)
	base := time.Now()

	a = send(t, a, key(" "), tickMsg(base), tickMsg(base.Add(time.Second)))
	for i := 0; i < 20; i++ {
		a = send(t, a, key("down"))
	}
	if got := a.pendulum.Params()["length"]; math.Abs(got-0.1) > 1e-9 {
		t.Errorf("length = %g, want slider min 0.1", got)
	}
	if a.pendulum.Elapsed() != 0 || !a.pendulum.Running() {
		t.Errorf("length change should release the bob again, elapsed %g running=%v", a.pendulum.Elapsed(), a.pendulum.Running())
	}
	if len(a.history) != 0 {
		t.Errorf("length change should clear the angle history, got %d samples", len(a.history))
	}
	if !strings.Contains(a.View(), "Period") {
		t.Error("pendulum view should show the period")
	}

	a = send(t, a, key("esc"))
	if a.Screen() != ScreenHome || a.pendulum.Running() {
		t.Errorf("esc should pause and go home, screen=%v running=%v", a.Screen(), a.pendulum.Running())
	}
}

func TestThemeCycle(t *testing.T) {
	defer SetTheme(ThemeClassroom.Name)

	a := newApp(t, ScreenHome)
	before := CurrentTheme.Name
	send(t, a, key("t"))
	if CurrentTheme.Name == before {
		t.Error("t should switch theme")
	}
	if GetTheme("nope").Name != ThemeClassroom.Name {
		t.Error("unknown theme should fall back to classroom")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names out of sync")
	}
}

func TestQuit(t *testing.T) {
	a := newApp(t, ScreenHome)
	_, cmd := a.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
