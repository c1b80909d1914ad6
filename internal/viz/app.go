package viz

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/kinelab/internal/kinematics"
	"github.com/san-kum/kinelab/internal/models"
	"github.com/san-kum/kinelab/internal/sim"
)

type Screen int

const (
	ScreenHome Screen = iota
	ScreenCatapult
	ScreenPendulum
	ScreenTheory
)

const (
	defaultCanvasWidth  = 56
	defaultCanvasHeight = 18
	panelWidth          = 44
	historyCapacity     = 240
	sliderWidth         = 12
)

var homeItems = []struct {
	title, desc string
	screen      Screen
}{
	{"Catapult", "projectile motion simulator", ScreenCatapult},
	{"Pendulum", "periodic motion simulator", ScreenPendulum},
	{"Theory", "formulas, activities, DIY builds", ScreenTheory},
}

var screenParams = map[Screen][]string{
	ScreenCatapult: {"angle", "speed"},
	ScreenPendulum: {"length"},
}

type tickMsg time.Time

type Options struct {
	Catapult *models.Catapult
	Pendulum *models.Pendulum
	FPS      int
	Start    Screen
	Logger   *slog.Logger
}

// App is the Bubble Tea model: a home screen, one screen per scenario and
// the theory pages. Each scenario screen owns a sim.Session driven by
// tea.Tick at FPS.
type App struct {
	screen      Screen
	cursor      int
	paramCursor int
	theoryPage  int
	fps         int
	catapult    *sim.Session
	pendulum    *sim.Session
	canvas      *Canvas
	history     []float64
	lastTime    float64
	err         error
	logger      *slog.Logger
}

func NewApp(opts Options) (App, error) {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Catapult == nil {
		c, err := models.NewCatapult(models.DefaultAngle, models.DefaultSpeed, kinematics.StandardGravity)
		if err != nil {
			return App{}, err
		}
		opts.Catapult = c
	}
	if opts.Pendulum == nil {
		p, err := models.NewPendulum(models.DefaultLength, kinematics.StandardGravity, kinematics.DefaultAmplitude)
		if err != nil {
			return App{}, err
		}
		opts.Pendulum = p
	}

	catapult, err := sim.NewSession(opts.Catapult)
	if err != nil {
		return App{}, err
	}
	pendulum, err := sim.NewSession(opts.Pendulum)
	if err != nil {
		return App{}, err
	}

	return App{
		screen:   opts.Start,
		fps:      opts.FPS,
		catapult: catapult,
		pendulum: pendulum,
		canvas:   NewCanvas(defaultCanvasWidth, defaultCanvasHeight),
		history:  make([]float64, 0, historyCapacity),
		logger:   opts.Logger,
	}, nil
}

func (a App) Screen() Screen { return a.screen }

func (a App) Init() tea.Cmd {
	return a.tick()
}

func (a App) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(a.fps), func(t time.Time) tea.Msg { return tickMsg(t) })
}

// session is the simulation behind the current screen, or nil.
func (a App) session() *sim.Session {
	switch a.screen {
	case ScreenCatapult:
		return a.catapult
	case ScreenPendulum:
		return a.pendulum
	}
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.WindowSizeMsg:
		w := msg.Width - panelWidth - 6
		h := msg.Height - 4
		if w < 24 {
			w = 24
		}
		if h < 10 {
			h = 10
		}
		a.canvas = NewCanvas(w, h)
		return a, nil
	case tickMsg:
		a.advance(time.Time(msg))
		return a, a.tick()
	}
	return a, nil
}

func (a *App) advance(now time.Time) {
	s := a.session()
	if s == nil {
		return
	}
	wasRunning := s.Running()
	f, err := s.Tick(now)
	if err != nil {
		a.err = err
		a.logger.Warn("frame failed", "scenario", s.Scenario().Name(), "err", err)
		return
	}
	if !wasRunning {
		return
	}
	if f.Time < a.lastTime {
		a.history = a.history[:0]
	}
	a.lastTime = f.Time
	a.record(f)
	if f.Done {
		a.logger.Debug("landed", "time", f.Time, "x", f.State[0])
	}
}

func (a *App) record(f sim.Frame) {
	idx := 0
	if a.screen == ScreenCatapult {
		idx = 1
	}
	if idx >= len(f.State) {
		return
	}
	a.history = append(a.history, f.State[idx])
	if len(a.history) > historyCapacity {
		a.history = a.history[1:]
	}
}

func (a *App) clearHistory() {
	a.history = a.history[:0]
	a.lastTime = 0
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return a, tea.Quit
	case "t":
		NextTheme()
		return a, nil
	}

	switch a.screen {
	case ScreenHome:
		a.homeKey(msg)
	case ScreenTheory:
		a.theoryKey(msg)
	default:
		a.simKey(msg)
	}
	return a, nil
}

func (a *App) homeKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "left", "h", "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "right", "l", "down", "j", "tab":
		if a.cursor < len(homeItems)-1 {
			a.cursor++
		}
	case "enter", " ":
		a.open(homeItems[a.cursor].screen)
	case "1", "2", "3":
		a.open(homeItems[int(msg.String()[0]-'1')].screen)
	}
}

func (a *App) open(s Screen) {
	a.screen = s
	a.paramCursor = 0
	a.err = nil
	a.clearHistory()
}

func (a *App) theoryKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc", "backspace":
		a.screen = ScreenHome
	case "left", "h":
		if a.theoryPage > 0 {
			a.theoryPage--
		}
	case "right", "l", "tab":
		a.theoryPage = (a.theoryPage + 1) % len(Theory)
	}
}

func (a *App) simKey(msg tea.KeyMsg) {
	s := a.session()
	switch msg.String() {
	case "esc", "backspace":
		s.Pause()
		a.screen = ScreenHome
	case " ", "p":
		if !s.Running() && s.Frame().Done {
			a.clearHistory()
		}
		s.Toggle()
	case "r":
		if err := s.Reset(); err != nil {
			a.err = err
		}
		a.clearHistory()
	case "tab":
		a.paramCursor = (a.paramCursor + 1) % len(screenParams[a.screen])
	case "up", "k", "right", "l":
		a.stepParam(1)
	case "down", "j", "left", "h":
		a.stepParam(-1)
	}
}

// stepParam moves the selected parameter one slider step within its
// bounds.
func (a *App) stepParam(dir float64) {
	s := a.session()
	names := screenParams[a.screen]
	name := names[a.paramCursor]

	b := s.Scenario().(sim.Bounded).ParamBounds()[name]
	v := s.Params()[name] + dir*b.Step
	v = b.Clamp(math.Round(v/b.Step) * b.Step)

	if err := s.SetParam(name, v); err != nil {
		a.err = err
		return
	}
	a.err = nil
	a.clearHistory()
}

func (a App) View() string {
	switch a.screen {
	case ScreenCatapult, ScreenPendulum:
		return a.viewSim()
	case ScreenTheory:
		return a.viewTheory()
	}
	return a.viewHome()
}

func (a App) viewHome() string {
	var b strings.Builder
	b.WriteString("\n  " + titleStyle().Render("KINELAB") + "\n")
	b.WriteString("  " + subtleStyle().Render("learning with simple physics") + "\n\n")
	b.WriteString("  Explore projectile motion and simple harmonic motion.\n")
	b.WriteString("  Change the parameters, watch the motion, compare the numbers.\n\n")

	boxes := make([]string, len(homeItems))
	for i, item := range homeItems {
		content := activeStyle().Render(item.title) + "\n" + subtleStyle().Render(item.desc)
		boxes[i] = boxStyle(i == a.cursor).Render(content)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...) + "\n\n")
	b.WriteString("  " + KeyHints("←/→", "select", "enter", "open", "t", "theme", "q", "quit") + "\n")
	return b.String()
}

func (a App) viewTheory() string {
	page := Theory[a.theoryPage]
	var b strings.Builder
	b.WriteString("\n  " + titleStyle().Render(strings.ToUpper(page.Title)) + "\n")
	b.WriteString("  " + Separator(50) + "\n\n")
	for _, line := range strings.Split(page.Body, "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n  " + subtleStyle().Render(fmt.Sprintf("page %d/%d", a.theoryPage+1, len(Theory))) + "\n")
	b.WriteString("  " + KeyHints("←/→", "page", "esc", "back", "q", "quit") + "\n")
	return b.String()
}

func (a App) viewSim() string {
	s := a.session()
	f := s.Frame()

	var title string
	var stats strings.Builder
	stats.WriteString(statRow("Time", f.Time, "s"))

	switch sc := s.Scenario().(type) {
	case *models.Catapult:
		title = "CATAPULT  projectile motion"
		traj := sc.Trajectory()
		DrawCatapult(a.canvas, traj, f)
		stats.WriteString(statRow("Range", traj.Range, "m"))
		stats.WriteString(statRow("Flight", traj.TimeOfFlight, "s"))
		stats.WriteString(statRow("Max height", traj.MaxHeight, "m"))
		if len(f.State) >= 2 {
			stats.WriteString(statRow("Height", f.State[1], "m"))
		}
	case *models.Pendulum:
		title = "PENDULUM  periodic motion"
		osc := sc.Oscillation()
		DrawPendulum(a.canvas, NewPendulumView(a.canvas, models.PendulumBounds["length"].Max), osc.Params.Length, f)
		stats.WriteString(statRow("Period", osc.Period, "s"))
		if len(f.State) >= 1 {
			stats.WriteString(statRow("Angle", f.State[0]*180/math.Pi, "°"))
		}
	}

	status := "PAUSED"
	switch {
	case f.Done:
		status = "LANDED"
	case s.Running():
		status = "RUNNING"
	}

	var p strings.Builder
	p.WriteString(titleStyle().Render(title) + "\n")
	p.WriteString(statusStyle(s.Running(), f.Done).Render(status) + "\n\n")
	p.WriteString(stats.String())

	if len(a.history) > 1 {
		caption := "height (m)"
		if a.screen == ScreenPendulum {
			caption = "angle (rad)"
		}
		chart := asciigraph.Plot(a.history, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption(caption))
		p.WriteString("\n" + chart + "\n")
	}

	p.WriteString("\nPARAMETERS\n")
	bounds := s.Scenario().(sim.Bounded).ParamBounds()
	params := s.Params()
	for i, name := range screenParams[a.screen] {
		b := bounds[name]
		line := fmt.Sprintf("%-7s %s %5.1f %s", name, Slider(b, params[name], sliderWidth), params[name], b.Unit)
		if i == a.paramCursor {
			p.WriteString(activeStyle().Render("> "+line) + "\n")
		} else {
			p.WriteString("  " + subtleStyle().Render(line) + "\n")
		}
	}

	if a.err != nil {
		p.WriteString("\n" + lipgloss.NewStyle().Foreground(CurrentTheme.Error).Render(a.err.Error()) + "\n")
	}

	p.WriteString("\n" + KeyHints("space", "play/pause", "r", "reset") + "\n")
	p.WriteString(KeyHints("tab", "param", "↑/↓", "adjust", "esc", "back") + "\n")

	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle().Render(a.canvas.String()),
		panelStyle().Render(p.String()))
}

// Run starts the full screen program.
func Run(opts Options) error {
	app, err := NewApp(opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}
