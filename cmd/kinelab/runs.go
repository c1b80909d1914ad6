package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/kinelab/internal/analysis"
	"github.com/san-kum/kinelab/internal/export"
	"github.com/san-kum/kinelab/internal/kinematics"
	"github.com/san-kum/kinelab/internal/logging"
	"github.com/san-kum/kinelab/internal/models"
	"github.com/san-kum/kinelab/internal/storage"
	"github.com/san-kum/kinelab/internal/viz"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIMESTAMP\tSTEPS\tLANDED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%v\n",
			run.ID, run.Scenario, run.Timestamp.Format("2006-01-02 15:04:05"), run.Steps, run.Landed)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	states, _, err := st.LoadStates(runID)
	if err != nil {
		return logging.WrapError(err, "load states of %s", runID)
	}
	if len(states) == 0 {
		return fmt.Errorf("run %s has no states", runID)
	}

	fmt.Printf("run: %s (%s)\n\n", runID, meta.Scenario)

	dim := len(states[0])
	if varIndex >= dim {
		return fmt.Errorf("state index %d out of range (dimension %d)", varIndex, dim)
	}
	for i := 0; i < dim; i++ {
		if varIndex >= 0 && i != varIndex {
			continue
		}
		series := make([]float64, len(states))
		for j, s := range states {
			series[j] = s[i]
		}
		label := fmt.Sprintf("x%d", i)
		if i < len(meta.Labels) {
			label = meta.Labels[i]
		}
		fmt.Println(asciigraph.Plot(series,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(label),
		))
		fmt.Println()
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	f, err := os.Open(st.CSVPath(args[0]))
	if err != nil {
		return fmt.Errorf("run %s: %w", args[0], err)
	}
	defer f.Close()

	_, err = io.Copy(os.Stdout, f)
	return err
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if output == "" {
		return st.ExportJSON(args[0], os.Stdout)
	}
	if err := st.ExportJSONFile(args[0], output); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", output)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	var svg string
	switch svgMode {
	case "trajectory":
		states, _, err := st.LoadStates(runID)
		if err != nil {
			return err
		}
		svg, err = trajectorySVG(meta, states)
		if err != nil {
			return err
		}
	case "canvas":
		c, err := sceneCanvas(meta)
		if err != nil {
			return err
		}
		svg = export.CanvasToSVG(c, 4)
	default:
		return fmt.Errorf("unknown svg mode: %s (trajectory or canvas)", svgMode)
	}

	path := output
	if path == "" {
		path = runID + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	logger.Info("svg written", "run", runID, "mode", svgMode, "path", path)
	fmt.Printf("exported to %s\n", path)
	return nil
}

// trajectorySVG traces the path of the moving body: the projectile in x/y,
// the bob in its offset from the pivot with y pointing up.
func trajectorySVG(meta *storage.RunMetadata, states [][]float64) (string, error) {
	switch meta.Scenario {
	case "catapult":
		p, err := analysis.NewPhasePortrait(states, 0, 1)
		if err != nil {
			return "", err
		}
		return export.TrajectorySVG(p.Points, 800, 400, ""), nil
	case "pendulum":
		p, err := analysis.NewPhasePortrait(states, 2, 3)
		if err != nil {
			return "", err
		}
		for i := range p.Points {
			p.Points[i].Y = -p.Points[i].Y
		}
		return export.TrajectorySVG(p.Points, 600, 600, ""), nil
	}
	return "", fmt.Errorf("unknown scenario: %s", meta.Scenario)
}

// sceneCanvas redraws the scenario's final frame the way the live view
// shows it.
func sceneCanvas(meta *storage.RunMetadata) (*viz.Canvas, error) {
	c := viz.NewCanvas(80, 24)
	p := meta.Params
	end := meta.Duration
	if meta.Steps > 0 {
		end = float64(meta.Steps-1) * meta.Dt
	}

	switch meta.Scenario {
	case "catapult":
		cat, err := models.NewCatapult(p["angle"], p["speed"], p["gravity"])
		if err != nil {
			return nil, err
		}
		f, err := cat.Frame(end)
		if err != nil {
			return nil, err
		}
		viz.DrawCatapult(c, cat.Trajectory(), f)
	case "pendulum":
		pen, err := models.NewPendulum(p["length"], p["gravity"], pendulumAmplitude(meta))
		if err != nil {
			return nil, err
		}
		f, err := pen.Frame(end)
		if err != nil {
			return nil, err
		}
		view := viz.NewPendulumView(c, models.PendulumBounds["length"].Max)
		viz.DrawPendulum(c, view, p["length"], f)
	default:
		return nil, fmt.Errorf("unknown scenario: %s", meta.Scenario)
	}
	return c, nil
}

func pendulumAmplitude(meta *storage.RunMetadata) float64 {
	if a, ok := meta.Summary["amplitude"]; ok {
		return a
	}
	return kinematics.DefaultAmplitude
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) < 2 {
		return fmt.Errorf("run %s has too few samples to analyze", runID)
	}

	fmt.Printf("analysis of %s (%s, %d samples)\n\n", runID, meta.Scenario, len(states))

	switch meta.Scenario {
	case "pendulum":
		return analyzePendulum(meta, states, times)
	case "catapult":
		return analyzeCatapult(meta, states)
	}
	return fmt.Errorf("unknown scenario: %s", meta.Scenario)
}

func analyzePendulum(meta *storage.RunMetadata, states [][]float64, times []float64) error {
	theta := column(states, 0)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "closed-form period\t%.4f s\n", meta.Summary["period"])
	if period, err := analysis.PeriodFromCrossings(times, theta); err == nil {
		fmt.Fprintf(w, "measured period\t%.4f s\n", period)
	} else {
		fmt.Fprintf(w, "measured period\t%v\n", err)
	}
	if freq, err := analysis.DominantFrequency(theta, meta.Dt); err == nil {
		fmt.Fprintf(w, "dominant frequency\t%.4f Hz\n", freq)
	}
	fmt.Fprintf(w, "expected frequency\t%.4f Hz\n", meta.Summary["angular_frequency"]/(2*math.Pi))
	if err := w.Flush(); err != nil {
		return err
	}

	spectrum := analysis.PowerSpectrum(theta)
	if len(spectrum) > 64 {
		spectrum = spectrum[:64]
	}
	if len(spectrum) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(spectrum,
			asciigraph.Height(8),
			asciigraph.Width(64),
			asciigraph.Caption("power spectrum of theta (low bins)"),
		))
	}

	portrait, err := analysis.NewPhasePortrait(states, 0, 1)
	if err != nil {
		return err
	}
	fmt.Println("\nphase portrait (theta, omega):")
	fmt.Println(analysis.PhasePortraitToASCII(portrait, 60, 20))
	return nil
}

func analyzeCatapult(meta *storage.RunMetadata, states [][]float64) error {
	last := states[len(states)-1]

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "closed-form max height\t%.4f m\n", meta.Summary["max_height"])
	if apex, ok := meta.Metrics["apex"]; ok {
		fmt.Fprintf(w, "sampled apex\t%.4f m\n", apex)
	}
	fmt.Fprintf(w, "closed-form range\t%.4f m\n", meta.Summary["range"])
	fmt.Fprintf(w, "last sampled x\t%.4f m\n", last[0])
	if drift, ok := meta.Metrics["energy_drift"]; ok {
		fmt.Fprintf(w, "energy drift\t%.3e\n", drift)
	}
	fmt.Fprintf(w, "landed\t%v\n", meta.Landed)
	if err := w.Flush(); err != nil {
		return err
	}

	portrait, err := analysis.NewPhasePortrait(states, 0, 1)
	if err != nil {
		return err
	}
	fmt.Println("\npath (x, y):")
	fmt.Println(analysis.PhasePortraitToASCII(portrait, 60, 20))
	return nil
}

func column(states [][]float64, idx int) []float64 {
	out := make([]float64, len(states))
	for i, s := range states {
		out[i] = s[idx]
	}
	return out
}
