package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/kinelab/internal/config"
	"github.com/san-kum/kinelab/internal/experiment"
	"github.com/san-kum/kinelab/internal/kinematics"
	"github.com/san-kum/kinelab/internal/logging"
	"github.com/san-kum/kinelab/internal/models"
	"github.com/san-kum/kinelab/internal/sim"
	"github.com/san-kum/kinelab/internal/storage"
)

func showCatapult(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "catapult")
	if err != nil {
		return err
	}
	v, err := cfg.LaunchSpeed()
	if err != nil {
		return err
	}

	res, err := kinematics.EvaluateProjectile(cfg.Catapult.AngleDegrees, v, cfg.Catapult.Gravity, frameTime(cmd))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "angle\t%.2f °\n", cfg.Catapult.AngleDegrees)
	fmt.Fprintf(w, "speed\t%.2f m/s\n", v)
	fmt.Fprintf(w, "gravity\t%.2f m/s²\n", cfg.Catapult.Gravity)
	fmt.Fprintf(w, "range\t%.2f m\n", res.Range)
	fmt.Fprintf(w, "time of flight\t%.2f s\n", res.TimeOfFlight)
	fmt.Fprintf(w, "max height\t%.2f m\n", res.MaxHeight)
	if cmd.Flags().Changed("at") {
		state := "in flight"
		if res.Landed {
			state = "landed"
		}
		fmt.Fprintf(w, "\nat t=%.2f s\t%s\n", at, state)
		fmt.Fprintf(w, "position\t(%.3f, %.3f) m\n", res.X, res.Y)
		fmt.Fprintf(w, "velocity\t(%.3f, %.3f) m/s\n", res.VX, res.VY)
	}
	return w.Flush()
}

// frameTime is the --at value when given, otherwise the launch instant.
// Negative times are passed through for the evaluator to reject.
func frameTime(cmd *cobra.Command) float64 {
	if cmd.Flags().Changed("at") {
		return at
	}
	return 0
}

func showPendulum(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "pendulum")
	if err != nil {
		return err
	}
	p := cfg.Pendulum

	res, err := kinematics.EvaluatePendulum(p.Length, p.Gravity, p.Amplitude, frameTime(cmd))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "length\t%.2f m\n", p.Length)
	fmt.Fprintf(w, "gravity\t%.2f m/s²\n", p.Gravity)
	fmt.Fprintf(w, "amplitude\t%.3f rad\n", p.Amplitude)
	fmt.Fprintf(w, "period\t%.2f s\n", res.Period)
	if cmd.Flags().Changed("at") {
		fmt.Fprintf(w, "\nat t=%.2f s\t\n", at)
		fmt.Fprintf(w, "angle\t%.4f rad\n", res.Angle)
		fmt.Fprintf(w, "angular velocity\t%.4f rad/s\n", res.AngularVelocity)
		fmt.Fprintf(w, "bob offset\t(%.3f, %.3f) m\n", res.HorizontalOffset, res.VerticalOffset)
	}
	return w.Flush()
}

func runSimulation(cmd *cobra.Command, args []string) error {
	scenario := args[0]
	cfg, err := validConfig(cmd, scenario)
	if err != nil {
		return err
	}

	exp := experiment.New(cfg, experiment.NewRegistry())
	if err := exp.Setup(); err != nil {
		return err
	}

	fmt.Printf("running %s simulation...\n", scenario)
	start := time.Now()

	result, err := exp.Run(cmd.Context())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	logger.Info("run finished", "scenario", scenario, "steps", result.StepsTaken, "landed", result.Landed, "elapsed", elapsed)

	fmt.Printf("completed in %v\n", elapsed)
	if !noSave {
		st := storage.New(dataDir)
		params := exp.GetSimulator().Scenario().(sim.Configurable).GetParams()
		runID, err := st.Save(sim.Config{Dt: cfg.Dt, Duration: cfg.Duration}, params, result)
		if err != nil {
			return logging.WrapError(err, "store %s run in %s", scenario, st.Dir())
		}
		logger.Info("run stored", "id", runID, "dir", st.Dir())
		fmt.Printf("run id: %s\n", runID)
	}
	fmt.Printf("steps: %d\n", result.StepsTaken)
	if result.Landed {
		fmt.Printf("landed at t=%.2fs\n", result.Times[len(result.Times)-1])
	}

	printValues("summary", result.Summary)
	printValues("metrics", result.Metrics)
	return nil
}

func printValues(title string, values map[string]float64) {
	if len(values) == 0 {
		return
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("\n%s:\n", title)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, values[name])
	}
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	scenario := args[0]
	cfg, err := validConfig(cmd, scenario)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	sc, err := registry.GetScenario(scenario, cfg)
	if err != nil {
		return err
	}

	names := args[1:]
	if len(names) == 0 {
		names = registry.ListIntegrators()
	}

	fmt.Printf("closed form vs integration for %s (dt=%.4f, duration=%.1fs)\n\n", scenario, cfg.Dt, cfg.Duration)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tSTEPS\tMAX_ERR\tFINAL_ERR\tTIME_MS")

	for _, name := range names {
		start := time.Now()
		cmp, err := registry.Compare(cmd.Context(), sc, name, sim.Config{Dt: cfg.Dt, Duration: cfg.Duration})
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%.3e\t%.3e\t%.2f\n", name, cmp.Steps, cmp.MaxError, cmp.FinalError, float64(elapsed.Microseconds())/1000)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if scenario == "pendulum" {
		fmt.Println("\nthe pendulum reference keeps sin θ, so part of the gap is the small-angle approximation itself")
	}
	return nil
}

// sweepKey is the summary value reported by sweep for each scenario.
var sweepKey = map[string]string{
	"catapult": "range",
	"pendulum": "period",
}

func runSweep(cmd *cobra.Command, args []string) error {
	scenario := args[0]
	base, err := validConfig(cmd, scenario)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	bounds := models.CatapultBounds
	if scenario == "pendulum" {
		bounds = models.PendulumBounds
	}
	if sweepParam == "" {
		sweepParam = "angle"
		if scenario == "pendulum" {
			sweepParam = "length"
		}
	}

	from, to, step := sweepFrom, sweepTo, sweepStep
	if b, ok := bounds[sweepParam]; ok {
		if !cmd.Flags().Changed("from") {
			from = b.Min
		}
		if !cmd.Flags().Changed("to") {
			to = b.Max
		}
		if !cmd.Flags().Changed("step") {
			step = 5 * b.Step
		}
	}
	if step <= 0 || to < from {
		return fmt.Errorf("sweep needs from <= to and a positive step, got %g..%g step %g", from, to, step)
	}

	var values []float64
	for v := from; v <= to+step*1e-9; v += step {
		values = append(values, v)
	}

	build := func(v float64) (sim.Scenario, error) {
		sc, err := registry.GetScenario(scenario, base)
		if err != nil {
			return nil, err
		}
		if err := sc.(sim.Configurable).SetParam(sweepParam, v); err != nil {
			return nil, err
		}
		return sc, nil
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	results, err := sim.NewSweep(build, registry.DefaultMetrics).Run(ctx, values, sim.Config{Dt: base.Dt, Duration: base.Duration})
	if err != nil {
		return err
	}
	logger.Debug("sweep finished", "scenario", scenario, "param", sweepParam, "runs", len(results))

	key := sweepKey[scenario]
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\tSTEPS\tMETRICS\n", strings.ToUpper(sweepParam), strings.ToUpper(key))
	series := make([]float64, len(results))
	for i, r := range results {
		series[i] = r.Summary[key]
		fmt.Fprintf(w, "%.2f\t%.4f\t%d\t%s\n", values[i], r.Summary[key], r.StepsTaken, formatMetrics(r.Metrics))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(series) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(series,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("%s vs %s", key, sweepParam)),
		))
	}
	return nil
}

func formatMetrics(m map[string]float64) string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%.4g", name, m[name])
	}
	return strings.Join(parts, " ")
}

func listPresets(cmd *cobra.Command, args []string) error {
	scenarios := []string{"catapult", "pendulum"}
	if len(args) == 1 {
		scenarios = args
	}

	for _, scenario := range scenarios {
		presets := config.ListPresets(scenario)
		if len(presets) == 0 {
			fmt.Printf("no presets for scenario: %s\n", scenario)
			continue
		}
		fmt.Printf("presets for %s:\n", scenario)
		for _, name := range presets {
			p := config.GetPreset(scenario, name)
			switch scenario {
			case "catapult":
				desc := fmt.Sprintf("angle %.0f°, speed %.0f m/s", p.Catapult.AngleDegrees, p.Catapult.Speed)
				if p.Catapult.Spring.Enabled {
					desc = fmt.Sprintf("angle %.0f°, spring launcher", p.Catapult.AngleDegrees)
				}
				fmt.Printf("  %-10s %s, g %.2f\n", name, desc, p.Catapult.Gravity)
			case "pendulum":
				fmt.Printf("  %-10s length %.3f m, amplitude %.2f rad\n", name, p.Pendulum.Length, p.Pendulum.Amplitude)
			}
		}
	}
	return nil
}
