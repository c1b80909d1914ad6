package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/kinelab/internal/config"
	"github.com/san-kum/kinelab/internal/logging"
	"github.com/san-kum/kinelab/internal/viz"
)

var (
	dataDir  string
	logLevel string
	logger   *slog.Logger

	dt         float64
	duration   float64
	frameRate  int
	angle      float64
	speed      float64
	gravity    float64
	length     float64
	amplitude  float64
	useSpring  bool
	stretch    float64
	springK    float64
	weight     float64
	configFile string
	preset     string

	at       float64
	noSave   bool
	output   string
	svgMode  string
	varIndex int

	sweepParam string
	sweepFrom  float64
	sweepTo    float64
	sweepStep  float64
)

// main wires the kinelab commands. With no subcommand it opens the
// interactive home screen.
func main() {
	rootCmd := &cobra.Command{
		Use:           "kinelab",
		Short:         "catapult and pendulum kinematics lab",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.Run(viz.Options{FPS: config.DefaultFPS, Logger: logger})
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".kinelab", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); defaults to $"+logging.EnvLevel)

	catapultCmd := &cobra.Command{
		Use:   "catapult",
		Short: "range, flight time and max height of a launch",
		Args:  cobra.NoArgs,
		RunE:  showCatapult,
	}
	addScenarioFlags(catapultCmd)
	catapultCmd.Flags().Float64Var(&at, "at", -1, "also print the frame at this elapsed time (s)")

	pendulumCmd := &cobra.Command{
		Use:   "pendulum",
		Short: "period of a small-angle pendulum",
		Args:  cobra.NoArgs,
		RunE:  showPendulum,
	}
	addScenarioFlags(pendulumCmd)
	pendulumCmd.Flags().Float64Var(&at, "at", -1, "also print the frame at this elapsed time (s)")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "sample a scenario and store the run",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addScenarioFlags(runCmd)
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "print results without storing the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&varIndex, "var", -1, "plot only this state index")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a run as an SVG drawing",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <run_id>.svg)")
	exportSVGCmd.Flags().StringVar(&svgMode, "mode", "trajectory", "trajectory or canvas")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "measure period, frequency and apex of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [scenario] [integrator...]",
		Short: "compare the closed form with numeric integration",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareIntegrators,
	}
	addScenarioFlags(compareCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [scenario]",
		Short: "run one simulation per parameter value in parallel",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	addScenarioFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "", "parameter to sweep (angle, speed, length, gravity)")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "first value (default slider min)")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0, "last value (default slider max)")
	sweepCmd.Flags().Float64Var(&sweepStep, "step", 0, "increment (default 5 slider steps)")

	presetsCmd := &cobra.Command{
		Use:   "presets [scenario]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "open the interactive view of a scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)

	watchCmd := &cobra.Command{
		Use:   "watch [scenario]",
		Short: "print frames in real time",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
	addScenarioFlags(watchCmd)

	rootCmd.AddCommand(catapultCmd, pendulumCmd, runCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd,
		exportSVGCmd, analyzeCmd, compareCmd, sweepCmd, presetsCmd, initConfigCmd, liveCmd, watchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogger(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("log-level") {
		logger = logging.FromEnv()
		return nil
	}
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger = logging.New(os.Stderr, level)
	return nil
}

func addScenarioFlags(cmd *cobra.Command) {
	d := config.DefaultConfig()
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Float64Var(&dt, "dt", d.Dt, "sample step (s)")
	cmd.Flags().Float64Var(&duration, "time", d.Duration, "duration (s)")
	cmd.Flags().IntVar(&frameRate, "fps", d.FPS, "frame rate of live views")
	cmd.Flags().Float64Var(&angle, "angle", d.Catapult.AngleDegrees, "launch angle (degrees)")
	cmd.Flags().Float64Var(&speed, "speed", d.Catapult.Speed, "launch speed (m/s)")
	cmd.Flags().Float64Var(&gravity, "gravity", d.Catapult.Gravity, "gravitational acceleration (m/s²)")
	cmd.Flags().Float64Var(&length, "length", d.Pendulum.Length, "pendulum length (m)")
	cmd.Flags().Float64Var(&amplitude, "amplitude", d.Pendulum.Amplitude, "pendulum release angle (rad)")
	cmd.Flags().BoolVar(&useSpring, "spring", false, "derive launch speed from a spring")
	cmd.Flags().Float64Var(&stretch, "stretch", d.Catapult.Spring.Stretch, "spring stretch (m)")
	cmd.Flags().Float64Var(&springK, "k", d.Catapult.Spring.SpringConstant, "spring constant (N/m)")
	cmd.Flags().Float64Var(&weight, "weight", d.Catapult.Spring.Weight, "load weight (N)")
}

// resolveConfig layers preset, config file and explicitly set flags, in
// that order, over the defaults. Slider ranges are not enforced here; see
// validConfig.
func resolveConfig(cmd *cobra.Command, scenario string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(scenario, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(scenario))
		}
		cfg = p
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	cfg.Scenario = scenario

	flags := cmd.Flags()
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("angle") {
		cfg.Catapult.AngleDegrees = angle
	}
	if flags.Changed("speed") {
		cfg.Catapult.Speed = speed
	}
	if flags.Changed("gravity") {
		cfg.Catapult.Gravity = gravity
		cfg.Pendulum.Gravity = gravity
	}
	if flags.Changed("length") {
		cfg.Pendulum.Length = length
	}
	if flags.Changed("amplitude") {
		cfg.Pendulum.Amplitude = amplitude
	}
	if flags.Changed("spring") {
		cfg.Catapult.Spring.Enabled = useSpring
	}
	if flags.Changed("stretch") {
		cfg.Catapult.Spring.Stretch = stretch
	}
	if flags.Changed("k") {
		cfg.Catapult.Spring.SpringConstant = springK
	}
	if flags.Changed("weight") {
		cfg.Catapult.Spring.Weight = weight
	}

	logger.Debug("config resolved", "scenario", cfg.Scenario, "preset", preset, "file", configFile)
	return cfg, nil
}

func validConfig(cmd *cobra.Command, scenario string) (*config.Config, error) {
	cfg, err := resolveConfig(cmd, scenario)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
