package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/kinelab/internal/config"
	"github.com/san-kum/kinelab/internal/models"
	"github.com/san-kum/kinelab/internal/sim"
	"github.com/san-kum/kinelab/internal/viz"
)

func runLive(cmd *cobra.Command, args []string) error {
	scenario := args[0]
	cfg, err := validConfig(cmd, scenario)
	if err != nil {
		return err
	}

	opts := viz.Options{FPS: cfg.FPS, Logger: logger}
	switch scenario {
	case "catapult":
		opts.Start = viz.ScreenCatapult
	case "pendulum":
		opts.Start = viz.ScreenPendulum
	}
	if opts.Catapult, opts.Pendulum, err = buildModels(cfg); err != nil {
		return err
	}
	return viz.Run(opts)
}

func buildModels(cfg *config.Config) (*models.Catapult, *models.Pendulum, error) {
	v, err := cfg.LaunchSpeed()
	if err != nil {
		return nil, nil, err
	}
	c, err := models.NewCatapult(cfg.Catapult.AngleDegrees, v, cfg.Catapult.Gravity)
	if err != nil {
		return nil, nil, err
	}
	p, err := models.NewPendulum(cfg.Pendulum.Length, cfg.Pendulum.Gravity, cfg.Pendulum.Amplitude)
	if err != nil {
		return nil, nil, err
	}
	return c, p, nil
}

// runWatch plays a session in real time and prints one line per frame until
// the duration elapses, the projectile lands or the user interrupts.
func runWatch(cmd *cobra.Command, args []string) error {
	scenario := args[0]
	cfg, err := validConfig(cmd, scenario)
	if err != nil {
		return err
	}

	c, p, err := buildModels(cfg)
	if err != nil {
		return err
	}
	var sc sim.Scenario = c
	if scenario == "pendulum" {
		sc = p
	}

	session, err := sim.NewSession(sc)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Duration*float64(time.Second)))
	defer cancel()

	labels := sc.StateLabels()
	err = sim.NewLoop(cfg.FPS, logger).Run(ctx, session, func(f sim.Frame) bool {
		fmt.Printf("t=%6.2fs", f.Time)
		for i, v := range f.State {
			fmt.Printf("  %s=%8.3f", labels[i], v)
		}
		if f.Done {
			fmt.Print("  landed")
		}
		fmt.Println()
		return true
	})
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		logger.Debug("watch stopped", "reason", err, "elapsed", session.Elapsed())
		return nil
	}
	return err
}
