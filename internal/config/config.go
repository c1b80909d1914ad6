package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/kinelab/internal/kinematics"
	"github.com/san-kum/kinelab/internal/models"
	"github.com/san-kum/kinelab/internal/sim"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 10.0
	DefaultFPS      = 30

	// defaults of the spring launcher: k·x²/W·g gives 2 m/s
	DefaultStretch        = 0.2
	DefaultSpringConstant = 100.0
	DefaultWeight         = 9.8
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Scenario string         `yaml:"scenario"`
	Dt       float64        `yaml:"dt"`
	Duration float64        `yaml:"duration"`
	FPS      int            `yaml:"fps"`
	Catapult CatapultConfig `yaml:"catapult"`
	Pendulum PendulumConfig `yaml:"pendulum"`
}

type CatapultConfig struct {
	AngleDegrees float64      `yaml:"angle_degrees"`
	Speed        float64      `yaml:"speed"`
	Gravity      float64      `yaml:"gravity"`
	Spring       SpringConfig `yaml:"spring"`
}

// SpringConfig derives the catapult launch speed from a stretched spring
// instead of Speed when Enabled.
type SpringConfig struct {
	Enabled        bool    `yaml:"enabled"`
	Stretch        float64 `yaml:"stretch"`
	SpringConstant float64 `yaml:"spring_constant"`
	Weight         float64 `yaml:"weight"`
}

type PendulumConfig struct {
	Length    float64 `yaml:"length"`
	Gravity   float64 `yaml:"gravity"`
	Amplitude float64 `yaml:"amplitude"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario: "catapult",
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		FPS:      DefaultFPS,
		Catapult: CatapultConfig{
			AngleDegrees: models.DefaultAngle,
			Speed:        models.DefaultSpeed,
			Gravity:      kinematics.StandardGravity,
			Spring: SpringConfig{
				Stretch:        DefaultStretch,
				SpringConstant: DefaultSpringConstant,
				Weight:         DefaultWeight,
			},
		},
		Pendulum: PendulumConfig{
			Length:    models.DefaultLength,
			Gravity:   kinematics.StandardGravity,
			Amplitude: kinematics.DefaultAmplitude,
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the fields set in the file at path onto cfg.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LaunchSpeed is the catapult launch speed, taken from the spring when it
// is enabled.
func (c *Config) LaunchSpeed() (float64, error) {
	if !c.Catapult.Spring.Enabled {
		return c.Catapult.Speed, nil
	}
	s := c.Catapult.Spring
	launcher := kinematics.SpringLauncher{
		Stretch:        s.Stretch,
		SpringConstant: s.SpringConstant,
		Weight:         s.Weight,
	}
	return launcher.LaunchSpeed(c.Catapult.Gravity)
}

// Validate checks run settings and the slider ranges. Physical
// preconditions (positive gravity, finite angle) are left to the
// kinematics package.
func (c *Config) Validate() error {
	switch c.Scenario {
	case "catapult", "pendulum":
	default:
		return fmt.Errorf("%w: unknown scenario %q", ErrInvalid, c.Scenario)
	}
	if c.Dt <= 0 || math.IsNaN(c.Dt) {
		return fmt.Errorf("%w: dt must be positive, got %g", ErrInvalid, c.Dt)
	}
	if c.Duration <= 0 || math.IsNaN(c.Duration) {
		return fmt.Errorf("%w: duration must be positive, got %g", ErrInvalid, c.Duration)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.FPS)
	}

	switch c.Scenario {
	case "catapult":
		if err := inBounds(models.CatapultBounds, "angle", c.Catapult.AngleDegrees); err != nil {
			return err
		}
		if !c.Catapult.Spring.Enabled {
			return inBounds(models.CatapultBounds, "speed", c.Catapult.Speed)
		}
	case "pendulum":
		return inBounds(models.PendulumBounds, "length", c.Pendulum.Length)
	}
	return nil
}

func inBounds(bounds map[string]sim.Bounds, name string, v float64) error {
	b := bounds[name]
	if v < b.Min || v > b.Max {
		return fmt.Errorf("%w: %s %g outside [%g, %g] %s", ErrInvalid, name, v, b.Min, b.Max, b.Unit)
	}
	return nil
}
