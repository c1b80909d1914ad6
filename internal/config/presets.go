package config

import "sort"

var Presets = map[string]map[string]*Config{
	"catapult": {
		"flat": {
			Scenario: "catapult", Dt: 0.01, Duration: 5.0, FPS: DefaultFPS,
			Catapult: CatapultConfig{AngleDegrees: 15, Speed: 20, Gravity: 9.8},
		},
		"max-range": {
			Scenario: "catapult", Dt: 0.01, Duration: 10.0, FPS: DefaultFPS,
			Catapult: CatapultConfig{AngleDegrees: 45, Speed: 20, Gravity: 9.8},
		},
		"lob": {
			Scenario: "catapult", Dt: 0.01, Duration: 10.0, FPS: DefaultFPS,
			Catapult: CatapultConfig{AngleDegrees: 75, Speed: 20, Gravity: 9.8},
		},
		"moon": {
			Scenario: "catapult", Dt: 0.05, Duration: 60.0, FPS: DefaultFPS,
			Catapult: CatapultConfig{AngleDegrees: 45, Speed: 20, Gravity: 1.62},
		},
		"spring": {
			Scenario: "catapult", Dt: 0.005, Duration: 2.0, FPS: DefaultFPS,
			Catapult: CatapultConfig{
				AngleDegrees: 45, Gravity: 9.8,
				Spring: SpringConfig{Enabled: true, Stretch: DefaultStretch, SpringConstant: DefaultSpringConstant, Weight: DefaultWeight},
			},
		},
	},
	"pendulum": {
		"short": {
			Scenario: "pendulum", Dt: 0.01, Duration: 10.0, FPS: DefaultFPS,
			Pendulum: PendulumConfig{Length: 0.25, Gravity: 9.8, Amplitude: 0.5},
		},
		"seconds": {
			Scenario: "pendulum", Dt: 0.01, Duration: 20.0, FPS: DefaultFPS,
			Pendulum: PendulumConfig{Length: 0.994, Gravity: 9.8, Amplitude: 0.1},
		},
		"long": {
			Scenario: "pendulum", Dt: 0.01, Duration: 30.0, FPS: DefaultFPS,
			Pendulum: PendulumConfig{Length: 2.0, Gravity: 9.8, Amplitude: 0.5},
		},
		"wide": {
			Scenario: "pendulum", Dt: 0.01, Duration: 20.0, FPS: DefaultFPS,
			Pendulum: PendulumConfig{Length: 1.0, Gravity: 9.8, Amplitude: 1.2},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(scenario, preset string) *Config {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	cfg, ok := scenarioPresets[preset]
	if !ok {
		return nil
	}
	out := DefaultConfig()
	out.Scenario = cfg.Scenario
	out.Dt = cfg.Dt
	out.Duration = cfg.Duration
	out.FPS = cfg.FPS
	switch scenario {
	case "catapult":
		out.Catapult = cfg.Catapult
	case "pendulum":
		out.Pendulum = cfg.Pendulum
	}
	return out
}

func ListPresets(scenario string) []string {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenarioPresets))
	for name := range scenarioPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
