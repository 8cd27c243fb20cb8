package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/quadsim/internal/control"
	"github.com/san-kum/quadsim/internal/flight"
	"github.com/san-kum/quadsim/internal/sim"
)

const (
	DefaultDt      = sim.DefaultDt
	DefaultTicks   = 300
	DefaultLOSGain = sim.DefaultLOSGain
	DefaultKp      = 1.0
	DefaultKi      = 0.0
	DefaultKd      = 0.1
)

// DefaultLaunch is the reference launch point.
var DefaultLaunch = flight.Position{Lat: 12.9716, Lon: 77.5946, Alt: 0}

type Config struct {
	Start        flight.Position   `yaml:"start"`
	Waypoints    []flight.Waypoint `yaml:"waypoints"`
	RTL          bool              `yaml:"rtl"`
	Dt           float64           `yaml:"dt"`
	Ticks        int               `yaml:"ticks"`
	MaxTicks     int               `yaml:"max_ticks"`
	HistoryLimit int               `yaml:"history_limit"`
	LOSGain      float64           `yaml:"los_gain"`
	ApproachGain float64           `yaml:"approach_gain"`
	Controller   flight.Gains      `yaml:"controller"`
	Yaw          YawConfig         `yaml:"yaw"`
}

type YawConfig struct {
	Law  string  `yaml:"law"`
	Gain float64 `yaml:"gain"`
}

func DefaultConfig() *Config {
	return &Config{
		Start:   DefaultLaunch,
		Dt:      DefaultDt,
		Ticks:   DefaultTicks,
		LOSGain: DefaultLOSGain,
		Controller: flight.Gains{
			Kp: DefaultKp,
			Ki: DefaultKi,
			Kd: DefaultKd,
		},
		Yaw: YawConfig{Law: "zero", Gain: 1},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy, so presets can be edited without touching
// the shared table.
func (c *Config) Clone() *Config {
	out := *c
	out.Waypoints = append([]flight.Waypoint(nil), c.Waypoints...)
	return &out
}

// Params converts the file form into simulator start parameters. Numeric
// validation is left to sim.Simulator.Start.
func (c *Config) Params() (sim.Params, error) {
	yaw, err := control.NewYawLaw(c.Yaw.Law, c.Yaw.Gain)
	if err != nil {
		return sim.Params{}, &flight.ConfigError{Field: "yaw.law", Reason: err.Error()}
	}
	return sim.Params{
		Start:        c.Start,
		Waypoints:    append([]flight.Waypoint(nil), c.Waypoints...),
		Gains:        c.Controller,
		LOSGain:      c.LOSGain,
		RTL:          c.RTL,
		Dt:           c.Dt,
		MaxTicks:     c.MaxTicks,
		HistoryLimit: c.HistoryLimit,
		ApproachGain: c.ApproachGain,
		YawLaw:       yaw,
	}, nil
}
