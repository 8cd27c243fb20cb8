package config

import (
	"sort"

	"github.com/san-kum/quadsim/internal/flight"
)

func offset(dLat, dLon, alt float64) flight.Waypoint {
	return flight.Waypoint{Lat: DefaultLaunch.Lat + dLat, Lon: DefaultLaunch.Lon + dLon, Alt: alt}
}

var Presets = map[string]*Config{
	"hover": {
		Start: DefaultLaunch, Dt: 0.1, Ticks: 300, LOSGain: 0.5,
		Controller: flight.Gains{Kp: 1, Kd: 0.1},
		Waypoints:  []flight.Waypoint{offset(0, 0, 10)},
	},
	"square": {
		Start: DefaultLaunch, Dt: 0.1, Ticks: 600, LOSGain: 0.5,
		Controller:   flight.Gains{Kp: 1, Kd: 0.1},
		ApproachGain: 0.05,
		Waypoints: []flight.Waypoint{
			offset(0.0005, 0, 20),
			offset(0.0005, 0.0005, 20),
			offset(0, 0.0005, 20),
			offset(0, 0, 20),
		},
	},
	"survey": {
		Start: DefaultLaunch, Dt: 0.05, Ticks: 1200, LOSGain: 0.8,
		Controller:   flight.Gains{Kp: 1.5, Ki: 0.05, Kd: 0.2, IntegralLimit: 2},
		ApproachGain: 0.02,
		Yaw:          YawConfig{Law: "heading", Gain: 1},
		Waypoints: []flight.Waypoint{
			offset(0.001, 0, 30),
			offset(0.001, 0.0003, 30),
			offset(0, 0.0003, 30),
			offset(0, 0.0006, 30),
			offset(0.001, 0.0006, 30),
		},
	},
	"rtl": {
		Start: DefaultLaunch, Dt: 0.1, Ticks: 300, LOSGain: 0.5, RTL: true,
		Controller: flight.Gains{Kp: 1, Kd: 0.1},
		Waypoints:  []flight.Waypoint{offset(0.002, 0.002, 50)},
	},
	"windup": {
		Start: DefaultLaunch, Dt: 0.1, Ticks: 500, LOSGain: 0.5,
		Controller: flight.Gains{Kp: 0.5, Ki: 0.5, Kd: 0.1},
		Waypoints:  []flight.Waypoint{offset(0.01, -0.01, 100)},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
