package config

import "sort"

// Presets are named launch scenarios for quick starts and demos.
var Presets = map[string]LaunchConfig{
	"cannon": {Velocity: 45, Angle: 40},
	"mortar": {Velocity: 30, Angle: 75},
	"lob":    {Velocity: 15, Angle: 60},
	"dart":   {Velocity: 25, Angle: 10},
	"cliff":  {Velocity: 20, Angle: 0, InitialHeight: 80},
	"plunge": {Velocity: 35, Angle: -30, InitialHeight: 100},
	"rooftop": {
		Velocity: 28, Angle: 35,
		InitialHeight: 45, FinalHeight: 10,
	},
}

func GetPreset(name string) (LaunchConfig, bool) {
	l, ok := Presets[name]
	return l, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
