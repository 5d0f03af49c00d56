package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultVelocity = 30.0
	DefaultAngle    = 45.0
	DefaultTheme    = "classroom"
	DefaultDataDir  = "trajlab-data"
)

type Config struct {
	Launch   LaunchConfig   `yaml:"launch"`
	Display  DisplayConfig  `yaml:"display"`
	Practice PracticeConfig `yaml:"practice"`
	DataDir  string         `yaml:"data_dir"`
	Seed     int64          `yaml:"seed"`
}

type LaunchConfig struct {
	Velocity      float64 `yaml:"velocity"`
	Angle         float64 `yaml:"angle"`
	InitialHeight float64 `yaml:"initial_height"`
	FinalHeight   float64 `yaml:"final_height"`
}

type DisplayConfig struct {
	Theme  string `yaml:"theme"`
	Sprite string `yaml:"sprite"`
}

type PracticeConfig struct {
	Sound bool `yaml:"sound"`
}

func DefaultConfig() *Config {
	return &Config{
		Launch: LaunchConfig{
			Velocity: DefaultVelocity,
			Angle:    DefaultAngle,
		},
		Display: DisplayConfig{
			Theme: DefaultTheme,
		},
		Practice: PracticeConfig{
			Sound: true,
		},
		DataDir: DefaultDataDir,
	}
}

// Load reads a YAML config. Fields absent from the file keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
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

// LaunchParams exposes the configured launch as parameter map entries,
// keyed the way the solver names them.
func (c *Config) LaunchParams() map[string]float64 {
	return map[string]float64{
		"velocity":       c.Launch.Velocity,
		"angle":          c.Launch.Angle,
		"initial_height": c.Launch.InitialHeight,
		"final_height":   c.Launch.FinalHeight,
	}
}
