package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/pdegrid/internal/pricer"
)

const (
	DefaultStrike     = 100.0
	DefaultExpiry     = 1.0
	DefaultRate       = 0.04
	DefaultVolatility = 0.2
	DefaultDividend   = 0.0
	DefaultSteps      = 100
	DefaultExercises  = 10
	DefaultScheme     = "bdf2"
)

type Config struct {
	Scenario SolverlessScenario `yaml:"scenario"`
	Solver   SolverConfig       `yaml:"solver"`
	Output   OutputConfig       `yaml:"output"`
}

// SolverlessScenario mirrors pricer.Scenario's model and discretization
// fields for the yaml surface.
type SolverlessScenario struct {
	Strike     float64 `yaml:"strike"`
	Expiry     float64 `yaml:"expiry"`
	Rate       float64 `yaml:"rate"`
	Volatility float64 `yaml:"volatility"`
	Dividend   float64 `yaml:"dividend"`
	Steps      int     `yaml:"steps"`
	Exercises  int     `yaml:"exercises"`
	Refine     int     `yaml:"refine"`
	Scheme     string  `yaml:"scheme"`
}

type SolverConfig struct {
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
}

type OutputConfig struct {
	Plot bool   `yaml:"plot"`
	Save bool   `yaml:"save"`
	Data string `yaml:"data"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario: SolverlessScenario{
			Strike:     DefaultStrike,
			Expiry:     DefaultExpiry,
			Rate:       DefaultRate,
			Volatility: DefaultVolatility,
			Dividend:   DefaultDividend,
			Steps:      DefaultSteps,
			Exercises:  DefaultExercises,
			Scheme:     DefaultScheme,
		},
		Output: OutputConfig{Data: ".pdegrid"},
	}
}

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

// GetScenario converts the yaml surface into the pricer's scenario.
func (c *Config) GetScenario() pricer.Scenario {
	return pricer.Scenario{
		Strike:     c.Scenario.Strike,
		Expiry:     c.Scenario.Expiry,
		Rate:       c.Scenario.Rate,
		Volatility: c.Scenario.Volatility,
		Dividend:   c.Scenario.Dividend,
		Steps:      c.Scenario.Steps,
		Exercises:  c.Scenario.Exercises,
		Refine:     c.Scenario.Refine,
		Scheme:     c.Scenario.Scheme,
		Tolerance:  c.Solver.Tolerance,
	}
}
