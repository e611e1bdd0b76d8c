package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"macrosim/internal/policy"
	"macrosim/internal/sim"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML). Every field has a
// working default; an empty file is a valid config.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Simulation SimulationConfig `yaml:"simulation"`
	Policy     PolicyConfig     `yaml:"policy"`
	Noise      NoiseConfig      `yaml:"noise"`
	Session    SessionConfig    `yaml:"session"`
	// ScenarioDir holds extra scenario preset YAML files.
	ScenarioDir string `yaml:"scenario_dir"`
}

type ServerConfig struct {
	Port        string   `yaml:"port"`
	StaticDir   string   `yaml:"static_dir"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type SimulationConfig struct {
	PerturbationAmplitude float64 `yaml:"perturbation_amplitude"`
	ShockProbability      float64 `yaml:"shock_probability"`
	ShockAmplitude        float64 `yaml:"shock_amplitude"`
}

type PolicyConfig struct {
	TargetInflation float64 `yaml:"target_inflation"`
	StepSize        float64 `yaml:"step_size"`
}

type NoiseConfig struct {
	Unemployment FieldNoiseConfig `yaml:"unemployment"`
	Inflation    FieldNoiseConfig `yaml:"inflation"`
	FedFunds     FieldNoiseConfig `yaml:"fed_funds"`
}

type FieldNoiseConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	Offset    float64 `yaml:"offset"`
}

type SessionConfig struct {
	DebounceMillis int   `yaml:"debounce_ms"`
	TTLMinutes     int   `yaml:"ttl_minutes"`
	Seed           int64 `yaml:"seed"`
}

// Default returns the canonical configuration.
func Default() *Config {
	p := sim.DefaultParams()
	r := policy.DefaultThresholdParams()
	n := sim.DefaultNoise()
	return &Config{
		Server: ServerConfig{Port: "8080", StaticDir: "./web/dist"},
		Simulation: SimulationConfig{
			PerturbationAmplitude: p.PerturbationAmplitude,
			ShockProbability:      p.ShockProbability,
			ShockAmplitude:        p.ShockAmplitude,
		},
		Policy: PolicyConfig{TargetInflation: r.TargetInflation, StepSize: r.StepSize},
		Noise: NoiseConfig{
			Unemployment: FieldNoiseConfig{Amplitude: n.Unemployment.Amplitude, Offset: n.Unemployment.Offset},
			Inflation:    FieldNoiseConfig{Amplitude: n.Inflation.Amplitude, Offset: n.Inflation.Offset},
			FedFunds:     FieldNoiseConfig{Amplitude: n.FedFunds.Amplitude, Offset: n.FedFunds.Offset},
		},
		Session: SessionConfig{DebounceMillis: 300, TTLMinutes: 120},
	}
}

// Load reads, merges over defaults and validates.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config over the defaults, but does not
// validate it. Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, err
	}
	// yaml leaves absent scalars at their zero value, which for these
	// knobs means "use the default", not "zero out the behavior".
	d := Default()
	if c.Server.Port == "" {
		c.Server.Port = d.Server.Port
	}
	if c.Simulation.PerturbationAmplitude == 0 {
		c.Simulation.PerturbationAmplitude = d.Simulation.PerturbationAmplitude
	}
	if c.Simulation.ShockAmplitude == 0 {
		c.Simulation.ShockAmplitude = d.Simulation.ShockAmplitude
	}
	if c.Policy.StepSize == 0 {
		c.Policy.StepSize = d.Policy.StepSize
	}
	if c.Policy.TargetInflation == 0 {
		c.Policy.TargetInflation = d.Policy.TargetInflation
	}
	if c.Session.DebounceMillis == 0 {
		c.Session.DebounceMillis = d.Session.DebounceMillis
	}
	if c.Session.TTLMinutes == 0 {
		c.Session.TTLMinutes = d.Session.TTLMinutes
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Validate simulation knobs by constructing the engine params.
	if err := c.SimParams().Validate(); err != nil {
		return fmt.Errorf("simulation config invalid: %w", err)
	}
	if c.Policy.StepSize < 0 {
		return errors.New("policy.step_size must be >= 0")
	}
	if c.Noise.Unemployment.Amplitude < 0 || c.Noise.Inflation.Amplitude < 0 || c.Noise.FedFunds.Amplitude < 0 {
		return errors.New("noise amplitudes must be >= 0")
	}
	if c.Session.DebounceMillis < 0 {
		return errors.New("session.debounce_ms must be >= 0")
	}
	return nil
}

func (c *Config) SimParams() sim.Params {
	return sim.Params{
		PerturbationAmplitude: c.Simulation.PerturbationAmplitude,
		ShockProbability:      c.Simulation.ShockProbability,
		ShockAmplitude:        c.Simulation.ShockAmplitude,
	}
}

func (c *Config) PolicyParams() policy.ThresholdParams {
	return policy.ThresholdParams{
		TargetInflation: c.Policy.TargetInflation,
		StepSize:        c.Policy.StepSize,
	}
}

func (c *Config) SimNoise() sim.Noise {
	return sim.Noise{
		Unemployment: sim.FieldNoise{Amplitude: c.Noise.Unemployment.Amplitude, Offset: c.Noise.Unemployment.Offset},
		Inflation:    sim.FieldNoise{Amplitude: c.Noise.Inflation.Amplitude, Offset: c.Noise.Inflation.Offset},
		FedFunds:     sim.FieldNoise{Amplitude: c.Noise.FedFunds.Amplitude, Offset: c.Noise.FedFunds.Offset},
	}
}

func (c *Config) DebounceWindow() time.Duration {
	return time.Duration(c.Session.DebounceMillis) * time.Millisecond
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}
