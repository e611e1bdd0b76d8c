package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, "8080", c.Server.Port)
	assert.Equal(t, 0.25, c.Simulation.PerturbationAmplitude)
	assert.Equal(t, 0.10, c.Simulation.ShockProbability)
	assert.Equal(t, 2.0, c.Policy.TargetInflation)
	assert.Equal(t, 300*time.Millisecond, c.DebounceWindow())
	assert.Equal(t, 2*time.Hour, c.SessionTTL())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
simulation:
  shock_probability: 0.25
policy:
  target_inflation: 3.0
session:
  debounce_ms: 150
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.25, c.Simulation.ShockProbability)
	assert.Equal(t, 3.0, c.Policy.TargetInflation)
	assert.Equal(t, 150*time.Millisecond, c.DebounceWindow())
	// Untouched knobs fall back to defaults.
	assert.Equal(t, 0.25, c.Simulation.PerturbationAmplitude)
	assert.Equal(t, 0.25, c.Policy.StepSize)
	assert.Equal(t, "8080", c.Server.Port)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
  cors_origins: ["http://localhost:5173"]
scenario_dir: ./scenarios
simulation:
  perturbation_amplitude: 0.5
  shock_probability: 0.2
  shock_amplitude: 2.0
noise:
  fed_funds:
    amplitude: 0.2
    offset: -0.05
session:
  seed: 42
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", c.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, c.Server.CORSOrigins)
	assert.Equal(t, "./scenarios", c.ScenarioDir)
	assert.Equal(t, 0.5, c.SimParams().PerturbationAmplitude)
	assert.Equal(t, 0.2, c.SimNoise().FedFunds.Amplitude)
	assert.Equal(t, -0.05, c.SimNoise().FedFunds.Offset)
	assert.Equal(t, int64(42), c.Session.Seed)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
simulation:
  shock_probability: 1.5
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
