package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"macrosim/internal/model"

	"gopkg.in/yaml.v3"
)

// Preset is a named immutable starting configuration. Preset values are
// applied verbatim (no clamp): stagflation intentionally starts outside
// the indicator ranges and gets pulled in by the first step.
type Preset struct {
	Name        string
	Description string
	State       model.IndicatorState
}

var builtins = []Preset{
	{
		Name:        "normal",
		Description: "Stable growth near the natural rate of unemployment.",
		State:       model.IndicatorState{UnemploymentRate: 4.3, InflationRate: 2.0, FederalFundsRate: 5.25},
	},
	{
		Name:        "recession",
		Description: "High unemployment, low inflation, near-zero policy rate.",
		State:       model.IndicatorState{UnemploymentRate: 7.5, InflationRate: 0.5, FederalFundsRate: 0.25},
	},
	{
		Name:        "recovery",
		Description: "Unemployment falling from its peak while prices firm up.",
		State:       model.IndicatorState{UnemploymentRate: 5.8, InflationRate: 3.2, FederalFundsRate: 2.5},
	},
	{
		Name:        "boom",
		Description: "Tight labor market running hot.",
		State:       model.IndicatorState{UnemploymentRate: 3.2, InflationRate: 4.5, FederalFundsRate: 6.5},
	},
	{
		Name:        "stagflation",
		Description: "Elevated unemployment and inflation at the same time.",
		State:       model.IndicatorState{UnemploymentRate: 6.5, InflationRate: 7.0, FederalFundsRate: 8.0},
	},
}

// Registry resolves preset names. Built-ins are always present; presets
// loaded from a directory may shadow them.
type Registry struct {
	presets map[string]Preset
	order   []string
}

// NewRegistry returns a registry holding only the built-in presets.
func NewRegistry() *Registry {
	r := &Registry{presets: make(map[string]Preset, len(builtins))}
	for _, p := range builtins {
		r.presets[p.Name] = p
		r.order = append(r.order, p.Name)
	}
	return r
}

// Get looks a preset up by name.
func (r *Registry) Get(name string) (Preset, bool) {
	p, ok := r.presets[name]
	return p, ok
}

// List returns presets in registration order (built-ins first, then
// file-defined presets sorted by name).
func (r *Registry) List() []Preset {
	out := make([]Preset, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.presets[name])
	}
	return out
}

type presetFile struct {
	Scenario struct {
		Name             string  `yaml:"name"`
		Description      string  `yaml:"description"`
		UnemploymentRate float64 `yaml:"unemployment_rate"`
		InflationRate    float64 `yaml:"inflation_rate"`
		FederalFundsRate float64 `yaml:"federal_funds_rate"`
	} `yaml:"scenario"`
}

// LoadDir merges *.yaml presets from dir into the registry. A missing
// directory is not an error; invalid files are skipped by the caller's
// choice via the returned error list semantics (first error wins here).
func (r *Registry) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var names []string
	loaded := make(map[string]Preset)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		p, err := loadPresetFile(filepath.Join(dir, entry.Name()), entry.Name())
		if err != nil {
			return fmt.Errorf("scenario file %s: %w", entry.Name(), err)
		}
		loaded[p.Name] = p
		names = append(names, p.Name)
	}

	sort.Strings(names)
	for _, name := range names {
		if _, exists := r.presets[name]; !exists {
			r.order = append(r.order, name)
		}
		r.presets[name] = loaded[name]
	}
	return nil
}

func loadPresetFile(path, filename string) (Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, err
	}
	var f presetFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Preset{}, err
	}

	name := f.Scenario.Name
	if name == "" {
		name = strings.TrimSuffix(filename, ".yaml")
	}
	p := Preset{
		Name:        name,
		Description: f.Scenario.Description,
		State: model.IndicatorState{
			UnemploymentRate: f.Scenario.UnemploymentRate,
			InflationRate:    f.Scenario.InflationRate,
			FederalFundsRate: f.Scenario.FederalFundsRate,
		},
	}
	if err := p.State.Validate(); err != nil {
		return Preset{}, err
	}
	return p, nil
}
