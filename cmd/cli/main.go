package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"macrosim/internal/config"
	"macrosim/internal/model"
	"macrosim/internal/policy"
	"macrosim/internal/rng"
	"macrosim/internal/scenario"
	"macrosim/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "series":
		cmdSeries(os.Args[2:])
	case "scenarios":
		cmdScenarios(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --scenario normal --periods 24 --seed 1 --out results/run.csv")
	fmt.Println("  cli series --scenario recession --periods 12 --seed 1 --out results/series.csv")
	fmt.Println("  cli scenarios")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate advances the model period by period and writes a ledger CSV")
	fmt.Println("  - series writes the jittered display series a chart would show")
	fmt.Println("  - a fixed --seed makes both commands reproducible")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	scenarioName := fs.String("scenario", "normal", "Starting scenario preset")
	periods := fs.Int("periods", 24, "Number of periods to simulate")
	seed := fs.Int64("seed", 0, "Random seed (0 = time-based)")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	outPath := fs.String("out", "", "Output CSV path (optional)")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	engine, err := sim.New(cfg.SimParams(), policy.NewThresholdRule(cfg.PolicyParams()))
	if err != nil {
		fatal(err)
	}

	preset := resolveScenario(cfg, *scenarioName)
	src := newSource(*seed)

	result, err := engine.Run(preset.State, *periods, src)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("scenario=%s periods=%d shocks=%d\n", preset.Name, *periods, len(result.Shocks))
	for _, ev := range result.Shocks {
		fmt.Printf("  period %d: %s (%s)\n", ev.Period, ev.Type, ev.Impact)
	}
	s := result.FinalState
	fmt.Printf("final: unemployment=%.2f inflation=%.2f fed_funds=%.2f\n",
		s.UnemploymentRate, s.InflationRate, s.FederalFundsRate)

	if *outPath != "" {
		if err := writeLedger(*outPath, result.Ledger); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s (%d rows)\n", *outPath, len(result.Ledger))
	}
}

func cmdSeries(args []string) {
	fs := flag.NewFlagSet("series", flag.ExitOnError)
	scenarioName := fs.String("scenario", "normal", "Scenario preset to expand")
	periods := fs.Int("periods", sim.DefaultPeriods, "Number of series points [1,60]")
	seed := fs.Int64("seed", 0, "Random seed (0 = time-based)")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	outPath := fs.String("out", "", "Output CSV path (optional)")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	preset := resolveScenario(cfg, *scenarioName)
	src := newSource(*seed)

	series, err := sim.GenerateSeries(preset.State, sim.ClampPeriods(*periods), cfg.SimNoise(), src)
	if err != nil {
		fatal(err)
	}

	for i, p := range series {
		fmt.Printf("%2d %s  u=%.3f  pi=%.3f  ffr=%.3f\n",
			i+1, p.Month, p.UnemploymentRate, p.InflationRate, p.FederalFundsRate)
	}

	if *outPath != "" {
		if err := writeSeries(*outPath, series); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s (%d rows)\n", *outPath, len(series))
	}
}

func cmdScenarios(args []string) {
	fs := flag.NewFlagSet("scenarios", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	for _, p := range buildRegistry(cfg).List() {
		s := p.State
		fmt.Printf("%-12s u=%.2f pi=%.2f ffr=%.2f  %s\n",
			p.Name, s.UnemploymentRate, s.InflationRate, s.FederalFundsRate, p.Description)
	}
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fatal(err)
	}
	return cfg
}

func buildRegistry(cfg *config.Config) *scenario.Registry {
	reg := scenario.NewRegistry()
	if cfg.ScenarioDir != "" {
		if err := reg.LoadDir(cfg.ScenarioDir); err != nil {
			fatal(err)
		}
	}
	return reg
}

func resolveScenario(cfg *config.Config, name string) scenario.Preset {
	preset, ok := buildRegistry(cfg).Get(name)
	if !ok {
		fatal(fmt.Errorf("unknown scenario %q", name))
	}
	return preset
}

func newSource(seed int64) rng.Source {
	if seed != 0 {
		return rng.NewSeeded(seed)
	}
	return rng.New()
}

func writeLedger(path string, ledger []sim.LedgerRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return sim.WriteLedgerCSV(path, ledger)
}

func writeSeries(path string, series []model.SeriesPoint) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return sim.WriteSeriesCSV(path, series)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
