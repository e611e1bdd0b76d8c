package main

import (
	"flag"
	"fmt"

	"macrosim/internal/policy"
	"macrosim/internal/rng"
	"macrosim/internal/scenario"
	"macrosim/internal/sim"
)

// Demo:
// - Seed a scenario preset
// - Expand it into the jittered display series a chart would draw
// - Step the simulation a few periods to show how the pieces fit together
func main() {
	scenarioName := flag.String("scenario", "normal", "Scenario preset")
	periods := flag.Int("n", 12, "Number of periods to simulate")
	seed := flag.Int64("seed", 42, "Random seed")
	flag.Parse()

	reg := scenario.NewRegistry()
	preset, ok := reg.Get(*scenarioName)
	if !ok {
		panic(fmt.Sprintf("unknown scenario %q", *scenarioName))
	}

	src := rng.NewSeeded(*seed)

	series, err := sim.GenerateSeries(preset.State, sim.DefaultPeriods, sim.DefaultNoise(), src)
	if err != nil {
		panic(err)
	}
	fmt.Printf("=== %s: initial series ===\n", preset.Name)
	for _, p := range series {
		fmt.Printf("%s  u=%.3f  pi=%.3f  ffr=%.3f\n",
			p.Month, p.UnemploymentRate, p.InflationRate, p.FederalFundsRate)
	}

	engine, err := sim.New(sim.DefaultParams(), policy.NewThresholdRule(policy.DefaultThresholdParams()))
	if err != nil {
		panic(err)
	}

	fmt.Printf("\n=== stepping %d periods ===\n", *periods)
	state := preset.State
	log := sim.NewEventLog()
	for p := 1; p <= *periods; p++ {
		next, ev := engine.Step(state, src, len(series)+p)
		tag := ""
		if ev != nil {
			log.Append(*ev)
			tag = fmt.Sprintf("  <- %s (%s)", ev.Type, ev.Impact)
		}
		fmt.Printf("period %2d: u=%.3f  pi=%.3f  ffr=%.3f%s\n",
			p, next.UnemploymentRate, next.InflationRate, next.FederalFundsRate, tag)
		state = next
	}
	fmt.Printf("\nshocks recorded: %d\n", log.Len())
}
