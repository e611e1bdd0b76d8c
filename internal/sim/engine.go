package sim

import (
	"fmt"

	"macrosim/internal/model"
	"macrosim/internal/policy"
	"macrosim/internal/rng"
)

// Params are the stochastic knobs of one simulation step.
type Params struct {
	// PerturbationAmplitude bounds the per-period unemployment drift.
	PerturbationAmplitude float64
	// ShockProbability is the chance a supply shock fires in a period.
	ShockProbability float64
	// ShockAmplitude bounds the magnitude of a fired shock.
	ShockAmplitude float64
}

// DefaultParams matches the canonical demo: drift within a quarter point,
// a 10% shock chance, shocks within one point.
func DefaultParams() Params {
	return Params{
		PerturbationAmplitude: 0.25,
		ShockProbability:      0.10,
		ShockAmplitude:        1.0,
	}
}

func (p Params) Validate() error {
	if p.PerturbationAmplitude < 0 {
		return fmt.Errorf("PerturbationAmplitude must be >= 0")
	}
	if p.ShockProbability < 0 || p.ShockProbability > 1 {
		return fmt.Errorf("ShockProbability must be in [0, 1]")
	}
	if p.ShockAmplitude < 0 {
		return fmt.Errorf("ShockAmplitude must be >= 0")
	}
	return nil
}

// Engine advances indicator states one period at a time.
type Engine struct {
	params Params
	rule   policy.Rule
}

// New builds an engine. A nil rule falls back to the default threshold
// reaction rule.
func New(params Params, rule policy.Rule) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rule == nil {
		rule = policy.NewThresholdRule(policy.DefaultThresholdParams())
	}
	return &Engine{params: params, rule: rule}, nil
}

// Rule exposes the reaction rule in use.
func (e *Engine) Rule() policy.Rule { return e.rule }

// Step advances state by one period.
//
// Draw order from src is fixed: unemployment perturbation, shock trigger,
// then shock magnitude only when the trigger fires. Tests rely on this to
// script exact sequences.
//
// The returned event is non-nil iff a shock fired; period tags it for the
// caller's event log.
func (e *Engine) Step(state model.IndicatorState, src rng.Source, period int) (model.IndicatorState, *model.ShockEvent) {
	u := state.UnemploymentRate + rng.Uniform(src, e.params.PerturbationAmplitude)
	u = clampRange(u, model.MinUnemploymentRate, model.MaxUnemploymentRate)

	shock := 0.0
	if src.Float64() < e.params.ShockProbability {
		shock = rng.Uniform(src, e.params.ShockAmplitude)
	}

	// Current inflation stands in for expected inflation: purely adaptive
	// expectations.
	inflation := model.PhillipsCurve(u, state.InflationRate, shock)
	inflation = clampRange(inflation, model.MinInflationRate, model.MaxInflationRate)

	rate := e.rule.Move(policy.Context{
		CandidateInflation: inflation,
		CurrentRate:        state.FederalFundsRate,
	})
	rate = clampRange(rate, model.MinFederalFundsRate, model.MaxFederalFundsRate)

	next := model.IndicatorState{
		UnemploymentRate: u,
		InflationRate:    inflation,
		FederalFundsRate: rate,
	}

	if shock != 0 {
		ev := model.NewShockEvent(shock, period)
		return next, &ev
	}
	return next, nil
}

func clampRange(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
