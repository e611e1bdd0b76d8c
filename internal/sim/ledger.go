package sim

import (
	"fmt"

	"macrosim/internal/model"
	"macrosim/internal/rng"
)

// LedgerRow is one period of batch-run output.
// This is the primary artifact for "what happened" in a run.
type LedgerRow struct {
	Period int
	Month  string

	UnemploymentRate float64
	InflationRate    float64
	FederalFundsRate float64

	ShockFired  bool
	ShockImpact model.Impact
}

type Result struct {
	Ledger     []LedgerRow
	FinalState model.IndicatorState
	Shocks     []model.ShockEvent
}

// Run advances the state `periods` times, collecting a ledger row per
// period. Period numbering is 1-based to match the event log.
func (e *Engine) Run(start model.IndicatorState, periods int, src rng.Source) (*Result, error) {
	if src == nil {
		return nil, fmt.Errorf("random source is nil")
	}
	if periods <= 0 {
		return nil, fmt.Errorf("periods must be > 0")
	}
	if err := start.Validate(); err != nil {
		return nil, err
	}

	state := start
	ledger := make([]LedgerRow, 0, periods)
	var shocks []model.ShockEvent

	for p := 1; p <= periods; p++ {
		next, ev := e.Step(state, src, p)
		row := LedgerRow{
			Period:           p,
			Month:            model.MonthLabel(p - 1),
			UnemploymentRate: next.UnemploymentRate,
			InflationRate:    next.InflationRate,
			FederalFundsRate: next.FederalFundsRate,
		}
		if ev != nil {
			row.ShockFired = true
			row.ShockImpact = ev.Impact
			shocks = append(shocks, *ev)
		}
		ledger = append(ledger, row)
		state = next
	}

	return &Result{
		Ledger:     ledger,
		FinalState: state,
		Shocks:     shocks,
	}, nil
}
