package model

// Phillips curve constants.
// - NaturalUnemploymentRate: unemployment level at which inflation matches
//   expectations (percentage points).
// - Alpha: sensitivity of inflation to the unemployment gap.
const (
	NaturalUnemploymentRate = 4.0
	Alpha                   = 0.5
)

// PhillipsCurve computes implied inflation from the unemployment gap,
// expected inflation and an exogenous supply shock:
//
//	inflation = expected - Alpha*(unemployment - natural) + shock
//
// Pure arithmetic; no input can produce an error.
func PhillipsCurve(unemploymentRate, expectedInflation, supplyShock float64) float64 {
	return expectedInflation - Alpha*(unemploymentRate-NaturalUnemploymentRate) + supplyShock
}
