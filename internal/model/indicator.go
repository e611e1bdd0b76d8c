package model

import (
	"errors"
	"fmt"
	"math"
)

// Indicator ranges. Units are percentage points.
// Simulation outputs and slider writes are clamped to these; scenario
// presets are applied verbatim and may start outside them.
const (
	MinUnemploymentRate = 3.0
	MaxUnemploymentRate = 6.0

	MinInflationRate = 0.0
	MaxInflationRate = 5.0

	MinFederalFundsRate = 0.0
	MaxFederalFundsRate = 8.0
)

// Field names accepted by per-field writes.
const (
	FieldUnemploymentRate = "unemployment_rate"
	FieldInflationRate    = "inflation_rate"
	FieldFederalFundsRate = "federal_funds_rate"
)

// IndicatorState captures the three displayed indicators for one period.
type IndicatorState struct {
	UnemploymentRate float64
	InflationRate    float64
	FederalFundsRate float64
}

// Clamp returns a copy with every field clamped to its indicator range.
func (s IndicatorState) Clamp() IndicatorState {
	return IndicatorState{
		UnemploymentRate: clamp(s.UnemploymentRate, MinUnemploymentRate, MaxUnemploymentRate),
		InflationRate:    clamp(s.InflationRate, MinInflationRate, MaxInflationRate),
		FederalFundsRate: clamp(s.FederalFundsRate, MinFederalFundsRate, MaxFederalFundsRate),
	}
}

// WithField returns a copy with one named field replaced, clamped to that
// field's range. Unknown field names are an error.
func (s IndicatorState) WithField(name string, value float64) (IndicatorState, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return s, errors.New("value must be a finite number")
	}
	switch name {
	case FieldUnemploymentRate:
		s.UnemploymentRate = clamp(value, MinUnemploymentRate, MaxUnemploymentRate)
	case FieldInflationRate:
		s.InflationRate = clamp(value, MinInflationRate, MaxInflationRate)
	case FieldFederalFundsRate:
		s.FederalFundsRate = clamp(value, MinFederalFundsRate, MaxFederalFundsRate)
	default:
		return s, fmt.Errorf("unknown indicator field %q", name)
	}
	return s, nil
}

// Validate rejects non-finite values. Range membership is not checked here
// because presets may legitimately sit outside the indicator ranges.
func (s IndicatorState) Validate() error {
	for _, v := range []float64{s.UnemploymentRate, s.InflationRate, s.FederalFundsRate} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("indicator values must be finite")
		}
	}
	return nil
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
