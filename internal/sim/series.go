package sim

import (
	"fmt"

	"macrosim/internal/model"
	"macrosim/internal/rng"
)

// Period count bounds for the displayed series.
const (
	MinPeriods     = 1
	MaxPeriods     = 60
	DefaultPeriods = 12
)

// FieldNoise is the display jitter for one indicator: a uniform draw in
// (-Amplitude, +Amplitude) shifted by Offset.
type FieldNoise struct {
	Amplitude float64
	Offset    float64
}

func (n FieldNoise) sample(src rng.Source) float64 {
	return rng.Uniform(src, n.Amplitude) + n.Offset
}

// Noise holds per-field jitter settings for series generation.
type Noise struct {
	Unemployment FieldNoise
	Inflation    FieldNoise
	FedFunds     FieldNoise
}

// DefaultNoise matches the canonical chart texture. The fed funds jitter
// is asymmetric on purpose: it carried a small downward bias in the
// original chart and that look is kept.
func DefaultNoise() Noise {
	return Noise{
		Unemployment: FieldNoise{Amplitude: 0.05},
		Inflation:    FieldNoise{Amplitude: 0.025},
		FedFunds:     FieldNoise{Amplitude: 0.125, Offset: -0.0125},
	}
}

// ClampPeriods forces n into [MinPeriods, MaxPeriods], defaulting 0 to
// DefaultPeriods.
func ClampPeriods(n int) int {
	if n == 0 {
		return DefaultPeriods
	}
	if n < MinPeriods {
		return MinPeriods
	}
	if n > MaxPeriods {
		return MaxPeriods
	}
	return n
}

// GenerateSeries expands a single state into a displayable series of
// exactly `periods` points, month labels cycling Jan..Dec. The jitter is
// cosmetic: it never feeds back into the state.
func GenerateSeries(state model.IndicatorState, periods int, noise Noise, src rng.Source) ([]model.SeriesPoint, error) {
	if periods < MinPeriods || periods > MaxPeriods {
		return nil, fmt.Errorf("periods must be in [%d, %d], got %d", MinPeriods, MaxPeriods, periods)
	}
	out := make([]model.SeriesPoint, 0, periods)
	for i := 0; i < periods; i++ {
		out = append(out, model.SeriesPoint{
			Month:            model.MonthLabel(i),
			UnemploymentRate: state.UnemploymentRate + noise.Unemployment.sample(src),
			InflationRate:    state.InflationRate + noise.Inflation.sample(src),
			FederalFundsRate: state.FederalFundsRate + noise.FedFunds.sample(src),
		})
	}
	return out, nil
}
