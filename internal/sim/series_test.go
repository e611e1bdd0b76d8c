package sim

import (
	"testing"

	"macrosim/internal/model"
	"macrosim/internal/rng"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSeries_LengthAndLabels(t *testing.T) {
	state := model.IndicatorState{UnemploymentRate: 4.3, InflationRate: 2.0, FederalFundsRate: 5.25}
	src := rng.NewSeeded(1)

	for _, periods := range []int{1, 12, 26, 60} {
		series, err := GenerateSeries(state, periods, DefaultNoise(), src)
		require.NoError(t, err)
		require.Len(t, series, periods)
		for i, p := range series {
			assert.Equal(t, model.MonthLabel(i), p.Month)
		}
	}

	// Labels cycle past December.
	series, err := GenerateSeries(state, 14, DefaultNoise(), src)
	require.NoError(t, err)
	assert.Equal(t, "Jan", series[0].Month)
	assert.Equal(t, "Dec", series[11].Month)
	assert.Equal(t, "Jan", series[12].Month)
	assert.Equal(t, "Feb", series[13].Month)
}

func TestGenerateSeries_RejectsOutOfRangePeriods(t *testing.T) {
	state := model.IndicatorState{UnemploymentRate: 4.3}
	for _, periods := range []int{0, -1, 61} {
		_, err := GenerateSeries(state, periods, DefaultNoise(), rng.NewSeeded(1))
		assert.Error(t, err, "periods=%d", periods)
	}
}

func TestGenerateSeries_JitterStaysWithinNoiseBounds(t *testing.T) {
	state := model.IndicatorState{UnemploymentRate: 4.3, InflationRate: 2.0, FederalFundsRate: 5.25}
	noise := DefaultNoise()
	src := rng.NewSeeded(7)

	series, err := GenerateSeries(state, 60, noise, src)
	require.NoError(t, err)
	for _, p := range series {
		assert.InDelta(t, state.UnemploymentRate, p.UnemploymentRate, noise.Unemployment.Amplitude)
		assert.InDelta(t, state.InflationRate, p.InflationRate, noise.Inflation.Amplitude)
		// Fed funds jitter is shifted by its offset.
		assert.InDelta(t, state.FederalFundsRate+noise.FedFunds.Offset, p.FederalFundsRate, noise.FedFunds.Amplitude)
	}
}

func TestGenerateSeries_MidpointDrawsReproduceStateExactly(t *testing.T) {
	state := model.IndicatorState{UnemploymentRate: 4.3, InflationRate: 2.0, FederalFundsRate: 5.25}
	series, err := GenerateSeries(state, 3, DefaultNoise(), &scriptSource{})
	require.NoError(t, err)
	for _, p := range series {
		assert.InDelta(t, 4.3, p.UnemploymentRate, 1e-12)
		assert.InDelta(t, 2.0, p.InflationRate, 1e-12)
		// Midpoint jitter still carries the fed funds offset.
		assert.InDelta(t, 5.25-0.0125, p.FederalFundsRate, 1e-12)
	}
}

func TestClampPeriods(t *testing.T) {
	assert.Equal(t, DefaultPeriods, ClampPeriods(0))
	assert.Equal(t, MinPeriods, ClampPeriods(-5))
	assert.Equal(t, MaxPeriods, ClampPeriods(100))
	assert.Equal(t, 24, ClampPeriods(24))
}
