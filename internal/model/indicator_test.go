package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndicatorState_Clamp(t *testing.T) {
	s := IndicatorState{UnemploymentRate: 7.5, InflationRate: -1.0, FederalFundsRate: 9.0}
	c := s.Clamp()
	assert.Equal(t, MaxUnemploymentRate, c.UnemploymentRate)
	assert.Equal(t, MinInflationRate, c.InflationRate)
	assert.Equal(t, MaxFederalFundsRate, c.FederalFundsRate)

	in := IndicatorState{UnemploymentRate: 4.3, InflationRate: 2.0, FederalFundsRate: 5.25}
	assert.Equal(t, in, in.Clamp())
}

func TestIndicatorState_WithField(t *testing.T) {
	s := IndicatorState{UnemploymentRate: 4.3, InflationRate: 2.0, FederalFundsRate: 5.25}

	got, err := s.WithField(FieldInflationRate, 3.5)
	require.NoError(t, err)
	assert.Equal(t, 3.5, got.InflationRate)
	assert.Equal(t, s.UnemploymentRate, got.UnemploymentRate)

	// Each field clamps to its own range.
	got, err = s.WithField(FieldUnemploymentRate, 12.0)
	require.NoError(t, err)
	assert.Equal(t, MaxUnemploymentRate, got.UnemploymentRate)

	got, err = s.WithField(FieldFederalFundsRate, -3.0)
	require.NoError(t, err)
	assert.Equal(t, MinFederalFundsRate, got.FederalFundsRate)

	_, err = s.WithField("gdp_growth", 1.0)
	assert.Error(t, err)

	_, err = s.WithField(FieldInflationRate, math.NaN())
	assert.Error(t, err)
}

func TestIndicatorState_Validate(t *testing.T) {
	assert.NoError(t, IndicatorState{UnemploymentRate: 6.5, InflationRate: 7.0, FederalFundsRate: 8.0}.Validate())
	assert.Error(t, IndicatorState{UnemploymentRate: math.Inf(1)}.Validate())
	assert.Error(t, IndicatorState{InflationRate: math.NaN()}.Validate())
}

func TestMonthLabel_Cycles(t *testing.T) {
	assert.Equal(t, "Jan", MonthLabel(0))
	assert.Equal(t, "Dec", MonthLabel(11))
	assert.Equal(t, "Jan", MonthLabel(12))
	assert.Equal(t, "Mar", MonthLabel(26))
}

func TestImpactFromMagnitude(t *testing.T) {
	assert.Equal(t, ImpactPositive, ImpactFromMagnitude(0.4))
	assert.Equal(t, ImpactNegative, ImpactFromMagnitude(-0.4))
}
