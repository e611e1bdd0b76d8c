package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhillipsCurve_AtNaturalRate(t *testing.T) {
	// At the natural unemployment rate, inflation matches expectations.
	assert.InDelta(t, 2.0, PhillipsCurve(NaturalUnemploymentRate, 2.0, 0), 1e-12)
	assert.InDelta(t, 0.0, PhillipsCurve(NaturalUnemploymentRate, 0.0, 0), 1e-12)
}

func TestPhillipsCurve_LinearInUnemployment(t *testing.T) {
	// Slope with respect to unemployment is -Alpha.
	base := PhillipsCurve(4.0, 2.0, 0)
	for _, du := range []float64{0.5, 1.0, 2.5, -1.5} {
		got := PhillipsCurve(4.0+du, 2.0, 0)
		assert.InDelta(t, base-Alpha*du, got, 1e-12, "du=%v", du)
	}
}

func TestPhillipsCurve_LinearInExpectationsAndShock(t *testing.T) {
	// Slope with respect to expected inflation and the shock is +1.
	base := PhillipsCurve(5.0, 2.0, 0)
	for _, d := range []float64{0.25, 1.0, -0.75} {
		assert.InDelta(t, base+d, PhillipsCurve(5.0, 2.0+d, 0), 1e-12)
		assert.InDelta(t, base+d, PhillipsCurve(5.0, 2.0, d), 1e-12)
	}
}

func TestPhillipsCurve_KnownValues(t *testing.T) {
	// normal preset with no shock: 2.0 - 0.5*(4.3-4.0) = 1.85
	assert.InDelta(t, 1.85, PhillipsCurve(4.3, 2.0, 0), 1e-12)
	// recession-like gap pushes inflation down hard
	assert.InDelta(t, 0.5-0.5*3.5, PhillipsCurve(7.5, 0.5, 0), 1e-12)
}
