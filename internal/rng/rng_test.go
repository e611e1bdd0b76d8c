package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSeeded_IsReproducible(t *testing.T) {
	a, b := NewSeeded(42), NewSeeded(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestUniform_StaysWithinAmplitude(t *testing.T) {
	src := NewSeeded(7)
	for i := 0; i < 1000; i++ {
		v := Uniform(src, 0.25)
		assert.Greater(t, v, -0.25)
		assert.Less(t, v, 0.25)
	}
}

type fixed struct{ v float64 }

func (f fixed) Float64() float64 { return f.v }

func TestUniform_MidpointDrawIsZero(t *testing.T) {
	assert.Zero(t, Uniform(fixed{0.5}, 0.25))
	assert.Equal(t, -1.0, Uniform(fixed{0.0}, 1.0))
}
