package sim

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"macrosim/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ProducesOneRowPerPeriod(t *testing.T) {
	e := newEngine(t)
	result, err := e.Run(normalState, 24, &scriptSource{})
	require.NoError(t, err)
	require.Len(t, result.Ledger, 24)

	for i, row := range result.Ledger {
		assert.Equal(t, i+1, row.Period)
		assert.Equal(t, model.MonthLabel(i), row.Month)
		assert.False(t, row.ShockFired)
	}
	last := result.Ledger[23]
	assert.Equal(t, result.FinalState.InflationRate, last.InflationRate)
	assert.Empty(t, result.Shocks)
}

func TestRun_RecordsShocks(t *testing.T) {
	e := newEngine(t)
	// Second period draws a negative shock.
	src := &scriptSource{draws: []float64{
		0.5, 0.5, // period 1: no shock
		0.5, 0.05, 0.2, // period 2: shock = -0.6
	}}
	result, err := e.Run(normalState, 3, src)
	require.NoError(t, err)
	require.Len(t, result.Shocks, 1)
	assert.Equal(t, 2, result.Shocks[0].Period)
	assert.Equal(t, model.ImpactNegative, result.Shocks[0].Impact)
	assert.True(t, result.Ledger[1].ShockFired)
	assert.Equal(t, model.ImpactNegative, result.Ledger[1].ShockImpact)
}

func TestRun_RejectsBadInput(t *testing.T) {
	e := newEngine(t)
	_, err := e.Run(normalState, 0, &scriptSource{})
	assert.Error(t, err)
	_, err = e.Run(normalState, 5, nil)
	assert.Error(t, err)
}

func TestEventLog_AppendOnly(t *testing.T) {
	log := NewEventLog()
	assert.Zero(t, log.Len())

	log.Append(model.NewShockEvent(0.5, 3))
	log.Append(model.NewShockEvent(-0.2, 7))
	require.Equal(t, 2, log.Len())

	events := log.Events()
	assert.Equal(t, 3, events[0].Period)
	assert.Equal(t, 7, events[1].Period)

	// Mutating the snapshot does not touch the log.
	events[0].Period = 99
	assert.Equal(t, 3, log.Events()[0].Period)

	log.Reset()
	assert.Zero(t, log.Len())
	assert.Empty(t, log.Events())
}

func TestWriteLedgerCSV(t *testing.T) {
	e := newEngine(t)
	result, err := e.Run(normalState, 4, &scriptSource{})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "run.csv")
	require.NoError(t, WriteLedgerCSV(path, result.Ledger))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5) // header + 4 periods
	assert.Equal(t, "period", rows[0][0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "Jan", rows[1][1])
}
