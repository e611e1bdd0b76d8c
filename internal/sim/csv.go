package sim

import (
	"encoding/csv"
	"os"
	"strconv"

	"macrosim/internal/model"
)

func WriteLedgerCSV(path string, ledger []LedgerRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"period",
		"month",
		"unemployment_rate",
		"inflation_rate",
		"federal_funds_rate",
		"shock_fired",
		"shock_impact",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, row := range ledger {
		rec := []string{
			strconv.Itoa(row.Period),
			row.Month,
			formatRate(row.UnemploymentRate),
			formatRate(row.InflationRate),
			formatRate(row.FederalFundsRate),
			strconv.FormatBool(row.ShockFired),
			string(row.ShockImpact),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// WriteSeriesCSV writes a generated display series.
func WriteSeriesCSV(path string, series []model.SeriesPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"index", "month", "unemployment_rate", "inflation_rate", "federal_funds_rate"}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, p := range series {
		rec := []string{
			strconv.Itoa(i + 1),
			p.Month,
			formatRate(p.UnemploymentRate),
			formatRate(p.InflationRate),
			formatRate(p.FederalFundsRate),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
