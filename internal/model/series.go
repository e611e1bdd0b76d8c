package model

// SeriesPoint is one charted period: a month label plus the three
// indicator values with display jitter applied.
type SeriesPoint struct {
	Month            string
	UnemploymentRate float64
	InflationRate    float64
	FederalFundsRate float64
}

var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthLabel returns the calendar-month abbreviation for a 0-based period
// index, cycling Jan..Dec.
func MonthLabel(i int) string {
	if i < 0 {
		i = -i
	}
	return monthLabels[i%12]
}
