package models

import "macrosim/internal/model"

// State is the indicator snapshot exposed to the rendering layer.
type State struct {
	UnemploymentRate float64 `json:"unemployment_rate"`
	InflationRate    float64 `json:"inflation_rate"`
	FederalFundsRate float64 `json:"federal_funds_rate"`
}

func StateFrom(s model.IndicatorState) State {
	return State{
		UnemploymentRate: s.UnemploymentRate,
		InflationRate:    s.InflationRate,
		FederalFundsRate: s.FederalFundsRate,
	}
}

// SeriesPoint is one charted period.
type SeriesPoint struct {
	Month            string  `json:"month"`
	UnemploymentRate float64 `json:"unemployment_rate"`
	InflationRate    float64 `json:"inflation_rate"`
	FederalFundsRate float64 `json:"federal_funds_rate"`
}

func SeriesFrom(points []model.SeriesPoint) []SeriesPoint {
	out := make([]SeriesPoint, 0, len(points))
	for _, p := range points {
		out = append(out, SeriesPoint{
			Month:            p.Month,
			UnemploymentRate: p.UnemploymentRate,
			InflationRate:    p.InflationRate,
			FederalFundsRate: p.FederalFundsRate,
		})
	}
	return out
}

// ShockEvent annotates the chart with a supply shock.
type ShockEvent struct {
	Type   string `json:"type"`
	Impact string `json:"impact"` // "Positive" or "Negative"
	Period int    `json:"period"`
}

func EventsFrom(events []model.ShockEvent) []ShockEvent {
	out := make([]ShockEvent, 0, len(events))
	for _, e := range events {
		out = append(out, ShockEvent{Type: e.Type, Impact: string(e.Impact), Period: e.Period})
	}
	return out
}

// SessionResponse is the full snapshot returned on create and scenario
// selection.
type SessionResponse struct {
	ID       string        `json:"id"`
	Scenario string        `json:"scenario"`
	Periods  int           `json:"periods"`
	State    State         `json:"state"`
	Series   []SeriesPoint `json:"series"`
	Events   []ShockEvent  `json:"events"`
}

// StepResponse is the outcome of one simulated period.
type StepResponse struct {
	State State       `json:"state"`
	Event *ShockEvent `json:"event,omitempty"`
}

// ScenarioInfo describes one preset for the picker.
type ScenarioInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	State       State  `json:"state"`
}

// RuleInfo describes one policy reaction rule.
type RuleInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a rule parameter.
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int", "string"
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
