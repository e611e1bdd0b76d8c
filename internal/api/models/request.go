package models

// CreateSessionRequest starts a new simulation session.
type CreateSessionRequest struct {
	Scenario string `json:"scenario,omitempty"` // default: "normal"
}

// SetFieldRequest overrides one indicator from a slider.
type SetFieldRequest struct {
	// Field is one of "unemployment_rate", "inflation_rate",
	// "federal_funds_rate".
	Field string   `json:"field" binding:"required"`
	Value *float64 `json:"value" binding:"required"`
}

// SetPeriodsRequest resizes the displayed series.
type SetPeriodsRequest struct {
	Periods int `json:"periods" binding:"required"` // clamped to [1, 60]
}

// SelectScenarioRequest resets the session to a named preset.
type SelectScenarioRequest struct {
	Name string `json:"name" binding:"required"`
}
