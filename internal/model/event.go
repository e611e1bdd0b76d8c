package model

// ShockType is the only event type the simulation emits today.
const ShockType = "Supply Shock"

// Impact is the sign of a supply shock, kept as a display-facing string.
// Keep these values stable; they appear in API responses and CSV output.
type Impact string

const (
	ImpactPositive Impact = "Positive"
	ImpactNegative Impact = "Negative"
)

// ImpactFromMagnitude maps a shock magnitude to its displayed impact.
func ImpactFromMagnitude(shock float64) Impact {
	if shock > 0 {
		return ImpactPositive
	}
	return ImpactNegative
}

// ShockEvent records one supply shock drawn by a simulation step.
// Events are append-only; Period is the 1-based period the shock hit.
type ShockEvent struct {
	Type   string
	Impact Impact
	Period int
}

// NewShockEvent builds the event for a non-zero shock magnitude.
func NewShockEvent(shock float64, period int) ShockEvent {
	return ShockEvent{
		Type:   ShockType,
		Impact: ImpactFromMagnitude(shock),
		Period: period,
	}
}
