package sim

import "macrosim/internal/model"

// EventLog is the ordered, append-only record of supply shocks. Append and
// Reset are the only mutators; entries are never edited or removed.
type EventLog struct {
	events []model.ShockEvent
}

func NewEventLog() *EventLog { return &EventLog{} }

func (l *EventLog) Append(ev model.ShockEvent) {
	l.events = append(l.events, ev)
}

// Reset clears the log. Only scenario selection calls this.
func (l *EventLog) Reset() {
	l.events = nil
}

func (l *EventLog) Len() int { return len(l.events) }

// Events returns a copy so callers cannot mutate the log.
func (l *EventLog) Events() []model.ShockEvent {
	out := make([]model.ShockEvent, len(l.events))
	copy(out, l.events)
	return out
}
