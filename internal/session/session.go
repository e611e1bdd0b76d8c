// Package session owns the mutable simulation state. Indicator values,
// the event log and the displayed series are only reachable through a
// Session, which serializes the write triggers the rendering layer has.
package session

import (
	"sync"
	"time"

	"macrosim/internal/debounce"
	"macrosim/internal/model"
	"macrosim/internal/rng"
	"macrosim/internal/scenario"
	"macrosim/internal/sim"
)

// Session holds one user's simulation: current state, period count, the
// derived display series, the shock log and a private random source.
type Session struct {
	mu sync.Mutex

	id       string
	scenario string
	state    model.IndicatorState
	periods  int

	// series is the regenerated baseline plus any points appended by real
	// simulation steps.
	series  []model.SeriesPoint
	stepped int // points appended by SimulateNextPeriod

	log    *sim.EventLog
	engine *sim.Engine
	noise  sim.Noise
	src    rng.Source

	deb   *debounce.Debouncer
	dirty bool // series stale after a direct field write

	lastAccess time.Time
}

func newSession(id string, preset scenario.Preset, engine *sim.Engine, noise sim.Noise, src rng.Source, window time.Duration) *Session {
	s := &Session{
		id:         id,
		scenario:   preset.Name,
		state:      preset.State,
		periods:    sim.DefaultPeriods,
		log:        sim.NewEventLog(),
		engine:     engine,
		noise:      noise,
		src:        src,
		deb:        debounce.New(window),
		lastAccess: time.Now(),
	}
	s.regenerateLocked()
	return s
}

// regenerateLocked rebuilds the baseline series from the current state,
// dropping any stepped points. Callers hold s.mu.
func (s *Session) regenerateLocked() {
	series, err := sim.GenerateSeries(s.state, s.periods, s.noise, s.src)
	if err != nil {
		// periods is kept in range by SetPeriods; this is unreachable in
		// practice but the series must never be nil for readers.
		series = []model.SeriesPoint{}
	}
	s.series = series
	s.stepped = 0
	s.dirty = false
}

func (s *Session) ID() string { return s.id }

// Scenario returns the name of the last selected preset.
func (s *Session) Scenario() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scenario
}

// State returns the current indicator values.
func (s *Session) State() model.IndicatorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	return s.state
}

// Periods returns the requested baseline series length.
func (s *Session) Periods() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.periods
}

// Series returns a copy of the displayed series. During a debounce window
// the copy may lag the state; it catches up once input settles.
func (s *Session) Series() []model.SeriesPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	out := make([]model.SeriesPoint, len(s.series))
	copy(out, s.series)
	return out
}

// Events returns a copy of the shock log.
func (s *Session) Events() []model.ShockEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	return s.log.Events()
}

// SetField overrides one indicator from a slider, clamped to the field's
// range. The series regeneration is debounced so a drag does not
// recompute on every intermediate value.
func (s *Session) SetField(name string, value float64) (model.IndicatorState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()

	next, err := s.state.WithField(name, value)
	if err != nil {
		return s.state, err
	}
	s.state = next
	s.dirty = true
	s.deb.Trigger(s.settle)
	return s.state, nil
}

// settle is the debounce callback: regenerate if a field write is still
// pending.
func (s *Session) settle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dirty {
		s.regenerateLocked()
	}
}

// SetPeriods changes the baseline series length, clamped to [1, 60], and
// regenerates immediately.
func (s *Session) SetPeriods(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()

	s.periods = sim.ClampPeriods(n)
	s.deb.Cancel()
	s.regenerateLocked()
	return s.periods
}

// SelectScenario replaces the state with the preset verbatim, clears the
// event log and regenerates the series.
func (s *Session) SelectScenario(preset scenario.Preset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()

	s.scenario = preset.Name
	s.state = preset.State
	s.log.Reset()
	s.deb.Cancel()
	s.regenerateLocked()
}

// SimulateNextPeriod advances the state one period and appends it to the
// series as the new current period. The returned event is non-nil iff a
// supply shock fired; it is already appended to the log.
func (s *Session) SimulateNextPeriod() (model.IndicatorState, *model.ShockEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()

	// A pending slider write settles before the step so the step sees a
	// coherent baseline.
	s.deb.Cancel()
	if s.dirty {
		s.regenerateLocked()
	}

	period := len(s.series) + 1
	next, ev := s.engine.Step(s.state, s.src, period)
	s.state = next
	s.series = append(s.series, model.SeriesPoint{
		Month:            model.MonthLabel(len(s.series)),
		UnemploymentRate: next.UnemploymentRate,
		InflationRate:    next.InflationRate,
		FederalFundsRate: next.FederalFundsRate,
	})
	s.stepped++
	if ev != nil {
		s.log.Append(*ev)
	}
	return next, ev
}

// Close drops any pending debounce timer.
func (s *Session) Close() {
	s.deb.Cancel()
}

func (s *Session) touchLocked() {
	s.lastAccess = time.Now()
}

func (s *Session) expired(ttl time.Duration, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastAccess) > ttl
}
