package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"macrosim/internal/rng"
	"macrosim/internal/scenario"
	"macrosim/internal/sim"

	"github.com/google/uuid"
)

// DefaultTTL evicts sessions idle for this long.
const DefaultTTL = 2 * time.Hour

var errUnknownScenario = errors.New("unknown scenario")

// Options configures a Store.
type Options struct {
	Engine         *sim.Engine
	Scenarios      *scenario.Registry
	Noise          sim.Noise
	DebounceWindow time.Duration
	TTL            time.Duration
	// Seed, when non-zero, makes every created session reproducible by
	// deriving per-session seeds from it. Zero means time-seeded.
	Seed int64
}

// Store keeps live sessions by id and evicts idle ones.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	opts    Options
	created int64

	stop     chan struct{}
	stopOnce sync.Once
}

func NewStore(opts Options) (*Store, error) {
	if opts.Engine == nil {
		return nil, fmt.Errorf("engine is nil")
	}
	if opts.Scenarios == nil {
		return nil, fmt.Errorf("scenario registry is nil")
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	st := &Store{
		sessions: make(map[string]*Session),
		opts:     opts,
		stop:     make(chan struct{}),
	}
	go st.sweep()
	return st, nil
}

// Create starts a session from a named scenario preset.
func (st *Store) Create(scenarioName string) (*Session, error) {
	preset, ok := st.opts.Scenarios.Get(scenarioName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownScenario, scenarioName)
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	st.created++
	var src rng.Source
	if st.opts.Seed != 0 {
		src = rng.NewSeeded(st.opts.Seed + st.created)
	} else {
		src = rng.New()
	}

	s := newSession(uuid.NewString(), preset, st.opts.Engine, st.opts.Noise, src, st.opts.DebounceWindow)
	st.sessions[s.ID()] = s
	return s, nil
}

// Get looks a session up by id.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// SelectScenario resolves the preset and applies it to the session.
func (st *Store) SelectScenario(s *Session, name string) error {
	preset, ok := st.opts.Scenarios.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownScenario, name)
	}
	s.SelectScenario(preset)
	return nil
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Close stops the eviction sweeper and releases all sessions.
func (st *Store) Close() {
	st.stopOnce.Do(func() { close(st.stop) })

	st.mu.Lock()
	defer st.mu.Unlock()
	for id, s := range st.sessions {
		s.Close()
		delete(st.sessions, id)
	}
}

func (st *Store) sweep() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-st.stop:
			return
		case now := <-ticker.C:
			st.evictIdle(now)
		}
	}
}

func (st *Store) evictIdle(now time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for id, s := range st.sessions {
		if s.expired(st.opts.TTL, now) {
			s.Close()
			delete(st.sessions, id)
		}
	}
}

// IsUnknownScenario reports whether err came from a bad scenario name.
func IsUnknownScenario(err error) bool {
	return errors.Is(err, errUnknownScenario)
}
