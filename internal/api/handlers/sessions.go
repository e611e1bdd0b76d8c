package handlers

import (
	"log"
	"net/http"

	"macrosim/internal/api/models"
	"macrosim/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes one session's state, series and events, plus the
// write triggers the rendering layer drives.
type SessionHandler struct {
	store *session.Store
}

func NewSessionHandler(store *session.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

// CreateSession handles POST /api/v1/sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req models.CreateSessionRequest
	// Body is optional; an empty body means the default scenario.
	_ = c.ShouldBindJSON(&req)
	if req.Scenario == "" {
		req.Scenario = "normal"
	}

	s, err := h.store.Create(req.Scenario)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "UNKNOWN_SCENARIO", err.Error())
		return
	}

	log.Printf("SessionHandler: created session %s (scenario=%s)", s.ID(), req.Scenario)
	c.JSON(http.StatusCreated, snapshot(s))
}

// GetState handles GET /api/v1/sessions/:id/state
func (h *SessionHandler) GetState(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": models.StateFrom(s.State())})
}

// GetSeries handles GET /api/v1/sessions/:id/series
func (h *SessionHandler) GetSeries(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"series": models.SeriesFrom(s.Series())})
}

// GetEvents handles GET /api/v1/sessions/:id/events
func (h *SessionHandler) GetEvents(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": models.EventsFrom(s.Events())})
}

// Step handles POST /api/v1/sessions/:id/step
func (h *SessionHandler) Step(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}

	state, ev := s.SimulateNextPeriod()
	resp := models.StepResponse{State: models.StateFrom(state)}
	if ev != nil {
		resp.Event = &models.ShockEvent{Type: ev.Type, Impact: string(ev.Impact), Period: ev.Period}
	}
	c.JSON(http.StatusOK, resp)
}

// SetField handles PATCH /api/v1/sessions/:id/state
func (h *SessionHandler) SetField(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}

	var req models.SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	state, err := s.SetField(req.Field, *req.Value)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "INVALID_FIELD", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": models.StateFrom(state)})
}

// SetPeriods handles PUT /api/v1/sessions/:id/periods
func (h *SessionHandler) SetPeriods(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}

	var req models.SetPeriodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	periods := s.SetPeriods(req.Periods)
	c.JSON(http.StatusOK, gin.H{
		"periods": periods,
		"series":  models.SeriesFrom(s.Series()),
	})
}

// SelectScenario handles POST /api/v1/sessions/:id/scenario
func (h *SessionHandler) SelectScenario(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}

	var req models.SelectScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := h.store.SelectScenario(s, req.Name); err != nil {
		errorJSON(c, http.StatusBadRequest, "UNKNOWN_SCENARIO", err.Error())
		return
	}
	c.JSON(http.StatusOK, snapshot(s))
}

func (h *SessionHandler) lookup(c *gin.Context) (*session.Session, bool) {
	id := c.Param("id")
	s, ok := h.store.Get(id)
	if !ok {
		errorJSON(c, http.StatusNotFound, "SESSION_NOT_FOUND", "no session with id "+id)
		return nil, false
	}
	return s, true
}

func snapshot(s *session.Session) models.SessionResponse {
	return models.SessionResponse{
		ID:       s.ID(),
		Scenario: s.Scenario(),
		Periods:  s.Periods(),
		State:    models.StateFrom(s.State()),
		Series:   models.SeriesFrom(s.Series()),
		Events:   models.EventsFrom(s.Events()),
	}
}

func errorJSON(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{Error: models.ErrorDetail{Code: code, Message: message}})
}
