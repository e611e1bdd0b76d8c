package handlers

import (
	"net/http"

	"macrosim/internal/api/models"
	"macrosim/internal/scenario"

	"github.com/gin-gonic/gin"
)

// ScenarioHandler lists the available scenario presets.
type ScenarioHandler struct {
	registry *scenario.Registry
}

func NewScenarioHandler(registry *scenario.Registry) *ScenarioHandler {
	return &ScenarioHandler{registry: registry}
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	presets := h.registry.List()
	out := make([]models.ScenarioInfo, 0, len(presets))
	for _, p := range presets {
		out = append(out, models.ScenarioInfo{
			Name:        p.Name,
			Description: p.Description,
			State:       models.StateFrom(p.State),
		})
	}
	c.JSON(http.StatusOK, gin.H{"scenarios": out})
}
