package handlers

import (
	"log"
	"net/http"

	"macrosim/internal/api/models"

	"github.com/gin-gonic/gin"
)

// RuleHandler handles policy-rule requests
type RuleHandler struct{}

func NewRuleHandler() *RuleHandler {
	return &RuleHandler{}
}

// ListRules handles GET /api/v1/rules
func (h *RuleHandler) ListRules(c *gin.Context) {
	rules := []models.RuleInfo{
		{
			Name:        "threshold",
			Description: "Naive reaction rule. Hikes the federal funds rate by a fixed step when implied inflation exceeds the target, cuts by the same step otherwise.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "target_inflation",
					Type:        "float",
					Description: "Inflation threshold the rule reacts around (percent)",
					Default:     2.0,
				},
				{
					Name:        "step_size",
					Type:        "float",
					Description: "Fixed rate move per period (percentage points)",
					Default:     0.25,
				},
			},
		},
	}

	log.Printf("RuleHandler: returning %d rules", len(rules))
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}
