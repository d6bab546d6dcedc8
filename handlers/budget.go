package handlers

import (
	"errors"
	"net/http"

	"mutawwif/models"
	"mutawwif/services/budget"
	"mutawwif/utils"

	"github.com/gin-gonic/gin"
)

// BudgetHandler exposes the budget planning endpoints.
type BudgetHandler struct {
	Svc budget.BudgetService
}

func NewBudgetHandler(svc budget.BudgetService) *BudgetHandler {
	return &BudgetHandler{Svc: svc}
}

// AllocateBudgetHandler handles POST /api/budget/allocate. Out-of-range plan
// fields are rejected with 400; they are never silently clamped.
func (h *BudgetHandler) AllocateBudgetHandler(c *gin.Context) {
	var plan models.BudgetPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if err := h.Svc.ValidatePlan(plan); err != nil {
		var oor budget.OutOfRangeError
		if errors.As(err, &oor) {
			utils.JSONError(c, http.StatusBadRequest, "Budget plan out of range", err.Error())
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.Svc.Allocate(plan.TotalBudget))
}

// RecommendationsHandler handles POST /api/budget/recommendations.
func (h *BudgetHandler) RecommendationsHandler(c *gin.Context) {
	var req struct {
		Priorities []string `json:"priorities"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendations":  h.Svc.Recommend(req.Priorities),
		"estimatedSavings": budget.EstimatedSavings,
	})
}
