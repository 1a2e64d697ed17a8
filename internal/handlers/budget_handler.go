package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ledgerly/internal/analytics"
	"ledgerly/internal/ledger"
	"ledgerly/internal/models"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	ledger ledger.Servicer
	now    Clock
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(ledgerService ledger.Servicer, now Clock) *BudgetHandler {
	return &BudgetHandler{ledger: ledgerService, now: now}
}

// CreateBudgetRequest represents the request payload for creating a budget.
type CreateBudgetRequest struct {
	Category string    `json:"category" example:"Food"`
	Limit    FormValue `json:"limit" swaggertype:"string" example:"300"`
}

// BudgetEnvelope wraps a single budget.
type BudgetEnvelope struct {
	Budget models.Budget `json:"budget"`
}

// BudgetsResponse lists budgets with this month's progress.
type BudgetsResponse struct {
	Budgets []analytics.BudgetProgress `json:"budgets"`
}

// CreateBudget handles the creation of a new budget.
// @Summary     Create a budget
// @Description Create a monthly spending limit for an Expense category
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       request body CreateBudgetRequest true "Budget details"
// @Success     201 {object} BudgetEnvelope "Budget created"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate category"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	budget, err := h.ledger.AddBudget(c.Request.Context(), req.Category, string(req.Limit))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, BudgetEnvelope{Budget: budget})
}

// GetBudgets lists every budget with spent, remaining and progress for the
// current month.
// @Summary     Get budgets
// @Tags        budgets
// @Produce     json
// @Success     200 {object} BudgetsResponse "Budgets with progress"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	budgets := analytics.BudgetsWithProgress(h.ledger.Snapshot(), h.now())
	c.JSON(http.StatusOK, BudgetsResponse{Budgets: budgets})
}

// DeleteBudget removes a budget. Unknown ids succeed.
// @Summary     Delete budget
// @Tags        budgets
// @Produce     json
// @Param       id path string true "Budget ID"
// @Success     200 {object} MessageResponse "Budget deleted"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.ledger.DeleteBudget(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Budget deleted successfully"})
}
