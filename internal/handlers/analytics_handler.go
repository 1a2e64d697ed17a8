package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ledgerly/internal/analytics"
	"ledgerly/internal/ledger"
)

// AnalyticsHandler serves the dashboard figures and chart series.
type AnalyticsHandler struct {
	ledger ledger.Servicer
	now    Clock
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(ledgerService ledger.Servicer, now Clock) *AnalyticsHandler {
	return &AnalyticsHandler{ledger: ledgerService, now: now}
}

// IncomeVsExpenseResponse holds the six-month income/expense series.
type IncomeVsExpenseResponse struct {
	Months []analytics.MonthTotals `json:"months"`
}

// ExpenseByCategoryResponse holds this month's spending per category.
type ExpenseByCategoryResponse struct {
	Categories []analytics.CategoryTotal `json:"categories"`
}

// CashFlowResponse holds the running balance per transaction date.
type CashFlowResponse struct {
	Points []analytics.CashFlowPoint `json:"points"`
}

// GetSummary returns the dashboard cards.
// @Summary     Dashboard summary
// @Tags        analytics
// @Produce     json
// @Success     200 {object} analytics.Summary "Headline totals"
// @Router      /dashboard/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, analytics.Summarize(h.ledger.Snapshot()))
}

// GetIncomeVsExpense returns income and expense totals for the last six months.
// @Summary     Income vs expense
// @Tags        analytics
// @Produce     json
// @Success     200 {object} IncomeVsExpenseResponse "Oldest month first"
// @Router      /analytics/income-vs-expense [get]
func (h *AnalyticsHandler) GetIncomeVsExpense(c *gin.Context) {
	months := analytics.IncomeVsExpense(h.ledger.Snapshot(), h.now())
	c.JSON(http.StatusOK, IncomeVsExpenseResponse{Months: months})
}

// GetExpenseByCategory returns this month's Expense totals per category.
// @Summary     Expense by category
// @Tags        analytics
// @Produce     json
// @Success     200 {object} ExpenseByCategoryResponse "In order of first appearance"
// @Router      /analytics/expense-by-category [get]
func (h *AnalyticsHandler) GetExpenseByCategory(c *gin.Context) {
	categories := analytics.ExpenseByCategory(h.ledger.Snapshot(), h.now())
	c.JSON(http.StatusOK, ExpenseByCategoryResponse{Categories: categories})
}

// GetCashFlow returns the running balance after each transaction date.
// @Summary     Cash flow
// @Tags        analytics
// @Produce     json
// @Success     200 {object} CashFlowResponse "Ascending by date"
// @Router      /analytics/cash-flow [get]
func (h *AnalyticsHandler) GetCashFlow(c *gin.Context) {
	c.JSON(http.StatusOK, CashFlowResponse{Points: analytics.CashFlow(h.ledger.Snapshot())})
}
