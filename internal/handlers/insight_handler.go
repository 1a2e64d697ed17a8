package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"ledgerly/internal/insights"
	"ledgerly/internal/ledger"
)

// InsightHandler serves alerts, savings suggestions and investment
// recommendations.
type InsightHandler struct {
	ledger ledger.Servicer
	now    Clock
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(ledgerService ledger.Servicer, now Clock) *InsightHandler {
	return &InsightHandler{ledger: ledgerService, now: now}
}

// AlertsResponse lists smart alerts.
type AlertsResponse struct {
	Alerts []insights.Alert `json:"alerts"`
}

// SavingsResponse lists savings suggestions.
type SavingsResponse struct {
	Suggestions []insights.SavingsSuggestion `json:"savings_suggestions"`
}

// InvestmentsResponse is the surplus and its suggested split.
type InvestmentsResponse struct {
	MonthlySurplus  decimal.Decimal           `json:"monthly_surplus" swaggertype:"number"`
	Recommendations []insights.Recommendation `json:"investment_recommendations"`
}

// GetReport returns every insight in one response.
// @Summary     Insights report
// @Tags        insights
// @Produce     json
// @Success     200 {object} insights.Report "Alerts, savings and investments"
// @Router      /insights [get]
func (h *InsightHandler) GetReport(c *gin.Context) {
	c.JSON(http.StatusOK, insights.BuildReport(h.ledger.Snapshot(), h.now()))
}

// GetAlerts returns budget and anomaly alerts.
// @Summary     Smart alerts
// @Tags        insights
// @Produce     json
// @Success     200 {object} AlertsResponse "Alerts"
// @Router      /insights/alerts [get]
func (h *InsightHandler) GetAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, AlertsResponse{Alerts: insights.SmartAlerts(h.ledger.Snapshot(), h.now())})
}

// GetSavings returns suggestions for categories that dominate spending.
// @Summary     Savings suggestions
// @Tags        insights
// @Produce     json
// @Success     200 {object} SavingsResponse "Suggestions"
// @Router      /insights/savings [get]
func (h *InsightHandler) GetSavings(c *gin.Context) {
	c.JSON(http.StatusOK, SavingsResponse{Suggestions: insights.SavingsSuggestions(h.ledger.Snapshot())})
}

// GetInvestments returns the average monthly surplus and how to split it.
// @Summary     Investment recommendations
// @Tags        insights
// @Produce     json
// @Success     200 {object} InvestmentsResponse "Surplus and allocation"
// @Router      /insights/investments [get]
func (h *InsightHandler) GetInvestments(c *gin.Context) {
	report := insights.BuildReport(h.ledger.Snapshot(), h.now())
	c.JSON(http.StatusOK, InvestmentsResponse{
		MonthlySurplus:  report.MonthlySurplus,
		Recommendations: report.Recommendations,
	})
}
