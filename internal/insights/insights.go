// Package insights produces advisory output from the analytics views: budget
// and anomaly alerts, savings suggestions and an investment split of the
// average monthly surplus. Nothing here is persisted.
package insights

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"ledgerly/internal/analytics"
	"ledgerly/internal/ledger"
	"ledgerly/internal/models"
)

// AlertType is the severity of an Alert.
type AlertType string

const (
	AlertWarning AlertType = "warning"
	AlertError   AlertType = "error"
	AlertInfo    AlertType = "info"
)

// Alert is a single smart alert.
type Alert struct {
	Type    AlertType `json:"type"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
}

// SavingsSuggestion points at a category that dominates spending.
type SavingsSuggestion struct {
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	PotentialSavings decimal.Decimal `json:"potential_savings" swaggertype:"number"`
}

// Recommendation is one slice of the suggested surplus allocation.
type Recommendation struct {
	RiskLevel   string          `json:"risk_level"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Allocation  decimal.Decimal `json:"allocation" swaggertype:"number"`
}

// Report bundles every insight for one snapshot.
type Report struct {
	Alerts          []Alert             `json:"alerts"`
	Savings         []SavingsSuggestion `json:"savings_suggestions"`
	MonthlySurplus  decimal.Decimal     `json:"monthly_surplus" swaggertype:"number"`
	Recommendations []Recommendation    `json:"investment_recommendations"`
}

var (
	warnAbove        = decimal.NewFromInt(80)
	limitAt          = decimal.NewFromInt(100)
	anomalyFactor    = decimal.NewFromInt(3)
	significantShare = decimal.RequireFromString("0.2")
	savingsShare     = decimal.RequireFromString("0.1")
	emergencyCeiling = decimal.NewFromInt(50)
)

// allocation is a fixed share of surplus offered when it exceeds the
// emergency fund ceiling.
type allocation struct {
	share       decimal.Decimal
	riskLevel   string
	title       string
	description string
}

var allocations = []allocation{
	{
		share:       decimal.RequireFromString("0.5"),
		riskLevel:   "Conservative",
		title:       "Low-Risk Bonds",
		description: "Consider government or corporate bonds for steady, low-risk returns.",
	},
	{
		share:       decimal.RequireFromString("0.3"),
		riskLevel:   "Moderate",
		title:       "Index Funds (S&P 500)",
		description: "Invest in a broad market index fund for diversified growth.",
	},
	{
		share:       decimal.RequireFromString("0.2"),
		riskLevel:   "Aggressive",
		title:       "Growth Stocks",
		description: "Allocate a smaller portion to individual growth stocks or sector ETFs for higher potential returns.",
	},
}

// SmartAlerts returns a warning for each budget above 80% of its limit, an
// error for each budget over its limit, and at most one info alert for the
// first Expense larger than three times the mean Expense amount.
func SmartAlerts(l ledger.Ledger, asOf time.Time) []Alert {
	alerts := []Alert{}

	for _, b := range analytics.BudgetsWithProgress(l, asOf) {
		switch {
		case b.Progress.GreaterThan(limitAt):
			alerts = append(alerts, Alert{
				Type:    AlertError,
				Title:   "Budget Exceeded for " + b.Category,
				Message: fmt.Sprintf("You have overspent by $%s in %s.", b.Remaining.Abs().StringFixed(2), b.Category),
			})
		case b.Progress.GreaterThan(warnAbove):
			alerts = append(alerts, Alert{
				Type:  AlertWarning,
				Title: "Approaching Budget Limit for " + b.Category,
				Message: fmt.Sprintf("You have spent $%s of your $%s budget (%s%% used).",
					b.Spent.StringFixed(2), b.Limit.StringFixed(2), b.Progress.StringFixed(0)),
			})
		}
	}

	if alert, ok := anomalyAlert(l); ok {
		alerts = append(alerts, alert)
	}
	return alerts
}

func anomalyAlert(l ledger.Ledger) (Alert, bool) {
	sum := decimal.Zero
	count := int64(0)
	for _, t := range l.Transactions {
		if t.Type == models.TransactionTypeExpense {
			sum = sum.Add(t.Amount)
			count++
		}
	}
	if count == 0 {
		return Alert{}, false
	}
	threshold := sum.Div(decimal.NewFromInt(count)).Mul(anomalyFactor)

	for _, t := range l.Transactions {
		if t.Type == models.TransactionTypeExpense && t.Amount.GreaterThan(threshold) {
			return Alert{
				Type:    AlertInfo,
				Title:   "Unusual Transaction Detected",
				Message: fmt.Sprintf("A transaction of $%s for '%s' is significantly higher than your average.", t.Amount.StringFixed(2), t.Category),
			}, true
		}
	}
	return Alert{}, false
}

// SavingsSuggestions returns one suggestion per Expense category whose total
// exceeds 20% of total expenses, in order of first appearance.
func SavingsSuggestions(l ledger.Ledger) []SavingsSuggestion {
	suggestions := []SavingsSuggestion{}

	total := analytics.TotalExpenses(l)
	if total.IsZero() {
		return suggestions
	}
	threshold := total.Mul(significantShare)

	var order []string
	spent := map[string]decimal.Decimal{}
	for _, t := range l.Transactions {
		if t.Type != models.TransactionTypeExpense {
			continue
		}
		if _, ok := spent[t.Category]; !ok {
			order = append(order, t.Category)
		}
		spent[t.Category] = spent[t.Category].Add(t.Amount)
	}

	for _, category := range order {
		s := spent[category]
		if !s.GreaterThan(threshold) {
			continue
		}
		suggestions = append(suggestions, SavingsSuggestion{
			Title: "Review Spending in " + category,
			Description: fmt.Sprintf("You've spent $%s in this category, which is a significant portion of your total expenses. Look for ways to reduce this.",
				s.StringFixed(2)),
			PotentialSavings: s.Mul(savingsShare).Round(2),
		})
	}
	return suggestions
}

// MonthlySurplus is average monthly income minus average monthly expense
// over the income-vs-expense window.
func MonthlySurplus(l ledger.Ledger, asOf time.Time) decimal.Decimal {
	months := analytics.IncomeVsExpense(l, asOf)
	if len(months) == 0 {
		return decimal.Zero
	}

	income, expense := decimal.Zero, decimal.Zero
	for _, m := range months {
		income = income.Add(m.Income)
		expense = expense.Add(m.Expense)
	}
	n := decimal.NewFromInt(int64(len(months)))
	return income.Div(n).Sub(expense.Div(n))
}

// InvestmentRecommendations splits the monthly surplus. A surplus of 50 or
// less goes entirely to an emergency fund.
func InvestmentRecommendations(l ledger.Ledger, asOf time.Time) []Recommendation {
	return recommendationsFor(MonthlySurplus(l, asOf))
}

func recommendationsFor(surplus decimal.Decimal) []Recommendation {
	if surplus.LessThanOrEqual(emergencyCeiling) {
		return []Recommendation{{
			RiskLevel:   "Low",
			Title:       "Build Emergency Fund",
			Description: "Focus on building an emergency fund in a high-yield savings account before investing.",
			Allocation:  surplus.Round(2),
		}}
	}

	out := make([]Recommendation, 0, len(allocations))
	for _, a := range allocations {
		out = append(out, Recommendation{
			RiskLevel:   a.riskLevel,
			Title:       a.title,
			Description: a.description,
			Allocation:  surplus.Mul(a.share).Round(2),
		})
	}
	return out
}

// BuildReport computes every insight for l at asOf.
func BuildReport(l ledger.Ledger, asOf time.Time) Report {
	surplus := MonthlySurplus(l, asOf)
	return Report{
		Alerts:          SmartAlerts(l, asOf),
		Savings:         SavingsSuggestions(l),
		MonthlySurplus:  surplus.Round(2),
		Recommendations: recommendationsFor(surplus),
	}
}
