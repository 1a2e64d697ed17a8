package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"ledgerly/internal/ledger"
	"ledgerly/internal/models"
)

var hundred = decimal.NewFromInt(100)

// BudgetProgress is a budget together with this month's spending against it.
// The derived fields are recomputed on every read and never persisted.
type BudgetProgress struct {
	models.Budget
	Spent     decimal.Decimal `json:"spent" swaggertype:"number"`
	Remaining decimal.Decimal `json:"remaining" swaggertype:"number"`
	Progress  decimal.Decimal `json:"progress" swaggertype:"number"`
}

// BudgetsWithProgress computes spent, remaining and progress for every
// budget from Expense transactions dated in asOf's calendar month.
func BudgetsWithProgress(l ledger.Ledger, asOf time.Time) []BudgetProgress {
	spent := currentMonthExpenses(l, asOf)

	out := make([]BudgetProgress, 0, len(l.Budgets))
	for _, b := range l.Budgets {
		s := spent[b.Category]
		progress := decimal.Zero
		if b.Limit.IsPositive() {
			progress = s.Div(b.Limit).Mul(hundred)
		}
		out = append(out, BudgetProgress{
			Budget:    b,
			Spent:     s,
			Remaining: b.Limit.Sub(s),
			Progress:  progress,
		})
	}
	return out
}

// currentMonthExpenses totals Expense amounts per category for asOf's month.
func currentMonthExpenses(l ledger.Ledger, asOf time.Time) map[string]decimal.Decimal {
	prefix := asOf.Format("2006-01")
	totals := map[string]decimal.Decimal{}
	for _, t := range l.Transactions {
		if t.Type != models.TransactionTypeExpense || !hasMonthPrefix(t.Date, prefix) {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}
	return totals
}

func hasMonthPrefix(date, prefix string) bool {
	return len(date) >= len(prefix) && date[:len(prefix)] == prefix
}
