package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"ledgerly/internal/ledger"
	"ledgerly/internal/models"
)

// Summary is the set of headline figures shown on the dashboard.
type Summary struct {
	TotalIncome        decimal.Decimal `json:"total_income" swaggertype:"number"`
	TotalExpenses      decimal.Decimal `json:"total_expenses" swaggertype:"number"`
	CurrentBalance     decimal.Decimal `json:"current_balance" swaggertype:"number"`
	PendingPayables    decimal.Decimal `json:"pending_payables" swaggertype:"number"`
	PendingReceivables decimal.Decimal `json:"pending_receivables" swaggertype:"number"`
}

// TotalIncome sums every Income transaction.
func TotalIncome(l ledger.Ledger) decimal.Decimal {
	total := decimal.Zero
	for _, t := range l.Transactions {
		if t.Type == models.TransactionTypeIncome {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// TotalExpenses sums realised spending: Expense, loan and interest payments,
// EMI, insurance and bills. Payables, receivables and loan principals are
// not cash flow.
func TotalExpenses(l ledger.Ledger) decimal.Decimal {
	total := decimal.Zero
	for _, t := range l.Transactions {
		if t.Type.IsCashOutflow() {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// CurrentBalance is total income minus total expenses.
func CurrentBalance(l ledger.Ledger) decimal.Decimal {
	return TotalIncome(l).Sub(TotalExpenses(l))
}

// PendingPayables sums payables still awaiting settlement.
func PendingPayables(l ledger.Ledger) decimal.Decimal {
	return pendingTotal(l, models.TransactionTypePayables)
}

// PendingReceivables sums receivables still awaiting settlement.
func PendingReceivables(l ledger.Ledger) decimal.Decimal {
	return pendingTotal(l, models.TransactionTypeReceivables)
}

func pendingTotal(l ledger.Ledger, txType models.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, t := range l.Transactions {
		if t.Type == txType && t.IsPending() {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// Summarize computes the dashboard stat cards.
func Summarize(l ledger.Ledger) Summary {
	income := TotalIncome(l)
	expenses := TotalExpenses(l)
	return Summary{
		TotalIncome:        income,
		TotalExpenses:      expenses,
		CurrentBalance:     income.Sub(expenses),
		PendingPayables:    PendingPayables(l),
		PendingReceivables: PendingReceivables(l),
	}
}

// AllCategories returns the distinct categories used by any transaction,
// sorted.
func AllCategories(l ledger.Ledger) []string {
	seen := make(map[string]struct{}, len(l.Transactions))
	out := []string{}
	for _, t := range l.Transactions {
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}
	sort.Strings(out)
	return out
}

// BudgetCategories returns the sorted Expense categories offered when
// creating a budget.
func BudgetCategories() []string {
	out := models.SuggestedCategories(models.TransactionTypeExpense)
	sort.Strings(out)
	return out
}

// TransactionTypes returns every transaction type in display order.
func TransactionTypes() []models.TransactionType {
	out := make([]models.TransactionType, len(models.TransactionTypes))
	copy(out, models.TransactionTypes)
	return out
}

// SuggestedCategories returns the category choices offered for t.
func SuggestedCategories(t models.TransactionType) []string {
	return models.SuggestedCategories(t)
}
