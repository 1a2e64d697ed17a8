package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"ledgerly/internal/ledger"
	"ledgerly/internal/logger"
	"ledgerly/internal/models"
)

// MonthsInWindow is the number of calendar months in the income-vs-expense chart.
const MonthsInWindow = 6

// MonthTotals is one month of the income-vs-expense chart.
type MonthTotals struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income" swaggertype:"number"`
	Expense decimal.Decimal `json:"expense" swaggertype:"number"`
}

// CategoryTotal is one slice of the expense-by-category chart.
type CategoryTotal struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value" swaggertype:"number"`
}

// CashFlowPoint is the running balance after one transaction.
type CashFlowPoint struct {
	Date    string          `json:"date"`
	Balance decimal.Decimal `json:"balance" swaggertype:"number"`
}

// IncomeVsExpense returns Income and Expense totals for the six calendar
// months ending with asOf's month, oldest first. Every month is present even
// when it has no transactions.
func IncomeVsExpense(l ledger.Ledger, asOf time.Time) []MonthTotals {
	first := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())

	buckets := make([]MonthTotals, MonthsInWindow)
	index := make(map[string]int, MonthsInWindow)
	for i := 0; i < MonthsInWindow; i++ {
		m := first.AddDate(0, i-(MonthsInWindow-1), 0)
		buckets[i] = MonthTotals{Month: m.Format("Jan 2006"), Income: decimal.Zero, Expense: decimal.Zero}
		index[m.Format("2006-01")] = i
	}

	for _, t := range l.Transactions {
		if t.Type != models.TransactionTypeIncome && t.Type != models.TransactionTypeExpense {
			continue
		}
		d, err := time.Parse(models.DateLayout, t.Date)
		if err != nil {
			logger.Get().Warnw("skipping transaction with unparsable date",
				"id", t.ID,
				"date", t.Date,
				"error", err,
			)
			continue
		}
		i, ok := index[d.Format("2006-01")]
		if !ok {
			continue
		}
		if t.Type == models.TransactionTypeIncome {
			buckets[i].Income = buckets[i].Income.Add(t.Amount)
		} else {
			buckets[i].Expense = buckets[i].Expense.Add(t.Amount)
		}
	}
	return buckets
}

// ExpenseByCategory totals this month's Expense transactions per category,
// rounded to whole units, in order of first appearance.
func ExpenseByCategory(l ledger.Ledger, asOf time.Time) []CategoryTotal {
	prefix := asOf.Format("2006-01")

	out := []CategoryTotal{}
	index := map[string]int{}
	for _, t := range l.Transactions {
		if t.Type != models.TransactionTypeExpense || !hasMonthPrefix(t.Date, prefix) {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(out)
			index[t.Category] = i
			out = append(out, CategoryTotal{Name: t.Category, Value: decimal.Zero})
		}
		out[i].Value = out[i].Value.Add(t.Amount)
	}
	for i := range out {
		out[i].Value = out[i].Value.Round(0)
	}
	return out
}

// initialBalance is where the cash-flow series starts. Transactions before
// the first recorded one are unknown, so it is always zero.
var initialBalance = decimal.Zero

// CashFlow walks transactions in date order, adding income and subtracting
// realised spending, and emits the running balance after each one.
// Transactions on the same date keep their ledger order.
func CashFlow(l ledger.Ledger) []CashFlowPoint {
	ordered := make([]models.Transaction, len(l.Transactions))
	copy(ordered, l.Transactions)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Date < ordered[j].Date })

	balance := initialBalance
	points := make([]CashFlowPoint, 0, len(ordered))
	for _, t := range ordered {
		switch {
		case t.Type == models.TransactionTypeIncome:
			balance = balance.Add(t.Amount)
		case t.Type.IsCashOutflow():
			balance = balance.Sub(t.Amount)
		}
		points = append(points, CashFlowPoint{Date: t.Date, Balance: balance.Round(2)})
	}
	return points
}
