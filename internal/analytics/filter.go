// Package analytics derives read-only views from a ledger snapshot: filtered
// transaction lists, totals, budget progress and chart series. Nothing here
// mutates its input or returns an error; records that cannot be interpreted
// are skipped.
package analytics

import (
	"sort"
	"strings"

	"ledgerly/internal/ledger"
	"ledgerly/internal/models"
)

// SortOrder selects how FilterTransactions orders its result.
type SortOrder string

const (
	SortDateAsc    SortOrder = "date_asc"
	SortDateDesc   SortOrder = "date_desc"
	SortAmountAsc  SortOrder = "amount_asc"
	SortAmountDesc SortOrder = "amount_desc"
)

// IsValid reports whether o is a known sort order.
func (o SortOrder) IsValid() bool {
	switch o {
	case SortDateAsc, SortDateDesc, SortAmountAsc, SortAmountDesc:
		return true
	}
	return false
}

// Filter holds the user-selected list filters. Empty fields do not filter.
type Filter struct {
	Search    string
	Type      models.TransactionType
	Category  string
	StartDate string
	EndDate   string
	SortBy    SortOrder
}

// FilterTransactions applies f to the ledger's transactions and returns a new
// slice. Dates compare lexically, which is chronological for YYYY-MM-DD.
// An unknown sort order leaves the ledger order in place.
func FilterTransactions(l ledger.Ledger, f Filter) []models.Transaction {
	query := strings.ToLower(f.Search)

	out := make([]models.Transaction, 0, len(l.Transactions))
	for _, t := range l.Transactions {
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Description), query) &&
			!strings.Contains(strings.ToLower(t.Category), query) {
			continue
		}
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if f.StartDate != "" && t.Date < f.StartDate {
			continue
		}
		if f.EndDate != "" && t.Date > f.EndDate {
			continue
		}
		out = append(out, t)
	}

	sortBy := f.SortBy
	if sortBy == "" {
		sortBy = SortDateDesc
	}
	switch sortBy {
	case SortDateAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	case SortDateDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	case SortAmountAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Amount.LessThan(out[j].Amount) })
	case SortAmountDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Amount.GreaterThan(out[j].Amount) })
	}
	return out
}
