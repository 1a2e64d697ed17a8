package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Budget represents a monthly spending limit for one expense category.
// Spending against it is derived from transactions and never stored here.
type Budget struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit" swaggertype:"number"`
}

// Validate checks a decoded budget.
func (b Budget) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("budget without id")
	}
	if b.Category == "" {
		return fmt.Errorf("budget %s: empty category", b.ID)
	}
	return nil
}
