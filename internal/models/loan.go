package models

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// LoanType represents the direction of a loan
type LoanType string

const (
	LoanTypeTaken LoanType = "Taken"
	LoanTypeGiven LoanType = "Given"
)

// LoanStatus represents whether a loan is still outstanding
type LoanStatus string

const (
	LoanStatusActive  LoanStatus = "Active"
	LoanStatusPaidOff LoanStatus = "Paid Off"
)

// Loan represents money borrowed from or lent to a counterparty
type Loan struct {
	ID           string          `json:"id"`
	Type         LoanType        `json:"type"`
	Principal    decimal.Decimal `json:"principal" swaggertype:"number"`
	InterestRate decimal.Decimal `json:"interest_rate" swaggertype:"number"`
	Party        string          `json:"party"`
	StartDate    string          `json:"start_date"`
	Status       LoanStatus      `json:"status"`
}

// OutstandingBalance returns the amount still owed on the loan.
// Payments are not amortised against the principal.
func (l Loan) OutstandingBalance() decimal.Decimal {
	return l.Principal
}

// IsActive reports whether the loan is still outstanding.
func (l Loan) IsActive() bool {
	return l.Status == LoanStatusActive
}

// Validate checks a decoded loan against the closed vocabularies.
func (l Loan) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("loan without id")
	}
	if l.Type != LoanTypeTaken && l.Type != LoanTypeGiven {
		return fmt.Errorf("loan %s: unknown type %q", l.ID, l.Type)
	}
	if l.Status != LoanStatusActive && l.Status != LoanStatusPaidOff {
		return fmt.Errorf("loan %s: unknown status %q", l.ID, l.Status)
	}
	return nil
}

// UnmarshalJSON applies the default status to records persisted without one.
func (l *Loan) UnmarshalJSON(data []byte) error {
	type plain Loan
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Status == "" {
		p.Status = LoanStatusActive
	}
	*l = Loan(p)
	return nil
}
