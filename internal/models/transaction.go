package models

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts travel as JSON numbers so existing ledger blobs round-trip.
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout is the fixed-width ISO date format used for every ledger date.
// Lexical comparison of two dates in this layout matches chronological order.
const DateLayout = "2006-01-02"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome          TransactionType = "Income"
	TransactionTypeExpense         TransactionType = "Expense"
	TransactionTypeLoanPayment     TransactionType = "Loan Payment"
	TransactionTypeInterestPayment TransactionType = "Interest Payment"
	TransactionTypeEMI             TransactionType = "EMI"
	TransactionTypeInsurance       TransactionType = "Insurance"
	TransactionTypeBillPayment     TransactionType = "Bill Payment"
	TransactionTypePayables        TransactionType = "Payables"
	TransactionTypeReceivables     TransactionType = "Receivables"
	TransactionTypeLoanTaken       TransactionType = "Loan Taken"
	TransactionTypeLoanGiven       TransactionType = "Loan Given"
)

// TransactionTypes lists every transaction type in display order.
var TransactionTypes = []TransactionType{
	TransactionTypeIncome,
	TransactionTypeExpense,
	TransactionTypeLoanPayment,
	TransactionTypeInterestPayment,
	TransactionTypeEMI,
	TransactionTypeInsurance,
	TransactionTypeBillPayment,
	TransactionTypePayables,
	TransactionTypeReceivables,
	TransactionTypeLoanTaken,
	TransactionTypeLoanGiven,
}

// IsValid reports whether t is one of the declared transaction types.
func (t TransactionType) IsValid() bool {
	_, ok := typeRules[t]
	return ok
}

// TransactionStatus represents the lifecycle state of a transaction
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusPaid     TransactionStatus = "paid"
	TransactionStatusReceived TransactionStatus = "received"
	TransactionStatusSettled  TransactionStatus = "settled"
	TransactionStatusActive   TransactionStatus = "active"
)

// IsValid reports whether s is one of the declared statuses.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusPaid, TransactionStatusReceived,
		TransactionStatusSettled, TransactionStatusActive:
		return true
	}
	return false
}

// SettlementCategory is the category given to transactions created by settling
// a payable or receivable.
const SettlementCategory = "Settlement"

// Transaction represents a single ledger entry
type Transaction struct {
	ID                  string            `json:"id"`
	Type                TransactionType   `json:"type"`
	Amount              decimal.Decimal   `json:"amount" swaggertype:"number"`
	Category            string            `json:"category"`
	Date                string            `json:"date"`
	Description         string            `json:"description"`
	Status              TransactionStatus `json:"status"`
	LinkedTransactionID string            `json:"linked_transaction_id,omitempty"`
	LoanID              string            `json:"loan_id,omitempty"`
	Party               string            `json:"party,omitempty"`
}

// Validate checks a decoded transaction against the closed vocabularies.
// It is used when loading persisted data, not for user input.
func (t Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transaction without id")
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("transaction %s: unknown type %q", t.ID, t.Type)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("transaction %s: unknown status %q", t.ID, t.Status)
	}
	return nil
}

// IsPending reports whether the transaction is an outstanding payable or receivable.
func (t Transaction) IsPending() bool {
	return t.Status == TransactionStatusPending
}

// UnmarshalJSON applies the default status to records persisted without one.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	type plain Transaction
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Status == "" {
		p.Status = TransactionStatusActive
	}
	*t = Transaction(p)
	return nil
}
