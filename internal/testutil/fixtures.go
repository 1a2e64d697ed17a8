package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"ledgerly/internal/models"
)

// counter provides unique ids across fixtures within a test run.
var counter atomic.Int64

func nextID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, counter.Add(1))
}

// Amount parses a decimal literal, panicking on malformed test input.
func Amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Tx builds a transaction with the given type, amount and date. Category and
// status default sensibly for the type.
func Tx(txType models.TransactionType, amount, date string) models.Transaction {
	return models.Transaction{
		ID:       nextID("tx"),
		Type:     txType,
		Amount:   Amount(amount),
		Category: "Other",
		Date:     date,
		Status:   txType.InitialStatus(),
	}
}

// Income builds an Income transaction.
func Income(amount, date string) models.Transaction {
	tx := Tx(models.TransactionTypeIncome, amount, date)
	tx.Category = "Salary"
	return tx
}

// Expense builds an Expense transaction in the given category.
func Expense(category, amount, date string) models.Transaction {
	tx := Tx(models.TransactionTypeExpense, amount, date)
	tx.Category = category
	return tx
}

// Payable builds a pending payable owed to party.
func Payable(party, amount, date string) models.Transaction {
	tx := Tx(models.TransactionTypePayables, amount, date)
	tx.Party = party
	tx.Category = "Friend"
	return tx
}

// Receivable builds a pending receivable owed by party.
func Receivable(party, amount, date string) models.Transaction {
	tx := Tx(models.TransactionTypeReceivables, amount, date)
	tx.Party = party
	tx.Category = "Client"
	return tx
}

// Budget builds a budget for category with the given limit.
func Budget(category, limit string) models.Budget {
	return models.Budget{ID: nextID("budget"), Category: category, Limit: Amount(limit)}
}

// Loan builds an active loan.
func Loan(loanType models.LoanType, party, principal string) models.Loan {
	return models.Loan{
		ID:           nextID("loan"),
		Type:         loanType,
		Principal:    Amount(principal),
		InterestRate: Amount("5"),
		Party:        party,
		StartDate:    "2024-01-01",
		Status:       models.LoanStatusActive,
	}
}
