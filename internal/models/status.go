package models

import "fmt"

// StatusEvent is something that can happen to a transaction after creation.
type StatusEvent string

const (
	// StatusEventSettle resolves a pending payable or receivable.
	StatusEventSettle StatusEvent = "settle"
)

// NextStatus is the transaction status machine. Settleable types move
// pending -> settled once; every other state of every type is terminal.
func NextStatus(t TransactionType, current TransactionStatus, event StatusEvent) (TransactionStatus, error) {
	rule, ok := typeRules[t]
	if !ok {
		return current, fmt.Errorf("unknown transaction type %q", t)
	}

	switch rule.StatusFamily {
	case StatusFamilySettleable:
		if event == StatusEventSettle && current == TransactionStatusPending {
			return TransactionStatusSettled, nil
		}
	case StatusFamilyFixed:
	}
	return current, fmt.Errorf("%s transaction in status %q cannot %s", t, current, event)
}

// SettlementFor describes the cash transaction recorded when a settleable
// transaction of type t is resolved.
type SettlementFor struct {
	Type              TransactionType
	Status            TransactionStatus
	DescriptionPrefix string
}

// Settlement returns the settlement shape for a settleable type.
func Settlement(t TransactionType) (SettlementFor, bool) {
	switch t {
	case TransactionTypePayables:
		return SettlementFor{
			Type:              TransactionTypeExpense,
			Status:            TransactionStatusSettled,
			DescriptionPrefix: "Paid off: ",
		}, true
	case TransactionTypeReceivables:
		return SettlementFor{
			Type:              TransactionTypeIncome,
			Status:            TransactionStatusReceived,
			DescriptionPrefix: "Received payment for: ",
		}, true
	}
	return SettlementFor{}, false
}
