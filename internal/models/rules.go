package models

// StatusFamily groups transaction types that share a status machine.
type StatusFamily int

const (
	// StatusFamilyFixed types keep the status they were created with.
	StatusFamilyFixed StatusFamily = iota
	// StatusFamilySettleable types start pending and may be settled exactly once.
	StatusFamilySettleable
)

// CategorySource says where a transaction's category comes from.
type CategorySource int

const (
	// CategoryFromForm takes the category the user typed; it is required.
	CategoryFromForm CategorySource = iota
	// CategoryFromNewLoan generates "Loan with {party}".
	CategoryFromNewLoan
	// CategoryFromLoanPayment generates "{Kind} to {party}" from the referenced loan.
	CategoryFromLoanPayment
)

// TypeRule describes how one transaction type is validated, categorised and counted.
type TypeRule struct {
	RequiresParty        bool
	RequiresInterestRate bool
	RequiresLoan         bool
	Category             CategorySource
	// PaymentKind is the prefix of a generated loan-payment category.
	PaymentKind string
	// CashOutflow marks realised spending counted by expense totals and cash flow.
	CashOutflow bool
	// CreatesLoan marks types that open a new Loan record.
	CreatesLoan  bool
	LoanType     LoanType
	StatusFamily StatusFamily
}

// typeRules is the single decision table for transaction types. Every type in
// TransactionTypes must have an entry.
var typeRules = map[TransactionType]TypeRule{
	TransactionTypeIncome:  {},
	TransactionTypeExpense: {CashOutflow: true},
	TransactionTypeLoanPayment: {
		RequiresLoan: true,
		Category:     CategoryFromLoanPayment,
		PaymentKind:  "Payment",
		CashOutflow:  true,
	},
	TransactionTypeInterestPayment: {
		RequiresLoan: true,
		Category:     CategoryFromLoanPayment,
		PaymentKind:  "Interest",
		CashOutflow:  true,
	},
	TransactionTypeEMI:         {CashOutflow: true},
	TransactionTypeInsurance:   {CashOutflow: true},
	TransactionTypeBillPayment: {CashOutflow: true},
	TransactionTypePayables: {
		RequiresParty: true,
		StatusFamily:  StatusFamilySettleable,
	},
	TransactionTypeReceivables: {
		RequiresParty: true,
		StatusFamily:  StatusFamilySettleable,
	},
	TransactionTypeLoanTaken: {
		RequiresParty:        true,
		RequiresInterestRate: true,
		Category:             CategoryFromNewLoan,
		CreatesLoan:          true,
		LoanType:             LoanTypeTaken,
	},
	TransactionTypeLoanGiven: {
		RequiresParty:        true,
		RequiresInterestRate: true,
		Category:             CategoryFromNewLoan,
		CreatesLoan:          true,
		LoanType:             LoanTypeGiven,
	},
}

// Rule returns the decision-table entry for t.
func (t TransactionType) Rule() (TypeRule, bool) {
	r, ok := typeRules[t]
	return r, ok
}

// IsCashOutflow reports whether t counts as realised spending.
func (t TransactionType) IsCashOutflow() bool {
	return typeRules[t].CashOutflow
}

// InitialStatus returns the status a freshly recorded transaction of type t starts in.
func (t TransactionType) InitialStatus() TransactionStatus {
	if typeRules[t].StatusFamily == StatusFamilySettleable {
		return TransactionStatusPending
	}
	return TransactionStatusActive
}
