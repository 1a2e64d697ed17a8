package models

// TransactionForm is the flat, string-keyed input recorded by the transaction
// form. The selected transaction type is tracked separately by the caller.
type TransactionForm struct {
	Amount       string `json:"amount"`
	Date         string `json:"date"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	Party        string `json:"party,omitempty"`
	LoanID       string `json:"loan_id,omitempty"`
	InterestRate string `json:"interest_rate,omitempty"`
}

// FormFromMap builds a TransactionForm from raw form fields.
func FormFromMap(fields map[string]string) TransactionForm {
	return TransactionForm{
		Amount:       fields["amount"],
		Date:         fields["date"],
		Category:     fields["category"],
		Description:  fields["description"],
		Party:        fields["party"],
		LoanID:       fields["loan_id"],
		InterestRate: fields["interest_rate"],
	}
}

// suggestedCategories are the category choices offered per transaction type.
var suggestedCategories = map[TransactionType][]string{
	TransactionTypeIncome:          {"Salary", "Freelance", "Investment", "Gift", "Other"},
	TransactionTypeExpense:         {"Food", "Groceries", "Transport", "Shopping", "Entertainment", "Utilities", "Other"},
	TransactionTypeLoanPayment:     {"Personal Loan", "Home Loan", "Car Loan", "Student Loan"},
	TransactionTypeInterestPayment: {"Credit Card", "Loan Interest"},
	TransactionTypeEMI:             {"Electronics", "Vehicle", "Home Appliance"},
	TransactionTypeInsurance:       {"Health", "Life", "Vehicle", "Home"},
	TransactionTypeBillPayment:     {"Electricity", "Water", "Internet", "Phone", "Gas"},
	TransactionTypePayables:        {"Friend", "Vendor", "Credit"},
	TransactionTypeReceivables:     {"Friend", "Client", "Refund"},
	TransactionTypeLoanTaken:       {"Personal", "Business"},
	TransactionTypeLoanGiven:       {"Personal", "Business"},
}

// SuggestedCategories returns a copy of the category choices for t.
func SuggestedCategories(t TransactionType) []string {
	src := suggestedCategories[t]
	out := make([]string, len(src))
	copy(out, src)
	return out
}
