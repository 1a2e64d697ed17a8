package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/logger"
	"ledgerly/internal/models"
	"ledgerly/internal/uuid"
)

// validatedForm is a TransactionForm that passed every rule for its type.
type validatedForm struct {
	txType       models.TransactionType
	rule         models.TypeRule
	amount       decimal.Decimal
	interestRate decimal.Decimal
	date         string
	category     string
	description  string
	party        string
	loanID       string
}

// Bounds for parsed money values.
const (
	maxAmountDigits  = 12
	maxDecimalPlaces = 8
)

var maxAmount = decimal.New(1, maxAmountDigits)

// parseAmount parses raw as a decimal within the accepted money range. The
// exponent is checked before any comparison that would rescale the value.
func parseAmount(raw string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if d.Exponent() > maxAmountDigits || d.Exponent() < -maxDecimalPlaces {
		return decimal.Decimal{}, false
	}
	if d.Abs().GreaterThan(maxAmount) {
		return decimal.Decimal{}, false
	}
	return d, true
}

func validateForm(form models.TransactionForm, txType models.TransactionType) (validatedForm, error) {
	rule, ok := txType.Rule()
	if !ok {
		return validatedForm{}, validationError("Unsupported transaction type.")
	}

	v := validatedForm{
		txType:      txType,
		rule:        rule,
		date:        strings.TrimSpace(form.Date),
		category:    strings.TrimSpace(form.Category),
		description: form.Description,
		party:       strings.TrimSpace(form.Party),
		loanID:      strings.TrimSpace(form.LoanID),
	}

	rawAmount := strings.TrimSpace(form.Amount)
	if rawAmount == "" {
		return validatedForm{}, validationError("Amount must be greater than zero.")
	}
	amount, ok := parseAmount(rawAmount)
	if !ok {
		return validatedForm{}, validationError("Invalid data provided. Check amount and interest rate.")
	}
	if !amount.IsPositive() {
		return validatedForm{}, validationError("Amount must be greater than zero.")
	}
	v.amount = amount

	if v.date == "" {
		return validatedForm{}, validationError("Date is required.")
	}
	if _, err := time.Parse(models.DateLayout, v.date); err != nil {
		return validatedForm{}, validationError("Date must be in YYYY-MM-DD format.")
	}

	if rule.RequiresParty && v.party == "" {
		return validatedForm{}, validationError("Party name is required for this transaction type.")
	}

	if rule.RequiresInterestRate {
		rawRate := strings.TrimSpace(form.InterestRate)
		if rawRate == "" {
			return validatedForm{}, validationError("Interest rate is required for new loans.")
		}
		rate, ok := parseAmount(rawRate)
		if !ok || !rate.IsPositive() {
			return validatedForm{}, validationError("Invalid data provided. Check amount and interest rate.")
		}
		v.interestRate = rate
	}

	if rule.RequiresLoan && v.loanID == "" {
		return validatedForm{}, validationError("A loan must be selected for this payment.")
	}

	if rule.Category == models.CategoryFromForm && v.category == "" {
		return validatedForm{}, validationError("Category is required.")
	}

	return v, nil
}

// AddTransaction validates the form for txType and records a new transaction
// at the front of the ledger. New loans are persisted before the transaction
// that opens them.
func (s *Store) AddTransaction(ctx context.Context, form models.TransactionForm, txType models.TransactionType) (models.Transaction, error) {
	v, err := validateForm(form, txType)
	if err != nil {
		return models.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	id := uuid.NewAt(s.now())

	tx := models.Transaction{
		ID:          id,
		Type:        v.txType,
		Amount:      v.amount,
		Category:    v.category,
		Date:        v.date,
		Description: v.description,
		Status:      v.txType.InitialStatus(),
		LoanID:      v.loanID,
		Party:       v.party,
	}

	loans := cur.Loans
	loansChanged := false

	switch v.rule.Category {
	case models.CategoryFromNewLoan:
		loan := models.Loan{
			ID:           id,
			Type:         v.rule.LoanType,
			Principal:    v.amount,
			InterestRate: v.interestRate,
			Party:        v.party,
			StartDate:    v.date,
			Status:       models.LoanStatusActive,
		}
		loans = append(cloneOrEmpty(cur.Loans), loan)
		if err := s.save(ctx, KeyLoans, loans); err != nil {
			return models.Transaction{}, err
		}
		loansChanged = true
		tx.LoanID = loan.ID
		tx.Category = "Loan with " + v.party
	case models.CategoryFromLoanPayment:
		if loan, ok := findLoan(cur.Loans, v.loanID); ok {
			tx.Category = v.rule.PaymentKind + " to " + loan.Party
		} else {
			logger.Get().Warnw("payment references unknown loan; keeping form category",
				"loan_id", v.loanID,
				"type", v.txType,
			)
		}
	case models.CategoryFromForm:
	}

	txs := make([]models.Transaction, 0, len(cur.Transactions)+1)
	txs = append(txs, tx)
	txs = append(txs, cur.Transactions...)

	if err := s.save(ctx, KeyTransactions, txs); err != nil {
		if loansChanged {
			if rbErr := s.save(ctx, KeyLoans, cloneOrEmpty(cur.Loans)); rbErr != nil {
				logger.Get().Errorw("failed to roll back loan after transaction save failure",
					"loan_id", tx.LoanID,
					"error", rbErr,
				)
			}
		}
		return models.Transaction{}, err
	}

	s.current.Store(&Ledger{Transactions: txs, Budgets: cur.Budgets, Loans: loans})

	logger.Get().Infow("transaction recorded", "id", tx.ID, "type", tx.Type, "amount", tx.Amount.String())
	return tx, nil
}

// DeleteTransaction removes a transaction by id. Unknown ids are ignored.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	idx := indexOfTransaction(cur.Transactions, id)
	if idx < 0 {
		return nil
	}

	txs := make([]models.Transaction, 0, len(cur.Transactions)-1)
	txs = append(txs, cur.Transactions[:idx]...)
	txs = append(txs, cur.Transactions[idx+1:]...)

	if err := s.save(ctx, KeyTransactions, txs); err != nil {
		return err
	}
	s.current.Store(&Ledger{Transactions: txs, Budgets: cur.Budgets, Loans: cur.Loans})

	logger.Get().Infow("transaction deleted", "id", id)
	return nil
}

// Transaction returns the transaction with the given id.
func (s *Store) Transaction(id string) (models.Transaction, error) {
	cur := s.current.Load()
	idx := indexOfTransaction(cur.Transactions, id)
	if idx < 0 {
		return models.Transaction{}, apperrors.ErrTransactionNotFound
	}
	return cur.Transactions[idx], nil
}

// ActiveLoans returns loans that are not paid off, in creation order.
func (s *Store) ActiveLoans() []models.Loan {
	cur := s.current.Load()
	active := []models.Loan{}
	for _, l := range cur.Loans {
		if l.IsActive() {
			active = append(active, l)
		}
	}
	return active
}

func indexOfTransaction(txs []models.Transaction, id string) int {
	for i := range txs {
		if txs[i].ID == id {
			return i
		}
	}
	return -1
}

func findLoan(loans []models.Loan, id string) (models.Loan, bool) {
	for _, l := range loans {
		if l.ID == id {
			return l, true
		}
	}
	return models.Loan{}, false
}

func cloneOrEmpty[T any](in []T) []T {
	out := make([]T, len(in), len(in)+1)
	copy(out, in)
	return out
}
