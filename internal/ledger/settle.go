package ledger

import (
	"context"

	"ledgerly/internal/logger"
	"ledgerly/internal/models"
	"ledgerly/internal/uuid"
)

// SettlePayable marks a pending payable as settled and records the Expense
// that paid it.
func (s *Store) SettlePayable(ctx context.Context, id string) (models.Transaction, error) {
	return s.settle(ctx, id, models.TransactionTypePayables)
}

// SettleReceivable marks a pending receivable as settled and records the
// Income that cleared it.
func (s *Store) SettleReceivable(ctx context.Context, id string) (models.Transaction, error) {
	return s.settle(ctx, id, models.TransactionTypeReceivables)
}

func (s *Store) settle(ctx context.Context, id string, want models.TransactionType) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	idx := indexOfTransaction(cur.Transactions, id)
	if idx < 0 {
		return models.Transaction{}, invalidOperation()
	}
	original := cur.Transactions[idx]
	if original.Type != want {
		return models.Transaction{}, invalidOperation()
	}

	next, err := models.NextStatus(original.Type, original.Status, models.StatusEventSettle)
	if err != nil {
		return models.Transaction{}, invalidOperation()
	}
	shape, ok := models.Settlement(original.Type)
	if !ok {
		return models.Transaction{}, invalidOperation()
	}

	now := s.now()
	settlement := models.Transaction{
		ID:                  uuid.NewAt(now),
		Type:                shape.Type,
		Amount:              original.Amount,
		Category:            models.SettlementCategory,
		Date:                now.Format(models.DateLayout),
		Description:         shape.DescriptionPrefix + original.Description,
		Status:              shape.Status,
		LinkedTransactionID: original.ID,
		Party:               original.Party,
	}

	txs := make([]models.Transaction, 0, len(cur.Transactions)+1)
	txs = append(txs, settlement)
	txs = append(txs, cur.Transactions...)
	txs[idx+1].Status = next

	if err := s.save(ctx, KeyTransactions, txs); err != nil {
		return models.Transaction{}, err
	}
	s.current.Store(&Ledger{Transactions: txs, Budgets: cur.Budgets, Loans: cur.Loans})

	logger.Get().Infow("transaction settled",
		"id", original.ID,
		"type", original.Type,
		"settlement_id", settlement.ID,
	)
	return settlement, nil
}
