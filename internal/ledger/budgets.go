package ledger

import (
	"context"
	"fmt"
	"strings"

	"ledgerly/internal/logger"
	"ledgerly/internal/models"
	"ledgerly/internal/uuid"
)

// AddBudget creates a monthly budget for category. Categories are unique
// across budgets (exact, case-sensitive match).
func (s *Store) AddBudget(ctx context.Context, category, limit string) (models.Budget, error) {
	rawLimit := strings.TrimSpace(limit)
	if rawLimit == "" {
		rawLimit = "0"
	}
	parsedLimit, ok := parseAmount(rawLimit)
	if !ok {
		return models.Budget{}, validationError("Invalid limit amount.")
	}

	category = strings.TrimSpace(category)
	if category == "" {
		return models.Budget{}, validationError("Category is required.")
	}
	if !parsedLimit.IsPositive() {
		return models.Budget{}, validationError("Limit must be a positive number.")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	for _, b := range cur.Budgets {
		if b.Category == category {
			return models.Budget{}, validationError(fmt.Sprintf("A budget for '%s' already exists.", category))
		}
	}

	budget := models.Budget{
		ID:       uuid.NewAt(s.now()),
		Category: category,
		Limit:    parsedLimit,
	}
	budgets := append(cloneOrEmpty(cur.Budgets), budget)

	if err := s.save(ctx, KeyBudgets, budgets); err != nil {
		return models.Budget{}, err
	}
	s.current.Store(&Ledger{Transactions: cur.Transactions, Budgets: budgets, Loans: cur.Loans})

	logger.Get().Infow("budget created", "id", budget.ID, "category", category, "limit", parsedLimit.String())
	return budget, nil
}

// DeleteBudget removes a budget by id. Unknown ids are ignored.
func (s *Store) DeleteBudget(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	budgets := make([]models.Budget, 0, len(cur.Budgets))
	for _, b := range cur.Budgets {
		if b.ID != id {
			budgets = append(budgets, b)
		}
	}
	if len(budgets) == len(cur.Budgets) {
		return nil
	}

	if err := s.save(ctx, KeyBudgets, budgets); err != nil {
		return err
	}
	s.current.Store(&Ledger{Transactions: cur.Transactions, Budgets: budgets, Loans: cur.Loans})

	logger.Get().Infow("budget deleted", "id", id)
	return nil
}
