// Package ledger owns the transaction, budget and loan collections. Every
// mutation is validated before anything changes, persisted by rewriting the
// whole affected collection, and then published as a new immutable snapshot.
package ledger

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/kvstore"
	"ledgerly/internal/logger"
	"ledgerly/internal/models"
)

// Persistence keys, one JSON array per collection.
const (
	KeyTransactions = "transactions_v2"
	KeyBudgets      = "budgets_v1"
	KeyLoans        = "loans_v1"
)

// Ledger is the aggregate of transactions, budgets and loans at a point in
// time. Transactions are kept most-recent-first.
type Ledger struct {
	Transactions []models.Transaction `json:"transactions"`
	Budgets      []models.Budget      `json:"budgets"`
	Loans        []models.Loan        `json:"loans"`
}

func emptyLedger() *Ledger {
	return &Ledger{
		Transactions: []models.Transaction{},
		Budgets:      []models.Budget{},
		Loans:        []models.Loan{},
	}
}

func (l *Ledger) clone() Ledger {
	return Ledger{
		Transactions: slices.Clone(l.Transactions),
		Budgets:      slices.Clone(l.Budgets),
		Loans:        slices.Clone(l.Loans),
	}
}

// Servicer defines the contract for ledger reads and mutations.
type Servicer interface {
	Load(ctx context.Context) (Ledger, error)
	Snapshot() Ledger
	Transaction(id string) (models.Transaction, error)
	ActiveLoans() []models.Loan
	AddTransaction(ctx context.Context, form models.TransactionForm, txType models.TransactionType) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	SettlePayable(ctx context.Context, id string) (models.Transaction, error)
	SettleReceivable(ctx context.Context, id string) (models.Transaction, error)
	AddBudget(ctx context.Context, category, limit string) (models.Budget, error)
	DeleteBudget(ctx context.Context, id string) error
}

// Store is the single source of truth for one ledger. Mutations are
// serialized; readers take snapshots without locking.
type Store struct {
	blobs kvstore.BlobStore
	now   func() time.Time

	mu      sync.Mutex
	current atomic.Pointer[Ledger]
}

var _ Servicer = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for ids and settlement dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates an empty Store persisting to blobs. Call Load to read
// previously saved data.
func NewStore(blobs kvstore.BlobStore, opts ...Option) *Store {
	s := &Store{blobs: blobs, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.current.Store(emptyLedger())
	return s
}

// Snapshot returns a copy of the current ledger.
func (s *Store) Snapshot() Ledger {
	return s.current.Load().clone()
}

// Load reads all three collections from the blob store. A collection that
// cannot be decoded is replaced by an empty one; the others are unaffected.
func (s *Store) Load(ctx context.Context) (Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := loadCollection(ctx, s.blobs, KeyTransactions, models.Transaction.Validate)
	if err != nil {
		return Ledger{}, err
	}
	budgets, err := loadCollection(ctx, s.blobs, KeyBudgets, models.Budget.Validate)
	if err != nil {
		return Ledger{}, err
	}
	loans, err := loadCollection(ctx, s.blobs, KeyLoans, models.Loan.Validate)
	if err != nil {
		return Ledger{}, err
	}

	l := &Ledger{Transactions: txs, Budgets: budgets, Loans: loans}
	s.current.Store(l)

	logger.Get().Infow("ledger loaded",
		"transactions", len(txs),
		"budgets", len(budgets),
		"loans", len(loans),
	)
	return l.clone(), nil
}

func loadCollection[T any](ctx context.Context, blobs kvstore.BlobStore, key string, validate func(T) error) ([]T, error) {
	raw, ok, err := blobs.Get(ctx, key)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logDecodeFailure(key, err)
		return []T{}, nil
	}
	for _, item := range items {
		if err := validate(item); err != nil {
			logDecodeFailure(key, err)
			return []T{}, nil
		}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func logDecodeFailure(key string, err error) {
	decodeErr := apperrors.Wrap(apperrors.ErrPersistenceDecode, err)
	logger.Get().Warnw("ledger collection discarded",
		"key", key,
		"code", decodeErr.Code,
		"error", err.Error(),
	)
}

// save serializes a whole collection and writes it under key.
func (s *Store) save(ctx context.Context, key string, collection any) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	if err := s.blobs.Set(ctx, key, string(data)); err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	return nil
}

func validationError(message string) error {
	return apperrors.WithMessage(apperrors.ErrValidation, message)
}

func invalidOperation() error {
	return apperrors.WithMessage(apperrors.ErrInvalidOperation, "Invalid action.")
}
