package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/ledger"
	"ledgerly/internal/models"
	"ledgerly/internal/testutil"
)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/transactions", handler.CreateTransaction)
	r.GET("/transactions", handler.ListTransactions)
	r.GET("/transactions/:id", handler.GetTransaction)
	r.DELETE("/transactions/:id", handler.DeleteTransaction)
	r.POST("/payables/:id/settle", handler.SettlePayable)
	r.POST("/receivables/:id/settle", handler.SettleReceivable)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var gotForm models.TransactionForm
		var gotType models.TransactionType
		svc := &mockLedger{
			addTransactionFn: func(_ context.Context, form models.TransactionForm, txType models.TransactionType) (models.Transaction, error) {
				gotForm, gotType = form, txType
				return models.Transaction{
					ID:       "tx-1",
					Type:     txType,
					Amount:   testutil.Amount(form.Amount),
					Category: form.Category,
					Date:     form.Date,
				}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "POST", "/transactions?type=Expense",
			`{"amount":"120.50","date":"2024-06-01","category":"Food","description":"Groceries"}`)

		assertStatus(t, rec, http.StatusCreated)
		if gotType != models.TransactionTypeExpense {
			t.Errorf("expected type Expense, got %q", gotType)
		}
		if gotForm.Amount != "120.50" || gotForm.Description != "Groceries" {
			t.Errorf("form not passed through: %+v", gotForm)
		}
		tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
		if tx["amount"].(float64) != 120.5 {
			t.Errorf("expected amount 120.5, got %v", tx["amount"])
		}
	})

	t.Run("accepts numeric amount and interest rate", func(t *testing.T) {
		var gotForm models.TransactionForm
		svc := &mockLedger{
			addTransactionFn: func(_ context.Context, form models.TransactionForm, txType models.TransactionType) (models.Transaction, error) {
				gotForm = form
				return models.Transaction{ID: "tx-1", Type: txType}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "POST", "/transactions?type=Loan%20Taken",
			`{"amount":5000,"date":"2024-06-01","party":"Bank","interest_rate":7.5}`)

		assertStatus(t, rec, http.StatusCreated)
		if gotForm.Amount != "5000" || gotForm.InterestRate != "7.5" || gotForm.Party != "Bank" {
			t.Errorf("form not passed through: %+v", gotForm)
		}
	})

	t.Run("returns 400 on missing type", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockLedger{}))

		rec := doRequest(r, "POST", "/transactions", `{"amount":"10","date":"2024-06-01"}`)

		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on unknown type", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockLedger{}))

		rec := doRequest(r, "POST", "/transactions?type=Gift", `{"amount":"10","date":"2024-06-01"}`)

		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on malformed body", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockLedger{}))

		rec := doRequest(r, "POST", "/transactions?type=Income", `{"amount":`)

		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("passes validation errors through", func(t *testing.T) {
		svc := &mockLedger{
			addTransactionFn: func(context.Context, models.TransactionForm, models.TransactionType) (models.Transaction, error) {
				return models.Transaction{}, apperrors.WithMessage(apperrors.ErrValidation, "Amount must be greater than zero.")
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "POST", "/transactions?type=Income", `{"amount":"0","date":"2024-06-01"}`)

		assertStatus(t, rec, http.StatusBadRequest)
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "VALIDATION_ERROR")
		if msg := result["error"].(map[string]interface{})["message"]; msg != "Amount must be greater than zero." {
			t.Errorf("unexpected message %q", msg)
		}
	})

	t.Run("returns 500 when persistence fails", func(t *testing.T) {
		svc := &mockLedger{
			addTransactionFn: func(context.Context, models.TransactionForm, models.TransactionType) (models.Transaction, error) {
				return models.Transaction{}, apperrors.ErrPersistence
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "POST", "/transactions?type=Income", `{"amount":"10","date":"2024-06-01"}`)

		assertStatus(t, rec, http.StatusInternalServerError)
		assertErrorCode(t, parseJSON(t, rec), "PERSISTENCE_ERROR")
	})
}

func TestTransactionHandler_ListTransactions(t *testing.T) {
	snapshot := ledger.Ledger{Transactions: []models.Transaction{
		testutil.Expense("Food", "40", "2024-06-03"),
		testutil.Income("1000", "2024-06-01"),
		testutil.Expense("Rent", "500", "2024-05-28"),
		testutil.Expense("Food", "15", "2024-05-20"),
	}}
	r := setupTransactionRouter(NewTransactionHandler(&mockLedger{snapshot: snapshot}))

	t.Run("returns everything newest first", func(t *testing.T) {
		rec := doRequest(r, "GET", "/transactions", "")

		assertStatus(t, rec, http.StatusOK)
		result := parseJSON(t, rec)
		if result["total_items"].(float64) != 4 {
			t.Errorf("expected 4 items, got %v", result["total_items"])
		}
		data := result["data"].([]interface{})
		if first := data[0].(map[string]interface{}); first["date"] != "2024-06-03" {
			t.Errorf("expected newest first, got %v", first["date"])
		}
	})

	t.Run("filters by category and sorts by amount", func(t *testing.T) {
		rec := doRequest(r, "GET", "/transactions?category=Food&sort_by=amount_asc", "")

		assertStatus(t, rec, http.StatusOK)
		data := parseJSON(t, rec)["data"].([]interface{})
		if len(data) != 2 {
			t.Fatalf("expected 2 items, got %d", len(data))
		}
		if data[0].(map[string]interface{})["amount"].(float64) != 15 {
			t.Errorf("expected smallest first, got %v", data[0])
		}
	})

	t.Run("filters by date range", func(t *testing.T) {
		rec := doRequest(r, "GET", "/transactions?start_date=2024-06-01&end_date=2024-06-30", "")

		assertStatus(t, rec, http.StatusOK)
		if total := parseJSON(t, rec)["total_items"].(float64); total != 2 {
			t.Errorf("expected 2 items in June, got %v", total)
		}
	})

	t.Run("paginates", func(t *testing.T) {
		rec := doRequest(r, "GET", "/transactions?page=2&page_size=3", "")

		assertStatus(t, rec, http.StatusOK)
		result := parseJSON(t, rec)
		if len(result["data"].([]interface{})) != 1 {
			t.Errorf("expected 1 item on page 2, got %v", result["data"])
		}
		if result["total_pages"].(float64) != 2 {
			t.Errorf("expected 2 pages, got %v", result["total_pages"])
		}
	})

	t.Run("returns 400 on invalid sort", func(t *testing.T) {
		rec := doRequest(r, "GET", "/transactions?sort_by=random", "")

		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on malformed date", func(t *testing.T) {
		rec := doRequest(r, "GET", "/transactions?start_date=06/01/2024", "")

		assertStatus(t, rec, http.StatusBadRequest)
	})
}

func TestTransactionHandler_GetTransaction(t *testing.T) {
	t.Run("returns the transaction", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockLedger{}))

		rec := doRequest(r, "GET", "/transactions/abc", "")

		assertStatus(t, rec, http.StatusOK)
		tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
		if tx["id"] != "abc" {
			t.Errorf("expected id abc, got %v", tx["id"])
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockLedger{
			transactionFn: func(string) (models.Transaction, error) {
				return models.Transaction{}, apperrors.ErrTransactionNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "GET", "/transactions/missing", "")

		assertStatus(t, rec, http.StatusNotFound)
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var deleted string
		svc := &mockLedger{
			deleteTransactionFn: func(_ context.Context, id string) error {
				deleted = id
				return nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "DELETE", "/transactions/tx-9", "")

		assertStatus(t, rec, http.StatusOK)
		if deleted != "tx-9" {
			t.Errorf("expected tx-9 deleted, got %q", deleted)
		}
		if msg := parseJSON(t, rec)["message"]; msg != "Transaction deleted successfully" {
			t.Errorf("unexpected message %q", msg)
		}
	})

	t.Run("returns 500 when persistence fails", func(t *testing.T) {
		svc := &mockLedger{
			deleteTransactionFn: func(context.Context, string) error {
				return apperrors.ErrPersistence
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "DELETE", "/transactions/tx-9", "")

		assertStatus(t, rec, http.StatusInternalServerError)
	})
}

func TestTransactionHandler_Settle(t *testing.T) {
	t.Run("settles a payable", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockLedger{}))

		rec := doRequest(r, "POST", "/payables/p-1/settle", "")

		assertStatus(t, rec, http.StatusCreated)
		tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
		if tx["linked_transaction_id"] != "p-1" {
			t.Errorf("expected link to p-1, got %v", tx["linked_transaction_id"])
		}
	})

	t.Run("returns 409 on invalid action", func(t *testing.T) {
		svc := &mockLedger{
			settleReceivableFn: func(context.Context, string) (models.Transaction, error) {
				return models.Transaction{}, apperrors.WithMessage(apperrors.ErrInvalidOperation, "Invalid action.")
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "POST", "/receivables/r-1/settle", "")

		assertStatus(t, rec, http.StatusConflict)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_OPERATION")
	})
}
