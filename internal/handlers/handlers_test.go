package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"ledgerly/internal/ledger"
	"ledgerly/internal/logger"
	"ledgerly/internal/models"
	"ledgerly/internal/validator"
)

// --- mock ledger ---

type mockLedger struct {
	snapshot ledger.Ledger

	transactionFn       func(id string) (models.Transaction, error)
	addTransactionFn    func(ctx context.Context, form models.TransactionForm, txType models.TransactionType) (models.Transaction, error)
	deleteTransactionFn func(ctx context.Context, id string) error
	settlePayableFn     func(ctx context.Context, id string) (models.Transaction, error)
	settleReceivableFn  func(ctx context.Context, id string) (models.Transaction, error)
	addBudgetFn         func(ctx context.Context, category, limit string) (models.Budget, error)
	deleteBudgetFn      func(ctx context.Context, id string) error
}

var _ ledger.Servicer = (*mockLedger)(nil)

func (m *mockLedger) Load(context.Context) (ledger.Ledger, error) {
	return m.snapshot, nil
}

func (m *mockLedger) Snapshot() ledger.Ledger {
	return m.snapshot
}

func (m *mockLedger) Transaction(id string) (models.Transaction, error) {
	if m.transactionFn != nil {
		return m.transactionFn(id)
	}
	return models.Transaction{ID: id}, nil
}

func (m *mockLedger) ActiveLoans() []models.Loan {
	var out []models.Loan
	for _, l := range m.snapshot.Loans {
		if l.IsActive() {
			out = append(out, l)
		}
	}
	return out
}

func (m *mockLedger) AddTransaction(ctx context.Context, form models.TransactionForm, txType models.TransactionType) (models.Transaction, error) {
	if m.addTransactionFn != nil {
		return m.addTransactionFn(ctx, form, txType)
	}
	return models.Transaction{ID: "tx-1", Type: txType}, nil
}

func (m *mockLedger) DeleteTransaction(ctx context.Context, id string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(ctx, id)
	}
	return nil
}

func (m *mockLedger) SettlePayable(ctx context.Context, id string) (models.Transaction, error) {
	if m.settlePayableFn != nil {
		return m.settlePayableFn(ctx, id)
	}
	return models.Transaction{ID: "settlement", LinkedTransactionID: id}, nil
}

func (m *mockLedger) SettleReceivable(ctx context.Context, id string) (models.Transaction, error) {
	if m.settleReceivableFn != nil {
		return m.settleReceivableFn(ctx, id)
	}
	return models.Transaction{ID: "settlement", LinkedTransactionID: id}, nil
}

func (m *mockLedger) AddBudget(ctx context.Context, category, limit string) (models.Budget, error) {
	if m.addBudgetFn != nil {
		return m.addBudgetFn(ctx, category, limit)
	}
	return models.Budget{ID: "budget-1", Category: category}, nil
}

func (m *mockLedger) DeleteBudget(ctx context.Context, id string) error {
	if m.deleteBudgetFn != nil {
		return m.deleteBudgetFn(ctx, id)
	}
	return nil
}

// --- helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

var fixedNow = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

func TestFormValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"120.50"`, "120.50"},
		{`120.5`, "120.5"},
		{`""`, ""},
		{`null`, ""},
		{`"abc"`, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var v FormValue
			if err := json.Unmarshal([]byte(tt.in), &v); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(v) != tt.want {
				t.Errorf("got %q, want %q", v, tt.want)
			}
		})
	}

	t.Run("rejects objects", func(t *testing.T) {
		var v FormValue
		if err := json.Unmarshal([]byte(`{"x":1}`), &v); err == nil {
			t.Error("expected error")
		}
	})
}
