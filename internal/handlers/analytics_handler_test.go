package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"ledgerly/internal/ledger"
	"ledgerly/internal/models"
	"ledgerly/internal/testutil"
)

func sampleLedger() ledger.Ledger {
	taken := testutil.Loan(models.LoanTypeTaken, "Bank", "1000")
	paid := testutil.Loan(models.LoanTypeGiven, "Sam", "200")
	paid.Status = models.LoanStatusPaidOff

	return ledger.Ledger{
		Transactions: []models.Transaction{
			testutil.Income("3000", "2024-06-01"),
			testutil.Expense("Food", "120.40", "2024-06-05"),
			testutil.Expense("Rent", "900", "2024-06-02"),
			testutil.Payable("Alex", "50", "2024-06-03"),
			testutil.Receivable("Kim", "75", "2024-06-04"),
			testutil.Expense("Food", "80", "2024-05-12"),
		},
		Budgets: []models.Budget{testutil.Budget("Food", "100")},
		Loans:   []models.Loan{taken, paid},
	}
}

func setupAnalyticsRouter(handler *AnalyticsHandler) *gin.Engine {
	r := gin.New()
	r.GET("/dashboard/summary", handler.GetSummary)
	r.GET("/analytics/income-vs-expense", handler.GetIncomeVsExpense)
	r.GET("/analytics/expense-by-category", handler.GetExpenseByCategory)
	r.GET("/analytics/cash-flow", handler.GetCashFlow)
	return r
}

func TestAnalyticsHandler_GetSummary(t *testing.T) {
	r := setupAnalyticsRouter(NewAnalyticsHandler(&mockLedger{snapshot: sampleLedger()}, clock))

	rec := doRequest(r, "GET", "/dashboard/summary", "")

	assertStatus(t, rec, http.StatusOK)
	result := parseJSON(t, rec)
	want := map[string]float64{
		"total_income":        3000,
		"total_expenses":      1100.4,
		"current_balance":     1899.6,
		"pending_payables":    50,
		"pending_receivables": 75,
	}
	for key, v := range want {
		if result[key].(float64) != v {
			t.Errorf("%s = %v, want %v", key, result[key], v)
		}
	}
}

func TestAnalyticsHandler_GetIncomeVsExpense(t *testing.T) {
	r := setupAnalyticsRouter(NewAnalyticsHandler(&mockLedger{snapshot: sampleLedger()}, clock))

	rec := doRequest(r, "GET", "/analytics/income-vs-expense", "")

	assertStatus(t, rec, http.StatusOK)
	months := parseJSON(t, rec)["months"].([]interface{})
	if len(months) != 6 {
		t.Fatalf("expected 6 months, got %d", len(months))
	}
	first := months[0].(map[string]interface{})
	last := months[5].(map[string]interface{})
	if first["month"] != "Jan 2024" || last["month"] != "Jun 2024" {
		t.Errorf("unexpected window %v .. %v", first["month"], last["month"])
	}
	if last["income"].(float64) != 3000 || last["expense"].(float64) != 1020.4 {
		t.Errorf("unexpected June totals: %v", last)
	}
}

func TestAnalyticsHandler_GetExpenseByCategory(t *testing.T) {
	r := setupAnalyticsRouter(NewAnalyticsHandler(&mockLedger{snapshot: sampleLedger()}, clock))

	rec := doRequest(r, "GET", "/analytics/expense-by-category", "")

	assertStatus(t, rec, http.StatusOK)
	categories := parseJSON(t, rec)["categories"].([]interface{})
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %v", categories)
	}
	food := categories[0].(map[string]interface{})
	if food["name"] != "Food" || food["value"].(float64) != 120 {
		t.Errorf("unexpected first category %v", food)
	}
}

func TestAnalyticsHandler_GetCashFlow(t *testing.T) {
	r := setupAnalyticsRouter(NewAnalyticsHandler(&mockLedger{snapshot: sampleLedger()}, clock))

	rec := doRequest(r, "GET", "/analytics/cash-flow", "")

	assertStatus(t, rec, http.StatusOK)
	points := parseJSON(t, rec)["points"].([]interface{})
	if len(points) != 6 {
		t.Fatalf("expected 6 points, got %d", len(points))
	}
	first := points[0].(map[string]interface{})
	last := points[5].(map[string]interface{})
	if first["date"] != "2024-05-12" || first["balance"].(float64) != -80 {
		t.Errorf("unexpected first point %v", first)
	}
	if last["balance"].(float64) != 1899.6 {
		t.Errorf("unexpected final balance %v", last["balance"])
	}
}

func TestAnalyticsHandler_EmptyLedger(t *testing.T) {
	r := setupAnalyticsRouter(NewAnalyticsHandler(&mockLedger{}, clock))

	rec := doRequest(r, "GET", "/analytics/expense-by-category", "")
	assertStatus(t, rec, http.StatusOK)
	if categories := parseJSON(t, rec)["categories"].([]interface{}); len(categories) != 0 {
		t.Errorf("expected no categories, got %v", categories)
	}

	rec = doRequest(r, "GET", "/analytics/cash-flow", "")
	assertStatus(t, rec, http.StatusOK)
	if points := parseJSON(t, rec)["points"].([]interface{}); len(points) != 0 {
		t.Errorf("expected no points, got %v", points)
	}
}
