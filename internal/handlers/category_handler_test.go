package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupCategoryRouter(handler *CategoryHandler) *gin.Engine {
	r := gin.New()
	r.GET("/categories", handler.GetCategories)
	r.GET("/categories/suggested", handler.GetSuggestedCategories)
	r.GET("/categories/budget", handler.GetBudgetCategories)
	r.GET("/transaction-types", handler.GetTransactionTypes)
	return r
}

func stringsOf(t *testing.T, v interface{}) []string {
	t.Helper()
	items, ok := v.([]interface{})
	if !ok {
		t.Fatalf("expected array, got %T", v)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.(string))
	}
	return out
}

func TestCategoryHandler_GetCategories(t *testing.T) {
	r := setupCategoryRouter(NewCategoryHandler(&mockLedger{snapshot: sampleLedger()}))

	rec := doRequest(r, "GET", "/categories", "")

	assertStatus(t, rec, http.StatusOK)
	got := stringsOf(t, parseJSON(t, rec)["categories"])
	want := []string{"Client", "Food", "Friend", "Rent", "Salary"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("categories[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCategoryHandler_GetSuggestedCategories(t *testing.T) {
	r := setupCategoryRouter(NewCategoryHandler(&mockLedger{}))

	t.Run("returns choices for the type", func(t *testing.T) {
		rec := doRequest(r, "GET", "/categories/suggested?type=Bill%20Payment", "")

		assertStatus(t, rec, http.StatusOK)
		got := stringsOf(t, parseJSON(t, rec)["categories"])
		if len(got) != 5 || got[0] != "Electricity" {
			t.Errorf("unexpected suggestions %v", got)
		}
	})

	t.Run("returns 400 without type", func(t *testing.T) {
		rec := doRequest(r, "GET", "/categories/suggested", "")

		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on unknown type", func(t *testing.T) {
		rec := doRequest(r, "GET", "/categories/suggested?type=Lottery", "")

		assertStatus(t, rec, http.StatusBadRequest)
	})
}

func TestCategoryHandler_GetBudgetCategories(t *testing.T) {
	r := setupCategoryRouter(NewCategoryHandler(&mockLedger{}))

	rec := doRequest(r, "GET", "/categories/budget", "")

	assertStatus(t, rec, http.StatusOK)
	got := stringsOf(t, parseJSON(t, rec)["categories"])
	if len(got) == 0 || got[0] != "Entertainment" {
		t.Errorf("expected sorted expense categories, got %v", got)
	}
}

func TestCategoryHandler_GetTransactionTypes(t *testing.T) {
	r := setupCategoryRouter(NewCategoryHandler(&mockLedger{}))

	rec := doRequest(r, "GET", "/transaction-types", "")

	assertStatus(t, rec, http.StatusOK)
	got := stringsOf(t, parseJSON(t, rec)["types"])
	if len(got) != 11 || got[0] != "Income" || got[10] != "Loan Given" {
		t.Errorf("unexpected types %v", got)
	}
}
