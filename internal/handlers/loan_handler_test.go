package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupLoanRouter(handler *LoanHandler) *gin.Engine {
	r := gin.New()
	r.GET("/loans", handler.GetLoans)
	return r
}

func TestLoanHandler_GetLoans(t *testing.T) {
	r := setupLoanRouter(NewLoanHandler(&mockLedger{snapshot: sampleLedger()}))

	tests := []struct {
		name    string
		path    string
		parties []string
	}{
		{"all loans", "/loans", []string{"Bank", "Sam"}},
		{"active only", "/loans?active=true", []string{"Bank"}},
		{"paid off only", "/loans?active=false", []string{"Sam"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(r, "GET", tt.path, "")

			assertStatus(t, rec, http.StatusOK)
			loans := parseJSON(t, rec)["loans"].([]interface{})
			if len(loans) != len(tt.parties) {
				t.Fatalf("expected %d loans, got %v", len(tt.parties), loans)
			}
			for i, party := range tt.parties {
				if got := loans[i].(map[string]interface{})["party"]; got != party {
					t.Errorf("loans[%d].party = %v, want %s", i, got, party)
				}
			}
		})
	}

	t.Run("includes outstanding balance", func(t *testing.T) {
		rec := doRequest(r, "GET", "/loans?active=true", "")

		loan := parseJSON(t, rec)["loans"].([]interface{})[0].(map[string]interface{})
		if loan["outstanding_balance"] != "1000.00" {
			t.Errorf("expected outstanding balance 1000.00, got %v", loan["outstanding_balance"])
		}
	})

	t.Run("returns 400 on bad flag", func(t *testing.T) {
		rec := doRequest(r, "GET", "/loans?active=yes", "")

		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("empty ledger returns an empty list", func(t *testing.T) {
		r := setupLoanRouter(NewLoanHandler(&mockLedger{}))

		rec := doRequest(r, "GET", "/loans?active=true", "")

		assertStatus(t, rec, http.StatusOK)
		if loans := parseJSON(t, rec)["loans"].([]interface{}); len(loans) != 0 {
			t.Errorf("expected no loans, got %v", loans)
		}
	})
}
