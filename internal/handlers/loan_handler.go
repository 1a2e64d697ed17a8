package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ledgerly/internal/ledger"
	"ledgerly/internal/models"
)

// LoanHandler serves the loans opened by Loan Taken and Loan Given
// transactions.
type LoanHandler struct {
	ledger ledger.Servicer
}

// NewLoanHandler creates a new LoanHandler.
func NewLoanHandler(ledgerService ledger.Servicer) *LoanHandler {
	return &LoanHandler{ledger: ledgerService}
}

// LoanView is a loan with its outstanding balance.
type LoanView struct {
	models.Loan
	OutstandingBalance string `json:"outstanding_balance"`
}

// LoansResponse lists loans.
type LoansResponse struct {
	Loans []LoanView `json:"loans"`
}

// GetLoans lists loans in creation order.
// @Summary     Get loans
// @Description Active loans are the ones offered when recording a loan or interest payment
// @Tags        loans
// @Produce     json
// @Param       active query bool false "Only loans that are not paid off"
// @Success     200 {object} LoansResponse "Loans"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /loans [get]
func (h *LoanHandler) GetLoans(c *gin.Context) {
	active, err := parseOptionalBool(c, "active")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var loans []models.Loan
	if active != nil && *active {
		loans = h.ledger.ActiveLoans()
	} else {
		loans = h.ledger.Snapshot().Loans
		if active != nil {
			paidOff := make([]models.Loan, 0, len(loans))
			for _, l := range loans {
				if !l.IsActive() {
					paidOff = append(paidOff, l)
				}
			}
			loans = paidOff
		}
	}

	views := make([]LoanView, 0, len(loans))
	for _, l := range loans {
		views = append(views, LoanView{Loan: l, OutstandingBalance: l.OutstandingBalance().StringFixed(2)})
	}
	c.JSON(http.StatusOK, LoansResponse{Loans: views})
}
