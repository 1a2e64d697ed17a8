package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"ledgerly/internal/analytics"
	"ledgerly/internal/ledger"
	"ledgerly/internal/models"
	"ledgerly/internal/pagination"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	ledger ledger.Servicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerService ledger.Servicer) *TransactionHandler {
	return &TransactionHandler{ledger: ledgerService}
}

// TransactionListQuery holds the filters accepted by the transaction list and
// the exports.
type TransactionListQuery struct {
	Search    string                 `form:"search"`
	Type      models.TransactionType `form:"type" binding:"omitempty,transaction_type"`
	Category  string                 `form:"category"`
	StartDate string                 `form:"start_date" binding:"omitempty,iso_date"`
	EndDate   string                 `form:"end_date" binding:"omitempty,iso_date"`
	SortBy    analytics.SortOrder    `form:"sort_by" binding:"omitempty,sort_order"`
}

// Filter converts the query into an analytics filter.
func (q TransactionListQuery) Filter() analytics.Filter {
	return analytics.Filter{
		Search:    q.Search,
		Type:      q.Type,
		Category:  q.Category,
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		SortBy:    q.SortBy,
	}
}

// CreateTransactionQuery carries the selected transaction type.
type CreateTransactionQuery struct {
	Type models.TransactionType `form:"type" binding:"required,transaction_type"`
}

// CreateTransactionRequest is the transaction form. Which fields are required
// depends on the transaction type.
type CreateTransactionRequest struct {
	Amount       FormValue `json:"amount" swaggertype:"string" example:"120.50"`
	Date         string    `json:"date" example:"2024-06-01"`
	Category     string    `json:"category" example:"Food"`
	Description  string    `json:"description"`
	Party        string    `json:"party"`
	LoanID       string    `json:"loan_id"`
	InterestRate FormValue `json:"interest_rate" swaggertype:"string"`
}

func (r CreateTransactionRequest) form() models.TransactionForm {
	return models.TransactionForm{
		Amount:       string(r.Amount),
		Date:         r.Date,
		Category:     r.Category,
		Description:  r.Description,
		Party:        r.Party,
		LoanID:       r.LoanID,
		InterestRate: string(r.InterestRate),
	}
}

// TransactionEnvelope wraps a single transaction.
type TransactionEnvelope struct {
	Transaction models.Transaction `json:"transaction"`
}

// CreateTransaction records a new transaction of the selected type.
// @Summary     Create a transaction
// @Description Record a transaction. Loan Taken and Loan Given also open a loan.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       type    query string                   true "Transaction type, e.g. Expense or Loan Taken"
// @Param       request body  CreateTransactionRequest true "Transaction form"
// @Success     201 {object} TransactionEnvelope "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var query CreateTransactionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	tx, err := h.ledger.AddTransaction(c.Request.Context(), req.form(), query.Type)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionEnvelope{Transaction: tx})
}

// ListTransactions returns filtered, sorted and paginated transactions.
// @Summary     List transactions
// @Description Filter by search text, type, category and date range, then sort and paginate
// @Tags        transactions
// @Produce     json
// @Param       search     query string false "Case-insensitive match on description or category"
// @Param       type       query string false "Exact transaction type"
// @Param       category   query string false "Exact category"
// @Param       start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param       end_date   query string false "Inclusive end date (YYYY-MM-DD)"
// @Param       sort_by    query string false "date_asc, date_desc (default), amount_asc or amount_desc"
// @Param       page       query int    false "Page number (default 1)"
// @Param       page_size  query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var query TransactionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	txs := analytics.FilterTransactions(h.ledger.Snapshot(), query.Filter())
	c.JSON(http.StatusOK, pagination.Paginate(txs, page))
}

// GetTransaction returns one transaction.
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} TransactionEnvelope "Transaction details"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.ledger.Transaction(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionEnvelope{Transaction: tx})
}

// DeleteTransaction removes a transaction. Unknown ids succeed.
// @Summary     Delete transaction
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.ledger.DeleteTransaction(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Transaction deleted successfully"})
}

// SettlePayable marks a pending payable as paid.
// @Summary     Settle a payable
// @Description Marks the payable settled and records the Expense that paid it
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Payable transaction ID"
// @Success     201 {object} TransactionEnvelope "Settlement transaction"
// @Failure     409 {object} ErrorResponse "Not a pending payable"
// @Router      /payables/{id}/settle [post]
func (h *TransactionHandler) SettlePayable(c *gin.Context) {
	h.settle(c, h.ledger.SettlePayable)
}

// SettleReceivable marks a pending receivable as received.
// @Summary     Settle a receivable
// @Description Marks the receivable settled and records the Income that cleared it
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Receivable transaction ID"
// @Success     201 {object} TransactionEnvelope "Settlement transaction"
// @Failure     409 {object} ErrorResponse "Not a pending receivable"
// @Router      /receivables/{id}/settle [post]
func (h *TransactionHandler) SettleReceivable(c *gin.Context) {
	h.settle(c, h.ledger.SettleReceivable)
}

func (h *TransactionHandler) settle(c *gin.Context, fn func(ctx context.Context, id string) (models.Transaction, error)) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	settlement, err := fn(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionEnvelope{Transaction: settlement})
}
