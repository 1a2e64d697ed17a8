package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ledgerly/internal/analytics"
	"ledgerly/internal/ledger"
	"ledgerly/internal/models"
)

// CategoryHandler serves category and transaction type choices.
type CategoryHandler struct {
	ledger ledger.Servicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(ledgerService ledger.Servicer) *CategoryHandler {
	return &CategoryHandler{ledger: ledgerService}
}

// SuggestedCategoriesQuery selects the transaction type.
type SuggestedCategoriesQuery struct {
	Type models.TransactionType `form:"type" binding:"required,transaction_type"`
}

// CategoriesResponse lists category names.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// TransactionTypesResponse lists transaction types.
type TransactionTypesResponse struct {
	Types []models.TransactionType `json:"types"`
}

// GetCategories returns every category in use, sorted.
// @Summary     Get categories
// @Tags        categories
// @Produce     json
// @Success     200 {object} CategoriesResponse "Distinct categories"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoriesResponse{Categories: analytics.AllCategories(h.ledger.Snapshot())})
}

// GetSuggestedCategories returns the category choices for a transaction type.
// @Summary     Suggested categories
// @Tags        categories
// @Produce     json
// @Param       type query string true "Transaction type"
// @Success     200 {object} CategoriesResponse "Suggestions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /categories/suggested [get]
func (h *CategoryHandler) GetSuggestedCategories(c *gin.Context) {
	var query SuggestedCategoriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	c.JSON(http.StatusOK, CategoriesResponse{Categories: analytics.SuggestedCategories(query.Type)})
}

// GetBudgetCategories returns the categories a budget can be set for.
// @Summary     Budget categories
// @Tags        categories
// @Produce     json
// @Success     200 {object} CategoriesResponse "Expense categories"
// @Router      /categories/budget [get]
func (h *CategoryHandler) GetBudgetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoriesResponse{Categories: analytics.BudgetCategories()})
}

// GetTransactionTypes returns every transaction type.
// @Summary     Transaction types
// @Tags        categories
// @Produce     json
// @Success     200 {object} TransactionTypesResponse "Types in display order"
// @Router      /transaction-types [get]
func (h *CategoryHandler) GetTransactionTypes(c *gin.Context) {
	c.JSON(http.StatusOK, TransactionTypesResponse{Types: analytics.TransactionTypes()})
}
