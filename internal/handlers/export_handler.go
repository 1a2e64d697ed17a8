package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"ledgerly/internal/analytics"
	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/export"
	"ledgerly/internal/ledger"
	"ledgerly/internal/models"
)

const (
	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportHandler downloads the filtered transaction view as a spreadsheet.
type ExportHandler struct {
	ledger ledger.Servicer
	now    Clock
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(ledgerService ledger.Servicer, now Clock) *ExportHandler {
	return &ExportHandler{ledger: ledgerService, now: now}
}

// ExportCSV writes the filtered transactions as CSV.
// @Summary     Export transactions as CSV
// @Tags        export
// @Produce     text/csv
// @Param       search     query string false "Case-insensitive match on description or category"
// @Param       type       query string false "Exact transaction type"
// @Param       category   query string false "Exact category"
// @Param       start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param       end_date   query string false "Inclusive end date (YYYY-MM-DD)"
// @Param       sort_by    query string false "Sort order"
// @Success     200 {file} file "CSV file"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /export/transactions.csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	h.export(c, "csv", csvContentType, export.WriteCSV)
}

// ExportXLSX writes the filtered transactions as an Excel workbook.
// @Summary     Export transactions as XLSX
// @Tags        export
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       search     query string false "Case-insensitive match on description or category"
// @Param       type       query string false "Exact transaction type"
// @Param       category   query string false "Exact category"
// @Param       start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param       end_date   query string false "Inclusive end date (YYYY-MM-DD)"
// @Param       sort_by    query string false "Sort order"
// @Success     200 {file} file "XLSX file"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /export/transactions.xlsx [get]
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	h.export(c, "xlsx", xlsxContentType, export.WriteXLSX)
}

func (h *ExportHandler) export(c *gin.Context, ext, contentType string, write func(io.Writer, []models.Transaction) error) {
	var query TransactionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	txs := analytics.FilterTransactions(h.ledger.Snapshot(), query.Filter())

	// Render to a buffer first so a failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := write(&buf, txs); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	filename := fmt.Sprintf("transactions-%s.%s", h.now().Format(models.DateLayout), ext)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
