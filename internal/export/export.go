// Package export writes transaction lists as CSV or XLSX spreadsheets.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"ledgerly/internal/models"
)

// SheetName is the worksheet holding exported transactions.
const SheetName = "Transactions"

// Header is the column row shared by both formats.
var Header = []string{"Date", "Type", "Category", "Description", "Amount", "Status", "Party", "Linked Transaction"}

var columnWidths = []float64{12, 16, 20, 36, 12, 10, 16, 38}

func record(t models.Transaction) []string {
	return []string{
		t.Date,
		string(t.Type),
		t.Category,
		t.Description,
		t.Amount.StringFixed(2),
		string(t.Status),
		t.Party,
		t.LinkedTransactionID,
	}
}

// WriteCSV writes txs as CSV with a UTF-8 BOM so spreadsheet tools pick the
// right encoding.
func WriteCSV(w io.Writer, txs []models.Transaction) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return err
	}
	for _, t := range txs {
		if err := writer.Write(record(t)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteXLSX writes txs to a single-sheet workbook. Amounts are stored as
// numbers so they can be summed in the spreadsheet.
func WriteXLSX(w io.Writer, txs []models.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("remove default sheet: %w", err)
	}

	for i, h := range Header {
		if err := setCell(f, i+1, 1, h); err != nil {
			return err
		}
	}

	for i, t := range txs {
		row := i + 2
		values := record(t)
		for col, v := range values {
			var cell interface{} = v
			if Header[col] == "Amount" {
				cell = t.Amount.InexactFloat64()
			}
			if err := setCell(f, col+1, row, cell); err != nil {
				return err
			}
		}
	}

	for i, width := range columnWidths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, name, name, width); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(SheetName, cell, value)
}
