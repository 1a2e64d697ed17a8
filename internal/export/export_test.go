package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/xuri/excelize/v2"

	"ledgerly/internal/models"
	"ledgerly/internal/testutil"
)

func sampleTransactions() []models.Transaction {
	payable := testutil.Payable("Alice", "50", "2024-02-01")
	payable.Description = "dinner, split"
	settlement := testutil.Expense("Settlement", "50", "2024-02-03")
	settlement.LinkedTransactionID = payable.ID
	settlement.Status = models.TransactionStatusSettled
	return []models.Transaction{settlement, payable, testutil.Income("1200.5", "2024-01-31")}
}

func TestWriteCSV(t *testing.T) {
	txs := sampleTransactions()
	var buf bytes.Buffer

	testutil.AssertNoError(t, WriteCSV(&buf, txs))

	raw := buf.Bytes()
	if !bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatal("missing BOM")
	}

	rows, err := csv.NewReader(bytes.NewReader(raw[3:])).ReadAll()
	testutil.AssertNoError(t, err)
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}

	testutil.AssertEqual(t, "header", rows[0], Header)
	testutil.AssertEqual(t, "settlement row", rows[1], []string{"2024-02-03", "Expense", "Settlement", "", "50.00", "settled", "", txs[1].ID})
	if rows[2][3] != "dinner, split" {
		t.Errorf("description = %q, want quoted comma preserved", rows[2][3])
	}
	if rows[2][5] != "pending" {
		t.Errorf("status = %q, want pending", rows[2][5])
	}
	if rows[3][4] != "1200.50" {
		t.Errorf("amount = %q, want 1200.50", rows[3][4])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteCSV(&buf, nil))

	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes()[3:])).ReadAll()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, "rows", rows, [][]string{Header})
}

func TestWriteXLSX(t *testing.T) {
	txs := sampleTransactions()
	var buf bytes.Buffer

	testutil.AssertNoError(t, WriteXLSX(&buf, txs))

	f, err := excelize.OpenReader(&buf)
	testutil.AssertNoError(t, err)
	defer f.Close()

	testutil.AssertEqual(t, "sheets", f.GetSheetList(), []string{SheetName})

	rows, err := f.GetRows(SheetName)
	testutil.AssertNoError(t, err)
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}
	testutil.AssertEqual(t, "header", rows[0], Header)
	if rows[1][0] != "2024-02-03" {
		t.Errorf("first date = %q", rows[1][0])
	}
	if rows[2][6] != "Alice" {
		t.Errorf("party = %q, want Alice", rows[2][6])
	}

	amount, err := f.GetCellValue(SheetName, "E4")
	testutil.AssertNoError(t, err)
	if amount != "1200.5" {
		t.Errorf("E4 = %q, want 1200.5", amount)
	}
}
