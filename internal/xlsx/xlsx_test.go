package xlsx

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"finbook/internal/core"
)

func workbookBytes(t *testing.T, header []any, dataRows ...[]any) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		t.Fatalf("header: %v", err)
	}
	for i, row := range dataRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		r := row
		if err := f.SetSheetRow("Sheet1", cell, &r); err != nil {
			t.Fatalf("row %d: %v", i, err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestParseTransactions(t *testing.T) {
	r := workbookBytes(t,
		[]any{"date", "type", "category", "project", "description", "amount"},
		[]any{"2024-03-01", "income", "Consulting", "Alpha", "retainer", "1500.50"},
		[]any{"2024-03-15", "expense", "Office", "", "", "0"},
	)
	got, err := ParseTransactions(r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	first := got[0]
	if first.Date.String() != "2024-03-01" || first.Type != core.Income ||
		first.Project != "Alpha" || first.Amount.Cents != 1500_50 {
		t.Fatalf("row 0: %+v", first)
	}
	// Lenient path: zero amount rows pass through on import.
	if got[1].Amount.Cents != 0 || got[1].Project != "" {
		t.Fatalf("row 1: %+v", got[1])
	}
}

func TestParseTransactionsMissingColumn(t *testing.T) {
	r := workbookBytes(t,
		[]any{"date", "type", "category", "project", "description"}, // no amount
		[]any{"2024-03-01", "income", "Consulting", "", ""},
	)
	_, err := ParseTransactions(r)
	var ferr *core.ImportFormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected ImportFormatError, got %v", err)
	}
	if len(ferr.Missing) != 1 || ferr.Missing[0] != "amount" {
		t.Fatalf("expected missing amount, got %v", ferr.Missing)
	}
}

func TestParseTransactionsHeaderCaseAndUnknownType(t *testing.T) {
	r := workbookBytes(t,
		[]any{"Date", "Type", "Category", "Project", "Description", "Amount"},
		[]any{"2024-01-01", "Transfer", "Misc", "", "", "10"},
	)
	got, err := ParseTransactions(r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// Unrecognized labels are carried, not rejected; they aggregate into
	// neither bucket downstream.
	if got[0].Type != "transfer" {
		t.Fatalf("expected carried type, got %q", got[0].Type)
	}
}

func TestParseTransactionsBadRowRejectsBatch(t *testing.T) {
	r := workbookBytes(t,
		[]any{"date", "type", "category", "project", "description", "amount"},
		[]any{"2024-01-01", "income", "c", "", "", "10"},
		[]any{"not-a-date", "income", "c", "", "", "10"},
	)
	if _, err := ParseTransactions(r); err == nil {
		t.Fatalf("expected error for malformed row")
	}
}

func TestWriteWorkbookRoundTrip(t *testing.T) {
	txs := []core.Transaction{
		{ID: 2, Date: core.NewDate(2024, 3, 15), Type: core.Expense, Category: "Office",
			Amount: core.Money{Cents: 250_00}},
		{ID: 1, Date: core.NewDate(2024, 3, 1), Type: core.Income, Category: "Consulting",
			Project: "Alpha", Description: "retainer", Amount: core.Money{Cents: 1500_50}},
	}
	projects := []core.Project{
		{ID: 1, Name: "Alpha", Client: "ACME", Budget: core.Money{Cents: 10_000_00}, Status: core.StatusActive},
	}

	f, err := WriteWorkbook(txs, projects)
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("serialize: %v", err)
	}

	back, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer back.Close()

	txRows, err := back.GetRows(TransactionsSheet)
	if err != nil {
		t.Fatalf("transactions sheet: %v", err)
	}
	if len(txRows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(txRows))
	}
	if txRows[1][1] != "2024-03-15" {
		t.Fatalf("row order must follow input (date desc), got %v", txRows[1])
	}
	if txRows[2][4] != "Alpha" || txRows[2][6] != "1500.5" {
		t.Fatalf("transaction fields: %v", txRows[2])
	}

	projRows, err := back.GetRows(ProjectsSheet)
	if err != nil {
		t.Fatalf("projects sheet: %v", err)
	}
	if len(projRows) != 2 || projRows[1][1] != "Alpha" || projRows[1][4] != "active" {
		t.Fatalf("project rows: %v", projRows)
	}
}
