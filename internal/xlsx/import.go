// Package xlsx reads and writes the Excel exchange format for the ledger:
// flat transaction batches on import, a two-sheet workbook on export.
package xlsx

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"finbook/internal/core"
)

// TransactionColumns is the required import header set, in ledger order.
var TransactionColumns = []string{"date", "type", "category", "project", "description", "amount"}

// ParseTransactions reads an import batch from the first sheet of an xlsx
// file. Columns are matched by header name, case-insensitively.
//
// Parsed rows deliberately bypass interactive admission rules: zero amounts
// and unrecognized type labels pass through unchanged, and nothing is
// deduplicated. Only structure is enforced: a missing required column is a
// core.ImportFormatError and rejects the whole batch.
func ParseTransactions(r io.Reader) ([]core.Transaction, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, &core.ImportFormatError{Missing: TransactionColumns}
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, &core.ImportFormatError{Missing: TransactionColumns}
	}

	idx := make(map[string]int)
	for i, h := range rows[0] {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	var missing []string
	for _, col := range TransactionColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &core.ImportFormatError{Missing: missing}
	}

	var out []core.Transaction
	for i, row := range rows[1:] {
		if isRowEmpty(row) {
			continue
		}
		cell := func(col string) string {
			j := idx[col]
			if j < len(row) {
				return strings.TrimSpace(row[j])
			}
			return ""
		}

		date, err := core.ParseDate(cell("date"))
		if err != nil {
			return nil, fmt.Errorf("row %d: parse date %q: %w", i+2, cell("date"), err)
		}
		cents, err := core.ParseAmountCents(cell("amount"))
		if err != nil {
			return nil, fmt.Errorf("row %d: parse amount %q: %w", i+2, cell("amount"), err)
		}

		out = append(out, core.Transaction{
			Date:        date,
			Type:        core.TransactionType(strings.ToLower(cell("type"))),
			Category:    cell("category"),
			Project:     cell("project"),
			Description: cell("description"),
			Amount:      core.Money{Cents: cents},
		})
	}
	return out, nil
}

func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
