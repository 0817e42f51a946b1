package xlsx

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"finbook/internal/core"
)

const (
	TransactionsSheet = "Transactions"
	ProjectsSheet     = "Projects"
)

// WriteWorkbook serializes the filtered transaction window and the active
// project set, each into its own named sheet, preserving all entity fields
// in ledger column order. Callers pass transactions date-descending, as the
// store returns them; rows are written in the order given.
func WriteWorkbook(txs []core.Transaction, projects []core.Project) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", TransactionsSheet); err != nil {
		return nil, fmt.Errorf("rename transactions sheet: %w", err)
	}

	header := []any{"id", "date", "type", "category", "project", "description", "amount", "created_at"}
	if err := f.SetSheetRow(TransactionsSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write transactions header: %w", err)
	}
	for i, t := range txs {
		row := []any{
			t.ID,
			t.Date.String(),
			string(t.Type),
			t.Category,
			t.Project,
			t.Description,
			t.Amount.Units(),
			t.CreatedAt.Format(time.RFC3339),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(TransactionsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write transaction row %d: %w", i+1, err)
		}
	}

	if _, err := f.NewSheet(ProjectsSheet); err != nil {
		return nil, fmt.Errorf("create projects sheet: %w", err)
	}
	projHeader := []any{"id", "name", "client", "budget", "status", "created_at"}
	if err := f.SetSheetRow(ProjectsSheet, "A1", &projHeader); err != nil {
		return nil, fmt.Errorf("write projects header: %w", err)
	}
	for i, p := range projects {
		row := []any{
			p.ID,
			p.Name,
			p.Client,
			p.Budget.Units(),
			string(p.Status),
			p.CreatedAt.Format(time.RFC3339),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(ProjectsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write project row %d: %w", i+1, err)
		}
	}

	return f, nil
}
