package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"finbook/internal/core"
	"finbook/internal/ledger/memory"
	"finbook/internal/xlsx"
)

func seedStore(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	store := memory.New()

	if _, err := store.InsertProject(ctx, core.Project{
		Name: "Alpha", Client: "ACME", Budget: core.Money{Cents: 2000_00},
	}); err != nil {
		t.Fatalf("seed project: %v", err)
	}

	seed := []core.Transaction{
		{Date: core.NewDate(2024, 1, 5), Type: core.Income, Category: "Consulting", Project: "Alpha", Amount: core.Money{Cents: 1000_00}},
		{Date: core.NewDate(2024, 1, 20), Type: core.Expense, Category: "Payroll", Project: "Alpha", Amount: core.Money{Cents: 400_00}},
		{Date: core.NewDate(2024, 2, 3), Type: core.Income, Category: "Advisory", Amount: core.Money{Cents: 300_00}},
		{Date: core.NewDate(2024, 2, 10), Type: core.Expense, Category: "Office", Amount: core.Money{Cents: 100_00}},
	}
	for _, tx := range seed {
		if _, err := store.InsertTransaction(ctx, tx); err != nil {
			t.Fatalf("seed transaction: %v", err)
		}
	}
	return store
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	svc := NewReportService(seedStore(t))

	d, err := svc.Dashboard(ctx, core.Date{}, core.Date{})
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if d.Metrics.TotalIncome.Cents != 1300_00 || d.Metrics.TotalExpense.Cents != 500_00 {
		t.Fatalf("metrics: %+v", d.Metrics)
	}
	if len(d.ByProject) != 1 || d.ByProject[0].Project != "Alpha" || d.ByProject[0].Net.Cents != 600_00 {
		t.Fatalf("profitability: %+v", d.ByProject)
	}
	if len(d.Monthly) != 2 || d.Monthly[0].Month != "2024-01" {
		t.Fatalf("monthly: %+v", d.Monthly)
	}
	if len(d.Recent) != 4 || !d.Recent[0].Date.After(d.Recent[3].Date.Time) {
		t.Fatalf("recent must be newest first: %+v", d.Recent)
	}
}

func TestDashboardWindowFilter(t *testing.T) {
	ctx := context.Background()
	svc := NewReportService(seedStore(t))

	d, err := svc.Dashboard(ctx, core.NewDate(2024, 2, 1), core.NewDate(2024, 2, 28))
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if d.Metrics.TotalIncome.Cents != 300_00 || d.Metrics.TotalExpense.Cents != 100_00 {
		t.Fatalf("window metrics: %+v", d.Metrics)
	}
	if len(d.ByProject) != 0 {
		t.Fatalf("february has no project-scoped rows: %+v", d.ByProject)
	}
}

func TestReportStatement(t *testing.T) {
	ctx := context.Background()
	svc := NewReportService(seedStore(t))

	r, err := svc.Report(ctx, core.Date{}, core.Date{})
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if r.Statement.TotalIncome.Cents != 1300_00 || r.Statement.TotalExpense.Cents != 500_00 {
		t.Fatalf("statement totals: %+v", r.Statement)
	}
	if r.NetProfit.Cents != 800_00 {
		t.Fatalf("net profit: %d", r.NetProfit.Cents)
	}
}

func TestBudgetProgress(t *testing.T) {
	ctx := context.Background()
	svc := NewReportService(seedStore(t))

	bps, err := svc.BudgetProgress(ctx, core.Date{}, core.Date{})
	if err != nil {
		t.Fatalf("budget progress: %v", err)
	}
	if len(bps) != 1 || bps[0].Project.Name != "Alpha" {
		t.Fatalf("expected Alpha only, got %+v", bps)
	}
	if bps[0].Income.Cents != 1000_00 || bps[0].Utilization != 0.5 {
		t.Fatalf("progress: %+v", bps[0])
	}
}

func TestListTransactionsFilter(t *testing.T) {
	ctx := context.Background()
	svc := NewReportService(seedStore(t))

	txs, sum, err := svc.ListTransactions(ctx, core.Date{}, core.Date{},
		core.Filter{Types: []core.TransactionType{core.Expense}})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(txs) != 2 || sum.Cents != 500_00 {
		t.Fatalf("filtered list: %d rows, sum %d", len(txs), sum.Cents)
	}
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	svc := NewReportService(seedStore(t))

	f, err := svc.Export(ctx, core.Date{}, core.Date{})
	if err != nil {
		t.Fatalf("export: %v", err)
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

	rows, err := back.GetRows(xlsx.TransactionsSheet)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected header + 4 transactions, got %d rows", len(rows))
	}
	projRows, err := back.GetRows(xlsx.ProjectsSheet)
	if err != nil {
		t.Fatalf("project rows: %v", err)
	}
	if len(projRows) != 2 {
		t.Fatalf("expected header + 1 project, got %d rows", len(projRows))
	}
}

func TestExportEmptyWindow(t *testing.T) {
	ctx := context.Background()
	svc := NewReportService(memory.New())

	_, err := svc.Export(ctx, core.Date{}, core.Date{})
	if !errors.Is(err, ErrNoTransactions) {
		t.Fatalf("expected ErrNoTransactions, got %v", err)
	}
}
