package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"finbook/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "finbook.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestInsertAndQueryTransactions(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	for _, d := range []core.Date{
		core.NewDate(2024, 1, 10),
		core.NewDate(2024, 3, 5),
		core.NewDate(2024, 2, 20),
	} {
		if _, err := repo.InsertTransaction(ctx, core.Transaction{
			Date: d, Type: core.Income, Category: "Consulting", Amount: core.Money{Cents: 100_00},
		}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	got, err := repo.QueryTransactions(ctx, core.Date{}, core.Date{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}
	if got[0].Date.String() != "2024-03-05" || got[2].Date.String() != "2024-01-10" {
		t.Fatalf("expected date-descending order, got %v, %v, %v", got[0].Date, got[1].Date, got[2].Date)
	}
	if got[0].CreatedAt.IsZero() {
		t.Fatalf("created_at must be set on insert")
	}

	window, err := repo.QueryTransactions(ctx, core.NewDate(2024, 2, 1), core.NewDate(2024, 2, 28))
	if err != nil {
		t.Fatalf("window query: %v", err)
	}
	if len(window) != 1 || window[0].Date.String() != "2024-02-20" {
		t.Fatalf("window: %v", window)
	}
}

func TestInsertProjectDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	if _, err := repo.InsertProject(ctx, core.Project{Name: "Alpha", Budget: core.Money{Cents: 500_00}}); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	_, err := repo.InsertProject(ctx, core.Project{Name: "Alpha"})
	var dup *core.DuplicateNameError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateNameError, got %v", err)
	}

	if err := repo.ArchiveProject(ctx, "Alpha"); err != nil {
		t.Fatalf("archive: %v", err)
	}
	if _, err := repo.InsertProject(ctx, core.Project{Name: "Alpha"}); err == nil {
		t.Fatalf("archived project must still reserve its name")
	}

	active, err := repo.QueryActiveProjects(ctx)
	if err != nil {
		t.Fatalf("active projects: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("expected no active projects, got %v", active)
	}
	names, err := repo.ListProjectNames(ctx)
	if err != nil {
		t.Fatalf("names: %v", err)
	}
	if len(names) != 1 || names[0] != "Alpha" {
		t.Fatalf("names must span statuses, got %v", names)
	}
}

func TestAppendTransactionsAtomicBatch(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	batch := []core.Transaction{
		{Date: core.NewDate(2024, 1, 1), Type: core.Income, Category: "c", Amount: core.Money{Cents: 10_00}},
		{Date: core.NewDate(2024, 1, 2), Type: core.Expense, Category: "c", Amount: core.Money{Cents: 0}},
	}
	n, err := repo.AppendTransactions(ctx, batch)
	if err != nil || n != 2 {
		t.Fatalf("append: n=%d err=%v", n, err)
	}
	n, err = repo.AppendTransactions(ctx, batch)
	if err != nil || n != 2 {
		t.Fatalf("re-append: n=%d err=%v", n, err)
	}
	count, err := repo.CountTransactions(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected 4 rows, got %d", count)
	}
}
