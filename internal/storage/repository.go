// Package storage implements the ledger store on SQLite. All filtering goes
// through parameterized queries; query text is never assembled from values.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"finbook/internal/core"
	"finbook/internal/log"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// InsertTransaction implements ledger.TransactionWriter.
func (r *SQLiteRepository) InsertTransaction(ctx context.Context, t core.Transaction) (int64, error) {
	createdAt := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (date, type, category, project, description, amount_cents, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.Date.String(), string(t.Type), t.Category, nullable(t.Project), t.Description,
		t.Amount.Cents, createdAt.Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("transaction id: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		log.FieldID, id,
		log.FieldDate, t.Date.String(),
		log.FieldType, t.Type,
		log.FieldCategory, t.Category,
		log.FieldProject, t.Project,
		log.FieldAmountCents, t.Amount.Cents)

	return id, nil
}

// AppendTransactions implements ledger.TransactionWriter. The batch runs in
// one database transaction so a failed row leaves the ledger untouched.
func (r *SQLiteRepository) AppendTransactions(ctx context.Context, txs []core.Transaction) (int, error) {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import transaction: %w", err)
	}
	defer dbTx.Rollback()

	stmt, err := dbTx.PrepareContext(ctx,
		`INSERT INTO transactions (date, type, category, project, description, amount_cents, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare import insert: %w", err)
	}
	defer stmt.Close()

	createdAt := time.Now().UTC().Format(time.RFC3339)
	for i, t := range txs {
		_, err := stmt.ExecContext(ctx,
			t.Date.String(), string(t.Type), t.Category, nullable(t.Project),
			t.Description, t.Amount.Cents, createdAt)
		if err != nil {
			return 0, fmt.Errorf("append row %d: %w", i+1, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return len(txs), nil
}

// InsertProject implements ledger.ProjectWriter. A name collision surfaces
// as core.DuplicateNameError rather than a raw constraint failure.
func (r *SQLiteRepository) InsertProject(ctx context.Context, p core.Project) (int64, error) {
	status := p.Status
	if status == "" {
		status = core.StatusActive
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (name, client, budget_cents, status, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		p.Name, p.Client, p.Budget.Cents, string(status), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, &core.DuplicateNameError{Name: p.Name}
		}
		return 0, fmt.Errorf("insert project: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("project id: %w", err)
	}

	slog.InfoContext(ctx, "Project saved", log.FieldID, id, log.FieldName, p.Name, log.FieldBudgetCents, p.Budget.Cents)
	return id, nil
}

// QueryTransactions implements ledger.TransactionReader.
func (r *SQLiteRepository) QueryTransactions(ctx context.Context, start, end core.Date) ([]core.Transaction, error) {
	query := `SELECT id, date, type, category, COALESCE(project, ''), COALESCE(description, ''), amount_cents, created_at
	          FROM transactions`
	var args []any
	switch {
	case !start.IsZero() && !end.IsZero():
		query += ` WHERE date BETWEEN ? AND ?`
		args = append(args, start.String(), end.String())
	case !start.IsZero():
		query += ` WHERE date >= ?`
		args = append(args, start.String())
	case !end.IsZero():
		query += ` WHERE date <= ?`
		args = append(args, end.String())
	}
	query += ` ORDER BY date DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var (
			t         core.Transaction
			date      string
			typ       string
			createdAt string
		)
		if err := rows.Scan(&t.ID, &date, &typ, &t.Category, &t.Project, &t.Description,
			&t.Amount.Cents, &createdAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Type = core.TransactionType(typ)
		if t.Date, err = core.ParseDate(date); err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", date, err)
		}
		t.CreatedAt = parseTimestamp(createdAt)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

// CountTransactions implements ledger.TransactionReader.
func (r *SQLiteRepository) CountTransactions(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return count, nil
}

// QueryActiveProjects implements ledger.ProjectReader.
func (r *SQLiteRepository) QueryActiveProjects(ctx context.Context) ([]core.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, COALESCE(client, ''), budget_cents, status, created_at
		 FROM projects WHERE status = ? ORDER BY name`,
		string(core.StatusActive))
	if err != nil {
		return nil, fmt.Errorf("query active projects: %w", err)
	}
	defer rows.Close()

	var out []core.Project
	for rows.Next() {
		var (
			p         core.Project
			status    string
			createdAt string
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Client, &p.Budget.Cents, &status, &createdAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		p.Status = core.ProjectStatus(status)
		p.CreatedAt = parseTimestamp(createdAt)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return out, nil
}

// ListProjectNames implements ledger.ProjectReader.
func (r *SQLiteRepository) ListProjectNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM projects`)
	if err != nil {
		return nil, fmt.Errorf("list project names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan project name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project names: %w", err)
	}
	return names, nil
}

// ArchiveProject retires a project from the active set. Historical
// transactions keep referencing it by name.
func (r *SQLiteRepository) ArchiveProject(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET status = ? WHERE name = ?`,
		string(core.StatusArchived), name)
	if err != nil {
		return fmt.Errorf("archive project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("archive project rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("archive project: no project named %q", name)
	}
	slog.InfoContext(ctx, "Project archived", log.FieldName, name)
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func parseTimestamp(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	// SQLite's CURRENT_TIMESTAMP layout, for rows written outside the app.
	t, _ := time.Parse("2006-01-02 15:04:05", s)
	return t
}
