package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"finbook/internal/core"
	"finbook/internal/ledger"
	"finbook/internal/xlsx"
)

// ErrNoTransactions means the selected window holds nothing to export.
var ErrNoTransactions = errors.New("no transactions in the selected window")

// ReportService derives read-only views from a fetched transaction window.
// Every computation is a pure function over the snapshot; re-running it
// never changes the store.
type ReportService struct {
	store       ledger.Store
	recentLimit int
}

func NewReportService(store ledger.Store) *ReportService {
	return &ReportService{store: store, recentLimit: defaultRecentLimit}
}

// SetRecentLimit overrides how many rows the dashboard's recent listing
// shows. Values below one are ignored.
func (s *ReportService) SetRecentLimit(n int) {
	if n > 0 {
		s.recentLimit = n
	}
}

// Dashboard is the landing view: top-line metrics plus the breakdowns shown
// alongside them.
type Dashboard struct {
	Metrics           core.Metrics
	ByProject         []core.ProjectNet
	ExpenseByCategory []core.CategoryAmount
	Recent            []core.Transaction
	Monthly           []core.MonthSummary
}

const defaultRecentLimit = 10

func (s *ReportService) Dashboard(ctx context.Context, start, end core.Date) (Dashboard, error) {
	txs, err := s.store.QueryTransactions(ctx, start, end)
	if err != nil {
		return Dashboard{}, fmt.Errorf("fetch window: %w", err)
	}
	return Dashboard{
		Metrics:           core.CalculateMetrics(txs),
		ByProject:         core.ProjectProfitability(txs),
		ExpenseByCategory: core.ExpenseByCategory(txs),
		Recent:            core.Recent(txs, s.recentLimit),
		Monthly:           core.MonthlyReport(txs),
	}, nil
}

// Report is the income statement view: per-category statements plus the
// monthly pivot.
type Report struct {
	Statement core.Statement
	Monthly   []core.MonthSummary
	NetProfit core.Money
}

func (s *ReportService) Report(ctx context.Context, start, end core.Date) (Report, error) {
	txs, err := s.store.QueryTransactions(ctx, start, end)
	if err != nil {
		return Report{}, fmt.Errorf("fetch window: %w", err)
	}
	stmt := core.CategoryStatement(txs)
	return Report{
		Statement: stmt,
		Monthly:   core.MonthlyReport(txs),
		NetProfit: core.Money{Cents: stmt.TotalIncome.Cents - stmt.TotalExpense.Cents},
	}, nil
}

// BudgetProgress relates every active project to the transactions attributed
// to it within the window.
func (s *ReportService) BudgetProgress(ctx context.Context, start, end core.Date) ([]core.BudgetProgress, error) {
	txs, projects, err := s.fetchWindowAndProjects(ctx, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]core.BudgetProgress, len(projects))
	for i, p := range projects {
		out[i] = core.ProjectBudgetProgress(p, txs)
	}
	return out, nil
}

// ListTransactions applies an in-memory filter to the fetched window and
// totals the surviving amounts.
func (s *ReportService) ListTransactions(ctx context.Context, start, end core.Date, f core.Filter) ([]core.Transaction, core.Money, error) {
	txs, err := s.store.QueryTransactions(ctx, start, end)
	if err != nil {
		return nil, core.Money{}, fmt.Errorf("fetch window: %w", err)
	}
	filtered := core.FilterTransactions(txs, f)
	return filtered, core.SumAmounts(filtered), nil
}

// Export builds the two-sheet workbook for the window. It fails with
// ErrNoTransactions when the window is empty; the workbook is a lossless
// snapshot of the rows as fetched.
func (s *ReportService) Export(ctx context.Context, start, end core.Date) (*excelize.File, error) {
	txs, projects, err := s.fetchWindowAndProjects(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, ErrNoTransactions
	}
	return xlsx.WriteWorkbook(txs, projects)
}

// fetchWindowAndProjects runs the two independent store reads concurrently.
// The aggregations themselves stay synchronous.
func (s *ReportService) fetchWindowAndProjects(ctx context.Context, start, end core.Date) ([]core.Transaction, []core.Project, error) {
	var (
		txs      []core.Transaction
		projects []core.Project
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txs, err = s.store.QueryTransactions(gctx, start, end)
		if err != nil {
			return fmt.Errorf("fetch window: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		projects, err = s.store.QueryActiveProjects(gctx)
		if err != nil {
			return fmt.Errorf("fetch active projects: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return txs, projects, nil
}
