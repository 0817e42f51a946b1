// Package services orchestrates ledger operations over the store ports:
// validated interactive writes, lenient bulk import, and read-only reporting
// views over fetched windows.
package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"finbook/internal/core"
	"finbook/internal/ledger"
	"finbook/internal/log"
	"finbook/internal/xlsx"
)

// LedgerService routes mutations through admission checks before anything
// touches the store. No write happens when validation fails.
type LedgerService struct {
	store ledger.Store
}

func NewLedgerService(store ledger.Store) *LedgerService {
	return &LedgerService{store: store}
}

// AddTransaction validates and records one interactively entered
// transaction, returning its store-assigned id.
func (s *LedgerService) AddTransaction(ctx context.Context, t core.Transaction) (int64, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	id, err := s.store.InsertTransaction(ctx, t)
	if err != nil {
		return 0, fmt.Errorf("save transaction: %w", err)
	}
	return id, nil
}

// AddProject validates the candidate project, checks its name against every
// existing project regardless of status, and records it.
func (s *LedgerService) AddProject(ctx context.Context, p core.Project) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	names, err := s.store.ListProjectNames(ctx)
	if err != nil {
		return 0, fmt.Errorf("list project names: %w", err)
	}
	if err := core.CheckProjectName(p.Name, names); err != nil {
		return 0, err
	}
	id, err := s.store.InsertProject(ctx, p)
	if err != nil {
		return 0, fmt.Errorf("save project: %w", err)
	}
	return id, nil
}

// ImportTransactions appends an xlsx batch to the ledger and reports the row
// count. The batch bypasses interactive admission rules on purpose and is
// never deduplicated; a structurally malformed file rejects the whole batch
// before any write.
func (s *LedgerService) ImportTransactions(ctx context.Context, r io.Reader) (int, error) {
	runID := uuid.NewString()

	txs, err := xlsx.ParseTransactions(r)
	if err != nil {
		slog.WarnContext(ctx, "Import batch rejected", log.FieldRunID, runID, log.FieldError, err)
		return 0, err
	}

	n, err := s.store.AppendTransactions(ctx, txs)
	if err != nil {
		return 0, fmt.Errorf("append import batch: %w", err)
	}

	slog.InfoContext(ctx, "Import batch appended", log.FieldRunID, runID, log.FieldRows, n)
	return n, nil
}
