// Package memory is an in-memory ledger store used by tests and the memory
// backend. It mirrors the SQLite repository's semantics: monotonic ids,
// case-sensitive project name uniqueness, inclusive date windows ordered
// newest first.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"finbook/internal/core"
)

type Store struct {
	mu       sync.Mutex
	txs      []core.Transaction
	projects []core.Project
	nextTxID int64
	nextPrID int64
}

func New() *Store {
	return &Store{nextTxID: 1, nextPrID: 1}
}

// InsertTransaction implements ledger.TransactionWriter.
func (s *Store) InsertTransaction(_ context.Context, t core.Transaction) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.nextTxID
	s.nextTxID++
	t.CreatedAt = time.Now().UTC()
	s.txs = append(s.txs, t)
	return t.ID, nil
}

// AppendTransactions implements ledger.TransactionWriter. The batch is
// appended as a whole; rows are not validated or deduplicated.
func (s *Store) AppendTransactions(_ context.Context, txs []core.Transaction) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	for _, t := range txs {
		t.ID = s.nextTxID
		s.nextTxID++
		t.CreatedAt = now
		s.txs = append(s.txs, t)
	}
	return len(txs), nil
}

// InsertProject implements ledger.ProjectWriter.
func (s *Store) InsertProject(_ context.Context, p core.Project) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.projects {
		if existing.Name == p.Name {
			return 0, &core.DuplicateNameError{Name: p.Name}
		}
	}
	p.ID = s.nextPrID
	s.nextPrID++
	if p.Status == "" {
		p.Status = core.StatusActive
	}
	p.CreatedAt = time.Now().UTC()
	s.projects = append(s.projects, p)
	return p.ID, nil
}

// QueryTransactions implements ledger.TransactionReader.
func (s *Store) QueryTransactions(_ context.Context, start, end core.Date) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, 0, len(s.txs))
	for _, t := range s.txs {
		if !start.IsZero() && t.Date.Before(start.Time) {
			continue
		}
		if !end.IsZero() && t.Date.After(end.Time) {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date.Time) {
			return out[i].Date.After(out[j].Date.Time)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// CountTransactions implements ledger.TransactionReader.
func (s *Store) CountTransactions(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.txs)), nil
}

// QueryActiveProjects implements ledger.ProjectReader.
func (s *Store) QueryActiveProjects(_ context.Context) ([]core.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if p.Status == core.StatusActive {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListProjectNames implements ledger.ProjectReader.
func (s *Store) ListProjectNames(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, len(s.projects))
	for i, p := range s.projects {
		names[i] = p.Name
	}
	return names, nil
}

// ArchiveProject flips a project to archived status. The core never calls
// this; it models the external process that retires projects.
func (s *Store) ArchiveProject(_ context.Context, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.projects {
		if p.Name == name {
			s.projects[i].Status = core.StatusArchived
			return true
		}
	}
	return false
}
