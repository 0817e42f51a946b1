// Package backend wires a concrete ledger store from configuration.
package backend

import (
	"fmt"

	"finbook/internal/config"
	"finbook/internal/ledger"
	"finbook/internal/ledger/memory"
	"finbook/internal/log"
	"finbook/internal/storage"
)

// CleanupFunc releases whatever the store holds open.
type CleanupFunc func() error

// Result bundles the opened store with its cleanup.
type Result struct {
	Store   ledger.Store
	Cleanup CleanupFunc
}

// Open selects and initializes the configured backend.
func Open(cfg *config.Config, logger *log.Logger) (*Result, error) {
	switch cfg.DataBackend {
	case "sqlite":
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		logger.Info("Initialized backend", log.FieldBackend, "sqlite", log.FieldDBPath, cfg.SQLiteDBPath)
		return &Result{Store: repo, Cleanup: repo.Close}, nil
	case "memory":
		logger.Info("Initialized backend", log.FieldBackend, "memory")
		return &Result{Store: memory.New(), Cleanup: nil}, nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.DataBackend)
	}
}
