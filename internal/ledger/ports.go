// Package ledger defines the ports the reporting engine consumes. The store
// behind them owns durability and write serialization; the engine passes an
// implementation in explicitly and never holds ambient connections.
package ledger

import (
	"context"

	"finbook/internal/core"
)

type (
	TransactionWriter interface {
		// InsertTransaction appends one admitted transaction and returns
		// its store-assigned id.
		InsertTransaction(ctx context.Context, t core.Transaction) (int64, error)

		// AppendTransactions appends a bulk-import batch atomically and
		// returns the number of rows appended. Admission rules are not
		// applied here; import is deliberately lenient.
		AppendTransactions(ctx context.Context, txs []core.Transaction) (int, error)
	}

	ProjectWriter interface {
		// InsertProject creates a project, rejecting duplicate names with
		// core.DuplicateNameError.
		InsertProject(ctx context.Context, p core.Project) (int64, error)
	}

	TransactionReader interface {
		// QueryTransactions returns the window between start and end
		// inclusive, ordered by date descending. A zero bound leaves that
		// side open.
		QueryTransactions(ctx context.Context, start, end core.Date) ([]core.Transaction, error)

		// CountTransactions reports the total number of rows in the ledger.
		CountTransactions(ctx context.Context) (int64, error)
	}

	ProjectReader interface {
		// QueryActiveProjects returns projects whose status is active.
		QueryActiveProjects(ctx context.Context) ([]core.Project, error)

		// ListProjectNames returns every project name regardless of status,
		// for uniqueness checks.
		ListProjectNames(ctx context.Context) ([]string, error)
	}

	// Store bundles the four ports for callers that need the whole ledger.
	Store interface {
		TransactionWriter
		ProjectWriter
		TransactionReader
		ProjectReader
	}
)
