package core

// Filter narrows an already-fetched transaction window. An empty criterion
// leaves that axis unconstrained.
type Filter struct {
	Types      []TransactionType
	Categories []string
	Projects   []string
}

// FilterTransactions returns the transactions matching every non-empty
// criterion, preserving input order.
func FilterTransactions(txs []Transaction, f Filter) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if len(f.Types) > 0 && !containsType(f.Types, t.Type) {
			continue
		}
		if len(f.Categories) > 0 && !contains(f.Categories, t.Category) {
			continue
		}
		if len(f.Projects) > 0 && !contains(f.Projects, t.Project) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SumAmounts totals the raw amounts of a transaction set regardless of type.
func SumAmounts(txs []Transaction) Money {
	var cents int64
	for _, t := range txs {
		cents += t.Amount.Cents
	}
	return Money{Cents: cents}
}

// Recent returns the first n transactions of a date-descending window.
func Recent(txs []Transaction, n int) []Transaction {
	if n > len(txs) {
		n = len(txs)
	}
	return txs[:n]
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func containsType(values []TransactionType, v TransactionType) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
