package core

// BudgetProgress is a project's financial position over a window, compared
// against its budget when one is tracked.
type BudgetProgress struct {
	Project Project
	Income  Money
	Expense Money
	Net     Money
	// Utilization is income over budget, clamped to [0, 1]. It stays zero
	// when the project tracks no budget.
	Utilization float64
}

// ProjectBudgetProgress sums the transactions attributed to the project and
// relates the income to its budget.
func ProjectBudgetProgress(p Project, txs []Transaction) BudgetProgress {
	bp := BudgetProgress{Project: p}
	for _, t := range txs {
		if t.Project != p.Name {
			continue
		}
		switch t.Type {
		case Income:
			bp.Income.Cents += t.Amount.Cents
		case Expense:
			bp.Expense.Cents += t.Amount.Cents
		}
	}
	bp.Net.Cents = bp.Income.Cents - bp.Expense.Cents
	if p.Budget.Cents > 0 {
		bp.Utilization = float64(bp.Income.Cents) / float64(p.Budget.Cents)
		if bp.Utilization > 1 {
			bp.Utilization = 1
		}
	}
	return bp
}
