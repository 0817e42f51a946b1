package core

import "sort"

// CategoryAmount is an amount aggregated by category name.
type CategoryAmount struct {
	Category string
	Amount   Money
}

// Statement is the per-category income/expense breakdown used by the report
// view, with grand totals per side.
type Statement struct {
	Income       []CategoryAmount
	Expense      []CategoryAmount
	TotalIncome  Money
	TotalExpense Money
}

// ExpenseByCategory sums expense amounts per category, largest first; ties
// break by category name ascending.
func ExpenseByCategory(txs []Transaction) []CategoryAmount {
	out := sumByCategory(txs, Expense)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount.Cents != out[j].Amount.Cents {
			return out[i].Amount.Cents > out[j].Amount.Cents
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// CategoryStatement builds the income and expense statements, each ordered
// by category name ascending.
func CategoryStatement(txs []Transaction) Statement {
	s := Statement{
		Income:  sumByCategory(txs, Income),
		Expense: sumByCategory(txs, Expense),
	}
	sort.Slice(s.Income, func(i, j int) bool { return s.Income[i].Category < s.Income[j].Category })
	sort.Slice(s.Expense, func(i, j int) bool { return s.Expense[i].Category < s.Expense[j].Category })
	for _, c := range s.Income {
		s.TotalIncome.Cents += c.Amount.Cents
	}
	for _, c := range s.Expense {
		s.TotalExpense.Cents += c.Amount.Cents
	}
	return s
}

func sumByCategory(txs []Transaction, typ TransactionType) []CategoryAmount {
	sums := make(map[string]int64)
	for _, t := range txs {
		if t.Type != typ {
			continue
		}
		sums[t.Category] += t.Amount.Cents
	}
	out := make([]CategoryAmount, 0, len(sums))
	for name, cents := range sums {
		out = append(out, CategoryAmount{Category: name, Amount: Money{Cents: cents}})
	}
	return out
}
