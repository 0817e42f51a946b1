package core

import "sort"

// MonthSummary is one row of the monthly income/expense pivot.
type MonthSummary struct {
	Month   string // "YYYY-MM"
	Income  Money
	Expense Money
	Net     Money
}

// MonthlyReport buckets the window into calendar months keyed by year and
// month only. Each month present in the input reports both income and
// expense, zero when that type saw no activity; months with no transactions
// at all are omitted rather than interpolated. Rows are ordered by month
// ascending.
func MonthlyReport(txs []Transaction) []MonthSummary {
	type bucket struct {
		income, expense int64
	}
	buckets := make(map[string]*bucket)
	for _, t := range txs {
		key := t.Date.MonthKey()
		b := buckets[key]
		if b == nil {
			b = &bucket{}
			buckets[key] = b
		}
		switch t.Type {
		case Income:
			b.income += t.Amount.Cents
		case Expense:
			b.expense += t.Amount.Cents
		}
	}
	months := make([]string, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]MonthSummary, 0, len(months))
	for _, m := range months {
		b := buckets[m]
		out = append(out, MonthSummary{
			Month:   m,
			Income:  Money{Cents: b.income},
			Expense: Money{Cents: b.expense},
			Net:     Money{Cents: b.income - b.expense},
		})
	}
	return out
}
