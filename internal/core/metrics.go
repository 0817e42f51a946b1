package core

// Metrics are the top-line figures for a transaction window.
type Metrics struct {
	TotalIncome  Money
	TotalExpense Money
	NetProfit    Money
	// ProfitMargin is net profit over income as a percentage. It is zero
	// whenever there is no income.
	ProfitMargin float64
}

// CalculateMetrics sums the window into income, expense, net profit and
// margin. The sum is commutative, so input order never changes the result,
// and an empty window yields all zeros. Transactions with an unrecognized
// type fall into neither bucket.
func CalculateMetrics(txs []Transaction) Metrics {
	var income, expense int64
	for _, t := range txs {
		switch t.Type {
		case Income:
			income += t.Amount.Cents
		case Expense:
			expense += t.Amount.Cents
		}
	}
	m := Metrics{
		TotalIncome:  Money{Cents: income},
		TotalExpense: Money{Cents: expense},
		NetProfit:    Money{Cents: income - expense},
	}
	if income > 0 {
		m.ProfitMargin = float64(income-expense) / float64(income) * 100
	}
	return m
}
