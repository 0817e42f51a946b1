package core

import "sort"

// ProjectNet is a project's net contribution over a transaction window.
type ProjectNet struct {
	Project string
	Net     Money
}

// ProjectProfitability groups project-scoped transactions by project name
// and computes income minus expense per group. Transactions without a
// project are excluded entirely (they still count toward global metrics).
// A name with no matching project record is grouped like any other.
//
// The result is sorted by net contribution descending, ties broken by
// project name ascending, so reports are reproducible.
func ProjectProfitability(txs []Transaction) []ProjectNet {
	nets := make(map[string]int64)
	for _, t := range txs {
		if t.Project == "" {
			continue
		}
		if _, ok := nets[t.Project]; !ok {
			nets[t.Project] = 0
		}
		switch t.Type {
		case Income:
			nets[t.Project] += t.Amount.Cents
		case Expense:
			nets[t.Project] -= t.Amount.Cents
		}
	}
	out := make([]ProjectNet, 0, len(nets))
	for name, cents := range nets {
		out = append(out, ProjectNet{Project: name, Net: Money{Cents: cents}})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Net.Cents != out[j].Net.Cents {
			return out[i].Net.Cents > out[j].Net.Cents
		}
		return out[i].Project < out[j].Project
	})
	return out
}
