package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"finbook/internal/core"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show top-line metrics and breakdowns for the window",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		start, end, err := window()
		if err != nil {
			return err
		}
		d, err := a.reports.Dashboard(cmd.Context(), start, end)
		if err != nil {
			return err
		}

		m := d.Metrics
		fmt.Printf("Income   %s\n", money(m.TotalIncome))
		fmt.Printf("Expense  %s\n", money(m.TotalExpense))
		fmt.Printf("Net      %s\n", money(m.NetProfit))
		fmt.Printf("Margin   %.1f%%\n", m.ProfitMargin)

		if len(d.ByProject) > 0 {
			fmt.Println("\nProject profitability:")
			for _, p := range d.ByProject {
				fmt.Printf("  %-24s %s\n", p.Project, money(p.Net))
			}
		}
		if len(d.ExpenseByCategory) > 0 {
			fmt.Println("\nExpenses by category:")
			for _, c := range d.ExpenseByCategory {
				fmt.Printf("  %-24s %s\n", c.Category, money(c.Amount))
			}
		}
		if len(d.Recent) > 0 {
			fmt.Println("\nRecent transactions:")
			for _, t := range d.Recent {
				fmt.Printf("  %s  %-7s %-20s %s\n", t.Date, t.Type, t.Category, money(t.Amount))
			}
		}
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the income statement and monthly pivot for the window",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		start, end, err := window()
		if err != nil {
			return err
		}
		r, err := a.reports.Report(cmd.Context(), start, end)
		if err != nil {
			return err
		}

		fmt.Println("Income:")
		for _, c := range r.Statement.Income {
			fmt.Printf("  %-24s %s\n", c.Category, money(c.Amount))
		}
		fmt.Printf("  total %s\n", money(r.Statement.TotalIncome))
		fmt.Println("Expense:")
		for _, c := range r.Statement.Expense {
			fmt.Printf("  %-24s %s\n", c.Category, money(c.Amount))
		}
		fmt.Printf("  total %s\n", money(r.Statement.TotalExpense))
		fmt.Printf("Net profit: %s\n", money(r.NetProfit))

		if len(r.Monthly) > 0 {
			fmt.Println("\nMonthly:")
			fmt.Printf("  %-8s %12s %12s %12s\n", "month", "income", "expense", "net")
			for _, ms := range r.Monthly {
				fmt.Printf("  %-8s %12s %12s %12s\n",
					ms.Month, money(ms.Income), money(ms.Expense), money(ms.Net))
			}
		}
		return nil
	},
}

var (
	listTypes      []string
	listCategories []string
	listProjects   []string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions in the window, optionally filtered",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		start, end, err := window()
		if err != nil {
			return err
		}
		filter := core.Filter{
			Categories: listCategories,
			Projects:   listProjects,
		}
		for _, t := range listTypes {
			filter.Types = append(filter.Types, core.TransactionType(strings.ToLower(t)))
		}

		txs, sum, err := a.reports.ListTransactions(cmd.Context(), start, end, filter)
		if err != nil {
			return err
		}
		for _, t := range txs {
			fmt.Printf("%4d  %s  %-7s %-20s %-16s %10s  %s\n",
				t.ID, t.Date, t.Type, t.Category, t.Project, money(t.Amount), t.Description)
		}
		fmt.Printf("%d transactions, amount total %s\n", len(txs), money(sum))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringSliceVar(&listTypes, "type", nil, "filter by type (income, expense)")
	listCmd.Flags().StringSliceVar(&listCategories, "category", nil, "filter by category")
	listCmd.Flags().StringSliceVar(&listProjects, "project", nil, "filter by project")
}
