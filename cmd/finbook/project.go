package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"finbook/internal/core"
)

var (
	projectName   string
	projectClient string
	projectBudget string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage client projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		var budget core.Money
		if projectBudget != "" {
			cents, err := core.ParseAmountCents(projectBudget)
			if err != nil {
				return fmt.Errorf("parse --budget: %w", err)
			}
			budget = core.Money{Cents: cents}
		}

		id, err := a.ledger.AddProject(cmd.Context(), core.Project{
			Name:   projectName,
			Client: projectClient,
			Budget: budget,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created project %d (%s)\n", id, projectName)
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show active projects with budget progress",
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
		progress, err := a.reports.BudgetProgress(cmd.Context(), start, end)
		if err != nil {
			return err
		}
		if len(progress) == 0 {
			fmt.Println("No active projects.")
			return nil
		}
		for _, bp := range progress {
			fmt.Printf("%s (%s)\n", bp.Project.Name, bp.Project.Client)
			fmt.Printf("  income %s  expense %s  net %s\n",
				money(bp.Income), money(bp.Expense), money(bp.Net))
			if bp.Project.Budget.Cents > 0 {
				fmt.Printf("  budget %s  utilization %.1f%%\n",
					money(bp.Project.Budget), bp.Utilization*100)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)

	projectAddCmd.Flags().StringVar(&projectName, "name", "", "project name (unique)")
	projectAddCmd.Flags().StringVar(&projectClient, "client", "", "client name (optional)")
	projectAddCmd.Flags().StringVar(&projectBudget, "budget", "", "budget in major units (optional)")
	projectAddCmd.MarkFlagRequired("name")
}
