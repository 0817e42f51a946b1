package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"finbook/internal/core"
)

var (
	addDate        string
	addType        string
	addCategory    string
	addProject     string
	addDescription string
	addAmount      string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a transaction",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		date, err := core.ParseDate(addDate)
		if err != nil {
			return fmt.Errorf("parse --date: %w", err)
		}
		typ, err := core.ParseTransactionType(addType)
		if err != nil {
			return fmt.Errorf("parse --type: %w", err)
		}
		cents, err := core.ParseAmountCents(addAmount)
		if err != nil {
			return fmt.Errorf("parse --amount: %w", err)
		}

		id, err := a.ledger.AddTransaction(cmd.Context(), core.Transaction{
			Date:        date,
			Type:        typ,
			Category:    addCategory,
			Project:     addProject,
			Description: addDescription,
			Amount:      core.Money{Cents: cents},
		})
		if err != nil {
			return err
		}
		fmt.Printf("Recorded transaction %d\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addDate, "date", "", "transaction date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addType, "type", "", "income or expense")
	addCmd.Flags().StringVar(&addCategory, "category", "", "category label")
	addCmd.Flags().StringVar(&addProject, "project", "", "project name (optional)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "free-text description (optional)")
	addCmd.Flags().StringVar(&addAmount, "amount", "", "amount in major units, e.g. 1500.50")
	addCmd.MarkFlagRequired("date")
	addCmd.MarkFlagRequired("type")
	addCmd.MarkFlagRequired("category")
	addCmd.MarkFlagRequired("amount")
}
