package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx>",
	Short: "Append a transaction batch from an Excel file",
	Long: `Appends every row of the workbook's first sheet to the ledger. The batch
bypasses interactive validation and is not deduplicated; importing the same
file twice stores it twice. A file missing a required column is rejected as
a whole.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()

		n, err := a.ledger.ImportTransactions(cmd.Context(), f)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d transactions\n", n)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [file.xlsx]",
	Short: "Write the window and active projects to an Excel workbook",
	Args:  cobra.MaximumNArgs(1),
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
		wb, err := a.reports.Export(cmd.Context(), start, end)
		if err != nil {
			return err
		}

		path := fmt.Sprintf("finbook_%s.xlsx", time.Now().Format("20060102"))
		if len(args) == 1 {
			path = args[0]
		}
		if err := wb.SaveAs(path); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		fmt.Printf("Exported to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
}
