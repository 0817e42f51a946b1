package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"finbook/internal/backend"
	"finbook/internal/cli"
	"finbook/internal/core"
	"finbook/internal/services"
)

var (
	fromFlag string
	toFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "finbook",
	Short: "Track income and expenses across client projects",
	Long: `finbook records income and expense transactions, optionally attributed
to client projects, and derives summary metrics, per-project profitability
and monthly reports from them. Data can be exchanged as Excel workbooks.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&fromFlag, "from", "", "window start date (YYYY-MM-DD, inclusive)")
	rootCmd.PersistentFlags().StringVar(&toFlag, "to", "", "window end date (YYYY-MM-DD, inclusive)")
}

// window parses the persistent date-range flags. Empty flags leave the
// corresponding bound open.
func window() (core.Date, core.Date, error) {
	var start, end core.Date
	var err error
	if fromFlag != "" {
		if start, err = core.ParseDate(fromFlag); err != nil {
			return core.Date{}, core.Date{}, fmt.Errorf("parse --from: %w", err)
		}
	}
	if toFlag != "" {
		if end, err = core.ParseDate(toFlag); err != nil {
			return core.Date{}, core.Date{}, fmt.Errorf("parse --to: %w", err)
		}
	}
	return start, end, nil
}

type app struct {
	ledger  *services.LedgerService
	reports *services.ReportService
	cleanup func() error
}

func (a *app) close() {
	if a.cleanup != nil {
		_ = a.cleanup()
	}
}

// openApp runs the shared bootstrap: env file, config, logging, backend.
func openApp() (*app, error) {
	cli.LoadEnvFile()
	logger := cli.SetupLogger("info")
	cfg := cli.LoadAndValidateConfig(logger)
	logger = cli.SetupLogger(cfg.LogLevel)

	result, err := backend.Open(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open backend: %w", err)
	}

	reports := services.NewReportService(result.Store)
	reports.SetRecentLimit(cfg.RecentLimit)

	return &app{
		ledger:  services.NewLedgerService(result.Store),
		reports: reports,
		cleanup: result.Cleanup,
	}, nil
}

func money(m core.Money) string {
	return fmt.Sprintf("%.2f", m.Units())
}
