package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sergiovallenilla/finanzaspersonales/internal/domain"
	"github.com/sergiovallenilla/finanzaspersonales/internal/infrastructure/config"
	"github.com/sergiovallenilla/finanzaspersonales/internal/infrastructure/id"
	"github.com/sergiovallenilla/finanzaspersonales/internal/infrastructure/logger"
	"github.com/sergiovallenilla/finanzaspersonales/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	rootCmd := &cobra.Command{
		Use:   "finanzas",
		Short: "Personal budgeting calculator",
		Long:  `Derives envelope balances, debt amortization schedules, and borrowing capacity from a snapshot of transactions, debts, and budget allocations.`,
	}

	idGen := id.NewULIDGenerator()

	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(reportCmd(cfg, log))
	rootCmd.AddCommand(scheduleCmd(log))
	rootCmd.AddCommand(capacityCmd(log))
	rootCmd.AddCommand(addCmd(cfg, log, idGen))
	rootCmd.AddCommand(removeCmd(cfg, log, idGen))
	rootCmd.AddCommand(budgetCmd(cfg, log))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the budget categories",
		Run: func(cmd *cobra.Command, args []string) {
			renderCategories(cmd.OutOrStdout(), domain.Categories())
		},
	}
}

func reportCmd(cfg *config.Config, log zerolog.Logger) *cobra.Command {
	var (
		file   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run the full analysis over a snapshot file",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(file)
			if err != nil {
				return err
			}

			log.Debug().
				Str("file", file).
				Int("transactions", len(snap.Transactions)).
				Int("debts", len(snap.Debts)).
				Msg("snapshot loaded")

			uc := usecase.NewAnalysisUseCase(cfg.ReportWorkers)
			report, err := uc.Report(context.Background(), snap)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			renderReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", cfg.SnapshotPath, "Snapshot JSON file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON")

	return cmd
}

func scheduleCmd(log zerolog.Logger) *cobra.Command {
	var (
		principalStr  string
		aprStr        string
		term          int
		minPaymentStr string
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the amortization schedule for a one-off debt",
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, err := parseAmount("principal", principalStr)
			if err != nil {
				return err
			}
			apr, err := parseAmount("apr", aprStr)
			if err != nil {
				return err
			}

			debt := domain.Debt{
				Name:       "ad-hoc",
				Principal:  principal,
				AnnualRate: apr,
				TermMonths: term,
			}
			if minPaymentStr != "" {
				if debt.MinPayment, err = parseAmount("min-payment", minPaymentStr); err != nil {
					return err
				}
			}

			payment := debt.MonthlyPayment()
			schedule := domain.BuildSchedule(principal, apr, payment)

			if !schedule.PaidOff() {
				log.Warn().
					Str("payment", payment.String()).
					Msg("payment does not amortize the debt within the simulation ceiling")
			}

			renderSchedule(cmd.OutOrStdout(), payment, schedule)
			return nil
		},
	}

	cmd.Flags().StringVar(&principalStr, "principal", "", "Loan principal")
	cmd.Flags().StringVar(&aprStr, "apr", "0", "Annual rate as a fraction, e.g. 0.24")
	cmd.Flags().IntVar(&term, "term", 0, "Term in months")
	cmd.Flags().StringVar(&minPaymentStr, "min-payment", "", "Fixed monthly payment, overrides the term")
	_ = cmd.MarkFlagRequired("principal")

	return cmd
}

func capacityCmd(log zerolog.Logger) *cobra.Command {
	var incomeStr, essentialStr, debtStr string

	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Compute disposable capacity and the DTI risk band",
		RunE: func(cmd *cobra.Command, args []string) error {
			income, err := parseAmount("income", incomeStr)
			if err != nil {
				return err
			}
			essential, err := parseAmount("essential", essentialStr)
			if err != nil {
				return err
			}
			debt, err := parseAmount("debt", debtStr)
			if err != nil {
				return err
			}

			log.Debug().Str("income", income.String()).Msg("computing capacity")

			renderCapacity(cmd.OutOrStdout(), domain.ComputeCapacity(income, essential, debt))
			return nil
		},
	}

	cmd.Flags().StringVar(&incomeStr, "income", "0", "Monthly income")
	cmd.Flags().StringVar(&essentialStr, "essential", "0", "Essential monthly spend")
	cmd.Flags().StringVar(&debtStr, "debt", "0", "Total monthly debt payment")

	return cmd
}

func parseAmount(flag, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s value %q: %w", flag, value, err)
	}
	return d, nil
}

func loadSnapshot(path string) (domain.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Snapshot{}, fmt.Errorf("snapshot file %s does not exist: %w", path, err)
		}
		return domain.Snapshot{}, err
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("invalid snapshot file %s: %w", path, err)
	}

	return snap, nil
}
