package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sergiovallenilla/finanzaspersonales/internal/domain"
	"github.com/sergiovallenilla/finanzaspersonales/internal/infrastructure/config"
	"github.com/sergiovallenilla/finanzaspersonales/internal/usecase"
)

// The engines are pure; keeping the snapshot file current between
// invocations is this layer's job.

func loadOrInitSnapshot(path string) (domain.Snapshot, error) {
	snap, err := loadSnapshot(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Snapshot{}, nil
		}
		return domain.Snapshot{}, err
	}
	return snap, nil
}

func saveSnapshot(path string, snap domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o600)
}

func addCmd(cfg *config.Config, log zerolog.Logger, idGen usecase.IDGenerator) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an income, expense, or debt",
	}

	cmd.PersistentFlags().String("file", cfg.SnapshotPath, "Snapshot JSON file")

	cmd.AddCommand(addIncomeCmd(log, idGen))
	cmd.AddCommand(addExpenseCmd(log, idGen))
	cmd.AddCommand(addDebtCmd(log, idGen))

	return cmd
}

func addIncomeCmd(log zerolog.Logger, idGen usecase.IDGenerator) *cobra.Command {
	var amountStr, desc string

	cmd := &cobra.Command{
		Use:   "income",
		Short: "Record an income event",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			amount, err := parseAmount("amount", amountStr)
			if err != nil {
				return err
			}

			snap, err := loadOrInitSnapshot(file)
			if err != nil {
				return err
			}

			uc := usecase.NewTransactionUseCase(idGen)
			next, tx, err := uc.AddTransaction(snap, usecase.AddTransactionInput{
				Timestamp:   time.Now().UTC(),
				Description: desc,
				Amount:      amount,
				Kind:        domain.KindIncome,
			})
			if err != nil {
				return err
			}

			if err := saveSnapshot(file, next); err != nil {
				return err
			}

			log.Info().Str("id", tx.ID).Str("amount", amount.String()).Msg("income recorded")
			fmt.Fprintln(cmd.OutOrStdout(), tx.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "", "Income amount")
	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func addExpenseCmd(log zerolog.Logger, idGen usecase.IDGenerator) *cobra.Command {
	var (
		amountStr, desc, category string
		fixed, necessary          bool
	)

	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record an expense event",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			amount, err := parseAmount("amount", amountStr)
			if err != nil {
				return err
			}

			detail := &domain.ExpenseDetail{
				CategoryID: category,
				Class:      domain.ExpenseVariable,
				Necessity:  domain.ExpenseDiscretionary,
			}
			if fixed {
				detail.Class = domain.ExpenseFixed
			}
			if necessary {
				detail.Necessity = domain.ExpenseNecessary
			}

			snap, err := loadOrInitSnapshot(file)
			if err != nil {
				return err
			}

			uc := usecase.NewTransactionUseCase(idGen)
			next, tx, err := uc.AddTransaction(snap, usecase.AddTransactionInput{
				Timestamp:   time.Now().UTC(),
				Description: desc,
				Amount:      amount,
				Kind:        domain.KindExpense,
				Expense:     detail,
			})
			if err != nil {
				return err
			}

			if err := saveSnapshot(file, next); err != nil {
				return err
			}

			log.Info().Str("id", tx.ID).Str("category", category).Msg("expense recorded")
			fmt.Fprintln(cmd.OutOrStdout(), tx.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "", "Expense amount")
	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().StringVar(&category, "category", "", "Budget category id (see: finanzas categories)")
	cmd.Flags().BoolVar(&fixed, "fixed", false, "Fixed rather than variable expense")
	cmd.Flags().BoolVar(&necessary, "necessary", false, "Necessary rather than discretionary expense")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func addDebtCmd(log zerolog.Logger, idGen usecase.IDGenerator) *cobra.Command {
	var (
		name, principalStr, aprStr, minPaymentStr string
		term                                      int
	)

	cmd := &cobra.Command{
		Use:   "debt",
		Short: "Register a debt",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")

			input := usecase.AddDebtInput{
				Name:       name,
				TermMonths: term,
				StartedAt:  time.Now().UTC(),
			}
			var err error
			if input.Principal, err = parseAmount("principal", principalStr); err != nil {
				return err
			}
			if input.AnnualRate, err = parseAmount("apr", aprStr); err != nil {
				return err
			}
			if minPaymentStr != "" {
				if input.MinPayment, err = parseAmount("min-payment", minPaymentStr); err != nil {
					return err
				}
			}

			snap, err := loadOrInitSnapshot(file)
			if err != nil {
				return err
			}

			uc := usecase.NewDebtUseCase(idGen)
			next, debt, err := uc.AddDebt(snap, input)
			if err != nil {
				return err
			}

			if err := saveSnapshot(file, next); err != nil {
				return err
			}

			log.Info().Str("id", debt.ID).Str("name", name).Msg("debt registered")
			fmt.Fprintln(cmd.OutOrStdout(), debt.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Debt name")
	cmd.Flags().StringVar(&principalStr, "principal", "", "Principal")
	cmd.Flags().StringVar(&aprStr, "apr", "0", "Annual rate as a fraction")
	cmd.Flags().IntVar(&term, "term", 0, "Term in months")
	cmd.Flags().StringVar(&minPaymentStr, "min-payment", "", "Fixed monthly payment")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("principal")

	return cmd
}

func removeCmd(cfg *config.Config, log zerolog.Logger, idGen usecase.IDGenerator) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a transaction or debt by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			snap, err := loadSnapshot(file)
			if err != nil {
				return err
			}

			next, err := usecase.NewTransactionUseCase(idGen).RemoveTransaction(snap, id)
			if errors.Is(err, domain.ErrTransactionNotFound) {
				next, err = usecase.NewDebtUseCase(idGen).RemoveDebt(snap, id)
			}
			if err != nil {
				return err
			}

			if err := saveSnapshot(file, next); err != nil {
				return err
			}

			log.Info().Str("id", id).Msg("record removed")
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", cfg.SnapshotPath, "Snapshot JSON file")

	return cmd
}

func budgetCmd(cfg *config.Config, log zerolog.Logger) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "budget id=fraction [id=fraction ...]",
		Short: "Set the budget allocation, e.g. finanzas budget o=0.6 a=0.2",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alloc, err := parseAllocationArgs(args)
			if err != nil {
				return err
			}

			snap, err := loadOrInitSnapshot(file)
			if err != nil {
				return err
			}

			next, err := usecase.NewBudgetUseCase().SetAllocation(snap, alloc)
			if err != nil {
				return err
			}

			if err := saveSnapshot(file, next); err != nil {
				return err
			}

			log.Info().Int("categories", len(alloc)).Msg("budget updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", cfg.SnapshotPath, "Snapshot JSON file")

	return cmd
}

func parseAllocationArgs(args []string) (domain.Allocation, error) {
	alloc := make(domain.Allocation, len(args))
	for _, arg := range args {
		id, value, found := strings.Cut(arg, "=")
		if !found || id == "" {
			return nil, fmt.Errorf("invalid allocation %q, want id=fraction", arg)
		}
		frac, err := parseAmount(id, value)
		if err != nil {
			return nil, err
		}
		alloc[id] = frac
	}
	return alloc, nil
}
