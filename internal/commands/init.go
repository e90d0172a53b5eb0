package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spend-dev/spend/internal/config"
	"github.com/spend-dev/spend/internal/log"
	"github.com/spend-dev/spend/internal/model"
	"github.com/spend-dev/spend/internal/store"
)

func newInitCommand() *cobra.Command {
	var currency string
	var category string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a spend.yaml and empty stores",
		Args:  cobra.MaximumNArgs(1),
		// init must work without an existing config, so it skips the root setup.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: runE(func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, currency, category)
		}),
	}

	cmd.Flags().StringVar(&currency, "currency", "$", "currency symbol shown before amounts")
	cmd.Flags().StringVar(&category, "default-category", model.DefaultCategory, "category for expenses added without one")

	return cmd
}

func runInit(cmd *cobra.Command, dir, currency, category string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	cfgPath := filepath.Join(dir, config.DefaultFile)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", cfgPath, err)
	}

	// Write spend.yaml.
	cfg := config.Default()
	cfg.Display.Currency = currency
	cfg.Defaults.Category = category
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Create empty stores, keeping any that already hold data.
	logger := log.Discard()
	expensesPath := filepath.Join(dir, cfg.Store.Expenses)
	if !exists(expensesPath) {
		if err := store.NewExpenseStore(expensesPath, logger).Save(nil); err != nil {
			return fmt.Errorf("writing expense store: %w", err)
		}
	}
	budgetsPath := filepath.Join(dir, cfg.Store.Budgets)
	if !exists(budgetsPath) {
		if err := store.NewBudgetStore(budgetsPath, logger).Save(nil); err != nil {
			return fmt.Errorf("writing budget store: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized spend project at %s\n", dir)
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
