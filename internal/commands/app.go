package commands

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/spend-dev/spend/internal/budget"
	"github.com/spend-dev/spend/internal/config"
	"github.com/spend-dev/spend/internal/expense"
	"github.com/spend-dev/spend/internal/log"
	"github.com/spend-dev/spend/internal/store"
)

// app holds the resolved configuration and the services built from it.
// It is populated once per invocation before a subcommand runs.
type app struct {
	now func() time.Time

	// Persistent flags.
	configPath   string
	expensesPath string
	budgetsPath  string
	verbose      bool

	cfg      *config.Config
	logger   *log.Logger
	expenses *expense.Service
	budgets  *budget.Service
}

func (a *app) setup(cmd *cobra.Command) error {
	_ = godotenv.Load()

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	cfg.ApplyEnv(os.LookupEnv)
	if a.expensesPath != "" {
		cfg.Store.Expenses = a.expensesPath
	}
	if a.budgetsPath != "" {
		cfg.Store.Budgets = a.budgetsPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := log.ParseLevel(cfg.Log.Level)
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = log.New(cmd.ErrOrStderr(), level)
	a.cfg = cfg

	expenseStore := store.NewExpenseStore(cfg.Store.Expenses, a.logger)
	budgetStore := store.NewBudgetStore(cfg.Store.Budgets, a.logger)
	a.expenses = expense.NewService(expenseStore, a.logger, expense.Options{
		DefaultCategory: cfg.Defaults.Category,
		Now:             a.now,
	})
	a.budgets = budget.NewService(budgetStore, expenseStore, a.logger)

	a.logger.WithComponent(log.ComponentConfig).Debug("resolved config",
		"expenses", cfg.Store.Expenses, "budgets", cfg.Store.Budgets)
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	path := a.configPath
	var (
		cfg *config.Config
		err error
	)
	if path == "" {
		path = config.DefaultFile
		cfg, err = config.LoadOptional(path)
	} else {
		cfg, err = config.Load(path)
	}
	if err != nil {
		return nil, err
	}
	cfg.ResolveStorePaths(filepath.Dir(path))
	return cfg, nil
}

// tolerateCorrupt lets read-only commands continue on a corrupt store with
// empty data. Any other error is returned unchanged.
func (a *app) tolerateCorrupt(err error) error {
	if err == nil {
		return nil
	}
	if store.OnlyCorrupt(err) {
		a.logger.WithComponent(log.ComponentStore).Warn("store is corrupt, treating it as empty", "error", err)
		return nil
	}
	return err
}

func (a *app) money(d decimal.Decimal) string {
	return a.cfg.Display.Currency + d.StringFixed(2)
}

func (a *app) thisYear() int {
	return a.now().Year()
}
