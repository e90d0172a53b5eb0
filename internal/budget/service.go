package budget

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/spend-dev/spend/internal/log"
	"github.com/spend-dev/spend/internal/model"
	"github.com/spend-dev/spend/internal/period"
	"github.com/spend-dev/spend/internal/summary"
)

// Store loads and saves the full budget map.
type Store interface {
	Load() (model.Budgets, error)
	Save(budgets model.Budgets) error
}

// ExpenseLoader reads the expense list that budgets are compared against.
type ExpenseLoader interface {
	Load() ([]model.Expense, error)
}

// Service manages monthly budgets.
type Service struct {
	budgets  Store
	expenses ExpenseLoader
	logger   *log.Logger
}

// NewService creates a budget Service.
func NewService(budgets Store, expenses ExpenseLoader, logger *log.Logger) *Service {
	return &Service{budgets: budgets, expenses: expenses, logger: logger.WithComponent(log.ComponentBudget)}
}

// Set creates or replaces the budget for year/month and returns its key.
func (s *Service) Set(year, month int, amount decimal.Decimal) (string, error) {
	if err := period.ValidMonth(month); err != nil {
		return "", err
	}
	budgets, err := s.budgets.Load()
	if err != nil {
		return "", fmt.Errorf("loading budgets: %w", err)
	}

	key := period.Key(year, month)
	budgets[key] = amount
	if err := s.budgets.Save(budgets); err != nil {
		return "", err
	}
	s.logger.Debug("set budget", "key", key, "amount", amount.StringFixed(2))
	return key, nil
}

// Status compares spend in a month against its budget.
type Status struct {
	Key       string
	Spent     decimal.Decimal
	Count     int
	Budget    decimal.Decimal
	HasBudget bool
}

// Exceeded reports whether spend is strictly over budget.
func (st Status) Exceeded() bool {
	return st.HasBudget && st.Spent.GreaterThan(st.Budget)
}

// Remaining returns budget minus spend.
func (st Status) Remaining() decimal.Decimal {
	return st.Budget.Sub(st.Spent)
}

// Status returns the budget status for year/month. Load errors from either
// store are returned alongside the best-effort status so callers can decide
// whether to continue.
func (s *Service) Status(year, month int) (Status, error) {
	if err := period.ValidMonth(month); err != nil {
		return Status{}, err
	}
	key := period.Key(year, month)

	budgets, budgetErr := s.budgets.Load()
	expenses, expenseErr := s.expenses.Load()

	sum := summary.Month(expenses, year, month)
	amount, ok := budgets[key]
	st := Status{
		Key:       key,
		Spent:     sum.Total,
		Count:     sum.Count,
		Budget:    amount,
		HasBudget: ok,
	}

	var errs []error
	if budgetErr != nil {
		errs = append(errs, fmt.Errorf("loading budgets: %w", budgetErr))
	}
	if expenseErr != nil {
		errs = append(errs, fmt.Errorf("loading expenses: %w", expenseErr))
	}
	return st, errors.Join(errs...)
}
