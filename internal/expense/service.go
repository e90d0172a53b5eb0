package expense

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spend-dev/spend/internal/log"
	"github.com/spend-dev/spend/internal/model"
	"github.com/spend-dev/spend/internal/period"
)

// Store loads and saves the full expense list.
type Store interface {
	Load() ([]model.Expense, error)
	Save(expenses []model.Expense) error
}

// Options tunes defaults applied by the Service.
type Options struct {
	DefaultCategory string           // used when an expense has no category
	Now             func() time.Time // clock for default dates
}

// Service provides business logic for expense records.
type Service struct {
	store    Store
	category string
	now      func() time.Time
	logger   *log.Logger
}

// NewService creates an expense Service over store.
func NewService(store Store, logger *log.Logger, opts Options) *Service {
	if opts.DefaultCategory == "" {
		opts.DefaultCategory = model.DefaultCategory
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		store:    store,
		category: opts.DefaultCategory,
		now:      opts.Now,
		logger:   logger.WithComponent(log.ComponentExpense),
	}
}

// AddParams holds the fields of a new expense.
type AddParams struct {
	Amount      decimal.Decimal
	Description string
	Category    string // DefaultCategory when empty
	Date        string // today when empty
}

// Add validates and appends a new expense, assigning the next ID.
// Nothing is written when validation fails.
func (s *Service) Add(params AddParams) (model.Expense, error) {
	e := s.withDefaults(model.Expense{
		Amount:      params.Amount,
		Description: params.Description,
		Category:    params.Category,
		Date:        params.Date,
	})
	if err := validateExpense(e); err != nil {
		return model.Expense{}, err
	}

	expenses, err := s.store.Load()
	if err != nil {
		return model.Expense{}, fmt.Errorf("loading expenses: %w", err)
	}

	e.ID = NextID(expenses)
	expenses = append(expenses, e)
	if err := s.store.Save(expenses); err != nil {
		return model.Expense{}, err
	}

	s.logger.Debug("added expense", "id", e.ID, "amount", e.Amount.StringFixed(2), "category", e.Category)
	return e, nil
}

// Import appends rows as new expenses. Row IDs are ignored and reassigned
// from the current maximum. Any invalid row aborts the whole import.
func (s *Service) Import(rows []model.Expense) ([]model.Expense, error) {
	prepared := make([]model.Expense, len(rows))
	for i, row := range rows {
		e := s.withDefaults(row)
		if err := validateExpense(e); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		prepared[i] = e
	}

	expenses, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading expenses: %w", err)
	}

	next := NextID(expenses)
	for i := range prepared {
		prepared[i].ID = next + i
	}
	expenses = append(expenses, prepared...)
	if err := s.store.Save(expenses); err != nil {
		return nil, err
	}

	s.logger.Debug("imported expenses", "count", len(prepared))
	return prepared, nil
}

// List returns every expense in stored order. On a corrupt store the empty
// list is returned together with the error.
func (s *Service) List() ([]model.Expense, error) {
	return s.store.Load()
}

// FilterCategory returns expenses whose category matches, ignoring case.
func (s *Service) FilterCategory(category string) ([]model.Expense, error) {
	expenses, err := s.store.Load()
	return ByCategory(expenses, category), err
}

// Update applies patch to the expense with the given ID. The patch is
// validated as a whole before any field changes. An empty patch still saves.
func (s *Service) Update(id int, patch model.Patch) (model.Expense, error) {
	if err := validatePatch(patch); err != nil {
		return model.Expense{}, err
	}

	expenses, err := s.store.Load()
	if err != nil {
		return model.Expense{}, fmt.Errorf("loading expenses: %w", err)
	}

	for i, e := range expenses {
		if e.ID != id {
			continue
		}
		expenses[i] = patch.Apply(e)
		if err := s.store.Save(expenses); err != nil {
			return model.Expense{}, err
		}
		s.logger.Debug("updated expense", "id", id, "empty_patch", patch.IsEmpty())
		return expenses[i], nil
	}
	return model.Expense{}, fmt.Errorf("expense ID %d: %w", id, ErrNotFound)
}

// Delete removes the expense with the given ID.
func (s *Service) Delete(id int) error {
	expenses, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("loading expenses: %w", err)
	}

	kept := make([]model.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(expenses) {
		return fmt.Errorf("expense ID %d: %w", id, ErrNotFound)
	}

	if err := s.store.Save(kept); err != nil {
		return err
	}
	s.logger.Debug("deleted expense", "id", id)
	return nil
}

func (s *Service) withDefaults(e model.Expense) model.Expense {
	if e.Category == "" {
		e.Category = s.category
	}
	if e.Date == "" {
		e.Date = period.Today(s.now())
	}
	return e
}

// NextID returns one more than the highest ID, or 1 for an empty list.
func NextID(expenses []model.Expense) int {
	maxID := 0
	for _, e := range expenses {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxID + 1
}

// ByCategory returns the expenses in category, ignoring case, in stored order.
func ByCategory(expenses []model.Expense, category string) []model.Expense {
	var out []model.Expense
	for _, e := range expenses {
		if e.InCategory(category) {
			out = append(out, e)
		}
	}
	return out
}

// ByPeriod returns the expenses dated within a "YYYY-MM" key, in stored order.
func ByPeriod(expenses []model.Expense, key string) []model.Expense {
	var out []model.Expense
	for _, e := range expenses {
		if e.InPeriod(key) {
			out = append(out, e)
		}
	}
	return out
}
