package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spend-dev/spend/internal/log"
	"github.com/spend-dev/spend/internal/model"
)

// CorruptStoreError reports a store file that exists but does not parse.
type CorruptStoreError struct {
	Path string
	Err  error
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("store %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptStoreError) Unwrap() error { return e.Err }

// IsCorrupt reports whether err wraps a CorruptStoreError.
func IsCorrupt(err error) bool {
	var ce *CorruptStoreError
	return errors.As(err, &ce)
}

// OnlyCorrupt reports whether err is non-nil and every error it wraps is a
// CorruptStoreError. Such errors leave the caller with usable empty data.
func OnlyCorrupt(err error) bool {
	switch x := err.(type) {
	case nil:
		return false
	case *CorruptStoreError:
		return true
	case interface{ Unwrap() []error }:
		for _, e := range x.Unwrap() {
			if !OnlyCorrupt(e) {
				return false
			}
		}
		return true
	case interface{ Unwrap() error }:
		return OnlyCorrupt(x.Unwrap())
	default:
		return false
	}
}

// ExpenseStore persists the expense list as a JSON array.
type ExpenseStore struct {
	path   string
	logger *log.Logger
}

// NewExpenseStore returns a store backed by the file at path.
func NewExpenseStore(path string, logger *log.Logger) *ExpenseStore {
	return &ExpenseStore{path: path, logger: logger.WithComponent(log.ComponentStore)}
}

// Path returns the backing file path.
func (s *ExpenseStore) Path() string { return s.path }

// Load reads all expenses. A missing file yields an empty list. A file that
// does not parse yields an empty list and a *CorruptStoreError.
func (s *ExpenseStore) Load() ([]model.Expense, error) {
	var expenses []model.Expense
	if err := readJSON(s.path, &expenses); err != nil {
		return []model.Expense{}, err
	}
	if expenses == nil {
		expenses = []model.Expense{}
	}
	s.logger.Debug("loaded expenses", "path", s.path, "count", len(expenses))
	return expenses, nil
}

// Save overwrites the file with the full expense list.
func (s *ExpenseStore) Save(expenses []model.Expense) error {
	if expenses == nil {
		expenses = []model.Expense{}
	}
	if err := writeJSON(s.path, expenses); err != nil {
		return fmt.Errorf("saving expenses: %w", err)
	}
	s.logger.Debug("saved expenses", "path", s.path, "count", len(expenses))
	return nil
}

// BudgetStore persists monthly budgets as a JSON object keyed by "YYYY-MM".
type BudgetStore struct {
	path   string
	logger *log.Logger
}

// NewBudgetStore returns a store backed by the file at path.
func NewBudgetStore(path string, logger *log.Logger) *BudgetStore {
	return &BudgetStore{path: path, logger: logger.WithComponent(log.ComponentStore)}
}

// Path returns the backing file path.
func (s *BudgetStore) Path() string { return s.path }

// Load reads all budgets with the same missing/corrupt rules as ExpenseStore.Load.
func (s *BudgetStore) Load() (model.Budgets, error) {
	var budgets model.Budgets
	if err := readJSON(s.path, &budgets); err != nil {
		return model.Budgets{}, err
	}
	if budgets == nil {
		budgets = model.Budgets{}
	}
	s.logger.Debug("loaded budgets", "path", s.path, "count", len(budgets))
	return budgets, nil
}

// Save overwrites the file with all budgets.
func (s *BudgetStore) Save(budgets model.Budgets) error {
	if budgets == nil {
		budgets = model.Budgets{}
	}
	if err := writeJSON(s.path, budgets); err != nil {
		return fmt.Errorf("saving budgets: %w", err)
	}
	s.logger.Debug("saved budgets", "path", s.path, "count", len(budgets))
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &CorruptStoreError{Path: path, Err: err}
	}
	return nil
}

// writeJSON writes to a temp file in the target directory and renames it into place.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating store dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("setting mode on %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
