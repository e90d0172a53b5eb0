package expense

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/spend-dev/spend/internal/model"
	"github.com/spend-dev/spend/internal/period"
)

// ErrNotFound is returned when no expense has the requested ID.
var ErrNotFound = errors.New("expense not found")

// ValidationError describes a rejected field value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return &ValidationError{Field: "amount", Message: "amount must be positive"}
	}
	return nil
}

func validateDescription(desc string) error {
	if desc == "" {
		return &ValidationError{Field: "description", Message: "description is required"}
	}
	return nil
}

func validateDate(date string) error {
	if _, err := period.ParseDate(date); err != nil {
		return &ValidationError{Field: "date", Message: err.Error()}
	}
	return nil
}

// validateExpense checks a fully populated expense before it is stored.
func validateExpense(e model.Expense) error {
	if err := validateAmount(e.Amount); err != nil {
		return err
	}
	if err := validateDescription(e.Description); err != nil {
		return err
	}
	return validateDate(e.Date)
}

// validatePatch checks every supplied field before any of them is applied.
func validatePatch(p model.Patch) error {
	if p.Amount != nil {
		if err := validateAmount(*p.Amount); err != nil {
			return err
		}
	}
	if p.Date != nil {
		if err := validateDate(*p.Date); err != nil {
			return err
		}
	}
	return nil
}
