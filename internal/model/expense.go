package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCategory is assigned to expenses added without a category.
const DefaultCategory = "Other"

// Expense is one entry in expenses.json.
type Expense struct {
	ID          int
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        string // "YYYY-MM-DD"
}

// expenseJSON is the on-disk shape. Amount is kept as a JSON number.
type expenseJSON struct {
	ID          int         `json:"id"`
	Amount      json.Number `json:"amount"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Date        string      `json:"date"`
}

// MarshalJSON writes the amount as a bare number rather than a quoted string.
func (e Expense) MarshalJSON() ([]byte, error) {
	return json.Marshal(expenseJSON{
		ID:          e.ID,
		Amount:      json.Number(e.Amount.String()),
		Description: e.Description,
		Category:    e.Category,
		Date:        e.Date,
	})
}

// UnmarshalJSON accepts the amount as either a number or a numeric string.
func (e *Expense) UnmarshalJSON(data []byte) error {
	var raw expenseJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	amount, err := decimal.NewFromString(raw.Amount.String())
	if err != nil {
		return fmt.Errorf("expense %d: parsing amount %q: %w", raw.ID, raw.Amount, err)
	}
	*e = Expense{
		ID:          raw.ID,
		Amount:      amount,
		Description: raw.Description,
		Category:    raw.Category,
		Date:        raw.Date,
	}
	return nil
}

// InCategory reports whether the expense belongs to category, ignoring case.
func (e Expense) InCategory(category string) bool {
	return strings.EqualFold(e.Category, category)
}

// InPeriod reports whether the expense date falls in the "YYYY-MM" period key.
func (e Expense) InPeriod(key string) bool {
	return strings.HasPrefix(e.Date, key)
}

// Patch holds the optional fields of an update. Nil fields are left alone.
type Patch struct {
	Amount      *decimal.Decimal
	Description *string
	Category    *string
	Date        *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Amount == nil && p.Description == nil && p.Category == nil && p.Date == nil
}

// Apply returns a copy of e with every supplied field overwritten.
func (p Patch) Apply(e Expense) Expense {
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	return e
}
