package model

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Budgets maps a "YYYY-MM" period key to the spending ceiling for that month.
type Budgets map[string]decimal.Decimal

// MarshalJSON writes each budget as a bare JSON number.
func (b Budgets) MarshalJSON() ([]byte, error) {
	raw := make(map[string]json.Number, len(b))
	for k, v := range b {
		raw[k] = json.Number(v.String())
	}
	return json.Marshal(raw)
}

// UnmarshalJSON accepts numbers or numeric strings as budget values.
func (b *Budgets) UnmarshalJSON(data []byte) error {
	var raw map[string]json.Number
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Budgets, len(raw))
	for k, v := range raw {
		amount, err := decimal.NewFromString(v.String())
		if err != nil {
			return fmt.Errorf("budget %s: parsing amount %q: %w", k, v, err)
		}
		out[k] = amount
	}
	*b = out
	return nil
}
