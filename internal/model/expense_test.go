package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseJSON_AmountIsNumber(t *testing.T) {
	e := Expense{ID: 3, Amount: decimal.RequireFromString("12.50"), Description: "Lunch", Category: "Food", Date: "2025-01-15"}

	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"amount":12.5,"description":"Lunch","category":"Food","date":"2025-01-15"}`, string(data))
}

func TestExpenseJSON_AcceptsQuotedAmount(t *testing.T) {
	var e Expense
	err := json.Unmarshal([]byte(`{"id":1,"amount":"7.25","description":"Bus","category":"Transport","date":"2025-02-01"}`), &e)
	require.NoError(t, err)
	assert.True(t, e.Amount.Equal(decimal.RequireFromString("7.25")))
	assert.Equal(t, "Transport", e.Category)
}

func TestExpenseJSON_BadAmount(t *testing.T) {
	var e Expense
	err := json.Unmarshal([]byte(`{"id":1,"description":"Bus"}`), &e)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
}

func TestInCategory(t *testing.T) {
	e := Expense{Category: "Food"}
	assert.True(t, e.InCategory("food"))
	assert.True(t, e.InCategory("FOOD"))
	assert.False(t, e.InCategory("foo"))
}

func TestInPeriod(t *testing.T) {
	e := Expense{Date: "2025-03-09"}
	assert.True(t, e.InPeriod("2025-03"))
	assert.False(t, e.InPeriod("2025-04"))
	assert.False(t, e.InPeriod("2024-03"))
}

func TestPatchApply(t *testing.T) {
	orig := Expense{ID: 1, Amount: decimal.NewFromInt(10), Description: "Coffee", Category: "Food", Date: "2025-01-01"}

	amount := decimal.NewFromInt(12)
	cat := "Drinks"
	got := Patch{Amount: &amount, Category: &cat}.Apply(orig)

	assert.Equal(t, 1, got.ID)
	assert.True(t, got.Amount.Equal(amount))
	assert.Equal(t, "Coffee", got.Description)
	assert.Equal(t, "Drinks", got.Category)
	assert.Equal(t, "2025-01-01", got.Date)

	// Original is untouched.
	assert.Equal(t, "Food", orig.Category)
}

func TestPatchIsEmpty(t *testing.T) {
	assert.True(t, Patch{}.IsEmpty())
	desc := "x"
	assert.False(t, Patch{Description: &desc}.IsEmpty())
}

func TestBudgetsJSON(t *testing.T) {
	b := Budgets{"2025-01": decimal.NewFromInt(100), "2025-02": decimal.RequireFromString("250.75")}

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"2025-01":100,"2025-02":250.75}`, string(data))

	var got Budgets
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 2)
	assert.True(t, got["2025-02"].Equal(b["2025-02"]))
}
