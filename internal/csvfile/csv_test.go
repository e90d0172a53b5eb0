package csvfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spend-dev/spend/internal/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testExpenses() []model.Expense {
	return []model.Expense{
		{ID: 1, Amount: dec("12.5"), Description: "Lunch, with tip", Category: "Food", Date: "2025-01-15"},
		{ID: 3, Amount: dec("900"), Description: `Rent "January"`, Category: "Housing", Date: "2025-01-01"},
	}
}

func TestWriteExpenses_Layout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExpenses(&buf, testExpenses()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, `1,12.50,"Lunch, with tip",Food,2025-01-15`, lines[1])
	assert.Equal(t, `3,900.00,"Rent ""January""",Housing,2025-01-01`, lines[2])
}

func TestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExpenses(&buf, testExpenses()))

	got, err := ReadExpenses(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i, want := range testExpenses() {
		assert.Equal(t, want.ID, got[i].ID)
		assert.True(t, want.Amount.Equal(got[i].Amount))
		assert.Equal(t, want.Description, got[i].Description)
		assert.Equal(t, want.Category, got[i].Category)
		assert.Equal(t, want.Date, got[i].Date)
	}
}

func TestReadExpenses_BlankID(t *testing.T) {
	in := Header + "\n,4.00,Bus,Transport,2025-02-01\n"
	got, err := ReadExpenses(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].ID)
	assert.Equal(t, "4.00", got[0].Amount.StringFixed(2))
}

func TestReadExpenses_HeaderOnly(t *testing.T) {
	got, err := ReadExpenses(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReadExpenses_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr string
	}{
		{"empty", "", "missing header"},
		{"wrong header", "a,b,c,d,e\n", "unexpected header"},
		{"bad amount", Header + "\n1,lots,x,y,2025-01-01\n", "parsing amount"},
		{"bad id", Header + "\nabc,1.00,x,y,2025-01-01\n", "parsing id"},
		{"field count", Header + "\n1,1.00,x\n", "wrong number of fields"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadExpenses(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReadExpenses_RowNumberInError(t *testing.T) {
	in := Header + "\n1,1.00,a,b,2025-01-01\n2,oops,a,b,2025-01-01\n"
	_, err := ReadExpenses(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestUnmarshalExpense_BadFieldCount(t *testing.T) {
	_, err := UnmarshalExpense([]string{"one", "two"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 5 fields")
}

func TestExportImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, Export(path, testExpenses()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), Header+"\n"))

	got, err := Import(path)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestExport_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.csv")
	err := Export(path, testExpenses())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating")
}

func TestImport_MissingFile(t *testing.T) {
	_, err := Import(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
