package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/spend-dev/spend/internal/model"
)

// Header is the CSV header for expense exports.
const Header = "id,amount,description,category,date"

// DefaultFilename is where export-csv writes when no filename is given.
const DefaultFilename = "expenses_export.csv"

const (
	numFields = 5
	colID     = 0
	colAmount = 1
	colDesc   = 2
	colCat    = 3
	colDate   = 4
)

// WriteExpenses writes expenses to w, header first, in stored order.
func WriteExpenses(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range expenses {
		if err := cw.Write(MarshalExpense(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadExpenses reads an export file. The header row is required; the id
// column may be blank. Rows in errors are numbered from 1, header excluded.
func ReadExpenses(r io.Reader) ([]model.Expense, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading expenses CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, errors.New("reading expenses CSV: missing header")
	}
	if got := strings.Join(records[0], ","); !strings.EqualFold(got, Header) {
		return nil, fmt.Errorf("reading expenses CSV: unexpected header %q", got)
	}

	var expenses []model.Expense
	for i, rec := range records[1:] {
		e, err := UnmarshalExpense(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

// MarshalExpense converts an Expense to a CSV row.
func MarshalExpense(e model.Expense) []string {
	row := make([]string, numFields)
	row[colID] = strconv.Itoa(e.ID)
	row[colAmount] = e.Amount.StringFixed(2)
	row[colDesc] = e.Description
	row[colCat] = e.Category
	row[colDate] = e.Date
	return row
}

// UnmarshalExpense converts a CSV row to an Expense.
func UnmarshalExpense(record []string) (model.Expense, error) {
	if len(record) != numFields {
		return model.Expense{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	var id int
	if s := strings.TrimSpace(record[colID]); s != "" {
		var err error
		id, err = strconv.Atoi(s)
		if err != nil {
			return model.Expense{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
		}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(record[colAmount]))
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return model.Expense{
		ID:          id,
		Amount:      amount,
		Description: record[colDesc],
		Category:    record[colCat],
		Date:        strings.TrimSpace(record[colDate]),
	}, nil
}

// Export writes expenses to the file at path, replacing any existing file.
func Export(path string, expenses []model.Expense) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := WriteExpenses(f, expenses); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// Import reads expenses from the file at path.
func Import(path string) ([]model.Expense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	expenses, err := ReadExpenses(f)
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", path, err)
	}
	return expenses, nil
}
