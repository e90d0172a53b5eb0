package commands

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spend-dev/spend/internal/period"
)

// decimalValue is a pflag.Value that parses into a decimal.Decimal.
type decimalValue struct {
	d *decimal.Decimal
}

var _ pflag.Value = (*decimalValue)(nil)

func newDecimalValue(d *decimal.Decimal) *decimalValue {
	return &decimalValue{d: d}
}

func (v *decimalValue) String() string {
	if v.d == nil {
		return ""
	}
	return v.d.String()
}

func (v *decimalValue) Set(s string) error {
	d, err := parseDecimal(s)
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}

func (v *decimalValue) Type() string { return "decimal" }

func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid decimal %q", s)
	}
	return d, nil
}

func parseInt(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", name, s)
	}
	return n, nil
}

func parseMonth(s string) (int, error) {
	month, err := parseInt("month", s)
	if err != nil {
		return 0, err
	}
	if err := period.ValidMonth(month); err != nil {
		return 0, err
	}
	return month, nil
}

// argKind checks one positional argument.
type argKind func(s string) error

func intArg(name string) argKind {
	return func(s string) error {
		_, err := parseInt(name, s)
		return err
	}
}

func monthArg(s string) error {
	_, err := parseMonth(s)
	return err
}

func decimalArg(s string) error {
	_, err := parseDecimal(s)
	return err
}

// typedArgs requires exactly len(kinds) positional args and checks each one.
func typedArgs(kinds ...argKind) cobra.PositionalArgs {
	return cobra.MatchAll(cobra.ExactArgs(len(kinds)), func(cmd *cobra.Command, args []string) error {
		for i, check := range kinds {
			if err := check(args[i]); err != nil {
				return err
			}
		}
		return nil
	})
}
