package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSetBudgetCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-budget <month> <year> <amount>",
		Short: "Set the budget for a month",
		Args:  typedArgs(monthArg, intArg("year"), decimalArg),
		RunE: runE(func(cmd *cobra.Command, args []string) error {
			month, err := parseMonth(args[0])
			if err != nil {
				return err
			}
			year, err := parseInt("year", args[1])
			if err != nil {
				return err
			}
			amount, err := parseDecimal(args[2])
			if err != nil {
				return err
			}

			key, err := a.budgets.Set(year, month, amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Budget for %s set to %s\n", key, a.money(amount))
			return nil
		}),
	}

	// Stop flag parsing at the first positional so a negative amount is an arg.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newBudgetStatusCommand(a *app) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "budget-status <month>",
		Short: "Compare a month's spend against its budget",
		Args:  typedArgs(monthArg),
		RunE: runE(func(cmd *cobra.Command, args []string) error {
			month, err := parseMonth(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("year") {
				year = a.thisYear()
			}

			st, err := a.budgets.Status(year, month)
			if err := a.tolerateCorrupt(err); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Budget status for %s:\n", st.Key)
			fmt.Fprintf(out, "  Total spent: %s\n", a.money(st.Spent))
			if !st.HasBudget {
				fmt.Fprintln(out, "  No budget set for this month.")
				return nil
			}
			fmt.Fprintf(out, "  Budget: %s\n", a.money(st.Budget))
			if st.Exceeded() {
				fmt.Fprintln(out, "  WARNING: Budget exceeded!")
			} else {
				fmt.Fprintf(out, "  You have %s left.\n", a.money(st.Remaining()))
			}
			return nil
		}),
	}

	cmd.Flags().IntVar(&year, "year", 0, "year (default current year)")
	return cmd
}
