package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spend-dev/spend/internal/period"
	"github.com/spend-dev/spend/internal/summary"
)

func newSummaryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Summary of all expenses",
		Args:  cobra.NoArgs,
		RunE: runE(func(cmd *cobra.Command, args []string) error {
			expenses, err := a.expenses.List()
			if err := a.tolerateCorrupt(err); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(expenses) == 0 {
				fmt.Fprintln(out, "No expenses to summarize.")
				return nil
			}
			s := summary.Of(expenses)
			fmt.Fprintln(out, "Summary of all expenses:")
			fmt.Fprintf(out, "  Total spent: %s\n", a.money(s.Total))
			fmt.Fprintf(out, "  Number of expenses: %d\n", s.Count)
			fmt.Fprintf(out, "  Average expense amount: %s\n", a.money(s.Average))
			return nil
		}),
	}
}

func newSummaryMonthCommand(a *app) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "summary-month <month>",
		Short: "Summary for one month (current year unless --year is given)",
		Args:  typedArgs(monthArg),
		RunE: runE(func(cmd *cobra.Command, args []string) error {
			month, err := parseMonth(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("year") {
				year = a.thisYear()
			}

			expenses, err := a.expenses.List()
			if err := a.tolerateCorrupt(err); err != nil {
				return err
			}
			s := summary.Month(expenses, year, month)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Summary for %s:\n", period.Key(year, month))
			fmt.Fprintf(out, "  Total spent: %s\n", a.money(s.Total))
			fmt.Fprintf(out, "  Number of expenses: %d\n", s.Count)
			if s.Count == 0 {
				fmt.Fprintln(out, "  No expenses recorded for this month.")
			}
			return nil
		}),
	}

	cmd.Flags().IntVar(&year, "year", 0, "year (default current year)")
	return cmd
}

func newSummaryCategoryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary-category <category>",
		Short: "Summary for one category",
		Args:  cobra.ExactArgs(1),
		RunE: runE(func(cmd *cobra.Command, args []string) error {
			category := args[0]
			expenses, err := a.expenses.List()
			if err := a.tolerateCorrupt(err); err != nil {
				return err
			}
			s := summary.Category(expenses, category)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Summary for category '%s':\n", category)
			fmt.Fprintf(out, "  Total spent: %s\n", a.money(s.Total))
			fmt.Fprintf(out, "  Number of expenses: %d\n", s.Count)
			if s.Count == 0 {
				fmt.Fprintln(out, "  No expenses recorded for this category.")
			}
			return nil
		}),
	}
}
