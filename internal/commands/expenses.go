package commands

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/spend-dev/spend/internal/expense"
	"github.com/spend-dev/spend/internal/model"
)

func newAddCommand(a *app) *cobra.Command {
	var amount decimal.Decimal
	var params expense.AddParams

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new expense",
		Args:  cobra.NoArgs,
		RunE: runE(func(cmd *cobra.Command, args []string) error {
			params.Amount = amount
			e, err := a.expenses.Add(params)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added expense #%d: %s - %s [%s] on %s\n",
				e.ID, e.Description, a.money(e.Amount), e.Category, e.Date)
			return nil
		}),
	}

	cmd.Flags().Var(newDecimalValue(&amount), "amount", "expense amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&params.Description, "description", "", "expense description (required)")
	_ = cmd.MarkFlagRequired("description")
	cmd.Flags().StringVar(&params.Category, "category", "", `expense category (default from config, "Other")`)
	cmd.Flags().StringVar(&params.Date, "date", "", "expense date YYYY-MM-DD (default today)")

	return cmd
}

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all expenses",
		Args:  cobra.NoArgs,
		RunE: runE(func(cmd *cobra.Command, args []string) error {
			expenses, err := a.expenses.List()
			if err := a.tolerateCorrupt(err); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(expenses) == 0 {
				fmt.Fprintln(out, "No expenses recorded.")
				return nil
			}
			a.printExpenses(out, expenses)
			return nil
		}),
	}
}

func newUpdateCommand(a *app) *cobra.Command {
	var amount decimal.Decimal
	var description, category, date string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an expense",
		Args:  typedArgs(intArg("ID")),
		RunE: runE(func(cmd *cobra.Command, args []string) error {
			id, err := parseInt("ID", args[0])
			if err != nil {
				return err
			}

			var patch model.Patch
			flags := cmd.Flags()
			if flags.Changed("amount") {
				patch.Amount = &amount
			}
			if flags.Changed("description") {
				patch.Description = &description
			}
			if flags.Changed("category") {
				patch.Category = &category
			}
			if flags.Changed("date") {
				patch.Date = &date
			}

			if _, err := a.expenses.Update(id, patch); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Expense ID %d updated.\n", id)
			return nil
		}),
	}

	cmd.Flags().Var(newDecimalValue(&amount), "amount", "new amount")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().StringVar(&date, "date", "", "new date YYYY-MM-DD")

	return cmd
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Args:  typedArgs(intArg("ID")),
		RunE: runE(func(cmd *cobra.Command, args []string) error {
			id, err := parseInt("ID", args[0])
			if err != nil {
				return err
			}
			if err := a.expenses.Delete(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Expense ID %d deleted.\n", id)
			return nil
		}),
	}
}

func newFilterCategoryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "filter-category <category>",
		Short: "List expenses in a category",
		Args:  cobra.ExactArgs(1),
		RunE: runE(func(cmd *cobra.Command, args []string) error {
			category := args[0]
			expenses, err := a.expenses.FilterCategory(category)
			if err := a.tolerateCorrupt(err); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(expenses) == 0 {
				fmt.Fprintf(out, "No expenses found in category '%s'.\n", category)
				return nil
			}
			a.printExpenses(out, expenses)
			return nil
		}),
	}
}

func (a *app) printExpenses(w io.Writer, expenses []model.Expense) {
	for _, e := range expenses {
		fmt.Fprintf(w, "ID: %d | %s | %s | %s | %s\n", e.ID, a.money(e.Amount), e.Description, e.Category, e.Date)
	}
}
