package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spend-dev/spend/internal/csvfile"
)

func newExportCommand(a *app) *cobra.Command {
	var filename string

	cmd := &cobra.Command{
		Use:   "export-csv",
		Short: "Export all expenses to a CSV file",
		Args:  cobra.NoArgs,
		RunE: runE(func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("filename") {
				filename = a.cfg.Defaults.ExportFile
			}

			expenses, err := a.expenses.List()
			if err := a.tolerateCorrupt(err); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(expenses) == 0 {
				fmt.Fprintln(out, "No expenses to export.")
				return nil
			}

			if err := csvfile.Export(filename, expenses); err != nil {
				return fmt.Errorf("exporting expenses: %w", err)
			}
			fmt.Fprintf(out, "Expenses exported to %s\n", filename)
			return nil
		}),
	}

	cmd.Flags().StringVar(&filename, "filename", csvfile.DefaultFilename, "export filename")
	return cmd
}

func newImportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import-csv <file>",
		Short: "Add expenses from a CSV file in export format",
		Args:  cobra.ExactArgs(1),
		RunE: runE(func(cmd *cobra.Command, args []string) error {
			rows, err := csvfile.Import(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintf(out, "No expenses found in %s.\n", args[0])
				return nil
			}

			added, err := a.expenses.Import(rows)
			if err != nil {
				return fmt.Errorf("importing %s: %w", args[0], err)
			}
			fmt.Fprintf(out, "Imported %d expenses from %s (IDs %d-%d)\n",
				len(added), args[0], added[0].ID, added[len(added)-1].ID)
			return nil
		}),
	}
}
