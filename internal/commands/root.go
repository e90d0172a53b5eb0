package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/spend-dev/spend/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	return newRootCommand(time.Now)
}

func newRootCommand(now func() time.Time) *cobra.Command {
	a := &app{now: now}

	rootCmd := &cobra.Command{
		Use:     "spend",
		Short:   "Personal expense tracker",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// help needs no config or stores.
			if cmd.Name() == "help" && cmd.Parent() == cmd.Root() {
				return nil
			}
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./spend.yaml if present)")
	flags.StringVar(&a.expensesPath, "expenses", "", "expense store file")
	flags.StringVar(&a.budgetsPath, "budgets", "", "budget store file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log diagnostics to stderr")

	rootCmd.AddCommand(
		newInitCommand(),
		newAddCommand(a),
		newListCommand(a),
		newUpdateCommand(a),
		newDeleteCommand(a),
		newSummaryCommand(a),
		newSummaryMonthCommand(a),
		newSummaryCategoryCommand(a),
		newFilterCategoryCommand(a),
		newSetBudgetCommand(a),
		newBudgetStatusCommand(a),
		newExportCommand(a),
		newImportCommand(a),
	)

	return rootCmd
}

// runE wraps a command body so that usage is only printed for argument and
// flag errors, not for failures of the operation itself.
func runE(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return fn(cmd, args)
	}
}
