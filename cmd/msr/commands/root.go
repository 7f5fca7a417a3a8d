// Package commands implements the msr CLI for working with uncertainty
// budget files offline.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/measurements/internal/printer"
	"github.com/GriffinCanCode/measurements/internal/providers/math/utilities"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "msr",
		Short: "msr - uncertainty budget tool",
		Long: `msr reads uncertainty budgets (named inputs with value and standard
uncertainty, in YAML, TOML or JSON) and evaluates math tools over them
with first-order propagation of correlated uncertainties.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		FParseErrWhitelist: cobra.FParseErrWhitelist{},
		SilenceErrors:      true,
		SilenceUsage:       true,
	}
	root.AddCommand(newCheckCmd(), newConvertCmd(), newEvalCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func readBudget(cmd *cobra.Command, path string) (utilities.Budget, error) {
	b, err := utilities.ReadBudget(path)
	if err != nil {
		return utilities.Budget{}, printer.Error(cmd.ErrOrStderr(),
			fmt.Sprintf("cannot load budget %s", path), err.Error())
	}
	return b, nil
}
