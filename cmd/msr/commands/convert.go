package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/measurements/internal/printer"
	"github.com/GriffinCanCode/measurements/internal/providers/math/utilities"
)

func newConvertCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert <budget>",
		Short: "Re-encode a budget file as YAML, TOML or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := utilities.ParseFormat(to)
			if err != nil {
				return printer.Error(cmd.ErrOrStderr(), "unsupported output format", err.Error())
			}
			b, err := readBudget(cmd, args[0])
			if err != nil {
				return err
			}
			data, err := utilities.EncodeBudget(b, format)
			if err != nil {
				return printer.Error(cmd.ErrOrStderr(), "cannot encode budget", err.Error())
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	cmd.Flags().StringVar(&to, "to", "yaml", "Output format (yaml, toml, json)")
	return cmd
}
