package commands

import (
	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/measurements/internal/printer"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <budget>",
		Short: "Validate a budget file and list its inputs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readBudget(cmd, args[0])
			if err != nil {
				return err
			}

			rows := make([]printer.Row, 0, len(b.Inputs))
			for _, in := range b.Inputs {
				rows = append(rows, printer.Row{Name: in.Name, Value: in.Value, Uncertainty: in.Uncertainty})
				if in.Uncertainty == 0 {
					printer.Warning(cmd.OutOrStdout(), "%s is exact (zero uncertainty)", in.Name)
				}
			}
			printer.Table(cmd.OutOrStdout(), rows)
			printer.Success(cmd.OutOrStdout(), "%d inputs", len(b.Inputs))
			return nil
		},
	}
}
