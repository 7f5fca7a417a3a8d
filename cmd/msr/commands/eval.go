package commands

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/measurements/internal/numdiff"
	"github.com/GriffinCanCode/measurements/internal/printer"
	mathProvider "github.com/GriffinCanCode/measurements/internal/providers/math"
	"github.com/GriffinCanCode/measurements/internal/providers/math/common"
	"github.com/GriffinCanCode/measurements/internal/types"
)

func newEvalCmd() *cobra.Command {
	var (
		formula string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "eval <budget> <tool> [param=value ...]",
		Short: "Evaluate a math tool over the inputs of a budget",
		Long: `Evaluate a math tool with the budget's inputs preloaded by name.

Parameter values are numbers, input names, or comma-separated lists:

  msr eval inputs.yaml math.multiply numbers=length,width
  msr eval inputs.yaml math.power base=length exponent=2

Results carrying an uncertainty are followed by each input's share of
the output variance.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readBudget(cmd, args[0])
			if err != nil {
				return err
			}
			params, err := parseParams(args[2:])
			if err != nil {
				return printer.Error(cmd.ErrOrStderr(), "invalid parameter", err.Error())
			}
			diff, err := numdiff.New(numdiff.Config{Formula: formula})
			if err != nil {
				return printer.Error(cmd.ErrOrStderr(), "invalid formula", err.Error())
			}

			ws := common.NewWorkspace()
			if _, err := b.Load(ws); err != nil {
				return printer.Error(cmd.ErrOrStderr(), "cannot load budget", err.Error())
			}
			p := mathProvider.NewProvider(ws, diff, nil, nil)

			res, err := execute(cmd.Context(), p, args[1], params)
			if err != nil {
				return printer.Error(cmd.ErrOrStderr(), fmt.Sprintf("%s failed", args[1]), err.Error())
			}

			if asJSON {
				data, err := sonic.MarshalIndent(res.Data, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			return report(cmd, p, args[1], res.Data)
		},
	}
	cmd.Flags().StringVar(&formula, "formula", "central", "Finite-difference formula (central, forward, backward)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the raw result as JSON")
	return cmd
}

func execute(ctx context.Context, p *mathProvider.Provider, tool string, params map[string]interface{}) (*types.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := p.Execute(ctx, tool, params, nil)
	if err != nil {
		return nil, err
	}
	if !res.Success {
		msg := "unknown error"
		if res.Error != nil {
			msg = *res.Error
		}
		return nil, fmt.Errorf("%s", msg)
	}
	return res, nil
}

func report(cmd *cobra.Command, p *mathProvider.Provider, tool string, data map[string]interface{}) error {
	out := cmd.OutOrStdout()

	handle, ok := data["id"].(string)
	if !ok || data["uncertainty"] == nil {
		keys := make([]string, 0, len(data))
		for k := range data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "%s: %v\n", k, data[k])
		}
		return nil
	}

	printer.Measurement(out, tool, data["value"], data["uncertainty"])

	res, err := execute(cmd.Context(), p, "math.components", map[string]interface{}{"x": handle})
	if err != nil {
		return err
	}
	total, _ := res.Data["uncertainty"].(float64)
	items, _ := res.Data["components"].([]map[string]interface{})
	if len(items) == 0 {
		return nil
	}

	rows := make([]printer.Row, 0, len(items))
	for _, item := range items {
		row := printer.Row{Uncertainty: item["uncertainty"]}
		name, _ := item["name"].(string)
		if name == "" {
			name = fmt.Sprint(item["id"])
		}
		row.Name = name
		if m, ok := p.Workspace().Get(name); ok {
			row.Value = m.Value()
		}
		if c, ok := item["contribution"].(float64); ok && total > 0 {
			row.Share = (c / total) * (c / total)
		}
		rows = append(rows, row)
	}
	fmt.Fprintln(out)
	printer.Table(out, rows)
	return nil
}

// parseParams turns key=value arguments into tool params. Values parse as
// numbers or true/false where possible and stay strings otherwise; a comma
// makes a list.
func parseParams(args []string) (map[string]interface{}, error) {
	params := make(map[string]interface{}, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("expected param=value, got %q", arg)
		}
		if strings.Contains(value, ",") {
			parts := strings.Split(value, ",")
			list := make([]interface{}, 0, len(parts))
			for _, part := range parts {
				list = append(list, scalar(strings.TrimSpace(part)))
			}
			params[key] = list
			continue
		}
		params[key] = scalar(value)
	}
	return params, nil
}

func scalar(s string) interface{} {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}
