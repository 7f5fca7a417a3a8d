package utilities

import (
	"context"

	"github.com/GriffinCanCode/measurements/internal/providers/math/common"
	"github.com/GriffinCanCode/measurements/internal/types"
)

// WorkspaceOps manages stored measurements
type WorkspaceOps struct {
	*common.MathOps
}

// GetTools returns workspace tool definitions
func (w *WorkspaceOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.measurement",
			Name:        "New Measurement",
			Description: "Create an independent measurement from a value and its standard uncertainty",
			Parameters: []types.Parameter{
				{Name: "value", Type: "number", Description: "Nominal value", Required: true},
				{Name: "uncertainty", Type: "number", Description: "Standard uncertainty, non-negative", Required: true},
				common.NameParam,
			},
			Returns: "measurement",
		},
		{
			ID:          "math.get",
			Name:        "Get Measurement",
			Description: "Look up a stored measurement by handle or name",
			Parameters: []types.Parameter{
				{Name: "id", Type: "string", Description: "Handle or name", Required: true},
			},
			Returns: "measurement",
		},
		{
			ID:          "math.delete",
			Name:        "Delete Measurement",
			Description: "Remove a stored measurement; derived results keep their dependencies",
			Parameters: []types.Parameter{
				{Name: "id", Type: "string", Description: "Handle or name", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "math.list",
			Name:        "List Measurements",
			Description: "List stored measurements in creation order",
			Parameters:  []types.Parameter{},
			Returns:     "array",
		},
		{
			ID:          "math.load",
			Name:        "Load Budget",
			Description: "Create named independent measurements from a YAML, TOML or JSON budget",
			Parameters: []types.Parameter{
				{Name: "content", Type: "string", Description: "Budget document with an inputs list", Required: true},
				{Name: "format", Type: "string", Description: "yaml, toml or json", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "math.export",
			Name:        "Export Budget",
			Description: "Render the named independent measurements as a budget document",
			Parameters: []types.Parameter{
				{Name: "format", Type: "string", Description: "yaml, toml or json", Required: true},
			},
			Returns: "string",
		},
	}
}

// Create mints an independent measurement
func (w *WorkspaceOps) Create(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	val, ok := common.GetNumber(params, "value")
	if !ok {
		return common.Failure("value parameter required")
	}
	unc, ok := common.GetNumber(params, "uncertainty")
	if !ok {
		return common.Failure("uncertainty parameter required")
	}
	if err := common.ValidateNumber(val, "value"); err != nil {
		return common.Failure(err.Error())
	}
	if err := common.ValidateNumber(unc, "uncertainty"); err != nil {
		return common.Failure(err.Error())
	}

	name, _ := common.GetString(params, "name")
	handle, m, err := w.Workspace.Create(name, val, unc)
	if err != nil {
		return w.Fail("math.measurement", err)
	}
	return common.Success(common.MeasurementData(handle.String(), m))
}

// Get returns a stored measurement
func (w *WorkspaceOps) Get(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	ref, ok := common.GetString(params, "id")
	if !ok {
		return common.Failure("id parameter required")
	}
	e, ok := w.Workspace.Entry(ref)
	if !ok {
		return common.Failure("measurement not found: " + ref)
	}
	return common.Success(entryData(e))
}

// Delete removes a stored measurement
func (w *WorkspaceOps) Delete(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	ref, ok := common.GetString(params, "id")
	if !ok {
		return common.Failure("id parameter required")
	}
	return common.Success(map[string]interface{}{"deleted": w.Workspace.Delete(ref)})
}

// List returns every stored measurement
func (w *WorkspaceOps) List(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	entries := w.Workspace.List()
	out := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryData(e))
	}
	return common.Success(map[string]interface{}{"measurements": out, "count": len(out)})
}

// Load creates measurements from a budget document
func (w *WorkspaceOps) Load(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	content, ok := common.GetString(params, "content")
	if !ok || content == "" {
		return common.Failure("content parameter required")
	}
	name, _ := common.GetString(params, "format")
	format, err := ParseFormat(name)
	if err != nil {
		return common.Failure(err.Error())
	}

	budget, err := DecodeBudget([]byte(content), format)
	if err != nil {
		return w.Fail("math.load", err)
	}
	entries, err := budget.Load(w.Workspace)
	if err != nil {
		return w.Fail("math.load", err)
	}

	out := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryData(e))
	}
	return common.Success(map[string]interface{}{"measurements": out, "count": len(out)})
}

// Export renders named inputs as a budget document
func (w *WorkspaceOps) Export(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	name, _ := common.GetString(params, "format")
	format, err := ParseFormat(name)
	if err != nil {
		return common.Failure(err.Error())
	}

	budget := Snapshot(w.Workspace)
	if len(budget.Inputs) == 0 {
		return common.Failure("no named independent measurements")
	}
	data, err := EncodeBudget(budget, format)
	if err != nil {
		return w.Fail("math.export", err)
	}
	return common.Success(map[string]interface{}{
		"format":  string(format),
		"content": string(data),
		"count":   len(budget.Inputs),
	})
}

func entryData(e common.Entry) map[string]interface{} {
	data := common.MeasurementData(e.ID.String(), e.Measurement)
	if e.Name != "" {
		data["name"] = e.Name
	}
	data["independent"] = e.Measurement.IsIndependent()
	return data
}
