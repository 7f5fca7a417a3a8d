package common

import "github.com/GriffinCanCode/measurements/internal/types"

// NameParam is the optional parameter that binds a result to a name.
var NameParam = types.Parameter{
	Name:        "name",
	Type:        "string",
	Description: "Optional name to store the result under",
}

// OperandParam describes a parameter accepting a number or a measurement
// reference.
func OperandParam(name, description string) types.Parameter {
	return types.Parameter{Name: name, Type: "operand", Description: description, Required: true}
}

// UnaryTool describes a tool of one operand "x".
func UnaryTool(id, name, description string) types.Tool {
	return types.Tool{
		ID:          id,
		Name:        name,
		Description: description,
		Parameters: []types.Parameter{
			OperandParam("x", "Measurement handle, name, or number"),
			NameParam,
		},
		Returns: "measurement",
	}
}

// BinaryTool describes a tool of two operands.
func BinaryTool(id, name, description, a, b string) types.Tool {
	return types.Tool{
		ID:          id,
		Name:        name,
		Description: description,
		Parameters: []types.Parameter{
			OperandParam(a, "First operand"),
			OperandParam(b, "Second operand"),
			NameParam,
		},
		Returns: "measurement",
	}
}
