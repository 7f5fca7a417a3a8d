package utilities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/GriffinCanCode/measurements/internal/providers/math/common"
)

// Format is an encoding for uncertainty budgets.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for budget encodings other than YAML, TOML
// and JSON.
var ErrUnknownFormat = errors.New("unknown budget format")

// Input is one independent quantity in a budget.
type Input struct {
	Name        string  `json:"name" yaml:"name" toml:"name"`
	Value       float64 `json:"value" yaml:"value" toml:"value"`
	Uncertainty float64 `json:"uncertainty" yaml:"uncertainty" toml:"uncertainty"`
}

// Budget lists the independent inputs of a calculation.
type Budget struct {
	Inputs []Input `json:"inputs" yaml:"inputs" toml:"inputs"`
}

// ParseFormat accepts a format name or a file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// DecodeBudget parses and validates a budget.
func DecodeBudget(data []byte, format Format) (Budget, error) {
	var b Budget
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &b)
	case FormatTOML:
		err = toml.Unmarshal(data, &b)
	case FormatJSON:
		err = sonic.Unmarshal(data, &b)
	default:
		return Budget{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return Budget{}, fmt.Errorf("%s budget parse error: %w", format, err)
	}
	if err := b.Validate(); err != nil {
		return Budget{}, err
	}
	return b, nil
}

// EncodeBudget renders b in the given format.
func EncodeBudget(b Budget, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(b)
	case FormatTOML:
		return toml.Marshal(b)
	case FormatJSON:
		return sonic.MarshalIndent(b, "", "  ")
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// ReadBudget loads a budget file, picking the decoder from its extension.
func ReadBudget(path string) (Budget, error) {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return Budget{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Budget{}, fmt.Errorf("read budget: %w", err)
	}
	return DecodeBudget(data, format)
}

// Validate checks that every input is named once and carries finite,
// non-negative numbers.
func (b Budget) Validate() error {
	if len(b.Inputs) == 0 {
		return errors.New("budget has no inputs")
	}
	seen := make(map[string]bool, len(b.Inputs))
	for i, in := range b.Inputs {
		if in.Name == "" {
			return fmt.Errorf("input %d: name required", i)
		}
		if seen[in.Name] {
			return fmt.Errorf("input %q: duplicate name", in.Name)
		}
		seen[in.Name] = true

		if err := common.ValidateNumber(in.Value, in.Name+".value"); err != nil {
			return fmt.Errorf("input %q: %w", in.Name, err)
		}
		if err := common.ValidateNumber(in.Uncertainty, in.Name+".uncertainty"); err != nil {
			return fmt.Errorf("input %q: %w", in.Name, err)
		}
		if in.Uncertainty < 0 {
			return fmt.Errorf("input %q: uncertainty %v is negative", in.Name, in.Uncertainty)
		}
	}
	return nil
}

// Load creates one independent measurement per input. The budget must be
// valid; entries are created in file order.
func (b Budget) Load(ws *common.Workspace) ([]common.Entry, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	out := make([]common.Entry, 0, len(b.Inputs))
	for _, in := range b.Inputs {
		handle, m, err := ws.Create(in.Name, in.Value, in.Uncertainty)
		if err != nil {
			return out, fmt.Errorf("input %q: %w", in.Name, err)
		}
		out = append(out, common.Entry{ID: handle, Name: in.Name, Measurement: m})
	}
	return out, nil
}

// Snapshot collects the named independent measurements of ws as a budget.
func Snapshot(ws *common.Workspace) Budget {
	var b Budget
	for _, e := range ws.List() {
		if e.Name == "" || !e.Measurement.IsIndependent() {
			continue
		}
		// skip entries whose name has since been rebound
		if cur, ok := ws.Entry(e.Name); !ok || cur.ID != e.ID {
			continue
		}
		b.Inputs = append(b.Inputs, Input{
			Name:        e.Name,
			Value:       e.Measurement.Value(),
			Uncertainty: e.Measurement.Uncertainty(),
		})
	}
	return b
}
