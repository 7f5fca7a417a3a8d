// Package printer formats CLI output with color.
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

func init() {
	// NO_COLOR disables color even on a TTY
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}
}

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
	bold   = color.New(color.Bold)
)

// Success prints a message in green with a checkmark prefix
func Success(w io.Writer, format string, a ...any) {
	green.Fprintf(w, "✓ %s\n", fmt.Sprintf(format, a...))
}

// Warning prints a message in yellow
func Warning(w io.Writer, format string, a ...any) {
	yellow.Fprintf(w, "! %s\n", fmt.Sprintf(format, a...))
}

// Error prints title and explanation to w and returns title as an error
// for cobra, which is configured not to print it again.
func Error(w io.Writer, title, explanation string) error {
	red.Fprintf(w, "%s\n", title)
	if explanation != "" {
		fmt.Fprintf(w, "\n%s\n", explanation)
	}
	return fmt.Errorf("%s", title)
}

// Measurement prints "label = value ± uncertainty"
func Measurement(w io.Writer, label string, value, uncertainty interface{}) {
	bold.Fprintf(w, "%s", label)
	fmt.Fprintf(w, " = %s ± %s\n", number(value), number(uncertainty))
}

// Row is one line of a budget table
type Row struct {
	Name        string
	Value       interface{}
	Uncertainty interface{}
	Share       interface{} // contribution to the output variance; nil to omit
}

// Table prints rows aligned under a cyan header
func Table(w io.Writer, rows []Row) {
	width := len("NAME")
	share := false
	for _, r := range rows {
		if len(r.Name) > width {
			width = len(r.Name)
		}
		if r.Share != nil {
			share = true
		}
	}

	header := fmt.Sprintf("%-*s  %14s  %14s", width, "NAME", "VALUE", "UNCERTAINTY")
	if share {
		header += fmt.Sprintf("  %8s", "SHARE")
	}
	cyan.Fprintln(w, header)
	cyan.Fprintln(w, strings.Repeat("-", len(header)))

	for _, r := range rows {
		fmt.Fprintf(w, "%-*s  %14s  %14s", width, r.Name, number(r.Value), number(r.Uncertainty))
		if share {
			fmt.Fprintf(w, "  %7.2f%%", percent(r.Share))
		}
		fmt.Fprintln(w)
	}
}

func number(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "NaN"
	case float64:
		return fmt.Sprintf("%.6g", x)
	default:
		return fmt.Sprint(x)
	}
}

func percent(v interface{}) float64 {
	if f, ok := v.(float64); ok {
		return 100 * f
	}
	return 0
}
