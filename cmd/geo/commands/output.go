package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fivetwenty-io/geographic-client/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tidwall/gjson"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const defaultJSONIndent = "  "

// outputFormat resolves --output, defaulting to a table on a terminal and
// JSON otherwise.
func outputFormat(out io.Writer) (string, error) {
	format := strings.ToLower(viper.GetString(keyOutput))

	switch format {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return format, nil
	case "":
		if file, ok := out.(*os.File); ok && term.IsTerminal(int(file.Fd())) { //nolint:gosec
			return constants.FormatTable, nil
		}

		return constants.FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", constants.ErrInvalidOutput, format)
	}
}

// render writes value in the selected format. table fills the table used for
// the table format.
func render(cmd *cobra.Command, value interface{}, table func(*tablewriter.Table)) error {
	out := cmd.OutOrStdout()

	format, err := outputFormat(out)
	if err != nil {
		return err
	}

	if path := viper.GetString(keySelect); path != "" {
		return renderSelection(out, value, path, format)
	}

	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", defaultJSONIndent)

		return encoder.Encode(value)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)
		defer func() { _ = encoder.Close() }()

		return encoder.Encode(value)
	default:
		tw := tablewriter.NewWriter(out)
		table(tw)

		err := tw.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

// renderSelection prints the part of value found at a GJSON path.
func renderSelection(out io.Writer, value interface{}, path, format string) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}

	selected := gjson.GetBytes(data, path)
	if !selected.Exists() {
		return fmt.Errorf("%w: %s", constants.ErrInvalidSelectPath, path)
	}

	switch format {
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)
		defer func() { _ = encoder.Close() }()

		return encoder.Encode(selected.Value())
	case constants.FormatJSON:
		if selected.IsObject() || selected.IsArray() {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", defaultJSONIndent)

			return encoder.Encode(selected.Value())
		}

		_, err = fmt.Fprintln(out, selected.Raw)

		return err
	default:
		_, err = fmt.Fprintln(out, selected.String())

		return err
	}
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func truncate(value string, width int) string {
	runes := []rune(value)
	if len(runes) <= width {
		return value
	}

	return string(runes[:width-1]) + "…"
}
