package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/geographic-client/internal/constants"
	"github.com/fivetwenty-io/geographic-client/pkg/geo"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewCallCommand creates the call command
func NewCallCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call ENDPOINT [key=value...]",
		Short: "Call an API endpoint directly",
		Long: `Call any endpoint by name or path and print the response body.

Parameters are given as key=value using wire names; repeating a key sends it
several times. Parameters the endpoint does not accept are dropped. Use
--query to send extra query parameters verbatim; they win over everything
else.`,
		Example: `  geo call poi-list latitude=48.8566 longitude=2.3522 type=museum type=park
  geo call /geographic/poi/get id=123
  geo call api-version --query debug=1
  geo call --list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, _ := cmd.Flags().GetBool("list")
			if list {
				return renderEndpoints(cmd)
			}

			if len(args) < constants.MinimumArgumentCount {
				return cmd.Help()
			}

			endpoint, ok := geo.LookupEndpoint(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", constants.ErrUnknownEndpoint, args[0])
			}

			params, err := parseParamArgs(args[1:])
			if err != nil {
				return err
			}

			if language := loadConfig().AcceptLanguage; language != "" {
				if _, set := params[geo.ParamAcceptLanguage]; !set {
					params[geo.ParamAcceptLanguage] = language
				}
			}

			queries, _ := cmd.Flags().GetStringArray("query")
			if len(queries) > 0 {
				overrides, err := parseParamArgs(queries)
				if err != nil {
					return err
				}

				params[geo.QueryParametersKey] = map[string]interface{}(overrides)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Call(cmd.Context(), endpoint, params)
			if err != nil {
				return err
			}

			return renderBody(cmd, result)
		},
	}

	cmd.Flags().StringArray("query", nil, "extra query parameter key=value sent verbatim (repeatable)")
	cmd.Flags().Bool("list", false, "list the known endpoints and their parameters")

	return cmd
}

// parseParamArgs turns key=value arguments into a parameter bag. Repeated
// keys collect into a slice.
func parseParamArgs(args []string) (geo.Params, error) {
	params := geo.Params{}

	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidParamArg, arg)
		}

		switch existing := params[key].(type) {
		case nil:
			params[key] = value
		case string:
			params[key] = []string{existing, value}
		case []string:
			params[key] = append(existing, value)
		}
	}

	return params, nil
}

// renderBody prints the response body. A body has no natural table form, so
// the table format prints text verbatim and JSON indented.
func renderBody(cmd *cobra.Command, result *geo.Result) error {
	out := cmd.OutOrStdout()

	format, err := outputFormat(out)
	if err != nil {
		return err
	}

	if format != constants.FormatTable || viper.GetString(keySelect) != "" {
		return render(cmd, result.Body, nil)
	}

	switch body := result.Body.(type) {
	case nil:
		_, err = fmt.Fprintln(out, result.Status)
	case string:
		_, err = fmt.Fprintln(out, body)
	default:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", defaultJSONIndent)
		err = encoder.Encode(body)
	}

	return err
}

func renderEndpoints(cmd *cobra.Command) error {
	endpoints := geo.Endpoints()

	return render(cmd, endpoints, func(table *tablewriter.Table) {
		table.Header("Name", "Path", "Required", "Allowed")

		for _, endpoint := range endpoints {
			_ = table.Append(endpoint.Name, endpoint.Path,
				strings.Join(endpoint.Required, ", "),
				truncate(strings.Join(endpoint.Allowed, ", "), constants.MaxDescriptionWidth))
		}
	})
}
